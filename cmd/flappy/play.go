package main

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Space / left click  - Flap (starts the round)
  Any key / click     - Restart after game over
  ?                   - Toggle help
  Ctrl+Z              - Suspend
  Q / Ctrl+C          - Quit

Logs are discarded unless --log-file is given, since the game owns the
terminal while it runs.

Examples:
  flappy play
  flappy play --seed 42
  flappy play --config ./my-flappy.yaml --log-file flappy.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) (err error) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return errors.New("play needs a terminal; try 'flappy sim' for headless runs")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLogFile(&err, closeLog)

	// Size the game before the first resize message so it starts at once.
	width, height := 0, 0
	if w, h, termErr := term.GetSize(fd); termErr == nil {
		width, height = w, h
	}

	return tui.Run(tui.Options{
		Config: cfg,
		Random: core.NewRandom(flagSeed),
		FPS:    flagFPS,
		Logger: logger,
		Width:  width,
		Height: height,
	})
}
