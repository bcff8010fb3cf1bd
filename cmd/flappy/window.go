package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/platform/window"
)

var (
	flagWidth  int
	flagHeight int
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a resizable desktop window and start a game.

Controls:
  Space / left click / tap  - Flap (starts the round)
  Any key / click           - Restart after game over
  Esc                       - Quit

Examples:
  flappy window
  flappy window --width 1600 --height 900`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagWidth, "width", 1280, "Initial window width in pixels")
	windowCmd.Flags().IntVar(&flagHeight, "height", 720, "Initial window height in pixels")
}

func runWindow(_ *cobra.Command, _ []string) (err error) {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLogFile(&err, closeLog)

	return window.Run(window.Options{
		Config: cfg,
		Random: core.NewRandom(flagSeed),
		FPS:    flagFPS,
		Logger: logger,
		Width:  flagWidth,
		Height: flagHeight,
	})
}
