package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var (
	flagSeconds float64
	flagShow    bool
	flagMargin  float64
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless round with an autopilot",
	Long: `Simulate a round without a display. Time advances by exactly one
tick per frame, so a given --seed and --fps always produce the same result.

Examples:
  flappy sim
  flappy sim --seconds 120 --seed 7
  flappy sim --show --debug`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().Float64Var(&flagSeconds, "seconds", 30, "Simulated time to run")
	simCmd.Flags().BoolVar(&flagShow, "show", false, "Print the last frame as text")
	simCmd.Flags().Float64Var(&flagMargin, "margin", 0, "Clearance above the bottom block that makes the autopilot flap (0 = default)")
}

func runSim(_ *cobra.Command, _ []string) (err error) {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLogFile(&err, closeLog)

	fps := flagFPS
	if fps <= 0 {
		fps = 60
	}
	frame := time.Second / time.Duration(fps)
	now := time.Unix(0, 0)
	clock := func() time.Time { return now }

	canvas := tui.NewCanvas(80, 24)
	app := flappy.NewApp(canvas, cfg, core.NewRandom(flagSeed),
		flappy.WithLogger(logger),
		flappy.WithClock(clock),
	)
	pilot := flappy.Autopilot{Margin: flagMargin}

	frames := int(flagSeconds * float64(fps))
	for i := 0; i <= frames; i++ {
		if pilot.ShouldFlap(app.Game(), frame.Seconds()) {
			app.OnKeyDown(core.KeySpace, false)
		}
		if err := app.Tick(); err != nil {
			return err
		}
		if app.Game().State() == flappy.StateOver {
			break
		}
		now = now.Add(frame)
	}

	game := app.Game()
	if flagShow {
		fmt.Println(canvas.Screen().String())
	}
	fmt.Printf("state=%s score=%d barriers=%d time=%.2fs\n",
		game.State(), game.Score(), len(game.Barriers()), app.Timer().TotalSeconds())
	return nil
}
