// flappy is a physics-driven Flappy Bird-style game for the terminal and
// the desktop.
//
// Usage:
//
//	flappy play     - Play in the terminal
//	flappy window   - Play in a desktop window
//	flappy sim      - Run a headless round with an autopilot
//	flappy config   - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible barriers
//	--config <path>     - Load settings from a YAML file
//	--log-file <path>   - Append logs to a file
//	--debug             - Log at debug level
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - fly through the gaps",
	Long: `Flappy is a physics-driven arcade game. The bird drifts right on its
own; every flap gives it a fixed upward kick. Touching a barrier or the
ground ends the round.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  sim      - Run a headless round with an autopilot
  config   - Print the effective configuration

Examples:
  flappy play
  flappy window --fps 120
  flappy sim --seconds 60 --seed 7
  flappy config > ~/.flappy/flappy.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the game configuration honoring --config.
func loadConfig() (config.FlappyConfig, error) {
	return config.LoadFlappy(flagConfig)
}

// newLogger builds the logger for a command. Logs go to --log-file when
// set, otherwise to fallback. The returned close function is never nil.
func newLogger(fallback io.Writer) (*log.Logger, func() error, error) {
	out := fallback
	closeFn := func() error { return nil }
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out = f
		closeFn = f.Close
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappy",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}

// closeLogFile runs the close function returned by newLogger. A close
// failure is reported through err unless err already holds an error.
func closeLogFile(err *error, closeFn func() error) {
	if cerr := closeFn(); cerr != nil && *err == nil {
		*err = fmt.Errorf("failed to close log file: %w", cerr)
	}
}
