// starcatcher is a small arcade game: collect the stars, dodge the obstacles.
//
// Usage:
//
//	starcatcher play            - Play in the terminal
//	starcatcher window          - Play in a desktop window
//	starcatcher list            - List available games
//	starcatcher instructions    - Show how to play
//	starcatcher config          - Print the default configuration
//
// Global flags:
//
//	--tps <rate>         - Set simulation ticks per second (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--config <path>      - Load a custom YAML config
//	--log-file <path>    - Write logs to a file
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/star-catcher/internal/config"
	"github.com/vovakirdan/star-catcher/internal/core"
	"github.com/vovakirdan/star-catcher/internal/games/stars"
	"github.com/vovakirdan/star-catcher/internal/registry"
)

var (
	// Global flags
	flagTPS      int
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "starcatcher",
	Short: "Star Catcher - collect stars, dodge obstacles",
	Long: `Star Catcher is a small arcade game. Move the ball, collect every
star to clear the level, and avoid the bouncing obstacles.

Available commands:
  play          - Play in the terminal
  window        - Play in a desktop window
  list          - Show all available games
  instructions  - Show how to play
  config        - Print the default or resolved configuration

Examples:
  starcatcher play
  starcatcher window --tps 120
  starcatcher play --seed 42 --config ./my-stars.yaml
  starcatcher config --resolved`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagTPS, "tps", 60, "Simulation ticks per second")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(instructionsCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the application logger. Logs go to --log-file when set,
// otherwise to fallback. The returned closer releases the log file.
func newLogger(fallback io.Writer) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out := fallback
	var closer io.Closer = io.NopCloser(nil)
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out = f
		closer = f
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "starcatcher",
		Level:           level,
	})
	return logger, closer, nil
}

// prepareGame loads and validates the config once and builds the game and runtime config from it.
func prepareGame(logger *log.Logger, screenW, screenH int) (registry.Game, core.RuntimeConfig, error) {
	if flagTPS <= 0 {
		return nil, core.RuntimeConfig{}, fmt.Errorf("--tps must be positive, got %d", flagTPS)
	}

	cfg, err := config.LoadStars(flagConfig)
	if err != nil {
		return nil, core.RuntimeConfig{}, err
	}
	logger.Debug("config loaded", "path", flagConfig, "canvas", fmt.Sprintf("%gx%g", cfg.Canvas.Width, cfg.Canvas.Height))

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	rc := core.RuntimeConfig{
		ScreenW:  screenW,
		ScreenH:  screenH,
		TickRate: flagTPS,
		Seed:     seed,
	}
	return stars.NewWithConfig(cfg), rc, nil
}
