package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/star-catcher/internal/platform/desktop"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a desktop window and play there. Same controls as 'play';
the window sees real key releases, so movement stops as soon as a key is let go.

Examples:
  starcatcher window
  starcatcher window --tps 120 --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(cmd *cobra.Command, args []string) error {
	logger, closer, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closer.Close() //nolint:errcheck // Best-effort close

	game, cfg, err := prepareGame(logger, 0, 0)
	if err != nil {
		return err
	}

	if err := desktop.Run(game, cfg, logger); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
