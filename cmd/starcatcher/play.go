package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/star-catcher/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start playing in the terminal.

Controls:
  Left/Right  - Move
  Up          - Jump
  Space       - Super jump
  Enter       - Start / play again
  P/Esc       - Pause
  R           - Reset
  ?/H         - Instructions
  Q/Ctrl+C    - Quit

The terminal reports no key releases, so a movement key counts as held
while it keeps repeating.

Examples:
  starcatcher play
  starcatcher play --seed 42
  starcatcher play --config ./my-stars.yaml --log-file stars.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	// The alternate screen owns the terminal, so logs only go to a file
	logger, closer, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closer.Close() //nolint:errcheck // Best-effort close

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	game, cfg, err := prepareGame(logger, width, height)
	if err != nil {
		return err
	}

	if err := tui.Run(game, cfg, logger); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
