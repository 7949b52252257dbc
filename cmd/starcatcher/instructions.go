package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/star-catcher/internal/games/stars"
)

var instructionsCmd = &cobra.Command{
	Use:     "instructions",
	Aliases: []string{"howto"},
	Short:   "Show how to play",
	Args:    cobra.NoArgs,
	Run:     runInstructions,
}

func runInstructions(cmd *cobra.Command, args []string) {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	panelStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(1, 2)

	body := titleStyle.Render("Star Catcher") + "\n\n" + stars.InstructionsText() + `

Controls:
  Left/Right  move        Enter   start / play again
  Up          jump        P/Esc   pause
  Space       super jump  R       reset
  ?/H         help        Q       quit`

	fmt.Fprintln(cmd.OutOrStdout(), panelStyle.Render(body))
}
