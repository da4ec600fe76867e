package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ryan-rushton/textkit/internal/messages"
	"github.com/ryan-rushton/textkit/internal/workbench"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:     "open <tool>",
		Aliases: []string{"o"},
		Short:   "Open a single tool in the TUI",
		Long:    "Open the interactive workbench for one tool, skipping the tool list. esc quits.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := newSession()
			if err != nil {
				return err
			}
			if _, err := selectTool(sess, args[0]); err != nil {
				return err
			}
			p := tea.NewProgram(messages.Standalone(workbench.New(sess)), tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	})
}
