package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ryan-rushton/textkit/internal/styles"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the available tools",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := newSession()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, t := range sess.Registry().All() {
				fmt.Fprintf(out, "%s %s %s\n",
					styles.Selected.Render(fmt.Sprintf("%-16s", t.Name)),
					styles.Dimmed.Render(fmt.Sprintf("%-16s", t.ID)),
					t.Description,
				)
			}
			return nil
		},
	})
}
