package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ryan-rushton/textkit/internal/registry"
	"github.com/ryan-rushton/textkit/internal/session"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:     "run <tool> [input]",
		Aliases: []string{"r"},
		Short:   "Run a tool once and print its output",
		Long: "Run a tool non-interactively. The tool may be given by name (\"Text Analyzer\") or id\n" +
			"(text-analyzer). Without an input argument the input is read from stdin.",
		Example: "  textkit run calculator '2 * (3 + 4)'\n  echo '{\"a\":1}' | textkit run json-formatter",
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := newSession()
			if err != nil {
				return err
			}
			tool, err := selectTool(sess, args[0])
			if err != nil {
				return err
			}

			input := ""
			if len(args) == 2 {
				input = args[1]
			} else {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("reading stdin: %w", err)
				}
				input = strings.TrimSuffix(strings.TrimSuffix(string(data), "\n"), "\r")
			}

			if err := sess.UpdateInput(input); err != nil {
				return err
			}
			entry, ran := sess.Execute()
			if !ran {
				return fmt.Errorf("%s: no input given", tool.Name)
			}
			fmt.Fprintln(cmd.OutOrStdout(), entry.Output)
			return nil
		},
	})
}

// selectTool resolves query to a tool by name or id and selects it.
func selectTool(sess *session.Session, query string) (registry.Tool, error) {
	tool, ok := sess.Registry().Resolve(query)
	if !ok {
		return registry.Tool{}, fmt.Errorf("%w: %q (see textkit list)", session.ErrUnknownTool, query)
	}
	if err := sess.SelectTool(tool.Name); err != nil {
		return registry.Tool{}, err
	}
	return tool, nil
}
