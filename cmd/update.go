package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ryan-rushton/textkit/internal/updater"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "update",
		Short: "Check for and apply updates",
		Long:  "Checks GitHub for a newer release and replaces the current binary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if version == "dev" {
				fmt.Fprintln(out, "Skipping update check (dev build)")
				return nil
			}

			fmt.Fprintln(out, "Checking for updates...")

			u := updater.New(logger)
			latest, err := u.LatestRelease(cmd.Context())
			if err != nil {
				return fmt.Errorf("checking for updates: %w", err)
			}

			if !updater.IsNewer(version, latest) {
				fmt.Fprintf(out, "Already up to date (%s)\n", version)
				return nil
			}

			fmt.Fprintf(out, "Update available: %s → %s\n", version, latest)
			fmt.Fprintln(out, "Downloading...")

			if err := u.DownloadAndReplace(cmd.Context(), latest); err != nil {
				return fmt.Errorf("updating: %w", err)
			}

			fmt.Fprintf(out, "Updated to %s! Restart textkit to use the new version.\n", latest)
			return nil
		},
	})
}
