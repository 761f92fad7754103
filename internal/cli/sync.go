package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Push the leaderboard to the configured Google Sheet",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := load(cmd.Context())
		if err != nil {
			return err
		}
		url, err := rt.services.Sheets.SyncToGoogleSheet(rt.sortBy)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), url)
		return nil
	},
}
