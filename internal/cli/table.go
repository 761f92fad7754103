package cli

import (
	"github.com/spf13/cobra"

	"catanboard/internal/render"
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print the leaderboard as a text table",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := load(cmd.Context())
		if err != nil {
			return err
		}
		board, err := rt.services.Leaderboard.GetBoard(rt.sortBy)
		if err != nil {
			return err
		}
		return render.Text(cmd.OutOrStdout(), board)
	},
}
