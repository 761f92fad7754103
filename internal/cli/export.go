package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the leaderboard to an Excel workbook",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := load(cmd.Context())
		if err != nil {
			return err
		}
		data, err := rt.services.Export.ExcelReport(rt.sortBy)
		if err != nil {
			return err
		}
		if err := os.WriteFile(exportOut, data, 0o644); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", exportOut)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "leaderboard.xlsx", "output workbook")
}
