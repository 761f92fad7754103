package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"catanboard/internal/render"
)

var renderOut string

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the leaderboard as a standalone HTML page",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := load(cmd.Context())
		if err != nil {
			return err
		}

		board, err := rt.services.Leaderboard.GetBoard(rt.sortBy)
		if err != nil {
			return err
		}

		var buf bytes.Buffer
		err = render.Page(&buf, board, render.HTMLOptions{
			BasePath: rt.cfg.BasePath,
			Title:    rt.cfg.Web.Title,
		})
		if err != nil {
			return fmt.Errorf("render page: %w", err)
		}

		if renderOut == "" || renderOut == "-" {
			_, err = cmd.OutOrStdout().Write(buf.Bytes())
			return err
		}
		if err := os.WriteFile(renderOut, buf.Bytes(), 0o644); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", renderOut)
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "output file (default stdout)")
}
