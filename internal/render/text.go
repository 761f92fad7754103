package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"catanboard/internal/application"
)

// Medal returns the podium medal for a 1-based position, or "" off the podium.
func Medal(position int) string {
	switch position {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	default:
		return ""
	}
}

// Text writes the board as a terminal table. Podium players get a medal.
func Text(w io.Writer, board application.Board) error {
	if w == nil {
		return nil
	}
	fmt.Fprintf(w, "\n%s\n\n", board.SortLabel())

	if board.Empty() {
		_, err := fmt.Fprintln(w, "No players yet")
		return err
	}

	table := tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))

	table.Header(" ", "RANK", "PLAYER", "WINS", "GAMES", "WIN RATE")

	for i, p := range board.Players() {
		marker := " "
		if i < len(board.Podium) {
			marker = Medal(i + 1)
		}
		table.Append(
			marker,
			p.Rank.String(),
			p.Player,
			p.WinsFormatted,
			strconv.Itoa(p.GamesPlayed),
			p.WinRateFormatted,
		)
	}
	return table.Render()
}
