package application

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"catanboard/internal/models"
)

var reportHeaders = []string{"Rank", "Player", "Wins", "GamesPlayed", "WinRate %"}

type ExportServiceImpl struct {
	leaderboard LeaderboardService
}

func NewExportServiceImpl(leaderboard LeaderboardService) *ExportServiceImpl {
	return &ExportServiceImpl{leaderboard: leaderboard}
}

// ExcelReport builds an xlsx workbook with the ranked leaderboard.
func (s *ExportServiceImpl) ExcelReport(sortBy models.SortMode) ([]byte, error) {
	ranked, err := s.leaderboard.GetLeaderboard(sortBy)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", excelSheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	headers := make([]interface{}, len(reportHeaders))
	for i, h := range reportHeaders {
		headers[i] = h
	}
	if err := writeRow(f, 1, headers); err != nil {
		return nil, err
	}
	for i, row := range reportRows(ranked) {
		if err := writeRow(f, i+2, row); err != nil {
			return nil, err
		}
	}

	for _, w := range []struct {
		from, to string
		width    float64
	}{{"A", "A", 8}, {"B", "B", 20}, {"C", "E", 14}} {
		if err := f.SetColWidth(excelSheetName, w.from, w.to, w.width); err != nil {
			return nil, fmt.Errorf("set width of %s:%s: %w", w.from, w.to, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// writeRow fills one 1-based worksheet row.
func writeRow(f *excelize.File, row int, values []interface{}) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("cell %d:%d: %w", col+1, row, err)
		}
		if err := f.SetCellValue(excelSheetName, cell, v); err != nil {
			return fmt.Errorf("write %s: %w", cell, err)
		}
	}
	return nil
}

// reportRows is shared by the Excel and Google Sheets exports.
func reportRows(ranked []models.RankedPlayer) [][]interface{} {
	rows := make([][]interface{}, 0, len(ranked))
	for _, p := range ranked {
		rows = append(rows, []interface{}{
			p.Rank.String(),
			p.Player,
			p.Wins,
			p.GamesPlayed,
			p.WinRateFormatted,
		})
	}
	return rows
}
