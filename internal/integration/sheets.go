package integration

import (
	"context"
	"fmt"

	"catanboard/internal/models"
	"catanboard/internal/parser"
	"catanboard/pkg/sheets"
)

// SheetsSource reads a leaderboard table from a Google Sheets range. The first
// row of the range is the header.
type SheetsSource struct {
	name          string
	client        sheets.Client
	spreadsheetID string
	rangeStr      string
}

func NewSheetsSource(name string, client sheets.Client, spreadsheetID, rangeStr string) *SheetsSource {
	return &SheetsSource{
		name:          name,
		client:        client,
		spreadsheetID: spreadsheetID,
		rangeStr:      rangeStr,
	}
}

func (s *SheetsSource) Name() string {
	return s.name
}

func (s *SheetsSource) Fetch(ctx context.Context) ([]models.PlayerRecord, error) {
	rows, err := s.client.ReadValues(ctx, s.spreadsheetID, s.rangeStr)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s!%s: %w", s.spreadsheetID, s.rangeStr, err)
	}
	return parser.FromRows(rows), nil
}
