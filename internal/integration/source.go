// Package integration provides the places leaderboard CSV data can come from:
// HTTP(S) URLs, local files and Google Sheets ranges.
package integration

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"catanboard/internal/repository"
	"catanboard/pkg/sheets"
)

const sheetsScheme = "sheets://"

var ErrSheetsClientRequired = errors.New("sheets source requires a configured Google Sheets client")

// NewSource picks a source implementation from the location:
//
//	https://example.com/standard.csv   -> HTTPSource
//	sheets://<spreadsheet-id>/<range>  -> SheetsSource
//	data/standard.csv                  -> FileSource
func NewSource(name, location string, timeout time.Duration, client sheets.Client) (repository.Source, error) {
	switch {
	case strings.HasPrefix(location, "http://"), strings.HasPrefix(location, "https://"):
		return NewHTTPSource(name, location, timeout), nil
	case strings.HasPrefix(location, sheetsScheme):
		if client == nil {
			return nil, ErrSheetsClientRequired
		}
		id, rng, ok := strings.Cut(strings.TrimPrefix(location, sheetsScheme), "/")
		if !ok || id == "" || rng == "" {
			return nil, fmt.Errorf("invalid sheets location %q, want sheets://<id>/<range>", location)
		}
		return NewSheetsSource(name, client, id, rng), nil
	case location == "":
		return nil, fmt.Errorf("source %s: empty location", name)
	default:
		return NewFileSource(name, location), nil
	}
}
