package integration

import (
	"context"
	"fmt"
	"os"

	"catanboard/internal/models"
	"catanboard/internal/parser"
)

// FileSource reads a CSV file from the local filesystem.
type FileSource struct {
	name string
	path string
}

func NewFileSource(name, path string) *FileSource {
	return &FileSource{name: name, path: path}
}

func (s *FileSource) Name() string {
	return s.name
}

func (s *FileSource) Fetch(ctx context.Context) ([]models.PlayerRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	return parser.ParseCSV(string(data)), nil
}
