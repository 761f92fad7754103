package repository

import (
	"context"

	"catanboard/internal/models"
)

// Source supplies the raw player records of one leaderboard CSV.
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]models.PlayerRecord, error)
}

type Repository struct {
	Sources  []Source
	Snapshot *Snapshot
}

func NewRepository(sources ...Source) *Repository {
	return &Repository{
		Sources:  sources,
		Snapshot: NewSnapshot(),
	}
}
