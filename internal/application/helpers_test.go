package application

import (
	"context"
	"errors"
	"sync/atomic"

	"catanboard/internal/models"
)

type nopLogger struct{}

func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Debug(string, ...interface{}) {}

// stubSource returns fixed records, or err when set.
type stubSource struct {
	name    string
	records []models.PlayerRecord
	err     error
	calls   atomic.Int32
}

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) Fetch(ctx context.Context) ([]models.PlayerRecord, error) {
	s.calls.Add(1)
	if s.err != nil {
		return nil, s.err
	}
	return s.records, nil
}

// blockingSource waits for cancellation, so a failing sibling must cancel it.
type blockingSource struct{ name string }

func (s blockingSource) Name() string { return s.name }

func (s blockingSource) Fetch(ctx context.Context) ([]models.PlayerRecord, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

var errBoom = errors.New("boom")

func rec(player string, wins float64, games int) models.PlayerRecord {
	return models.PlayerRecord{Player: player, Wins: wins, GamesPlayed: games}
}

func agg(player string, wins float64, games int) models.AggregatedPlayer {
	return models.AggregatedPlayer{Player: player, Wins: wins, GamesPlayed: games}
}

func ranks(ranked []models.RankedPlayer) []models.Rank {
	out := make([]models.Rank, len(ranked))
	for i, p := range ranked {
		out[i] = p.Rank
	}
	return out
}

func names(players []models.RankedPlayer) []string {
	out := make([]string, len(players))
	for i, p := range players {
		out[i] = p.Player
	}
	return out
}
