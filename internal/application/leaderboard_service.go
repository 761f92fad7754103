package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"catanboard/internal/models"
	"catanboard/internal/repository"
)

var (
	ErrNoSources      = errors.New("no leaderboard sources configured")
	ErrNotLoaded      = errors.New("leaderboard has not been loaded yet")
	ErrPlayerNotFound = errors.New("player not found")
)

// Status describes the dataset currently held in memory.
type Status struct {
	PageType models.PageType `json:"page_type"`
	Sources  []string        `json:"sources"`
	Players  int             `json:"players"`
	Loaded   bool            `json:"loaded"`
	LoadedAt time.Time       `json:"loaded_at,omitempty"`
}

type LeaderboardServiceImpl struct {
	repo     *repository.Repository
	pageType models.PageType
	logger   Logger
	now      func() time.Time
}

func NewLeaderboardServiceImpl(repo *repository.Repository, pageType models.PageType, logger Logger) *LeaderboardServiceImpl {
	return &LeaderboardServiceImpl{
		repo:     repo,
		pageType: pageType,
		logger:   logger,
		now:      time.Now,
	}
}

// Load fetches every source concurrently and replaces the in-memory dataset
// with their merge. If any source fails nothing is merged and the previous
// dataset stays in place.
func (s *LeaderboardServiceImpl) Load(ctx context.Context) error {
	sources := s.repo.Sources
	if len(sources) == 0 {
		return ErrNoSources
	}

	results := make([][]models.PlayerRecord, len(sources))
	g, gctx := errgroup.WithContext(ctx)
	for i, src := range sources {
		i, src := i, src
		g.Go(func() error {
			records, err := src.Fetch(gctx)
			if err != nil {
				return fmt.Errorf("source %s: %w", src.Name(), err)
			}
			s.logger.Debug("source fetched", "source", src.Name(), "records", len(records))
			results[i] = records
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.logger.Error("failed to load leaderboard", "page", s.pageType, "error", err)
		return fmt.Errorf("load leaderboard: %w", err)
	}

	merged := MergePlayers(results...)
	s.repo.Snapshot.Set(merged, s.now())
	s.logger.Info("leaderboard loaded", "page", s.pageType, "sources", len(sources), "players", len(merged))
	return nil
}

func (s *LeaderboardServiceImpl) GetLeaderboard(sortBy models.SortMode) ([]models.RankedPlayer, error) {
	players, ok := s.repo.Snapshot.Get()
	if !ok {
		return nil, ErrNotLoaded
	}
	return SortAndRankPlayers(players, sortBy), nil
}

func (s *LeaderboardServiceImpl) GetBoard(sortBy models.SortMode) (Board, error) {
	ranked, err := s.GetLeaderboard(sortBy)
	if err != nil {
		return Board{SortBy: sortBy}, err
	}
	return BuildBoard(ranked, sortBy), nil
}

// GetPlayer looks a player up case-insensitively.
func (s *LeaderboardServiceImpl) GetPlayer(name string, sortBy models.SortMode) (*models.RankedPlayer, error) {
	ranked, err := s.GetLeaderboard(sortBy)
	if err != nil {
		return nil, err
	}
	for _, p := range ranked {
		if strings.EqualFold(p.Player, strings.TrimSpace(name)) {
			return &p, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrPlayerNotFound, name)
}

func (s *LeaderboardServiceImpl) Status() Status {
	names := make([]string, 0, len(s.repo.Sources))
	for _, src := range s.repo.Sources {
		names = append(names, src.Name())
	}
	_, loaded := s.repo.Snapshot.Get()
	return Status{
		PageType: s.pageType,
		Sources:  names,
		Players:  s.repo.Snapshot.Size(),
		Loaded:   loaded,
		LoadedAt: s.repo.Snapshot.LoadedAt(),
	}
}
