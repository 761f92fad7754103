package application

import (
	"context"

	"catanboard/internal/models"
	"catanboard/internal/repository"
	"catanboard/pkg/sheets"
)

type Logger interface {
	Error(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Debug(msg string, args ...interface{})
}

type LeaderboardService interface {
	Load(ctx context.Context) error
	GetBoard(sortBy models.SortMode) (Board, error)
	GetLeaderboard(sortBy models.SortMode) ([]models.RankedPlayer, error)
	GetPlayer(name string, sortBy models.SortMode) (*models.RankedPlayer, error)
	Status() Status
}

type ExportService interface {
	ExcelReport(sortBy models.SortMode) ([]byte, error)
}

type SheetsService interface {
	SyncToGoogleSheet(sortBy models.SortMode) (string, error)
}

type Service struct {
	Leaderboard LeaderboardService
	Export      ExportService
	Sheets      SheetsService
}

// NewService wires the application services. sheetsClient may be nil, in which
// case sheet sync reports ErrSheetsNotConfigured.
func NewService(repos *repository.Repository, pageType models.PageType, sheetsClient sheets.Client, spreadsheetID, ownerEmail string, logger Logger) *Service {
	leaderboard := NewLeaderboardServiceImpl(repos, pageType, logger)
	return &Service{
		Leaderboard: leaderboard,
		Export:      NewExportServiceImpl(leaderboard),
		Sheets:      NewSheetsServiceImpl(leaderboard, sheetsClient, spreadsheetID, ownerEmail, logger),
	}
}
