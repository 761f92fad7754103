package application

import (
	"errors"
	"fmt"
	"sync"

	"catanboard/internal/models"
	"catanboard/pkg/sheets"
)

var ErrSheetsNotConfigured = errors.New("google sheets service is not configured")

type SheetsServiceImpl struct {
	leaderboard LeaderboardService
	client      sheets.Client
	ownerEmail  string
	logger      Logger

	mu            sync.Mutex
	spreadsheetID string
}

func NewSheetsServiceImpl(leaderboard LeaderboardService, client sheets.Client, spreadsheetID, ownerEmail string, logger Logger) *SheetsServiceImpl {
	return &SheetsServiceImpl{
		leaderboard:   leaderboard,
		client:        client,
		spreadsheetID: spreadsheetID,
		ownerEmail:    ownerEmail,
		logger:        logger,
	}
}

// SyncToGoogleSheet publishes the ranked leaderboard and returns the sheet URL.
// A new public spreadsheet is created on first use when no ID is configured.
func (s *SheetsServiceImpl) SyncToGoogleSheet(sortBy models.SortMode) (string, error) {
	if s.client == nil {
		return "", ErrSheetsNotConfigured
	}

	ranked, err := s.leaderboard.GetLeaderboard(sortBy)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.ensureSheetExists()
	if err != nil {
		return "", err
	}

	header := make([]interface{}, len(reportHeaders))
	for i, h := range reportHeaders {
		header[i] = h
	}
	rows := append([][]interface{}{header}, reportRows(ranked)...)

	if err := s.client.ClearRange(id, defaultClearRange); err != nil {
		s.logger.Error("failed to clear sheet", "spreadsheet", id, "error", err)
	}
	if err := s.client.UpdateValues(id, defaultStartCell, rows); err != nil {
		return "", fmt.Errorf("failed to update stats: %w", err)
	}

	s.logger.Info("leaderboard synced to sheet", "spreadsheet", id, "rows", len(ranked))
	return spreadsheetURL(id), nil
}

func (s *SheetsServiceImpl) ensureSheetExists() (string, error) {
	if s.spreadsheetID != "" {
		return s.spreadsheetID, nil
	}

	id, _, err := s.client.CreateSpreadsheet(defaultSheetTitle)
	if err != nil {
		return "", fmt.Errorf("failed to create spreadsheet: %w", err)
	}

	if s.ownerEmail != "" {
		if err := s.client.AddPermission(id, s.ownerEmail, "writer"); err != nil {
			return "", fmt.Errorf("failed to add owner permission: %w", err)
		}
	}
	if err := s.client.MakePublic(id); err != nil {
		return "", fmt.Errorf("failed to make spreadsheet public: %w", err)
	}

	s.spreadsheetID = id
	return id, nil
}

func spreadsheetURL(id string) string {
	return fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s", id)
}
