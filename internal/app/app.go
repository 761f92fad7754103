// Package app wires configuration into the application services. Both the
// long-running server and the command line tool build on it.
package app

import (
	"fmt"

	"catanboard/internal/application"
	"catanboard/internal/integration"
	"catanboard/internal/models"
	"catanboard/internal/repository"
	"catanboard/pkg/config"
	"catanboard/pkg/sheets"
)

func NewServices(cfg *config.Config, log application.Logger) (*application.Service, error) {
	var client sheets.Client
	if cfg.Sheets.CredentialsFile != "" {
		c, err := sheets.NewGoogleSheetsClient(cfg.Sheets.CredentialsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to init sheets client: %w", err)
		}
		client = c
	}

	locations := cfg.SourceLocations()
	sources := make([]repository.Source, 0, len(locations))
	for _, loc := range locations {
		src, err := integration.NewSource(loc.Name, loc.Location, cfg.Sources.Timeout, client)
		if err != nil {
			return nil, fmt.Errorf("source %s: %w", loc.Name, err)
		}
		sources = append(sources, src)
	}

	repos := repository.NewRepository(sources...)
	return application.NewService(repos, models.PageType(cfg.PageType), client, cfg.Sheets.SpreadsheetID, cfg.Sheets.OwnerEmail, log), nil
}
