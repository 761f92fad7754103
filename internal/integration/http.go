package integration

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"catanboard/internal/models"
	"catanboard/internal/parser"
)

const maxCSVBytes = 1 << 20

var ErrBodyTooLarge = errors.New("response body too large")

// HTTPSource downloads a CSV file over HTTP(S).
type HTTPSource struct {
	name   string
	url    string
	client *http.Client
}

func NewHTTPSource(name, url string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		name:   name,
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

func (s *HTTPSource) Name() string {
	return s.name
}

func (s *HTTPSource) Fetch(ctx context.Context) ([]models.PlayerRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", s.url, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to download %s: %w", s.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("failed to download %s: unexpected status %s", s.url, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxCSVBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read body of %s: %w", s.url, err)
	}
	if len(data) > maxCSVBytes {
		return nil, fmt.Errorf("%s: %w (limit %d bytes)", s.url, ErrBodyTooLarge, maxCSVBytes)
	}
	return parser.ParseCSV(string(data)), nil
}
