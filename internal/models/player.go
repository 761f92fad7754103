package models

import (
	"strconv"
	"strings"
)

// Column names expected in every leaderboard CSV.
const (
	ColumnPlayer      = "Player"
	ColumnWins        = "Wins"
	ColumnGamesPlayed = "GamesPlayed"
)

// PlayerRecord is one parsed CSV row. Raw keeps every header column
// (empty string when the row was short).
type PlayerRecord struct {
	Player      string            `json:"player"`
	Wins        float64           `json:"wins"`
	GamesPlayed int               `json:"games_played"`
	Raw         map[string]string `json:"-"`
}

// Field returns the raw value for a column, or "" when absent.
func (r PlayerRecord) Field(column string) string {
	return r.Raw[column]
}

type AggregatedPlayer struct {
	Player      string  `json:"player"`
	Wins        float64 `json:"wins"`
	GamesPlayed int     `json:"games_played"`
}

// Rank is a 1-based competition rank. Unranked marks players with no value
// on the ranked metric.
type Rank int

const Unranked Rank = 0

func (r Rank) IsRanked() bool {
	return r > Unranked
}

func (r Rank) String() string {
	if !r.IsRanked() {
		return "-"
	}
	return strconv.Itoa(int(r))
}

func (r Rank) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

type RankedPlayer struct {
	AggregatedPlayer
	WinRate          float64 `json:"win_rate"`
	WinRateFormatted string  `json:"win_rate_formatted"`
	Rank             Rank    `json:"rank"`
	WinsFormatted    string  `json:"wins_formatted"`
	Initials         string  `json:"initials"`
}

type SortMode string

const (
	SortWins    SortMode = "wins"
	SortWinRate SortMode = "winRate"
)

// ParseSortMode accepts "wins" and "winRate" (also "winrate", "win_rate").
func ParseSortMode(s string) (SortMode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "wins":
		return SortWins, true
	case "winrate", "win_rate":
		return SortWinRate, true
	default:
		return "", false
	}
}

func (m SortMode) Toggle() SortMode {
	if m == SortWinRate {
		return SortWins
	}
	return SortWinRate
}

func (m SortMode) Label() string {
	if m == SortWinRate {
		return "Sort: Win rate"
	}
	return "Sort: Wins"
}

// PageType selects whether the leaderboard reads one source or merges the
// expansion sources.
type PageType string

const (
	PageSingle   PageType = "single"
	PageCombined PageType = "combined"
)
