package discord

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catanboard/internal/application"
	"catanboard/internal/models"
)

func TestFormatTopLines(t *testing.T) {
	players := []models.AggregatedPlayer{
		{Player: "Micki", Wins: 5, GamesPlayed: 8},
		{Player: "Daniel", Wins: 2.5, GamesPlayed: 6},
		{Player: "Morn", Wins: 0, GamesPlayed: 3},
	}
	board := application.BuildBoard(application.SortAndRankPlayers(players, models.SortWins), models.SortWins)

	lines := formatTopLines(board, 10)
	require.Len(t, lines, 3)
	assert.Equal(t, "🥇 **Micki** — 5 wins · 62.5% (8 games)", lines[0])
	assert.Equal(t, "🥈 **Daniel** — 2½ wins · 41.7% (6 games)", lines[1])
	assert.Equal(t, "`-.` **Morn** — 0 wins · 0.0% (3 games)", lines[2])

	assert.Len(t, formatTopLines(board, 2), 2)
}

func TestTopTitle(t *testing.T) {
	assert.Equal(t, "Leaderboard (by wins)", topTitle(models.SortWins))
	assert.Equal(t, "Leaderboard (by win rate)", topTitle(models.SortWinRate))
}

func TestTruncate(t *testing.T) {
	short := "hello"
	assert.Equal(t, short, truncate(short))

	long := strings.Repeat("é", maxMessageLength)
	out := truncate(long)
	assert.LessOrEqual(t, len(out), maxMessageLength)
	assert.True(t, strings.HasSuffix(out, "…"))
}

func TestPlayerEmbed(t *testing.T) {
	p := &models.RankedPlayer{
		AggregatedPlayer: models.AggregatedPlayer{Player: "Alex", Wins: 1, GamesPlayed: 0},
		WinRateFormatted: "-",
		WinsFormatted:    "1",
		Rank:             1,
	}
	embed := playerEmbed(p, models.SortWinRate)
	assert.Equal(t, "Alex", embed.Title)
	assert.Equal(t, "1", embed.Fields[0].Value)
	assert.Equal(t, "Sort: Win rate", embed.Footer.Text)
}
