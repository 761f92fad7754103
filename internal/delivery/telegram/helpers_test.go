package telegram

import (
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"

	"catanboard/internal/application"
	"catanboard/internal/models"
)

func TestFormatTop(t *testing.T) {
	players := []models.AggregatedPlayer{
		{Player: "Andreas", Wins: 1, GamesPlayed: 2},
		{Player: "Fournaise", Wins: 3, GamesPlayed: 3},
	}
	board := application.BuildBoard(application.SortAndRankPlayers(players, models.SortWinRate), models.SortWinRate)

	want := "Sort: Win rate\n\n" +
		"🥇 Fournaise — 3 wins, 100.0% (3 games)\n" +
		"🥈 Andreas — 1 wins, 50.0% (2 games)"
	assert.Equal(t, want, formatTop(board, 10))
}

func TestFormatTopEmpty(t *testing.T) {
	board := application.BuildBoard(nil, models.SortWins)
	assert.Equal(t, "No players yet.", formatTop(board, 10))
}

func TestFormatPlayer(t *testing.T) {
	p := &models.RankedPlayer{
		AggregatedPlayer: models.AggregatedPlayer{Player: "Emil", Wins: 0, GamesPlayed: 2},
		WinsFormatted:    "0",
		WinRateFormatted: "0.0%",
	}
	assert.Equal(t, "Emil\nRank: -\nWins: 0\nGames: 2\nWin rate: 0.0%", formatPlayer(p))
}

func TestAdminAndSortArgs(t *testing.T) {
	b := &Bot{adminIDs: map[int64]struct{}{42: {}}, defaultSort: models.SortWins}

	assert.True(t, b.isAdmin(&tgbotapi.User{ID: 42}))
	assert.False(t, b.isAdmin(&tgbotapi.User{ID: 7}))
	assert.False(t, b.isAdmin(nil))

	assert.Equal(t, models.SortWinRate, b.sortArg(" winrate "))
	assert.Equal(t, models.SortWins, b.sortArg(""))
}
