package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"catanboard/internal/application"
	"catanboard/internal/models"
	"catanboard/internal/render"
)

const (
	topPlayersLimit = 10
	reportFileName  = "leaderboard.xlsx"
)

const helpText = `/top [wins|winRate] - leaderboard
/top_winrate - leaderboard by win rate
/player <name> - one player's stats`

func (b *Bot) isAdmin(user *tgbotapi.User) bool {
	if user == nil {
		return false
	}
	_, ok := b.adminIDs[user.ID]
	return ok
}

func (b *Bot) sortArg(arg string) models.SortMode {
	if mode, ok := models.ParseSortMode(arg); ok {
		return mode
	}
	return b.defaultSort
}

func (b *Bot) sendMessage(chatID int64, text string) {
	if text == "" {
		return
	}
	if _, err := b.bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		b.logger.Error("failed to send message", "chat", chatID, "error", err)
	}
}

func formatTop(board application.Board, limit int) string {
	if board.Empty() {
		return "No players yet."
	}

	var sb strings.Builder
	sb.WriteString(board.SortLabel())
	sb.WriteString("\n\n")

	players := board.Players()
	if len(players) > limit {
		players = players[:limit]
	}
	for idx, p := range players {
		prefix := p.Rank.String() + "."
		if idx < len(board.Podium) {
			prefix = render.Medal(idx + 1)
		}
		sb.WriteString(fmt.Sprintf("%s %s — %s wins, %s (%d games)\n",
			prefix, p.Player, p.WinsFormatted, p.WinRateFormatted, p.GamesPlayed))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func formatPlayer(p *models.RankedPlayer) string {
	return fmt.Sprintf("%s\nRank: %s\nWins: %s\nGames: %d\nWin rate: %s",
		p.Player, p.Rank, p.WinsFormatted, p.GamesPlayed, p.WinRateFormatted)
}
