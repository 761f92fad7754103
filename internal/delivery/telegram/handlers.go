package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"catanboard/internal/application"
	"catanboard/internal/models"
)

const reloadTimeout = 30 * time.Second

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	switch msg.Command() {
	case "start", "help":
		b.sendMessage(chatID, helpText)
	case "top":
		b.handleTop(chatID, b.sortArg(msg.CommandArguments()))
	case "top_winrate":
		b.handleTop(chatID, models.SortWinRate)
	case "player":
		b.handlePlayer(chatID, msg.CommandArguments())
	case "reload":
		if !b.isAdmin(msg.From) {
			b.sendMessage(chatID, "You are not allowed to do that.")
			return
		}
		b.handleReload(ctx, chatID)
	case "export":
		if !b.isAdmin(msg.From) {
			b.sendMessage(chatID, "You are not allowed to do that.")
			return
		}
		b.handleExport(chatID)
	default:
		b.sendMessage(chatID, "Unknown command. Try /help.")
	}
}

func (b *Bot) handleTop(chatID int64, sortBy models.SortMode) {
	board, err := b.services.Leaderboard.GetBoard(sortBy)
	if err != nil {
		b.sendError(chatID, err)
		return
	}
	b.sendMessage(chatID, formatTop(board, topPlayersLimit))
}

func (b *Bot) handlePlayer(chatID int64, name string) {
	if strings.TrimSpace(name) == "" {
		b.sendMessage(chatID, "Usage: /player <name>")
		return
	}
	p, err := b.services.Leaderboard.GetPlayer(name, b.defaultSort)
	if err != nil {
		b.sendError(chatID, err)
		return
	}
	b.sendMessage(chatID, formatPlayer(p))
}

func (b *Bot) handleReload(ctx context.Context, chatID int64) {
	ctx, cancel := context.WithTimeout(ctx, reloadTimeout)
	defer cancel()

	if err := b.services.Leaderboard.Load(ctx); err != nil {
		b.sendMessage(chatID, "Reload failed: "+err.Error())
		return
	}
	status := b.services.Leaderboard.Status()
	b.sendMessage(chatID, fmt.Sprintf("Reloaded %d players from %d sources.", status.Players, len(status.Sources)))
}

func (b *Bot) handleExport(chatID int64) {
	data, err := b.services.Export.ExcelReport(b.defaultSort)
	if err != nil {
		b.sendError(chatID, err)
		return
	}
	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{Name: reportFileName, Bytes: data})
	if _, err := b.bot.Send(doc); err != nil {
		b.logger.Error("failed to send export", "chat", chatID, "error", err)
	}
}

func (b *Bot) sendError(chatID int64, err error) {
	switch {
	case errors.Is(err, application.ErrNotLoaded):
		b.sendMessage(chatID, "The leaderboard has not been loaded yet.")
	case errors.Is(err, application.ErrPlayerNotFound):
		b.sendMessage(chatID, "Player not found.")
	default:
		b.logger.Error("telegram command failed", "chat", chatID, "error", err)
		b.sendMessage(chatID, "Something went wrong.")
	}
}
