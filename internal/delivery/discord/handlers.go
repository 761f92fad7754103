package discord

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"catanboard/internal/application"
)

const reloadTimeout = 30 * time.Second

func (b *Bot) handleTop(s *discordgo.Session, i *discordgo.Interaction) {
	sortBy := b.sortOption(i)

	board, err := b.services.Leaderboard.GetBoard(sortBy)
	if err != nil {
		b.respondError(s, i, err)
		return
	}

	if board.Empty() {
		b.respondMessage(s, i, "No players yet.", false)
		return
	}

	embed := &discordgo.MessageEmbed{
		Title:       topTitle(sortBy),
		Description: truncate(strings.Join(formatTopLines(board, topPlayersLimit), "\n")),
		Color:       colorGold,
		Footer:      &discordgo.MessageEmbedFooter{Text: board.SortLabel()},
	}

	s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Embeds: []*discordgo.MessageEmbed{embed}},
	})
}

func (b *Bot) handlePlayer(s *discordgo.Session, i *discordgo.Interaction) {
	sortBy := b.sortOption(i)
	name := optionString(i, "name")

	p, err := b.services.Leaderboard.GetPlayer(name, sortBy)
	if err != nil {
		b.respondError(s, i, err)
		return
	}

	s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Embeds: []*discordgo.MessageEmbed{playerEmbed(p, sortBy)}},
	})
}

func (b *Bot) handleReload(s *discordgo.Session, i *discordgo.Interaction) {
	ctx, cancel := context.WithTimeout(context.Background(), reloadTimeout)
	defer cancel()

	if err := b.services.Leaderboard.Load(ctx); err != nil {
		b.respondMessage(s, i, "Reload failed: "+err.Error(), true)
		return
	}
	status := b.services.Leaderboard.Status()
	b.respondMessage(s, i, fmt.Sprintf("Reloaded %d players from %d sources.", status.Players, len(status.Sources)), true)
}

func (b *Bot) handleExport(s *discordgo.Session, i *discordgo.Interaction) {
	data, err := b.services.Export.ExcelReport(b.sortOption(i))
	if err != nil {
		b.respondError(s, i, err)
		return
	}

	err = s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: "Leaderboard export",
			Files: []*discordgo.File{{
				Name:        reportFileName,
				ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
				Reader:      bytes.NewReader(data),
			}},
			Flags: discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		b.logger.Error("failed to send export", "error", err)
	}
}

func (b *Bot) handleSyncSheet(s *discordgo.Session, i *discordgo.Interaction) {
	s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Flags: discordgo.MessageFlagsEphemeral},
	})

	url, err := b.services.Sheets.SyncToGoogleSheet(b.defaultSort)
	msg := "Sheet updated: " + url
	if err != nil {
		b.logger.Error("sheet sync failed", "error", err)
		msg = "Sheet sync failed: " + err.Error()
	}
	if _, err := s.InteractionResponseEdit(i, &discordgo.WebhookEdit{Content: &msg}); err != nil {
		b.logger.Error("failed to edit interaction response", "error", err)
	}
}

func (b *Bot) respondError(s *discordgo.Session, i *discordgo.Interaction, err error) {
	switch {
	case errors.Is(err, application.ErrNotLoaded):
		b.respondMessage(s, i, "The leaderboard has not been loaded yet.", true)
	case errors.Is(err, application.ErrPlayerNotFound):
		b.respondMessage(s, i, "Player not found.", true)
	default:
		b.logger.Error("discord command failed", "error", err)
		embed := &discordgo.MessageEmbed{Title: "Error", Description: err.Error(), Color: colorRed}
		s.InteractionRespond(i, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{Embeds: []*discordgo.MessageEmbed{embed}, Flags: discordgo.MessageFlagsEphemeral},
		})
	}
}
