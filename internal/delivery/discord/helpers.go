package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"catanboard/internal/application"
	"catanboard/internal/models"
	"catanboard/internal/render"
)

func optionString(i *discordgo.Interaction, name string) string {
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == name {
			return opt.StringValue()
		}
	}
	return ""
}

// sortOption reads the "sort" option, falling back to the configured default.
func (b *Bot) sortOption(i *discordgo.Interaction) models.SortMode {
	if mode, ok := models.ParseSortMode(optionString(i, "sort")); ok {
		return mode
	}
	return b.defaultSort
}

func topTitle(sortBy models.SortMode) string {
	if sortBy == models.SortWinRate {
		return "Leaderboard (by win rate)"
	}
	return "Leaderboard (by wins)"
}

// formatTopLines renders up to limit players, podium players with a medal and
// everybody else with their rank.
func formatTopLines(board application.Board, limit int) []string {
	players := board.Players()
	if len(players) > limit {
		players = players[:limit]
	}

	lines := make([]string, 0, len(players))
	for idx, p := range players {
		prefix := fmt.Sprintf("`%s.`", p.Rank)
		if idx < len(board.Podium) {
			prefix = render.Medal(idx + 1)
		}
		lines = append(lines, fmt.Sprintf("%s **%s** — %s wins · %s (%d games)",
			prefix, p.Player, p.WinsFormatted, p.WinRateFormatted, p.GamesPlayed))
	}
	return lines
}

func playerEmbed(p *models.RankedPlayer, sortBy models.SortMode) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: p.Player,
		Color: colorBlue,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Rank", Value: p.Rank.String(), Inline: true},
			{Name: "Wins", Value: p.WinsFormatted, Inline: true},
			{Name: "Games", Value: fmt.Sprintf("%d", p.GamesPlayed), Inline: true},
			{Name: "Win rate", Value: p.WinRateFormatted, Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: sortBy.Label()},
	}
}

func truncate(msg string) string {
	if len(msg) <= maxMessageLength {
		return msg
	}
	return strings.ToValidUTF8(msg[:maxMessageTruncation], "") + "…"
}
