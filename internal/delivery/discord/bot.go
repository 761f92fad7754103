package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"catanboard/internal/application"
	"catanboard/internal/models"
	"catanboard/pkg/config"
)

type Bot struct {
	session  *discordgo.Session
	services *application.Service
	logger   application.Logger

	guildID          string
	defaultSort      models.SortMode
	adminIDs         map[string]struct{}
	allowedChannelID string
}

func NewBot(cfg *config.Config, services *application.Service, logger application.Logger) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}

	admins := make(map[string]struct{})
	for _, id := range cfg.AdminUserIDs {
		cleanID := strings.TrimSpace(id)
		if cleanID != "" {
			admins[cleanID] = struct{}{}
		}
	}

	return &Bot{
		session:          s,
		services:         services,
		logger:           logger,
		guildID:          cfg.DiscordGuildID,
		defaultSort:      cfg.Sort(),
		adminIDs:         admins,
		allowedChannelID: cfg.AllowedChannelID,
	}, nil
}

func (b *Bot) Name() string {
	return "discord"
}

func (b *Bot) Init() error {
	b.session.AddHandler(b.onInteraction)
	return nil
}

func (b *Bot) Run(ctx context.Context) {
	if err := b.session.Open(); err != nil {
		b.logger.Error("failed to open discord session", "error", err)
		return
	}

	b.logger.Info("Discord bot started, registering slash commands")

	_, err := b.session.ApplicationCommandBulkOverwrite(b.session.State.User.ID, b.guildID, commands())
	if err != nil {
		b.logger.Error("failed to register commands", "error", err)
		return
	}
	b.logger.Info("slash commands registered")
}

func (b *Bot) Stop() {
	b.session.Close()
}

func (b *Bot) onInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	if b.allowedChannelID != "" && i.ChannelID != b.allowedChannelID {
		b.respondMessage(s, i.Interaction, "This channel is not allowed.", true)
		return
	}

	switch i.ApplicationCommandData().Name {
	case "top":
		b.handleTop(s, i.Interaction)
	case "player":
		b.handlePlayer(s, i.Interaction)
	case "reload":
		b.ensureAdmin(s, i.Interaction, b.handleReload)
	case "export":
		b.ensureAdmin(s, i.Interaction, b.handleExport)
	case "sync_sheet":
		b.ensureAdmin(s, i.Interaction, b.handleSyncSheet)
	}
}
