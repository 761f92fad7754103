package discord

import "github.com/bwmarrin/discordgo"

var sortChoices = []*discordgo.ApplicationCommandOptionChoice{
	{Name: "Wins", Value: "wins"},
	{Name: "Win rate", Value: "winRate"},
}

func newTopCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "top",
		Description: "Leaderboard",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "sort",
				Description: "Sort by",
				Required:    false,
				Choices:     sortChoices,
			},
		},
	}
}

func newPlayerCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "player",
		Description: "Stats for one player",
		Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionString, Name: "name", Description: "Player name", Required: true},
		},
	}
}

func newReloadCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "reload",
		Description: "Re-fetch the leaderboard CSVs (admins only)",
	}
}

func newExportCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "export",
		Description: "Export the leaderboard to Excel (admins only)",
		Options: []*discordgo.ApplicationCommandOption{
			{Type: discordgo.ApplicationCommandOptionString, Name: "sort", Description: "Sort by", Required: false, Choices: sortChoices},
		},
	}
}

func newSyncSheetCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "sync_sheet",
		Description: "Publish the leaderboard to Google Sheets (admins only)",
	}
}

func commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		newTopCommand(),
		newPlayerCommand(),
		newReloadCommand(),
		newExportCommand(),
		newSyncSheetCommand(),
	}
}
