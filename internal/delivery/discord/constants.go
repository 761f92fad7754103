package discord

const (
	// Display limits
	topPlayersLimit      = 10
	maxMessageLength     = 2000
	maxMessageTruncation = 1990

	// Embed colors
	colorGold = 0xFFD700 // Leaderboard
	colorBlue = 0x3498DB // Player card
	colorRed  = 0xE74C3C // Failures

	reportFileName = "leaderboard.xlsx"
)
