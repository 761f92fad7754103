package application

const (
	// Podium
	podiumSize = 3

	// Initials
	maxInitials = 2

	// Profile icons
	profilesDir     = "profiles/"
	profileExt      = ".svg"
	fallbackProfile = "robber"

	// Google Sheets configuration
	defaultSheetTitle = "Catan Leaderboard"
	defaultClearRange = "A1:Z1000"
	defaultStartCell  = "A1"

	// Excel report configuration
	excelSheetName = "Leaderboard"
)
