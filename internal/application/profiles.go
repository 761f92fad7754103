package application

// playerProfiles maps known players to their avatar icon.
var playerProfiles = map[string]string{
	"Micki":     "city",
	"Daniel":    "knight",
	"Morn":      "ore",
	"Mohr":      "settlement",
	"Andreas":   "wheat",
	"Fournaise": "brick",
	"Emil":      "wood",
	"Rasmus":    "sheep",
	"Alex":      "dice",
	"Reimer":    "harbor",
}

// ProfileIcon returns the icon category for a player, the robber for anyone
// unknown.
func ProfileIcon(name string) string {
	if icon, ok := playerProfiles[name]; ok {
		return icon
	}
	return fallbackProfile
}

func ProfilePath(name, basePath string) string {
	return basePath + profilesDir + ProfileIcon(name) + profileExt
}
