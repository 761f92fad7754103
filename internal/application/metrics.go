package application

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"catanboard/internal/models"
)

const halfGlyph = "½"

// FormatWins renders whole numbers plainly and half wins with a ½ glyph
// (2.5 -> "2½", 0.5 -> "½"). Any other fraction is printed as is.
func FormatWins(wins float64) string {
	floor := math.Floor(wins)
	if wins == floor {
		return strconv.FormatFloat(wins, 'f', -1, 64)
	}
	if wins-floor == 0.5 {
		if floor == 0 {
			return halfGlyph
		}
		return strconv.FormatFloat(floor, 'f', -1, 64) + halfGlyph
	}
	return strconv.FormatFloat(wins, 'f', -1, 64)
}

// WinRate is wins per game played, 0 when no games were played.
func WinRate(p models.AggregatedPlayer) float64 {
	if p.GamesPlayed == 0 {
		return 0
	}
	return p.Wins / float64(p.GamesPlayed)
}

func FormatWinRate(p models.AggregatedPlayer) string {
	if p.GamesPlayed == 0 {
		return "-"
	}
	return fmt.Sprintf("%.1f%%", WinRate(p)*100)
}

// Initials takes the first letter of up to two space-separated name parts.
func Initials(name string) string {
	var sb strings.Builder
	parts := strings.Split(name, " ")
	if len(parts) > maxInitials {
		parts = parts[:maxInitials]
	}
	for _, part := range parts {
		r, size := utf8.DecodeRuneInString(part)
		if size == 0 {
			continue
		}
		sb.WriteRune(unicode.ToUpper(r))
	}
	return sb.String()
}
