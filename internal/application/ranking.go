package application

import (
	"sort"

	"catanboard/internal/models"
)

// SortAndRankPlayers orders players by the chosen metric and assigns
// competition ranks: ties share a rank and the next distinct value resumes at
// its position (1, 2, 2, 4). Players with nothing on the ranked metric are
// Unranked.
func SortAndRankPlayers(players []models.AggregatedPlayer, sortBy models.SortMode) []models.RankedPlayer {
	ranked := make([]models.RankedPlayer, len(players))
	for i, p := range players {
		ranked[i] = models.RankedPlayer{
			AggregatedPlayer: p,
			WinRate:          WinRate(p),
			WinRateFormatted: FormatWinRate(p),
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return less(ranked[i], ranked[j], sortBy)
	})

	rank := models.Unranked
	var prev float64
	hasPrev := false
	for i := range ranked {
		p := &ranked[i]
		p.WinsFormatted = FormatWins(p.Wins)
		p.Initials = Initials(p.Player)

		if !qualifies(*p, sortBy) {
			p.Rank = models.Unranked
			continue
		}
		value := metric(*p, sortBy)
		if !hasPrev || value != prev {
			rank = models.Rank(i + 1)
		}
		p.Rank = rank
		prev = value
		hasPrev = true
	}
	return ranked
}

func less(a, b models.RankedPlayer, sortBy models.SortMode) bool {
	if sortBy == models.SortWinRate {
		if a.WinRate != b.WinRate {
			return a.WinRate > b.WinRate
		}
		if a.GamesPlayed != b.GamesPlayed {
			return a.GamesPlayed > b.GamesPlayed
		}
	}
	if a.Wins != b.Wins {
		return a.Wins > b.Wins
	}
	return a.GamesPlayed < b.GamesPlayed
}

func metric(p models.RankedPlayer, sortBy models.SortMode) float64 {
	if sortBy == models.SortWinRate {
		return p.WinRate
	}
	return p.Wins
}

// qualifies reports whether p has a positive value on the ranked metric. Under
// win rate a player also needs at least one game.
func qualifies(p models.RankedPlayer, sortBy models.SortMode) bool {
	if sortBy == models.SortWinRate {
		return p.GamesPlayed > 0 && p.WinRate > 0
	}
	return p.Wins > 0
}
