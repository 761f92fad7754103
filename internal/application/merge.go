package application

import "catanboard/internal/models"

// MergePlayers aggregates sources (standard, caravan, seafarers, ...) into one
// entry per player, summing wins and games across sources. Output follows the
// order in which each player was first seen.
//
// A player repeated inside the first source keeps only its last row. Repeats in
// later sources add up like any other record.
func MergePlayers(sources ...[]models.PlayerRecord) []models.AggregatedPlayer {
	index := make(map[string]int)
	var merged []models.AggregatedPlayer

	for n, source := range sources {
		for _, p := range source {
			i, ok := index[p.Player]
			if !ok {
				index[p.Player] = len(merged)
				merged = append(merged, models.AggregatedPlayer{
					Player:      p.Player,
					Wins:        p.Wins,
					GamesPlayed: p.GamesPlayed,
				})
				continue
			}
			if n == 0 {
				merged[i].Wins = p.Wins
				merged[i].GamesPlayed = p.GamesPlayed
				continue
			}
			merged[i].Wins += p.Wins
			merged[i].GamesPlayed += p.GamesPlayed
		}
	}
	return merged
}

// Strip drops the derived fields of a ranked list.
func Strip(ranked []models.RankedPlayer) []models.AggregatedPlayer {
	out := make([]models.AggregatedPlayer, len(ranked))
	for i, p := range ranked {
		out[i] = p.AggregatedPlayer
	}
	return out
}
