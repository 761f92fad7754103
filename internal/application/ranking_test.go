package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catanboard/internal/models"
)

func TestCompetitionRanking(t *testing.T) {
	players := []models.AggregatedPlayer{
		agg("C", 8, 10),
		agg("A", 10, 12),
		agg("B", 10, 12),
	}

	ranked := SortAndRankPlayers(players, models.SortWins)
	assert.Equal(t, []models.Rank{1, 1, 3}, ranks(ranked))
	assert.Equal(t, []string{"A", "B", "C"}, names(ranked))
}

func TestWinsTieBreaksOnFewerGames(t *testing.T) {
	players := []models.AggregatedPlayer{
		agg("Busy", 4, 10),
		agg("Efficient", 4, 5),
	}

	ranked := SortAndRankPlayers(players, models.SortWins)
	assert.Equal(t, []string{"Efficient", "Busy"}, names(ranked))
	assert.Equal(t, []models.Rank{1, 1}, ranks(ranked))
}

func TestZeroWinsIsUnranked(t *testing.T) {
	players := []models.AggregatedPlayer{
		agg("Zero", 0, 7),
		agg("One", 1, 2),
		agg("Nobody", 0, 0),
	}

	ranked := SortAndRankPlayers(players, models.SortWins)
	assert.Equal(t, []string{"One", "Nobody", "Zero"}, names(ranked))
	assert.Equal(t, []models.Rank{1, models.Unranked, models.Unranked}, ranks(ranked))
	assert.Equal(t, "-", ranked[1].Rank.String())
}

func TestWinRateOrderingAndRanks(t *testing.T) {
	players := []models.AggregatedPlayer{
		agg("A", 2, 4),
		agg("B", 1, 2),
		agg("C", 3, 3),
		agg("D", 0, 0),
		agg("E", 0, 5),
	}

	ranked := SortAndRankPlayers(players, models.SortWinRate)
	assert.Equal(t, []string{"C", "A", "B", "E", "D"}, names(ranked))
	assert.Equal(t, []models.Rank{1, 2, 2, models.Unranked, models.Unranked}, ranks(ranked))
	assert.Equal(t, "-", ranked[4].WinRateFormatted)
	assert.Equal(t, "0.0%", ranked[3].WinRateFormatted)
}

func TestWinRateZeroGamesNeverRankedFirst(t *testing.T) {
	ranked := SortAndRankPlayers([]models.AggregatedPlayer{agg("Fresh", 0, 0)}, models.SortWinRate)
	require.Len(t, ranked, 1)
	assert.Equal(t, models.Unranked, ranked[0].Rank)
}

func TestWinRateTieBreakOrder(t *testing.T) {
	// Equal rates: more games played sorts first.
	players := []models.AggregatedPlayer{
		agg("Half", 0.5, 1),
		agg("OneOfTwo", 1, 2),
		agg("TwoOfFour", 2, 4),
	}

	ranked := SortAndRankPlayers(players, models.SortWinRate)
	assert.Equal(t, []string{"TwoOfFour", "OneOfTwo", "Half"}, names(ranked))
	assert.Equal(t, []models.Rank{1, 1, 1}, ranks(ranked))
}

func TestRankingDerivedFields(t *testing.T) {
	ranked := SortAndRankPlayers([]models.AggregatedPlayer{agg("anna belle", 2.5, 3)}, models.SortWins)
	require.Len(t, ranked, 1)

	p := ranked[0]
	assert.Equal(t, "2½", p.WinsFormatted)
	assert.Equal(t, "AB", p.Initials)
	assert.InDelta(t, 0.8333, p.WinRate, 0.001)
	assert.Equal(t, "83.3%", p.WinRateFormatted)
}

func TestRankingIsIdempotent(t *testing.T) {
	players := []models.AggregatedPlayer{
		agg("A", 3, 5),
		agg("B", 3, 4),
		agg("C", 0, 2),
		agg("D", 1.5, 2),
		agg("E", 3, 5),
	}

	for _, mode := range []models.SortMode{models.SortWins, models.SortWinRate} {
		first := SortAndRankPlayers(players, mode)
		second := SortAndRankPlayers(Strip(first), mode)
		assert.Equal(t, first, second, "mode %s", mode)
	}
}

func TestRankingDoesNotMutateInput(t *testing.T) {
	players := []models.AggregatedPlayer{agg("B", 1, 1), agg("A", 2, 2)}
	SortAndRankPlayers(players, models.SortWins)
	assert.Equal(t, "B", players[0].Player)
}
