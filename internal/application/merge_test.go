package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catanboard/internal/models"
)

func TestMergePlayersSumsSharedPlayers(t *testing.T) {
	standard := []models.PlayerRecord{rec("A", 3, 5)}
	caravan := []models.PlayerRecord{rec("A", 2, 3)}

	merged := MergePlayers(standard, caravan)
	require.Len(t, merged, 1)
	assert.Equal(t, agg("A", 5, 8), merged[0])

	ranked := SortAndRankPlayers(merged, models.SortWins)
	assert.Equal(t, models.Rank(1), ranked[0].Rank)
}

func TestMergePlayersDisjointSources(t *testing.T) {
	merged := MergePlayers(
		[]models.PlayerRecord{rec("X", 1, 2)},
		[]models.PlayerRecord{rec("Y", 0.5, 4)},
	)
	assert.Equal(t, []models.AggregatedPlayer{agg("X", 1, 2), agg("Y", 0.5, 4)}, merged)
}

func TestMergePlayersFirstInsertionOrder(t *testing.T) {
	merged := MergePlayers(
		[]models.PlayerRecord{rec("B", 1, 1), rec("A", 1, 1)},
		[]models.PlayerRecord{rec("C", 1, 1), rec("A", 2, 2)},
		[]models.PlayerRecord{rec("D", 1, 1), rec("B", 1, 3)},
	)
	require.Len(t, merged, 4)
	assert.Equal(t, agg("B", 2, 4), merged[0])
	assert.Equal(t, agg("A", 3, 3), merged[1])
	assert.Equal(t, "C", merged[2].Player)
	assert.Equal(t, "D", merged[3].Player)
}

func TestMergePlayersDuplicateInFirstSourceOverwrites(t *testing.T) {
	merged := MergePlayers(
		[]models.PlayerRecord{rec("Z", 1, 2), rec("Q", 1, 1), rec("Z", 4, 6)},
		[]models.PlayerRecord{rec("Z", 1, 1)},
	)
	require.Len(t, merged, 2)
	assert.Equal(t, agg("Z", 5, 7), merged[0])
	assert.Equal(t, agg("Q", 1, 1), merged[1])
}

func TestMergePlayersDuplicateInLaterSourceSums(t *testing.T) {
	merged := MergePlayers(
		[]models.PlayerRecord{rec("A", 1, 1)},
		[]models.PlayerRecord{rec("A", 2, 2), rec("A", 3, 3)},
	)
	require.Len(t, merged, 1)
	assert.Equal(t, agg("A", 6, 6), merged[0])

	seafarers := MergePlayers(
		[]models.PlayerRecord{rec("A", 1, 1)},
		[]models.PlayerRecord{rec("B", 1, 2)},
		[]models.PlayerRecord{rec("B", 1, 1), rec("C", 0, 1), rec("B", 0.5, 1)},
	)
	assert.Equal(t, []models.AggregatedPlayer{agg("A", 1, 1), agg("B", 2.5, 4), agg("C", 0, 1)}, seafarers)
}

func TestMergePlayersSingleSourceKeepsLastRow(t *testing.T) {
	merged := MergePlayers([]models.PlayerRecord{rec("M", 2, 3), rec("M", 1, 4)})
	assert.Equal(t, []models.AggregatedPlayer{agg("M", 1, 4)}, merged)
}

func TestMergePlayersOptionalSeafarers(t *testing.T) {
	standard := []models.PlayerRecord{rec("A", 1, 1)}
	caravan := []models.PlayerRecord{rec("A", 1, 1)}

	assert.Equal(t, MergePlayers(standard, caravan), MergePlayers(standard, caravan, nil))
	assert.Empty(t, MergePlayers())
}
