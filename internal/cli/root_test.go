package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catanboard/internal/models"
	"catanboard/pkg/config"
)

func TestResolveSort(t *testing.T) {
	mode, err := resolveSort("", models.SortWinRate)
	require.NoError(t, err)
	assert.Equal(t, models.SortWinRate, mode)

	mode, err = resolveSort("WINS", models.SortWinRate)
	require.NoError(t, err)
	assert.Equal(t, models.SortWins, mode)

	_, err = resolveSort("losses", models.SortWins)
	assert.ErrorIs(t, err, config.ErrUnknownSort)
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"render", "table", "export", "sync"} {
		assert.True(t, names[want], want)
	}
}
