package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catanboard/internal/models"
)

type fakeSheetsClient struct {
	created     int
	permissions []string
	public      bool
	cleared     string
	updated     [][]interface{}
}

func (f *fakeSheetsClient) CreateSpreadsheet(title string) (string, string, error) {
	f.created++
	return "new-sheet", "https://docs.google.com/spreadsheets/d/new-sheet", nil
}

func (f *fakeSheetsClient) AddPermission(id, email, role string) error {
	f.permissions = append(f.permissions, email+":"+role)
	return nil
}

func (f *fakeSheetsClient) MakePublic(id string) error {
	f.public = true
	return nil
}

func (f *fakeSheetsClient) ClearRange(id, rng string) error {
	f.cleared = rng
	return nil
}

func (f *fakeSheetsClient) UpdateValues(id, rng string, values [][]interface{}) error {
	f.updated = values
	return nil
}

func (f *fakeSheetsClient) ReadValues(ctx context.Context, id, rng string) ([][]string, error) {
	return nil, nil
}

func TestSyncToGoogleSheetCreatesOnce(t *testing.T) {
	src := &stubSource{name: "s", records: []models.PlayerRecord{rec("Alex", 3, 4)}}
	svc, _ := newTestService(src)
	require.NoError(t, svc.Load(context.Background()))

	client := &fakeSheetsClient{}
	sheets := NewSheetsServiceImpl(svc, client, "", "owner@example.com", nopLogger{})

	url, err := sheets.SyncToGoogleSheet(models.SortWins)
	require.NoError(t, err)
	assert.Equal(t, "https://docs.google.com/spreadsheets/d/new-sheet", url)
	assert.True(t, client.public)
	assert.Equal(t, []string{"owner@example.com:writer"}, client.permissions)
	assert.Equal(t, defaultClearRange, client.cleared)

	require.Len(t, client.updated, 2)
	assert.Equal(t, "Rank", client.updated[0][0])
	assert.Equal(t, []interface{}{"1", "Alex", 3.0, 4, "75.0%"}, client.updated[1])

	_, err = sheets.SyncToGoogleSheet(models.SortWinRate)
	require.NoError(t, err)
	assert.Equal(t, 1, client.created)
}

func TestSyncToGoogleSheetUsesConfiguredID(t *testing.T) {
	svc, _ := newTestService(&stubSource{name: "s"})
	require.NoError(t, svc.Load(context.Background()))

	client := &fakeSheetsClient{}
	url, err := NewSheetsServiceImpl(svc, client, "existing", "", nopLogger{}).SyncToGoogleSheet(models.SortWins)
	require.NoError(t, err)
	assert.Equal(t, "https://docs.google.com/spreadsheets/d/existing", url)
	assert.Zero(t, client.created)
	assert.False(t, client.public)
}

func TestSyncToGoogleSheetNotConfigured(t *testing.T) {
	svc, _ := newTestService(&stubSource{name: "s"})
	_, err := NewSheetsServiceImpl(svc, nil, "", "", nopLogger{}).SyncToGoogleSheet(models.SortWins)
	assert.ErrorIs(t, err, ErrSheetsNotConfigured)
}
