package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSVYieldsOneRecordPerLine(t *testing.T) {
	text := "Player,Wins,GamesPlayed\nMicki,3,5\nDaniel,2.5,4\nMorn,0,1\n"

	records := ParseCSV(text)
	require.Len(t, records, 3)

	assert.Equal(t, "Micki", records[0].Player)
	assert.Equal(t, 3.0, records[0].Wins)
	assert.Equal(t, 5, records[0].GamesPlayed)
	assert.Equal(t, 2.5, records[1].Wins)
	assert.Equal(t, "0", records[2].Field("Wins"))
}

func TestParseCSVTrimsHeadersAndValues(t *testing.T) {
	text := " Player , Wins ,GamesPlayed\r\n  Emil ,  4 , 6 \r\n"

	records := ParseCSV(text)
	require.Len(t, records, 1)
	assert.Equal(t, "Emil", records[0].Player)
	assert.Equal(t, 4.0, records[0].Wins)
	assert.Equal(t, 6, records[0].GamesPlayed)
}

func TestParseCSVShortRowFillsEmptyFields(t *testing.T) {
	text := "Player,Wins,GamesPlayed,Notes\nRasmus,2"

	records := ParseCSV(text)
	require.Len(t, records, 1)

	r := records[0]
	for _, col := range []string{"Player", "Wins", "GamesPlayed", "Notes"} {
		_, ok := r.Raw[col]
		assert.True(t, ok, "column %s missing", col)
	}
	assert.Equal(t, "", r.Field("GamesPlayed"))
	assert.Equal(t, "", r.Field("Notes"))
	assert.Equal(t, 0, r.GamesPlayed)
}

func TestParseCSVNegativeCountsReadAsZero(t *testing.T) {
	records := ParseCSV("Player,Wins,GamesPlayed\nA,-9,-10\nB,1,2")
	require.Len(t, records, 2)

	assert.Equal(t, 0.0, records[0].Wins)
	assert.Equal(t, 0, records[0].GamesPlayed)
	assert.Equal(t, "-9", records[0].Field("Wins"))
	assert.Equal(t, 1.0, records[1].Wins)
}

func TestParseCSVColumnOrderDoesNotMatter(t *testing.T) {
	text := "GamesPlayed,Player,Wins\n8,Alex,5"

	records := ParseCSV(text)
	require.Len(t, records, 1)
	assert.Equal(t, "Alex", records[0].Player)
	assert.Equal(t, 5.0, records[0].Wins)
	assert.Equal(t, 8, records[0].GamesPlayed)
}

func TestParseCSVEmptyInput(t *testing.T) {
	assert.Empty(t, ParseCSV(""))
	assert.Empty(t, ParseCSV("   \n"))
	assert.Empty(t, ParseCSV("Player,Wins,GamesPlayed\n"))
}

func TestParseCSVKeepsExtraColumns(t *testing.T) {
	records := ParseCSV("Player,Wins,GamesPlayed,Color\nReimer,1,2,blue")
	require.Len(t, records, 1)
	assert.Equal(t, "blue", records[0].Field("Color"))
}

func TestFromRows(t *testing.T) {
	rows := [][]string{
		{"Player", "Wins", "GamesPlayed"},
		{"Mohr", "1.5", "3"},
		{"Andreas"},
	}

	records := FromRows(rows)
	require.Len(t, records, 2)
	assert.Equal(t, 1.5, records[0].Wins)
	assert.Equal(t, "Andreas", records[1].Player)
	assert.Equal(t, 0.0, records[1].Wins)
	assert.Nil(t, FromRows(nil))
}

func TestParseFloat(t *testing.T) {
	cases := map[string]float64{
		"3":     3,
		"2.5":   2.5,
		" 0.5 ": 0.5,
		".5":    0.5,
		"4.0":   4,
		"2.5x":  2.5,
		"1e1":   10,
		"-1":    -1,
		"":      0,
		"abc":   0,
		"-":     0,
		".":     0,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseFloat(in), "ParseFloat(%q)", in)
	}
}

func TestParseInt(t *testing.T) {
	cases := map[string]int{
		"5":    5,
		"7.9":  7,
		"12ab": 12,
		"":     0,
		"x":    0,
		"-2":   -2,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseInt(in), "ParseInt(%q)", in)
	}
}
