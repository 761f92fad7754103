// Package parser turns leaderboard CSV text into typed player records.
//
// The format is deliberately simple: a header line, then one player per line,
// fields separated by commas. Quoting and embedded commas are not supported.
package parser

import (
	"strconv"
	"strings"

	"catanboard/internal/models"
)

const fieldSeparator = ","

// ParseCSV parses raw CSV text. N data lines yield N records; a short row maps
// its missing trailing columns to "".
func ParseCSV(text string) []models.PlayerRecord {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	lines := strings.Split(text, "\n")
	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, strings.Split(strings.TrimRight(line, "\r"), fieldSeparator))
	}
	return FromRows(rows)
}

// FromRows builds records from a header row followed by data rows, as returned
// by spreadsheet APIs.
func FromRows(rows [][]string) []models.PlayerRecord {
	if len(rows) == 0 {
		return nil
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}

	records := make([]models.PlayerRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		raw := make(map[string]string, len(headers))
		for i, h := range headers {
			value := ""
			if i < len(row) {
				value = strings.TrimSpace(row[i])
			}
			raw[h] = value
		}
		records = append(records, newRecord(raw))
	}
	return records
}

// Counts are never negative; a negative cell reads as 0.
func newRecord(raw map[string]string) models.PlayerRecord {
	return models.PlayerRecord{
		Player:      raw[models.ColumnPlayer],
		Wins:        max(ParseFloat(raw[models.ColumnWins]), 0),
		GamesPlayed: max(ParseInt(raw[models.ColumnGamesPlayed]), 0),
		Raw:         raw,
	}
}

// ParseFloat reads the longest numeric prefix of s ("2.5x" is 2.5). Anything
// unparseable is 0.
func ParseFloat(s string) float64 {
	prefix := numericPrefix(strings.TrimSpace(s), true)
	if prefix == "" {
		return 0
	}
	v, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		return 0
	}
	return v
}

// ParseInt reads the leading integer of s ("7.9" is 7). Anything unparseable
// is 0.
func ParseInt(s string) int {
	prefix := numericPrefix(strings.TrimSpace(s), false)
	if prefix == "" {
		return 0
	}
	v, err := strconv.Atoi(prefix)
	if err != nil {
		return 0
	}
	return v
}

func numericPrefix(s string, fractional bool) string {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if fractional && i < len(s) && s[i] == '.' {
		j := i + 1
		frac := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			frac++
		}
		if digits > 0 || frac > 0 {
			i = j
			digits += frac
		}
	}
	if digits == 0 {
		return ""
	}
	if fractional && i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		exp := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			exp++
		}
		if exp > 0 {
			i = j
		}
	}
	return s[:i]
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
