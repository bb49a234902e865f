package app

import (
	"strings"
	"unicode/utf8"
)

// maxTracedQueryLength caps db.statement on spans; delivery inserts with
// RETURNING lists get long.
const maxTracedQueryLength = 512

// formatDBQueryForTrace folds a query onto one line and truncates it on a
// rune boundary.
func formatDBQueryForTrace(query string) string {
	normalized := strings.Join(strings.Fields(query), " ")
	if len(normalized) <= maxTracedQueryLength {
		return normalized
	}

	cut := maxTracedQueryLength
	for cut > 0 && !utf8.RuneStart(normalized[cut]) {
		cut--
	}
	return normalized[:cut] + "..."
}
