// =============================================================================
// AI Inventory Consolidator - Header Normalizer
// =============================================================================
//
// Agency exports are messy about headers: labels carry embedded newlines and
// runs of whitespace, and a number of agencies publish files whose declared
// header row is blank (or spreadsheet column letters) with the real question
// text sitting in the first data row. This module cleans labels and, when the
// evidence is strong enough, promotes that first row to be the header.
//
// PROMOTION RULE:
//   Promote only if BOTH hold:
//     1. the current labels contain at least one placeholder (unnamed) column
//     2. the first data row's concatenated text contains >= 2 of the known
//        sentinel phrases for this survey instrument
//   One sentinel alone is not enough: ordinary data rows mention phrases like
//   "use case name" often enough to cause false promotions.
//
// =============================================================================

package inventory

import (
	"strings"
)

// NormalizeHeaders cleans the table's column labels in place and promotes the
// first data row to header when it is recognized as an embedded header row.
// The promoted row is removed from the data.
func NormalizeHeaders(t *Table) {
	if t.IsEmpty() {
		cleanLabels(t)
		return
	}

	if hasPlaceholderColumns(t.Columns) && CountHeaderSentinels(t.Rows[0]) >= 2 {
		promoteFirstRow(t)
	}

	cleanLabels(t)
}

// CountHeaderSentinels counts how many sentinel phrases appear in the
// concatenated lowercase text of a row. Exported because the row extractor
// re-applies the same heuristic when choosing its start row.
func CountHeaderSentinels(row []string) int {
	return countSentinels(row, headerSentinels)
}

// CountStartRowSentinels is CountHeaderSentinels with the extended sentinel
// list used for start-row detection.
func CountStartRowSentinels(row []string) int {
	return countSentinels(row, startRowSentinels)
}

func countSentinels(row []string, sentinels []string) int {
	joined := strings.ToLower(strings.Join(row, " "))
	n := 0
	for _, phrase := range sentinels {
		if strings.Contains(joined, phrase) {
			n++
		}
	}
	return n
}

// hasPlaceholderColumns reports whether any column label is a placeholder for
// an unnamed column.
func hasPlaceholderColumns(columns []string) bool {
	for _, col := range columns {
		if isPlaceholderLabel(col) {
			return true
		}
	}
	return false
}

// promoteFirstRow replaces each column label with the corresponding cell of
// the first data row, keeping the original label where the cell is empty or
// a single character (too short to be a real question label). The first row
// is then consumed: it is a header, not data.
func promoteFirstRow(t *Table) {
	first := t.Rows[0]
	for i := range t.Columns {
		if i >= len(first) {
			continue
		}
		val := strings.TrimSpace(first[i])
		if len(val) > 1 {
			t.Columns[i] = val
		}
	}
	t.Rows = t.Rows[1:]
}

// cleanLabels collapses embedded newlines and whitespace runs in every column
// label and trims the result.
func cleanLabels(t *Table) {
	for i, col := range t.Columns {
		t.Columns[i] = CollapseWhitespace(col)
	}
}

// CollapseWhitespace trims a string and collapses every internal run of
// whitespace (including newlines and tabs) to a single space.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
