// =============================================================================
// AI Inventory Consolidator - Raw Table
// =============================================================================
//
// A Table is the common in-memory form of one source file, whatever format it
// arrived in. The loaders (internal/loader) produce it; the header normalizer
// and row extractor consume it. Column labels are kept as an ordered slice,
// never a map: resolution order matters and must be deterministic.
//
// =============================================================================

package inventory

import (
	"fmt"
	"strings"
)

// PlaceholderPrefix is the label prefix assigned to columns whose header cell
// was empty in the source file. Tables carrying such labels are candidates
// for header promotion (see NormalizeHeaders).
const PlaceholderPrefix = "Column_"

// Table represents one loaded source file: an ordered set of column labels
// and the data rows beneath them. Rows may be ragged; Cell bounds-checks.
type Table struct {
	// Columns contains the column labels in file order. Labels may be
	// duplicated, empty, or placeholders.
	Columns []string

	// Rows contains the data rows in file order. Each row is a slice of cell
	// values aligned with Columns; short rows are treated as blank-padded.
	Rows [][]string

	// SourceFile is the path of the file this table was loaded from.
	// Used in diagnostics only.
	SourceFile string
}

// Cell returns the value at the given row and column, or the empty string if
// the position is out of range for this (possibly ragged) table.
func (t *Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) {
		return ""
	}
	r := t.Rows[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}

// IsEmpty reports whether the table has no columns or no data rows.
func (t *Table) IsEmpty() bool {
	return len(t.Columns) == 0 || len(t.Rows) == 0
}

// DropBlankRows removes rows whose every cell is blank. Survey exports often
// pad the bottom of the sheet with hundreds of empty rows.
func (t *Table) DropBlankRows() {
	kept := t.Rows[:0]
	for _, row := range t.Rows {
		if !rowIsBlank(row) {
			kept = append(kept, row)
		}
	}
	t.Rows = kept
}

// rowIsBlank reports whether every cell in the row is empty or whitespace.
func rowIsBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// PlaceholderLabel returns the label used for the i-th column (0-based) when
// the source file provides no header for it.
func PlaceholderLabel(i int) string {
	return fmt.Sprintf("%s%d", PlaceholderPrefix, i+1)
}

// isPlaceholderLabel reports whether a column label is one of the synthetic
// labels assigned to unnamed columns.
func isPlaceholderLabel(label string) bool {
	return label == "" || strings.HasPrefix(label, PlaceholderPrefix)
}
