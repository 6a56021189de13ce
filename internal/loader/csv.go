// =============================================================================
// AI Inventory Consolidator - CSV Loader
// =============================================================================
//
// Loads one agency CSV into a Table. Agency exports are not disciplined CSV:
// rows have inconsistent field counts, quoting is sloppy, and several
// agencies publish Latin-1 encoded files. The reader is configured
// permissively and the whole file is retried through a Latin-1 decoder when
// the UTF-8 read fails.
//
// =============================================================================

package loader

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/ginjaninja78/ai-inventory-consolidator/internal/inventory"
)

// LoadCSV reads a CSV file into a Table. The first row becomes the column
// labels; empty labels get placeholder names so the header normalizer can
// recognize unnamed columns.
func LoadCSV(path string) (*inventory.Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	rows, err := readAllRows(bytes.NewReader(data))
	if err != nil || !utf8.Valid(data) {
		// Either the bytes are not valid UTF-8 or the parse tripped over
		// them; retry through a Latin-1 decode before giving up.
		decoded := transform.NewReader(bytes.NewReader(data), charmap.ISO8859_1.NewDecoder())
		rows, err = readAllRows(decoded)
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}
	}

	if len(rows) == 0 {
		return &inventory.Table{SourceFile: path}, nil
	}

	return tableFromRows(rows, path), nil
}

// readAllRows reads every CSV record from r with the permissive settings the
// agency exports require.
func readAllRows(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	// Agency exports routinely vary field counts row to row.
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true
	return cr.ReadAll()
}

// tableFromRows converts raw rows into a Table, taking the first row as the
// header and substituting placeholder labels for empty header cells.
func tableFromRows(rows [][]string, path string) *inventory.Table {
	columns := make([]string, len(rows[0]))
	for i, label := range rows[0] {
		if label == "" {
			columns[i] = inventory.PlaceholderLabel(i)
		} else {
			columns[i] = label
		}
	}

	return &inventory.Table{
		Columns:    columns,
		Rows:       rows[1:],
		SourceFile: path,
	}
}
