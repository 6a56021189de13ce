// =============================================================================
// AI Inventory Consolidator - Field Locator
// =============================================================================
//
// Given a normalized table and a canonical field key, the locator finds the
// column holding that field, or reports that none does. Matching is
// case-insensitive substring matching against an ordered variant list:
// the first variant that matches any column label wins, ties broken by
// variant declaration order (most specific first), then by column order.
//
// If no column label matches, the same variant list is checked against the
// first data row's cells. Some agencies publish generic labels with the real
// question text restated as the first row; header promotion usually catches
// those, but promotion requires two sentinels and a table can fall short of
// that while still carrying useful first-row text.
//
// Determinism: resolution walks slices only. Given an identical table and
// key it returns the same column every time.
//
// =============================================================================

package inventory

import (
	"strings"
)

// LocateField returns the index of the column resolved for the given field
// key, or -1 if the field cannot be located in this table.
func LocateField(t *Table, key FieldKey) int {
	// Vendor name needs a strict pre-pass: its generic "Vendor" variant would
	// otherwise capture the "purchased from a vendor or developed under
	// contract" column, which answers a different question.
	if key == FieldVendorName {
		if col := locateVendorNameStrict(t); col >= 0 {
			return col
		}
	}

	variants := Variants(key)

	// Pass 1: column labels.
	for _, variant := range variants {
		v := strings.ToLower(variant)
		for col, label := range t.Columns {
			if strings.Contains(strings.ToLower(strings.TrimSpace(label)), v) {
				return col
			}
		}
	}

	// Pass 2: first data row cells.
	if len(t.Rows) > 0 {
		for _, variant := range variants {
			v := strings.ToLower(variant)
			for col := range t.Columns {
				cell := strings.ToLower(strings.TrimSpace(t.Cell(0, col)))
				if cell != "" && strings.Contains(cell, v) {
					return col
				}
			}
		}
	}

	return -1
}

// locateVendorNameStrict resolves the vendor name column using exact or
// near-exact matching only. Returns -1 when the strict pass finds nothing,
// in which case the caller falls through to the generic substring pass.
func locateVendorNameStrict(t *Table) int {
	for col, label := range t.Columns {
		if vendorNameStrictMatch(label) {
			return col
		}
	}
	if len(t.Rows) > 0 {
		for col := range t.Columns {
			if vendorNameStrictMatch(t.Cell(0, col)) {
				return col
			}
		}
	}
	return -1
}

// vendorNameStrictMatch reports whether a label or cell value identifies the
// vendor name column under the strict rules: it contains one of the
// parenthesized/plural spellings, or equals one of the bare spellings.
func vendorNameStrictMatch(s string) bool {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" {
		return false
	}
	for _, sub := range vendorNameStrictSubstrings {
		if strings.Contains(v, sub) {
			return true
		}
	}
	for _, exact := range vendorNameStrictExact {
		if v == exact {
			return true
		}
	}
	return false
}
