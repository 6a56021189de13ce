// =============================================================================
// AI Inventory Consolidator - Per-Agency Overrides
// =============================================================================
//
// A handful of agencies need literal, documented corrections that cannot be
// inferred from the data. They are kept in one lookup table rather than
// scattered conditionals so the exception list stays auditable. Keys are the
// agency display names derived from the raw-data folder names.
//
// =============================================================================

package inventory

// Override describes the special-case handling for one agency.
type Override struct {
	// SheetName selects a specific XLSX sheet instead of the first one.
	// Empty means first sheet.
	SheetName string

	// IDPrefix enables combined-field splitting: when a use case name reads
	// "<IDPrefix>NNN: Actual Name", the part before the first colon becomes
	// the use case id and the remainder the name.
	IDPrefix string
}

// overrides is the per-agency exception table.
var overrides = map[string]Override{
	// Agriculture files the id and name as one "USDA-001: Name" field.
	"Department Of Agriculture": {IDPrefix: "USDA-"},

	// Justice's workbook carries several sheets; only one is the inventory.
	"Department Of Justice": {SheetName: "Reportable AI Use Cases"},
}

// placeholderNames are use case names that are known placeholder tokens, not
// real use cases. Compared uppercase against the trimmed name.
var placeholderNames = map[string]bool{
	"NSF": true,
}

// OverrideFor returns the override entry for an agency, if any.
func OverrideFor(agency string) (Override, bool) {
	o, ok := overrides[agency]
	return o, ok
}

// SheetFor returns the XLSX sheet to load for an agency, or "" for the first
// sheet.
func SheetFor(agency string) string {
	return overrides[agency].SheetName
}
