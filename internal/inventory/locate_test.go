package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocateField_MatchesColumnLabels(t *testing.T) {
	table := &Table{
		Columns: []string{"Use Case ID", "Use Case Name", "Stage of Development"},
		Rows:    [][]string{{"AG-1", "Widget Detector", "Deployed"}},
	}

	assert.Equal(t, 0, LocateField(table, FieldUseCaseID))
	assert.Equal(t, 1, LocateField(table, FieldUseCaseName))
	assert.Equal(t, 2, LocateField(table, FieldStage))
}

func TestLocateField_CaseInsensitiveSubstring(t *testing.T) {
	table := &Table{
		Columns: []string{"WHAT IS THE STAGE OF DEVELOPMENT?"},
	}

	assert.Equal(t, 0, LocateField(table, FieldStage))
}

func TestLocateField_Unresolved(t *testing.T) {
	table := &Table{
		Columns: []string{"Completely", "Unrelated", "Labels"},
		Rows:    [][]string{{"1", "2", "3"}},
	}

	assert.Equal(t, -1, LocateField(table, FieldStage))
}

// Variant declaration order breaks ties before column order: "Stage of
// Development" appears after a column containing the later variant "Status",
// and the earlier variant must win.
func TestLocateField_VariantOrderBeatsColumnOrder(t *testing.T) {
	table := &Table{
		Columns: []string{"Lifecycle Status", "Stage"},
	}

	// "Stage" is the first variant for FieldStage, so column 1 wins even
	// though column 0 matches the later "Status" variant.
	assert.Equal(t, 1, LocateField(table, FieldStage))
}

func TestLocateField_FallsBackToFirstRow(t *testing.T) {
	table := &Table{
		Columns: []string{"A", "B", "C"},
		Rows: [][]string{
			{"Use Case ID", "Use Case Name", "Stage of Development"},
			{"AG-1", "Widget Detector", "Deployed"},
		},
	}

	assert.Equal(t, 1, LocateField(table, FieldUseCaseName))
	assert.Equal(t, 2, LocateField(table, FieldStage))
}

// Vendor name must not capture the "purchased from a vendor or developed
// under contract" column even though that label contains "vendor".
func TestLocateField_VendorNameStrictPass(t *testing.T) {
	table := &Table{
		Columns: []string{
			"Was the system involved in this use case purchased from a vendor or developed under contract(s) or in-house?",
			"Vendor(s) Name",
		},
	}

	assert.Equal(t, 1, LocateField(table, FieldVendorName))
	assert.Equal(t, 0, LocateField(table, FieldVendorPurchased))
}

// When no strict vendor label exists, the generic substring pass applies.
func TestLocateField_VendorNameGenericFallback(t *testing.T) {
	table := &Table{
		Columns: []string{"Use Case Name", "Vendor details provided"},
	}

	assert.Equal(t, 1, LocateField(table, FieldVendorName))
}

// Repeated resolution of the same table and key must return the same column
// every time: the locator walks ordered slices, never map iteration.
func TestLocateField_Deterministic(t *testing.T) {
	table := &Table{
		Columns: []string{"Status", "Stage", "Deployment Phase", "Stage of Development"},
	}

	first := LocateField(table, FieldStage)
	require.GreaterOrEqual(t, first, 0)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, LocateField(table, FieldStage))
	}
}
