package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractRecords_SingleRow(t *testing.T) {
	table := &Table{
		Columns:    []string{"Use Case ID", "Use Case Name", "Stage of Development"},
		Rows:       [][]string{{"AG-1", "Widget Detector", "a) Deployed"}},
		SourceFile: "test-agency/inventory.csv",
	}

	var issues Issues
	records := ExtractRecords(table, "Test Agency", &issues)

	require.Len(t, records, 1)
	rec := records[0]
	assert.Equal(t, "Test Agency", rec.Agency)
	assert.Equal(t, "AG-1", rec.UseCaseID)
	assert.Equal(t, "Widget Detector", rec.UseCaseName)
	assert.Equal(t, "a) Deployed", rec.RawStage)
	assert.Equal(t, StageInOperation, rec.Stage)
	assert.Equal(t, 0, issues.Len())
}

// A fully-specified row survives the pipeline verbatim (after strip
// normalization).
func TestExtractRecords_RoundTripVerbatim(t *testing.T) {
	table := &Table{
		Columns: []string{
			"Use Case ID", "Use Case Name", "Bureau/Component",
			"Stage of Development", "Vendor(s) Name", "Justification",
		},
		Rows: [][]string{{
			" AG-9 ", "  Fraud Triage  ", "Office of the CIO",
			"Retired", "Acme Corp", "Congressional mandate",
		}},
	}

	var issues Issues
	records := ExtractRecords(table, "Test Agency", &issues)

	require.Len(t, records, 1)
	rec := records[0]
	assert.Equal(t, "AG-9", rec.UseCaseID)
	assert.Equal(t, "Fraud Triage", rec.UseCaseName)
	assert.Equal(t, "Office of the CIO", rec.Attr(FieldBureau))
	assert.Equal(t, "Retired", rec.RawStage)
	assert.Equal(t, StageRetired, rec.Stage)
	assert.Equal(t, "Acme Corp", rec.Attr(FieldVendorName))
	assert.Equal(t, "Congressional mandate", rec.Attr(FieldJustification))
}

func TestExtractRecords_NeverEmitsEmptyIDAndName(t *testing.T) {
	table := &Table{
		Columns: []string{"Use Case ID", "Use Case Name", "Stage of Development"},
		Rows: [][]string{
			{"", "", "Deployed"},
			{"AG-1", "", "Deployed"},
			{"", "Widget Detector", "Pilot"},
			{"  ", "  ", ""},
		},
	}

	var issues Issues
	records := ExtractRecords(table, "Test Agency", &issues)

	require.Len(t, records, 2)
	for _, rec := range records {
		assert.True(t, rec.UseCaseID != "" || rec.UseCaseName != "")
	}
}

// A doubled header row has "use case" on BOTH sides; a record whose name
// alone starts with the phrase is kept.
func TestExtractRecords_DropsDoubledHeaderRowOnly(t *testing.T) {
	table := &Table{
		Columns: []string{"Use Case ID", "Use Case Name", "Stage of Development"},
		Rows: [][]string{
			{"Use Case Number", "Use Case Inventory", ""}, // both sides: dropped
			{"AG-7", "Use Case Tracker", "Deployed"},      // name only: kept
		},
	}

	var issues Issues
	records := ExtractRecords(table, "Test Agency", &issues)

	require.Len(t, records, 1)
	assert.Equal(t, "AG-7", records[0].UseCaseID)
	assert.Equal(t, "Use Case Tracker", records[0].UseCaseName)
}

func TestExtractRecords_DropsPlaceholderNames(t *testing.T) {
	table := &Table{
		Columns: []string{"Use Case ID", "Use Case Name"},
		Rows: [][]string{
			{"", "NSF"},
			{"", "nsf"},
			{"AG-1", "Real Use Case"},
		},
	}

	var issues Issues
	records := ExtractRecords(table, "National Science Foundation", &issues)

	require.Len(t, records, 1)
	assert.Equal(t, "Real Use Case", records[0].UseCaseName)
}

// Agriculture files id and name combined as "USDA-001: Name".
func TestExtractRecords_AgricultureIDSplit(t *testing.T) {
	table := &Table{
		Columns: []string{"Use Case Name", "Stage of Development"},
		Rows: [][]string{
			{"USDA-001: Crop Yield Forecast", "Deployed"},
			{"Plain Name Without Prefix", "Pilot"},
		},
	}

	var issues Issues
	records := ExtractRecords(table, "Department Of Agriculture", &issues)

	require.Len(t, records, 2)
	assert.Equal(t, "USDA-001", records[0].UseCaseID)
	assert.Equal(t, "Crop Yield Forecast", records[0].UseCaseName)
	assert.Empty(t, records[1].UseCaseID)
	assert.Equal(t, "Plain Name Without Prefix", records[1].UseCaseName)
}

// The split is gated on the agency: other agencies keep colon names intact.
func TestExtractRecords_NoIDSplitForOtherAgencies(t *testing.T) {
	table := &Table{
		Columns: []string{"Use Case Name"},
		Rows:    [][]string{{"USDA-001: Crop Yield Forecast"}},
	}

	var issues Issues
	records := ExtractRecords(table, "Department Of Energy", &issues)

	require.Len(t, records, 1)
	assert.Empty(t, records[0].UseCaseID)
	assert.Equal(t, "USDA-001: Crop Yield Forecast", records[0].UseCaseName)
}

// A surviving header row (two or more sentinels) shifts extraction to row 1.
func TestExtractRecords_StartRowAfterSurvivingHeader(t *testing.T) {
	table := &Table{
		Columns: []string{"A", "B", "C"},
		Rows: [][]string{
			{"Use Case ID", "Use Case Name", "Stage of Development"},
			{"AG-1", "Widget Detector", "Deployed"},
		},
	}

	var issues Issues
	records := ExtractRecords(table, "Test Agency", &issues)

	require.Len(t, records, 1)
	assert.Equal(t, "AG-1", records[0].UseCaseID)
	assert.Equal(t, "Widget Detector", records[0].UseCaseName)
}

func TestExtractRecords_MissingNameColumnIsIssue(t *testing.T) {
	table := &Table{
		Columns:    []string{"Identifier", "Phase"},
		Rows:       [][]string{{"AG-1", "Deployed"}},
		SourceFile: "test-agency/inventory.csv",
	}

	var issues Issues
	records := ExtractRecords(table, "Test Agency", &issues)

	// Extraction proceeds with the field empty rather than aborting; the id
	// column still matched via the "ID" variant.
	require.Len(t, records, 1)
	assert.Empty(t, records[0].UseCaseName)

	unique := issues.Unique()
	require.Len(t, unique, 1)
	assert.Contains(t, unique[0], "Cannot find columns: use_case_name")
}

func TestExtractRecords_EmptyTableIsIssue(t *testing.T) {
	var issues Issues
	records := ExtractRecords(&Table{SourceFile: "x/empty.csv"}, "Test Agency", &issues)

	assert.Empty(t, records)
	assert.Equal(t, []string{"Empty file: x/empty.csv"}, issues.Unique())
}

func TestExtractRecords_AllBlankRowsIsIssue(t *testing.T) {
	table := &Table{
		Columns:    []string{"Use Case ID", "Use Case Name"},
		Rows:       [][]string{{"", ""}, {" ", " "}},
		SourceFile: "x/blank.csv",
	}

	var issues Issues
	records := ExtractRecords(table, "Test Agency", &issues)

	assert.Empty(t, records)
	assert.Equal(t, []string{"No data rows: x/blank.csv"}, issues.Unique())
}
