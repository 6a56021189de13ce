package loader

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// writeWorkbook builds an XLSX fixture with one sheet per entry.
func writeWorkbook(t *testing.T, sheets map[string][][]string) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	first := true
	for name, rows := range sheets {
		if first {
			require.NoError(t, f.SetSheetName("Sheet1", name))
			first = false
		} else {
			_, err := f.NewSheet(name)
			require.NoError(t, err)
		}
		for i, row := range rows {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetSheetRow(name, cell, &row))
		}
	}

	path := filepath.Join(t.TempDir(), "inventory.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestLoadXLSX_FirstSheetByDefault(t *testing.T) {
	path := writeWorkbook(t, map[string][][]string{
		"Inventory": {
			{"Use Case ID", "Use Case Name", "Stage of Development"},
			{"AG-1", "Widget Detector", "Deployed"},
		},
	})

	table, err := LoadXLSX(path, "")
	require.NoError(t, err)

	assert.Equal(t, []string{"Use Case ID", "Use Case Name", "Stage of Development"}, table.Columns)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, []string{"AG-1", "Widget Detector", "Deployed"}, table.Rows[0])
}

func TestLoadXLSX_NamedSheet(t *testing.T) {
	path := writeWorkbook(t, map[string][][]string{
		"Instructions": {
			{"Read this first"},
		},
	})

	// Add the data sheet explicitly so sheet order does not matter.
	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	_, err = f.NewSheet("Reportable AI Use Cases")
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow("Reportable AI Use Cases", "A1",
		&[]string{"Use Case ID", "Use Case Name"}))
	require.NoError(t, f.SetSheetRow("Reportable AI Use Cases", "A2",
		&[]string{"DOJ-1", "Case Triage"}))
	require.NoError(t, f.Save())
	require.NoError(t, f.Close())

	table, err := LoadXLSX(path, "Reportable AI Use Cases")
	require.NoError(t, err)

	require.Len(t, table.Rows, 1)
	assert.Equal(t, []string{"DOJ-1", "Case Triage"}, table.Rows[0])
}

func TestLoadXLSX_MissingSheetIsError(t *testing.T) {
	path := writeWorkbook(t, map[string][][]string{
		"Inventory": {
			{"Use Case ID"},
			{"AG-1"},
		},
	})

	_, err := LoadXLSX(path, "No Such Sheet")
	assert.Error(t, err)
}

func TestLoadXLSX_NotAWorkbook(t *testing.T) {
	path := writeTemp(t, "fake.xlsx", []byte("this is not a zip archive"))
	_, err := LoadXLSX(path, "")
	assert.Error(t, err)
}
