package combine

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/ai-inventory-consolidator/internal/config"
	"github.com/ginjaninja78/ai-inventory-consolidator/internal/inventory"
)

func TestExtractRows_CoreColumns(t *testing.T) {
	table := &inventory.Table{
		Columns: []string{"Agency", "Use Case ID", "Use Case Name", "Stage of Development"},
		Rows: [][]string{
			{"DEPARTMENT OF ENERGY", "DOE-1", "Grid Anomaly Detection", "In Operation"},
			{"Department Of Energy", "DOE-2", "Permit Triage", "Retired after pilot"},
			{"", "", "", "In Operation"}, // no agency, no name
		},
	}

	rows := ExtractRows(table, 2025)
	require.Len(t, rows, 2)

	assert.Equal(t, 2025, rows[0].Year)
	assert.Equal(t, "Department of Energy", rows[0].Agency)
	assert.Equal(t, "Grid Anomaly Detection", rows[0].UseCaseName)
	assert.False(t, rows[0].Retired)

	assert.Equal(t, "Department of Energy", rows[1].Agency)
	assert.True(t, rows[1].Retired)
}

func TestExtractRows_MissingStageColumn(t *testing.T) {
	table := &inventory.Table{
		Columns: []string{"Agency", "Use Case Name"},
		Rows:    [][]string{{"Test Agency", "Widget Detector"}},
	}

	rows := ExtractRows(table, 2024)
	require.Len(t, rows, 1)
	assert.False(t, rows[0].Retired)
}

func TestRun_WritesCombinedExport(t *testing.T) {
	root := t.TempDir()
	cfg := &config.Config{
		CleanDir:         filepath.Join(root, "clean"),
		Consolidated2024: "2024.csv",
		Consolidated2025: "2025.csv",
		CombinedFile:     "combined.csv",
	}
	require.NoError(t, os.MkdirAll(cfg.CleanDir, 0o755))

	write := func(name, content string) {
		require.NoError(t, os.WriteFile(filepath.Join(cfg.CleanDir, name), []byte(content), 0o644))
	}
	write("2024.csv",
		"Agency,Use Case Name,Stage of Development\n"+
			"Department Of Energy,Legacy Model,Operation and Maintenance\n")
	write("2025.csv",
		"Agency,Use Case Name,Stage of Development\n"+
			"Department Of Energy,Grid Anomaly Detection,In Operation\n"+
			"Department Of Energy,Old Classifier,Retired\n")

	require.NoError(t, Run(cfg))

	f, err := os.Open(cfg.CombinedPath())
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"Year", "Agency", "Use Case Name", "Retired"}, rows[0])
	assert.Equal(t, []string{"2024", "Department of Energy", "Legacy Model", "False"}, rows[1])
	assert.Equal(t, []string{"2025", "Department of Energy", "Grid Anomaly Detection", "False"}, rows[2])
	assert.Equal(t, []string{"2025", "Department of Energy", "Old Classifier", "True"}, rows[3])
}

func TestRun_MissingInputIsFatal(t *testing.T) {
	root := t.TempDir()
	cfg := &config.Config{
		CleanDir:         filepath.Join(root, "clean"),
		Consolidated2024: "2024.csv",
		Consolidated2025: "2025.csv",
		CombinedFile:     "combined.csv",
	}

	err := Run(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "consolidated inventory not found")
}
