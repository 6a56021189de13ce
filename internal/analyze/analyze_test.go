package analyze

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

func stageTable(rows [][]string) *inventory.Table {
	return &inventory.Table{
		Columns: []string{"Agency", "Use Case Name", "Stage of Development"},
		Rows:    rows,
	}
}

func TestCountLegacy_RebucketsFiveStageModel(t *testing.T) {
	table := stageTable([][]string{
		{"Test Agency", "A", "Initiated"},
		{"Test Agency", "B", "Acquisition and/or Development"},
		{"Test Agency", "C", "Implementation and Assessment"},
		{"Test Agency", "D", "Operation and Maintenance"},
		{"Test Agency", "E", "Operation and Maintenance"},
		{"Test Agency", "F", "Retired"},
	})

	counts := CountLegacy(table)
	require.Len(t, counts, 1)

	c := counts[0]
	assert.Equal(t, 2024, c.Year)
	assert.Equal(t, "Test Agency", c.Agency)
	assert.Equal(t, 3, c.InDevelopment)
	assert.Equal(t, 2, c.InOperation)
	assert.Equal(t, 1, c.Retired)
	assert.Equal(t, 0, c.Unknown)
	assert.Equal(t, 6, c.Total)
	assert.Equal(t, 5, c.Active())
}

func TestCountCurrent_TakesStageVerbatim(t *testing.T) {
	table := stageTable([][]string{
		{"Test Agency", "A", "In Development"},
		{"Test Agency", "B", "In Operation"},
		{"Test Agency", "C", "In Operation"},
		{"Test Agency", "D", "Retired"},
		{"Test Agency", "E", "Unknown"},
	})

	counts := CountCurrent(table)
	require.Len(t, counts, 1)

	c := counts[0]
	assert.Equal(t, 2025, c.Year)
	assert.Equal(t, 1, c.InDevelopment)
	assert.Equal(t, 2, c.InOperation)
	assert.Equal(t, 1, c.Retired)
	assert.Equal(t, 1, c.Unknown)
	assert.Equal(t, 5, c.Total)
	assert.Equal(t, 3, c.Active())
}

func TestCountStages_SortedByAgencyAndSkipsBlank(t *testing.T) {
	table := stageTable([][]string{
		{"Zeta Agency", "A", "In Operation"},
		{"Alpha Agency", "B", "In Development"},
		{"", "orphan row", "In Operation"},
	})

	counts := CountCurrent(table)
	require.Len(t, counts, 2)
	assert.Equal(t, "Alpha Agency", counts[0].Agency)
	assert.Equal(t, "Zeta Agency", counts[1].Agency)
}

func TestCompare_ActiveTotalsAndDelta(t *testing.T) {
	counts2024 := []StageCounts{
		{Year: 2024, Agency: "Test Agency", InDevelopment: 3, InOperation: 2, Retired: 4},
	}
	counts2025 := []StageCounts{
		{Year: 2025, Agency: "Test Agency", InDevelopment: 1, InOperation: 5, Unknown: 2},
	}

	rows := Compare(counts2024, counts2025)
	require.Len(t, rows, 1)

	r := rows[0]
	assert.Equal(t, "Test Agency", r.Agency)
	assert.Equal(t, 5, r.Count2024)
	assert.Equal(t, 6, r.Count2025)
	assert.Equal(t, 1, r.Delta())
}

func TestCompare_OuterJoinOnNormalizedNames(t *testing.T) {
	counts2024 := []StageCounts{
		{Agency: "TEST  AGENCY", InOperation: 2},
		{Agency: "Gone Agency", InOperation: 7},
	}
	counts2025 := []StageCounts{
		{Agency: "Test Agency", InOperation: 4},
		{Agency: "New Agency", InDevelopment: 1},
	}

	rows := Compare(counts2024, counts2025)
	// Gone Agency has no 2025 activity and is filtered out.
	require.Len(t, rows, 2)

	assert.Equal(t, "Test Agency", rows[0].Agency) // 2025 spelling wins
	assert.Equal(t, 2, rows[0].Count2024)
	assert.Equal(t, 4, rows[0].Count2025)

	assert.Equal(t, "New Agency", rows[1].Agency)
	assert.Equal(t, 0, rows[1].Count2024)
	assert.Equal(t, 1, rows[1].Count2025)
}

func TestCompare_SortedByDescending2025Volume(t *testing.T) {
	counts2025 := []StageCounts{
		{Agency: "Small Agency", InOperation: 1},
		{Agency: "Big Agency", InOperation: 9},
		{Agency: "Mid Agency", InOperation: 4},
	}

	rows := Compare(nil, counts2025)
	require.Len(t, rows, 3)
	assert.Equal(t, "Big Agency", rows[0].Agency)
	assert.Equal(t, "Mid Agency", rows[1].Agency)
	assert.Equal(t, "Small Agency", rows[2].Agency)
}

func TestRun_WritesBothReports(t *testing.T) {
	root := t.TempDir()
	cfg := &config.Config{
		CleanDir:         filepath.Join(root, "clean"),
		SummaryDir:       filepath.Join(root, "clean", "summary"),
		Consolidated2024: "2024.csv",
		Consolidated2025: "2025.csv",
	}
	require.NoError(t, os.MkdirAll(cfg.CleanDir, 0o755))

	write := func(name, content string) {
		require.NoError(t, os.WriteFile(filepath.Join(cfg.CleanDir, name), []byte(content), 0o644))
	}
	write("2024.csv",
		"Agency,Use Case Name,Stage of Development\n"+
			"Test Agency,A,Operation and Maintenance\n"+
			"Test Agency,B,Initiated\n")
	write("2025.csv",
		"Agency,Use Case Name,Stage of Development\n"+
			"Test Agency,A,In Operation\n"+
			"Test Agency,C,In Operation\n"+
			"Test Agency,D,In Development\n")

	require.NoError(t, Run(cfg))

	readCSV := func(name string) [][]string {
		f, err := os.Open(filepath.Join(cfg.SummaryDir, name))
		require.NoError(t, err)
		defer f.Close()
		rows, err := csv.NewReader(f).ReadAll()
		require.NoError(t, err)
		return rows
	}

	stage := readCSV("by_stage.csv")
	require.Len(t, stage, 3)
	assert.Equal(t, []string{"Year", "Agency", "In Development", "In Operation", "Retired", "Unknown", "Total"}, stage[0])
	assert.Equal(t, []string{"2024", "Test Agency", "1", "1", "0", "0", "2"}, stage[1])
	assert.Equal(t, []string{"2025", "Test Agency", "1", "2", "0", "0", "3"}, stage[2])

	comparison := readCSV("by_stage_comparison.csv")
	require.Len(t, comparison, 2)
	assert.Equal(t, []string{"Agency", "2024", "2025"}, comparison[0])
	assert.Equal(t, []string{"Test Agency", "2", "3"}, comparison[1])
}

func TestRun_MissingInputIsFatal(t *testing.T) {
	root := t.TempDir()
	cfg := &config.Config{
		CleanDir:         filepath.Join(root, "clean"),
		SummaryDir:       filepath.Join(root, "clean", "summary"),
		Consolidated2024: "2024.csv",
		Consolidated2025: "2025.csv",
	}

	err := Run(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "consolidated inventory not found")
}
