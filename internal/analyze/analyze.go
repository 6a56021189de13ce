// =============================================================================
// AI Inventory Consolidator - Cross-Year Stage Analysis
// =============================================================================
//
// Takes the two consolidated inventories (2024, filed under the legacy
// 5-stage lifecycle model; 2025, filed under the current 3-stage model),
// re-buckets both into the shared 3-category model per agency, and emits:
//
//   by_stage.csv            {Year, Agency, In Development, In Operation,
//                            Retired, Unknown, Total}
//   by_stage_comparison.csv {Agency, 2024, 2025}
//
// Comparison totals count active use cases only (In Development +
// In Operation); retired and unknown are excluded. The join on agency name
// is an outer join over case/whitespace-normalized names: an agency present
// in only one year contributes zero for the missing year.
//
// A missing input file is fatal. This is the one abort path of the pipeline:
// without both consolidated inventories there is nothing to compare.
//
// =============================================================================

package analyze

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/ginjaninja78/ai-inventory-consolidator/internal/config"
	"github.com/ginjaninja78/ai-inventory-consolidator/internal/inventory"
	"github.com/ginjaninja78/ai-inventory-consolidator/internal/loader"
	"github.com/ginjaninja78/ai-inventory-consolidator/pkg/textutil"
)

// StageCounts is the per-agency stage breakdown for one year.
type StageCounts struct {
	Year          int
	Agency        string
	InDevelopment int
	InOperation   int
	Retired       int
	Unknown       int
	Total         int
}

// Active returns the count of active use cases: in development or operating.
func (s StageCounts) Active() int {
	return s.InDevelopment + s.InOperation
}

// ComparisonRow is one agency's year-over-year active use case totals.
type ComparisonRow struct {
	Agency    string
	Count2024 int
	Count2025 int
}

// Delta returns the year-over-year change in active use cases.
func (r ComparisonRow) Delta() int {
	return r.Count2025 - r.Count2024
}

// Run generates the stage reports from the two consolidated inventories.
func Run(cfg *config.Config) error {
	rule := strings.Repeat("=", 104)
	fmt.Println(rule)
	fmt.Println("ANALYZING AI USE CASES BY AGENCY AND STAGE OF DEVELOPMENT")
	fmt.Println(rule + "\n")

	fmt.Println("Loading 2024 data...")
	table2024, err := loadConsolidated(cfg.Consolidated2024Path())
	if err != nil {
		return err
	}

	fmt.Println("Loading 2025 data...")
	table2025, err := loadConsolidated(cfg.Consolidated2025Path())
	if err != nil {
		return fmt.Errorf("%w (run 'inventory consolidate' first)", err)
	}

	fmt.Println("\nProcessing 2024 data (5-stage model → 3-stage model)...")
	counts2024 := CountLegacy(table2024)

	fmt.Println("Processing 2025 data (3-stage model)...")
	counts2025 := CountCurrent(table2025)

	combined := append(append([]StageCounts{}, counts2024...), counts2025...)
	stagePath := filepath.Join(cfg.SummaryDir, "by_stage.csv")
	if err := writeStageCSV(stagePath, combined); err != nil {
		return fmt.Errorf("failed to write stage report: %w", err)
	}
	fmt.Printf("\n✓ Combined stage data saved to: %s\n", stagePath)

	fmt.Println("\nGenerating year-over-year comparison...")
	comparison := Compare(counts2024, counts2025)
	comparisonPath := filepath.Join(cfg.SummaryDir, "by_stage_comparison.csv")
	if err := writeComparisonCSV(comparisonPath, comparison); err != nil {
		return fmt.Errorf("failed to write comparison report: %w", err)
	}
	fmt.Printf("✓ Year-over-year comparison saved to: %s\n", comparisonPath)

	printSummary(counts2024, counts2025, comparison)
	return nil
}

// loadConsolidated loads a consolidated inventory CSV. The loader handles
// the Latin-1 encoded 2024 file transparently.
func loadConsolidated(path string) (*inventory.Table, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("consolidated inventory not found: %s", path)
	}
	return loader.LoadCSV(path)
}

// columnIndex returns the index of the column with the exact given label,
// or -1.
func columnIndex(t *inventory.Table, label string) int {
	for i, col := range t.Columns {
		if col == label {
			return i
		}
	}
	return -1
}

// CountLegacy buckets a 2024 consolidated table into the shared 3-stage
// model per agency: raw stage text runs through the legacy 5-stage ladder
// and each legacy category is then summarized.
func CountLegacy(t *inventory.Table) []StageCounts {
	return countStages(t, 2024, func(raw string) inventory.Stage {
		return inventory.NormalizeLegacyStage(raw).Summarize()
	})
}

// CountCurrent buckets a 2025 consolidated table. Its stage column is
// already canonical; values are taken verbatim.
func CountCurrent(t *inventory.Table) []StageCounts {
	return countStages(t, 2025, func(raw string) inventory.Stage {
		return inventory.Stage(raw)
	})
}

// countStages tallies records per agency and stage, sorted by agency name.
func countStages(t *inventory.Table, year int, bucket func(string) inventory.Stage) []StageCounts {
	agencyCol := columnIndex(t, "Agency")
	stageCol := columnIndex(t, "Stage of Development")

	byAgency := make(map[string]*StageCounts)
	for i := range t.Rows {
		agency := strings.TrimSpace(t.Cell(i, agencyCol))
		if agency == "" {
			continue
		}

		counts, ok := byAgency[agency]
		if !ok {
			counts = &StageCounts{Year: year, Agency: agency}
			byAgency[agency] = counts
		}

		counts.Total++
		switch bucket(t.Cell(i, stageCol)) {
		case inventory.StageInDevelopment:
			counts.InDevelopment++
		case inventory.StageInOperation:
			counts.InOperation++
		case inventory.StageRetired:
			counts.Retired++
		case inventory.StageUnknown:
			counts.Unknown++
		}
	}

	agencies := make([]string, 0, len(byAgency))
	for agency := range byAgency {
		agencies = append(agencies, agency)
	}
	sort.Strings(agencies)

	result := make([]StageCounts, 0, len(agencies))
	for _, agency := range agencies {
		result = append(result, *byAgency[agency])
	}
	return result
}

// Compare outer-joins the two years on normalized agency name and returns
// per-agency active totals, restricted to agencies active in 2025 and sorted
// by descending 2025 volume.
func Compare(counts2024, counts2025 []StageCounts) []ComparisonRow {
	by2024 := make(map[string]StageCounts, len(counts2024))
	for _, c := range counts2024 {
		by2024[textutil.NormalizeAgencyKey(c.Agency)] = c
	}
	by2025 := make(map[string]StageCounts, len(counts2025))
	for _, c := range counts2025 {
		by2025[textutil.NormalizeAgencyKey(c.Agency)] = c
	}

	keySet := make(map[string]bool)
	for key := range by2024 {
		keySet[key] = true
	}
	for key := range by2025 {
		keySet[key] = true
	}
	keys := make([]string, 0, len(keySet))
	for key := range keySet {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var rows []ComparisonRow
	for _, key := range keys {
		c2024, in2024 := by2024[key]
		c2025, in2025 := by2025[key]

		// Prefer the 2025 spelling of the agency name.
		name := c2025.Agency
		if !in2025 {
			name = c2024.Agency
		}

		row := ComparisonRow{Agency: name}
		if in2024 {
			row.Count2024 = c2024.Active()
		}
		if in2025 {
			row.Count2025 = c2025.Active()
		}
		if row.Count2025 > 0 {
			rows = append(rows, row)
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Count2025 > rows[j].Count2025
	})
	return rows
}

// =============================================================================
// REPORT OUTPUT
// =============================================================================

// writeStageCSV writes the combined per-agency stage breakdown.
func writeStageCSV(path string, counts []StageCounts) error {
	rows := [][]string{{"Year", "Agency", "In Development", "In Operation", "Retired", "Unknown", "Total"}}
	for _, c := range counts {
		rows = append(rows, []string{
			strconv.Itoa(c.Year),
			c.Agency,
			strconv.Itoa(c.InDevelopment),
			strconv.Itoa(c.InOperation),
			strconv.Itoa(c.Retired),
			strconv.Itoa(c.Unknown),
			strconv.Itoa(c.Total),
		})
	}
	return writeCSV(path, rows)
}

// writeComparisonCSV writes the year-over-year comparison.
func writeComparisonCSV(path string, rows []ComparisonRow) error {
	out := [][]string{{"Agency", "2024", "2025"}}
	for _, r := range rows {
		out = append(out, []string{r.Agency, strconv.Itoa(r.Count2024), strconv.Itoa(r.Count2025)})
	}
	return writeCSV(path, out)
}

// printSummary prints totals, breakdowns, and the top growth agencies.
func printSummary(counts2024, counts2025 []StageCounts, comparison []ComparisonRow) {
	var dev2024, op2024, dev2025, op2025 int
	for _, c := range counts2024 {
		dev2024 += c.InDevelopment
		op2024 += c.InOperation
	}
	for _, c := range counts2025 {
		dev2025 += c.InDevelopment
		op2025 += c.InOperation
	}
	total2024 := dev2024 + op2024
	total2025 := dev2025 + op2025

	rule := strings.Repeat("=", 104)
	fmt.Println("\n" + rule)
	fmt.Println("SUMMARY STATISTICS")
	fmt.Println(rule)

	fmt.Printf("\n2024 Active Use Cases (In Development + In Operation): %d\n", total2024)
	fmt.Printf("2025 Active Use Cases (In Development + In Operation): %d\n", total2025)
	if total2024 > 0 {
		growth := total2025 - total2024
		fmt.Printf("Net Growth: %+d use cases (%+.1f%%)\n", growth, float64(growth)/float64(total2024)*100)
	}

	if total2024 > 0 {
		fmt.Println("\n2024 Breakdown:")
		fmt.Printf("  • In Development: %d (%.1f%%)\n", dev2024, float64(dev2024)/float64(total2024)*100)
		fmt.Printf("  • In Operation:   %d (%.1f%%)\n", op2024, float64(op2024)/float64(total2024)*100)
	}
	if total2025 > 0 {
		fmt.Println("\n2025 Breakdown:")
		fmt.Printf("  • In Development: %d (%.1f%%)\n", dev2025, float64(dev2025)/float64(total2025)*100)
		fmt.Printf("  • In Operation:   %d (%.1f%%)\n", op2025, float64(op2025)/float64(total2025)*100)
	}

	// Top agencies by absolute growth.
	byGrowth := append([]ComparisonRow{}, comparison...)
	sort.SliceStable(byGrowth, func(i, j int) bool {
		return byGrowth[i].Delta() > byGrowth[j].Delta()
	})

	fmt.Println("\n" + strings.Repeat("-", 104))
	fmt.Println("TOP 10 AGENCIES BY USE CASE GROWTH (2024 → 2025):")
	fmt.Println(strings.Repeat("-", 104))
	for i, row := range byGrowth {
		if i >= 10 {
			break
		}
		fmt.Printf("%2d. %-50s %4d → %4d (%+4d)\n", i+1, row.Agency, row.Count2024, row.Count2025, row.Delta())
	}
	fmt.Println("\n" + rule + "\n")
}

// writeCSV writes rows to path, creating parent directories as needed.
func writeCSV(path string, rows [][]string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}
