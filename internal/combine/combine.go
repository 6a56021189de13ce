// =============================================================================
// AI Inventory Consolidator - Combined Year Export
// =============================================================================
//
// Builds the slim combined 2024+2025 export: one row per use case with just
// {Year, Agency, Use Case Name, Retired}. Agency names are normalized to
// conventional title case so the same agency lines up across years, and the
// Retired flag is derived from the stage text of either taxonomy.
//
// =============================================================================

package combine

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

// Row is one use case in the combined export.
type Row struct {
	Year        int
	Agency      string
	UseCaseName string
	Retired     bool
}

// Run builds and writes the combined export.
func Run(cfg *config.Config) error {
	rule := strings.Repeat("=", 80)
	fmt.Println(rule)
	fmt.Println("COMBINING 2024 AND 2025 AI INVENTORIES")
	fmt.Println(rule + "\n")

	fmt.Println("Loading files...")
	table2024, err := loadYear(cfg.Consolidated2024Path())
	if err != nil {
		return err
	}
	table2025, err := loadYear(cfg.Consolidated2025Path())
	if err != nil {
		return fmt.Errorf("%w (run 'inventory consolidate' first)", err)
	}

	fmt.Printf("  2024: %d rows, %d columns\n", len(table2024.Rows), len(table2024.Columns))
	fmt.Printf("  2025: %d rows, %d columns\n", len(table2025.Rows), len(table2025.Columns))

	fmt.Println("\nExtracting columns...")
	fmt.Println("  Normalizing agency names...")
	rows := ExtractRows(table2024, 2024)
	rows2025 := ExtractRows(table2025, 2025)

	fmt.Println("\nCombining datasets...")
	rows = append(rows, rows2025...)

	outPath := cfg.CombinedPath()
	if err := writeCombined(outPath, rows); err != nil {
		return fmt.Errorf("failed to write combined export: %w", err)
	}

	fmt.Printf("\n✓ Combined file saved: %s\n", outPath)
	fmt.Printf("  Total rows: %d\n", len(rows))
	fmt.Printf("  2024 records: %d\n", len(rows)-len(rows2025))
	fmt.Printf("  2025 records: %d\n", len(rows2025))

	printCompleteness(rows)
	printAgencySummary(rows)

	fmt.Println("\n" + rule)
	fmt.Println("✓ COMBINATION COMPLETE")
	fmt.Println(rule)
	return nil
}

// loadYear loads one consolidated inventory; a missing file is fatal.
func loadYear(path string) (*inventory.Table, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("consolidated inventory not found: %s", path)
	}
	return loader.LoadCSV(path)
}

// ExtractRows pulls the combined-export columns out of one year's
// consolidated table. Retired is true when the stage text mentions
// retirement, in either taxonomy's wording.
func ExtractRows(t *inventory.Table, year int) []Row {
	agencyCol := exactColumn(t, "Agency")
	nameCol := exactColumn(t, "Use Case Name")
	stageCol := exactColumn(t, "Stage of Development")

	var rows []Row
	for i := range t.Rows {
		agency := strings.TrimSpace(t.Cell(i, agencyCol))
		name := strings.TrimSpace(t.Cell(i, nameCol))
		if agency == "" && name == "" {
			continue
		}

		rows = append(rows, Row{
			Year:        year,
			Agency:      textutil.TitleCaseAgency(agency),
			UseCaseName: name,
			Retired:     strings.Contains(strings.ToLower(t.Cell(i, stageCol)), "retired"),
		})
	}
	return rows
}

// exactColumn returns the index of the column with the exact label, or -1.
func exactColumn(t *inventory.Table, label string) int {
	for i, col := range t.Columns {
		if col == label {
			return i
		}
	}
	return -1
}

// writeCombined writes the combined export CSV.
func writeCombined(path string, rows []Row) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	out := [][]string{{"Year", "Agency", "Use Case Name", "Retired"}}
	for _, r := range rows {
		retired := "False"
		if r.Retired {
			retired = "True"
		}
		out = append(out, []string{strconv.Itoa(r.Year), r.Agency, r.UseCaseName, retired})
	}
	if err := w.WriteAll(out); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

// printCompleteness reports, per column and year, how many rows carry a
// non-empty value.
func printCompleteness(rows []Row) {
	var total2024, total2025, name2024, name2025, agency2024, agency2025 int
	for _, r := range rows {
		if r.Year == 2024 {
			total2024++
			if r.Agency != "" {
				agency2024++
			}
			if r.UseCaseName != "" {
				name2024++
			}
		} else {
			total2025++
			if r.Agency != "" {
				agency2025++
			}
			if r.UseCaseName != "" {
				name2025++
			}
		}
	}

	pct := func(n, total int) float64 {
		if total == 0 {
			return 0
		}
		return float64(n) / float64(total) * 100
	}

	fmt.Println("\nColumn completeness:")
	fmt.Println(strings.Repeat("-", 80))
	fmt.Printf("  %-45s 2024: %5.1f%%  2025: %5.1f%%\n", "Agency", pct(agency2024, total2024), pct(agency2025, total2025))
	fmt.Printf("  %-45s 2024: %5.1f%%  2025: %5.1f%%\n", "Use Case Name", pct(name2024, total2024), pct(name2025, total2025))
}

// printAgencySummary prints per-year totals and the five largest agencies.
func printAgencySummary(rows []Row) {
	fmt.Println("\nRecords by year and agency:")
	fmt.Println(strings.Repeat("-", 80))

	for _, year := range []int{2024, 2025} {
		counts := make(map[string]int)
		total := 0
		for _, r := range rows {
			if r.Year == year {
				counts[r.Agency]++
				total++
			}
		}

		type agencyCount struct {
			agency string
			count  int
		}
		ranked := make([]agencyCount, 0, len(counts))
		for agency, count := range counts {
			ranked = append(ranked, agencyCount{agency, count})
		}
		sort.Slice(ranked, func(i, j int) bool {
			if ranked[i].count != ranked[j].count {
				return ranked[i].count > ranked[j].count
			}
			return ranked[i].agency < ranked[j].agency
		})

		fmt.Printf("\n%d: %d total records across %d agencies\n", year, total, len(counts))
		fmt.Println("  Top 5 agencies:")
		for i, ac := range ranked {
			if i >= 5 {
				break
			}
			fmt.Printf("    %-50s %4d use cases\n", ac.agency, ac.count)
		}
	}
}
