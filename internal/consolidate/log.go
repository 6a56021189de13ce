// =============================================================================
// AI Inventory Consolidator - Consolidation Log
// =============================================================================
//
// The consolidation log is the human-readable companion of the consolidated
// CSV: summary counts, a per-agency listing with a short preview of each
// agency's use cases, and the deduplicated sorted issue list. Reviewers read
// this file, not the console scrollback.
//
// =============================================================================

package consolidate

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ginjaninja78/ai-inventory-consolidator/internal/inventory"
)

// previewPerAgency is how many use case names are listed per agency.
const previewPerAgency = 3

// writeLog writes the sectioned consolidation log.
func writeLog(path string, records []inventory.Record, issues *inventory.Issues) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	var b strings.Builder
	rule := strings.Repeat("=", 80)

	b.WriteString(rule + "\n")
	b.WriteString("AI INVENTORY CONSOLIDATION LOG\n")
	b.WriteString(rule + "\n\n")

	b.WriteString("SUMMARY\n")
	fmt.Fprintf(&b, "Total use cases extracted: %d\n", len(records))
	fmt.Fprintf(&b, "Issues/Warnings found: %d\n\n", issues.Len())

	b.WriteString("USE CASES BY AGENCY\n")
	b.WriteString(strings.Repeat("-", 80) + "\n")

	byAgency := make(map[string][]inventory.Record)
	for _, rec := range records {
		byAgency[rec.Agency] = append(byAgency[rec.Agency], rec)
	}
	agencies := make([]string, 0, len(byAgency))
	for agency := range byAgency {
		agencies = append(agencies, agency)
	}
	sort.Strings(agencies)

	for _, agency := range agencies {
		useCases := byAgency[agency]
		fmt.Fprintf(&b, "\n%s: %d use case(s)\n", agency, len(useCases))
		for i, uc := range useCases {
			if i >= previewPerAgency {
				fmt.Fprintf(&b, "  ... and %d more\n", len(useCases)-previewPerAgency)
				break
			}
			fmt.Fprintf(&b, "  • %s\n", truncate(uc.UseCaseName, 60))
		}
	}

	if unique := issues.Unique(); len(unique) > 0 {
		b.WriteString("\n\n" + rule + "\n")
		b.WriteString("ISSUES AND WARNINGS - PLEASE DOUBLE CHECK\n")
		b.WriteString(rule + "\n\n")
		for _, issue := range unique {
			fmt.Fprintf(&b, "⚠ %s\n\n", issue)
		}
	}

	return os.WriteFile(path, []byte(b.String()), 0644)
}

// truncate shortens a string to at most n bytes.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
