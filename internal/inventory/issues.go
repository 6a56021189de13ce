// =============================================================================
// AI Inventory Consolidator - Issue Accumulator
// =============================================================================
//
// The consolidation pipeline collects anomalies instead of raising them: a
// malformed file must never abort the run. An Issues value is threaded
// through the pipeline, merged upward, and reported once at the end,
// deduplicated and sorted. This keeps the extractor pure and testable.
//
// =============================================================================

package inventory

import (
	"fmt"
	"sort"
)

// Issues accumulates diagnostic strings describing file-level or row-level
// anomalies. The zero value is ready to use.
type Issues struct {
	entries []string
}

// Add records one issue.
func (i *Issues) Add(msg string) {
	i.entries = append(i.entries, msg)
}

// Addf records one issue with fmt.Sprintf formatting.
func (i *Issues) Addf(format string, args ...any) {
	i.entries = append(i.entries, fmt.Sprintf(format, args...))
}

// Merge appends all issues from another accumulator.
func (i *Issues) Merge(other *Issues) {
	i.entries = append(i.entries, other.entries...)
}

// Len returns the number of recorded issues, duplicates included.
func (i *Issues) Len() int {
	return len(i.entries)
}

// Unique returns the recorded issues deduplicated and sorted, ready for the
// consolidation log.
func (i *Issues) Unique() []string {
	seen := make(map[string]bool, len(i.entries))
	var unique []string
	for _, e := range i.entries {
		if !seen[e] {
			seen[e] = true
			unique = append(unique, e)
		}
	}
	sort.Strings(unique)
	return unique
}
