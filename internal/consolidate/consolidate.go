// =============================================================================
// AI Inventory Consolidator - Consolidation Pipeline
// =============================================================================
//
// The Consolidator walks the raw-data directory (one folder per agency),
// loads every inventory file by extension-specific strategy, runs the
// reconciliation engine over each table, and accumulates records and issues
// for the whole run.
//
// FAILURE POLICY:
//   No single file is allowed to kill the run. Load and parse failures are
//   recorded as issues and processing continues with the next file; partial
//   output plus a diagnostic log always beats stopping.
//
// =============================================================================

package consolidate

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/ginjaninja78/ai-inventory-consolidator/internal/config"
	"github.com/ginjaninja78/ai-inventory-consolidator/internal/inventory"
	"github.com/ginjaninja78/ai-inventory-consolidator/internal/loader"
	"github.com/ginjaninja78/ai-inventory-consolidator/pkg/textutil"
)

// dataExtensions are the file types considered agency inventory files.
var dataExtensions = map[string]bool{
	".csv":  true,
	".xlsx": true,
	".pdf":  true,
}

// Consolidator accumulates the results of one consolidation run.
type Consolidator struct {
	cfg *config.Config

	// Workers is the number of agency folders processed concurrently.
	// Folders are independent of each other, so this is safe; results are
	// merged in folder order either way, keeping output deterministic.
	Workers int

	// Records holds every extracted use case, in agency folder order.
	Records []inventory.Record

	// Issues holds every anomaly encountered during the run.
	Issues inventory.Issues
}

// New creates a Consolidator for the given configuration.
func New(cfg *config.Config) *Consolidator {
	workers := cfg.MaxConcurrency
	if workers < 1 {
		workers = 1
	}
	return &Consolidator{cfg: cfg, Workers: workers}
}

// agencyResult is the outcome of processing one agency folder.
type agencyResult struct {
	records []inventory.Record
	issues  inventory.Issues
	output  []string // progress lines, printed in folder order
}

// Run processes every agency folder under the raw-data directory.
func (c *Consolidator) Run() error {
	// Pre-process: convert the TVA saved page to CSV if needed.
	c.prepareTVA()

	fmt.Println("Scanning for inventory files...")

	entries, err := os.ReadDir(c.cfg.RawDir)
	if err != nil {
		return fmt.Errorf("failed to read raw data directory: %w", err)
	}

	var folders []string
	for _, entry := range entries {
		name := entry.Name()
		if !entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		// Folders starting with a digit hold historical data, not agencies.
		if name[0] >= '0' && name[0] <= '9' {
			continue
		}
		folders = append(folders, name)
	}
	sort.Strings(folders)

	// Each folder is independent; process up to Workers of them at a time and
	// merge results in folder order.
	results := make([]agencyResult, len(folders))
	sem := make(chan struct{}, c.Workers)
	var wg sync.WaitGroup

	for i, folder := range folders {
		wg.Add(1)
		go func(i int, folder string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			results[i] = c.processAgencyFolder(folder)
		}(i, folder)
	}
	wg.Wait()

	for _, res := range results {
		for _, line := range res.output {
			fmt.Println(line)
		}
		c.Records = append(c.Records, res.records...)
		c.Issues.Merge(&res.issues)
	}

	fmt.Printf("\nTotal use cases extracted: %d\n", len(c.Records))
	return nil
}

// processAgencyFolder loads and extracts every inventory file in one agency
// folder.
func (c *Consolidator) processAgencyFolder(folder string) agencyResult {
	var res agencyResult
	agency := textutil.AgencyFromSlug(folder)

	entries, err := os.ReadDir(filepath.Join(c.cfg.RawDir, folder))
	if err != nil {
		res.issues.Addf("Error reading folder %s: %v", agency, err)
		return res
	}

	var files []string
	hasMachineReadable := false
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if !dataExtensions[ext] {
			continue
		}
		if ext != ".pdf" {
			hasMachineReadable = true
		}
		files = append(files, entry.Name())
	}
	sort.Strings(files)

	if len(files) == 0 {
		res.issues.Addf("No files found in %s", agency)
		return res
	}

	for _, name := range files {
		res.output = append(res.output, fmt.Sprintf("Processing: %s - %s", agency, name))

		table := c.loadFile(folder, name, agency, hasMachineReadable, &res.issues)
		if table == nil {
			continue
		}

		inventory.NormalizeHeaders(table)
		records := inventory.ExtractRecords(table, agency, &res.issues)

		if len(records) > 0 {
			res.records = append(res.records, records...)
			res.output = append(res.output, fmt.Sprintf("  ✓ Extracted %d use cases", len(records)))
		} else {
			res.issues.Addf("No data extracted from %s: %s", agency, name)
		}
	}

	return res
}

// loadFile loads one inventory file by extension. Returns nil when the file
// was skipped or failed to load; failures are recorded on issues.
func (c *Consolidator) loadFile(folder, name, agency string, hasMachineReadable bool, issues *inventory.Issues) *inventory.Table {
	path := filepath.Join(c.cfg.RawDir, folder, name)
	rel := filepath.ToSlash(filepath.Join(folder, name))

	var (
		table *inventory.Table
		err   error
	)
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx":
		table, err = loader.LoadXLSX(path, inventory.SheetFor(agency))
	case ".csv":
		table, err = loader.LoadCSV(path)
	case ".pdf":
		// PDFs need manual review; only worth flagging when the folder holds
		// nothing machine-readable alongside.
		if !hasMachineReadable {
			issues.Addf("PDF file skipped: %s (manual review needed)", rel)
		}
		return nil
	default:
		return nil
	}

	if err != nil {
		issues.Addf("Error loading %s: %v", rel, err)
		return nil
	}

	// Issue strings reference files relative to the raw-data root.
	table.SourceFile = rel
	return table
}

// prepareTVA converts the Tennessee Valley Authority saved web page to a
// cached CSV. The page is re-parsed only when it is newer than the cache.
func (c *Consolidator) prepareTVA() {
	folder := filepath.Join(c.cfg.RawDir, "tennessee-valley-authority")
	htmlPath := filepath.Join(folder, "tva-page.html")
	csvPath := filepath.Join(folder, "tva-inventory.csv")

	htmlInfo, err := os.Stat(htmlPath)
	if err != nil {
		return
	}
	if csvInfo, err := os.Stat(csvPath); err == nil && csvInfo.ModTime().After(htmlInfo.ModTime()) {
		return
	}

	fmt.Println("Found TVA file, parsing data...")

	content, err := os.ReadFile(htmlPath)
	if err != nil {
		fmt.Printf("  ✗ Error parsing TVA file: %v\n", err)
		return
	}

	rows, err := loader.ExtractHTMLRows(string(content))
	if err != nil {
		fmt.Printf("  ⚠ No data found in %s\n", filepath.Base(htmlPath))
		return
	}

	if err := writeCSV(csvPath, rows); err != nil {
		fmt.Printf("  ✗ Error parsing TVA file: %v\n", err)
		return
	}

	fmt.Printf("  ✓ Parsed %d use cases → %s\n", len(rows)-1, filepath.Base(csvPath))
}

// SaveResults writes the consolidated CSV and the issue log, then prints a
// console summary of any issues.
func (c *Consolidator) SaveResults() error {
	if len(c.Records) == 0 {
		fmt.Println("No data to save!")
		return nil
	}

	outPath := c.cfg.Consolidated2025Path()
	rows := [][]string{inventory.OutputHeader()}
	for i := range c.Records {
		rows = append(rows, c.Records[i].OutputRow())
	}
	if err := writeCSV(outPath, rows); err != nil {
		return fmt.Errorf("failed to write consolidated inventory: %w", err)
	}
	fmt.Printf("\n✓ Consolidated inventory saved to: %s\n", outPath)
	fmt.Printf("  Total rows: %d\n", len(c.Records))

	logPath := c.cfg.ConsolidationLogPath()
	if err := writeLog(logPath, c.Records, &c.Issues); err != nil {
		return fmt.Errorf("failed to write consolidation log: %w", err)
	}
	fmt.Printf("✓ Consolidation log saved to: %s\n", logPath)

	printIssueSummary(&c.Issues)
	return nil
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

// printIssueSummary prints the first few issues to the console; the full
// deduplicated list lives in the log file.
func printIssueSummary(issues *inventory.Issues) {
	unique := issues.Unique()
	if len(unique) == 0 {
		return
	}

	fmt.Println("\n" + strings.Repeat("=", 80))
	fmt.Printf("FOUND %d ISSUES - PLEASE REVIEW:\n", len(unique))
	fmt.Println(strings.Repeat("=", 80))
	for i, issue := range unique {
		if i >= 10 {
			fmt.Printf("... and %d more (see log file)\n", len(unique)-10)
			break
		}
		fmt.Printf("⚠ %s\n", issue)
	}
}
