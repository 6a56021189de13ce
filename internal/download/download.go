// =============================================================================
// AI Inventory Consolidator - Inventory File Downloader
// =============================================================================
//
// Downloads inventory files for agencies that have a URL in the agency
// registry (data/raw/agencies.csv) but no files on disk yet. Each download
// runs under a fixed wall-clock timeout; a timeout or bad response is a
// plain per-item failure, never fatal to the run.
//
// Agencies serve these files from a mix of CMSes and CDNs, so a successful
// HTTP 200 is not enough: tiny bodies and HTML bodies (Cloudflare challenge
// pages, pretty 404s) are rejected as failures.
//
// =============================================================================

package download

import (
	"encoding/csv"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ginjaninja78/ai-inventory-consolidator/internal/config"
	"github.com/ginjaninja78/ai-inventory-consolidator/pkg/textutil"
)

// minFileSize is the smallest body accepted as a real inventory file.
// Anything smaller is an error page or an empty response.
const minFileSize = 100

// sniffLen is how many leading bytes are inspected for HTML markers.
const sniffLen = 200

// item is one agency queued for download.
type item struct {
	Agency string
	Slug   string
	URL    string
}

// outcome records the result of one download or skip.
type outcome struct {
	Agency string
	File   string
	URL    string
	Reason string
	SizeMB float64
}

// Downloader fetches missing inventory files listed in the agency registry.
type Downloader struct {
	cfg    *config.Config
	client *http.Client
	delay  time.Duration

	ToDownload []item
	Downloaded []outcome
	Failed     []outcome
	Skipped    []outcome
}

// New creates a Downloader for the given configuration.
func New(cfg *config.Config) *Downloader {
	return &Downloader{
		cfg: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.DownloadTimeoutSeconds) * time.Second,
		},
		delay: time.Duration(cfg.DownloadDelayMillis) * time.Millisecond,
	}
}

// ScanAgencies reads the agency registry and queues every agency that has a
// URL but no files on disk. An unreadable registry is fatal: without it the
// command has nothing to do.
func (d *Downloader) ScanAgencies() error {
	f, err := os.Open(d.cfg.AgenciesFile)
	if err != nil {
		return fmt.Errorf("failed to open agency registry: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return fmt.Errorf("failed to read agency registry header: %w", err)
	}
	agencyCol, urlCol := -1, -1
	for i, col := range header {
		switch strings.TrimSpace(col) {
		case "agency":
			agencyCol = i
		case "inventory_2025_file_url":
			urlCol = i
		}
	}
	if agencyCol < 0 || urlCol < 0 {
		return fmt.Errorf("agency registry is missing the agency or inventory_2025_file_url column")
	}

	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read agency registry: %w", err)
		}
		if agencyCol >= len(row) || urlCol >= len(row) {
			continue
		}

		agency := strings.TrimSpace(row[agencyCol])
		fileURL := strings.TrimSpace(row[urlCol])
		if agency == "" || fileURL == "" {
			continue
		}

		slug := textutil.Slugify(agency)

		// TVA publishes only a web page; the saved page is committed by hand
		// and converted during consolidation.
		if strings.Contains(agency, "Tennessee Valley Authority") {
			reason := "File already exists"
			if !d.hasFiles(slug) {
				reason = "Requires manual HTML download (see README)"
			}
			d.Skipped = append(d.Skipped, outcome{Agency: agency, Reason: reason})
			continue
		}

		if d.hasFiles(slug) {
			d.Skipped = append(d.Skipped, outcome{Agency: agency, Reason: "File already exists"})
			continue
		}

		d.ToDownload = append(d.ToDownload, item{Agency: agency, Slug: slug, URL: fileURL})
	}

	return nil
}

// hasFiles reports whether an agency folder already holds any non-hidden
// file.
func (d *Downloader) hasFiles(slug string) bool {
	entries, err := os.ReadDir(filepath.Join(d.cfg.RawDir, slug))
	if err != nil {
		return false
	}
	for _, entry := range entries {
		if !strings.HasPrefix(entry.Name(), ".") {
			return true
		}
	}
	return false
}

// DownloadAll downloads every queued file, pausing between requests.
func (d *Downloader) DownloadAll() {
	rule := strings.Repeat("=", 80)
	fmt.Println(rule)
	fmt.Println("DOWNLOADING MISSING AI INVENTORY FILES")
	fmt.Println(rule)
	fmt.Printf("\nFound %d agencies to download\n", len(d.ToDownload))
	fmt.Printf("Skipped %d (files already exist)\n\n", len(d.Skipped))

	for i, it := range d.ToDownload {
		fmt.Printf("[%d/%d] %s\n", i+1, len(d.ToDownload), it.Agency)
		fmt.Printf("  URL: %s\n", it.URL)
		fmt.Print("  Downloading...")

		time.Sleep(d.delay) // be polite to agency servers

		name, size, err := d.fetch(it)
		if err != nil {
			fmt.Printf(" ✗ Failed\n    %v\n", err)
			d.Failed = append(d.Failed, outcome{Agency: it.Agency, URL: it.URL, Reason: err.Error()})
			continue
		}

		sizeMB := float64(size) / 1024 / 1024
		fmt.Printf(" ✓ (%.1f MB)\n", sizeMB)
		d.Downloaded = append(d.Downloaded, outcome{Agency: it.Agency, File: name, SizeMB: sizeMB})
	}
}

// fetch downloads one file into the agency's folder, returning the stored
// file name and its size. The body is first written to a temp file and only
// renamed into place after validation, so a failed download leaves nothing
// behind.
func (d *Downloader) fetch(it item) (string, int64, error) {
	resp, err := d.client.Get(it.URL)
	if err != nil {
		return "", 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", 0, fmt.Errorf("unexpected status %s", resp.Status)
	}

	dir := filepath.Join(d.cfg.RawDir, it.Slug)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", 0, err
	}

	tmpPath := filepath.Join(dir, ".download-"+uuid.NewString())
	tmp, err := os.Create(tmpPath)
	if err != nil {
		return "", 0, err
	}

	size, copyErr := io.Copy(tmp, resp.Body)
	closeErr := tmp.Close()
	if copyErr != nil || closeErr != nil {
		os.Remove(tmpPath)
		if copyErr != nil {
			return "", 0, copyErr
		}
		return "", 0, closeErr
	}

	if err := validateDownload(tmpPath, size); err != nil {
		os.Remove(tmpPath)
		return "", 0, err
	}

	name := fileName(it.URL, resp)
	finalPath := filepath.Join(dir, name)
	if err := os.Rename(tmpPath, finalPath); err != nil {
		os.Remove(tmpPath)
		return "", 0, err
	}

	return name, size, nil
}

// validateDownload rejects bodies that are too small or are HTML rather
// than an inventory file.
func validateDownload(path string, size int64) error {
	if size < minFileSize {
		return fmt.Errorf("response too small (%d bytes)", size)
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	buf := make([]byte, sniffLen)
	n, _ := io.ReadFull(f, buf)
	head := strings.ToLower(string(buf[:n]))

	if strings.Contains(head, "<!doctype html") || strings.Contains(head, "<html") {
		switch {
		case strings.Contains(head, "cloudflare"), strings.Contains(head, "just a moment"):
			return fmt.Errorf("blocked by Cloudflare")
		case strings.Contains(head, "404"), strings.Contains(head, "not found"):
			return fmt.Errorf("404 - file not found")
		default:
			return fmt.Errorf("response is an HTML page, not a data file")
		}
	}
	return nil
}

// fileName derives the stored file name: the Content-Disposition name when
// the server provides one, otherwise the final URL path segment, otherwise
// an extension-based fallback.
func fileName(rawURL string, resp *http.Response) string {
	if cd := resp.Header.Get("Content-Disposition"); cd != "" {
		if _, params, err := mime.ParseMediaType(cd); err == nil {
			if name := filepath.Base(params["filename"]); name != "" && name != "." {
				return name
			}
		}
	}

	// Prefer the URL after redirects; generic endpoints like /dl carry the
	// real name only in the original link.
	for _, u := range []string{resp.Request.URL.String(), rawURL} {
		if parsed, err := url.Parse(u); err == nil {
			name, _ := url.PathUnescape(path.Base(parsed.Path))
			if name != "" && name != "/" && name != "." &&
				name != "dl" && name != "download" && !strings.Contains(name, "?") &&
				strings.Contains(name, ".") {
				return name
			}
		}
	}

	switch {
	case strings.Contains(rawURL, ".csv"):
		return "inventory.csv"
	case strings.Contains(rawURL, ".xlsx"):
		return "inventory.xlsx"
	case strings.Contains(rawURL, ".pdf"):
		return "inventory.pdf"
	default:
		return "inventory"
	}
}

// PrintSummary prints the run summary and writes the download log.
func (d *Downloader) PrintSummary() error {
	rule := strings.Repeat("=", 80)
	fmt.Println("\n" + rule)
	fmt.Println("SUMMARY")
	fmt.Println(rule)

	fmt.Printf("\nDownloaded: %d\n", len(d.Downloaded))
	for _, o := range d.Downloaded {
		fmt.Printf("  ✓ %s - %s (%.1f MB)\n", o.Agency, o.File, o.SizeMB)
	}

	if len(d.Skipped) > 0 {
		fmt.Printf("\nSkipped: %d\n", len(d.Skipped))
		for _, o := range d.Skipped {
			fmt.Printf("  - %s (%s)\n", o.Agency, o.Reason)
		}
	}

	if len(d.Failed) > 0 {
		fmt.Printf("\nFailed: %d\n", len(d.Failed))
		for _, o := range d.Failed {
			fmt.Printf("  ✗ %s\n", o.Agency)
			fmt.Printf("    URL: %s\n", o.URL)
		}
	}

	if err := d.writeLog(); err != nil {
		return err
	}
	fmt.Printf("\n✓ Log saved to: %s\n", d.cfg.DownloadLogPath())
	return nil
}

// writeLog writes the download log file.
func (d *Downloader) writeLog() error {
	logPath := d.cfg.DownloadLogPath()
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return err
	}

	var b strings.Builder
	rule := strings.Repeat("=", 80)
	b.WriteString(rule + "\n")
	b.WriteString("FILE DOWNLOAD LOG\n")
	b.WriteString(rule + "\n\n")

	fmt.Fprintf(&b, "Downloaded: %d\n", len(d.Downloaded))
	for _, o := range d.Downloaded {
		fmt.Fprintf(&b, "  ✓ %s - %s\n", o.Agency, o.File)
	}

	if len(d.Skipped) > 0 {
		fmt.Fprintf(&b, "\nSkipped: %d\n", len(d.Skipped))
		for _, o := range d.Skipped {
			fmt.Fprintf(&b, "  - %s: %s\n", o.Agency, o.Reason)
		}
	}

	if len(d.Failed) > 0 {
		fmt.Fprintf(&b, "\nFailed: %d\n", len(d.Failed))
		for _, o := range d.Failed {
			fmt.Fprintf(&b, "  ✗ %s\n", o.Agency)
			fmt.Fprintf(&b, "    URL: %s\n", o.URL)
		}
	}

	return os.WriteFile(logPath, []byte(b.String()), 0644)
}
