// =============================================================================
// AI Inventory Consolidator - HTML Table Extraction
// =============================================================================
//
// One agency (Tennessee Valley Authority) publishes its inventory only as a
// web page. This module pulls the rows out of the first <table> in a saved
// page, falling back to tab-separated text for pages saved as plain text.
// The consolidator converts the result to a cached CSV once and re-parses
// only when the saved page is newer than the cache.
//
// =============================================================================

package loader

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// ExtractHTMLRows parses saved page content and returns the rows of its
// first table. If the content carries no <table>, it is retried as
// tab-separated text. Returns an error when neither form yields at least a
// header row and one data row.
func ExtractHTMLRows(content string) ([][]string, error) {
	var rows [][]string

	if strings.Contains(content, "<table") {
		doc, err := html.Parse(strings.NewReader(content))
		if err == nil {
			if table := findFirst(doc, "table"); table != nil {
				rows = tableRows(table)
			}
		}
	}

	if len(rows) == 0 {
		rows = tabSeparatedRows(content)
	}

	if len(rows) < 2 {
		return nil, fmt.Errorf("no table data found")
	}
	return rows, nil
}

// findFirst returns the first element with the given tag in document order.
func findFirst(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// tableRows collects one row per <tr>, one cell per <th>/<td>, cell text
// whitespace-collapsed. Empty rows are skipped.
func tableRows(table *html.Node) [][]string {
	var rows [][]string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "tr" {
			var cells []string
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if c.Type == html.ElementNode && (c.Data == "th" || c.Data == "td") {
					cells = append(cells, collapseText(c))
				}
			}
			if len(cells) > 0 {
				rows = append(rows, cells)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(table)
	return rows
}

// collapseText returns the concatenated text content of a node with
// whitespace runs collapsed.
func collapseText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteString(" ")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(b.String()), " ")
}

// tabSeparatedRows parses page content saved as plain text: it scans for the
// header line naming the use case column, then takes every following
// tab-separated line with at least three non-empty cells.
func tabSeparatedRows(content string) [][]string {
	lines := strings.Split(content, "\n")

	headerIdx := -1
	for i, line := range lines {
		if strings.Contains(line, "Use Case Name") && strings.Contains(line, "\t") {
			headerIdx = i
			break
		}
	}
	if headerIdx < 0 {
		return nil
	}

	var rows [][]string
	for _, line := range lines[headerIdx:] {
		if !strings.Contains(line, "\t") {
			continue
		}
		var cells []string
		for _, cell := range strings.Split(line, "\t") {
			cell = strings.TrimSpace(cell)
			if cell != "" {
				cells = append(cells, cell)
			}
		}
		if len(cells) >= 3 {
			rows = append(rows, cells)
		}
	}
	return rows
}
