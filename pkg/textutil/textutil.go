// =============================================================================
// AI Inventory Consolidator - Text Utilities
// =============================================================================
//
// Small helpers shared by the commands: agency folder slugs, display-name
// derivation, and the normalized keys used to join agencies across years.
//
// =============================================================================

package textutil

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// titleCaser capitalizes every word. Safe for concurrent use is not needed
// here; each caller gets cheap casing on short strings.
var titleCaser = cases.Title(language.AmericanEnglish)

// Slugify converts an agency display name to its folder slug: lowercase,
// spaces to dashes, everything but alphanumerics and dashes stripped, runs of
// dashes collapsed.
//
// Example: "Department of Veterans Affairs" -> "department-of-veterans-affairs"
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, " ", "-")

	var b strings.Builder
	for _, r := range s {
		if r == '-' || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	s = b.String()

	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	return s
}

// AgencyFromSlug derives an agency display name from its folder slug by
// replacing dashes with spaces and title-casing every word.
//
// Example: "department-of-agriculture" -> "Department Of Agriculture"
//
// Note the capital "Of": display names capitalize every word, matching the
// keys of the per-agency override table. TitleCaseAgency produces the
// reader-friendly casing used in the combined export.
func AgencyFromSlug(slug string) string {
	return titleCaser.String(strings.ReplaceAll(slug, "-", " "))
}

// NormalizeAgencyKey produces the case- and whitespace-insensitive key used
// to join agency rows across years.
func NormalizeAgencyKey(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// smallWords are not capitalized in title case unless they lead the name.
var smallWords = map[string]bool{
	"of": true, "the": true, "and": true, "for": true, "on": true, "to": true,
}

// TitleCaseAgency normalizes an agency name to conventional title case:
// every word capitalized except articles, prepositions, and conjunctions,
// with the first word always capitalized.
//
// Example: "Department Of Agriculture" -> "Department of Agriculture"
func TitleCaseAgency(name string) string {
	words := strings.Fields(name)
	for i, w := range words {
		lower := strings.ToLower(w)
		if i > 0 && smallWords[lower] {
			words[i] = lower
			continue
		}
		words[i] = capitalize(lower)
	}
	return strings.Join(words, " ")
}

// capitalize uppercases the first rune of a word.
func capitalize(w string) string {
	if w == "" {
		return w
	}
	return strings.ToUpper(w[:1]) + w[1:]
}
