// =============================================================================
// AI Inventory Consolidator - Stage Normalizer
// =============================================================================
//
// Stage-of-development text is free-form and split across two incompatible
// taxonomies: the 2024 inventories used a 5-category lifecycle model
// (Initiated / Acquisition / Implementation / Operation / Retired) while the
// 2025 instrument asks for a 3-category model. Both collapse here into
// {In Development, In Operation, Retired} plus Unknown.
//
// Keyword sets are checked in fixed priority order, Retired first. That
// ordering is policy: "retired after pilot" must normalize to Retired, since
// retirement is the operationally significant fact even when the text also
// carries a development-stage phrase.
//
// =============================================================================

package inventory

import (
	"regexp"
	"strings"
)

// optionPrefix strips the multiple-choice option letter some source files
// prepend to stage answers, e.g. "a) Deployed" or "b in development".
var optionPrefix = regexp.MustCompile(`^[a-d]\)\s*|^[a-d]\s+`)

// retiredKeywords mark a use case as retired under the current model.
// "stage 5" is the numeric marker some agencies use for the discontinued
// lifecycle stage.
var retiredKeywords = []string{"retired", "stage 5"}

// operationKeywords mark a use case as operational under the current model.
var operationKeywords = []string{
	"deployed", "stage 4", "operation and maintenance", "in mission", "production",
}

// developmentKeywords mark a use case as in development under the current
// model. The set is broad: it spans initiation, acquisition, sandboxing,
// piloting, and implementation synonyms across agency vocabularies.
var developmentKeywords = []string{
	"stage 1", "initiation", "initiated",
	"stage 2", "development", "development and acquisition", "acquisition and/or development",
	"sandbox", "pre-deployment", "pre deployment", "acquisition",
	"stage 3", "pilot", "implementation",
}

// NormalizeStage maps arbitrary free-text stage values from the current
// (2025) reporting model into the canonical taxonomy. Empty or unmatched
// text yields StageUnknown.
func NormalizeStage(raw string) Stage {
	s := normalizeStageText(raw)
	if s == "" {
		return StageUnknown
	}

	switch {
	case containsAny(s, retiredKeywords):
		return StageRetired
	case containsAny(s, operationKeywords):
		return StageInOperation
	case containsAny(s, developmentKeywords):
		return StageInDevelopment
	default:
		return StageUnknown
	}
}

// normalizeStageText lowercases, trims, and strips the leading option-letter
// prefix from a raw stage value.
func normalizeStageText(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	return optionPrefix.ReplaceAllString(s, "")
}

// containsAny reports whether s contains any of the keywords.
func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// =============================================================================
// LEGACY (2024) 5-STAGE MODEL
// =============================================================================

// LegacyStage is a category of the 2024 5-stage lifecycle model.
type LegacyStage string

// Legacy stage categories as they appear in the 2024 consolidated inventory.
const (
	LegacyPreDeployment LegacyStage = "Pre-deployment"
	LegacyPilot         LegacyStage = "Pilot"
	LegacyDeployed      LegacyStage = "Deployed"
	LegacyRetired       LegacyStage = "Retired"
	LegacyUnknown       LegacyStage = "Unknown"
)

// NormalizeLegacyStage maps free-text 2024 stage values into the legacy
// 5-stage model. The keyword ladder mirrors the vocabulary of the 2024
// filings; like the current model, Retired dominates.
func NormalizeLegacyStage(raw string) LegacyStage {
	if strings.TrimSpace(raw) == "" {
		return LegacyUnknown
	}
	s := strings.ToLower(raw)

	switch {
	case strings.Contains(s, "retired"):
		return LegacyRetired
	case strings.Contains(s, "operation and maintenance"),
		strings.Contains(s, "in production"),
		strings.Contains(s, "in mission"):
		return LegacyDeployed
	case strings.Contains(s, "implementation and assessment"):
		return LegacyPilot
	case strings.Contains(s, "acquisition"),
		strings.Contains(s, "development"),
		strings.Contains(s, "initiated"),
		strings.Contains(s, "planned"):
		return LegacyPreDeployment
	case strings.Contains(s, "pre-deployment"),
		strings.Contains(s, "pre deployment"),
		strings.Contains(s, "pre-"):
		return LegacyPreDeployment
	case strings.Contains(s, "pilot"):
		return LegacyPilot
	case strings.Contains(s, "deployed"), strings.Contains(s, "active"):
		return LegacyDeployed
	default:
		return LegacyUnknown
	}
}

// Summarize folds a legacy category into the canonical 3-category model:
// Pre-deployment and Pilot are both In Development, Deployed is In Operation,
// Retired and Unknown pass through.
func (l LegacyStage) Summarize() Stage {
	switch l {
	case LegacyPreDeployment, LegacyPilot:
		return StageInDevelopment
	case LegacyDeployed:
		return StageInOperation
	case LegacyRetired:
		return StageRetired
	default:
		return StageUnknown
	}
}

// LegacyLabel maps a current-year raw stage value onto the 2024 five-stage
// vocabulary. The combined export keeps both years in the older wording so
// the two can be read side by side.
func LegacyLabel(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return "Unknown"
	}

	switch {
	case strings.Contains(s, "retired"):
		return "Retired"
	case strings.Contains(s, "deployed"),
		strings.Contains(s, "operation and maintenance"),
		strings.Contains(s, "production"):
		return "Operation and Maintenance"
	case strings.Contains(s, "pilot"), strings.Contains(s, "implementation"):
		return "Implementation and Assessment"
	case strings.Contains(s, "pre-deployment"),
		strings.Contains(s, "acquisition"),
		strings.Contains(s, "development"),
		strings.Contains(s, "sandbox"):
		return "Acquisition and/or Development"
	case strings.Contains(s, "initiated"),
		strings.Contains(s, "ideation"),
		strings.Contains(s, "planned"):
		return "Initiated"
	default:
		return "Unknown"
	}
}
