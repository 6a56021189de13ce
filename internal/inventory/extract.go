// =============================================================================
// AI Inventory Consolidator - Row Extractor
// =============================================================================
//
// The extractor walks a normalized table and assembles one Record per data
// row. Column resolution happens once per table, then every row is read
// through the same resolutions.
//
// ROW FILTERS (in order):
//   - rows with empty id AND empty name are dropped
//   - rows where BOTH id and name start with "use case" are dropped: that is
//     a doubled header row, not data. Requiring both sides keeps legitimate
//     names that merely contain the phrase.
//   - rows whose name equals a known placeholder token are dropped
//
// Dropped rows are silent; only conditions affecting the whole file (missing
// name column, zero extracted rows) are recorded as issues.
//
// =============================================================================

package inventory

import (
	"path/filepath"
	"strings"
)

// extractionFields lists every field key resolved per table, in a fixed
// order. FieldAgency is excluded: the agency comes from the folder name.
var extractionFields = []FieldKey{
	FieldUseCaseID,
	FieldUseCaseName,
	FieldStage,
	FieldBureau,
	FieldHighImpact,
	FieldJustification,
	FieldTopicArea,
	FieldAIClassification,
	FieldProblemSolved,
	FieldBenefits,
	FieldOutputs,
	FieldOperationalDate,
	FieldVendorPurchased,
	FieldVendorName,
	FieldATO,
	FieldSystemName,
	FieldTrainingData,
	FieldTrainingDataCatalog,
	FieldPII,
	FieldPIA,
	FieldDemographicVariables,
	FieldCustomCode,
	FieldCodeLink,
	FieldPreDeploymentTesting,
	FieldImpactAssessment,
	FieldImpactAssessmentDetails,
	FieldIndependentReview,
	FieldOngoingMonitoring,
	FieldOperatorTraining,
	FieldFailSafe,
	FieldAppealProcess,
	FieldPublicFeedback,
}

// ExtractRecords converts a normalized table into records for one agency.
// Anomalies are recorded on issues; the function never fails.
func ExtractRecords(t *Table, agency string, issues *Issues) []Record {
	if t.IsEmpty() {
		issues.Addf("Empty file: %s", t.SourceFile)
		return nil
	}

	t.DropBlankRows()
	if len(t.Rows) == 0 {
		issues.Addf("No data rows: %s", t.SourceFile)
		return nil
	}

	// The header normalizer only promotes embedded headers out of tables with
	// placeholder columns. A table can still open with a real header row when
	// its declared labels were ordinary; re-apply the sentinel heuristic to
	// decide whether row 0 is data.
	startRow := 0
	if CountStartRowSentinels(t.Rows[0]) >= 2 {
		startRow = 1
	}

	// Resolve every field once.
	cols := make(map[FieldKey]int, len(extractionFields))
	for _, key := range extractionFields {
		cols[key] = LocateField(t, key)
	}

	if cols[FieldUseCaseName] < 0 {
		issues.Addf("%s - %s: Cannot find columns: use_case_name", agency, filepath.Base(t.SourceFile))
	}

	override, _ := OverrideFor(agency)

	var records []Record
	for idx := startRow; idx < len(t.Rows); idx++ {
		cell := func(key FieldKey) string {
			col := cols[key]
			if col < 0 {
				return ""
			}
			return strings.TrimSpace(t.Cell(idx, col))
		}

		uid := cell(FieldUseCaseID)
		uname := cell(FieldUseCaseName)

		// Combined "ID: Name" correction for agencies that file both in one
		// field, gated on the agency's known id prefix.
		if override.IDPrefix != "" && strings.HasPrefix(uname, override.IDPrefix) {
			if before, after, found := strings.Cut(uname, ":"); found {
				uid = strings.TrimSpace(before)
				uname = strings.TrimSpace(after)
			}
		}

		if uid == "" && uname == "" {
			continue
		}
		if strings.HasPrefix(strings.ToLower(uid), "use case") &&
			strings.HasPrefix(strings.ToLower(uname), "use case") {
			continue
		}
		if placeholderNames[strings.ToUpper(uname)] {
			continue
		}

		rawStage := cell(FieldStage)

		rec := Record{
			Agency:      agency,
			UseCaseID:   uid,
			UseCaseName: uname,
			RawStage:    rawStage,
			Stage:       NormalizeStage(rawStage),
			Attrs:       make(map[FieldKey]string, len(attrColumns)),
		}
		for _, key := range attrColumns {
			rec.Attrs[key] = cell(key)
		}

		records = append(records, rec)
	}

	return records
}
