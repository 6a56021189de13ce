// =============================================================================
// AI Inventory Consolidator - Normalized Record
// =============================================================================
//
// A Record is one use case in the consolidated output: the handful of typed
// core fields (agency, id, name, stage) plus the ~25 free-text governance
// attributes the survey instrument asks for. Attribute values are carried in
// a map keyed by FieldKey, but serialization always walks the fixed column
// order below, so output is stable.
//
// =============================================================================

package inventory

// Stage is the canonical stage-of-development category.
type Stage string

// Canonical stage categories. The two source taxonomies (the legacy 5-stage
// lifecycle model and the current 3-stage reporting model) both collapse into
// these.
const (
	StageInDevelopment Stage = "In Development"
	StageInOperation   Stage = "In Operation"
	StageRetired       Stage = "Retired"
	StageUnknown       Stage = "Unknown"
)

// Record represents one normalized use case.
type Record struct {
	// Agency is the reporting agency's display name, derived from the folder
	// the source file was found in.
	Agency string

	// UseCaseID is the agency-assigned identifier. May be empty.
	UseCaseID string

	// UseCaseName is the use case's name. A record is only retained when it
	// has a non-empty id or name.
	UseCaseName string

	// RawStage is the stage text exactly as it appeared in the source file.
	RawStage string

	// Stage is RawStage normalized into the canonical taxonomy.
	Stage Stage

	// Attrs holds the remaining governance attributes, keyed by FieldKey.
	// Absent keys serialize as empty cells.
	Attrs map[FieldKey]string
}

// Attr returns the value of a governance attribute, or "" if unset.
func (r *Record) Attr(key FieldKey) string {
	return r.Attrs[key]
}

// attrColumns lists the governance attributes in consolidated output order.
var attrColumns = []FieldKey{
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

// attrHeaders maps each governance attribute to its consolidated CSV column
// header. The headers are the full question text of the 2025 survey
// instrument, kept verbatim so the consolidated file reads like the source
// inventories.
var attrHeaders = map[FieldKey]string{
	FieldBureau:                  "Bureau/Component",
	FieldHighImpact:              "Is the AI use case high-impact?",
	FieldJustification:           "Justification",
	FieldTopicArea:               "Use Case Topic Area",
	FieldAIClassification:        "AI Classification",
	FieldProblemSolved:           "What problem is the AI intended to solve?",
	FieldBenefits:                "What are the expected benefits and positive outcomes from the AI for an agency's mission and/or the general public?",
	FieldOutputs:                 "Describe the AI system's outputs.",
	FieldOperationalDate:         "Date when AI use case became operational or the pilot's start date",
	FieldVendorPurchased:         "Was the system involved in this use case purchased from a vendor or developed under contract(s) or in-house?",
	FieldVendorName:              "Vendor(s) Name",
	FieldATO:                     "Does this AI use case have an associated Authorization to Operate (ATO)?",
	FieldSystemName:              "System(s) Name",
	FieldTrainingData:            "Describe any data used to train, fine-tune, and/or evaluate performance of the model(s) used in this use case.",
	FieldTrainingDataCatalog:     "If the data is required to be publicly disclosed as an open government data asset, provide a link to the entry on the Federal Data Catalog.",
	FieldPII:                     "Does this AI use case involve personally identifiable information (PII) that is maintained by the agency?",
	FieldPIA:                     "If publicly available, provide the link to the AI use case's associated Privacy Impact Assessment (PIA).",
	FieldDemographicVariables:    "Which, if any, demographic variables does the AI use case explicitly use as model features?",
	FieldCustomCode:              "Does this project include custom-developed code?",
	FieldCodeLink:                "If the code is open source, provide the link for the publicly available source code.",
	FieldPreDeploymentTesting:    "Has pre-deployment testing been conducted for this AI use case?",
	FieldImpactAssessment:        "Has an AI impact assessment been completed for this AI use case?",
	FieldImpactAssessmentDetails: "What are the potential impacts of using the AI for this particular use case and how were they identified?",
	FieldIndependentReview:       "Has an independent review of the AI use case been conducted?",
	FieldOngoingMonitoring:       "Is there a process to conduct ongoing monitoring to identify any adverse impacts to the performance and security of the AI functionality, as well as to privacy, civil rights, and civil liberties?",
	FieldOperatorTraining:        "Has the agency established sufficient and periodic training for operators of the AI to interpret and act on the its output and managed associated risks?",
	FieldFailSafe:                "Does this AI use case have an appropriate fail-safe that minimizes the risk of significant harm?",
	FieldAppealProcess:           "Is there an established appeal process in the event that an impacted individual would like to appeal or contest the AI system's outcome?",
	FieldPublicFeedback:          "What steps has the agency taken to consult and incorporate feedback from end users of this AI use case and the public?",
}

// OutputHeader returns the consolidated CSV header row in its fixed column
// order: the typed core fields followed by every governance attribute.
func OutputHeader() []string {
	header := []string{
		"Agency",
		"Use Case ID",
		"Use Case Name",
		attrHeaders[FieldBureau],
		"Stage of Development (Raw)",
		"Stage of Development",
	}
	for _, key := range attrColumns {
		if key == FieldBureau {
			continue // placed with the core fields above
		}
		header = append(header, attrHeaders[key])
	}
	return header
}

// OutputRow returns the record serialized in OutputHeader order.
func (r *Record) OutputRow() []string {
	row := []string{
		r.Agency,
		r.UseCaseID,
		r.UseCaseName,
		r.Attr(FieldBureau),
		r.RawStage,
		string(r.Stage),
	}
	for _, key := range attrColumns {
		if key == FieldBureau {
			continue
		}
		row = append(row, r.Attr(key))
	}
	return row
}
