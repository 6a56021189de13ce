// =============================================================================
// AI Inventory Consolidator - Field Key Catalog
// =============================================================================
//
// This file defines the canonical field keys the consolidator looks for in
// every agency file, together with the ordered list of label variants used to
// locate each one. The catalog is the heart of schema reconciliation: agency
// files never agree on column names, so each key carries every label spelling
// observed across the 2024 and 2025 inventories, most specific first.
//
// Matching is case-insensitive substring matching against column labels and,
// as a fallback, against the first data row (some agencies publish generic
// column letters with the real question text embedded as the first row).
//
// The catalog is a fixed ordered table, not a map keyed for iteration:
// resolution must be stable run over run.
//
// =============================================================================

package inventory

// FieldKey identifies one canonical field of a use case record.
type FieldKey string

// Canonical field keys, in consolidated output order.
const (
	FieldAgency                  FieldKey = "agency"
	FieldUseCaseID               FieldKey = "use_case_id"
	FieldUseCaseName             FieldKey = "use_case_name"
	FieldBureau                  FieldKey = "bureau"
	FieldStage                   FieldKey = "stage"
	FieldHighImpact              FieldKey = "high_impact"
	FieldJustification           FieldKey = "justification"
	FieldTopicArea               FieldKey = "topic_area"
	FieldAIClassification        FieldKey = "ai_classification"
	FieldProblemSolved           FieldKey = "problem_solved"
	FieldBenefits                FieldKey = "benefits"
	FieldOutputs                 FieldKey = "outputs"
	FieldOperationalDate         FieldKey = "operational_date"
	FieldVendorPurchased         FieldKey = "vendor_purchased"
	FieldVendorName              FieldKey = "vendor_name"
	FieldATO                     FieldKey = "ato"
	FieldSystemName              FieldKey = "system_name"
	FieldTrainingData            FieldKey = "training_data"
	FieldTrainingDataCatalog     FieldKey = "training_data_catalog"
	FieldPII                     FieldKey = "pii"
	FieldPIA                     FieldKey = "pia"
	FieldDemographicVariables    FieldKey = "demographic_variables"
	FieldCustomCode              FieldKey = "custom_code"
	FieldCodeLink                FieldKey = "code_link"
	FieldPreDeploymentTesting    FieldKey = "pre_deployment_testing"
	FieldImpactAssessment        FieldKey = "impact_assessment"
	FieldImpactAssessmentDetails FieldKey = "impact_assessment_details"
	FieldIndependentReview       FieldKey = "independent_review"
	FieldOngoingMonitoring       FieldKey = "ongoing_monitoring"
	FieldOperatorTraining        FieldKey = "operator_training"
	FieldFailSafe                FieldKey = "fail_safe"
	FieldAppealProcess           FieldKey = "appeal_process"
	FieldPublicFeedback          FieldKey = "public_feedback"
)

// fieldVariants maps each canonical key to its ordered variant list. Variants
// are matched as case-insensitive substrings, in declaration order; put the
// most specific spelling first.
//
// FieldAgency is in the catalog for completeness but is never resolved from
// file contents: the agency name comes from the folder the file lives in.
var fieldVariants = map[FieldKey][]string{
	FieldAgency:       {"Agency", "agency"},
	FieldUseCaseName:  {"Use Case Name", "use case name", "Name"},
	FieldBureau:       {"Bureau", "Bureau/Component", "Department", "bureau/component"},
	FieldStage:        {"Stage", "Stage of Development", "Status", "stage of development", "Stage of System Development Life Cycle", "Deployment Phase"},
	FieldHighImpact:   {"High-impact", "High Impact", "high-impact", "is the ai use case high-impact"},
	FieldJustification: {"Justification", "justification"},
	FieldTopicArea:    {"Topic Area", "Use Case Topic Area", "topic area"},
	FieldAIClassification: {"AI Classification", "Classification", "ai classification"},
	FieldProblemSolved: {"Problem", "What problem", "problem is the ai intended to solve"},
	FieldBenefits:     {"Benefits", "Expected Benefits", "Outcomes", "expected benefits", "benefits and positive outcomes"},
	FieldOutputs:      {"Output", "outputs", "Describe the AI system", "ai system outputs"},
	FieldOperationalDate: {"Date", "Operational Date", "operational or pilot start date"},
	FieldVendorPurchased: {"Purchased", "developed under contract", "vendor or developed", "was the system involved"},
	FieldVendorName:   {"Vendor", "Vendors", "vendor name", "Vendor(s) Name"},
	FieldATO:          {"Authorization to Operate", "ATO", "associated ato"},
	FieldSystemName:   {"System", "System(s) Name", "system name"},
	FieldTrainingData: {"Training data", "data used to train", "describe any data used"},
	FieldTrainingDataCatalog: {"Federal Data Catalog", "data catalog", "federal data catalog"},
	FieldPII:          {"PII", "personally identifiable", "pii that is maintained"},
	FieldPIA:          {"Privacy Impact Assessment", "PIA", "privacy impact assessment"},
	FieldDemographicVariables: {"demographic", "demographic variables"},
	FieldCustomCode:   {"custom-developed code", "custom code", "custom-developed"},
	FieldCodeLink:     {"open source", "source code", "publicly available source code"},
	FieldPreDeploymentTesting: {"pre-deployment testing", "pre deployment"},
	FieldImpactAssessment: {"AI impact assessment", "impact assessment"},
	FieldImpactAssessmentDetails: {"potential impacts", "impacts of using the ai"},
	FieldIndependentReview: {"independent review", "independent assessment"},
	FieldOngoingMonitoring: {"ongoing monitoring", "adverse impacts", "monitoring for performance"},
	FieldOperatorTraining: {"operator training", "periodic training", "adequate human training"},
	FieldFailSafe:     {"fail-safe", "failsafe", "minimize the risk"},
	FieldAppealProcess: {"appeal process", "appeal or contest"},
	FieldPublicFeedback: {"consult", "incorporate feedback", "feedback from end users"},
	FieldUseCaseID:    {"Use Case ID", "use case id", "ID"},
}

// vendorNameStrictSubstrings are the strict pre-pass substrings for
// FieldVendorName. The generic "Vendor" substring would also hit the
// "purchased from a vendor or developed under contract" column, so vendor
// name is first resolved with these narrower patterns and only falls back to
// the generic pass if none of them hit.
var vendorNameStrictSubstrings = []string{
	"vendor(s) name",
	"vendors name",
}

// vendorNameStrictExact are the exact-match labels accepted by the vendor
// name strict pre-pass.
var vendorNameStrictExact = []string{
	"vendor name",
	"vendor",
	"vendors",
}

// Variants returns the ordered variant list for a field key. The returned
// slice must not be modified.
func Variants(key FieldKey) []string {
	return fieldVariants[key]
}

// headerSentinels are phrases strongly indicative of this survey instrument's
// header row. A first data row is only treated as an embedded header when at
// least two of them appear in its concatenated text; a single hit is far too
// common in ordinary data (use case names routinely mention one phrase).
var headerSentinels = []string{
	"stage of development",
	"use case id",
	"use case name",
	"ai classification",
	"authorization to operate",
}

// startRowSentinels is the sentinel list used when deciding whether a table's
// first row is a surviving header that extraction should skip. It extends
// headerSentinels with the bureau label, which shows up in header rows but
// essentially never in data.
var startRowSentinels = append(append([]string{}, headerSentinels...), "bureau/component")
