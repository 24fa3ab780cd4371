package models

// Field describes one editable record field: the form key it is posted
// under, the column it is stored in, and the human label used in history
// entries and notifications. Most fields post under their column name;
// the composed fields (candidate source, rates) post under a derived key.
type Field struct {
	FormKey string
	Column  string
	Label   string
}

// FieldCatalog is the ordered list of every field the record editor
// diffs and persists. The edit handler walks this list; the order fixes
// the order of history rows and notification lines for one edit.
var FieldCatalog = []Field{
	// Consultant
	{"cfirstname", "cfirstname", "First Name"},
	{"clastname", "clastname", "Last Name"},
	{"cemail", "cemail", "Consultant Email"},
	{"cphone", "cphone", "Consultant Phone"},
	{"clocation_preference", "clocation_preference", "Location Preference"},
	{"crelocation", "crelocation", "Open to Relocation"},
	{"cwork_authorization_status", "cwork_authorization_status", "Work Authorization Status"},
	{"work_auth_expiry", "work_auth_expiry", "Work Authorization Expiry"},
	{"vvalidate_status", "vvalidate_status", "V-Validate Status"},
	{"ccertifications", "ccertifications", "Certifications"},
	{"clinkedin_url", "clinkedin_url", "LinkedIn URL"},
	{"coverall_experience", "coverall_experience", "Overall Experience"},
	{"final_candidate_source", "ccandidate_source", "Final Candidate Source"},

	// Employer corporation
	{"corporation_name", "corporation_name", "Corporation Name"},
	{"corporation_contact_name", "corporation_contact_name", "Corporation Contact Name"},
	{"corporation_contact_email", "corporation_contact_email", "Corporation Contact Email"},
	{"corporation_contact_phone", "corporation_contact_phone", "Corporation Contact Phone"},
	{"fed_id", "fed_id", "FED ID"},
	{"benchsales_poc_name", "benchsales_poc_name", "Bench Sales POC Name"},
	{"benchsales_poc_email", "benchsales_poc_email", "Bench Sales POC Email"},
	{"benchsales_poc_phone", "benchsales_poc_phone", "Bench Sales POC Phone"},

	// Vendor (secondary employer)
	{"vendor_corporation_name", "vendor_corporation_name", "Vendor Corporation Name"},
	{"vendor_contact_name", "vendor_contact_name", "Vendor Contact Name"},
	{"vendor_contact_email", "vendor_contact_email", "Vendor Contact Email"},
	{"vendor_contact_phone", "vendor_contact_phone", "Vendor Contact Phone"},
	{"vendor_fee", "vendor_fee", "Vendor Fee"},

	// Project
	{"client", "client", "Client"},
	{"end_client", "end_client", "End Client"},
	{"job_code", "job_code", "Job Code"},
	{"job_title", "job_title", "Job Title"},
	{"primary_skill", "primary_skill", "Primary Skill"},
	{"secondary_skill", "secondary_skill", "Secondary Skill"},
	{"term", "term", "Term"},
	{"duration", "duration", "Duration"},
	{"employment_type", "employment_type", "Employment Type"},
	{"work_location", "work_location", "Work Location"},
	{"project_location", "project_location", "Project Location"},
	{"start_date", "start_date", "Start Date"},
	{"end_date", "end_date", "End Date"},

	// Collaboration - primary team
	{"delivery_manager", "delivery_manager", "Delivery Manager"},
	{"delivery_account_lead", "delivery_account_lead", "Delivery Account Lead"},
	{"team_lead", "team_lead", "Team Lead"},
	{"associate_team_lead", "associate_team_lead", "Associate Team Lead"},
	{"recruiter_name", "recruiter_name", "Recruiter"},
	{"account_manager", "account_manager", "Account Manager"},
	{"recruitment_manager", "recruitment_manager", "Recruitment Manager"},

	// Collaboration - secondary team
	{"delivery_manager1", "delivery_manager1", "Delivery Manager (Secondary)"},
	{"delivery_account_lead1", "delivery_account_lead1", "Delivery Account Lead (Secondary)"},
	{"team_lead1", "team_lead1", "Team Lead (Secondary)"},
	{"associate_team_lead1", "associate_team_lead1", "Associate Team Lead (Secondary)"},
	{"recruiter_name1", "recruiter_name1", "Recruiter (Secondary)"},
	{"account_manager1", "account_manager1", "Account Manager (Secondary)"},
	{"recruitment_manager1", "recruitment_manager1", "Recruitment Manager (Secondary)"},

	{"business_unit", "business_unit", "Business Unit"},

	// Financial
	{"client_rate_combined", "clientrate", "Client Rate"},
	{"pay_rate_combined", "payrate", "Pay Rate"},
	{"margin", "margin", "Margin"},
	{"margin_deviation_approval", "margin_deviation_approval", "Margin Deviation Approval"},
	{"margin_deviation_reason", "margin_deviation_reason", "Margin Deviation Reason"},
	{"ratecard_adherence", "ratecard_adherence", "Rate Card Adherence"},
	{"ratecard_deviation_approved", "ratecard_deviation_approved", "Rate Card Deviation Approval"},
	{"ratecard_deviation_reason", "ratecard_deviation_reason", "Rate Card Deviation Reason"},
	{"payment_term", "payment_term", "Payment Term"},
	{"payment_term_approval", "payment_term_approval", "Payment Term Deviation Approval"},
	{"payment_term_deviation_reason", "payment_term_deviation_reason", "Payment Term Deviation Reason"},
	{"overtime_expense", "overtime_expense", "Overtime Expense"},
	{"overtime_payrate", "overtime_payrate", "Overtime Pay Rate"},

	// Workflow and annotation
	{"status", "status", "Status"},
	{"plc_code", "plc_code", "PLC Code"},
	{"remarks", "remarks", "Remarks"},
}

// Columns returns the stored column for every catalog field, in catalog
// order. Used to assemble the editor's SELECT and the diff baseline.
func Columns() []string {
	cols := make([]string, len(FieldCatalog))
	for i, f := range FieldCatalog {
		cols[i] = f.Column
	}
	return cols
}

// LabelForColumn resolves a column to its human label, falling back to
// the column name itself.
func LabelForColumn(column string) string {
	for _, f := range FieldCatalog {
		if f.Column == column {
			return f.Label
		}
	}
	return column
}

// CollaborationColumns are the fourteen team-role columns matched against
// a caller's TeamKey for row-level visibility. Values are free-text
// "Name - EmpID" strings or the sentinel "NA"; the match is plain string
// equality with no referential guarantee.
var CollaborationColumns = []string{
	"delivery_manager",
	"delivery_account_lead",
	"team_lead",
	"associate_team_lead",
	"recruiter_name",
	"account_manager",
	"recruitment_manager",
	"delivery_manager1",
	"delivery_account_lead1",
	"team_lead1",
	"associate_team_lead1",
	"recruiter_name1",
	"account_manager1",
	"recruitment_manager1",
}

// dependentRule ties a conditionally required column to its controlling
// column and the value that triggers the requirement.
type dependentRule struct {
	Controller string
	Trigger    string
	Required   string
}

var dependentRules = []dependentRule{
	{"cwork_authorization_status", "H1B", "vvalidate_status"},
	{"margin_deviation_approval", "Yes", "margin_deviation_reason"},
	{"ratecard_deviation_approved", "Yes", "ratecard_deviation_reason"},
	{"payment_term_approval", "Yes", "payment_term_deviation_reason"},
}

// baseRequired are the columns required on every submission regardless of
// other values.
var baseRequired = []string{
	"cfirstname",
	"clastname",
	"cemail",
	"client",
	"job_title",
	"status",
}

// RequiredFields derives the set of required (and therefore visible)
// columns from a record's current values. The edit page renders from it
// and the submit path validates against it, so the two can never
// disagree; values is column -> value.
func RequiredFields(values map[string]string) map[string]bool {
	required := make(map[string]bool, len(baseRequired)+len(dependentRules)+1)
	for _, col := range baseRequired {
		required[col] = true
	}
	for _, rule := range dependentRules {
		if values[rule.Controller] == rule.Trigger {
			required[rule.Required] = true
		}
	}
	// The composed source column is required in full (kind and detail)
	// when the chosen kind carries a detail component.
	if source := ParseCandidateSource(values["ccandidate_source"]); SourceNeedsDetail(source.Kind) {
		required["ccandidate_source"] = true
	}
	return required
}

// MissingRequired validates a candidate set of values against the
// required set derived from those same values, returning the labels of
// every violated field in catalog order.
func MissingRequired(values map[string]string) []string {
	required := RequiredFields(values)
	var missing []string
	for _, f := range FieldCatalog {
		if !required[f.Column] {
			continue
		}
		value := values[f.Column]
		if value == "" || value == "NA" {
			missing = append(missing, f.Label)
			continue
		}
		if f.Column == "ccandidate_source" {
			if source := ParseCandidateSource(value); SourceNeedsDetail(source.Kind) && source.Detail == "" {
				missing = append(missing, f.Label)
			}
		}
	}
	return missing
}
