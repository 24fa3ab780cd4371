package models

import "time"

// PaperworkRecord is one consultant placement. The business columns are
// carried in Fields keyed by column name (see FieldCatalog) so the editor
// can diff and persist them uniformly; the workflow and annotation columns
// the application reads directly are promoted to typed fields.
type PaperworkRecord struct {
	ID           int               `json:"id"`
	SubmittedBy  string            `json:"submittedby"`
	Status       Status            `json:"status"`
	PLCCode      string            `json:"plc_code"`
	PLCUpdatedAt *time.Time        `json:"plc_updated_at,omitempty"`
	PLCUpdatedBy string            `json:"plc_updated_by,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
	Fields       map[string]string `json:"fields"`
}

// ConsultantName joins the stored first/last name columns for display.
func (r *PaperworkRecord) ConsultantName() string {
	first := r.Fields["cfirstname"]
	last := r.Fields["clastname"]
	switch {
	case first == "":
		return last
	case last == "":
		return first
	}
	return first + " " + last
}

// PaperworkRow is the projection rendered in the list table.
type PaperworkRow struct {
	ID             int       `json:"id"`
	ConsultantName string    `json:"consultant_name"`
	Email          string    `json:"email"`
	Client         string    `json:"client"`
	JobTitle       string    `json:"job_title"`
	BusinessUnit   string    `json:"business_unit"`
	Location       string    `json:"location"`
	Status         Status    `json:"status"`
	StatusLabel    string    `json:"status_label"`
	SubmittedBy    string    `json:"submittedby"`
	SubmitterName  string    `json:"submitter_name"`
	RecordType     string    `json:"record_type"`
	PLCCode        string    `json:"plc_code"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// PaperworkDetail is the on-demand projection behind an expanded row:
// PLC annotation, current status and the record's history, fetched
// separately from the main page load.
type PaperworkDetail struct {
	ID           int            `json:"id"`
	Status       Status         `json:"status"`
	StatusLabel  string         `json:"status_label"`
	PLCCode      string         `json:"plc_code"`
	PLCUpdatedAt *time.Time     `json:"plc_updated_at,omitempty"`
	PLCUpdatedBy string         `json:"plc_updated_by,omitempty"`
	History      []HistoryEntry `json:"history"`
}
