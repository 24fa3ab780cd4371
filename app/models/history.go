package models

import "time"

// HistoryEntry is one row of the append-only record_history table: one
// entry per changed field per successful edit. Entries are never updated
// or deleted.
type HistoryEntry struct {
	ID                  int       `json:"id"`
	RecordID            int       `json:"record_id"`
	ModifiedBy          string    `json:"modified_by"`
	ModifiedDate        time.Time `json:"modified_date"`
	ModificationDetails string    `json:"modification_details"`
	OldValue            string    `json:"old_value"`
	NewValue            string    `json:"new_value"`
}

// FieldChange is an in-memory change descriptor collected while diffing an
// edit submission. It drives the column update, the history insert and
// the notification payload. HistoryNew, when set, overrides NewValue in
// the history row only: a status change stores the bare status in its
// column but records the companion reason or start date in its audit
// entry.
type FieldChange struct {
	Column     string `json:"-"`
	Label      string `json:"label"`
	OldValue   string `json:"old_value"`
	NewValue   string `json:"new_value"`
	HistoryNew string `json:"-"`
}

// HistoryValue is the value recorded in the history row.
func (fc FieldChange) HistoryValue() string {
	if fc.HistoryNew != "" {
		return fc.HistoryNew
	}
	return fc.NewValue
}
