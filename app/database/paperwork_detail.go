package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Santhoshjk159/PMT-sub000/app/models"
)

// GetPaperworkByID loads one full record, hydrating every catalog column
// into the Fields map for the editor.
func GetPaperworkByID(db *sql.DB, id int) (*models.PaperworkRecord, error) {
	columns := models.Columns()
	selects := make([]string, len(columns))
	for i, col := range columns {
		selects[i] = "COALESCE(" + col + ", '')"
	}

	query := fmt.Sprintf(`SELECT id, submittedby, plc_updated_at, COALESCE(plc_updated_by, ''),
			  created_at, updated_at, %s
			  FROM paperworkdetails WHERE id = $1`, strings.Join(selects, ", "))

	record := &models.PaperworkRecord{Fields: make(map[string]string, len(columns))}
	values := make([]string, len(columns))
	dest := []interface{}{
		&record.ID, &record.SubmittedBy, &record.PLCUpdatedAt, &record.PLCUpdatedBy,
		&record.CreatedAt, &record.UpdatedAt,
	}
	for i := range values {
		dest = append(dest, &values[i])
	}

	if err := db.QueryRow(query, id).Scan(dest...); err != nil {
		return nil, err
	}

	for i, col := range columns {
		record.Fields[col] = values[i]
	}
	record.Status = models.Status(record.Fields["status"])
	record.PLCCode = record.Fields["plc_code"]
	return record, nil
}

// CanAccessRecord applies the row-level rule to a loaded record: full
// access roles pass, the submitter passes, and a team key passes when any
// collaboration column names it. A missing or mismatched key is simply
// "no access", never an error.
func CanAccessRecord(record *models.PaperworkRecord, caller models.Caller) bool {
	if caller.FullAccess() {
		return true
	}
	if strings.EqualFold(record.SubmittedBy, caller.Email) {
		return true
	}
	if caller.TeamKey == "" {
		return false
	}
	for _, col := range models.CollaborationColumns {
		if record.Fields[col] == caller.TeamKey {
			return true
		}
	}
	return false
}

// GetPaperworkDetail fetches the expanded-row projection: PLC annotation,
// current status and the record's history.
func GetPaperworkDetail(db *sql.DB, id int) (*models.PaperworkDetail, error) {
	detail := &models.PaperworkDetail{}
	query := `SELECT id, status, COALESCE(plc_code, ''), plc_updated_at, COALESCE(plc_updated_by, '')
			  FROM paperworkdetails WHERE id = $1`
	err := db.QueryRow(query, id).Scan(&detail.ID, &detail.Status, &detail.PLCCode,
		&detail.PLCUpdatedAt, &detail.PLCUpdatedBy)
	if err != nil {
		return nil, err
	}
	detail.StatusLabel = detail.Status.Label()

	history, err := GetRecordHistory(db, id)
	if err != nil {
		return nil, err
	}
	detail.History = history
	return detail, nil
}

// UpdatePLCCode writes the annotation triple and appends one history row,
// in one transaction.
func UpdatePLCCode(db *sql.DB, id int, plcCode string, caller models.Caller) error {
	record, err := GetPaperworkByID(db, id)
	if err != nil {
		return err
	}
	if record.PLCCode == plcCode {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now()
	_, err = tx.Exec(`UPDATE paperworkdetails
			  SET plc_code = $1, plc_updated_at = $2, plc_updated_by = $3, updated_at = $2
			  WHERE id = $4`, plcCode, now, caller.Email, id)
	if err != nil {
		return err
	}

	if err := insertHistory(tx, id, caller.Email, "PLC Code", record.PLCCode, plcCode); err != nil {
		return err
	}
	return tx.Commit()
}

// UpdateStatus applies a status-only transition: the status column plus
// one annotated history row, nothing else. Guards are about companion
// data, not graph legality: any status may follow any other, but
// hold/dropped need a reason and started needs a start date. The start
// date itself is only recorded in the annotation; the start_date column
// belongs to the editor's diff path.
func UpdateStatus(db *sql.DB, id int, newStatus models.Status, reason, startDate string, caller models.Caller) error {
	record, err := GetPaperworkByID(db, id)
	if err != nil {
		return err
	}
	if record.Status == newStatus {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`UPDATE paperworkdetails SET status = $1, updated_at = NOW() WHERE id = $2`,
		string(newStatus), id)
	if err != nil {
		return err
	}

	newValue := models.StatusHistoryValue(newStatus, reason, startDate)
	if err := insertHistory(tx, id, caller.Email, "Status", string(record.Status), newValue); err != nil {
		return err
	}
	return tx.Commit()
}

// DeletePaperwork removes one record. The record_history rows stay; the
// audit trail outlives the record.
func DeletePaperwork(db *sql.DB, id int) error {
	result, err := db.Exec(`DELETE FROM paperworkdetails WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// BulkDeletePaperwork deletes each id in turn, tolerating missing rows,
// and reports how many were actually removed.
func BulkDeletePaperwork(db *sql.DB, ids []int) (int, error) {
	deleted := 0
	for _, id := range ids {
		result, err := db.Exec(`DELETE FROM paperworkdetails WHERE id = $1`, id)
		if err != nil {
			return deleted, err
		}
		if affected, err := result.RowsAffected(); err == nil && affected > 0 {
			deleted++
		}
	}
	return deleted, nil
}
