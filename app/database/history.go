package database

import (
	"database/sql"
	"time"

	"github.com/Santhoshjk159/PMT-sub000/app/models"
)

// insertHistory appends one audit row inside the caller's transaction.
// History rows are append-only; nothing in the application updates or
// deletes them.
func insertHistory(tx *sql.Tx, recordID int, modifiedBy, details, oldValue, newValue string) error {
	_, err := tx.Exec(`INSERT INTO record_history (record_id, modified_by, modified_date, modification_details, old_value, new_value)
			  VALUES ($1, $2, $3, $4, $5, $6)`,
		recordID, modifiedBy, time.Now(), details, oldValue, newValue)
	return err
}

// GetRecordHistory returns a record's audit trail, newest first.
func GetRecordHistory(db *sql.DB, recordID int) ([]models.HistoryEntry, error) {
	query := `SELECT id, record_id, modified_by, modified_date, modification_details,
			  COALESCE(old_value, ''), COALESCE(new_value, '')
			  FROM record_history WHERE record_id = $1
			  ORDER BY modified_date DESC, id DESC`

	rows, err := db.Query(query, recordID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.HistoryEntry
	for rows.Next() {
		var e models.HistoryEntry
		if err := rows.Scan(&e.ID, &e.RecordID, &e.ModifiedBy, &e.ModifiedDate,
			&e.ModificationDetails, &e.OldValue, &e.NewValue); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
