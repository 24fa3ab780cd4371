package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Santhoshjk159/PMT-sub000/app/models"
)

// ApplyRecordUpdate persists the outcome of an edit diff: one UPDATE
// covering exactly the changed columns plus one history row per change,
// committed together or not at all. A changed plc_code also stamps the
// annotation's updated-at/updated-by columns. Callers pass a non-empty
// change list; an unchanged submission never reaches the database.
func ApplyRecordUpdate(db *sql.DB, id int, caller models.Caller, changes []models.FieldChange) error {
	if len(changes) == 0 {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now()
	var sets []string
	var args []interface{}
	argIndex := 1

	for _, change := range changes {
		sets = append(sets, fmt.Sprintf("%s = $%d", change.Column, argIndex))
		args = append(args, change.NewValue)
		argIndex++

		if change.Column == "plc_code" {
			sets = append(sets, fmt.Sprintf("plc_updated_at = $%d", argIndex))
			args = append(args, now)
			argIndex++
			sets = append(sets, fmt.Sprintf("plc_updated_by = $%d", argIndex))
			args = append(args, caller.Email)
			argIndex++
		}
	}

	sets = append(sets, fmt.Sprintf("updated_at = $%d", argIndex))
	args = append(args, now)
	argIndex++

	args = append(args, id)
	query := fmt.Sprintf("UPDATE paperworkdetails SET %s WHERE id = $%d",
		strings.Join(sets, ", "), argIndex)

	result, err := tx.Exec(query, args...)
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

	for _, change := range changes {
		if err := insertHistory(tx, id, caller.Email, change.Label, change.OldValue, change.HistoryValue()); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// CreatePaperwork inserts a new record owned by the caller and appends
// its creation history row. values is column -> value over the field
// catalog; absent columns are stored empty.
func CreatePaperwork(db *sql.DB, caller models.Caller, values map[string]string) (int, error) {
	tx, err := db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	columns := models.Columns()
	names := make([]string, 0, len(columns)+1)
	placeholders := make([]string, 0, len(columns)+1)
	args := make([]interface{}, 0, len(columns)+1)

	statusValue := string(models.StatusCreated)
	for i, col := range columns {
		value := values[col]
		if col == "status" {
			if value == "" {
				value = statusValue
			}
			statusValue = value
		}
		names = append(names, col)
		placeholders = append(placeholders, fmt.Sprintf("$%d", i+1))
		args = append(args, value)
	}
	names = append(names, "submittedby")
	placeholders = append(placeholders, fmt.Sprintf("$%d", len(args)+1))
	args = append(args, caller.Email)

	query := fmt.Sprintf(`INSERT INTO paperworkdetails (%s, created_at, updated_at)
			  VALUES (%s, NOW(), NOW()) RETURNING id`,
		strings.Join(names, ", "), strings.Join(placeholders, ", "))

	var id int
	if err := tx.QueryRow(query, args...).Scan(&id); err != nil {
		return 0, err
	}

	if err := insertHistory(tx, id, caller.Email, "Record Created", "", statusValue); err != nil {
		return 0, err
	}
	return id, tx.Commit()
}
