package database

import (
	"database/sql"
	"time"

	"github.com/Santhoshjk159/PMT-sub000/app/models"
	"github.com/google/uuid"
)

// LogActivity appends one row to the activity_log audit trail. Failures
// are returned for the caller to log; a failed audit insert never blocks
// the action it describes.
func LogActivity(db *sql.DB, actorID, action, entityType, entityID, details string) error {
	_, err := db.Exec(`INSERT INTO activity_log (id, user_id, action, entity_type, entity_id, details, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		uuid.New().String(), actorID, action, entityType, entityID, details, time.Now())
	return err
}

// GetRecentActivity lists the latest audit rows for the dashboard.
func GetRecentActivity(db *sql.DB, limit int) ([]models.ActivityLogEntry, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	query := `SELECT id, user_id, action, entity_type, entity_id, COALESCE(details, ''), created_at
			  FROM activity_log ORDER BY created_at DESC LIMIT $1`

	rows, err := db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.ActivityLogEntry
	for rows.Next() {
		var e models.ActivityLogEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Action, &e.EntityType, &e.EntityID, &e.Details, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// PurgeOldActivity removes audit rows older than the retention window.
// Called by the background sweeper, never from a request path.
func PurgeOldActivity(db *sql.DB, olderThan time.Duration) (int64, error) {
	result, err := db.Exec(`DELETE FROM activity_log WHERE created_at < $1`, time.Now().Add(-olderThan))
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
