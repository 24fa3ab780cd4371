package database

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/Santhoshjk159/PMT-sub000/app/models"
)

// DashboardStats summarizes the caller-visible records for the landing
// page.
type DashboardStats struct {
	TotalRecords   int                       `json:"total_records"`
	ByStatus       map[string]int            `json:"by_status"`
	ActiveUsers    int                       `json:"active_users"`
	RecentActivity []models.ActivityLogEntry `json:"recent_activity"`
}

// GetDashboardStats counts records within the caller's visibility scope,
// broken down by status, plus the active-user count.
func GetDashboardStats(db *sql.DB, caller models.Caller) (*DashboardStats, error) {
	stats := &DashboardStats{ByStatus: make(map[string]int)}

	var conditions []string
	var args []interface{}
	conditions, args, _ = visibilityConditions(caller, conditions, args, 1)
	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	query := fmt.Sprintf(`SELECT p.status, COUNT(p.id) FROM paperworkdetails p%s GROUP BY p.status`, where)
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		stats.ByStatus[status] = count
		stats.TotalRecords += count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := db.QueryRow(`SELECT COUNT(*) FROM users WHERE status = 'active'`).Scan(&stats.ActiveUsers); err != nil {
		return nil, err
	}

	if caller.FullAccess() {
		activity, err := GetRecentActivity(db, 10)
		if err != nil {
			return nil, err
		}
		stats.RecentActivity = activity
	}
	return stats, nil
}
