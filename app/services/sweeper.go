package services

import (
	"database/sql"
	"log"
	"time"

	"github.com/Santhoshjk159/PMT-sub000/app/database"
)

// activityRetention is how long activity_log rows are kept before the
// sweeper removes them. Record history is never touched: it is the
// business audit trail and outlives everything.
const activityRetention = 365 * 24 * time.Hour

// StartSweeper starts the background maintenance loop.
func StartSweeper(db *sql.DB) {
	go func() {
		log.Println("Sweeper started...")
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			purged, err := database.PurgeOldActivity(db, activityRetention)
			if err != nil {
				log.Printf("Error purging old activity log rows: %v", err)
				continue
			}
			if purged > 0 {
				log.Printf("Purged %d activity log rows older than retention", purged)
			}
		}
	}()
}
