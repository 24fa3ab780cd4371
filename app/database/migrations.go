package database

import (
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/Santhoshjk159/PMT-sub000/app/models"
)

// paperworkTextColumns lists every business column of paperworkdetails;
// the editor's field catalog is the single source of truth for them.
func paperworkTextColumns() []string {
	return models.Columns()
}

// RunMigrations creates the schema when absent and applies incremental
// column additions. Everything here is idempotent; the server runs it on
// every start.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	steps := []func(*sql.DB) error{
		createUsersTable,
		createPaperworkTable,
		createRecordHistoryTable,
		createActivityLogTable,
		addPLCColumns,
		addForcePasswordChangeColumn,
	}
	for _, step := range steps {
		if err := step(db); err != nil {
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func createUsersTable(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			password TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'User',
			userwithempid TEXT DEFAULT '',
			department TEXT DEFAULT '',
			position TEXT DEFAULT '',
			status TEXT NOT NULL DEFAULT 'active',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			deleted_at TIMESTAMPTZ
		);
		CREATE UNIQUE INDEX IF NOT EXISTS users_email_live_idx
			ON users (LOWER(email)) WHERE status != 'deleted';
	`
	_, err := db.Exec(query)
	return err
}

func createPaperworkTable(db *sql.DB) error {
	// The business columns all ride as TEXT; the editor's field catalog
	// is the authoritative list.
	var cols []string
	for _, col := range paperworkTextColumns() {
		if col == "status" {
			cols = append(cols, fmt.Sprintf("%s TEXT NOT NULL DEFAULT '%s'", col, models.StatusCreated))
			continue
		}
		cols = append(cols, fmt.Sprintf("%s TEXT DEFAULT ''", col))
	}

	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS paperworkdetails (
			id SERIAL PRIMARY KEY,
			%s,
			submittedby TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS paperworkdetails_status_idx ON paperworkdetails (status);
		CREATE INDEX IF NOT EXISTS paperworkdetails_submittedby_idx ON paperworkdetails (submittedby);
	`, strings.Join(cols, ",\n\t\t\t"))
	_, err := db.Exec(query)
	return err
}

func createRecordHistoryTable(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS record_history (
			id SERIAL PRIMARY KEY,
			record_id INTEGER NOT NULL,
			modified_by TEXT NOT NULL,
			modified_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			modification_details TEXT NOT NULL,
			old_value TEXT,
			new_value TEXT
		);
		CREATE INDEX IF NOT EXISTS record_history_record_idx ON record_history (record_id, modified_date DESC);
	`
	_, err := db.Exec(query)
	return err
}

func createActivityLogTable(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS activity_log (
			id UUID PRIMARY KEY,
			user_id TEXT NOT NULL,
			action TEXT NOT NULL,
			entity_type TEXT NOT NULL,
			entity_id TEXT NOT NULL,
			details TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS activity_log_created_idx ON activity_log (created_at);
	`
	_, err := db.Exec(query)
	return err
}

func addPLCColumns(db *sql.DB) error {
	query := `
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1
				FROM information_schema.columns
				WHERE table_name = 'paperworkdetails'
				AND column_name = 'plc_updated_at'
			) THEN
				ALTER TABLE paperworkdetails ADD COLUMN plc_updated_at TIMESTAMPTZ;
				ALTER TABLE paperworkdetails ADD COLUMN plc_updated_by TEXT DEFAULT '';
				RAISE NOTICE 'Added PLC annotation columns to paperworkdetails';
			END IF;
		END $$;
	`
	if _, err := db.Exec(query); err != nil {
		log.Printf("Failed to run migration for PLC columns: %v", err)
		return err
	}
	return nil
}

func addForcePasswordChangeColumn(db *sql.DB) error {
	query := `
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1
				FROM information_schema.columns
				WHERE table_name = 'users'
				AND column_name = 'force_password_change'
			) THEN
				ALTER TABLE users ADD COLUMN force_password_change BOOLEAN NOT NULL DEFAULT false;
				RAISE NOTICE 'Added force_password_change column to users';
			END IF;
		END $$;
	`
	if _, err := db.Exec(query); err != nil {
		log.Printf("Failed to run migration for force_password_change column: %v", err)
		return err
	}
	return nil
}
