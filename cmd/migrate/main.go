package main

import (
	"database/sql"
	"log"
	"os"

	"github.com/Santhoshjk159/PMT-sub000/app/config"
	"github.com/Santhoshjk159/PMT-sub000/app/database"
)

// Applies the built-in migrations, then any SQL files passed on the
// command line, against the configured database.
func main() {
	log.Println("Starting migration...")

	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Migrations failed: ", err)
	}

	for _, path := range os.Args[1:] {
		executeSQLFile(db, path)
	}

	log.Println("Migration completed successfully!")
}

func executeSQLFile(db *sql.DB, filePath string) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("Skipping %s: %v", filePath, err)
		return
	}

	log.Printf("Executing %s...", filePath)
	if _, err := db.Exec(string(content)); err != nil {
		log.Printf("Error executing %s: %v", filePath, err)
	} else {
		log.Printf("Successfully executed %s", filePath)
	}
}
