package main

import (
	"fmt"
	"log"

	"github.com/Santhoshjk159/PMT-sub000/app/config"
)

// Connectivity smoke check: connects with the configured credentials and
// runs a couple of counts against the core tables.
func main() {
	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	var records int
	if err := db.QueryRow(`SELECT COUNT(*) FROM paperworkdetails`).Scan(&records); err != nil {
		log.Fatalf("paperworkdetails query failed: %v", err)
	}
	fmt.Printf("paperworkdetails: %d rows\n", records)

	var history int
	if err := db.QueryRow(`SELECT COUNT(*) FROM record_history`).Scan(&history); err != nil {
		log.Fatalf("record_history query failed: %v", err)
	}
	fmt.Printf("record_history: %d rows\n", history)

	var activeUsers int
	if err := db.QueryRow(`SELECT COUNT(*) FROM users WHERE status = 'active'`).Scan(&activeUsers); err != nil {
		log.Fatalf("users query failed: %v", err)
	}
	fmt.Printf("active users: %d\n", activeUsers)
}
