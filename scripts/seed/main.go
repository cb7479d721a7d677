// Script to seed the database with sample profiles and a completed
// recommendation. Usage: go run scripts/seed/main.go
package main

import (
	"log"

	"github.com/wellplan/advisor-api/internal/config"
	"github.com/wellplan/advisor-api/internal/seed"
)

func main() {
	cfg := config.Load()

	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Run(db); err != nil {
		log.Fatalf("Failed to seed: %v", err)
	}

	log.Println("Seeding completed")
}
