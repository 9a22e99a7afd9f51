// Command migrate applies the schema and seeds reference data, then exits.
package main

import (
	"log"

	"github.com/AmrIbrahim41/tfg-backend/config"
	"github.com/AmrIbrahim41/tfg-backend/internal/database"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("Migration complete")
}
