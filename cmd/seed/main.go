// Command seed fills the configured database with demo data.
package main

import (
	"context"
	"log"

	"parlor/internal/config"
	"parlor/internal/database"
	"parlor/internal/seed"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Run(context.Background(), db, seed.DefaultOptions()); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Printf("Seeded demo data; every account uses password %q", seed.DemoPassword)
}
