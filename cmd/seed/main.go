// Command seed fills an empty database with demo agents and records.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/daxterlabs/daxter-backend/internal/db"
	"github.com/daxterlabs/daxter-backend/internal/logger"
	"github.com/daxterlabs/daxter-backend/internal/seed"
	"github.com/daxterlabs/daxter-backend/internal/utils"
)

func main() {
	_ = godotenv.Load()

	log, err := logger.New(os.Getenv("LOG_MODE"))
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	pg, err := db.NewPostgresService(log)
	if err != nil {
		log.Fatal("Postgres init failed", "error", err)
	}
	if err := pg.AutoMigrateAll(); err != nil {
		log.Fatal("Postgres auto migration failed", "error", err)
	}

	agents := utils.GetEnvAsInt("SEED_AGENTS", 3, log)
	perAgent := utils.GetEnvAsInt("SEED_ENTRIES_PER_AGENT", 10, log)
	if err := seed.Run(context.Background(), pg.DB(), log, agents, perAgent); err != nil {
		log.Fatal("Seeding failed", "error", err)
	}
	log.Info("Seeding complete")
}
