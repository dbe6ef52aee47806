package main

import (
	"calmora-service/internal/app/config"
	"calmora-service/internal/app/drivers/database"
	"context"
	"log"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

const migrationsDir = "migrations"

func main() {
	driverConfig := config.NewDriverConfig()

	pool := database.NewPostgresDB(driverConfig)
	defer pool.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("Failed to set goose dialect: %v", err)
	}

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	if err := goose.UpContext(context.Background(), db, migrationsDir); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	version, err := goose.GetDBVersionContext(context.Background(), db)
	if err != nil {
		log.Fatalf("Failed to read migration version: %v", err)
	}

	log.Printf("Migrations applied, database at version %d", version)
}
