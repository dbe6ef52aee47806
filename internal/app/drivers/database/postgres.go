package database

import (
	"calmora-service/internal/app/config"
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

func NewPostgresDB(driverConfig *config.DriverConfig) *pgxpool.Pool {
	connectionString := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		driverConfig.PostgresDB.Username,
		driverConfig.PostgresDB.Password,
		driverConfig.PostgresDB.Host,
		driverConfig.PostgresDB.Port,
		driverConfig.PostgresDB.DbName,
	)

	pool, err := pgxpool.New(context.Background(), connectionString)
	if err != nil {
		log.Fatalf("Failed to open postgres connection pool: %s", err.Error())
	}

	if err := pool.Ping(context.Background()); err != nil {
		log.Fatalf("Failed to connect to postgres database: %s", err.Error())
	}

	log.Println("Successfully connected to postgres database")

	return pool
}
