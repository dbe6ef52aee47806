package config

import (
	"context"
	"log"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	Pool           *pgxpool.Pool
	RabbitMQ       *amqp091.Connection
	Logger         *zap.Logger
	DriverConfig   *DriverConfig
	InternalConfig *InternalConfig
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.RabbitMQ != nil {
		if err := b.RabbitMQ.Close(); err != nil {
			return err
		}
		log.Println("Successfully closing RabbitMQ connection")
	}

	if b.Pool != nil {
		b.Pool.Close()
		log.Println("Successfully closing postgres pool")
	}

	if b.Logger != nil {
		b.Logger.Sync()
	}

	return nil
}
