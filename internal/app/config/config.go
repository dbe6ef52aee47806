package config

import (
	"calmora-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		PostgresDB: PostgresDB{
			Port:     utils.GetEnvString("POSTGRES_PORT", "5432"),
			Host:     utils.GetEnvString("POSTGRES_HOST", "localhost"),
			DbName:   utils.GetEnvString("POSTGRES_DB_NAME", "calmora"),
			Username: utils.GetEnvString("POSTGRES_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("POSTGRES_PASSWORD", "defaultPassword"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
		},
		Logger: Logger{
			Level: utils.GetEnvString("LOGGER_LEVEL", "debug"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:             utils.GetEnvString("APP_ENV", "development"),
			Port:            utils.GetEnvString("APP_PORT", ":8080"),
			MaxRequests:     utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeout: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
		},
		Queue: Queue{
			Name:        utils.GetEnvString("APP_RABBITMQ_NOTIFICATION_QUEUE", "booking-notifications"),
			ConsumerTag: utils.GetEnvString("APP_RABBITMQ_CONSUMER_TAG", "calmora-notification-consumer"),
			Prefetch:    utils.GetEnvInt("APP_RABBITMQ_PREFETCH", 10),
		},
	}
}
