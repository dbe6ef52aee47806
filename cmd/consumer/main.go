package main

import (
	"calmora-service/internal/app/config"
	"calmora-service/internal/app/drivers/logger"
	"calmora-service/internal/app/drivers/messaging"
	"calmora-service/internal/app/services/core/notifications"
	"context"
	"log"
	"os/signal"
	"syscall"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	defer rabbitMQ.Close()

	notifier := notifications.NewLogNotifier(zapLogger)
	consumerService := notifications.NewNotificationConsumerService(notifier, internalConfig, zapLogger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := consumerService.Run(ctx, rabbitMQ); err != nil {
		log.Fatalf("Notification consumer stopped with error: %v", err)
	}

	log.Println("Notification consumer exiting")
}
