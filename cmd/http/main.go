package main

import (
	"calmora-service/internal/app/config"
	"calmora-service/internal/app/delivery/http/controllers"
	"calmora-service/internal/app/delivery/http/middlewares"
	"calmora-service/internal/app/delivery/http/routers"
	"calmora-service/internal/app/drivers/database"
	"calmora-service/internal/app/drivers/logger"
	"calmora-service/internal/app/drivers/messaging"
	"calmora-service/internal/app/services/core/bookings"
	"calmora-service/internal/app/services/core/notifications"
	"calmora-service/internal/app/services/core/therapists"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	pool := database.NewPostgresDB(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		Pool:           pool,
		RabbitMQ:       rabbitMQ,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	bootstrapTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error while closing drivers: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapTheApp(bootstrap *config.Bootstrap) {
	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Therapist
	therapistRepository := therapists.NewTherapistPostgresRepository(bootstrap.Pool, bootstrap.Logger)
	therapistUsecase := therapists.NewTherapistUsecase(therapistRepository, bootstrap.Logger)
	therapistController := controllers.NewTherapistController(bootstrap.Logger, therapistUsecase)

	// Notification side channel
	eventPublisher, err := notifications.NewRabbitMQBookingEventPublisher(
		bootstrap.RabbitMQ,
		bootstrap.InternalConfig.Queue.Name,
		bootstrap.Logger,
	)
	if err != nil {
		log.Fatalf("Failed to initialize booking event publisher: %v", err)
	}
	dispatchObserver := notifications.NewZapDispatchObserver(bootstrap.Logger)

	// Booking
	bookingRepository := bookings.NewBookingPostgresRepository(bootstrap.Pool, bootstrap.Logger)
	bookingUsecase := bookings.NewBookingUsecase(
		bookingRepository,
		therapistRepository,
		eventPublisher,
		dispatchObserver,
		bootstrap.Logger,
	)
	bookingController := controllers.NewBookingController(bootstrap.Logger, bookingUsecase)

	// Health
	healthController := controllers.NewHealthController()

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		therapistController,
		bookingController,
		healthController,
	)
}
