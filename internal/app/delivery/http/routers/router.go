package routers

import (
	"calmora-service/internal/app/config"
	"calmora-service/internal/app/delivery/http/controllers"
	"calmora-service/internal/app/delivery/http/middlewares"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	therapistController *controllers.TherapistController,
	bookingController *controllers.BookingController,
	healthController *controllers.HealthController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestID)
	router.Use(middlewares.Logging)

	router.Get("/health", healthController.Check)

	router.Route("/therapists", func(r chi.Router) {
		attachTherapistRoutes(r, therapistController, bookingController)
	})

	router.Route("/bookings", func(r chi.Router) {
		attachBookingRoutes(r, bookingController)
	})
}
