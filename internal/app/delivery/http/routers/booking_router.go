package routers

import (
	"calmora-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachBookingRoutes(router chi.Router, bookingController *controllers.BookingController) {
	router.Post("/", bookingController.CreateBooking)
	router.Get("/{booking_id}", bookingController.FindBookingByID)
}
