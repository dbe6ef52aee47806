package routers

import (
	"calmora-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachTherapistRoutes(router chi.Router, therapistController *controllers.TherapistController, bookingController *controllers.BookingController) {
	router.Post("/", therapistController.CreateTherapist)
	router.Get("/", therapistController.FindAll)
	router.Get("/{therapist_id}", therapistController.FindTherapistByID)
	router.Get("/{therapist_id}/bookings", bookingController.FindBookingsByTherapistID)
}
