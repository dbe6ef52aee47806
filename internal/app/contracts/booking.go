package contracts

import (
	"calmora-service/internal/app/models"
	"calmora-service/internal/pkg/dto/requests"
	"calmora-service/internal/pkg/dto/responses"
	"context"
)

type BookingUsecase interface {
	CreateBooking(ctx context.Context, request *requests.CreateBooking) (*responses.Booking, error)
	FindBookingByID(ctx context.Context, bookingID int64) (*responses.Booking, error)
	FindBookingsByTherapistID(ctx context.Context, therapistID int64) ([]responses.Booking, error)
}

type BookingRepository interface {
	Insert(ctx context.Context, booking *models.Booking) (*models.Booking, error)
	FindByID(ctx context.Context, bookingID int64) (*models.Booking, error)
	FindByTherapistID(ctx context.Context, therapistID int64) ([]models.Booking, error)
}
