package responses

import (
	"calmora-service/internal/app/models"
	"time"
)

type Booking struct {
	ID          int64     `json:"id"`
	TherapistID int64     `json:"therapist_id"`
	ClientName  string    `json:"client_name"`
	ClientEmail string    `json:"client_email"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewBooking(model *models.Booking) *Booking {
	return &Booking{
		ID:          model.ID,
		TherapistID: model.TherapistID,
		ClientName:  model.ClientName,
		ClientEmail: model.ClientEmail,
		StartTime:   model.StartTime,
		EndTime:     model.EndTime,
		Status:      string(model.Status),
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

func NewBookingList(bookingModels []models.Booking) []Booking {
	bookings := make([]Booking, 0, len(bookingModels))
	for i := range bookingModels {
		bookings = append(bookings, *NewBooking(&bookingModels[i]))
	}
	return bookings
}
