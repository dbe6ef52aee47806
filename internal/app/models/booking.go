package models

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking is created in pending state. No endpoint mutates status within
// this service; confirmed/cancelled exist for forward compatibility only.
type Booking struct {
	ID          int64         `json:"id"`
	TherapistID int64         `json:"therapist_id"`
	ClientName  string        `json:"client_name"`
	ClientEmail string        `json:"client_email"`
	StartTime   time.Time     `json:"start_time"`
	EndTime     time.Time     `json:"end_time"`
	Status      BookingStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}
