package requests

import "time"

// CreateBooking deliberately carries no status field: status is
// server-controlled and always starts as pending.
type CreateBooking struct {
	TherapistID int64     `json:"therapist_id" validate:"required,gt=0"`
	ClientName  string    `json:"client_name" validate:"required,max=100"`
	ClientEmail string    `json:"client_email" validate:"required,email,max=100"`
	StartTime   time.Time `json:"start_time" validate:"required"`
	EndTime     time.Time `json:"end_time" validate:"required"`
}
