package events

import (
	"calmora-service/internal/pkg/constvars"
	"encoding/json"
	"fmt"
	"time"
)

// BookingCreated is the wire payload published once per committed booking.
// Delivery is at-least-once, so consumers must tolerate duplicates.
type BookingCreated struct {
	BookingID   int64  `json:"booking_id"`
	TherapistID int64  `json:"therapist_id"`
	ClientEmail string `json:"client_email"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	EventType   string `json:"event_type"`
}

func NewBookingCreated(bookingID, therapistID int64, clientEmail string, startTime, endTime time.Time) BookingCreated {
	return BookingCreated{
		BookingID:   bookingID,
		TherapistID: therapistID,
		ClientEmail: clientEmail,
		StartTime:   startTime.Format(time.RFC3339),
		EndTime:     endTime.Format(time.RFC3339),
		EventType:   constvars.EventTypeBookingCreated,
	}
}

func UnmarshalBookingCreated(body []byte) (BookingCreated, error) {
	var event BookingCreated
	if err := json.Unmarshal(body, &event); err != nil {
		return BookingCreated{}, fmt.Errorf("decode booking_created payload: %w", err)
	}
	return event, nil
}
