package bookings

import "time"

// ValidateTimeRange reports whether a booking window is well-formed:
// the end must be strictly after the start, equal times are invalid.
// Therapist existence and calendar overlaps are separate concerns;
// overlap checking is a known gap and deliberately not performed here.
func ValidateTimeRange(startTime, endTime time.Time) bool {
	return endTime.After(startTime)
}
