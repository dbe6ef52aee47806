package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Therapist messages
	TherapistCreatedSuccess = "therapist created successfully"
	TherapistGetSuccess     = "get therapist successfully"
	TherapistListSuccess    = "get therapists successfully"

	// Booking messages
	BookingCreatedSuccess = "booking created successfully"
	BookingGetSuccess     = "get booking successfully"
	BookingListSuccess    = "get bookings successfully"
)
