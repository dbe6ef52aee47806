package queries

const (
	InsertBooking = `
		INSERT INTO bookings (therapist_id, client_name, client_email, start_time, end_time, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	GetBookingByID = `
		SELECT id, therapist_id, client_name, client_email, start_time, end_time, status, created_at, updated_at
		FROM bookings
		WHERE id = $1
	`

	GetBookingsByTherapistID = `
		SELECT id, therapist_id, client_name, client_email, start_time, end_time, status, created_at, updated_at
		FROM bookings
		WHERE therapist_id = $1
		ORDER BY start_time ASC
	`
)
