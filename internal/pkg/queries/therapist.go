package queries

const (
	InsertTherapist = `
		INSERT INTO therapists (name, email, phone)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	GetTherapistByID = `
		SELECT id, name, email, phone, created_at
		FROM therapists
		WHERE id = $1
	`

	GetAllTherapists = `
		SELECT id, name, email, phone, created_at
		FROM therapists
		ORDER BY id ASC
	`
)
