package responses

import (
	"calmora-service/internal/app/models"
	"time"
)

type Therapist struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

func NewTherapist(model *models.Therapist) *Therapist {
	return &Therapist{
		ID:        model.ID,
		Name:      model.Name,
		Email:     model.Email,
		Phone:     model.Phone,
		CreatedAt: model.CreatedAt,
	}
}

func NewTherapistList(therapistModels []models.Therapist) []Therapist {
	therapists := make([]Therapist, 0, len(therapistModels))
	for i := range therapistModels {
		therapists = append(therapists, *NewTherapist(&therapistModels[i]))
	}
	return therapists
}
