package contracts

import (
	"calmora-service/internal/app/models"
	"calmora-service/internal/pkg/dto/requests"
	"calmora-service/internal/pkg/dto/responses"
	"context"
)

type TherapistUsecase interface {
	CreateTherapist(ctx context.Context, request *requests.CreateTherapist) (*responses.Therapist, error)
	FindAll(ctx context.Context) ([]responses.Therapist, error)
	FindTherapistByID(ctx context.Context, therapistID int64) (*responses.Therapist, error)
}

type TherapistRepository interface {
	Insert(ctx context.Context, therapist *models.Therapist) (*models.Therapist, error)
	FindByID(ctx context.Context, therapistID int64) (*models.Therapist, error)
	FindAll(ctx context.Context) ([]models.Therapist, error)
}
