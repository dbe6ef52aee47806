package therapists

import (
	"calmora-service/internal/app/contracts"
	"calmora-service/internal/app/models"
	"calmora-service/internal/pkg/constvars"
	"calmora-service/internal/pkg/dto/requests"
	"calmora-service/internal/pkg/dto/responses"
	"calmora-service/internal/pkg/exceptions"
	"calmora-service/internal/pkg/utils"
	"context"
	"sync"

	"go.uber.org/zap"
)

type therapistUsecase struct {
	TherapistRepository contracts.TherapistRepository
	Log                 *zap.Logger
}

var (
	therapistUsecaseInstance contracts.TherapistUsecase
	onceTherapistUsecase     sync.Once
)

func NewTherapistUsecase(therapistRepository contracts.TherapistRepository, logger *zap.Logger) contracts.TherapistUsecase {
	onceTherapistUsecase.Do(func() {
		instance := &therapistUsecase{
			TherapistRepository: therapistRepository,
			Log:                 logger,
		}
		therapistUsecaseInstance = instance
	})
	return therapistUsecaseInstance
}

func (uc *therapistUsecase) CreateTherapist(ctx context.Context, request *requests.CreateTherapist) (*responses.Therapist, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("therapistUsecase.CreateTherapist called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		uc.Log.Error("therapistUsecase.CreateTherapist validation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrInputValidation(err)
	}

	therapist := &models.Therapist{
		Name:  request.Name,
		Email: request.Email,
		Phone: request.Phone,
	}

	created, err := uc.TherapistRepository.Insert(ctx, therapist)
	if err != nil {
		uc.Log.Error("therapistUsecase.CreateTherapist error inserting therapist",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("therapistUsecase.CreateTherapist succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingTherapistIDKey, created.ID),
	)
	return responses.NewTherapist(created), nil
}

func (uc *therapistUsecase) FindAll(ctx context.Context) ([]responses.Therapist, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("therapistUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	therapists, err := uc.TherapistRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("therapistUsecase.FindAll error fetching therapists",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	return responses.NewTherapistList(therapists), nil
}

func (uc *therapistUsecase) FindTherapistByID(ctx context.Context, therapistID int64) (*responses.Therapist, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("therapistUsecase.FindTherapistByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingTherapistIDKey, therapistID),
	)

	therapist, err := uc.TherapistRepository.FindByID(ctx, therapistID)
	if err != nil {
		uc.Log.Error("therapistUsecase.FindTherapistByID error fetching therapist",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if therapist == nil {
		return nil, exceptions.ErrTherapistNotFound(nil)
	}

	return responses.NewTherapist(therapist), nil
}
