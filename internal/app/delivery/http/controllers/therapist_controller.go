package controllers

import (
	"calmora-service/internal/app/contracts"
	"calmora-service/internal/pkg/constvars"
	"calmora-service/internal/pkg/dto/requests"
	"calmora-service/internal/pkg/exceptions"
	"calmora-service/internal/pkg/utils"
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type TherapistController struct {
	Log              *zap.Logger
	TherapistUsecase contracts.TherapistUsecase
}

var (
	therapistControllerInstance *TherapistController
	onceTherapistController     sync.Once
)

func NewTherapistController(logger *zap.Logger, therapistUsecase contracts.TherapistUsecase) *TherapistController {
	onceTherapistController.Do(func() {
		instance := &TherapistController{
			Log:              logger,
			TherapistUsecase: therapistUsecase,
		}
		therapistControllerInstance = instance
	})
	return therapistControllerInstance
}

func (ctrl *TherapistController) CreateTherapist(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("TherapistController.CreateTherapist called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.CreateTherapist)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		ctrl.Log.Error("TherapistController.CreateTherapist error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.TherapistUsecase.CreateTherapist(ctx, request)
	if err != nil {
		ctrl.Log.Error("TherapistController.CreateTherapist error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.TherapistCreatedSuccess, response)
}

func (ctrl *TherapistController) FindAll(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("TherapistController.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.TherapistUsecase.FindAll(ctx)
	if err != nil {
		ctrl.Log.Error("TherapistController.FindAll error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.TherapistListSuccess, response)
}

func (ctrl *TherapistController) FindTherapistByID(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("TherapistController.FindTherapistByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	therapistID, err := strconv.ParseInt(chi.URLParam(r, "therapist_id"), 10, 64)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, "therapist_id"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.TherapistUsecase.FindTherapistByID(ctx, therapistID)
	if err != nil {
		ctrl.Log.Error("TherapistController.FindTherapistByID error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.TherapistGetSuccess, response)
}
