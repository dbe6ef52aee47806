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

type BookingController struct {
	Log            *zap.Logger
	BookingUsecase contracts.BookingUsecase
}

var (
	bookingControllerInstance *BookingController
	onceBookingController     sync.Once
)

func NewBookingController(logger *zap.Logger, bookingUsecase contracts.BookingUsecase) *BookingController {
	onceBookingController.Do(func() {
		instance := &BookingController{
			Log:            logger,
			BookingUsecase: bookingUsecase,
		}
		bookingControllerInstance = instance
	})
	return bookingControllerInstance
}

func (ctrl *BookingController) CreateBooking(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("BookingController.CreateBooking called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.CreateBooking)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		ctrl.Log.Error("BookingController.CreateBooking error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.BookingUsecase.CreateBooking(ctx, request)
	if err != nil {
		ctrl.Log.Error("BookingController.CreateBooking error from usecase",
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

	ctrl.Log.Info("BookingController.CreateBooking succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingBookingIDKey, response.ID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BookingCreatedSuccess, response)
}

func (ctrl *BookingController) FindBookingByID(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("BookingController.FindBookingByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	bookingID, err := strconv.ParseInt(chi.URLParam(r, "booking_id"), 10, 64)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, "booking_id"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.BookingUsecase.FindBookingByID(ctx, bookingID)
	if err != nil {
		ctrl.Log.Error("BookingController.FindBookingByID error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BookingGetSuccess, response)
}

func (ctrl *BookingController) FindBookingsByTherapistID(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("BookingController.FindBookingsByTherapistID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	therapistID, err := strconv.ParseInt(chi.URLParam(r, "therapist_id"), 10, 64)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, "therapist_id"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.BookingUsecase.FindBookingsByTherapistID(ctx, therapistID)
	if err != nil {
		ctrl.Log.Error("BookingController.FindBookingsByTherapistID error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.BookingListSuccess, response)
}
