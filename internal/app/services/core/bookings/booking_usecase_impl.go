package bookings

import (
	"calmora-service/internal/app/contracts"
	"calmora-service/internal/app/models"
	"calmora-service/internal/pkg/constvars"
	"calmora-service/internal/pkg/dto/requests"
	"calmora-service/internal/pkg/dto/responses"
	"calmora-service/internal/pkg/events"
	"calmora-service/internal/pkg/exceptions"
	"calmora-service/internal/pkg/utils"
	"context"
	"sync"

	"go.uber.org/zap"
)

type bookingUsecase struct {
	BookingRepository   contracts.BookingRepository
	TherapistRepository contracts.TherapistRepository
	EventPublisher      contracts.BookingEventPublisher
	DispatchObserver    contracts.DispatchObserver
	Log                 *zap.Logger
}

var (
	bookingUsecaseInstance contracts.BookingUsecase
	onceBookingUsecase     sync.Once
)

func NewBookingUsecase(
	bookingRepository contracts.BookingRepository,
	therapistRepository contracts.TherapistRepository,
	eventPublisher contracts.BookingEventPublisher,
	dispatchObserver contracts.DispatchObserver,
	logger *zap.Logger,
) contracts.BookingUsecase {
	onceBookingUsecase.Do(func() {
		instance := &bookingUsecase{
			BookingRepository:   bookingRepository,
			TherapistRepository: therapistRepository,
			EventPublisher:      eventPublisher,
			DispatchObserver:    dispatchObserver,
			Log:                 logger,
		}
		bookingUsecaseInstance = instance
	})
	return bookingUsecaseInstance
}

// CreateBooking runs the booking workflow: validate the time range, resolve
// the therapist, commit the booking as pending, then enqueue the
// booking_created event. The enqueue is best-effort: its failure is handed
// to the DispatchObserver and never fails the committed booking.
func (uc *bookingUsecase) CreateBooking(ctx context.Context, request *requests.CreateBooking) (*responses.Booking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.CreateBooking called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingTherapistIDKey, request.TherapistID),
	)

	if err := utils.ValidateStruct(request); err != nil {
		uc.Log.Error("bookingUsecase.CreateBooking validation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrInputValidation(err)
	}

	if !ValidateTimeRange(request.StartTime, request.EndTime) {
		uc.Log.Error("bookingUsecase.CreateBooking invalid time range",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Time("start_time", request.StartTime),
			zap.Time("end_time", request.EndTime),
		)
		return nil, exceptions.ErrInvalidTimeRange(nil)
	}

	therapist, err := uc.TherapistRepository.FindByID(ctx, request.TherapistID)
	if err != nil {
		uc.Log.Error("bookingUsecase.CreateBooking error resolving therapist",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if therapist == nil {
		uc.Log.Error("bookingUsecase.CreateBooking therapist not found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingTherapistIDKey, request.TherapistID),
		)
		return nil, exceptions.ErrTherapistNotFound(nil)
	}

	// Status is server-controlled: always pending at creation.
	booking := &models.Booking{
		TherapistID: request.TherapistID,
		ClientName:  request.ClientName,
		ClientEmail: request.ClientEmail,
		StartTime:   request.StartTime,
		EndTime:     request.EndTime,
		Status:      models.BookingStatusPending,
	}

	created, err := uc.BookingRepository.Insert(ctx, booking)
	if err != nil {
		uc.Log.Error("bookingUsecase.CreateBooking error inserting booking",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	event := events.NewBookingCreated(
		created.ID,
		created.TherapistID,
		created.ClientEmail,
		created.StartTime,
		created.EndTime,
	)
	if err := uc.EventPublisher.PublishBookingCreated(ctx, event); err != nil {
		uc.DispatchObserver.NotificationDropped(ctx, event, err)
	} else {
		uc.DispatchObserver.NotificationEnqueued(ctx, event)
	}

	uc.Log.Info("bookingUsecase.CreateBooking succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingBookingIDKey, created.ID),
	)
	return responses.NewBooking(created), nil
}

func (uc *bookingUsecase) FindBookingByID(ctx context.Context, bookingID int64) (*responses.Booking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.FindBookingByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingBookingIDKey, bookingID),
	)

	booking, err := uc.BookingRepository.FindByID(ctx, bookingID)
	if err != nil {
		uc.Log.Error("bookingUsecase.FindBookingByID error fetching booking",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if booking == nil {
		return nil, exceptions.ErrBookingNotFound(nil)
	}

	return responses.NewBooking(booking), nil
}

func (uc *bookingUsecase) FindBookingsByTherapistID(ctx context.Context, therapistID int64) ([]responses.Booking, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.FindBookingsByTherapistID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingTherapistIDKey, therapistID),
	)

	bookings, err := uc.BookingRepository.FindByTherapistID(ctx, therapistID)
	if err != nil {
		uc.Log.Error("bookingUsecase.FindBookingsByTherapistID error fetching bookings",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	return responses.NewBookingList(bookings), nil
}
