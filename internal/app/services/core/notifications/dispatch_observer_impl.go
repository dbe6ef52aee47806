package notifications

import (
	"calmora-service/internal/app/contracts"
	"calmora-service/internal/pkg/constvars"
	"calmora-service/internal/pkg/events"
	"context"

	"go.uber.org/zap"
)

// zapDispatchObserver records enqueue outcomes on the service log. A dropped
// notification is loud but deliberately does not fail the booking that
// triggered it.
type zapDispatchObserver struct {
	Log *zap.Logger
}

func NewZapDispatchObserver(logger *zap.Logger) contracts.DispatchObserver {
	return &zapDispatchObserver{Log: logger}
}

func (o *zapDispatchObserver) NotificationEnqueued(ctx context.Context, event events.BookingCreated) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	o.Log.Info("notification event enqueued",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingBookingIDKey, event.BookingID),
		zap.String(constvars.LoggingEventTypeKey, event.EventType),
	)
}

func (o *zapDispatchObserver) NotificationDropped(ctx context.Context, event events.BookingCreated, err error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	o.Log.Error("notification event dropped, booking unaffected",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingBookingIDKey, event.BookingID),
		zap.String(constvars.LoggingEventTypeKey, event.EventType),
		zap.Error(err),
	)
}
