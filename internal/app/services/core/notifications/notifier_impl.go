package notifications

import (
	"calmora-service/internal/app/contracts"
	"calmora-service/internal/pkg/constvars"
	"calmora-service/internal/pkg/events"
	"context"

	"go.uber.org/zap"
)

// logNotifier stands in for a real email/SMS integration: it renders the
// notification to the log. Swapping in an SMTP or gateway-backed Notifier
// requires no change to the consumer.
type logNotifier struct {
	Log *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) contracts.Notifier {
	return &logNotifier{Log: logger}
}

func (n *logNotifier) Notify(ctx context.Context, event events.BookingCreated) error {
	n.Log.Info("sending booking notification",
		zap.Int64(constvars.LoggingBookingIDKey, event.BookingID),
		zap.Int64(constvars.LoggingTherapistIDKey, event.TherapistID),
		zap.String("client_email", event.ClientEmail),
		zap.String("start_time", event.StartTime),
		zap.String("end_time", event.EndTime),
		zap.String(constvars.LoggingEventTypeKey, event.EventType),
	)
	return nil
}
