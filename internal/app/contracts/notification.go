package contracts

import (
	"calmora-service/internal/pkg/events"
	"context"
)

// BookingEventPublisher submits booking events to the notification queue.
// Publishing is a best-effort side channel: callers must not fail the
// originating request when it errors.
type BookingEventPublisher interface {
	PublishBookingCreated(ctx context.Context, event events.BookingCreated) error
}

// DispatchObserver receives the outcome of every enqueue attempt so that
// dropped notifications are observable without failing the booking.
type DispatchObserver interface {
	NotificationEnqueued(ctx context.Context, event events.BookingCreated)
	NotificationDropped(ctx context.Context, event events.BookingCreated, err error)
}

// Notifier delivers a notification for a consumed event. Implementations
// must be idempotent: the queue delivers at-least-once.
type Notifier interface {
	Notify(ctx context.Context, event events.BookingCreated) error
}
