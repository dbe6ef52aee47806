package notifications

import (
	"calmora-service/internal/app/config"
	"calmora-service/internal/app/contracts"
	"calmora-service/internal/pkg/constvars"
	"calmora-service/internal/pkg/events"
	"calmora-service/internal/pkg/exceptions"
	"context"
	"sync"

	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// seenCapacity bounds the duplicate-suppression window. Delivery is
// at-least-once, so this is an optimization, not a correctness requirement:
// re-notifying after eviction is harmless.
const seenCapacity = 1024

// Record is a pre-delivered queue message handed to ProcessRecords by an
// external harness instead of the poll loop.
type Record struct {
	MessageID string
	Body      []byte
}

type RecordFailure struct {
	MessageID string `json:"message_id"`
	Reason    string `json:"reason"`
}

// BatchResult summarizes a push-mode invocation. Success is false when any
// record failed; the harness decides what to redeliver from Failures.
type BatchResult struct {
	Success   bool            `json:"success"`
	Processed int             `json:"processed"`
	Failed    int             `json:"failed"`
	Failures  []RecordFailure `json:"failures,omitempty"`
}

type NotificationConsumerService struct {
	Notifier       contracts.Notifier
	InternalConfig *config.InternalConfig
	Log            *zap.Logger

	mu        sync.Mutex
	seen      map[int64]struct{}
	seenOrder []int64
}

func NewNotificationConsumerService(notifier contracts.Notifier, internalConfig *config.InternalConfig, logger *zap.Logger) *NotificationConsumerService {
	return &NotificationConsumerService{
		Notifier:       notifier,
		InternalConfig: internalConfig,
		Log:            logger,
		seen:           make(map[int64]struct{}, seenCapacity),
	}
}

// Run consumes the notification queue until ctx is cancelled. Messages are
// acknowledged only after successful processing; failed messages are
// requeued for redelivery. One message's failure never blocks siblings.
func (s *NotificationConsumerService) Run(ctx context.Context, conn *amqp091.Connection) error {
	channel, err := conn.Channel()
	if err != nil {
		return exceptions.ErrQueueConsume(err)
	}
	defer channel.Close()

	queueName := s.InternalConfig.Queue.Name
	if _, err := channel.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		return exceptions.ErrQueueConsume(err)
	}

	// Prefetch bounds how many undelivered messages are in flight at once,
	// the batch-size equivalent of the poll model.
	if err := channel.Qos(s.InternalConfig.Queue.Prefetch, 0, false); err != nil {
		return exceptions.ErrQueueConsume(err)
	}

	deliveries, err := channel.ConsumeWithContext(ctx, queueName, s.InternalConfig.Queue.ConsumerTag, false, false, false, false, nil)
	if err != nil {
		return exceptions.ErrQueueConsume(err)
	}

	s.Log.Info("notification consumer started",
		zap.String(constvars.LoggingQueueKey, queueName),
		zap.Int("prefetch", s.InternalConfig.Queue.Prefetch),
	)

	return s.Consume(ctx, deliveries)
}

// Consume drains the delivery stream until ctx is cancelled or the stream
// closes. The delivery being handled when cancellation arrives finishes
// before Consume returns; anything still unacked is redelivered.
func (s *NotificationConsumerService) Consume(ctx context.Context, deliveries <-chan amqp091.Delivery) error {
	for {
		select {
		case <-ctx.Done():
			s.Log.Info("notification consumer stopping", zap.Error(ctx.Err()))
			return nil
		case delivery, ok := <-deliveries:
			if !ok {
				s.Log.Info("notification consumer delivery channel closed")
				return nil
			}
			s.HandleDelivery(ctx, delivery)
		}
	}
}

// HandleDelivery processes one queue message. Ack means delete; Nack with
// requeue leaves the message for redelivery, mirroring a visibility-timeout
// queue.
func (s *NotificationConsumerService) HandleDelivery(ctx context.Context, delivery amqp091.Delivery) {
	event, err := events.UnmarshalBookingCreated(delivery.Body)
	if err != nil {
		s.Log.Error("failed to decode notification message, leaving for redelivery",
			zap.String(constvars.LoggingMessageIDKey, delivery.MessageId),
			zap.Error(err),
		)
		// Requeue keeps at-least-once semantics; a payload that never
		// decodes is expected to be caught by the queue's dead-letter
		// policy, not special-cased here.
		if nackErr := delivery.Nack(false, true); nackErr != nil {
			s.Log.Error("failed to nack undecodable message", zap.Error(nackErr))
		}
		return
	}

	if err := s.processEvent(ctx, event); err != nil {
		s.Log.Error("failed to process notification event, leaving for redelivery",
			zap.Int64(constvars.LoggingBookingIDKey, event.BookingID),
			zap.Error(err),
		)
		if nackErr := delivery.Nack(false, true); nackErr != nil {
			s.Log.Error("failed to nack notification message", zap.Error(nackErr))
		}
		return
	}

	if err := delivery.Ack(false); err != nil {
		s.Log.Error("failed to ack notification message",
			zap.Int64(constvars.LoggingBookingIDKey, event.BookingID),
			zap.Error(err),
		)
	}
}

// ProcessRecords is the push-mode entry point: an external harness hands over
// a batch it already pulled from the queue. Failures are isolated per record
// and surfaced in the returned summary instead of being raised.
func (s *NotificationConsumerService) ProcessRecords(ctx context.Context, records []Record) BatchResult {
	result := BatchResult{Success: true}

	for _, record := range records {
		event, err := events.UnmarshalBookingCreated(record.Body)
		if err != nil {
			s.Log.Error("failed to decode notification record",
				zap.String(constvars.LoggingMessageIDKey, record.MessageID),
				zap.Error(err),
			)
			result.Success = false
			result.Failed++
			result.Failures = append(result.Failures, RecordFailure{MessageID: record.MessageID, Reason: err.Error()})
			continue
		}

		if err := s.processEvent(ctx, event); err != nil {
			s.Log.Error("failed to process notification record",
				zap.String(constvars.LoggingMessageIDKey, record.MessageID),
				zap.Int64(constvars.LoggingBookingIDKey, event.BookingID),
				zap.Error(err),
			)
			result.Success = false
			result.Failed++
			result.Failures = append(result.Failures, RecordFailure{MessageID: record.MessageID, Reason: err.Error()})
			continue
		}

		result.Processed++
	}

	return result
}

// processEvent dispatches the notification once per booking id: duplicate
// deliveries inside the suppression window are acknowledged as successes
// without re-notifying.
func (s *NotificationConsumerService) processEvent(ctx context.Context, event events.BookingCreated) error {
	if s.alreadyProcessed(event.BookingID) {
		s.Log.Debug("duplicate notification event, skipping dispatch",
			zap.Int64(constvars.LoggingBookingIDKey, event.BookingID),
		)
		return nil
	}

	if err := s.Notifier.Notify(ctx, event); err != nil {
		return err
	}

	s.markProcessed(event.BookingID)
	return nil
}

func (s *NotificationConsumerService) alreadyProcessed(bookingID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.seen[bookingID]
	return ok
}

func (s *NotificationConsumerService) markProcessed(bookingID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.seen[bookingID]; ok {
		return
	}
	if len(s.seenOrder) >= seenCapacity {
		oldest := s.seenOrder[0]
		s.seenOrder = s.seenOrder[1:]
		delete(s.seen, oldest)
	}
	s.seen[bookingID] = struct{}{}
	s.seenOrder = append(s.seenOrder, bookingID)
}
