package notifications

import (
	"calmora-service/internal/app/contracts"
	"calmora-service/internal/pkg/constvars"
	"calmora-service/internal/pkg/events"
	"calmora-service/internal/pkg/exceptions"
	"context"
	"encoding/json"
	"sync"

	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type rabbitMQBookingEventPublisher struct {
	Channel   *amqp091.Channel
	QueueName string
	Log       *zap.Logger
}

var (
	rabbitMQBookingEventPublisherInstance contracts.BookingEventPublisher
	onceRabbitMQBookingEventPublisher     sync.Once
)

// NewRabbitMQBookingEventPublisher opens a channel on the given connection
// and declares the durable notification queue. Publishing goes through the
// default exchange straight to the queue.
func NewRabbitMQBookingEventPublisher(conn *amqp091.Connection, queueName string, logger *zap.Logger) (contracts.BookingEventPublisher, error) {
	var initErr error
	onceRabbitMQBookingEventPublisher.Do(func() {
		channel, err := conn.Channel()
		if err != nil {
			initErr = exceptions.ErrQueuePublishMessage(err)
			return
		}
		if _, err := channel.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
			channel.Close()
			initErr = exceptions.ErrQueuePublishMessage(err)
			return
		}
		rabbitMQBookingEventPublisherInstance = &rabbitMQBookingEventPublisher{
			Channel:   channel,
			QueueName: queueName,
			Log:       logger,
		}
	})
	if initErr != nil {
		return nil, initErr
	}
	return rabbitMQBookingEventPublisherInstance, nil
}

func (p *rabbitMQBookingEventPublisher) PublishBookingCreated(ctx context.Context, event events.BookingCreated) error {
	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = p.Channel.PublishWithContext(ctx, "", p.QueueName, false, false, amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		DeliveryMode: amqp091.Persistent,
		Body:         body,
	})
	if err != nil {
		return exceptions.ErrQueuePublishMessage(err)
	}

	p.Log.Debug("rabbitMQBookingEventPublisher.PublishBookingCreated message published",
		zap.String(constvars.LoggingQueueKey, p.QueueName),
		zap.Int64(constvars.LoggingBookingIDKey, event.BookingID),
	)
	return nil
}
