package notifications

import (
	"calmora-service/internal/app/config"
	"calmora-service/internal/pkg/events"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/goccy/go-json"
)

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, event events.BookingCreated) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type fakeAcknowledger struct {
	acked    []uint64
	nacked   []uint64
	requeued map[uint64]bool
}

func newFakeAcknowledger() *fakeAcknowledger {
	return &fakeAcknowledger{requeued: make(map[uint64]bool)}
}

func (f *fakeAcknowledger) Ack(tag uint64, multiple bool) error {
	f.acked = append(f.acked, tag)
	return nil
}

func (f *fakeAcknowledger) Nack(tag uint64, multiple bool, requeue bool) error {
	f.nacked = append(f.nacked, tag)
	f.requeued[tag] = requeue
	return nil
}

func (f *fakeAcknowledger) Reject(tag uint64, requeue bool) error {
	f.nacked = append(f.nacked, tag)
	f.requeued[tag] = requeue
	return nil
}

func newTestConsumerService(notifier *MockNotifier) *NotificationConsumerService {
	return NewNotificationConsumerService(notifier, &config.InternalConfig{
		Queue: config.Queue{
			Name:        "booking-notifications",
			ConsumerTag: "test-consumer",
			Prefetch:    10,
		},
	}, zap.NewNop())
}

func eventBody(t *testing.T, bookingID int64) []byte {
	t.Helper()
	event := events.NewBookingCreated(bookingID, 7, "client@example.com", time.Now(), time.Now().Add(time.Hour))
	body, err := json.Marshal(event)
	require.NoError(t, err)
	return body
}

func TestNotificationConsumerService_HandleDelivery_AcksOnSuccess(t *testing.T) {
	notifier := new(MockNotifier)
	service := newTestConsumerService(notifier)
	acknowledger := newFakeAcknowledger()

	notifier.On("Notify", mock.Anything, mock.AnythingOfType("events.BookingCreated")).Return(nil)

	service.HandleDelivery(context.Background(), amqp091.Delivery{
		Acknowledger: acknowledger,
		DeliveryTag:  1,
		Body:         eventBody(t, 1),
	})

	assert.Equal(t, []uint64{1}, acknowledger.acked)
	assert.Empty(t, acknowledger.nacked)
}

func TestNotificationConsumerService_HandleDelivery_BadPayloadIsolated(t *testing.T) {
	notifier := new(MockNotifier)
	service := newTestConsumerService(notifier)
	acknowledger := newFakeAcknowledger()

	notifier.On("Notify", mock.Anything, mock.AnythingOfType("events.BookingCreated")).Return(nil)

	deliveries := []amqp091.Delivery{
		{Acknowledger: acknowledger, DeliveryTag: 1, Body: eventBody(t, 1)},
		{Acknowledger: acknowledger, DeliveryTag: 2, Body: []byte("not json")},
		{Acknowledger: acknowledger, DeliveryTag: 3, Body: eventBody(t, 3)},
	}
	for _, delivery := range deliveries {
		service.HandleDelivery(context.Background(), delivery)
	}

	assert.Equal(t, []uint64{1, 3}, acknowledger.acked)
	assert.Equal(t, []uint64{2}, acknowledger.nacked)
	assert.True(t, acknowledger.requeued[2])
	notifier.AssertNumberOfCalls(t, "Notify", 2)
}

func TestNotificationConsumerService_HandleDelivery_ProcessingFailureRequeued(t *testing.T) {
	notifier := new(MockNotifier)
	service := newTestConsumerService(notifier)
	acknowledger := newFakeAcknowledger()

	notifier.On("Notify", mock.Anything, mock.AnythingOfType("events.BookingCreated")).Return(errors.New("smtp down"))

	service.HandleDelivery(context.Background(), amqp091.Delivery{
		Acknowledger: acknowledger,
		DeliveryTag:  5,
		Body:         eventBody(t, 5),
	})

	assert.Empty(t, acknowledger.acked)
	assert.Equal(t, []uint64{5}, acknowledger.nacked)
	assert.True(t, acknowledger.requeued[5])
}

func TestNotificationConsumerService_HandleDelivery_DuplicateIsIdempotent(t *testing.T) {
	notifier := new(MockNotifier)
	service := newTestConsumerService(notifier)
	acknowledger := newFakeAcknowledger()

	notifier.On("Notify", mock.Anything, mock.AnythingOfType("events.BookingCreated")).Return(nil)

	body := eventBody(t, 77)
	service.HandleDelivery(context.Background(), amqp091.Delivery{Acknowledger: acknowledger, DeliveryTag: 1, Body: body})
	service.HandleDelivery(context.Background(), amqp091.Delivery{Acknowledger: acknowledger, DeliveryTag: 2, Body: body})

	// Redelivery is acknowledged as a success but only notified once.
	assert.Equal(t, []uint64{1, 2}, acknowledger.acked)
	notifier.AssertNumberOfCalls(t, "Notify", 1)
}

func TestNotificationConsumerService_Consume_StopsOnContextCancel(t *testing.T) {
	notifier := new(MockNotifier)
	service := newTestConsumerService(notifier)

	ctx, cancel := context.WithCancel(context.Background())
	deliveries := make(chan amqp091.Delivery)

	done := make(chan error, 1)
	go func() {
		done <- service.Consume(ctx, deliveries)
	}()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("consumer did not stop after context cancellation")
	}
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
}

func TestNotificationConsumerService_Consume_DrainsUntilStreamCloses(t *testing.T) {
	notifier := new(MockNotifier)
	service := newTestConsumerService(notifier)
	acknowledger := newFakeAcknowledger()

	notifier.On("Notify", mock.Anything, mock.AnythingOfType("events.BookingCreated")).Return(nil)

	deliveries := make(chan amqp091.Delivery, 2)
	deliveries <- amqp091.Delivery{Acknowledger: acknowledger, DeliveryTag: 1, Body: eventBody(t, 1)}
	deliveries <- amqp091.Delivery{Acknowledger: acknowledger, DeliveryTag: 2, Body: eventBody(t, 2)}
	close(deliveries)

	err := service.Consume(context.Background(), deliveries)

	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 2}, acknowledger.acked)
	notifier.AssertNumberOfCalls(t, "Notify", 2)
}

func TestNotificationConsumerService_ProcessRecords_FailureSurfacedInSummary(t *testing.T) {
	notifier := new(MockNotifier)
	service := newTestConsumerService(notifier)

	notifier.On("Notify", mock.Anything, mock.AnythingOfType("events.BookingCreated")).Return(nil)

	records := []Record{
		{MessageID: "1", Body: eventBody(t, 1)},
		{MessageID: "2", Body: []byte("invalid json")},
		{MessageID: "3", Body: eventBody(t, 3)},
	}

	result := service.ProcessRecords(context.Background(), records)

	assert.False(t, result.Success)
	assert.Equal(t, 2, result.Processed)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, "2", result.Failures[0].MessageID)
	notifier.AssertNumberOfCalls(t, "Notify", 2)
}

func TestNotificationConsumerService_ProcessRecords_AllSucceed(t *testing.T) {
	notifier := new(MockNotifier)
	service := newTestConsumerService(notifier)

	notifier.On("Notify", mock.Anything, mock.AnythingOfType("events.BookingCreated")).Return(nil)

	records := []Record{
		{MessageID: "1", Body: eventBody(t, 10)},
		{MessageID: "2", Body: eventBody(t, 11)},
	}

	result := service.ProcessRecords(context.Background(), records)

	assert.True(t, result.Success)
	assert.Equal(t, 2, result.Processed)
	assert.Zero(t, result.Failed)
	assert.Empty(t, result.Failures)
}
