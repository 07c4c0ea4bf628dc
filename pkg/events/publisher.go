package events

import (
	"context"
	"time"

	"paintly/pkg/kafka"
	kafka_config "paintly/pkg/kafka/config"
	"paintly/pkg/logger"
)

const (
	TopicBookings = "paintly.bookings"

	EventBookingConfirmed = "booking.confirmed"
)

// BookingConfirmed is the record published after a booking transaction
// commits. Downstream consumers (audit feed, reporting) read this topic;
// it is not a customer notification channel.
type BookingConfirmed struct {
	BookingID  string    `json:"booking_id"`
	CustomerID string    `json:"customer_id"`
	PainterID  string    `json:"painter_id"`
	SlotID     string    `json:"slot_id"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	OccurredAt time.Time `json:"occurred_at"`
}

type Publisher interface {
	PublishBookingConfirmed(ctx context.Context, event BookingConfirmed) error
	Close() error
}

type kafkaPublisher struct {
	producer *kafka.Producer
	log      *logger.Logger
}

func NewKafkaPublisher(cfg *kafka_config.Config, log *logger.Logger) (Publisher, error) {
	producer, err := kafka.NewProducer(cfg, TopicBookings)
	if err != nil {
		return nil, err
	}
	log.Info("Booking event publisher initialized", "topic", TopicBookings, "brokers", cfg.Brokers)
	return &kafkaPublisher{producer: producer, log: log}, nil
}

func (p *kafkaPublisher) PublishBookingConfirmed(ctx context.Context, event BookingConfirmed) error {
	builder, err := kafka.NewMessage().
		WithKey(event.BookingID).
		WithEventType(EventBookingConfirmed).
		WithSource("paintly-server").
		WithJSONValue(event)
	if err != nil {
		return err
	}

	return p.producer.Publish(ctx, builder.Build())
}

func (p *kafkaPublisher) Close() error {
	return p.producer.Close()
}

// NoopPublisher is used when the event feed is disabled by configuration.
type NoopPublisher struct{}

func (NoopPublisher) PublishBookingConfirmed(context.Context, BookingConfirmed) error { return nil }
func (NoopPublisher) Close() error                                                    { return nil }
