package queue

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
)

const bookingQueueName = "booking.created"

// Publisher publishes domain events to RabbitMQ. A booking must never
// fail because the broker is down, so callers treat publish errors as
// log-and-continue.
type Publisher struct {
	url string
}

// NewPublisher returns a Publisher for the given broker URL, or nil
// when the URL is empty (events disabled).
func NewPublisher(url string) *Publisher {
	if url == "" {
		return nil
	}
	return &Publisher{url: url}
}

// PublishBookingCreated publishes a BookingCreatedEvent to the durable
// booking.created queue. Messages are marked persistent. Any error is
// logged and returned so the caller can choose to ignore it.
func (p *Publisher) PublishBookingCreated(ctx context.Context, event BookingCreatedEvent) error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		log.Warn().Err(err).Msg("rabbitmq: dial failed")
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Warn().Err(err).Msg("rabbitmq: channel open failed")
		return err
	}
	defer func() { _ = ch.Close() }()

	// Idempotent declare; durable so messages survive broker restarts.
	if _, err := ch.QueueDeclare(bookingQueueName, true, false, false, false, nil); err != nil {
		log.Warn().Err(err).Msg("rabbitmq: queue declare failed")
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", bookingQueueName, false, false, pub); err != nil {
		log.Warn().Err(err).Msg("rabbitmq: publish failed")
		return err
	}
	return nil
}
