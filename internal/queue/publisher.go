package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher sends domain events to RabbitMQ.  Each publish opens its own
// connection, so a broker outage only affects the publish that hits it.
type Publisher struct {
	url  string
	dial func(url string) (*amqp.Connection, error)
}

// NewPublisher returns a publisher for the broker at url.
func NewPublisher(url string) *Publisher {
	return &Publisher{url: url, dial: amqp.Dial}
}

// PublishShowBooked publishes ev to the show.booked queue.
func (p *Publisher) PublishShowBooked(ctx context.Context, ev ShowBookedEvent) error {
	return p.publish(ctx, ShowBookedQueue, ev)
}

// PublishListingCreated publishes ev to the listing.created queue.
func (p *Publisher) PublishListingCreated(ctx context.Context, ev ListingCreatedEvent) error {
	return p.publish(ctx, ListingCreatedQueue, ev)
}

func (p *Publisher) publish(ctx context.Context, queueName string, event any) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	conn, err := p.dial(p.url)
	if err != nil {
		return fmt.Errorf("dial broker: %w", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	// Ensure the queue exists (idempotent). Durable so messages survive broker restarts.
	if _, err := ch.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // autoDelete
		false,     // exclusive
		false,     // noWait
		nil,       // args
	); err != nil {
		return fmt.Errorf("declare queue %s: %w", queueName, err)
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent, // store on disk
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx,
		"",        // default exchange
		queueName, // routing key = queue name
		false,     // mandatory
		false,     // immediate
		pub,
	); err != nil {
		return fmt.Errorf("publish to %s: %w", queueName, err)
	}
	return nil
}
