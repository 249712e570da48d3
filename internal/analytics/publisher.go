// Copyright (c) 2026 Podhaven. All rights reserved.

package analytics

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/podhaven/podhaven/internal/platform/rabbit"
)

// # AMQP Sink

// QueuePublisher is a [Sink] that publishes events to a durable queue
// instead of writing to Postgres inline. The queue consumer owns the
// database write.
type QueuePublisher struct {
	channel *amqp.Channel
	queue   string
}

// NewQueuePublisher declares the queue and returns a publishing sink.
func NewQueuePublisher(connection *amqp.Connection, queue string) (*QueuePublisher, error) {
	channel, err := rabbit.DeclareQueue(connection, queue)
	if err != nil {
		return nil, err
	}

	return &QueuePublisher{channel: channel, queue: queue}, nil
}

// Write publishes one event as a persistent JSON message.
func (publisher *QueuePublisher) Write(context context.Context, event *Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("analytics: marshal event: %w", err)
	}

	err = publisher.channel.PublishWithContext(context,
		"",              // default exchange
		publisher.queue, // routing key
		false,           // mandatory
		false,           // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("analytics: publish event: %w", err)
	}

	return nil
}

// Close releases the publisher's channel.
func (publisher *QueuePublisher) Close() error {
	return publisher.channel.Close()
}
