// Copyright (c) 2026 Podhaven. All rights reserved.

package analytics

import (
	"context"
	"encoding/json"
	"log/slog"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/podhaven/podhaven/internal/platform/rabbit"
)

// # Queue Consumer

// Consumer drains the analytics queue into Postgres.
//
// It runs alongside the API in the same process; a dedicated worker binary
// would use it the same way.
type Consumer struct {
	connection *amqp.Connection
	eventRepo  EventRepository
	queue      string
	logger     *slog.Logger
}

// NewConsumer constructs a queue [Consumer].
func NewConsumer(connection *amqp.Connection, eventRepo EventRepository, queue string, logger *slog.Logger) *Consumer {
	return &Consumer{
		connection: connection,
		eventRepo:  eventRepo,
		queue:      queue,
		logger:     logger,
	}
}

// Start consumes until the context is cancelled or the channel closes.
// It blocks; run it on its own goroutine.
func (consumer *Consumer) Start(ctx context.Context) error {
	channel, err := rabbit.DeclareQueue(consumer.connection, consumer.queue)
	if err != nil {
		return err
	}
	defer channel.Close()

	deliveries, err := channel.Consume(
		consumer.queue,
		"podhaven-analytics", // consumer tag
		false,                // autoAck
		false,                // exclusive
		false,                // noLocal
		false,                // noWait
		nil,                  // args
	)
	if err != nil {
		return err
	}

	consumer.logger.Info("analytics consumer started", slog.String("queue", consumer.queue))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case delivery, open := <-deliveries:
			if !open {
				return nil
			}
			consumer.handle(ctx, delivery)
		}
	}
}

// handle persists one delivery. Malformed or unwritable messages are
// dead-lettered (nack without requeue) so one poison message cannot wedge
// the queue.
func (consumer *Consumer) handle(ctx context.Context, delivery amqp.Delivery) {
	var event Event
	if err := json.Unmarshal(delivery.Body, &event); err != nil {
		consumer.logger.Error("analytics_message_malformed", slog.String("error", err.Error()))
		_ = delivery.Nack(false, false)
		return
	}

	if err := consumer.eventRepo.Insert(ctx, &event); err != nil {
		consumer.logger.Error("analytics_insert_failed",
			slog.String("podcast_id", event.PodcastID),
			slog.String("error", err.Error()),
		)
		_ = delivery.Nack(false, false)
		return
	}

	_ = delivery.Ack(false)
}
