// Copyright (c) 2026 Podhaven. All rights reserved.

/*
Package rabbit provides a managed RabbitMQ connection for asynchronous
side-effects.

Podhaven uses the broker for exactly one concern: listener analytics events
emitted by the public feed endpoints. Publishing is best-effort by contract —
a broker outage must never delay or fail an RSS response — so all consumers
of this package log and swallow errors instead of propagating them.
*/
package rabbit

import (
	"fmt"
	"log/slog"

	amqp "github.com/rabbitmq/amqp091-go"
)

// NewConnection dials the broker and validates the connection by opening a
// throwaway channel.
//
// # Parameters
//   - amqpURL: amqp:// connection URL.
//   - logger: Structured logger for connection events.
func NewConnection(amqpURL string, logger *slog.Logger) (*amqp.Connection, error) {
	connection, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, fmt.Errorf("rabbit: dial failed: %w", err)
	}

	// A connection can be established while the broker is still refusing
	// channels; probe one before declaring the connection healthy.
	probe, err := connection.Channel()
	if err != nil {
		_ = connection.Close()
		return nil, fmt.Errorf("rabbit: channel probe failed: %w", err)
	}
	_ = probe.Close()

	logger.Info("rabbitmq connected")

	return connection, nil
}

// DeclareQueue opens a channel and idempotently declares a durable queue on it.
//
// The channel is returned for the caller to own; durable queues survive
// broker restarts, which matters because analytics events are written
// fire-and-forget with no application-side retry.
func DeclareQueue(connection *amqp.Connection, name string) (*amqp.Channel, error) {
	channel, err := connection.Channel()
	if err != nil {
		return nil, fmt.Errorf("rabbit: channel open failed: %w", err)
	}

	if _, err := channel.QueueDeclare(
		name,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,   // args
	); err != nil {
		_ = channel.Close()
		return nil, fmt.Errorf("rabbit: queue declare failed: %w", err)
	}

	return channel, nil
}
