// Copyright (c) 2026 Podhaven. All rights reserved.

package analytics

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/podhaven/podhaven/pkg/uuidv7"
)

// recorderBuffer bounds the number of in-flight events. Feed traffic spikes
// when directories re-poll on the hour; events beyond the buffer are dropped
// rather than applying backpressure to the response path.
const recorderBuffer = 256

// sinkTimeout caps a single sink write.
const sinkTimeout = 5 * time.Second

// Sink is where the recorder's worker delivers events: the AMQP publisher
// when a broker is configured, the Postgres store otherwise.
type Sink interface {
	Write(context context.Context, event *Event) error
}

// # Fire-and-forget Recorder

// Recorder decouples analytics writes from the feed response path.
//
// Record never blocks and never returns an error; a single worker goroutine
// drains the buffer into the configured [Sink]. Failures are logged and
// swallowed per the analytics contract.
type Recorder struct {
	events chan *Event
	sink   Sink
	logger *slog.Logger
	wg     sync.WaitGroup

	closeOnce sync.Once
}

// NewRecorder constructs a [Recorder] and starts its worker.
func NewRecorder(sink Sink, logger *slog.Logger) *Recorder {
	recorder := &Recorder{
		events: make(chan *Event, recorderBuffer),
		sink:   sink,
		logger: logger,
	}

	recorder.wg.Add(1)
	go recorder.work()

	return recorder
}

// Record enqueues an event without blocking. A full buffer drops the event.
func (recorder *Recorder) Record(event *Event) {
	if event.ID == "" {
		event.ID = uuidv7.New()
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	select {
	case recorder.events <- event:
	default:
		recorder.logger.Warn("analytics_event_dropped",
			slog.String("podcast_id", event.PodcastID),
		)
	}
}

// Close stops accepting events and waits for the worker to drain the buffer.
func (recorder *Recorder) Close() {
	recorder.closeOnce.Do(func() {
		close(recorder.events)
	})
	recorder.wg.Wait()
}

// StoreSink adapts the [EventRepository] into a [Sink] for deployments
// without a message broker.
type StoreSink struct {
	eventRepo EventRepository
}

// NewStoreSink constructs a direct-to-Postgres sink.
func NewStoreSink(eventRepo EventRepository) *StoreSink {
	return &StoreSink{eventRepo: eventRepo}
}

// Write inserts the event directly.
func (sink *StoreSink) Write(context context.Context, event *Event) error {
	return sink.eventRepo.Insert(context, event)
}

// work drains the buffer into the sink until Close.
func (recorder *Recorder) work() {
	defer recorder.wg.Done()

	for event := range recorder.events {
		ctx, cancel := context.WithTimeout(context.Background(), sinkTimeout)
		if err := recorder.sink.Write(ctx, event); err != nil {
			recorder.logger.Error("analytics_write_failed",
				slog.String("podcast_id", event.PodcastID),
				slog.String("error", err.Error()),
			)
		}
		cancel()
	}
}
