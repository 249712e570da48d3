// Copyright (c) 2026 Podhaven. All rights reserved.

package analytics

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memorySink collects delivered events.
type memorySink struct {
	mu     sync.Mutex
	events []*Event
	err    error
}

func (s *memorySink) Write(_ context.Context, event *Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.events = append(s.events, event)
	return nil
}

func (s *memorySink) delivered() []*Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.events
}

func TestRecorderDeliversAndStamps(t *testing.T) {
	sink := &memorySink{}
	recorder := NewRecorder(sink, slog.Default())

	recorder.Record(&Event{PodcastID: "show-1", EventType: EventTypeRSSAccess, Platform: "Spotify"})
	recorder.Close()

	events := sink.delivered()
	require.Len(t, events, 1)
	assert.NotEmpty(t, events[0].ID)
	assert.False(t, events[0].OccurredAt.IsZero())
	assert.Equal(t, "show-1", events[0].PodcastID)
}

func TestRecorderDrainsBufferOnClose(t *testing.T) {
	sink := &memorySink{}
	recorder := NewRecorder(sink, slog.Default())

	for i := 0; i < 50; i++ {
		recorder.Record(&Event{PodcastID: "show-1", EventType: EventTypeRSSAccess})
	}
	recorder.Close()

	assert.Len(t, sink.delivered(), 50)
}

func TestRecorderSwallowsSinkErrors(t *testing.T) {
	sink := &memorySink{err: errors.New("broker gone")}
	recorder := NewRecorder(sink, slog.Default())

	// Must not panic or block the caller.
	recorder.Record(&Event{PodcastID: "show-1", EventType: EventTypeRSSAccess})
	recorder.Close()

	assert.Empty(t, sink.delivered())
}
