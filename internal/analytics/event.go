// Copyright (c) 2026 Podhaven. All rights reserved.

// Package analytics records feed access events and aggregates them for show
// owners.
//
// Writes are best-effort by contract: a recording failure is logged and
// swallowed, never surfaced to the listener fetching the feed.
package analytics

import "time"

// EventTypeRSSAccess tags a public feed fetch.
const EventTypeRSSAccess = "rss_access"

// Event is one recorded feed access.
type Event struct {
	ID         string    `json:"id"`
	PodcastID  string    `json:"podcast_id"`
	EventType  string    `json:"event_type"`
	UserAgent  string    `json:"user_agent"`
	ClientIP   string    `json:"client_ip"`
	Platform   string    `json:"platform"`
	OccurredAt time.Time `json:"occurred_at"`
}

// PlatformCount is one row of the per-platform access summary.
type PlatformCount struct {
	Platform string `json:"platform"`
	Count    int    `json:"count"`
}
