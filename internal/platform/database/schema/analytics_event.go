// Copyright (c) 2026 Podhaven. All rights reserved.

package schema

// AnalyticsEventTable represents the 'analytics.event' table
type AnalyticsEventTable struct {
	Table      string
	ID         string
	PodcastID  string
	EventType  string
	UserAgent  string
	ClientIP   string
	Platform   string
	OccurredAt string
}

// AnalyticsEvent is the schema definition for analytics.event
var AnalyticsEvent = AnalyticsEventTable{
	Table:      "analytics.event",
	ID:         "id",
	PodcastID:  "podcastid",
	EventType:  "eventtype",
	UserAgent:  "useragent",
	ClientIP:   "clientip",
	Platform:   "platform",
	OccurredAt: "occurredat",
}
