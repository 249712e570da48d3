// Copyright (c) 2026 Podhaven. All rights reserved.

package analytics

import "context"

// # Analytics Data Access

// EventRepository defines the data access contract for analytics events.
type EventRepository interface {

	/*
		Insert persists one access event.
	*/
	Insert(context context.Context, event *Event) error

	/*
		SummaryByPodcast returns per-platform access counts for a show,
		highest count first.
	*/
	SummaryByPodcast(context context.Context, podcastID string) ([]PlatformCount, error)
}
