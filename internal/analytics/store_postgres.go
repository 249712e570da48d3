// Copyright (c) 2026 Podhaven. All rights reserved.

package analytics

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/podhaven/podhaven/internal/platform/database/schema"
	"github.com/podhaven/podhaven/internal/platform/dberr"
)

// # PostgreSQL Repository

// eventRepository implements the [EventRepository] interface using pgx.
type eventRepository struct {
	pool *pgxpool.Pool
}

// NewEventRepository constructs a PostgreSQL backed analytics store.
func NewEventRepository(pool *pgxpool.Pool) EventRepository {
	return &eventRepository{pool: pool}
}

// Insert persists one access event.
func (repository *eventRepository) Insert(context context.Context, event *Event) error {
	t := schema.AnalyticsEvent
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, t.Table, t.ID, t.PodcastID, t.EventType, t.UserAgent, t.ClientIP,
		t.Platform, t.OccurredAt)

	_, err := repository.pool.Exec(context, query,
		event.ID,
		event.PodcastID,
		event.EventType,
		event.UserAgent,
		event.ClientIP,
		event.Platform,
		event.OccurredAt,
	)
	if err != nil {
		return dberr.Wrap(err, "AnalyticsEvent")
	}

	return nil
}

// SummaryByPodcast returns per-platform access counts, highest first.
func (repository *eventRepository) SummaryByPodcast(context context.Context, podcastID string) ([]PlatformCount, error) {
	t := schema.AnalyticsEvent
	query := fmt.Sprintf(`
		SELECT %s, COUNT(*) AS accesses
		FROM %s
		WHERE %s = $1
		GROUP BY %s
		ORDER BY accesses DESC, %s ASC
	`, t.Platform, t.Table, t.PodcastID, t.Platform, t.Platform)

	rows, err := repository.pool.Query(context, query, podcastID)
	if err != nil {
		return nil, dberr.Wrap(err, "AnalyticsEvent")
	}
	defer rows.Close()

	summary := []PlatformCount{}
	for rows.Next() {
		var row PlatformCount
		if err := rows.Scan(&row.Platform, &row.Count); err != nil {
			return nil, dberr.Wrap(err, "AnalyticsEvent")
		}
		summary = append(summary, row)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "AnalyticsEvent")
	}

	return summary, nil
}
