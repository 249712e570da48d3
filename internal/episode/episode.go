// Copyright (c) 2026 Podhaven. All rights reserved.

// Package episode implements episode authoring for the Podhaven dashboard.
//
// The write path is gated by the numbering admission validator: within one
// (podcast, season) scope episode numbers must stay unique and dense, so the
// feed generator can rely on them for ordering.
package episode

import (
	"time"
)

// Status is the publication lifecycle state of an episode.
type Status string

const (
	// StatusDraft episodes are invisible to the public feed.
	StatusDraft Status = "draft"

	// StatusPublished episodes are eligible for RSS emission.
	StatusPublished Status = "published"
)

// Episode represents a single installment of a show.
//
// SeasonNumber and EpisodeNumber are string-encoded optional integers, a
// carry-over from the legacy data model. An episode without a season belongs
// to the implicit "No Season" group; an episode without a number is not
// subject to numbering admission at all.
type Episode struct {
	ID            string    `json:"id"`
	PodcastID     string    `json:"podcast_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	AudioURL      string    `json:"audio_url"`
	FileSize      *int64    `json:"file_size,omitempty"`
	Duration      *int      `json:"duration,omitempty"`
	PublishDate   time.Time `json:"publish_date"`
	Status        Status    `json:"status"`
	SeasonNumber  *string   `json:"season_number,omitempty"`
	EpisodeNumber *string   `json:"episode_number,omitempty"`
	IsExplicit    bool      `json:"is_explicit"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// IsPublished reports whether the episode is visible to the public feed.
func (e *Episode) IsPublished() bool {
	return e.Status == StatusPublished
}
