// Copyright (c) 2026 Podhaven. All rights reserved.

// Package podcast implements show management for the Podhaven dashboard.
//
// A Podcast ("show") is the unit of publication: it owns episodes and is
// exposed to the world as one RSS feed per show.
package podcast

import (
	"time"
)

// Podcast represents a show owned by a registered user.
//
// # Rules
//   - (OwnerID, PodcastName) is unique: the slug addresses the public feed
//     at /{username}/{podcast_name}/rss.
//   - PodcastName matches the URL-safe slug pattern (lowercase letters,
//     digits, hyphens). Enforced at create/update time; the feed resolver
//     assumes it.
//   - Categories iterate deterministically (stored as an ordered array) so
//     the emitted XML is byte-stable for a given record.
type Podcast struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	PodcastName string    `json:"podcast_name"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	AuthorName  string    `json:"author_name"`
	Email       string    `json:"email"`
	WebsiteURL  string    `json:"website_url,omitempty"`
	ArtworkURL  string    `json:"artwork_url,omitempty"`
	Language    string    `json:"language"`
	IsExplicit  bool      `json:"is_explicit"`
	Categories  []string  `json:"categories"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
