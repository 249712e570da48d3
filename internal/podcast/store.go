// Copyright (c) 2026 Podhaven. All rights reserved.

package podcast

import "context"

// # Show Data Access

// PodcastRepository defines the data access contract for shows.
type PodcastRepository interface {

	/*
		FindByID returns the show with the given ID.

		Returns:
		  - *Podcast: Hydrated show
		  - error: apperr.NotFound if missing
	*/
	FindByID(context context.Context, id string) (*Podcast, error)

	/*
		FindByOwnerAndSlug returns the show addressed by (owner, podcast_name).

		The public feed resolver depends on this lookup for the
		/{username}/{slug}/rss route.
	*/
	FindByOwnerAndSlug(context context.Context, ownerID, slug string) (*Podcast, error)

	/*
		ListByOwner returns the owner's shows, newest first.

		Returns:
		  - []*Podcast: Page of shows
		  - int: Total show count for the owner
	*/
	ListByOwner(context context.Context, ownerID string, limit, offset int) ([]*Podcast, int, error)

	/*
		Create persists a new show.
	*/
	Create(context context.Context, podcast *Podcast) error

	/*
		Update persists changes to existing show metadata.
	*/
	Update(context context.Context, podcast *Podcast) error

	/*
		Delete removes a show and, via FK cascade, its episodes.
	*/
	Delete(context context.Context, id string) error
}
