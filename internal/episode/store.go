// Copyright (c) 2026 Podhaven. All rights reserved.

package episode

import "context"

// # Episode Data Access

// EpisodeRepository defines the data access contract for episodes.
type EpisodeRepository interface {

	/*
		FindByID returns the episode with the given ID.

		Returns:
		  - *Episode: Hydrated episode
		  - error: apperr.NotFound if missing
	*/
	FindByID(context context.Context, id string) (*Episode, error)

	/*
		ListByPodcast returns a page of the show's episodes, any status,
		newest first. Used by the authoring dashboard.

		Returns:
		  - []*Episode: Page of episodes
		  - int: Total episode count for the show
	*/
	ListByPodcast(context context.Context, podcastID string, limit, offset int) ([]*Episode, int, error)

	/*
		ListAllByPodcast returns every episode of the show regardless of
		status. The numbering admission validator compares proposed numbers
		against this full set: drafts reserve their numbers too.
	*/
	ListAllByPodcast(context context.Context, podcastID string) ([]*Episode, error)

	/*
		ListPublishedBySeason returns the show's published episodes ordered
		ascending by (season, episode). This is the canonical order of the
		public slug-addressed feed.
	*/
	ListPublishedBySeason(context context.Context, podcastID string) ([]*Episode, error)

	/*
		ListPublishedByDate returns the show's published episodes ordered
		descending by publish date. This is the order of the id-addressed
		feed variant.
	*/
	ListPublishedByDate(context context.Context, podcastID string) ([]*Episode, error)

	/*
		Create persists a new episode.
	*/
	Create(context context.Context, episode *Episode) error

	/*
		Update persists changes to an existing episode.
	*/
	Update(context context.Context, episode *Episode) error

	/*
		Delete removes an episode.
	*/
	Delete(context context.Context, id string) error
}
