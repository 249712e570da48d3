// Copyright (c) 2026 Podhaven. All rights reserved.

package feed

import (
	"context"

	"github.com/podhaven/podhaven/internal/auth"
	"github.com/podhaven/podhaven/internal/episode"
	"github.com/podhaven/podhaven/internal/podcast"
)

// # Feed Sources

// FeedSource resolves a feed request into a show plus its published
// episodes, already in the order the feed should render them.
//
// Two strategies exist and their orderings deliberately diverge: the
// slug-addressed public feed lists episodes ascending by (season, episode),
// the id-addressed variant lists them newest first. Both orders predate this
// service and are relied upon by existing subscribers, so they are named and
// kept apart rather than unified.
type FeedSource interface {
	Resolve(context context.Context, params ResolveParams) (*podcast.Podcast, []*episode.Episode, error)
}

// ResolveParams carries the route parameters a source may need. Each source
// reads only its own fields.
type ResolveParams struct {
	Username    string
	PodcastSlug string
	PodcastID   string
}

// BySlugAscending serves /{username}/{podcastSlug}/rss: resolve the owner by
// username, the show by (owner, slug), and list published episodes in
// ascending (season, episode) order.
type BySlugAscending struct {
	userRepo    auth.UserRepository
	podcastRepo podcast.PodcastRepository
	episodeRepo episode.EpisodeRepository
}

// NewBySlugAscending constructs the slug-addressed feed source.
func NewBySlugAscending(userRepo auth.UserRepository, podcastRepo podcast.PodcastRepository, episodeRepo episode.EpisodeRepository) *BySlugAscending {
	return &BySlugAscending{
		userRepo:    userRepo,
		podcastRepo: podcastRepo,
		episodeRepo: episodeRepo,
	}
}

// Resolve implements [FeedSource].
func (source *BySlugAscending) Resolve(context context.Context, params ResolveParams) (*podcast.Podcast, []*episode.Episode, error) {
	owner, err := source.userRepo.FindByUsername(context, params.Username)
	if err != nil {
		return nil, nil, err
	}

	show, err := source.podcastRepo.FindByOwnerAndSlug(context, owner.ID, params.PodcastSlug)
	if err != nil {
		return nil, nil, err
	}

	episodes, err := source.episodeRepo.ListPublishedBySeason(context, show.ID)
	if err != nil {
		return nil, nil, err
	}

	return show, episodes, nil
}

// ByIdDescending serves /api/rss/{podcastID}: resolve the show directly by
// id and list published episodes newest first.
type ByIdDescending struct {
	podcastRepo podcast.PodcastRepository
	episodeRepo episode.EpisodeRepository
}

// NewByIdDescending constructs the id-addressed feed source.
func NewByIdDescending(podcastRepo podcast.PodcastRepository, episodeRepo episode.EpisodeRepository) *ByIdDescending {
	return &ByIdDescending{
		podcastRepo: podcastRepo,
		episodeRepo: episodeRepo,
	}
}

// Resolve implements [FeedSource].
func (source *ByIdDescending) Resolve(context context.Context, params ResolveParams) (*podcast.Podcast, []*episode.Episode, error) {
	show, err := source.podcastRepo.FindByID(context, params.PodcastID)
	if err != nil {
		return nil, nil, err
	}

	episodes, err := source.episodeRepo.ListPublishedByDate(context, show.ID)
	if err != nil {
		return nil, nil, err
	}

	return show, episodes, nil
}
