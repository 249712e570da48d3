// Copyright (c) 2026 Podhaven. All rights reserved.

package episode

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/podhaven/podhaven/internal/platform/apperr"
	"github.com/podhaven/podhaven/internal/platform/sec"
	"github.com/podhaven/podhaven/internal/podcast"
	"github.com/podhaven/podhaven/pkg/pointer"
)

// fakeEpisodeRepo is an in-memory [EpisodeRepository] for service tests.
type fakeEpisodeRepo struct {
	episodes map[string]*Episode
}

func newFakeEpisodeRepo() *fakeEpisodeRepo {
	return &fakeEpisodeRepo{episodes: map[string]*Episode{}}
}

func (f *fakeEpisodeRepo) FindByID(_ context.Context, id string) (*Episode, error) {
	if episode, ok := f.episodes[id]; ok {
		return episode, nil
	}
	return nil, apperr.NotFound("Episode")
}

func (f *fakeEpisodeRepo) ListByPodcast(_ context.Context, podcastID string, _, _ int) ([]*Episode, int, error) {
	episodes := f.byPodcast(podcastID)
	return episodes, len(episodes), nil
}

func (f *fakeEpisodeRepo) ListAllByPodcast(_ context.Context, podcastID string) ([]*Episode, error) {
	return f.byPodcast(podcastID), nil
}

func (f *fakeEpisodeRepo) ListPublishedBySeason(_ context.Context, podcastID string) ([]*Episode, error) {
	return f.byPodcast(podcastID), nil
}

func (f *fakeEpisodeRepo) ListPublishedByDate(_ context.Context, podcastID string) ([]*Episode, error) {
	return f.byPodcast(podcastID), nil
}

func (f *fakeEpisodeRepo) Create(_ context.Context, episode *Episode) error {
	f.episodes[episode.ID] = episode
	return nil
}

func (f *fakeEpisodeRepo) Update(_ context.Context, episode *Episode) error {
	f.episodes[episode.ID] = episode
	return nil
}

func (f *fakeEpisodeRepo) Delete(_ context.Context, id string) error {
	delete(f.episodes, id)
	return nil
}

func (f *fakeEpisodeRepo) byPodcast(podcastID string) []*Episode {
	episodes := []*Episode{}
	for _, episode := range f.episodes {
		if episode.PodcastID == podcastID {
			episodes = append(episodes, episode)
		}
	}
	return episodes
}

// fakePodcastRepo serves a single show.
type fakePodcastRepo struct {
	show *podcast.Podcast
}

func (f *fakePodcastRepo) FindByID(_ context.Context, id string) (*podcast.Podcast, error) {
	if f.show != nil && f.show.ID == id {
		return f.show, nil
	}
	return nil, apperr.NotFound("Podcast")
}

func (f *fakePodcastRepo) FindByOwnerAndSlug(_ context.Context, _, _ string) (*podcast.Podcast, error) {
	return nil, apperr.NotFound("Podcast")
}

func (f *fakePodcastRepo) ListByOwner(_ context.Context, _ string, _, _ int) ([]*podcast.Podcast, int, error) {
	return nil, 0, nil
}

func (f *fakePodcastRepo) Create(_ context.Context, _ *podcast.Podcast) error { return nil }
func (f *fakePodcastRepo) Update(_ context.Context, _ *podcast.Podcast) error { return nil }
func (f *fakePodcastRepo) Delete(_ context.Context, _ string) error           { return nil }

func newTestService(t *testing.T) (*Service, *fakeEpisodeRepo) {
	t.Helper()

	episodeRepo := newFakeEpisodeRepo()
	podcastRepo := &fakePodcastRepo{show: &podcast.Podcast{ID: "show-1", OwnerID: "owner-1"}}

	return NewService(episodeRepo, podcastRepo, slog.Default()), episodeRepo
}

func draftEpisode(number string) *Episode {
	return &Episode{
		PodcastID:     "show-1",
		Title:         "Pilot",
		AudioURL:      "https://cdn.podhaven.app/pilot.mp3",
		Status:        StatusDraft,
		SeasonNumber:  pointer.To("1"),
		EpisodeNumber: pointer.To(number),
	}
}

func TestCreateEpisodeAdmitsFirstNumber(t *testing.T) {
	service, repo := newTestService(t)

	episode := draftEpisode("1")
	require.NoError(t, service.CreateEpisode(context.Background(), episode, "owner-1", sec.RoleHost))

	assert.NotEmpty(t, episode.ID)
	assert.Len(t, repo.episodes, 1)
}

func TestCreateEpisodeRejectsSkippedNumberWithoutPersisting(t *testing.T) {
	service, repo := newTestService(t)

	require.NoError(t, service.CreateEpisode(context.Background(), draftEpisode("1"), "owner-1", sec.RoleHost))

	err := service.CreateEpisode(context.Background(), draftEpisode("3"), "owner-1", sec.RoleHost)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "VALIDATION_ERROR", appError.Code)
	require.Len(t, appError.Details, 1)
	assert.Equal(t, FieldEpisodeNumber, appError.Details[0].Field)

	// The rejected episode must not have been persisted.
	assert.Len(t, repo.episodes, 1)
}

func TestCreateEpisodeRejectsNonNumericNumber(t *testing.T) {
	service, _ := newTestService(t)

	err := service.CreateEpisode(context.Background(), draftEpisode("S01E01"), "owner-1", sec.RoleHost)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	require.Len(t, appError.Details, 1)
	assert.Equal(t, FieldEpisodeNumber, appError.Details[0].Field)
}

func TestUpdateEpisodeExcludesItselfFromAdmission(t *testing.T) {
	service, repo := newTestService(t)

	first := draftEpisode("1")
	require.NoError(t, service.CreateEpisode(context.Background(), first, "owner-1", sec.RoleHost))

	// Re-saving with the same number is a no-op renumber, not a duplicate.
	update := draftEpisode("1")
	update.ID = first.ID
	update.Title = "Pilot (remastered)"
	require.NoError(t, service.UpdateEpisode(context.Background(), update, "owner-1", sec.RoleHost))

	assert.Equal(t, "Pilot (remastered)", repo.episodes[first.ID].Title)
}

func TestCreateEpisodeEnforcesOwnership(t *testing.T) {
	service, repo := newTestService(t)

	err := service.CreateEpisode(context.Background(), draftEpisode("1"), "intruder", sec.RoleHost)

	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "FORBIDDEN", appError.Code)
	assert.Empty(t, repo.episodes)
}
