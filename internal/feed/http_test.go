// Copyright (c) 2026 Podhaven. All rights reserved.

package feed

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/podhaven/podhaven/internal/analytics"
	"github.com/podhaven/podhaven/internal/episode"
	"github.com/podhaven/podhaven/internal/platform/apperr"
	"github.com/podhaven/podhaven/internal/podcast"
)

// stubSource returns a fixed resolution result.
type stubSource struct {
	show     *podcast.Podcast
	episodes []*episode.Episode
	err      error
	calls    int
}

func (s *stubSource) Resolve(_ context.Context, _ ResolveParams) (*podcast.Podcast, []*episode.Episode, error) {
	s.calls++
	if s.err != nil {
		return nil, nil, s.err
	}
	return s.show, s.episodes, nil
}

// stubRecorder captures dispatched events.
type stubRecorder struct {
	events []*analytics.Event
}

func (r *stubRecorder) Record(event *analytics.Event) {
	r.events = append(r.events, event)
}

// stubCache is a map-backed [Cache].
type stubCache struct {
	entries map[string]*CachedFeed
}

func (c *stubCache) Get(_ context.Context, key string) (*CachedFeed, bool) {
	entry, ok := c.entries[key]
	return entry, ok
}

func (c *stubCache) Set(_ context.Context, key string, entry *CachedFeed) {
	c.entries[key] = entry
}

func feedFixture() (*podcast.Podcast, []*episode.Episode) {
	show := &podcast.Podcast{
		ID:          "pod-1",
		Title:       "My Show",
		Description: "Desc",
		AuthorName:  "Jane",
		ArtworkURL:  "https://x/a.png",
		Language:    "en",
	}
	episodes := []*episode.Episode{{
		ID:          "ep-1",
		Title:       "Ep1",
		AudioURL:    "https://x/e1.mp3",
		PublishDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Status:      episode.StatusPublished,
	}}
	return show, episodes
}

func newFeedRouter(slugSource, idSource FeedSource, cache Cache, recorder Recorder) chi.Router {
	router := chi.NewRouter()
	handler := NewHandler(NewAssembler("https://podhaven.app"), slugSource, idSource, cache, recorder)
	handler.Register(router)
	return router
}

func TestServeSlugFeed(t *testing.T) {
	show, episodes := feedFixture()
	source := &stubSource{show: show, episodes: episodes}
	recorder := &stubRecorder{}

	router := newFeedRouter(source, &stubSource{}, nil, recorder)

	request := httptest.NewRequest(http.MethodGet, "/jane/my-show/rss", nil)
	request.Header.Set("User-Agent", "Spotify/8.9.42 iOS/17.5")
	request.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	response := httptest.NewRecorder()

	router.ServeHTTP(response, request)

	require.Equal(t, http.StatusOK, response.Code)
	assert.Equal(t, "application/rss+xml; charset=utf-8", response.Header().Get("Content-Type"))
	assert.Equal(t, "public, max-age=3600", response.Header().Get("Cache-Control"))
	assert.Contains(t, response.Body.String(), "<title>Ep1</title>")

	require.Len(t, recorder.events, 1)
	event := recorder.events[0]
	assert.Equal(t, "pod-1", event.PodcastID)
	assert.Equal(t, analytics.EventTypeRSSAccess, event.EventType)
	assert.Equal(t, "Spotify", event.Platform)
	assert.Equal(t, "203.0.113.9", event.ClientIP)
}

func TestServeSlugFeedUserNotFound(t *testing.T) {
	source := &stubSource{err: apperr.NotFound("User")}
	router := newFeedRouter(source, &stubSource{}, nil, nil)

	response := httptest.NewRecorder()
	router.ServeHTTP(response, httptest.NewRequest(http.MethodGet, "/ghost/my-show/rss", nil))

	assert.Equal(t, http.StatusNotFound, response.Code)
	assert.Equal(t, "text/plain; charset=utf-8", response.Header().Get("Content-Type"))
	assert.Equal(t, "User not found", response.Body.String())
}

func TestServeIDFeedPodcastNotFound(t *testing.T) {
	source := &stubSource{err: apperr.NotFound("Podcast")}
	router := newFeedRouter(&stubSource{}, source, nil, nil)

	response := httptest.NewRecorder()
	router.ServeHTTP(response, httptest.NewRequest(http.MethodGet, "/api/rss/nope", nil))

	assert.Equal(t, http.StatusNotFound, response.Code)
	assert.Equal(t, "Podcast not found", response.Body.String())
}

func TestServeFeedExposesStoreErrors(t *testing.T) {
	source := &stubSource{err: apperr.Internal(errors.New("connection refused"))}
	router := newFeedRouter(&stubSource{}, source, nil, nil)

	response := httptest.NewRecorder()
	router.ServeHTTP(response, httptest.NewRequest(http.MethodGet, "/api/rss/pod-1", nil))

	assert.Equal(t, http.StatusInternalServerError, response.Code)
	assert.Contains(t, response.Body.String(), "connection refused")
}

func TestServeFeedCacheHitSkipsResolution(t *testing.T) {
	source := &stubSource{}
	recorder := &stubRecorder{}
	cache := &stubCache{entries: map[string]*CachedFeed{
		"id:pod-1": {PodcastID: "pod-1", XML: "<rss>cached</rss>"},
	}}

	router := newFeedRouter(&stubSource{}, source, cache, recorder)

	response := httptest.NewRecorder()
	router.ServeHTTP(response, httptest.NewRequest(http.MethodGet, "/api/rss/pod-1", nil))

	require.Equal(t, http.StatusOK, response.Code)
	assert.Equal(t, "<rss>cached</rss>", response.Body.String())
	assert.Zero(t, source.calls)

	// Cache hits still count as listens.
	require.Len(t, recorder.events, 1)
	assert.Equal(t, "pod-1", recorder.events[0].PodcastID)
}

func TestServeFeedFillsCache(t *testing.T) {
	show, episodes := feedFixture()
	source := &stubSource{show: show, episodes: episodes}
	cache := &stubCache{entries: map[string]*CachedFeed{}}

	router := newFeedRouter(&stubSource{}, source, cache, nil)

	response := httptest.NewRecorder()
	router.ServeHTTP(response, httptest.NewRequest(http.MethodGet, "/api/rss/pod-1", nil))

	require.Equal(t, http.StatusOK, response.Code)
	entry, ok := cache.entries["id:pod-1"]
	require.True(t, ok)
	assert.Equal(t, "pod-1", entry.PodcastID)
	assert.Contains(t, entry.XML, "<title>Ep1</title>")
}

func TestServeFeedClientIPFallsBackToUnknown(t *testing.T) {
	show, episodes := feedFixture()
	source := &stubSource{show: show, episodes: episodes}
	recorder := &stubRecorder{}

	router := newFeedRouter(source, &stubSource{}, nil, recorder)

	response := httptest.NewRecorder()
	router.ServeHTTP(response, httptest.NewRequest(http.MethodGet, "/jane/my-show/rss", nil))

	require.Len(t, recorder.events, 1)
	assert.Equal(t, "Unknown", recorder.events[0].ClientIP)
	assert.Equal(t, analytics.PlatformUnknown, recorder.events[0].Platform)
}
