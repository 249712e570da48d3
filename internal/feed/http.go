// Copyright (c) 2026 Podhaven. All rights reserved.

package feed

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/podhaven/podhaven/internal/analytics"
	"github.com/podhaven/podhaven/internal/platform/apperr"
	"github.com/podhaven/podhaven/internal/platform/constants"
	requestutil "github.com/podhaven/podhaven/internal/platform/request"
	"github.com/podhaven/podhaven/internal/platform/respond"
)

// Recorder dispatches an analytics event without blocking. The feed handler
// never learns whether recording succeeded; that is the contract.
type Recorder interface {
	Record(event *analytics.Event)
}

// # Handler Implementation

// Handler serves the two public feed routes. Unlike the JSON API surface it
// responds with raw XML and plain-text errors, because its consumers are
// feed pollers and directory validators.
type Handler struct {
	assembler  *Assembler
	slugSource FeedSource
	idSource   FeedSource
	cache      Cache
	recorder   Recorder
}

// NewHandler constructs a feed [Handler]. cache and recorder may be nil,
// which disables caching and analytics respectively.
func NewHandler(assembler *Assembler, slugSource, idSource FeedSource, cache Cache, recorder Recorder) *Handler {
	return &Handler{
		assembler:  assembler,
		slugSource: slugSource,
		idSource:   idSource,
		cache:      cache,
		recorder:   recorder,
	}
}

// Register mounts the public feed routes on the root router. The slug route
// lives at the root so show URLs read as podhaven.app/{username}/{slug}/rss.
func (handler *Handler) Register(router chi.Router) {
	router.Get("/{username}/{podcastSlug}/rss", handler.ServeSlugFeed)
	router.Get("/api/rss/{podcastID}", handler.ServeIDFeed)
}

/*
GET /{username}/{podcastSlug}/rss.

Episodes render ascending by (season, episode).

Response:
  - 200: RSS document
  - 404: text/plain "User not found" or "Podcast not found"
  - 500: text/plain with the underlying store error message
*/
func (handler *Handler) ServeSlugFeed(writer http.ResponseWriter, request *http.Request) {
	params := ResolveParams{
		Username:    requestutil.Param(request, "username"),
		PodcastSlug: requestutil.Param(request, "podcastSlug"),
	}

	handler.serve(writer, request, handler.slugSource, params,
		"slug:"+params.Username+":"+params.PodcastSlug)
}

/*
GET /api/rss/{podcastID}.

Episodes render descending by publish date.
*/
func (handler *Handler) ServeIDFeed(writer http.ResponseWriter, request *http.Request) {
	params := ResolveParams{PodcastID: requestutil.Param(request, "podcastID")}

	handler.serve(writer, request, handler.idSource, params, "id:"+params.PodcastID)
}

// serve is the shared delivery path: cache check, resolve, assemble, cache
// fill, respond, and fire the analytics event.
func (handler *Handler) serve(writer http.ResponseWriter, request *http.Request, source FeedSource, params ResolveParams, cacheKey string) {
	if handler.cache != nil {
		if entry, ok := handler.cache.Get(request.Context(), cacheKey); ok {
			handler.record(request, entry.PodcastID)
			writeFeed(writer, entry.XML)
			return
		}
	}

	show, episodes, err := source.Resolve(request.Context(), params)
	if err != nil {
		respond.PlainError(writer, request, exposeStoreError(err))
		return
	}

	xml := handler.assembler.Generate(show, episodes)

	if handler.cache != nil {
		handler.cache.Set(request.Context(), cacheKey, &CachedFeed{PodcastID: show.ID, XML: xml})
	}

	handler.record(request, show.ID)
	writeFeed(writer, xml)
}

// record dispatches the best-effort rss_access event.
func (handler *Handler) record(request *http.Request, podcastID string) {
	if handler.recorder == nil {
		return
	}

	userAgent := request.Header.Get("User-Agent")

	handler.recorder.Record(&analytics.Event{
		PodcastID: podcastID,
		EventType: analytics.EventTypeRSSAccess,
		UserAgent: userAgent,
		ClientIP:  requestutil.ClientIP(request),
		Platform:  analytics.DetectPlatform(userAgent),
	})
}

// writeFeed emits the document with the feed headers. Cache-Control matches
// the Redis TTL.
func writeFeed(writer http.ResponseWriter, xml string) {
	writer.Header().Set("Content-Type", constants.FeedContentType)
	writer.Header().Set("Cache-Control", constants.FeedCacheControl)
	writer.WriteHeader(http.StatusOK)
	_, _ = writer.Write([]byte(xml))
}

// exposeStoreError unwraps 5xx resolution failures so the response body
// carries the underlying store message verbatim. Directory operators debug
// ingestion from the body alone; 4xx errors pass through untouched.
func exposeStoreError(err error) error {
	appError := apperr.As(err)
	if appError != nil && appError.HTTPStatus >= 500 && appError.Cause != nil {
		return apperr.Store(appError.Cause)
	}
	return err
}
