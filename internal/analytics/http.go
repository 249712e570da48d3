// Copyright (c) 2026 Podhaven. All rights reserved.

package analytics

import (
	"net/http"

	"github.com/podhaven/podhaven/internal/platform/apperr"
	requestutil "github.com/podhaven/podhaven/internal/platform/request"
	"github.com/podhaven/podhaven/internal/platform/respond"
	"github.com/podhaven/podhaven/internal/platform/sec"
	"github.com/podhaven/podhaven/internal/podcast"
)

// # Handler Implementation

// Handler implements the owner-facing analytics summary endpoint.
type Handler struct {
	eventRepo   EventRepository
	podcastRepo podcast.PodcastRepository
}

// NewHandler constructs a new analytics [Handler].
func NewHandler(eventRepo EventRepository, podcastRepo podcast.PodcastRepository) *Handler {
	return &Handler{eventRepo: eventRepo, podcastRepo: podcastRepo}
}

/*
GET /api/v1/podcasts/{podcastID}/analytics.

Response:
  - 200: []PlatformCount: Per-platform access counts, highest first
  - 403: Forbidden: Caller does not own the show
*/
func (handler *Handler) Summary(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	show, err := handler.podcastRepo.FindByID(request.Context(), requestutil.Param(request, "podcastID"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if show.OwnerID != claims.UserID && !sec.UserRole(claims.Role).AtLeast(sec.RoleAdmin) {
		respond.Error(writer, request, apperr.Forbidden("You do not own this podcast"))
		return
	}

	summary, err := handler.eventRepo.SummaryByPodcast(request.Context(), show.ID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, summary)
}
