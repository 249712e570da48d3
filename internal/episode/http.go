// Copyright (c) 2026 Podhaven. All rights reserved.

package episode

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/podhaven/podhaven/internal/platform/middleware"
	requestutil "github.com/podhaven/podhaven/internal/platform/request"
	"github.com/podhaven/podhaven/internal/platform/respond"
	"github.com/podhaven/podhaven/internal/platform/sec"
	"github.com/podhaven/podhaven/pkg/pagination"
)

// # Handler Implementation

// Handler implements the HTTP layer for episode authoring.
type Handler struct {
	service *Service
}

// NewHandler constructs a new episode [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router mounted at /api/v1/podcasts/{podcastID}/episodes
// plus the flat /api/v1/episodes/{episodeID} item routes.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Use(middleware.RequireAuth)
	router.Use(middleware.RequireRole(sec.RoleHost))

	router.Get("/", handler.List)
	router.Post("/", handler.Create)

	return router
}

// ItemRoutes returns the router for /api/v1/episodes.
func (handler *Handler) ItemRoutes() chi.Router {
	router := chi.NewRouter()

	router.Use(middleware.RequireAuth)
	router.Use(middleware.RequireRole(sec.RoleHost))

	router.Get("/{episodeID}", handler.Get)
	router.Put("/{episodeID}", handler.Update)
	router.Delete("/{episodeID}", handler.Delete)

	return router
}

// episodeRequest defines the inbound JSON schema for episode authoring.
type episodeRequest struct {
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	AudioURL      string  `json:"audio_url"`
	FileSize      *int64  `json:"file_size"`
	Duration      *int    `json:"duration"`
	PublishDate   string  `json:"publish_date"`
	Status        string  `json:"status"`
	SeasonNumber  *string `json:"season_number"`
	EpisodeNumber *string `json:"episode_number"`
	IsExplicit    bool    `json:"is_explicit"`
}

// toEpisode maps the request body onto an entity. An unparsable publish date
// is left zero for the service layer to default.
func (input *episodeRequest) toEpisode() *Episode {
	episode := &Episode{
		Title:         input.Title,
		Description:   input.Description,
		AudioURL:      input.AudioURL,
		FileSize:      input.FileSize,
		Duration:      input.Duration,
		Status:        Status(input.Status),
		SeasonNumber:  input.SeasonNumber,
		EpisodeNumber: input.EpisodeNumber,
		IsExplicit:    input.IsExplicit,
	}

	if parsed, err := time.Parse(time.RFC3339, input.PublishDate); err == nil {
		episode.PublishDate = parsed
	}

	return episode
}

/*
POST /api/v1/podcasts/{podcastID}/episodes.

Response:
  - 201: Episode: Created episode
  - 400: Validation: Invalid metadata or rejected numbering
  - 403: Forbidden: Caller does not own the show
*/
func (handler *Handler) Create(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input episodeRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	episode := input.toEpisode()
	episode.PodcastID = requestutil.Param(request, "podcastID")

	if err := handler.service.CreateEpisode(request.Context(), episode, claims.UserID, sec.UserRole(claims.Role)); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, episode)
}

/*
GET /api/v1/podcasts/{podcastID}/episodes.

Response:
  - 200: []Episode: The show's episodes, any status, newest first
*/
func (handler *Handler) List(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	params := pagination.FromRequest(request)
	podcastID := requestutil.Param(request, "podcastID")

	episodes, total, err := handler.service.ListEpisodes(request.Context(), podcastID, claims.UserID, sec.UserRole(claims.Role), params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, episodes, pagination.NewMeta(params.Page, params.Limit, total))
}

/*
GET /api/v1/episodes/{episodeID}.
*/
func (handler *Handler) Get(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	episode, err := handler.service.GetEpisode(request.Context(), requestutil.Param(request, "episodeID"), claims.UserID, sec.UserRole(claims.Role))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, episode)
}

/*
PUT /api/v1/episodes/{episodeID}.

Response:
  - 200: Episode: Updated episode
  - 400: Validation: Invalid metadata or rejected numbering
*/
func (handler *Handler) Update(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input episodeRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	episode := input.toEpisode()
	episode.ID = requestutil.Param(request, "episodeID")

	if err := handler.service.UpdateEpisode(request.Context(), episode, claims.UserID, sec.UserRole(claims.Role)); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, episode)
}

/*
DELETE /api/v1/episodes/{episodeID}.
*/
func (handler *Handler) Delete(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	id := requestutil.Param(request, "episodeID")
	if err := handler.service.DeleteEpisode(request.Context(), id, claims.UserID, sec.UserRole(claims.Role)); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
