// Copyright (c) 2026 Podhaven. All rights reserved.

package podcast

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/podhaven/podhaven/internal/platform/apperr"
	"github.com/podhaven/podhaven/internal/platform/middleware"
	requestutil "github.com/podhaven/podhaven/internal/platform/request"
	"github.com/podhaven/podhaven/internal/platform/respond"
	"github.com/podhaven/podhaven/internal/platform/sec"
	"github.com/podhaven/podhaven/pkg/pagination"
)

// # Handler Implementation

// Handler implements the HTTP layer for show management.
type Handler struct {
	service *Service
}

// NewHandler constructs a new podcast [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for /api/v1/podcasts.
//
// All routes require authentication and the host role: the dashboard is for
// show owners, not listeners.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Use(middleware.RequireAuth)
	router.Use(middleware.RequireRole(sec.RoleHost))

	router.Get("/", handler.List)
	router.Post("/", handler.Create)
	router.Get("/{podcastID}", handler.Get)
	router.Put("/{podcastID}", handler.Update)
	router.Delete("/{podcastID}", handler.Delete)

	return router
}

// podcastRequest defines the inbound JSON schema for show metadata.
type podcastRequest struct {
	PodcastName string   `json:"podcast_name"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	AuthorName  string   `json:"author_name"`
	Email       string   `json:"email"`
	WebsiteURL  string   `json:"website_url"`
	ArtworkURL  string   `json:"artwork_url"`
	Language    string   `json:"language"`
	IsExplicit  bool     `json:"is_explicit"`
	Categories  []string `json:"categories"`
}

/*
POST /api/v1/podcasts.

Response:
  - 201: Podcast: Created show
  - 400: Validation: Invalid metadata
  - 409: Conflict: Slug already taken by another of the owner's shows
*/
func (handler *Handler) Create(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input podcastRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	podcast := &Podcast{
		OwnerID:     claims.UserID,
		PodcastName: input.PodcastName,
		Title:       input.Title,
		Description: input.Description,
		AuthorName:  input.AuthorName,
		Email:       input.Email,
		WebsiteURL:  input.WebsiteURL,
		ArtworkURL:  input.ArtworkURL,
		Language:    input.Language,
		IsExplicit:  input.IsExplicit,
		Categories:  input.Categories,
	}

	if err := handler.service.CreatePodcast(request.Context(), podcast); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, podcast)
}

/*
GET /api/v1/podcasts.

Response:
  - 200: []Podcast: The caller's shows, newest first, paginated
*/
func (handler *Handler) List(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	params := pagination.FromRequest(request)

	podcasts, total, err := handler.service.ListPodcasts(request.Context(), claims.UserID, params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, podcasts, pagination.NewMeta(params.Page, params.Limit, total))
}

/*
GET /api/v1/podcasts/{podcastID}.

Response:
  - 200: Podcast: The show
  - 404: NotFound: Unknown ID, or a show the caller cannot see
*/
func (handler *Handler) Get(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	podcast, err := handler.service.GetPodcast(request.Context(), requestutil.Param(request, "podcastID"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Hide other owners' shows rather than admit they exist.
	if podcast.OwnerID != claims.UserID && !sec.UserRole(claims.Role).AtLeast(sec.RoleAdmin) {
		respond.Error(writer, request, apperr.NotFound("Podcast"))
		return
	}

	respond.OK(writer, podcast)
}

/*
PUT /api/v1/podcasts/{podcastID}.

Response:
  - 200: Podcast: Updated show
  - 400: Validation: Invalid metadata
  - 403: Forbidden: Caller does not own the show
*/
func (handler *Handler) Update(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input podcastRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	podcast := &Podcast{
		ID:          requestutil.Param(request, "podcastID"),
		PodcastName: input.PodcastName,
		Title:       input.Title,
		Description: input.Description,
		AuthorName:  input.AuthorName,
		Email:       input.Email,
		WebsiteURL:  input.WebsiteURL,
		ArtworkURL:  input.ArtworkURL,
		Language:    input.Language,
		IsExplicit:  input.IsExplicit,
		Categories:  input.Categories,
	}

	if err := handler.service.UpdatePodcast(request.Context(), podcast, claims.UserID, sec.UserRole(claims.Role)); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, podcast)
}

/*
DELETE /api/v1/podcasts/{podcastID}.

Response:
  - 204: NoContent: Show and episodes removed
  - 403: Forbidden: Caller does not own the show
*/
func (handler *Handler) Delete(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	id := requestutil.Param(request, "podcastID")
	if err := handler.service.DeletePodcast(request.Context(), id, claims.UserID, sec.UserRole(claims.Role)); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
