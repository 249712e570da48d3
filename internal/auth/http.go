// Copyright (c) 2026 Podhaven. All rights reserved.

package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/podhaven/podhaven/internal/platform/middleware"
	requestutil "github.com/podhaven/podhaven/internal/platform/request"
	"github.com/podhaven/podhaven/internal/platform/respond"
)

// # Handler Implementation

// Handler implements the HTTP layer for authentication.
type Handler struct {
	service *Service
}

// NewHandler constructs a new auth [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for /api/v1/auth.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/register", handler.Register)
	router.Post("/login", handler.Login)

	router.Group(func(authed chi.Router) {
		authed.Use(middleware.RequireAuth)
		authed.Get("/me", handler.Me)
	})

	return router
}

// registerRequest defines the inbound JSON schema for account creation.
type registerRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

/*
POST /api/v1/auth/register.

Response:
  - 201: User: Created account
  - 400: Validation: Invalid payload
  - 409: Conflict: Username or email already taken
*/
func (handler *Handler) Register(writer http.ResponseWriter, request *http.Request) {
	var input registerRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.service.Register(request.Context(), RegisterInput{
		Username:    input.Username,
		Email:       input.Email,
		Password:    input.Password,
		DisplayName: input.DisplayName,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, user)
}

// loginRequest defines the inbound JSON schema for authentication.
type loginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

/*
POST /api/v1/auth/login.

Response:
  - 200: LoginResult: Access token + account
  - 401: Unauthorized: Invalid credentials
*/
func (handler *Handler) Login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.Login(request.Context(), LoginInput{
		Login:    input.Login,
		Password: input.Password,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, result)
}

/*
GET /api/v1/auth/me.

Response:
  - 200: User: The authenticated account
  - 401: Unauthorized: Login required
*/
func (handler *Handler) Me(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.service.Me(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, user)
}
