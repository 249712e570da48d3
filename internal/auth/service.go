// Copyright (c) 2026 Podhaven. All rights reserved.

package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/podhaven/podhaven/internal/platform/apperr"
	"github.com/podhaven/podhaven/internal/platform/sec"
	"github.com/podhaven/podhaven/internal/platform/validate"
	"github.com/podhaven/podhaven/pkg/uuidv7"
)

// accessTokenTTL keeps the leak window small; clients simply log in again.
const accessTokenTTL = 12 * time.Hour

// TokenProvider defines the contract for generating security tokens.
type TokenProvider interface {
	// GenerateAccessToken creates a signed JWT string for the given user.
	GenerateAccessToken(userID, username, role string, timeToLive time.Duration) (string, error)
}

// Service implements user authentication use cases.
type Service struct {
	userRepository UserRepository
	tokenProvider  TokenProvider
}

// NewService constructs a new auth [Service] with necessary dependencies.
func NewService(userRepo UserRepository, tokenProv TokenProvider) *Service {
	return &Service{
		userRepository: userRepo,
		tokenProvider:  tokenProv,
	}
}

// RegisterInput holds the data required to enroll a new member.
type RegisterInput struct {
	Username    string
	Email       string
	Password    string
	DisplayName string
}

/*
Register validates, hashes, and persists a brand new user account.

Description: Usernames become the first path segment of public feed URLs,
so they are held to the same slug pattern as show names.

Parameters:
  - context: context.Context
  - input: RegisterInput

Returns:
  - *User: The newly created account
  - error: apperr.Conflict if email or username already exists
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*User, error) {

	// Business attribute validation
	v := &validate.Validator{}
	v.Required("username", input.Username)
	v.Slug("username", input.Username)
	v.Email("email", input.Email)
	v.Custom("password", len(input.Password) < 8, "Minimum 8 characters")

	if err := v.Err(); err != nil {
		return nil, err
	}

	// Uniqueness checks. Return a client-safe Conflict error.
	if _, err := service.userRepository.FindByEmail(context, input.Email); err == nil {
		return nil, apperr.Conflict("Email is already registered")
	}

	if _, err := service.userRepository.FindByUsername(context, input.Username); err == nil {
		return nil, apperr.Conflict("Username is already taken")
	}

	// Prevent storing plain-text passwords.
	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	user := &User{
		ID:           uuidv7.New(), // Time-sortable ID to prevent PG index fragmentation.
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		DisplayName:  input.DisplayName,
		Role:         sec.RoleHost, // Every registered user may create shows.
	}

	if err := service.userRepository.Create(context, user); err != nil {
		return nil, fmt.Errorf("auth_service_register_failed: %w", err)
	}

	return user, nil
}

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Login    string // Can be Username or Email
	Password string
}

// LoginResult represents a successfully authenticated session.
type LoginResult struct {
	AccessToken string `json:"access_token"`
	User        *User  `json:"user"`
}

/*
Login validates user credentials and issues an access token.

Flow:
 1. Lookup user by login (email or username).
 2. Verify password hash using bcrypt.
 3. Generate a signed JWT access token.

Returns:
  - *LoginResult: Token and account
  - error: apperr.Unauthorized if credentials do not match
*/
func (service *Service) Login(context context.Context, input LoginInput) (*LoginResult, error) {

	// We support flexible login, allowing the user to use either Email or Username.
	user, err := service.userRepository.FindByEmail(context, input.Login)
	if err != nil {
		user, err = service.userRepository.FindByUsername(context, input.Login)
	}

	// Return generic unauthorized error to prevent username enumeration attacks.
	if err != nil {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	// bcrypt comparison is constant-time, mitigating timing attacks.
	if !sec.CheckPasswordHash(input.Password, user.PasswordHash) {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	accessToken, err := service.tokenProvider.GenerateAccessToken(user.ID, user.Username, string(user.Role), accessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	return &LoginResult{
		AccessToken: accessToken,
		User:        user,
	}, nil
}

// Me returns the account behind an authenticated request's claims.
func (service *Service) Me(context context.Context, userID string) (*User, error) {
	return service.userRepository.FindByID(context, userID)
}
