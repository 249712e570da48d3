// Copyright (c) 2026 Podhaven. All rights reserved.

// Package auth implements account registration and login for the Podhaven
// dashboard.
//
// # Architecture
//
// Entities in this package represent registered users. They have no
// dependencies on outer layers (databases, HTTP); persistence is reached
// through the [UserRepository] interface.
package auth

import (
	"time"

	"github.com/podhaven/podhaven/internal/platform/sec"
)

// User represents a registered member of the Podhaven platform.
//
// # Rules
//   - Username is unique and URL-safe: it is the first segment of every
//     public feed URL (/{username}/{slug}/rss).
//   - Email is unique and validated.
//   - PasswordHash is generated via bcrypt exclusively via the auth Service.
type User struct {
	ID           string       `json:"id"`
	Username     string       `json:"username"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"` // Explicitly omitted from JSON for security.
	DisplayName  string       `json:"display_name"`
	Role         sec.UserRole `json:"role"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}
