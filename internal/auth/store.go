// Copyright (c) 2026 Podhaven. All rights reserved.

package auth

import "context"

// # Account Data Access

// UserRepository defines the data access contract for user accounts.
type UserRepository interface {

	/*
		FindByID returns the account with the given ID.

		Parameters:
		  - context: context.Context
		  - id: string (UUID)

		Returns:
		  - *User: Hydrated account
		  - error: apperr.NotFound if missing
	*/
	FindByID(context context.Context, id string) (*User, error)

	/*
		FindByUsername returns the account with the given username.

		The feed resolver uses this lookup for the public
		/{username}/{slug}/rss route.
	*/
	FindByUsername(context context.Context, username string) (*User, error)

	/*
		FindByEmail returns the account with the given email address.
	*/
	FindByEmail(context context.Context, email string) (*User, error)

	/*
		Create persists a new account.
	*/
	Create(context context.Context, user *User) error
}
