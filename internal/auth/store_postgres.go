// Copyright (c) 2026 Podhaven. All rights reserved.

package auth

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/podhaven/podhaven/internal/platform/database/schema"
	"github.com/podhaven/podhaven/internal/platform/dberr"
)

// # PostgreSQL Repository

// userRepository implements the [UserRepository] interface using pgx.
type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository constructs a PostgreSQL backed account store.
func NewUserRepository(pool *pgxpool.Pool) UserRepository {
	return &userRepository{pool: pool}
}

// selectAccount is the shared column list for account hydration.
func selectAccount() string {
	t := schema.UsersAccount
	return fmt.Sprintf(`SELECT %s, %s, %s, %s, %s, %s, %s, %s FROM %s`,
		t.ID, t.Username, t.Email, t.PasswordHash, t.DisplayName, t.Role,
		t.CreatedAt, t.UpdatedAt, t.Table,
	)
}

// scanAccount hydrates a single account row.
func (repository *userRepository) findOne(context context.Context, whereColumn, value string) (*User, error) {
	query := fmt.Sprintf(`%s WHERE %s = $1`, selectAccount(), whereColumn)

	var user User
	err := repository.pool.QueryRow(context, query, value).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.DisplayName,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "User")
	}

	return &user, nil
}

// FindByID returns the account with the given ID.
func (repository *userRepository) FindByID(context context.Context, id string) (*User, error) {
	return repository.findOne(context, schema.UsersAccount.ID, id)
}

// FindByUsername returns the account with the given username.
func (repository *userRepository) FindByUsername(context context.Context, username string) (*User, error) {
	return repository.findOne(context, schema.UsersAccount.Username, username)
}

// FindByEmail returns the account with the given email address.
func (repository *userRepository) FindByEmail(context context.Context, email string) (*User, error) {
	return repository.findOne(context, schema.UsersAccount.Email, email)
}

// Create persists a new account.
func (repository *userRepository) Create(context context.Context, user *User) error {
	t := schema.UsersAccount
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, t.Table, t.ID, t.Username, t.Email, t.PasswordHash, t.DisplayName, t.Role)

	_, err := repository.pool.Exec(context, query,
		user.ID,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.DisplayName,
		user.Role,
	)
	if err != nil {
		return dberr.Wrap(err, "User")
	}

	return nil
}
