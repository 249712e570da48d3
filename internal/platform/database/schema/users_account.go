// Copyright (c) 2026 Podhaven. All rights reserved.

// Package schema centralizes table and column identifiers for every relation
// in the Podhaven database. Repositories build their SQL from these constants
// so a rename touches exactly one file.
package schema

// UsersAccountTable represents the 'users.account' table
type UsersAccountTable struct {
	Table        string
	ID           string
	Username     string
	Email        string
	PasswordHash string
	DisplayName  string
	Role         string
	CreatedAt    string
	UpdatedAt    string
}

// UsersAccount is the schema definition for users.account
var UsersAccount = UsersAccountTable{
	Table:        "users.account",
	ID:           "id",
	Username:     "username",
	Email:        "email",
	PasswordHash: "passwordhash",
	DisplayName:  "displayname",
	Role:         "role",
	CreatedAt:    "createdat",
	UpdatedAt:    "updatedat",
}
