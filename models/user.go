// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is the identity of whoever owns the current session.
type User struct {
	// UserID is the numeric owner id sent to the diary backend as user_id.
	UserID int64 `json:"user_id"`

	// Email is the unique login of the account.
	Email string `json:"email"`

	// Name is the display name shown in the UI.
	Name string `json:"name"`
}

// Credentials is what the login and register forms collect.
// Name is only used on registration.
type Credentials struct {
	Email    string
	Password string
	Name     string
}

// Account is a locally registered user together with its password hash.
// PasswordHash is a bcrypt hash and is never serialised.
type Account struct {
	User
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// StoredSession is the persisted record of the last signed-in user.
type StoredSession struct {
	UserID     int64
	SignedInAt time.Time
}
