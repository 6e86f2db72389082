// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/golang-jwt/jwt/v5"

// Token is a signed session token used between the journal client and the
// correction proxy.
//
// SignedString is the compact JWS form sent in the Authorization header.
// UserID is the parsed "sub" claim and is only filled after validation.
type Token struct {
	*jwt.Token `json:"-"`

	SignedString string `json:"-"`
	UserID       int64  `json:"-"`
}

// String returns the compact serialisation of the token.
func (t Token) String() string {
	return t.SignedString
}
