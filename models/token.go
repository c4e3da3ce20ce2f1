package models

import "github.com/golang-jwt/jwt/v5"

// Token wraps a signed JWT issued for a device that owns one or more
// changelog scopes on the remote.
type Token struct {
	// Token is the underlying parsed or freshly signed JWT.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS form sent in the Authorization header.
	SignedString string `json:"token"`

	// OwnerID is the "sub" claim: the account whose rows the bearer may touch.
	OwnerID string `json:"-"`
}
