package auth

import "errors"

// Authentication error definitions.
var (
	// ErrInvalidToken indicates the token is malformed, has a bad
	// signature, or was signed with an unexpected method.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken indicates the token's expiry has passed.
	ErrExpiredToken = errors.New("token expired")

	// ErrRevokedToken indicates a structurally valid token whose registry
	// row was deleted by a later login or a logout.
	ErrRevokedToken = errors.New("token revoked")
)
