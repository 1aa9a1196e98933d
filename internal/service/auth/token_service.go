package auth

import (
	"context"

	"github.com/google/uuid"
)

// Claims represents the verified identity carried by a bearer token.
type Claims struct {
	ClientID int64
	JTI      uuid.UUID
}

// TokenService issues and validates the opaque bearer tokens handed out
// at login. Tokens are signed JWTs backed by a registry row; deleting the
// row revokes the token regardless of its expiry.
type TokenService interface {
	// Issue creates a signed token for the client and registers its jti.
	Issue(ctx context.Context, clientID int64) (string, error)

	// Validate checks the token's signature and expiry, then requires a
	// live registry row. Returns ErrInvalidToken, ErrExpiredToken or
	// ErrRevokedToken accordingly.
	Validate(ctx context.Context, token string) (*Claims, error)

	// RevokeAll deletes every registered token of the client.
	RevokeAll(ctx context.Context, clientID int64) error
}
