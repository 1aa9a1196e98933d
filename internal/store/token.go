package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/profel/inventory-api/internal/domain"
)

// TokenStore defines the interface for the bearer-token registry.
// A token is valid only while its jti has a row here; revocation is row
// deletion.
type TokenStore interface {
	// Create registers a freshly issued token.
	Create(ctx context.Context, token *domain.AuthToken) error

	// Exists reports whether the jti is still registered (not revoked).
	Exists(ctx context.Context, jti uuid.UUID) (bool, error)

	// RevokeAllForClient deletes every token of the client. Deleting zero
	// rows is not an error.
	RevokeAllForClient(ctx context.Context, clientID int64) error
}
