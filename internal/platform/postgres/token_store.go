package postgres

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/profel/inventory-api/internal/domain"
	"github.com/profel/inventory-api/internal/platform/logger"
	"github.com/profel/inventory-api/internal/store"
)

// PostgresTokenStore implements the store.TokenStore interface using a
// PostgreSQL database as the storage backend.
type PostgresTokenStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTokenStore creates a new PostgreSQL implementation of the
// TokenStore interface. If logger is nil, the default logger is used.
func NewPostgresTokenStore(db store.DBTX, log *slog.Logger) *PostgresTokenStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &PostgresTokenStore{
		db:     db,
		logger: log.With(slog.String("component", "token_store")),
	}
}

// Ensure PostgresTokenStore implements store.TokenStore.
var _ store.TokenStore = (*PostgresTokenStore)(nil)

// Create implements store.TokenStore.Create.
func (s *PostgresTokenStore) Create(ctx context.Context, token *domain.AuthToken) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO auth_tokens (jti, user_id, created_at)
		VALUES ($1, $2, $3)
	`
	if _, err := s.db.ExecContext(ctx, query, token.JTI, token.ClientID, token.CreatedAt); err != nil {
		log.Error("failed to register token", slog.String("error", err.Error()), slog.Int64("client_id", token.ClientID))
		return err
	}
	return nil
}

// Exists implements store.TokenStore.Exists.
func (s *PostgresTokenStore) Exists(ctx context.Context, jti uuid.UUID) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM auth_tokens WHERE jti = $1)`, jti).
		Scan(&exists)
	return exists, err
}

// RevokeAllForClient implements store.TokenStore.RevokeAllForClient.
func (s *PostgresTokenStore) RevokeAllForClient(ctx context.Context, clientID int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := s.db.ExecContext(ctx, `DELETE FROM auth_tokens WHERE user_id = $1`, clientID); err != nil {
		log.Error("failed to revoke tokens", slog.String("error", err.Error()), slog.Int64("client_id", clientID))
		return err
	}
	return nil
}
