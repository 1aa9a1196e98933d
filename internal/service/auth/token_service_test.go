package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/profel/inventory-api/internal/config"
	"github.com/profel/inventory-api/internal/domain"
)

// fakeTokenStore is an in-memory TokenStore for exercising the service
// without a database.
type fakeTokenStore struct {
	rows map[uuid.UUID]int64
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{rows: make(map[uuid.UUID]int64)}
}

func (s *fakeTokenStore) Create(_ context.Context, token *domain.AuthToken) error {
	s.rows[token.JTI] = token.ClientID
	return nil
}

func (s *fakeTokenStore) Exists(_ context.Context, jti uuid.UUID) (bool, error) {
	_, ok := s.rows[jti]
	return ok, nil
}

func (s *fakeTokenStore) RevokeAllForClient(_ context.Context, clientID int64) error {
	for jti, owner := range s.rows {
		if owner == clientID {
			delete(s.rows, jti)
		}
	}
	return nil
}

func newTestService(t *testing.T, tokens *fakeTokenStore) *hmacTokenService {
	t.Helper()
	svc, err := NewTokenService(config.AuthConfig{
		JWTSecret:            "test-secret-thirty-two-chars-long!!",
		TokenLifetimeMinutes: 60,
	}, tokens)
	require.NoError(t, err)
	return svc.(*hmacTokenService)
}

func TestNewTokenServiceRejectsShortSecret(t *testing.T) {
	_, err := NewTokenService(config.AuthConfig{
		JWTSecret:            "too-short",
		TokenLifetimeMinutes: 60,
	}, newFakeTokenStore())
	assert.Error(t, err)
}

func TestIssueAndValidate(t *testing.T) {
	tokens := newFakeTokenStore()
	svc := newTestService(t, tokens)
	ctx := context.Background()

	token, err := svc.Issue(ctx, 42)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Len(t, tokens.rows, 1)

	claims, err := svc.Validate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.ClientID)
	_, registered := tokens.rows[claims.JTI]
	assert.True(t, registered)
}

func TestValidateRejectsGarbage(t *testing.T) {
	svc := newTestService(t, newFakeTokenStore())

	_, err := svc.Validate(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRejectsWrongKey(t *testing.T) {
	tokens := newFakeTokenStore()
	svc := newTestService(t, tokens)

	other, err := NewTokenService(config.AuthConfig{
		JWTSecret:            "another-secret-thirty-two-chars!!!!!",
		TokenLifetimeMinutes: 60,
	}, tokens)
	require.NoError(t, err)

	token, err := other.Issue(context.Background(), 7)
	require.NoError(t, err)

	_, err = svc.Validate(context.Background(), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	tokens := newFakeTokenStore()
	svc := newTestService(t, tokens)

	issuedAt := time.Now()
	svc.timeFunc = func() time.Time { return issuedAt }

	token, err := svc.Issue(context.Background(), 42)
	require.NoError(t, err)

	// Past the lifetime plus the allowed clock skew.
	svc.timeFunc = func() time.Time {
		return issuedAt.Add(svc.tokenLifetime + svc.clockSkew + time.Minute)
	}

	_, err = svc.Validate(context.Background(), token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateRejectsRevokedToken(t *testing.T) {
	tokens := newFakeTokenStore()
	svc := newTestService(t, tokens)
	ctx := context.Background()

	token, err := svc.Issue(ctx, 42)
	require.NoError(t, err)

	require.NoError(t, svc.RevokeAll(ctx, 42))

	_, err = svc.Validate(ctx, token)
	assert.ErrorIs(t, err, ErrRevokedToken)
}

func TestRevokeAllOnlyTouchesOneClient(t *testing.T) {
	tokens := newFakeTokenStore()
	svc := newTestService(t, tokens)
	ctx := context.Background()

	mine, err := svc.Issue(ctx, 1)
	require.NoError(t, err)
	theirs, err := svc.Issue(ctx, 2)
	require.NoError(t, err)

	require.NoError(t, svc.RevokeAll(ctx, 1))

	_, err = svc.Validate(ctx, mine)
	assert.ErrorIs(t, err, ErrRevokedToken)

	_, err = svc.Validate(ctx, theirs)
	assert.NoError(t, err)
}
