package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/profel/inventory-api/internal/config"
	"github.com/profel/inventory-api/internal/domain"
	"github.com/profel/inventory-api/internal/platform/logger"
	"github.com/profel/inventory-api/internal/store"
)

// hmacTokenService is an implementation of TokenService using HMAC-SHA
// signing plus a database-backed revocation registry.
type hmacTokenService struct {
	signingKey    []byte
	tokenLifetime time.Duration
	tokens        store.TokenStore
	timeFunc      func() time.Time // injectable for testing
	clockSkew     time.Duration    // allowed drift when validating time claims
}

// tokenClaims defines the structure of the JWT claims in use.
type tokenClaims struct {
	ClientID int64 `json:"cid"`
	jwt.RegisteredClaims
}

// Ensure hmacTokenService implements TokenService.
var _ TokenService = (*hmacTokenService)(nil)

// NewTokenService creates a TokenService using HMAC-SHA256 signing.
func NewTokenService(cfg config.AuthConfig, tokens store.TokenStore) (TokenService, error) {
	if len(cfg.JWTSecret) < 32 {
		return nil, fmt.Errorf("jwt secret must be at least 32 characters")
	}

	return &hmacTokenService{
		signingKey:    []byte(cfg.JWTSecret),
		tokenLifetime: time.Duration(cfg.TokenLifetimeMinutes) * time.Minute,
		tokens:        tokens,
		timeFunc:      time.Now,
		clockSkew:     2 * time.Minute,
	}, nil
}

// Issue creates a signed token with a fresh jti and registers it so it
// can later be revoked.
func (s *hmacTokenService) Issue(ctx context.Context, clientID int64) (string, error) {
	log := logger.FromContext(ctx)
	now := s.timeFunc()
	jti := uuid.New()

	claims := tokenClaims{
		ClientID: clientID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(clientID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenLifetime)),
			ID:        jti.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.signingKey)
	if err != nil {
		log.Error("failed to sign bearer token", "error", err, "client_id", clientID)
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	if err := s.tokens.Create(ctx, &domain.AuthToken{
		JTI:       jti,
		ClientID:  clientID,
		CreatedAt: now,
	}); err != nil {
		log.Error("failed to register bearer token", "error", err, "client_id", clientID)
		return "", fmt.Errorf("failed to register token: %w", err)
	}

	return signed, nil
}

// Validate parses and verifies the token, then checks its jti is still
// registered.
func (s *hmacTokenService) Validate(ctx context.Context, tokenString string) (*Claims, error) {
	now := s.timeFunc()

	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithLeeway(s.clockSkew),
		jwt.WithTimeFunc(func() time.Time { return now }),
	}

	var claims tokenClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		return s.signingKey, nil
	}, parserOpts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	jti, err := uuid.Parse(claims.ID)
	if err != nil {
		return nil, ErrInvalidToken
	}

	registered, err := s.tokens.Exists(ctx, jti)
	if err != nil {
		return nil, fmt.Errorf("failed to check token registry: %w", err)
	}
	if !registered {
		return nil, ErrRevokedToken
	}

	return &Claims{ClientID: claims.ClientID, JTI: jti}, nil
}

// RevokeAll deletes every registered token of the client, invalidating
// all previously issued bearer tokens at once.
func (s *hmacTokenService) RevokeAll(ctx context.Context, clientID int64) error {
	return s.tokens.RevokeAllForClient(ctx, clientID)
}
