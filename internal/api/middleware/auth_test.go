package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/profel/inventory-api/internal/api/shared"
	"github.com/profel/inventory-api/internal/service/auth"
)

type stubTokenService struct {
	clientID    int64
	validateErr error
	seenToken   string
}

func (s *stubTokenService) Issue(ctx context.Context, clientID int64) (string, error) {
	return "", errors.New("not implemented")
}

func (s *stubTokenService) Validate(ctx context.Context, token string) (*auth.Claims, error) {
	s.seenToken = token
	if s.validateErr != nil {
		return nil, s.validateErr
	}
	return &auth.Claims{ClientID: s.clientID}, nil
}

func (s *stubTokenService) RevokeAll(ctx context.Context, clientID int64) error {
	return errors.New("not implemented")
}

func runAuthenticated(t *testing.T, tokens *stubTokenService, header string) (*httptest.ResponseRecorder, int64, bool) {
	t.Helper()

	var (
		gotID int64
		gotOK bool
	)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, gotOK = shared.GetClientID(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/clients", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	NewAuthMiddleware(tokens).Authenticate(next).ServeHTTP(rec, req)
	return rec, gotID, gotOK
}

func assertUnauthorized(t *testing.T, rec *httptest.ResponseRecorder) {
	t.Helper()

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	var env struct {
		Status  bool    `json:"status"`
		Message *string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.False(t, env.Status)
	require.NotNil(t, env.Message)
	assert.Equal(t, "Unauthorized!", *env.Message)
}

func TestAuthenticate(t *testing.T) {
	t.Run("places the client id in the context for a valid token", func(t *testing.T) {
		tokens := &stubTokenService{clientID: 42}

		rec, gotID, gotOK := runAuthenticated(t, tokens, "Bearer valid.jwt.token")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, gotOK)
		assert.Equal(t, int64(42), gotID)
		assert.Equal(t, "valid.jwt.token", tokens.seenToken)
	})

	t.Run("rejects a missing header", func(t *testing.T) {
		rec, _, gotOK := runAuthenticated(t, &stubTokenService{}, "")

		assertUnauthorized(t, rec)
		assert.False(t, gotOK)
	})

	t.Run("rejects a non-bearer scheme", func(t *testing.T) {
		rec, _, _ := runAuthenticated(t, &stubTokenService{}, "Basic dXNlcjpwYXNz")

		assertUnauthorized(t, rec)
	})

	t.Run("rejects a bare token without a scheme", func(t *testing.T) {
		rec, _, _ := runAuthenticated(t, &stubTokenService{}, "just-a-token")

		assertUnauthorized(t, rec)
	})

	t.Run("rejects invalid, expired and revoked tokens alike", func(t *testing.T) {
		for _, tokenErr := range []error{auth.ErrInvalidToken, auth.ErrExpiredToken, auth.ErrRevokedToken} {
			rec, _, gotOK := runAuthenticated(t, &stubTokenService{validateErr: tokenErr}, "Bearer bad.token")

			assertUnauthorized(t, rec)
			assert.False(t, gotOK)
		}
	})

	t.Run("maps an unexpected validation failure to a 500", func(t *testing.T) {
		tokens := &stubTokenService{validateErr: errors.New("registry down")}

		rec, _, _ := runAuthenticated(t, tokens, "Bearer some.token")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		var env struct {
			Message *string `json:"message"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
		require.NotNil(t, env.Message)
		assert.Equal(t, "Authentication error!", *env.Message)
	})
}
