package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/profel/inventory-api/internal/api/shared"
	"github.com/profel/inventory-api/internal/service/auth"
)

// unauthorizedMessage is the envelope message for every rejected
// credential, matching the login failure response.
const unauthorizedMessage = "Unauthorized!"

// AuthMiddleware provides bearer-token authentication for routes.
type AuthMiddleware struct {
	tokenService auth.TokenService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(tokenService auth.TokenService) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
	}
}

// Authenticate validates bearer tokens from the Authorization header and
// adds the client id to the request context for authorized requests.
// Missing, malformed, expired and revoked tokens all yield the same 401
// envelope.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			shared.RespondError(w, r, http.StatusUnauthorized, unauthorizedMessage)
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			shared.RespondError(w, r, http.StatusUnauthorized, unauthorizedMessage)
			return
		}

		claims, err := m.tokenService.Validate(r.Context(), parts[1])
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrExpiredToken),
				errors.Is(err, auth.ErrInvalidToken),
				errors.Is(err, auth.ErrRevokedToken):
				shared.RespondError(w, r, http.StatusUnauthorized, unauthorizedMessage)
			default:
				slog.Error("failed to validate token",
					"error", err,
					"trace_id", shared.GetTraceID(r.Context()))
				shared.RespondError(w, r, http.StatusInternalServerError, "Authentication error!")
			}
			return
		}

		ctx := shared.SetClientID(r.Context(), claims.ClientID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
