package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/profel/inventory-api/internal/api/shared"
	"github.com/profel/inventory-api/internal/domain"
	"github.com/profel/inventory-api/internal/service/auth"
	"github.com/profel/inventory-api/internal/store"
)

// logoutFarewell is the payload of a successful logout.
const logoutFarewell = "From Profel was successfully released."

// loginRequest is the credential payload. Phone is normalized before
// validation so formatted numbers like +998 (91) 222-33-44 pass.
type loginRequest struct {
	Phone    string `json:"phone"    validate:"required,numeric"`
	Password string `json:"password" validate:"required,min=8,max=20"`
}

// loginUser is the sanitized account projection returned with the token:
// no hash, no internal timestamps.
type loginUser struct {
	ID        int64   `json:"id"`
	FullName  string  `json:"full_name"`
	BirthDate *string `json:"birth_date"`
	Gender    int16   `json:"gender"`
	Phone     string  `json:"phone"`
	Email     *string `json:"email"`
}

// loginResponse is the success payload of POST /login.
type loginResponse struct {
	User  loginUser `json:"user"`
	Token string    `json:"token"`
}

// AuthHandler serves login and logout.
type AuthHandler struct {
	clients      store.ClientStore
	verifier     auth.PasswordVerifier
	tokenService auth.TokenService
	validator    *Validator
	logger       *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	clients store.ClientStore,
	verifier auth.PasswordVerifier,
	tokenService auth.TokenService,
	validator *Validator,
	log *slog.Logger,
) *AuthHandler {
	if log == nil {
		log = slog.Default()
	}
	return &AuthHandler{
		clients:      clients,
		verifier:     verifier,
		tokenService: tokenService,
		validator:    validator,
		logger:       log.With(slog.String("component", "auth_handler")),
	}
}

// HandleLogin serves POST /login. A successful login revokes every token
// previously issued to the client before handing out a fresh one, so at
// most one bearer token is live per account.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		shared.RespondError(w, r, http.StatusBadRequest, msgBadBody)
		return
	}
	req.Phone = domain.NormalizePhone(req.Phone)

	if violations := h.validator.Check(req); violations != nil {
		shared.RespondErrorWithViolations(w, r, http.StatusUnprocessableEntity, msgValidationError, violations)
		return
	}

	client, err := h.clients.GetByPhone(r.Context(), req.Phone)
	if err != nil {
		if errors.Is(err, store.ErrClientNotFound) {
			shared.RespondError(w, r, http.StatusUnauthorized, "Unauthorized!")
			return
		}
		h.logger.Error("failed to load client for login",
			"error", err,
			"trace_id", shared.GetTraceID(r.Context()))
		shared.RespondError(w, r, http.StatusInternalServerError, msgServerError)
		return
	}

	if err := h.verifier.Compare(client.HashedPassword, req.Password); err != nil {
		shared.RespondError(w, r, http.StatusUnauthorized, "Unauthorized!")
		return
	}

	if err := h.tokenService.RevokeAll(r.Context(), client.ID); err != nil {
		h.logger.Error("failed to revoke previous tokens",
			"error", err,
			"client_id", client.ID,
			"trace_id", shared.GetTraceID(r.Context()))
		shared.RespondError(w, r, http.StatusInternalServerError, msgServerError)
		return
	}

	token, err := h.tokenService.Issue(r.Context(), client.ID)
	if err != nil {
		h.logger.Error("failed to issue token",
			"error", err,
			"client_id", client.ID,
			"trace_id", shared.GetTraceID(r.Context()))
		shared.RespondError(w, r, http.StatusInternalServerError, msgServerError)
		return
	}

	h.logger.Info("client logged in", "client_id", client.ID)
	shared.RespondSuccess(w, r, http.StatusOK, loginResponse{
		User:  sanitizeClient(client),
		Token: token,
	}, "")
}

// HandleLogout serves POST /logout, revoking every token of the
// principal.
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	clientID, ok := getClientIDFromContext(r)
	if !ok {
		shared.RespondError(w, r, http.StatusUnauthorized, "Unauthorized!")
		return
	}

	if err := h.tokenService.RevokeAll(r.Context(), clientID); err != nil {
		h.logger.Error("failed to revoke tokens on logout",
			"error", err,
			"client_id", clientID,
			"trace_id", shared.GetTraceID(r.Context()))
		shared.RespondError(w, r, http.StatusInternalServerError, msgServerError)
		return
	}

	h.logger.Info("client logged out", "client_id", clientID)
	shared.RespondSuccess(w, r, http.StatusOK, logoutFarewell, "")
}

// sanitizeClient projects the account into its public shape.
func sanitizeClient(client *domain.Client) loginUser {
	user := loginUser{
		ID:       client.ID,
		FullName: client.FullName,
		Gender:   client.Gender,
		Phone:    client.Phone,
		Email:    client.Email,
	}
	if client.BirthDate != nil {
		formatted := client.BirthDate.Format(time.DateOnly)
		user.BirthDate = &formatted
	}
	return user
}
