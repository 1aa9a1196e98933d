package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/profel/inventory-api/internal/domain"
	"github.com/profel/inventory-api/internal/service/auth"
	"github.com/profel/inventory-api/internal/store"
)

// CreateClientInput carries a validated client creation payload. Phone
// is already normalized to digits.
type CreateClientInput struct {
	FullName  string
	BirthDate *time.Time
	Gender    int16
	Phone     string
	Email     *string
	Password  string
}

// UpdateClientInput carries a partial client update. Nil fields were
// absent from the payload.
type UpdateClientInput struct {
	FullName  *string
	BirthDate *time.Time
	Gender    *int16
	Phone     *string
	Email     *string
	Password  *string
}

// ClientService implements client business logic on top of the store.
type ClientService struct {
	clients store.ClientStore
	hasher  auth.PasswordHasher
	logger  *slog.Logger
}

// NewClientService creates a ClientService with its dependencies.
func NewClientService(clients store.ClientStore, hasher auth.PasswordHasher, log *slog.Logger) *ClientService {
	if clients == nil {
		panic("clients store cannot be nil")
	}
	if hasher == nil {
		panic("password hasher cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &ClientService{
		clients: clients,
		hasher:  hasher,
		logger:  log.With(slog.String("component", "client_service")),
	}
}

// List returns one page of clients.
func (s *ClientService) List(ctx context.Context, req store.PageRequest) (*store.Page[store.ClientRow], error) {
	return s.clients.List(ctx, req)
}

// Create registers a new client after checking the phone is unused, and
// returns the generated id.
func (s *ClientService) Create(ctx context.Context, in CreateClientInput) (int64, error) {
	taken, err := s.clients.PhoneExists(ctx, in.Phone, 0)
	if err != nil {
		return 0, fmt.Errorf("failed to check phone uniqueness: %w", err)
	}
	if taken {
		violations := domain.FieldViolations{}
		violations.Add("phone", msgPhoneTaken)
		return 0, domain.NewValidationError(violations)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return 0, fmt.Errorf("failed to hash password: %w", err)
	}

	id, err := s.clients.Create(ctx, &domain.Client{
		FullName:       in.FullName,
		BirthDate:      in.BirthDate,
		Gender:         in.Gender,
		Phone:          in.Phone,
		Email:          in.Email,
		HashedPassword: hash,
	})
	if err != nil {
		if store.IsDuplicateError(err) {
			// Lost the race between the uniqueness check and the insert.
			violations := domain.FieldViolations{}
			violations.Add("phone", msgPhoneTaken)
			return 0, domain.NewValidationError(violations)
		}
		return 0, err
	}
	return id, nil
}

// Get returns one client projection, or nil when absent.
func (s *ClientService) Get(ctx context.Context, id int64) (*store.ClientRow, error) {
	return s.clients.GetByID(ctx, id)
}

// Update applies a partial update. The id must name an existing client
// and a new phone must not collide with another record.
func (s *ClientService) Update(ctx context.Context, id int64, in UpdateClientInput) error {
	exists, err := s.clients.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check client existence: %w", err)
	}
	if !exists {
		violations := domain.FieldViolations{}
		violations.Add("id", msgIDInvalid)
		return domain.NewValidationError(violations)
	}

	if in.Phone != nil {
		taken, err := s.clients.PhoneExists(ctx, *in.Phone, id)
		if err != nil {
			return fmt.Errorf("failed to check phone uniqueness: %w", err)
		}
		if taken {
			violations := domain.FieldViolations{}
			violations.Add("phone", msgPhoneTaken)
			return domain.NewValidationError(violations)
		}
	}

	patch := store.ClientPatch{
		FullName:  in.FullName,
		BirthDate: in.BirthDate,
		Gender:    in.Gender,
		Phone:     in.Phone,
		Email:     in.Email,
	}
	if in.Password != nil {
		hash, err := s.hasher.Hash(*in.Password)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}
		patch.HashedPassword = &hash
	}

	if patch.IsEmpty() {
		return ErrNoChanges
	}

	return s.clients.Update(ctx, id, patch)
}

// Delete removes the client. Returns store.ErrClientNotFound when absent.
func (s *ClientService) Delete(ctx context.Context, id int64) error {
	return s.clients.Delete(ctx, id)
}
