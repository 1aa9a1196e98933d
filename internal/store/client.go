package store

import (
	"context"
	"time"

	"github.com/profel/inventory-api/internal/domain"
)

// ClientRow is the projection returned by client listings and reads:
// the public fields only, never the password hash or timestamps.
type ClientRow struct {
	FullName  string  `json:"full_name"`
	BirthDate *string `json:"birth_date"`
	Gender    int16   `json:"gender"`
	Phone     string  `json:"phone"`
	Email     *string `json:"email"`
}

// ClientPatch carries the fields of a partial client update. A nil field
// was absent from the payload and is left untouched; a non-nil field is
// applied even when it holds a zero value.
type ClientPatch struct {
	FullName       *string
	BirthDate      *time.Time
	Gender         *int16
	Phone          *string
	Email          *string
	HashedPassword *string
}

// IsEmpty reports whether the patch changes nothing.
func (p ClientPatch) IsEmpty() bool {
	return p.FullName == nil && p.BirthDate == nil && p.Gender == nil &&
		p.Phone == nil && p.Email == nil && p.HashedPassword == nil
}

// ClientStore defines the interface for client persistence.
type ClientStore interface {
	// List returns one page of client projections ordered by id.
	List(ctx context.Context, req PageRequest) (*Page[ClientRow], error)

	// Create inserts a new client with server-set timestamps and returns
	// the generated id. Returns ErrPhoneExists on a phone collision.
	Create(ctx context.Context, client *domain.Client) (int64, error)

	// GetByID returns the projection for one client, or nil when absent.
	GetByID(ctx context.Context, id int64) (*ClientRow, error)

	// GetByPhone returns the full client record (including the password
	// hash) for credential checks. Returns ErrClientNotFound when absent.
	GetByPhone(ctx context.Context, phone string) (*domain.Client, error)

	// Exists reports whether a client with the given id exists.
	Exists(ctx context.Context, id int64) (bool, error)

	// PhoneExists reports whether another client already holds the phone.
	// excludeID skips the record being updated; pass 0 on create.
	PhoneExists(ctx context.Context, phone string, excludeID int64) (bool, error)

	// Update applies the patch and touches updated_at.
	// Returns ErrClientNotFound when the record is absent.
	Update(ctx context.Context, id int64, patch ClientPatch) error

	// Delete removes the client. Returns ErrClientNotFound when absent.
	Delete(ctx context.Context, id int64) error
}
