package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g., two clients with the same phone).
	ErrDuplicate = errors.New("entity already exists")

	// ErrUpdateFailed is returned when an update reports zero affected rows
	// for a record that was expected to exist.
	ErrUpdateFailed = errors.New("update failed")

	// ErrDeleteFailed is returned when the backend reports a delete failure
	// for a record that exists. Handlers map it to a 500 response.
	ErrDeleteFailed = errors.New("delete failed")

	// Entity-specific "not found" errors.

	ErrClientNotFound    = fmt.Errorf("%w: client", ErrNotFound)
	ErrProductNotFound   = fmt.Errorf("%w: product", ErrNotFound)
	ErrWarehouseNotFound = fmt.Errorf("%w: warehouse", ErrNotFound)
	ErrStockNotFound     = fmt.Errorf("%w: product warehouse", ErrNotFound)
	ErrOrderNotFound     = fmt.Errorf("%w: order", ErrNotFound)
	ErrTokenNotFound     = fmt.Errorf("%w: auth token", ErrNotFound)

	// Entity-specific "duplicate" errors.

	// ErrPhoneExists indicates a client with the given phone already exists.
	ErrPhoneExists = fmt.Errorf("%w: phone", ErrDuplicate)

	// ErrStockExists indicates the (product, warehouse) pair already has a
	// stock row.
	ErrStockExists = fmt.Errorf("%w: product warehouse pair", ErrDuplicate)
)

// IsNotFoundError reports whether err is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError reports whether err is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
