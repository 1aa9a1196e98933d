package store

import (
	"context"

	"github.com/profel/inventory-api/internal/domain"
)

// Warehouse listing status labels derived from is_active.
const (
	WarehouseStatusActive  = "active"
	WarehouseStatusPassive = "passive"
)

// WarehouseRow is the projection returned by warehouse listings and
// reads: is_active is rendered as the status label.
type WarehouseRow struct {
	Title  string `json:"title"`
	Status string `json:"status"`
}

// WarehousePatch carries the fields of a partial warehouse update.
type WarehousePatch struct {
	Title    *string
	IsActive *bool
}

// IsEmpty reports whether the patch changes nothing.
func (p WarehousePatch) IsEmpty() bool {
	return p.Title == nil && p.IsActive == nil
}

// WarehouseStore defines the interface for warehouse persistence.
type WarehouseStore interface {
	// List returns one page of warehouse projections ordered by id.
	List(ctx context.Context, req PageRequest) (*Page[WarehouseRow], error)

	// Create inserts a new warehouse and returns the generated id.
	Create(ctx context.Context, warehouse *domain.Warehouse) (int64, error)

	// GetByID returns the projection for one warehouse, or nil when absent.
	GetByID(ctx context.Context, id int64) (*WarehouseRow, error)

	// Exists reports whether a warehouse with the given id exists.
	Exists(ctx context.Context, id int64) (bool, error)

	// Update applies the patch and touches updated_at.
	Update(ctx context.Context, id int64, patch WarehousePatch) error

	// Delete removes the warehouse. Returns ErrWarehouseNotFound when absent.
	Delete(ctx context.Context, id int64) error
}
