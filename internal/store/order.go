package store

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/profel/inventory-api/internal/domain"
)

// OrderRow is the three-way joined projection returned by order listings
// and reads.
type OrderRow struct {
	UserID         int64           `json:"user_id"`
	UserName       string          `json:"user_name"`
	ProductTitle   string          `json:"product_title"`
	WarehouseTitle string          `json:"warehouse_title"`
	Quantity       int64           `json:"quantity"`
	FullAmount     decimal.Decimal `json:"full_amount"`
}

// OrderPatch carries the fields of a partial order update. FullAmount is
// always recomputed by the service whenever Quantity is set.
type OrderPatch struct {
	Quantity   *int64
	FullAmount *decimal.Decimal
}

// IsEmpty reports whether the patch changes nothing.
func (p OrderPatch) IsEmpty() bool {
	return p.Quantity == nil && p.FullAmount == nil
}

// OrderStore defines the interface for order persistence.
type OrderStore interface {
	// List returns one page of joined order projections ordered by id.
	List(ctx context.Context, req PageRequest) (*Page[OrderRow], error)

	// Create inserts a new order and returns the generated id.
	Create(ctx context.Context, order *domain.Order) (int64, error)

	// GetByID returns the joined projection for one order, or nil when absent.
	GetByID(ctx context.Context, id int64) (*OrderRow, error)

	// Exists reports whether an order with the given id exists.
	Exists(ctx context.Context, id int64) (bool, error)

	// ProductAmount returns the current unit price of the ordered product,
	// read fresh for quantity updates. Returns ErrOrderNotFound when the
	// order is absent.
	ProductAmount(ctx context.Context, orderID int64) (decimal.Decimal, error)

	// Update applies the patch and touches updated_at.
	Update(ctx context.Context, id int64, patch OrderPatch) error

	// Delete removes the order. Returns ErrOrderNotFound when absent.
	Delete(ctx context.Context, id int64) error
}
