package store

import (
	"context"

	"github.com/profel/inventory-api/internal/domain"
)

// StockRow is the joined projection returned by stock listings and reads.
type StockRow struct {
	ProductTitle   string `json:"product_title"`
	WarehouseTitle string `json:"warehouse_title"`
	Quantity       int64  `json:"quantity"`
}

// StockPatch carries the fields of a partial stock update.
type StockPatch struct {
	Quantity *int64
}

// IsEmpty reports whether the patch changes nothing.
func (p StockPatch) IsEmpty() bool {
	return p.Quantity == nil
}

// StockStore defines the interface for product-warehouse stock persistence.
type StockStore interface {
	// List returns one page of joined stock projections ordered by id.
	List(ctx context.Context, req PageRequest) (*Page[StockRow], error)

	// Create inserts a new stock row and returns the generated id.
	// Returns ErrStockExists when the (product, warehouse) pair already
	// has a row.
	Create(ctx context.Context, stock *domain.Stock) (int64, error)

	// GetByID returns the joined projection for one row, or nil when absent.
	GetByID(ctx context.Context, id int64) (*StockRow, error)

	// Exists reports whether a stock row with the given id exists.
	Exists(ctx context.Context, id int64) (bool, error)

	// PairExists reports whether the (product, warehouse) pair has a row.
	PairExists(ctx context.Context, productID, warehouseID int64) (bool, error)

	// Update applies the patch and touches updated_at.
	Update(ctx context.Context, id int64, patch StockPatch) error

	// Delete removes the stock row. Returns ErrStockNotFound when absent.
	Delete(ctx context.Context, id int64) error
}
