package store

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/profel/inventory-api/internal/domain"
)

// ProductRow is the projection returned by product listings and reads.
type ProductRow struct {
	Title  string          `json:"title"`
	Amount decimal.Decimal `json:"amount"`
}

// ProductPatch carries the fields of a partial product update.
type ProductPatch struct {
	Title  *string
	Amount *decimal.Decimal
}

// IsEmpty reports whether the patch changes nothing.
func (p ProductPatch) IsEmpty() bool {
	return p.Title == nil && p.Amount == nil
}

// ProductStore defines the interface for product persistence.
type ProductStore interface {
	// List returns one page of product projections ordered by id.
	List(ctx context.Context, req PageRequest) (*Page[ProductRow], error)

	// Create inserts a new product and returns the generated id.
	Create(ctx context.Context, product *domain.Product) (int64, error)

	// GetByID returns the projection for one product, or nil when absent.
	GetByID(ctx context.Context, id int64) (*ProductRow, error)

	// Amount returns the current unit price of the product.
	// Returns ErrProductNotFound when the product is absent.
	Amount(ctx context.Context, id int64) (decimal.Decimal, error)

	// Exists reports whether a product with the given id exists.
	Exists(ctx context.Context, id int64) (bool, error)

	// Update applies the patch and touches updated_at.
	Update(ctx context.Context, id int64, patch ProductPatch) error

	// Delete removes the product. Returns ErrProductNotFound when absent.
	Delete(ctx context.Context, id int64) error
}
