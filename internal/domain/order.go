package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order records a client buying a quantity of one product from one
// warehouse. FullAmount is quantity × the product price read at the time
// the quantity was written; it is not recomputed when the product price
// later changes.
type Order struct {
	ID          int64           `json:"id"`
	ClientID    int64           `json:"client_id"`
	ProductID   int64           `json:"product_id"`
	WarehouseID int64           `json:"warehouse_id"`
	Quantity    int64           `json:"quantity"`
	FullAmount  decimal.Decimal `json:"full_amount"`
	CreatedAt   time.Time       `json:"-"`
	UpdatedAt   time.Time       `json:"-"`
}

// ComputeFullAmount returns quantity × unit price as an exact decimal.
func ComputeFullAmount(quantity int64, amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(decimal.NewFromInt(quantity))
}
