package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a sellable item with a decimal unit price.
type Product struct {
	ID        int64           `json:"id"`
	Title     string          `json:"title"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"-"`
	UpdatedAt time.Time       `json:"-"`
}
