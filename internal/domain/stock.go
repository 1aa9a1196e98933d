package domain

import "time"

// Stock quantity bounds shared by stock rows and orders.
const (
	MinQuantity int64 = 1
	MaxQuantity int64 = 99999999999
)

// Stock is the quantity of one product held at one warehouse.
// The (product, warehouse) pair is unique: there is never more than one
// stock row for the same pair.
type Stock struct {
	ID          int64     `json:"id"`
	ProductID   int64     `json:"product_id"`
	WarehouseID int64     `json:"warehouse_id"`
	Quantity    int64     `json:"quantity"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}
