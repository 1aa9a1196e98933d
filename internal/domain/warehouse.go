package domain

import "time"

// Warehouse is a storage location. Inactive warehouses are kept but
// reported with status "passive" in listings.
type Warehouse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
