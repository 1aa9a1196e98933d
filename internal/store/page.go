package store

// Pagination defaults shared by every list endpoint. Absent or
// non-numeric values fall back to the defaults; PerPage is capped so a
// single request cannot drag the whole table.
const (
	DefaultPage    = 1
	DefaultPerPage = 15
	MaxPerPage     = 100
)

// PageRequest selects one page of a listing.
type PageRequest struct {
	Page    int
	PerPage int
}

// Normalize clamps the request into valid bounds, applying the defaults
// for out-of-range values.
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.PerPage < 1 {
		p.PerPage = DefaultPerPage
	}
	if p.PerPage > MaxPerPage {
		p.PerPage = MaxPerPage
	}
	return p
}

// Limit returns the SQL LIMIT for the request.
func (p PageRequest) Limit() int {
	return p.PerPage
}

// Offset returns the SQL OFFSET for the request.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// Page is one page of projected rows plus the pagination metadata every
// list response carries.
type Page[T any] struct {
	Items    []T   `json:"items"`
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PerPage  int   `json:"perpage"`
	LastPage int   `json:"last_page"`
}

// NewPage assembles a Page from the fetched items and the total row count.
func NewPage[T any](items []T, total int64, req PageRequest) *Page[T] {
	if items == nil {
		items = []T{}
	}
	lastPage := int((total + int64(req.PerPage) - 1) / int64(req.PerPage))
	if lastPage < 1 {
		lastPage = 1
	}
	return &Page[T]{
		Items:    items,
		Total:    total,
		Page:     req.Page,
		PerPage:  req.PerPage,
		LastPage: lastPage,
	}
}
