package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/profel/inventory-api/internal/domain"
	"github.com/profel/inventory-api/internal/store"
)

// CreateProductInput carries a validated product creation payload.
type CreateProductInput struct {
	Title  string
	Amount decimal.Decimal
}

// UpdateProductInput carries a partial product update.
type UpdateProductInput struct {
	Title  *string
	Amount *decimal.Decimal
}

// ProductService implements product business logic on top of the store.
type ProductService struct {
	products store.ProductStore
	logger   *slog.Logger
}

// NewProductService creates a ProductService with its dependencies.
func NewProductService(products store.ProductStore, log *slog.Logger) *ProductService {
	if products == nil {
		panic("products store cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &ProductService{
		products: products,
		logger:   log.With(slog.String("component", "product_service")),
	}
}

// List returns one page of products.
func (s *ProductService) List(ctx context.Context, req store.PageRequest) (*store.Page[store.ProductRow], error) {
	return s.products.List(ctx, req)
}

// Create inserts a new product and returns the generated id.
func (s *ProductService) Create(ctx context.Context, in CreateProductInput) (int64, error) {
	return s.products.Create(ctx, &domain.Product{
		Title:  in.Title,
		Amount: in.Amount,
	})
}

// Get returns one product projection, or nil when absent.
func (s *ProductService) Get(ctx context.Context, id int64) (*store.ProductRow, error) {
	return s.products.GetByID(ctx, id)
}

// Update applies a partial update. The id must name an existing product.
func (s *ProductService) Update(ctx context.Context, id int64, in UpdateProductInput) error {
	exists, err := s.products.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check product existence: %w", err)
	}
	if !exists {
		violations := domain.FieldViolations{}
		violations.Add("id", msgIDInvalid)
		return domain.NewValidationError(violations)
	}

	patch := store.ProductPatch{
		Title:  in.Title,
		Amount: in.Amount,
	}
	if patch.IsEmpty() {
		return ErrNoChanges
	}

	return s.products.Update(ctx, id, patch)
}

// Delete removes the product. Returns store.ErrProductNotFound when absent.
func (s *ProductService) Delete(ctx context.Context, id int64) error {
	return s.products.Delete(ctx, id)
}
