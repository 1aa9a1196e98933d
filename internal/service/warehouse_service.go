package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/profel/inventory-api/internal/domain"
	"github.com/profel/inventory-api/internal/store"
)

// CreateWarehouseInput carries a validated warehouse creation payload.
type CreateWarehouseInput struct {
	Title    string
	IsActive bool
}

// UpdateWarehouseInput carries a partial warehouse update.
type UpdateWarehouseInput struct {
	Title    *string
	IsActive *bool
}

// WarehouseService implements warehouse business logic on top of the store.
type WarehouseService struct {
	warehouses store.WarehouseStore
	logger     *slog.Logger
}

// NewWarehouseService creates a WarehouseService with its dependencies.
func NewWarehouseService(warehouses store.WarehouseStore, log *slog.Logger) *WarehouseService {
	if warehouses == nil {
		panic("warehouses store cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &WarehouseService{
		warehouses: warehouses,
		logger:     log.With(slog.String("component", "warehouse_service")),
	}
}

// List returns one page of warehouses.
func (s *WarehouseService) List(ctx context.Context, req store.PageRequest) (*store.Page[store.WarehouseRow], error) {
	return s.warehouses.List(ctx, req)
}

// Create inserts a new warehouse and returns the generated id.
func (s *WarehouseService) Create(ctx context.Context, in CreateWarehouseInput) (int64, error) {
	return s.warehouses.Create(ctx, &domain.Warehouse{
		Title:    in.Title,
		IsActive: in.IsActive,
	})
}

// Get returns one warehouse projection, or nil when absent.
func (s *WarehouseService) Get(ctx context.Context, id int64) (*store.WarehouseRow, error) {
	return s.warehouses.GetByID(ctx, id)
}

// Update applies a partial update. The id must name an existing warehouse.
func (s *WarehouseService) Update(ctx context.Context, id int64, in UpdateWarehouseInput) error {
	exists, err := s.warehouses.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check warehouse existence: %w", err)
	}
	if !exists {
		violations := domain.FieldViolations{}
		violations.Add("id", msgIDInvalid)
		return domain.NewValidationError(violations)
	}

	patch := store.WarehousePatch{
		Title:    in.Title,
		IsActive: in.IsActive,
	}
	if patch.IsEmpty() {
		return ErrNoChanges
	}

	return s.warehouses.Update(ctx, id, patch)
}

// Delete removes the warehouse. Returns store.ErrWarehouseNotFound when
// absent.
func (s *WarehouseService) Delete(ctx context.Context, id int64) error {
	return s.warehouses.Delete(ctx, id)
}
