package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/profel/inventory-api/internal/domain"
	"github.com/profel/inventory-api/internal/store"
)

// CreateStockInput carries a validated stock creation payload.
type CreateStockInput struct {
	ProductID   int64
	WarehouseID int64
	Quantity    int64
}

// UpdateStockInput carries a partial stock update.
type UpdateStockInput struct {
	Quantity *int64
}

// StockService implements product-warehouse stock logic on top of the
// stores. The (product, warehouse) pair stays unique.
type StockService struct {
	stocks     store.StockStore
	products   store.ProductStore
	warehouses store.WarehouseStore
	logger     *slog.Logger
}

// NewStockService creates a StockService with its dependencies.
func NewStockService(stocks store.StockStore, products store.ProductStore, warehouses store.WarehouseStore, log *slog.Logger) *StockService {
	if stocks == nil {
		panic("stocks store cannot be nil")
	}
	if products == nil {
		panic("products store cannot be nil")
	}
	if warehouses == nil {
		panic("warehouses store cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &StockService{
		stocks:     stocks,
		products:   products,
		warehouses: warehouses,
		logger:     log.With(slog.String("component", "stock_service")),
	}
}

// List returns one page of stock rows.
func (s *StockService) List(ctx context.Context, req store.PageRequest) (*store.Page[store.StockRow], error) {
	return s.stocks.List(ctx, req)
}

// Create inserts a new stock row after checking both referenced records
// exist and the pair is unused. Returns store.ErrStockExists on a pair
// collision.
func (s *StockService) Create(ctx context.Context, in CreateStockInput) (int64, error) {
	if err := s.checkRelations(ctx, in.ProductID, in.WarehouseID); err != nil {
		return 0, err
	}

	exists, err := s.stocks.PairExists(ctx, in.ProductID, in.WarehouseID)
	if err != nil {
		return 0, fmt.Errorf("failed to check pair uniqueness: %w", err)
	}
	if exists {
		return 0, store.ErrStockExists
	}

	return s.stocks.Create(ctx, &domain.Stock{
		ProductID:   in.ProductID,
		WarehouseID: in.WarehouseID,
		Quantity:    in.Quantity,
	})
}

// Get returns one joined stock projection, or nil when absent.
func (s *StockService) Get(ctx context.Context, id int64) (*store.StockRow, error) {
	return s.stocks.GetByID(ctx, id)
}

// Update applies a partial update. The id must name an existing row.
func (s *StockService) Update(ctx context.Context, id int64, in UpdateStockInput) error {
	exists, err := s.stocks.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check stock existence: %w", err)
	}
	if !exists {
		violations := domain.FieldViolations{}
		violations.Add("id", msgIDInvalid)
		return domain.NewValidationError(violations)
	}

	patch := store.StockPatch{Quantity: in.Quantity}
	if patch.IsEmpty() {
		return ErrNoChanges
	}

	return s.stocks.Update(ctx, id, patch)
}

// Delete removes the stock row. Returns store.ErrStockNotFound when absent.
func (s *StockService) Delete(ctx context.Context, id int64) error {
	return s.stocks.Delete(ctx, id)
}

// checkRelations validates the referenced product and warehouse exist,
// accumulating violations so both failures report at once.
func (s *StockService) checkRelations(ctx context.Context, productID, warehouseID int64) error {
	violations := domain.FieldViolations{}

	productExists, err := s.products.Exists(ctx, productID)
	if err != nil {
		return fmt.Errorf("failed to check product existence: %w", err)
	}
	if !productExists {
		violations.Add("product_id", fmt.Sprintf(msgBadRelation, "product id"))
	}

	warehouseExists, err := s.warehouses.Exists(ctx, warehouseID)
	if err != nil {
		return fmt.Errorf("failed to check warehouse existence: %w", err)
	}
	if !warehouseExists {
		violations.Add("warehouse_id", fmt.Sprintf(msgBadRelation, "warehouse id"))
	}

	if len(violations) > 0 {
		return domain.NewValidationError(violations)
	}
	return nil
}
