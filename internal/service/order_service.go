package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/profel/inventory-api/internal/domain"
	"github.com/profel/inventory-api/internal/store"
)

// CreateOrderInput carries a validated order creation payload. ClientID
// comes from the authenticated principal, never the body.
type CreateOrderInput struct {
	ClientID    int64
	ProductID   int64
	WarehouseID int64
	Quantity    int64
}

// UpdateOrderInput carries a partial order update. Only the quantity is
// editable; full_amount is always derived.
type UpdateOrderInput struct {
	Quantity *int64
}

// OrderService implements order business logic on top of the stores.
type OrderService struct {
	orders     store.OrderStore
	products   store.ProductStore
	warehouses store.WarehouseStore
	logger     *slog.Logger
}

// NewOrderService creates an OrderService with its dependencies.
func NewOrderService(orders store.OrderStore, products store.ProductStore, warehouses store.WarehouseStore, log *slog.Logger) *OrderService {
	if orders == nil {
		panic("orders store cannot be nil")
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
	return &OrderService{
		orders:     orders,
		products:   products,
		warehouses: warehouses,
		logger:     log.With(slog.String("component", "order_service")),
	}
}

// List returns one page of orders.
func (s *OrderService) List(ctx context.Context, req store.PageRequest) (*store.Page[store.OrderRow], error) {
	return s.orders.List(ctx, req)
}

// Create inserts a new order priced at the current product amount:
// full_amount = quantity × amount.
func (s *OrderService) Create(ctx context.Context, in CreateOrderInput) (int64, error) {
	if err := s.checkRelations(ctx, in.ProductID, in.WarehouseID); err != nil {
		return 0, err
	}

	amount, err := s.products.Amount(ctx, in.ProductID)
	if err != nil {
		return 0, fmt.Errorf("failed to read product amount: %w", err)
	}

	return s.orders.Create(ctx, &domain.Order{
		ClientID:    in.ClientID,
		ProductID:   in.ProductID,
		WarehouseID: in.WarehouseID,
		Quantity:    in.Quantity,
		FullAmount:  domain.ComputeFullAmount(in.Quantity, amount),
	})
}

// Get returns one joined order projection, or nil when absent.
func (s *OrderService) Get(ctx context.Context, id int64) (*store.OrderRow, error) {
	return s.orders.GetByID(ctx, id)
}

// Update applies a partial update. A new quantity reprices the order
// from a fresh read of the product amount.
func (s *OrderService) Update(ctx context.Context, id int64, in UpdateOrderInput) error {
	exists, err := s.orders.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check order existence: %w", err)
	}
	if !exists {
		violations := domain.FieldViolations{}
		violations.Add("id", msgIDInvalid)
		return domain.NewValidationError(violations)
	}

	var patch store.OrderPatch
	if in.Quantity != nil {
		amount, err := s.orders.ProductAmount(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to read product amount: %w", err)
		}
		fullAmount := domain.ComputeFullAmount(*in.Quantity, amount)
		patch.Quantity = in.Quantity
		patch.FullAmount = &fullAmount
	}

	if patch.IsEmpty() {
		return ErrNoChanges
	}

	return s.orders.Update(ctx, id, patch)
}

// Delete removes the order. Returns store.ErrOrderNotFound when absent.
func (s *OrderService) Delete(ctx context.Context, id int64) error {
	return s.orders.Delete(ctx, id)
}

// checkRelations validates the referenced product and warehouse exist,
// accumulating violations so both failures report at once.
func (s *OrderService) checkRelations(ctx context.Context, productID, warehouseID int64) error {
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
