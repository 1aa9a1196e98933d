package api

import (
	"context"
	"net/http"

	"github.com/profel/inventory-api/internal/domain"
	"github.com/profel/inventory-api/internal/service"
	"github.com/profel/inventory-api/internal/store"
)

// createStockRequest is the payload for putting a product into a
// warehouse. The (product, warehouse) pair must be unused.
type createStockRequest struct {
	ProductID   *int64 `json:"product_id"   validate:"required,min=1"`
	WarehouseID *int64 `json:"warehouse_id" validate:"required,min=1"`
	Quantity    *int64 `json:"quantity"     validate:"required,min=1,max=99999999999"`
}

// updateStockRequest is the partial update payload. Only the quantity is
// editable; repointing a row at another pair is not supported.
type updateStockRequest struct {
	Quantity *int64 `json:"quantity" validate:"omitnil,min=1,max=99999999999"`
}

// NewStockResource wires the stock service into the generic handler.
func NewStockResource(svc *service.StockService, v *Validator) Resource {
	return Resource{
		Name:  "product_warehouse",
		IDKey: "product_warehouse_id",
		Messages: Messages{
			Created:      "Product Warehouse added success!",
			Edit:         "Product Warehouse update info!",
			Updated:      "Product Warehouse info updated success!",
			UpdateFailed: "Product Warehouse info updated error!",
			NotFound:     "Product Warehouse not found!",
			DeleteFailed: "Product Warehouse delete error!",
			Deleted:      "Product Warehouse deleted success!",
			Conflict:     "Product Warehouse already exists!",
		},
		List: func(ctx context.Context, req store.PageRequest) (any, error) {
			return svc.List(ctx, req)
		},
		Create: func(r *http.Request) (int64, error) {
			var req createStockRequest
			if err := decodeJSON(r, &req); err != nil {
				return 0, err
			}
			if violations := v.Check(req); violations != nil {
				return 0, domain.NewValidationError(violations)
			}
			return svc.Create(r.Context(), service.CreateStockInput{
				ProductID:   *req.ProductID,
				WarehouseID: *req.WarehouseID,
				Quantity:    *req.Quantity,
			})
		},
		Get: func(ctx context.Context, id int64) (any, error) {
			row, err := svc.Get(ctx, id)
			if err != nil {
				return nil, err
			}
			if row == nil {
				return nil, nil
			}
			return row, nil
		},
		Update: func(r *http.Request, id int64) error {
			var req updateStockRequest
			if err := decodeJSON(r, &req); err != nil {
				return err
			}
			if violations := v.Check(req); violations != nil {
				return domain.NewValidationError(violations)
			}
			return svc.Update(r.Context(), id, service.UpdateStockInput{
				Quantity: req.Quantity,
			})
		},
		Delete: func(ctx context.Context, id int64) error {
			return svc.Delete(ctx, id)
		},
	}
}
