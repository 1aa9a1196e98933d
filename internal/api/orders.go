package api

import (
	"context"
	"net/http"

	"github.com/profel/inventory-api/internal/domain"
	"github.com/profel/inventory-api/internal/service"
	"github.com/profel/inventory-api/internal/store"
)

// createOrderRequest is the payload for placing an order. The buyer is
// always the authenticated client; the body never names one.
type createOrderRequest struct {
	ProductID   *int64 `json:"product_id"   validate:"required,min=1"`
	WarehouseID *int64 `json:"warehouse_id" validate:"required,min=1"`
	Quantity    *int64 `json:"quantity"     validate:"required,min=1,max=99999999999"`
}

// updateOrderRequest is the partial update payload. A new quantity
// reprices the order against the current product amount.
type updateOrderRequest struct {
	Quantity *int64 `json:"quantity" validate:"omitnil,min=1,max=99999999999"`
}

// NewOrderResource wires the order service into the generic handler.
func NewOrderResource(svc *service.OrderService, v *Validator) Resource {
	return Resource{
		Name:  "order",
		IDKey: "order_id",
		Messages: Messages{
			Created:      "Order added success!",
			Edit:         "Order update info!",
			Updated:      "Order info updated success!",
			UpdateFailed: "Order info updated error!",
			NotFound:     "Order not found!",
			DeleteFailed: "Order delete error!",
			Deleted:      "Order deleted success!",
		},
		List: func(ctx context.Context, req store.PageRequest) (any, error) {
			return svc.List(ctx, req)
		},
		Create: func(r *http.Request) (int64, error) {
			clientID, ok := getClientIDFromContext(r)
			if !ok {
				return 0, domain.ErrUnauthorized
			}

			var req createOrderRequest
			if err := decodeJSON(r, &req); err != nil {
				return 0, err
			}
			if violations := v.Check(req); violations != nil {
				return 0, domain.NewValidationError(violations)
			}
			return svc.Create(r.Context(), service.CreateOrderInput{
				ClientID:    clientID,
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
			var req updateOrderRequest
			if err := decodeJSON(r, &req); err != nil {
				return err
			}
			if violations := v.Check(req); violations != nil {
				return domain.NewValidationError(violations)
			}
			return svc.Update(r.Context(), id, service.UpdateOrderInput{
				Quantity: req.Quantity,
			})
		},
		Delete: func(ctx context.Context, id int64) error {
			return svc.Delete(ctx, id)
		},
	}
}
