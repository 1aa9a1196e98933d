package api

import (
	"context"
	"net/http"

	"github.com/profel/inventory-api/internal/domain"
	"github.com/profel/inventory-api/internal/service"
	"github.com/profel/inventory-api/internal/store"
)

// createWarehouseRequest is the payload for adding a warehouse.
// is_active is the {0, 1} enum the listing renders as passive/active.
type createWarehouseRequest struct {
	Title    string `json:"title"     validate:"required,max=255"`
	IsActive *int16 `json:"is_active" validate:"required,oneof=0 1"`
}

// updateWarehouseRequest is the partial update payload.
type updateWarehouseRequest struct {
	Title    *string `json:"title"     validate:"omitnil,max=255"`
	IsActive *int16  `json:"is_active" validate:"omitnil,oneof=0 1"`
}

// NewWarehouseResource wires the warehouse service into the generic handler.
func NewWarehouseResource(svc *service.WarehouseService, v *Validator) Resource {
	return Resource{
		Name:  "warehouse",
		IDKey: "warehouse_id",
		Messages: Messages{
			Created:      "Warehouse added success!",
			Edit:         "Warehouse update info!",
			Updated:      "Warehouse info updated success!",
			UpdateFailed: "Warehouse info updated error!",
			NotFound:     "Warehouse not found!",
			DeleteFailed: "Warehouse delete error!",
			Deleted:      "Warehouse deleted success!",
		},
		List: func(ctx context.Context, req store.PageRequest) (any, error) {
			return svc.List(ctx, req)
		},
		Create: func(r *http.Request) (int64, error) {
			var req createWarehouseRequest
			if err := decodeJSON(r, &req); err != nil {
				return 0, err
			}
			if violations := v.Check(req); violations != nil {
				return 0, domain.NewValidationError(violations)
			}
			return svc.Create(r.Context(), service.CreateWarehouseInput{
				Title:    req.Title,
				IsActive: *req.IsActive == 1,
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
			var req updateWarehouseRequest
			if err := decodeJSON(r, &req); err != nil {
				return err
			}
			if violations := v.Check(req); violations != nil {
				return domain.NewValidationError(violations)
			}

			in := service.UpdateWarehouseInput{Title: req.Title}
			if req.IsActive != nil {
				isActive := *req.IsActive == 1
				in.IsActive = &isActive
			}
			return svc.Update(r.Context(), id, in)
		},
		Delete: func(ctx context.Context, id int64) error {
			return svc.Delete(ctx, id)
		},
	}
}
