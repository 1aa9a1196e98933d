package api

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/profel/inventory-api/internal/domain"
	"github.com/profel/inventory-api/internal/service"
	"github.com/profel/inventory-api/internal/store"
)

// createProductRequest is the payload for adding a product.
type createProductRequest struct {
	Title  string           `json:"title"  validate:"required,max=255"`
	Amount *decimal.Decimal `json:"amount" validate:"required,gte=0"`
}

// updateProductRequest is the partial update payload.
type updateProductRequest struct {
	Title  *string          `json:"title"  validate:"omitnil,max=255"`
	Amount *decimal.Decimal `json:"amount" validate:"omitnil,gte=0"`
}

// NewProductResource wires the product service into the generic handler.
func NewProductResource(svc *service.ProductService, v *Validator) Resource {
	return Resource{
		Name:  "product",
		IDKey: "product_id",
		Messages: Messages{
			Created:      "Product added success!",
			Edit:         "Product update info!",
			Updated:      "Product info updated success!",
			UpdateFailed: "Product info updated error!",
			NotFound:     "Product not found!",
			DeleteFailed: "Product delete error!",
			Deleted:      "Product deleted success!",
		},
		List: func(ctx context.Context, req store.PageRequest) (any, error) {
			return svc.List(ctx, req)
		},
		Create: func(r *http.Request) (int64, error) {
			var req createProductRequest
			if err := decodeJSON(r, &req); err != nil {
				return 0, err
			}
			if violations := v.Check(req); violations != nil {
				return 0, domain.NewValidationError(violations)
			}
			return svc.Create(r.Context(), service.CreateProductInput{
				Title:  req.Title,
				Amount: *req.Amount,
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
			var req updateProductRequest
			if err := decodeJSON(r, &req); err != nil {
				return err
			}
			if violations := v.Check(req); violations != nil {
				return domain.NewValidationError(violations)
			}
			return svc.Update(r.Context(), id, service.UpdateProductInput{
				Title:  req.Title,
				Amount: req.Amount,
			})
		},
		Delete: func(ctx context.Context, id int64) error {
			return svc.Delete(ctx, id)
		},
	}
}
