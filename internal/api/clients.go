package api

import (
	"context"
	"net/http"
	"time"

	"github.com/profel/inventory-api/internal/domain"
	"github.com/profel/inventory-api/internal/service"
	"github.com/profel/inventory-api/internal/store"
)

// createClientRequest is the payload for registering a client.
type createClientRequest struct {
	FullName  string  `json:"full_name"  validate:"required,max=32"`
	BirthDate *string `json:"birth_date" validate:"omitnil,datetime=2006-01-02"`
	Gender    *int16  `json:"gender"     validate:"required,oneof=0 1"`
	Phone     string  `json:"phone"      validate:"required,phone"`
	Email     *string `json:"email"      validate:"omitnil,email"`
	Password  string  `json:"password"   validate:"required,min=8,max=32"`
}

// updateClientRequest is the partial update payload. Absent fields stay
// untouched; present fields are applied even when zero-valued.
type updateClientRequest struct {
	FullName  *string `json:"full_name"  validate:"omitnil,max=32"`
	BirthDate *string `json:"birth_date" validate:"omitnil,datetime=2006-01-02"`
	Gender    *int16  `json:"gender"     validate:"omitnil,oneof=0 1"`
	Phone     *string `json:"phone"      validate:"omitnil,phone"`
	Email     *string `json:"email"      validate:"omitnil,email"`
	Password  *string `json:"password"   validate:"omitnil,min=8,max=32"`
}

// NewClientResource wires the client service into the generic handler.
func NewClientResource(svc *service.ClientService, v *Validator) Resource {
	return Resource{
		Name:  "client",
		IDKey: "client_id",
		Messages: Messages{
			Created:      "Client created success!",
			Edit:         "Client update info!",
			Updated:      "Client updated success!",
			UpdateFailed: "User updated error!",
			NotFound:     "Client not found!",
			DeleteFailed: "Client delete error!",
			Deleted:      "Client deleted success!",
		},
		List: func(ctx context.Context, req store.PageRequest) (any, error) {
			return svc.List(ctx, req)
		},
		Create: func(r *http.Request) (int64, error) {
			var req createClientRequest
			if err := decodeJSON(r, &req); err != nil {
				return 0, err
			}
			req.Phone = domain.NormalizePhone(req.Phone)
			if violations := v.Check(req); violations != nil {
				return 0, domain.NewValidationError(violations)
			}

			in := service.CreateClientInput{
				FullName: req.FullName,
				Gender:   *req.Gender,
				Phone:    req.Phone,
				Email:    req.Email,
				Password: req.Password,
			}
			if req.BirthDate != nil {
				birthDate, err := time.Parse(birthDateLayout, *req.BirthDate)
				if err != nil {
					return 0, invalidBirthDate()
				}
				in.BirthDate = &birthDate
			}
			return svc.Create(r.Context(), in)
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
			var req updateClientRequest
			if err := decodeJSON(r, &req); err != nil {
				return err
			}
			if req.Phone != nil {
				normalized := domain.NormalizePhone(*req.Phone)
				req.Phone = &normalized
			}
			if violations := v.Check(req); violations != nil {
				return domain.NewValidationError(violations)
			}

			in := service.UpdateClientInput{
				FullName: req.FullName,
				Gender:   req.Gender,
				Phone:    req.Phone,
				Email:    req.Email,
				Password: req.Password,
			}
			if req.BirthDate != nil {
				birthDate, err := time.Parse(birthDateLayout, *req.BirthDate)
				if err != nil {
					return invalidBirthDate()
				}
				in.BirthDate = &birthDate
			}
			return svc.Update(r.Context(), id, in)
		},
		Delete: func(ctx context.Context, id int64) error {
			return svc.Delete(ctx, id)
		},
	}
}

// invalidBirthDate reports a birth date the format rule accepted but the
// calendar did not, such as 2024-02-31.
func invalidBirthDate() error {
	violations := domain.FieldViolations{}
	violations.Add("birth_date", "The birth date is not a valid date.")
	return domain.NewValidationError(violations)
}
