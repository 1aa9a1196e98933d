package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/profel/inventory-api/internal/api/shared"
	"github.com/profel/inventory-api/internal/domain"
	"github.com/profel/inventory-api/internal/service"
	"github.com/profel/inventory-api/internal/store"
)

// Envelope messages shared by every resource.
const (
	msgValidationError = "Validation error!"
	msgBadBody         = "Invalid request body!"
	msgNoChanges       = "There are no changes!"
	msgShow            = "Success!"
	msgServerError     = "Server error!"
)

// Messages holds the per-entity envelope texts.
type Messages struct {
	Created      string // create success
	Edit         string // edit-form read success
	Updated      string // update success
	UpdateFailed string // update persistence failure
	NotFound     string // delete of a missing id
	DeleteFailed string // delete persistence failure
	Deleted      string // delete success
	Conflict     string // duplicate-record rejection, empty when n/a
}

// Resource describes one CRUD entity for the generic handler: its
// envelope texts, the response key of its id, and the operation
// closures binding it to a service. Get must return an untyped nil for
// a missing record so the envelope renders "data": null.
type Resource struct {
	Name     string
	IDKey    string
	Messages Messages

	List   func(ctx context.Context, req store.PageRequest) (any, error)
	Create func(r *http.Request) (int64, error)
	Get    func(ctx context.Context, id int64) (any, error)
	Update func(r *http.Request, id int64) error
	Delete func(ctx context.Context, id int64) error
}

// ResourceHandler serves the five uniform CRUD endpoints of one entity.
// All entity-specific behavior lives in the Resource descriptor.
type ResourceHandler struct {
	resource Resource
	logger   *slog.Logger
}

// NewResourceHandler creates a handler for the given resource descriptor.
func NewResourceHandler(resource Resource, log *slog.Logger) *ResourceHandler {
	if log == nil {
		log = slog.Default()
	}
	return &ResourceHandler{
		resource: resource,
		logger:   log.With(slog.String("resource", resource.Name)),
	}
}

// HandleList serves GET /<resource>.
func (h *ResourceHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	page, err := h.resource.List(r.Context(), getPageRequest(r))
	if err != nil {
		h.logger.Error("list failed", "error", err, "trace_id", shared.GetTraceID(r.Context()))
		shared.RespondError(w, r, http.StatusInternalServerError, msgServerError)
		return
	}
	shared.RespondSuccess(w, r, http.StatusOK, page, "")
}

// HandleCreate serves POST /<resource>.
func (h *ResourceHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	id, err := h.resource.Create(r)
	if err != nil {
		h.respondCreateUpdateError(w, r, err, msgServerError)
		return
	}
	shared.RespondSuccess(w, r, http.StatusOK, map[string]int64{h.resource.IDKey: id}, h.resource.Messages.Created)
}

// HandleShow serves GET /<resource>/{id}. A missing record is a success
// with null data.
func (h *ResourceHandler) HandleShow(w http.ResponseWriter, r *http.Request) {
	h.handleRead(w, r, msgShow)
}

// HandleEdit serves GET /<resource>/{id}/edit: the same read as show
// with the edit-form message.
func (h *ResourceHandler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	h.handleRead(w, r, h.resource.Messages.Edit)
}

func (h *ResourceHandler) handleRead(w http.ResponseWriter, r *http.Request, message string) {
	id, err := getPathID(r)
	if err != nil {
		shared.RespondError(w, r, http.StatusNotFound, h.resource.Messages.NotFound)
		return
	}

	data, err := h.resource.Get(r.Context(), id)
	if err != nil {
		h.logger.Error("read failed", "error", err, "id", id, "trace_id", shared.GetTraceID(r.Context()))
		shared.RespondError(w, r, http.StatusInternalServerError, msgServerError)
		return
	}
	shared.RespondSuccess(w, r, http.StatusOK, data, message)
}

// HandleUpdate serves PUT /<resource>/{id}. Only fields present in the
// payload are applied; an empty effective diff is a success that writes
// nothing.
func (h *ResourceHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r)
	if err != nil {
		violations := domain.FieldViolations{}
		violations.Add("id", "The selected id is invalid.")
		shared.RespondErrorWithViolations(w, r, http.StatusUnprocessableEntity, msgValidationError, violations)
		return
	}

	if err := h.resource.Update(r, id); err != nil {
		if errors.Is(err, service.ErrNoChanges) {
			shared.RespondSuccess(w, r, http.StatusOK, map[string]int64{h.resource.IDKey: id}, msgNoChanges)
			return
		}
		h.respondCreateUpdateError(w, r, err, h.resource.Messages.UpdateFailed)
		return
	}

	shared.RespondSuccess(w, r, http.StatusOK, map[string]int64{h.resource.IDKey: id}, h.resource.Messages.Updated)
}

// HandleDelete serves DELETE /<resource>/{id}.
func (h *ResourceHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r)
	if err != nil {
		shared.RespondError(w, r, http.StatusNotFound, h.resource.Messages.NotFound)
		return
	}

	if err := h.resource.Delete(r.Context(), id); err != nil {
		if store.IsNotFoundError(err) {
			shared.RespondError(w, r, http.StatusNotFound, h.resource.Messages.NotFound)
			return
		}
		h.logger.Error("delete failed", "error", err, "id", id, "trace_id", shared.GetTraceID(r.Context()))
		shared.RespondError(w, r, http.StatusInternalServerError, h.resource.Messages.DeleteFailed)
		return
	}

	shared.RespondSuccess(w, r, http.StatusOK, map[string]int64{h.resource.IDKey: id}, h.resource.Messages.Deleted)
}

// respondCreateUpdateError maps create and update failures onto the
// envelope: 400 for undecodable bodies, 422 for rule violations and
// duplicates, 500 otherwise.
func (h *ResourceHandler) respondCreateUpdateError(w http.ResponseWriter, r *http.Request, err error, failMessage string) {
	var validationErr *domain.ValidationError
	switch {
	case errors.Is(err, errMalformedBody):
		shared.RespondError(w, r, http.StatusBadRequest, msgBadBody)
	case errors.Is(err, domain.ErrUnauthorized):
		shared.RespondError(w, r, http.StatusUnauthorized, "Unauthorized!")
	case errors.As(err, &validationErr):
		shared.RespondErrorWithViolations(w, r, http.StatusUnprocessableEntity, msgValidationError, validationErr.Violations)
	case store.IsDuplicateError(err) && h.resource.Messages.Conflict != "":
		shared.RespondError(w, r, http.StatusUnprocessableEntity, h.resource.Messages.Conflict)
	default:
		h.logger.Error("write failed", "error", err, "trace_id", shared.GetTraceID(r.Context()))
		shared.RespondError(w, r, http.StatusInternalServerError, failMessage)
	}
}
