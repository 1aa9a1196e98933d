package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/profel/inventory-api/internal/api/shared"
)

// RateSource fetches the raw upstream currency list.
type RateSource interface {
	Rates(ctx context.Context) ([]byte, error)
}

// CurrencyHandler proxies the upstream currency list inside the success
// envelope without reshaping the upstream JSON.
type CurrencyHandler struct {
	source RateSource
	logger *slog.Logger
}

// NewCurrencyHandler creates a new CurrencyHandler with the given dependencies.
func NewCurrencyHandler(source RateSource, log *slog.Logger) *CurrencyHandler {
	if log == nil {
		log = slog.Default()
	}
	return &CurrencyHandler{
		source: source,
		logger: log.With(slog.String("component", "currency_handler")),
	}
}

// HandleRates serves POST /currency.
func (h *CurrencyHandler) HandleRates(w http.ResponseWriter, r *http.Request) {
	body, err := h.source.Rates(r.Context())
	if err != nil {
		h.logger.Error("failed to fetch currency rates",
			"error", err,
			"trace_id", shared.GetTraceID(r.Context()))
		shared.RespondError(w, r, http.StatusInternalServerError, msgServerError)
		return
	}

	shared.RespondSuccess(w, r, http.StatusOK, json.RawMessage(body), "")
}
