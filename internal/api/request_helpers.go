package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/profel/inventory-api/internal/api/shared"
	"github.com/profel/inventory-api/internal/domain"
	"github.com/profel/inventory-api/internal/store"
)

// maxBodyBytes bounds the accepted request body size.
const maxBodyBytes = 1 << 20

// errMalformedBody marks an undecodable JSON payload; handlers answer it
// with a 400 envelope.
var errMalformedBody = errors.New("malformed request body")

// decodeJSON decodes the request body into dst. An empty body decodes
// into the zero value so optional-field updates can omit the payload.
func decodeJSON(r *http.Request, dst any) error {
	body := http.MaxBytesReader(nil, r.Body, maxBodyBytes)
	dec := json.NewDecoder(body)
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return errMalformedBody
	}
	return nil
}

// getPathID extracts the numeric id path parameter.
func getPathID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}

// getPageRequest reads the page and perpage query parameters, falling
// back to defaults on absent or malformed values. Normalize clamps the
// result to the allowed window.
func getPageRequest(r *http.Request) store.PageRequest {
	req := store.PageRequest{
		Page:    queryInt(r, "page", store.DefaultPage),
		PerPage: queryInt(r, "perpage", store.DefaultPerPage),
	}
	return req.Normalize()
}

// queryInt parses one integer query parameter with a fallback.
func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

// getClientIDFromContext extracts the authenticated client id placed in
// the context by the authentication middleware.
func getClientIDFromContext(r *http.Request) (int64, bool) {
	clientID, ok := shared.GetClientID(r.Context())
	if !ok || clientID <= 0 {
		return 0, false
	}
	return clientID, true
}
