package shared

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// SuccessEnvelope is the uniform success response body. Data is always
// present, null included, so single-record reads of missing ids still
// carry an explicit "data": null.
type SuccessEnvelope struct {
	Status  bool    `json:"status"`
	Message *string `json:"message"`
	Data    any     `json:"data"`
}

// ErrorEnvelope is the uniform error response body. Errors holds the
// field violation map on 422 responses and is null otherwise.
type ErrorEnvelope struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Errors  any    `json:"errors"`
}

// RespondWithJSON writes a JSON response with the given status code and body.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode JSON response",
			"error", err,
			"trace_id", GetTraceID(r.Context()))
	}
}

// RespondSuccess writes the success envelope. message may be empty, in
// which case the envelope carries "message": null (listing responses).
func RespondSuccess(w http.ResponseWriter, r *http.Request, status int, data any, message string) {
	var msg *string
	if message != "" {
		msg = &message
	}
	RespondWithJSON(w, r, status, SuccessEnvelope{
		Status:  true,
		Message: msg,
		Data:    data,
	})
}

// RespondError writes the error envelope with a null errors payload.
func RespondError(w http.ResponseWriter, r *http.Request, status int, message string) {
	RespondErrorWithViolations(w, r, status, message, nil)
}

// RespondErrorWithViolations writes the error envelope carrying a field
// violation map, logging the response for correlation.
func RespondErrorWithViolations(w http.ResponseWriter, r *http.Request, status int, message string, violations any) {
	slog.Debug("sending error response",
		"status_code", status,
		"message", message,
		"trace_id", GetTraceID(r.Context()),
		"path", r.URL.Path,
		"method", r.Method)

	RespondWithJSON(w, r, status, ErrorEnvelope{
		Status:  false,
		Message: message,
		Errors:  violations,
	})
}
