package api

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/strandkit/strand/internal/errors"
)

// renderJSON writes a JSON response.
func renderJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// renderError writes a structured JSON error response.
func renderError(w http.ResponseWriter, r *http.Request, err error) {
	var sErr *errors.StrandError
	if !stderrors.As(err, &sErr) {
		sErr = errors.NewInternal(err)
	}

	errorObj := map[string]any{
		"code":    sErr.Code,
		"message": sErr.Message,
		"status":  sErr.Status,
	}
	if id := RequestIDFromContext(r.Context()); id != "" {
		errorObj["request_id"] = id
	}
	// Only include details for non-internal errors to avoid leaking
	// sensitive info like file paths or SQL errors
	if sErr.Code != errors.ErrInternal && sErr.Details != nil {
		errorObj["details"] = sErr.Details
	}

	renderJSON(w, sErr.Status, map[string]any{"error": errorObj})
}
