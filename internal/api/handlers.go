package api

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/strandkit/strand/internal/analysis"
	"github.com/strandkit/strand/internal/config"
	"github.com/strandkit/strand/internal/errors"
	"github.com/strandkit/strand/internal/ops"
)

// Handlers contains HTTP route handlers for the JSON API.
type Handlers struct {
	db      *sql.DB
	cfg     *config.Config
	version string
}

// createRequest is the body of POST /strings. Value is a pointer so a
// missing field can be told apart from an explicit empty string, which is
// a valid submission.
type createRequest struct {
	Value *string `json:"value"`
}

// HandleHealth handles GET /, the liveness probe.
func (h *Handlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": h.version,
	})
}

// HandleCreate handles POST /strings: analyze and persist a string.
func (h *Handlers) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, errors.NewInvalidRequest("request body must be valid JSON"))
		return
	}
	if req.Value == nil {
		renderError(w, r, errors.NewInvalidRequest("field 'value' must be a string"))
		return
	}

	e, err := ops.Store(r.Context(), h.db, h.cfg, ops.StoreInput{Value: *req.Value})
	if err != nil {
		renderError(w, r, err)
		return
	}

	renderJSON(w, http.StatusCreated, e)
}

// HandleFetch handles GET /strings/{key}: exact lookup by value or hash.
func (h *Handlers) HandleFetch(w http.ResponseWriter, r *http.Request) {
	e, err := ops.Fetch(r.Context(), h.db, ops.FetchInput{Key: r.PathValue("key")})
	if err != nil {
		renderError(w, r, err)
		return
	}

	renderJSON(w, http.StatusOK, e)
}

// HandleList handles GET /strings: structured filtering.
func (h *Handlers) HandleList(w http.ResponseWriter, r *http.Request) {
	filter, err := filterFromQuery(r)
	if err != nil {
		renderError(w, r, err)
		return
	}

	result, err := ops.List(r.Context(), h.db, filter)
	if err != nil {
		renderError(w, r, err)
		return
	}

	renderJSON(w, http.StatusOK, result)
}

// HandleQuery handles GET /strings/filter-by-natural-language.
func (h *Handlers) HandleQuery(w http.ResponseWriter, r *http.Request) {
	result, err := ops.Query(r.Context(), h.db, ops.QueryInput{
		Query: r.URL.Query().Get("query"),
	})
	if err != nil {
		renderError(w, r, err)
		return
	}

	renderJSON(w, http.StatusOK, result)
}

// HandleDelete handles DELETE /strings/{key}.
func (h *Handlers) HandleDelete(w http.ResponseWriter, r *http.Request) {
	_, err := ops.Delete(r.Context(), h.db, ops.DeleteInput{Key: r.PathValue("key")})
	if err != nil {
		renderError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// filterFromQuery builds a filter set from URL query parameters.
// Range validation (including the min/max conflict) happens in the ops
// layer; this only rejects values that fail to parse at all.
func filterFromQuery(r *http.Request) (analysis.FilterSet, error) {
	var filter analysis.FilterSet
	q := r.URL.Query()

	if s := q.Get("is_palindrome"); s != "" {
		v, err := strconv.ParseBool(s)
		if err != nil {
			return filter, errors.NewInvalidRequest("is_palindrome must be a boolean")
		}
		filter.IsPalindrome = &v
	}
	if s := q.Get("min_length"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return filter, errors.NewInvalidRequest("min_length must be an integer")
		}
		filter.MinLength = &v
	}
	if s := q.Get("max_length"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return filter, errors.NewInvalidRequest("max_length must be an integer")
		}
		filter.MaxLength = &v
	}
	if s := q.Get("word_count"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return filter, errors.NewInvalidRequest("word_count must be an integer")
		}
		filter.WordCount = &v
	}
	if s := q.Get("contains_character"); s != "" {
		filter.ContainsCharacter = &s
	}

	return filter, nil
}
