package api

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/strandkit/strand/internal/analysis"
	"github.com/strandkit/strand/internal/config"
	"github.com/strandkit/strand/internal/db"
	"github.com/strandkit/strand/internal/entry"
	"github.com/strandkit/strand/internal/ops"
)

func setupServer(t *testing.T) (*http.Server, *sql.DB) {
	t.Helper()
	database, err := db.Init(t.TempDir())
	if err != nil {
		t.Fatalf("db.Init: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	return NewServer(database, config.DefaultConfig(), "test", "127.0.0.1", 0), database
}

func doRequest(t *testing.T, srv *http.Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, req)
	return rec
}

func storeValue(t *testing.T, database *sql.DB, value string) *entry.Entry {
	t.Helper()
	e, err := ops.Store(context.Background(), database, config.DefaultConfig(), ops.StoreInput{Value: value})
	if err != nil {
		t.Fatalf("store %q: %v", value, err)
	}
	return e
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error struct {
			Code      string `json:"code"`
			Status    int    `json:"status"`
			RequestID string `json:"request_id"`
		} `json:"error"`
	}
	decodeBody(t, rec, &body)
	if body.Error.RequestID == "" {
		t.Error("error payload missing request_id")
	}
	return body.Error.Code
}

func TestHandleHealth(t *testing.T) {
	srv, _ := setupServer(t)

	rec := doRequest(t, srv, "GET", "/", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body map[string]string
	decodeBody(t, rec, &body)
	if body["status"] != "ok" {
		t.Errorf("status = %q, want ok", body["status"])
	}
}

func TestHandleCreate(t *testing.T) {
	srv, _ := setupServer(t)

	rec := doRequest(t, srv, "POST", "/strings", `{"value":"race a car"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}

	var e entry.Entry
	decodeBody(t, rec, &e)
	if e.ID != analysis.Hash("race a car") {
		t.Errorf("ID = %q, want content hash", e.ID)
	}
	if e.Properties.WordCount != 3 {
		t.Errorf("WordCount = %d, want 3", e.Properties.WordCount)
	}
	if e.CreatedAt == 0 {
		t.Error("CreatedAt should be set")
	}
}

func TestHandleCreate_Duplicate(t *testing.T) {
	srv, database := setupServer(t)
	storeValue(t, database, "hello")

	rec := doRequest(t, srv, "POST", "/strings", `{"value":"hello"}`)
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
	if code := errorCode(t, rec); code != "ALREADY_EXISTS" {
		t.Errorf("error code = %q, want ALREADY_EXISTS", code)
	}
}

func TestHandleCreate_MissingValue(t *testing.T) {
	srv, _ := setupServer(t)

	for _, body := range []string{`{}`, `not json`, `{"value": 42}`} {
		rec := doRequest(t, srv, "POST", "/strings", body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %q: status = %d, want 400", body, rec.Code)
		}
	}
}

func TestHandleCreate_EmptyValueAllowed(t *testing.T) {
	srv, _ := setupServer(t)

	rec := doRequest(t, srv, "POST", "/strings", `{"value":""}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}
}

func TestHandleFetch(t *testing.T) {
	srv, database := setupServer(t)
	stored := storeValue(t, database, "level")

	// By value
	rec := doRequest(t, srv, "GET", "/strings/level", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var e entry.Entry
	decodeBody(t, rec, &e)
	if e.ID != stored.ID {
		t.Errorf("ID = %q, want %q", e.ID, stored.ID)
	}

	// By content hash
	rec = doRequest(t, srv, "GET", "/strings/"+stored.ID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("fetch by hash status = %d, want 200", rec.Code)
	}
}

func TestHandleFetch_NotFound(t *testing.T) {
	srv, _ := setupServer(t)

	rec := doRequest(t, srv, "GET", "/strings/missing", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if code := errorCode(t, rec); code != "NOT_FOUND" {
		t.Errorf("error code = %q, want NOT_FOUND", code)
	}
}

func TestHandleFetch_EncodedValue(t *testing.T) {
	srv, database := setupServer(t)
	storeValue(t, database, "race a car")

	rec := doRequest(t, srv, "GET", "/strings/"+url.PathEscape("race a car"), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
}

func TestHandleList(t *testing.T) {
	srv, database := setupServer(t)
	for _, v := range []string{"level", "racecar", "race a car"} {
		storeValue(t, database, v)
	}

	rec := doRequest(t, srv, "GET", "/strings?is_palindrome=true&min_length=3", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Data           []entry.Entry      `json:"data"`
		Count          int                `json:"count"`
		FiltersApplied analysis.FilterSet `json:"filters_applied"`
	}
	decodeBody(t, rec, &body)

	if body.Count != 2 {
		t.Errorf("count = %d, want 2", body.Count)
	}
	if body.FiltersApplied.MinLength == nil || *body.FiltersApplied.MinLength != 3 {
		t.Error("filters_applied should echo min_length=3")
	}
	if body.FiltersApplied.WordCount != nil {
		t.Error("filters_applied should omit unset word_count")
	}
}

func TestHandleList_NoFilters(t *testing.T) {
	srv, database := setupServer(t)
	storeValue(t, database, "one")

	rec := doRequest(t, srv, "GET", "/strings", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var body struct {
		Count int `json:"count"`
	}
	decodeBody(t, rec, &body)
	if body.Count != 1 {
		t.Errorf("count = %d, want 1", body.Count)
	}
}

func TestHandleList_ConflictingBounds(t *testing.T) {
	srv, _ := setupServer(t)

	rec := doRequest(t, srv, "GET", "/strings?min_length=10&max_length=5", "")
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	if code := errorCode(t, rec); code != "CONFLICTING_FILTERS" {
		t.Errorf("error code = %q, want CONFLICTING_FILTERS", code)
	}
}

func TestHandleList_BadParams(t *testing.T) {
	srv, _ := setupServer(t)

	for _, qs := range []string{
		"is_palindrome=maybe",
		"min_length=abc",
		"max_length=1.5",
		"word_count=many",
		"contains_character=ab",
	} {
		rec := doRequest(t, srv, "GET", "/strings?"+qs, "")
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", qs, rec.Code)
		}
	}
}

func TestHandleQuery(t *testing.T) {
	srv, database := setupServer(t)
	for _, v := range []string{"level", "hello"} {
		storeValue(t, database, v)
	}

	rec := doRequest(t, srv, "GET", "/strings/filter-by-natural-language?query="+url.QueryEscape("palindromes longer than 3"), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Count            int `json:"count"`
		InterpretedQuery struct {
			Original      string             `json:"original"`
			ParsedFilters analysis.FilterSet `json:"parsed_filters"`
		} `json:"interpreted_query"`
	}
	decodeBody(t, rec, &body)

	if body.Count != 1 {
		t.Errorf("count = %d, want 1 (level)", body.Count)
	}
	if body.InterpretedQuery.Original != "palindromes longer than 3" {
		t.Errorf("interpreted original = %q", body.InterpretedQuery.Original)
	}
	if body.InterpretedQuery.ParsedFilters.MinLength == nil || *body.InterpretedQuery.ParsedFilters.MinLength != 4 {
		t.Error("parsed_filters should carry min_length=4")
	}
}

func TestHandleQuery_Unparseable(t *testing.T) {
	srv, _ := setupServer(t)

	rec := doRequest(t, srv, "GET", "/strings/filter-by-natural-language?query=xyz123", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if code := errorCode(t, rec); code != "UNPARSEABLE_QUERY" {
		t.Errorf("error code = %q, want UNPARSEABLE_QUERY", code)
	}
}

func TestHandleQuery_Missing(t *testing.T) {
	srv, _ := setupServer(t)

	rec := doRequest(t, srv, "GET", "/strings/filter-by-natural-language", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestHandleDelete(t *testing.T) {
	srv, database := setupServer(t)
	storeValue(t, database, "goodbye")

	rec := doRequest(t, srv, "DELETE", "/strings/goodbye", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}

	rec = doRequest(t, srv, "GET", "/strings/goodbye", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("fetch after delete status = %d, want 404", rec.Code)
	}

	rec = doRequest(t, srv, "DELETE", "/strings/goodbye", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", rec.Code)
	}
}

func TestRequestIDHeader(t *testing.T) {
	srv, _ := setupServer(t)

	rec := doRequest(t, srv, "GET", "/", "")
	id := rec.Header().Get("X-Request-ID")
	if len(id) != 26 {
		t.Errorf("X-Request-ID = %q, want a 26-char ULID", id)
	}
}

func TestCORS(t *testing.T) {
	srv, _ := setupServer(t)

	rec := doRequest(t, srv, "GET", "/strings", "")
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("missing Access-Control-Allow-Origin header")
	}

	// Preflight short-circuits before routing
	rec = doRequest(t, srv, "OPTIONS", "/strings", "")
	if rec.Code != http.StatusNoContent {
		t.Errorf("preflight status = %d, want 204", rec.Code)
	}
}
