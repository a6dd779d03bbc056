// Package ops implements the operations shared by every strand frontend
// (HTTP API, MCP server, CLI): analyze, store, fetch, list, query, delete.
// Each operation is a function over an injected *sql.DB handle, so the pure
// core in internal/analysis stays testable without any storage.
package ops

import (
	"database/sql"

	"github.com/strandkit/strand/internal/analysis"
	"github.com/strandkit/strand/internal/db"
	"github.com/strandkit/strand/internal/entry"
	"github.com/strandkit/strand/internal/errors"
)

// lookup resolves a key that may be either the original string or its
// content hash. The original value is tried first so that a stored string
// which happens to look like a hex digest still resolves to itself.
func lookup(database *sql.DB, key string) (*entry.Entry, error) {
	e, err := db.GetByValue(database, key)
	if err == nil {
		return e, nil
	}
	if !errors.Is(err, errors.ErrNotFound) {
		return nil, err
	}
	return db.GetByID(database, key)
}

// ListOutput is the envelope returned by List and embedded by Query.
type ListOutput struct {
	Data           []entry.Entry      `json:"data"`
	Count          int                `json:"count"`
	FiltersApplied analysis.FilterSet `json:"filters_applied"`
}
