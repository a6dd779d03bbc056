package ops

import (
	"context"
	"database/sql"

	"github.com/strandkit/strand/internal/entry"
	"github.com/strandkit/strand/internal/errors"
)

// FetchInput contains parameters for the Fetch operation.
type FetchInput struct {
	// Key is either the original string or its content hash.
	Key string
}

// Fetch retrieves an entry by value or content hash.
func Fetch(ctx context.Context, database *sql.DB, input FetchInput) (*entry.Entry, error) {
	if input.Key == "" {
		return nil, errors.NewInvalidRequest("must specify a value or content hash")
	}
	return lookup(database, input.Key)
}
