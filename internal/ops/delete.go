package ops

import (
	"context"
	"database/sql"

	"github.com/strandkit/strand/internal/db"
	"github.com/strandkit/strand/internal/errors"
)

// DeleteInput contains parameters for the Delete operation.
type DeleteInput struct {
	// Key is either the original string or its content hash.
	Key string
}

// DeleteOutput contains the result of the Delete operation.
type DeleteOutput struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

// Delete removes an entry by value or content hash. Deletion is terminal.
func Delete(ctx context.Context, database *sql.DB, input DeleteInput) (*DeleteOutput, error) {
	if input.Key == "" {
		return nil, errors.NewInvalidRequest("must specify a value or content hash")
	}

	e, err := lookup(database, input.Key)
	if err != nil {
		return nil, err
	}

	if err := db.Delete(database, e.ID); err != nil {
		return nil, err
	}

	return &DeleteOutput{ID: e.ID, Deleted: true}, nil
}
