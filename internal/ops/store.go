package ops

import (
	"context"
	"database/sql"
	"time"
	"unicode/utf8"

	"github.com/strandkit/strand/internal/analysis"
	"github.com/strandkit/strand/internal/config"
	"github.com/strandkit/strand/internal/db"
	"github.com/strandkit/strand/internal/entry"
	"github.com/strandkit/strand/internal/errors"
)

// StoreInput contains parameters for the Store operation.
type StoreInput struct {
	// Value is the string to analyze and persist. The empty string is a
	// valid value with well-defined properties.
	Value string
}

// Store analyzes a string and persists the resulting entry, keyed by its
// content hash. Submitting the same string twice fails with ALREADY_EXISTS;
// entries are never updated in place.
func Store(ctx context.Context, database *sql.DB, cfg *config.Config, input StoreInput) (*entry.Entry, error) {
	if cfg.ValueMaxChars > 0 {
		if chars := utf8.RuneCountInString(input.Value); chars > cfg.ValueMaxChars {
			return nil, errors.NewValueTooLarge(cfg.ValueMaxChars, chars)
		}
	}

	props := analysis.Compute(input.Value)

	e := &entry.Entry{
		ID:         props.ContentHash,
		Value:      input.Value,
		Properties: props,
		CreatedAt:  time.Now().Unix(),
	}

	if err := db.Insert(database, e); err != nil {
		return nil, err
	}

	return e, nil
}
