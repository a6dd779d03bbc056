package ops

import (
	"context"
	"database/sql"

	"github.com/strandkit/strand/internal/analysis"
	"github.com/strandkit/strand/internal/db"
	"github.com/strandkit/strand/internal/entry"
)

// List retrieves every entry matching the filter set. The scan is a full
// table read; predicates are evaluated in memory against each stored
// property record, never recomputed from the value.
func List(ctx context.Context, database *sql.DB, filter analysis.FilterSet) (*ListOutput, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	entries, err := db.ListAll(database)
	if err != nil {
		return nil, err
	}

	// Ensure we return an empty array rather than nil
	matched := []entry.Entry{}
	for _, e := range entries {
		if filter.Matches(e.Properties) {
			matched = append(matched, e)
		}
	}

	return &ListOutput{
		Data:           matched,
		Count:          len(matched),
		FiltersApplied: filter,
	}, nil
}
