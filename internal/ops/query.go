package ops

import (
	"context"
	"database/sql"

	"github.com/strandkit/strand/internal/analysis"
	"github.com/strandkit/strand/internal/errors"
)

// QueryInput contains parameters for the Query operation.
type QueryInput struct {
	// Query is free-text in the translator's fixed grammar,
	// e.g. "single word palindromes longer than 3".
	Query string
}

// InterpretedQuery echoes how the natural-language text was understood.
type InterpretedQuery struct {
	Original      string             `json:"original"`
	ParsedFilters analysis.FilterSet `json:"parsed_filters"`
}

// QueryOutput contains the result of the Query operation.
type QueryOutput struct {
	ListOutput
	InterpretedQuery InterpretedQuery `json:"interpreted_query"`
}

// Query translates a natural-language query into a filter set and runs the
// same matching path as List.
func Query(ctx context.Context, database *sql.DB, input QueryInput) (*QueryOutput, error) {
	if input.Query == "" {
		return nil, errors.NewInvalidRequest("query is required")
	}

	filter, err := analysis.Translate(input.Query)
	if err != nil {
		return nil, err
	}

	list, err := List(ctx, database, filter)
	if err != nil {
		return nil, err
	}

	return &QueryOutput{
		ListOutput: *list,
		InterpretedQuery: InterpretedQuery{
			Original:      input.Query,
			ParsedFilters: filter,
		},
	}, nil
}
