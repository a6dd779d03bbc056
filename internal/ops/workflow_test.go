package ops

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strandkit/strand/internal/analysis"
	"github.com/strandkit/strand/internal/errors"
)

// TestWorkflow_StoreFilterDelete walks the full lifecycle an API consumer
// would drive: submit strings, look them up, filter structurally and via
// natural language, then delete.
func TestWorkflow_StoreFilterDelete(t *testing.T) {
	database, cfg := setupTest(t)
	ctx := context.Background()

	values := []string{"level", "racecar", "race a car", "Aa", "zebra crossing"}
	for _, v := range values {
		e, err := Store(ctx, database, cfg, StoreInput{Value: v})
		require.NoError(t, err, "Store(%q)", v)
		require.Equal(t, analysis.Hash(v), e.ID)
	}

	// Resubmission is rejected
	_, err := Store(ctx, database, cfg, StoreInput{Value: "level"})
	require.True(t, errors.Is(err, errors.ErrAlreadyExists))

	// Exact lookup by value and by hash return the same entry
	byValue, err := Fetch(ctx, database, FetchInput{Key: "racecar"})
	require.NoError(t, err)
	byHash, err := Fetch(ctx, database, FetchInput{Key: byValue.ID})
	require.NoError(t, err)
	assert.Equal(t, byValue, byHash)

	// Structured filter: single-word palindromes
	result, err := List(ctx, database, analysis.FilterSet{
		IsPalindrome: boolPtr(true),
		WordCount:    intPtr(1),
	})
	require.NoError(t, err)
	assert.Equal(t, 3, result.Count) // level, racecar, Aa

	// The natural-language path reaches the same matcher
	nl, err := Query(ctx, database, QueryInput{Query: "single word palindromes"})
	require.NoError(t, err)
	assert.Equal(t, result.Count, nl.Count)
	assert.ElementsMatch(t, result.Data, nl.Data)

	// Delete one and the filtered view shrinks
	_, err = Delete(ctx, database, DeleteInput{Key: "racecar"})
	require.NoError(t, err)

	result, err = List(ctx, database, analysis.FilterSet{
		IsPalindrome: boolPtr(true),
		WordCount:    intPtr(1),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Count)

	_, err = Fetch(ctx, database, FetchInput{Key: "racecar"})
	assert.True(t, errors.Is(err, errors.ErrNotFound))
}
