package ops

import (
	"context"

	"github.com/strandkit/strand/internal/analysis"
	"github.com/strandkit/strand/internal/entry"
)

// AnalyzeInput contains parameters for the Analyze operation.
type AnalyzeInput struct {
	Value string
}

// AnalyzeOutput contains the result of the Analyze operation.
type AnalyzeOutput struct {
	Value      string           `json:"value"`
	ID         string           `json:"id"`
	Properties entry.Properties `json:"properties"`
}

// Analyze computes the properties of a string without persisting anything.
func Analyze(ctx context.Context, input AnalyzeInput) (*AnalyzeOutput, error) {
	props := analysis.Compute(input.Value)
	return &AnalyzeOutput{
		Value:      input.Value,
		ID:         props.ContentHash,
		Properties: props,
	}, nil
}
