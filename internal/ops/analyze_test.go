package ops

import (
	"context"
	"testing"

	"github.com/strandkit/strand/internal/analysis"
)

func TestAnalyze(t *testing.T) {
	output, err := Analyze(context.Background(), AnalyzeInput{Value: "race a car"})
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if output.Value != "race a car" {
		t.Errorf("Value = %q, want %q", output.Value, "race a car")
	}
	if output.ID != analysis.Hash("race a car") {
		t.Errorf("ID = %q, want content hash", output.ID)
	}
	if output.Properties.WordCount != 3 {
		t.Errorf("WordCount = %d, want 3", output.Properties.WordCount)
	}
	if output.Properties.IsPalindrome {
		t.Error("IsPalindrome = true, want false")
	}
}

func TestAnalyze_DoesNotPersist(t *testing.T) {
	database, _ := setupTest(t)

	if _, err := Analyze(context.Background(), AnalyzeInput{Value: "ephemeral"}); err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	result, err := List(context.Background(), database, analysis.FilterSet{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if result.Count != 0 {
		t.Errorf("Count = %d, want 0 (analyze must not store)", result.Count)
	}
}
