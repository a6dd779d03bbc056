package ops

import (
	"context"
	"database/sql"
	"testing"

	"github.com/strandkit/strand/internal/config"
	"github.com/strandkit/strand/internal/db"
)

func setupTest(t *testing.T) (*sql.DB, *config.Config) {
	t.Helper()
	database, err := db.Init(t.TempDir())
	if err != nil {
		t.Fatalf("db.Init failed: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database, config.DefaultConfig()
}

func mustStore(t *testing.T, database *sql.DB, cfg *config.Config, value string) {
	t.Helper()
	if _, err := Store(context.Background(), database, cfg, StoreInput{Value: value}); err != nil {
		t.Fatalf("Store(%q) failed: %v", value, err)
	}
}

func boolPtr(b bool) *bool    { return &b }
func intPtr(n int) *int       { return &n }
func strPtr(s string) *string { return &s }
