package sqlite

import (
	"context"
	"testing"

	"tsql/internal/storage"
)

// TestApplyOpensThroughHook checks that the registered backend opens the
// database through openRepository and that closing the applier releases it.
func TestApplyOpensThroughHook(t *testing.T) {
	ctx := context.Background()

	orig := openRepository
	defer func() { openRepository = orig }()

	var (
		opened   Config
		released bool
		repo     = &Repository{}
	)
	openRepository = func(ctx context.Context, cfg Config) (*Repository, func(), error) {
		opened = cfg
		return repo, func() { released = true }, nil
	}

	const dsn = "file:seed.db"
	got, err := storage.New(ctx, storage.Config{Kind: "SQLite", DSN: dsn})
	if err != nil {
		t.Fatalf("storage.New() error = %v", err)
	}
	if opened.DSN != dsn {
		t.Fatalf("opened DSN = %q, want %q", opened.DSN, dsn)
	}
	a, ok := got.(*applier)
	if !ok || a.Repository != repo {
		t.Fatalf("storage.New() = %#v, want the hooked repository", got)
	}

	got.Close()
	if !released {
		t.Fatal("Close() did not release the database")
	}
}
