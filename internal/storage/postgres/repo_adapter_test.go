package postgres

import (
	"context"
	"os"
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

	const dsn = "postgres://localhost/seed"
	got, err := storage.New(ctx, storage.Config{Kind: "PostgreSQL", DSN: dsn})
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

func TestNewRepositoryRequiresDSN(t *testing.T) {
	t.Parallel()

	if _, _, err := NewRepository(context.Background(), Config{}); err == nil {
		t.Fatal("NewRepository() with empty DSN: error = nil")
	}
}

// TestExecScriptIntegration runs a small script against a live server. It
// is skipped unless TSQL_TEST_PG_DSN is set.
func TestExecScriptIntegration(t *testing.T) {
	dsn := os.Getenv("TSQL_TEST_PG_DSN")
	if dsn == "" {
		t.Skip("TSQL_TEST_PG_DSN not set")
	}
	ctx := context.Background()

	r, closeFn, err := NewRepository(ctx, Config{DSN: dsn})
	if err != nil {
		t.Fatalf("NewRepository() error = %v", err)
	}
	defer closeFn()

	script := "DROP TABLE IF EXISTS tsql_it;\n" +
		"CREATE TABLE tsql_it (\n  id SERIAL PRIMARY KEY,\n  name VARCHAR(255) NOT NULL\n);\n" +
		"INSERT INTO tsql_it (name) VALUES ('Eng');\n"
	if err := r.ExecScript(ctx, script); err != nil {
		t.Fatalf("ExecScript() error = %v", err)
	}
	defer func() { _ = r.ExecScript(ctx, "DROP TABLE IF EXISTS tsql_it;") }()

	var id int
	if err := r.pool.QueryRow(ctx, "SELECT id FROM tsql_it WHERE name = 'Eng'").Scan(&id); err != nil {
		t.Fatalf("query: %v", err)
	}
	if id != 1 {
		t.Fatalf("id = %d, want 1", id)
	}

	// A failing statement rolls the whole script back.
	bad := "INSERT INTO tsql_it (name) VALUES ('Ops');\nINSERT INTO missing_table VALUES (1);\n"
	if err := r.ExecScript(ctx, bad); err == nil {
		t.Fatal("ExecScript() with a bad statement: error = nil")
	}
	var n int
	if err := r.pool.QueryRow(ctx, "SELECT count(*) FROM tsql_it").Scan(&n); err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Fatalf("rows after rollback = %d, want 1", n)
	}
}
