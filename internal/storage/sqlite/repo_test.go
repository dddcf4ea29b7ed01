package sqlite

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
)

func newRepo(tb testing.TB) *Repository {
	tb.Helper()
	dsn := filepath.Join(tb.TempDir(), "seed.db")
	r, closeFn, err := NewRepository(context.Background(), Config{DSN: dsn})
	if err != nil {
		tb.Fatalf("NewRepository(%s): %v", dsn, err)
	}
	tb.Cleanup(closeFn)
	return r
}

func count(tb testing.TB, r *Repository, query string) int {
	tb.Helper()
	var n int
	if err := r.db.QueryRowContext(context.Background(), query).Scan(&n); err != nil {
		tb.Fatalf("query %q: %v", query, err)
	}
	return n
}

const createScript = `CREATE TABLE dept (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name VARCHAR(255) NOT NULL
);
INSERT INTO dept (name) VALUES ('Eng');
INSERT INTO dept (name) VALUES ('Ops');
CREATE TABLE emp (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  dept INTEGER REFERENCES dept(id),
  name VARCHAR(255) NOT NULL
);
INSERT INTO emp (dept, name) VALUES (2, 'Alice');
`

func TestExecScriptCreateAndUpdate(t *testing.T) {
	t.Parallel()

	r := newRepo(t)
	ctx := context.Background()

	if err := r.ExecScript(ctx, createScript); err != nil {
		t.Fatalf("ExecScript(create) error = %v", err)
	}
	if n := count(t, r, "SELECT dept FROM emp WHERE name = 'Alice'"); n != 2 {
		t.Fatalf("alice.dept = %d, want 2", n)
	}

	// Parent rows are deleted while children still point at them; the
	// deferred foreign key check only runs at commit.
	update := `DELETE FROM dept;
DELETE FROM sqlite_sequence WHERE name = 'dept';
INSERT INTO dept (name) VALUES ('Sales');
DELETE FROM emp;
DELETE FROM sqlite_sequence WHERE name = 'emp';
INSERT INTO emp (dept, name) VALUES (1, 'Bob');
`
	if err := r.ExecScript(ctx, update); err != nil {
		t.Fatalf("ExecScript(update) error = %v", err)
	}
	if n := count(t, r, "SELECT id FROM dept WHERE name = 'Sales'"); n != 1 {
		t.Fatalf("sales.id = %d, want 1 after sequence reset", n)
	}
	if n := count(t, r, "SELECT count(*) FROM emp"); n != 1 {
		t.Fatalf("emp rows = %d, want 1", n)
	}
}

func TestExecScriptRollsBack(t *testing.T) {
	t.Parallel()

	r := newRepo(t)
	ctx := context.Background()
	if err := r.ExecScript(ctx, createScript); err != nil {
		t.Fatalf("ExecScript(create) error = %v", err)
	}

	// emp.dept = 9 has no parent row, so the commit must fail.
	err := r.ExecScript(ctx, "INSERT INTO dept (name) VALUES ('HR');\nINSERT INTO emp (dept, name) VALUES (9, 'Ghost');\n")
	if err == nil {
		t.Fatal("ExecScript() with a dangling reference: error = nil")
	}
	if !strings.Contains(err.Error(), "sqlite:") {
		t.Fatalf("error = %v", err)
	}
	if n := count(t, r, "SELECT count(*) FROM dept"); n != 2 {
		t.Fatalf("dept rows = %d, want 2 after rollback", n)
	}
}

func TestExecEmptyIsNoop(t *testing.T) {
	t.Parallel()

	r := newRepo(t)
	if err := r.ExecScript(context.Background(), "  \n"); err != nil {
		t.Fatalf("ExecScript(blank) error = %v", err)
	}
}

func TestNewRepositoryRequiresDSN(t *testing.T) {
	t.Parallel()

	if _, _, err := NewRepository(context.Background(), Config{DSN: " "}); err == nil {
		t.Fatal("NewRepository() with empty DSN: error = nil")
	}
}
