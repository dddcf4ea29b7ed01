package sqlite

import (
	"context"

	"tsql/internal/storage"
	sqliteddl "tsql/internal/storage/sqlite/ddl"
)

// openRepository opens the database a compiled script is applied to.
// Tests swap it to apply without touching disk.
var openRepository = NewRepository

// applier is what storage.Apply receives for -s SQLite: the repository
// plus the cleanup NewRepository handed back.
type applier struct {
	*Repository
	release func()
}

var _ storage.Repository = (*applier)(nil)

// Close releases the database handle once the script has run.
func (a *applier) Close() {
	if a.release != nil {
		a.release()
	}
}

// The backend is keyed by the dialect name so one -s value selects both the
// generated SQL and the database it is applied to.
func init() {
	storage.Register(sqliteddl.Name, func(ctx context.Context, cfg storage.Config) (storage.Repository, error) {
		r, release, err := openRepository(ctx, Config{DSN: cfg.DSN})
		if err != nil {
			return nil, err
		}
		return &applier{Repository: r, release: release}, nil
	})
}
