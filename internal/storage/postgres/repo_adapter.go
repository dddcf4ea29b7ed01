package postgres

import (
	"context"

	"tsql/internal/storage"
	pgddl "tsql/internal/storage/postgres/ddl"
)

// openRepository connects to the server a compiled script is applied to.
// Tests swap it to apply without a live server.
var openRepository = NewRepository

// applier is what storage.Apply receives for -s PostgreSQL. Closing it
// closes the pool opened for this one apply.
type applier struct {
	*Repository
	release func()
}

var _ storage.Repository = (*applier)(nil)

func (a *applier) Close() {
	if a.release != nil {
		a.release()
	}
}

func init() {
	storage.Register(pgddl.Name, func(ctx context.Context, cfg storage.Config) (storage.Repository, error) {
		r, release, err := openRepository(ctx, Config{DSN: cfg.DSN})
		if err != nil {
			return nil, err
		}
		return &applier{Repository: r, release: release}, nil
	})
}
