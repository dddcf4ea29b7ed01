package compiler

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"

	"tsql/internal/parser"
	"tsql/internal/schema"
)

// LoadFiles reads and parses every path concurrently. Documents are returned
// in the order of paths. Every file is parsed even when another one fails,
// and the error of the earliest path is reported, so diagnostics do not
// depend on scheduling.
func LoadFiles(ctx context.Context, paths []string) ([]schema.Document, error) {
	docs := make([]schema.Document, len(paths))
	errs := make([]error, len(paths))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, p := range paths {
		i, p := i, p
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return nil
			}
			src, err := os.ReadFile(p)
			if err != nil {
				errs[i] = fmt.Errorf("read source: %w", err)
				return nil
			}
			docs[i], errs[i] = parser.Parse(p, src)
			return nil
		})
	}
	_ = g.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return docs, nil
}
