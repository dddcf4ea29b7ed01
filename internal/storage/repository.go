// Package storage contains the backend-agnostic contract for applying a
// compiled script to a live database, plus a small factory that backends
// register with at init time.
//
// Import tsql/internal/storage/all to enable every built-in backend.
package storage

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Repository executes SQL against one database.
type Repository interface {
	// ExecScript runs a multi-statement script in one transaction.
	ExecScript(ctx context.Context, script string) error
	Close()
}

// Config selects a backend and its connection string. Kind is a dialect
// name and is matched case-insensitively.
type Config struct {
	Kind string
	DSN  string
}

// Factory opens a Repository for cfg.
type Factory func(ctx context.Context, cfg Config) (Repository, error)

var (
	factoryMu sync.RWMutex
	factories = map[string]Factory{}
)

// Register registers (or replaces) the factory for kind. It is typically
// called from backend packages' init() functions.
func Register(kind string, f Factory) {
	factoryMu.Lock()
	defer factoryMu.Unlock()
	factories[strings.ToLower(kind)] = f
}

// New opens a Repository using the factory registered for cfg.Kind.
func New(ctx context.Context, cfg Config) (Repository, error) {
	factoryMu.RLock()
	f, ok := factories[strings.ToLower(cfg.Kind)]
	factoryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("no storage backend registered for kind=%q (have %s)",
			cfg.Kind, strings.Join(Kinds(), ", "))
	}
	return f(ctx, cfg)
}

// Kinds returns the registered backend kinds, sorted.
func Kinds() []string {
	factoryMu.RLock()
	defer factoryMu.RUnlock()
	out := make([]string, 0, len(factories))
	for k := range factories {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
