package storage

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"
)

// Apply opens the backend selected by cfg, runs script in one transaction
// and closes the connection again. runID tags the log lines of this call.
func Apply(ctx context.Context, cfg Config, runID, script string) error {
	if strings.TrimSpace(script) == "" {
		log.Printf("apply: run=%s kind=%s empty script, nothing to do", runID, cfg.Kind)
		return nil
	}

	start := time.Now()
	repo, err := New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("apply: open %s: %w", cfg.Kind, err)
	}
	defer repo.Close()

	if err := repo.ExecScript(ctx, script); err != nil {
		log.Printf("apply: run=%s kind=%s failed after=%s err=%v",
			runID, cfg.Kind, time.Since(start).Truncate(time.Millisecond), err)
		return fmt.Errorf("apply: %w", err)
	}
	log.Printf("apply: run=%s kind=%s bytes=%d elapsed=%s",
		runID, cfg.Kind, len(script), time.Since(start).Truncate(time.Millisecond))
	return nil
}
