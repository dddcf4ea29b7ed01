// Package reseed recompiles the sources on a cron schedule and re-applies the
// result to the database when it changed.
//
// A cycle compiles, fingerprints the script with xxh3 and skips the apply
// step when the fingerprint matches the last applied script. Cycles never
// overlap; a cycle that fires while the previous one still runs is dropped.
package reseed

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/zeebo/xxh3"
)

// CompileFunc produces the script of one cycle.
type CompileFunc func(ctx context.Context) (string, error)

// ApplyFunc runs a script against the target database.
type ApplyFunc func(ctx context.Context, runID, script string) error

// Config configures a Scheduler.
type Config struct {
	// Spec is a cron expression with optional seconds field, or a
	// descriptor such as "@hourly" or "@every 30s".
	Spec    string
	Compile CompileFunc
	Apply   ApplyFunc

	// Timeout bounds one cycle. Zero means 5 minutes.
	Timeout time.Duration
	Verbose bool
}

// Result describes one finished cycle.
type Result struct {
	RunID       string
	Fingerprint uint64
	Skipped     bool // script unchanged since the last apply
}

// Scheduler runs reseed cycles.
type Scheduler struct {
	cfg  Config
	cron *cron.Cron

	mu      sync.Mutex // serializes cycles and guards the fields below
	last    uint64
	primed  bool
	entryID cron.EntryID
}

var specParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// ValidateSpec reports whether spec is a schedule New would accept.
func ValidateSpec(spec string) error {
	if _, err := specParser.Parse(spec); err != nil {
		return fmt.Errorf("invalid schedule %q: %w", spec, err)
	}
	return nil
}

// New returns a stopped Scheduler.
func New(cfg Config) (*Scheduler, error) {
	if cfg.Compile == nil || cfg.Apply == nil {
		return nil, fmt.Errorf("reseed: compile and apply functions are required")
	}
	if err := ValidateSpec(cfg.Spec); err != nil {
		return nil, fmt.Errorf("reseed: %w", err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Minute
	}
	logger := cron.PrintfLogger(log.Default())
	return &Scheduler{
		cfg: cfg,
		cron: cron.New(
			cron.WithParser(specParser),
			cron.WithLocation(time.UTC),
			cron.WithChain(cron.SkipIfStillRunning(logger)),
			cron.WithLogger(logger),
		),
	}, nil
}

// Prime records script as already applied, so the first cycle skips it when
// the sources are unchanged.
func (s *Scheduler) Prime(script string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last, s.primed = xxh3.HashString(script), true
}

// RunOnce executes a single cycle.
func (s *Scheduler) RunOnce(ctx context.Context) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := Result{RunID: uuid.NewString()}
	start := time.Now()

	script, err := s.cfg.Compile(ctx)
	if err != nil {
		return res, fmt.Errorf("reseed: run %s: compile: %w", res.RunID, err)
	}
	res.Fingerprint = xxh3.HashString(script)
	if s.primed && res.Fingerprint == s.last {
		res.Skipped = true
		if s.cfg.Verbose {
			log.Printf("reseed: run=%s fingerprint=%016x unchanged, skipping", res.RunID, res.Fingerprint)
		}
		return res, nil
	}

	if err := s.cfg.Apply(ctx, res.RunID, script); err != nil {
		return res, fmt.Errorf("reseed: run %s: %w", res.RunID, err)
	}
	s.last, s.primed = res.Fingerprint, true
	log.Printf("reseed: run=%s fingerprint=%016x applied elapsed=%s",
		res.RunID, res.Fingerprint, time.Since(start).Truncate(time.Millisecond))
	return res, nil
}

// Start schedules cycles until Stop is called or ctx is done. Each cycle
// derives its context from ctx.
func (s *Scheduler) Start(ctx context.Context) error {
	id, err := s.cron.AddFunc(s.cfg.Spec, func() {
		cctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
		if _, err := s.RunOnce(cctx); err != nil {
			log.Printf("reseed: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("reseed: schedule %q: %w", s.cfg.Spec, err)
	}

	s.mu.Lock()
	s.entryID = id
	s.mu.Unlock()

	s.cron.Start()
	log.Printf("reseed: scheduler started spec=%q next=%s", s.cfg.Spec, s.Next().Format(time.RFC3339))
	return nil
}

// Next returns the time of the next scheduled cycle, or the zero time when
// the scheduler has not been started.
func (s *Scheduler) Next() time.Time {
	s.mu.Lock()
	id := s.entryID
	s.mu.Unlock()
	if id == 0 {
		return time.Time{}
	}
	return s.cron.Entry(id).Next
}

// Stop halts scheduling and waits for a running cycle to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	log.Println("reseed: scheduler stopped")
}
