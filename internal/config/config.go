// Package config centralizes the compiler's configuration. Tunables come from
// command-line flags whose defaults are seeded from environment variables,
// which in turn sit on top of an optional YAML project file.
//
// Typical usage:
//
//	cfg, err := config.Load() // reads os.Args and os.Environ
//
// For tests, prefer LoadFromArgs to keep them hermetic:
//
//	fs := flag.NewFlagSet("test", flag.ContinueOnError)
//	getenv := func(k string) string { return testEnv[k] }
//	cfg, err := config.LoadFromArgs(fs, getenv, []string{"-s", "SQLite", "seed.tsql"})
package config

import (
	"errors"
	"flag"
	"os"
	"strings"
)

// DefaultDialect is used when neither the project file, the environment
// nor a flag selects one.
const DefaultDialect = "PostgreSQL"

// Config holds everything derived from the project file, the environment
// and the flags. It is not mutated after LoadFromArgs returns.
type Config struct {
	// Sources are the input files in compilation order: project file
	// sources first, then positional arguments.
	Sources []string

	Dialect      string // target dialect name, validated by the caller
	Update       bool   // truncate and reseed instead of creating tables
	KeywordsFile string // replaces the embedded keyword list when set

	// ApplyDSN, when set, makes the compiled script run against a database
	// of the selected dialect.
	ApplyDSN string
	// Every is a cron schedule for re-applying the sources. Requires ApplyDSN.
	Every string

	Verbose    bool
	ConfigFile string // project file that seeded the defaults, if any
}

// LoadFromArgs defines the flags on fs, seeds their defaults from the project
// file and getenv, and parses args. Positional source paths may appear
// between flags.
//
// Precedence, lowest first:
//  1. Built-in defaults.
//  2. The YAML project file named by -config or TSQL_CONFIG.
//  3. Environment variables.
//  4. Explicit flags in args.
func LoadFromArgs(fs *flag.FlagSet, getenv func(string) string, args []string) (*Config, error) {
	cfg := &Config{Dialect: DefaultDialect}

	cfg.ConfigFile = scanConfigFlag(args)
	if cfg.ConfigFile == "" {
		cfg.ConfigFile = getenv("TSQL_CONFIG")
	}
	var projectSources []string
	if cfg.ConfigFile != "" {
		p, err := readProject(cfg.ConfigFile)
		if err != nil {
			return nil, err
		}
		p.apply(cfg)
		projectSources = p.Sources
	}

	envOrDefaultFn := func(k, d string) string {
		if v := getenv(k); v != "" {
			return v
		}
		return d
	}
	boolEnvOrDefaultFn := func(k string, d bool) bool {
		if v := strings.ToLower(getenv(k)); v != "" {
			switch v {
			case "1", "true", "yes", "on":
				return true
			case "0", "false", "no", "off":
				return false
			}
		}
		return d
	}

	dialect := envOrDefaultFn("TSQL_SQL", cfg.Dialect)
	update := boolEnvOrDefaultFn("TSQL_UPDATE", cfg.Update)

	fs.StringVar(&cfg.Dialect, "s", dialect, "Target SQL dialect: PostgreSQL or SQLite (shorthand)")
	fs.StringVar(&cfg.Dialect, "sql", dialect, "Target SQL dialect: PostgreSQL or SQLite")
	fs.BoolVar(&cfg.Update, "u", update, "Truncate and reseed existing tables instead of creating them (shorthand)")
	fs.BoolVar(&cfg.Update, "update", update, "Truncate and reseed existing tables instead of creating them")
	fs.StringVar(&cfg.KeywordsFile, "keywords", envOrDefaultFn("TSQL_KEYWORDS", cfg.KeywordsFile), "Keyword list replacing the built-in one (dialect,keyword,category)")
	fs.StringVar(&cfg.ApplyDSN, "apply", envOrDefaultFn("TSQL_APPLY_DSN", cfg.ApplyDSN), "Run the compiled script against this database")
	fs.StringVar(&cfg.Every, "every", envOrDefaultFn("TSQL_EVERY", cfg.Every), "Cron schedule for re-applying the sources (needs -apply)")
	fs.BoolVar(&cfg.Verbose, "v", boolEnvOrDefaultFn("TSQL_VERBOSE", cfg.Verbose), "Log per-table details to stderr")
	fs.StringVar(&cfg.ConfigFile, "config", cfg.ConfigFile, "YAML project file")

	positional, err := parseInterleaved(fs, args)
	if err != nil {
		return nil, err
	}
	cfg.Sources = append(projectSources, positional...)

	if len(cfg.Sources) == 0 {
		return nil, errors.New("no source files given")
	}
	if cfg.Every != "" && cfg.ApplyDSN == "" {
		return nil, errors.New("-every requires -apply")
	}
	return cfg, nil
}

// Load is the production entry point. It parses os.Args[1:] on
// flag.CommandLine and reads the process environment.
func Load() (*Config, error) {
	flag.CommandLine.Init(os.Args[0], flag.ContinueOnError)
	return LoadFromArgs(flag.CommandLine, os.Getenv, os.Args[1:])
}

// parseInterleaved parses args on fs and collects the positional arguments
// that the flag package would otherwise stop at. Everything after "--" is
// positional.
func parseInterleaved(fs *flag.FlagSet, args []string) ([]string, error) {
	var out []string
	rest := args
	for len(rest) > 0 {
		if err := fs.Parse(rest); err != nil {
			return nil, err
		}
		left := fs.Args()
		consumed := len(rest) - len(left)
		if consumed > 0 && rest[consumed-1] == "--" {
			return append(out, left...), nil
		}
		if len(left) == 0 {
			break
		}
		out = append(out, left[0])
		rest = left[1:]
	}
	return out, nil
}

// scanConfigFlag finds -config before the real parse, because the project
// file has to seed the defaults of every other flag.
func scanConfigFlag(args []string) string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			return ""
		}
		name, value, hasValue := strings.Cut(strings.TrimLeft(a, "-"), "=")
		if !strings.HasPrefix(a, "-") || name != "config" {
			continue
		}
		if hasValue {
			return value
		}
		if i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}
