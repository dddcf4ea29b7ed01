package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// project is the YAML project file. Relative paths resolve against the
// directory holding the file.
//
//	sql: SQLite
//	update: false
//	sources:
//	  - seed/departments.tsql
//	  - seed/employees.tsql
//	apply: file:dev.db
//	every: "@every 1m"
type project struct {
	Sources  []string `yaml:"sources"`
	SQL      string   `yaml:"sql"`
	Update   *bool    `yaml:"update"`
	Keywords string   `yaml:"keywords"`
	Apply    string   `yaml:"apply"`
	Every    string   `yaml:"every"`
	Verbose  *bool    `yaml:"verbose"`
}

// apply overlays the values set in the file on cfg.
func (p *project) apply(cfg *Config) {
	if p.SQL != "" {
		cfg.Dialect = p.SQL
	}
	if p.Update != nil {
		cfg.Update = *p.Update
	}
	if p.Keywords != "" {
		cfg.KeywordsFile = p.Keywords
	}
	if p.Apply != "" {
		cfg.ApplyDSN = p.Apply
	}
	if p.Every != "" {
		cfg.Every = p.Every
	}
	if p.Verbose != nil {
		cfg.Verbose = *p.Verbose
	}
}

func readProject(path string) (*project, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	var p project
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	for i, s := range p.Sources {
		p.Sources[i] = resolve(dir, s)
	}
	if p.Keywords != "" {
		p.Keywords = resolve(dir, p.Keywords)
	}
	return &p, nil
}

func resolve(dir, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}
