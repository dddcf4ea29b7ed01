package compiler

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"tsql/internal/analyzer"
	"tsql/internal/ddl"
	"tsql/internal/keywords"
	_ "tsql/internal/storage/all"
)

// Structure mirrors testdata/cases.yaml.
type casesFile struct {
	Cases []struct {
		ID            string   `yaml:"id"`
		Description   string   `yaml:"description"`
		Dialect       string   `yaml:"dialect"`
		Mode          string   `yaml:"mode"`
		Sources       []string `yaml:"sources"`
		Want          string   `yaml:"want"`
		Error         string   `yaml:"error"`
		ErrorContains string   `yaml:"errorContains"`
	} `yaml:"cases"`
}

func loadCases(t *testing.T) casesFile {
	t.Helper()
	b, err := os.ReadFile(filepath.Join("testdata", "cases.yaml"))
	if err != nil {
		t.Fatalf("read cases: %v", err)
	}
	var cf casesFile
	if err := yaml.Unmarshal(b, &cf); err != nil {
		t.Fatalf("parse cases.yaml: %v", err)
	}
	if len(cf.Cases) == 0 {
		t.Fatal("cases.yaml holds no cases")
	}
	return cf
}

// writeSources stores each source in its own file and returns the paths in
// order.
func writeSources(t *testing.T, sources []string) []string {
	t.Helper()
	dir := t.TempDir()
	paths := make([]string, len(sources))
	for i, src := range sources {
		paths[i] = filepath.Join(dir, fmt.Sprintf("%02d.tsql", i))
		if err := os.WriteFile(paths[i], []byte(src), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return paths
}

func TestCasesYAML(t *testing.T) {
	t.Parallel()

	kw, err := keywords.Default()
	if err != nil {
		t.Fatalf("keywords: %v", err)
	}

	for _, c := range loadCases(t).Cases {
		c := c
		t.Run(c.ID, func(t *testing.T) {
			t.Parallel()

			d, err := ddl.Lookup(c.Dialect)
			if err != nil {
				t.Fatalf("dialect: %v", err)
			}
			mode := ddl.ModeCreate
			if c.Mode == "update" {
				mode = ddl.ModeUpdate
			}

			var out strings.Builder
			_, err = CompileFiles(context.Background(), &out, writeSources(t, c.Sources), Options{
				Dialect:  d,
				Mode:     mode,
				Keywords: kw,
			})

			wantErr := c.Error != "" || c.ErrorContains != ""
			switch {
			case wantErr && err == nil:
				t.Fatalf("%s: error = nil, want %s %q", c.Description, c.Error, c.ErrorContains)
			case !wantErr && err != nil:
				t.Fatalf("%s: unexpected error = %v", c.Description, err)
			}
			if c.Error != "" && !analyzer.IsKind(err, analyzer.ErrorKind(c.Error)) {
				t.Fatalf("error = %v, want kind %s", err, c.Error)
			}
			if c.ErrorContains != "" && !strings.Contains(err.Error(), c.ErrorContains) {
				t.Fatalf("error = %q, want substring %q", err.Error(), c.ErrorContains)
			}
			if out.String() != c.Want {
				t.Fatalf("%s: output =\n%s\nwant:\n%s", c.Description, out.String(), c.Want)
			}
		})
	}
}
