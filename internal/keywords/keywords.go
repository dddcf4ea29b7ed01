// Package keywords loads the per-dialect reserved word lists that column
// names are validated against.
//
// The resource is a comma-separated file with one keyword per line:
//
//	dialect,keyword,category
//
// where category is "reserved" or "semi-reserved". Lines starting with '#'
// are comments. A copy ships embedded in the binary; an override file in the
// same format can replace it at startup.
package keywords

import (
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//go:embed keywords.csv
var embedded string

// Category tells how strongly a word is reserved by a dialect.
type Category string

const (
	Reserved     Category = "reserved"
	SemiReserved Category = "semi-reserved"
)

// Set maps dialect -> upper-cased keyword -> category. Dialect names are
// matched case-insensitively.
type Set struct {
	byDialect map[string]map[string]Category
	names     map[string]string // folded dialect -> name as written in the file
}

var (
	defaultOnce sync.Once
	defaultSet  *Set
	defaultErr  error
)

// Default returns the embedded keyword set. It is parsed once.
func Default() (*Set, error) {
	defaultOnce.Do(func() {
		defaultSet, defaultErr = Load(strings.NewReader(embedded))
		if defaultErr != nil {
			defaultErr = fmt.Errorf("keywords: embedded resource: %w", defaultErr)
		}
	})
	return defaultSet, defaultErr
}

// LoadFile reads a keyword file from disk.
func LoadFile(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("keywords: open %s: %w", path, err)
	}
	defer f.Close()
	s, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("keywords: %s: %w", path, err)
	}
	return s, nil
}

// Load parses a keyword file.
func Load(r io.Reader) (*Set, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = 3
	cr.TrimLeadingSpace = true

	s := &Set{
		byDialect: make(map[string]map[string]Category),
		names:     make(map[string]string),
	}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		dialect := strings.TrimSpace(rec[0])
		word := fold(strings.TrimSpace(rec[1]))
		cat := Category(strings.ToLower(strings.TrimSpace(rec[2])))
		if dialect == "" || word == "" {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("line %d: empty dialect or keyword", line)
		}
		if cat != Reserved && cat != SemiReserved {
			line, _ := cr.FieldPos(2)
			return nil, fmt.Errorf("line %d: unknown category %q", line, rec[2])
		}

		key := strings.ToLower(dialect)
		m, ok := s.byDialect[key]
		if !ok {
			m = make(map[string]Category)
			s.byDialect[key] = m
			s.names[key] = dialect
		}
		// Fully reserved wins when a word is listed twice.
		if prev, dup := m[word]; dup && prev == Reserved {
			continue
		}
		m[word] = cat
	}
	return s, nil
}

// Lookup reports whether name is a keyword of dialect, and how reserved it
// is. The name is upper-cased with full Unicode case mapping first.
func (s *Set) Lookup(dialect, name string) (Category, bool) {
	if s == nil {
		return "", false
	}
	m, ok := s.byDialect[strings.ToLower(dialect)]
	if !ok {
		return "", false
	}
	cat, ok := m[fold(name)]
	return cat, ok
}

// Dialects returns the dialect names present in the set, sorted.
func (s *Set) Dialects() []string {
	out := make([]string, 0, len(s.names))
	for _, n := range s.names {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of keywords listed for dialect.
func (s *Set) Len(dialect string) int {
	return len(s.byDialect[strings.ToLower(dialect)])
}

// fold upper-cases a word. A Caser keeps state, so one is built per call.
func fold(w string) string {
	return cases.Upper(language.Und).String(w)
}
