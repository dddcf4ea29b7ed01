// Package analyzer validates one parsed table and infers its column types and
// key roles.
//
// Passes run in a fixed order and stop at the first failure:
//
//  1. keyword check on the declared column names
//  2. row width check, which also detects short notation
//  3. per-column type inference and enum variant collection
//  4. primary key inference over variable columns
//  5. foreign key resolution for the remaining variable columns
//
// Pass 4 registers fresh variables in the run's symbol table, so tables must
// be analyzed in document order.
package analyzer

import (
	"tsql/internal/keywords"
	"tsql/internal/schema"
	"tsql/internal/symtab"
)

// Analyzer holds the state shared by every table of one compilation run.
type Analyzer struct {
	symbols  *symtab.Table
	keywords *keywords.Set
	dialect  string
}

// New returns an Analyzer that registers variables in symbols and rejects
// column names found in kw for dialect. A nil kw disables the keyword check.
func New(symbols *symtab.Table, kw *keywords.Set, dialect string) *Analyzer {
	return &Analyzer{symbols: symbols, keywords: kw, dialect: dialect}
}

// Analyze runs every pass over raw and returns the annotated table. On error
// the symbol table may already hold variables registered by this table; the
// run is expected to abort.
func (a *Analyzer) Analyze(raw schema.RawTable) (*schema.Table, error) {
	if err := a.checkKeywords(raw); err != nil {
		return nil, a.locate(raw, err)
	}
	implicit, err := checkCounts(raw)
	if err != nil {
		return nil, a.locate(raw, err)
	}

	t := &schema.Table{
		Name:       raw.Name,
		Columns:    make([]schema.Column, len(raw.Columns)),
		Rows:       raw.Rows,
		ImplicitID: implicit,
	}
	for i, name := range raw.Columns {
		t.Columns[i].Name = name
	}

	if err := inferTypes(t); err != nil {
		return nil, a.locate(raw, err)
	}
	foreign, err := a.inferPrimary(t)
	if err != nil {
		return nil, a.locate(raw, err)
	}
	if err := a.resolveForeign(t, foreign); err != nil {
		return nil, a.locate(raw, err)
	}
	return t, nil
}

func (a *Analyzer) checkKeywords(raw schema.RawTable) error {
	if a.keywords == nil {
		return nil
	}
	for _, name := range raw.Columns {
		if cat, ok := a.keywords.Lookup(a.dialect, name); ok {
			return &Error{
				Kind:     ReservedKeyword,
				Table:    raw.Name,
				Column:   name,
				Dialect:  a.dialect,
				Category: cat,
			}
		}
	}
	return nil
}

func (a *Analyzer) locate(raw schema.RawTable, err error) error {
	if e, ok := err.(*Error); ok && e.Source == "" {
		e.Source, e.Line = raw.Source, raw.Line
	}
	return err
}

// column returns the values of data column i (an index into
// t.DataColumns()) top to bottom.
func column(t *schema.Table, i int) []schema.Literal {
	out := make([]schema.Literal, len(t.Rows))
	for r, row := range t.Rows {
		out[r] = row[i]
	}
	return out
}

// dataOffset is the index of the first data column in t.Columns.
func dataOffset(t *schema.Table) int {
	if t.ImplicitID {
		return 1
	}
	return 0
}
