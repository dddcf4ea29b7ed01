package analyzer

import (
	"tsql/internal/schema"
	"tsql/internal/symtab"
)

// inferPrimary marks primary key columns and registers their values. It
// returns the indexes (into t.Columns) of the variable columns whose first
// value was already known; those are foreign key candidates.
//
// The synthetic id column is primary unconditionally and registers nothing.
func (a *Analyzer) inferPrimary(t *schema.Table) ([]int, error) {
	off := dataOffset(t)
	if t.ImplicitID {
		t.Columns[0].Role = schema.RolePrimary
	}

	var foreign []int
	for i := range t.Columns[off:] {
		col := &t.Columns[off+i]
		if col.Type != schema.KindVariable {
			col.Role = schema.RolePlain
			continue
		}
		values := column(t, i)
		if a.symbols.Defined(values[0].Text) {
			foreign = append(foreign, off+i)
			continue
		}

		col.Role = schema.RolePrimary
		for row, v := range values {
			err := a.symbols.Define(v.Text, symtab.Entry{Table: t.Name, Column: col.Name, Row: row})
			if err == nil {
				continue
			}
			prev, _ := a.symbols.Lookup(v.Text)
			return nil, &Error{
				Kind:   KnownVariableInPrimaryColumn,
				Table:  t.Name,
				Column: col.Name,
				Value:  v.Text,
				Found:  prev.Ref().String(),
			}
		}
	}
	return foreign, nil
}

// resolveForeign checks that every value of each candidate column resolves
// to the same table/column as the column's first value.
func (a *Analyzer) resolveForeign(t *schema.Table, candidates []int) error {
	off := dataOffset(t)
	for _, ci := range candidates {
		col := &t.Columns[ci]
		values := column(t, ci-off)

		first, _ := a.symbols.Lookup(values[0].Text)
		target := first.Ref()
		for _, v := range values {
			e, ok := a.symbols.Lookup(v.Text)
			if !ok {
				return &Error{
					Kind:   UnknownVariableInForeignColumn,
					Table:  t.Name,
					Column: col.Name,
					Value:  v.Text,
				}
			}
			if e.Ref() != target {
				return &Error{
					Kind:     WrongVariableInForeignColumn,
					Table:    t.Name,
					Column:   col.Name,
					Value:    v.Text,
					Expected: target.String(),
					Found:    e.Ref().String(),
				}
			}
		}
		col.Role = schema.RoleForeign
		col.Ref = target
	}
	return nil
}
