// Package symtab implements the cross-table symbol table of a compilation
// run.
//
// Primary-key inference defines one entry per fresh variable; foreign-key
// inference and INSERT rendering look entries up. The table is append-only:
// an entry is never removed or rewritten. A Table is owned by one run and is
// not safe for concurrent use; tables are analyzed strictly in order.
package symtab

import (
	"fmt"

	"tsql/internal/schema"
)

// Entry records where a variable was first defined.
type Entry struct {
	Table  string
	Column string
	Row    int // zero-based row index within Table
}

// Ref returns the table/column pair the entry belongs to.
func (e Entry) Ref() schema.Ref { return schema.Ref{Table: e.Table, Column: e.Column} }

// SerialID is the auto-generated id the database assigns to the defining
// row. Serial ids start at 1.
func (e Entry) SerialID() int { return e.Row + 1 }

// ErrRedefined is returned by Define when the variable already exists.
type ErrRedefined struct {
	Name     string
	Previous Entry
}

func (e *ErrRedefined) Error() string {
	return fmt.Sprintf("variable %q already defined in %s at row %d",
		e.Name, e.Previous.Ref(), e.Previous.Row+1)
}

// Table maps variable names to their defining entry.
type Table struct {
	entries map[string]Entry
}

// New returns an empty symbol table.
func New() *Table {
	return &Table{entries: make(map[string]Entry)}
}

// Lookup returns the entry for name.
func (t *Table) Lookup(name string) (Entry, bool) {
	e, ok := t.entries[name]
	return e, ok
}

// Defined reports whether name is already a key.
func (t *Table) Defined(name string) bool {
	_, ok := t.entries[name]
	return ok
}

// Define adds name. Re-defining an existing name is an error and leaves the
// original entry untouched.
func (t *Table) Define(name string, e Entry) error {
	if prev, ok := t.entries[name]; ok {
		return &ErrRedefined{Name: name, Previous: prev}
	}
	t.entries[name] = e
	return nil
}

// Len returns the number of defined variables.
func (t *Table) Len() int { return len(t.entries) }
