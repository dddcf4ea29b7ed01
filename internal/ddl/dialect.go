package ddl

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"tsql/internal/schema"
)

// Dialect is the per-engine part of code generation.
type Dialect interface {
	// Name is the user-facing dialect name, e.g. "PostgreSQL".
	Name() string

	// Serial returns the type clause of an auto-generated id column. unique
	// is set when the column is the table's only primary key.
	Serial(unique bool) string

	// MapType maps a scalar literal kind to a column type. ok is false for
	// kinds that have no scalar mapping.
	MapType(k schema.Kind) (typ string, ok bool)

	// Enum returns the statements that declare the type of an enum column
	// (possibly none), the column's type and an optional CHECK expression.
	Enum(table string, col schema.Column) (decls []string, typ, check string)

	// Truncate returns the statements that empty t and restart its ids.
	Truncate(t *schema.Table) []string

	// SpecialFloat renders an infinity or NaN literal.
	SpecialFloat(negative, nan bool) string
}

// Mode selects whether a table is created or emptied before its rows are
// inserted.
type Mode int

const (
	ModeCreate Mode = iota
	ModeUpdate
)

func (m Mode) String() string {
	if m == ModeUpdate {
		return "update"
	}
	return "create"
}

var (
	dialectMu sync.RWMutex
	dialects  = map[string]Dialect{}
)

// Register makes d available to Lookup under its case-folded name. It is
// typically called from a dialect package's init function.
func Register(d Dialect) {
	dialectMu.Lock()
	defer dialectMu.Unlock()
	dialects[strings.ToLower(d.Name())] = d
}

// Lookup returns the dialect registered under name, ignoring case. The error
// for an unknown name lists the supported set.
func Lookup(name string) (Dialect, error) {
	dialectMu.RLock()
	d, ok := dialects[strings.ToLower(strings.TrimSpace(name))]
	dialectMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w %q: supported dialects are %s",
			ErrUnsupportedDialect, name, strings.Join(Names(), ", "))
	}
	return d, nil
}

// Names returns the registered dialect names, sorted.
func Names() []string {
	dialectMu.RLock()
	defer dialectMu.RUnlock()
	out := make([]string, 0, len(dialects))
	for _, d := range dialects {
		out = append(out, d.Name())
	}
	sort.Strings(out)
	return out
}
