package ddl

import (
	"fmt"

	gddl "tsql/internal/ddl"
	"tsql/internal/schema"
)

// Name is the dialect name accepted by -s/--sql.
const Name = "SQLite"

// Dialect renders SQLite.
type Dialect struct{}

var _ gddl.Dialect = Dialect{}

func init() {
	gddl.Register(Dialect{})
}

func (Dialect) Name() string { return Name }

// Serial returns INTEGER PRIMARY KEY AUTOINCREMENT for a sole key. SQLite
// only generates ids for that form, so other id columns are plain INTEGER.
func (Dialect) Serial(unique bool) string {
	if unique {
		return "INTEGER PRIMARY KEY AUTOINCREMENT"
	}
	return "INTEGER"
}

func (Dialect) MapType(k schema.Kind) (string, bool) { return MapType(k) }

func (Dialect) Enum(_ string, col schema.Column) ([]string, string, string) {
	return nil, "TEXT", fmt.Sprintf("%s IN (%s)", col.Name, gddl.QuoteList(col.Variants))
}

// Truncate deletes every row. The sqlite_sequence entry only exists for
// AUTOINCREMENT tables, i.e. tables with exactly one id column.
func (Dialect) Truncate(t *schema.Table) []string {
	out := []string{fmt.Sprintf("DELETE FROM %s;", t.Name)}
	if t.CountRole(schema.RolePrimary) == 1 {
		out = append(out, fmt.Sprintf("DELETE FROM sqlite_sequence WHERE name = %s;", gddl.QuoteString(t.Name)))
	}
	return out
}

// SpecialFloat renders infinities as out-of-range reals, which SQLite reads
// as ±Inf. SQLite cannot store NaN as a REAL, so it is kept as text.
func (Dialect) SpecialFloat(negative, nan bool) string {
	switch {
	case nan:
		return "'NaN'"
	case negative:
		return "-9e999"
	default:
		return "9e999"
	}
}
