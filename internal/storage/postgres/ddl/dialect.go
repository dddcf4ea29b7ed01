package ddl

import (
	"fmt"

	gddl "tsql/internal/ddl"
	"tsql/internal/schema"
)

// Name is the dialect name accepted by -s/--sql.
const Name = "PostgreSQL"

// Dialect renders PostgreSQL: SERIAL ids, CREATE TYPE ... AS ENUM and
// TRUNCATE ... RESTART IDENTITY CASCADE.
type Dialect struct{}

var _ gddl.Dialect = Dialect{}

func init() {
	gddl.Register(Dialect{})
}

func (Dialect) Name() string { return Name }

func (Dialect) Serial(unique bool) string {
	if unique {
		return "SERIAL PRIMARY KEY"
	}
	return "SERIAL"
}

func (Dialect) MapType(k schema.Kind) (string, bool) { return MapType(k) }

// Enum declares a dedicated type named <table>_<column>.
func (Dialect) Enum(table string, col schema.Column) ([]string, string, string) {
	typ := EnumTypeName(table, col.Name)
	decl := fmt.Sprintf("CREATE TYPE %s AS ENUM (%s);", typ, gddl.QuoteList(col.Variants))
	return []string{decl}, typ, ""
}

func (Dialect) Truncate(t *schema.Table) []string {
	return []string{fmt.Sprintf("TRUNCATE %s RESTART IDENTITY CASCADE;", t.Name)}
}

func (Dialect) SpecialFloat(negative, nan bool) string {
	switch {
	case nan:
		return "'NaN'"
	case negative:
		return "'-Infinity'"
	default:
		return "'Infinity'"
	}
}

// EnumTypeName returns the generated type name of an enum column.
func EnumTypeName(table, column string) string { return table + "_" + column }
