package schema

// Role is the key role inferred for a column.
type Role int

const (
	RolePlain Role = iota
	RolePrimary
	RoleForeign
)

func (r Role) String() string {
	switch r {
	case RolePrimary:
		return "primary"
	case RoleForeign:
		return "foreign"
	default:
		return "plain"
	}
}

// Ref names the table and column a foreign column points at.
type Ref struct {
	Table  string
	Column string
}

// String renders the reference as "table->column", the form used in
// diagnostics.
func (r Ref) String() string { return r.Table + "->" + r.Column }

// Column is an annotated column. Type and Role are fixed by the analyzer and
// never revised afterwards.
type Column struct {
	Name string
	Type Kind
	Role Role

	// Variants lists the distinct constants of an enum column in first-seen
	// order. It is empty for every other type.
	Variants []string

	// Ref is set only when Role == RoleForeign.
	Ref Ref
}

// IsEnum reports whether the column renders as an enumerated type.
func (c Column) IsEnum() bool { return c.Type == KindConstant && len(c.Variants) > 0 }

// Table is the analyzer output handed to the code generator.
//
// When ImplicitID is set, Columns[0] is the synthetic primary key declared in
// the header but absent from every row; Rows then align with Columns[1:].
type Table struct {
	Name       string
	Columns    []Column
	Rows       [][]Literal
	ImplicitID bool
}

// DataColumns returns the columns that have a value in each row.
func (t *Table) DataColumns() []Column {
	if t.ImplicitID {
		return t.Columns[1:]
	}
	return t.Columns
}

// CountRole returns how many columns carry role r.
func (t *Table) CountRole(r Role) int {
	n := 0
	for _, c := range t.Columns {
		if c.Role == r {
			n++
		}
	}
	return n
}
