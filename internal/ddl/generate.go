package ddl

import (
	"strings"

	"tsql/internal/schema"
)

// TableDefFor builds the CREATE TABLE model of t for dialect d. Enum type
// declarations that must precede the table are returned separately.
//
// A table with exactly one primary column gets an inline key. Otherwise a
// composite key is added, chosen from the primary columns if there are
// several, else the foreign columns, else every column.
func TableDefFor(t *schema.Table, d Dialect) (TableDef, []string, error) {
	primaries := t.CountRole(schema.RolePrimary)
	foreigns := t.CountRole(schema.RoleForeign)
	unique := primaries == 1

	def := TableDef{Name: t.Name, Columns: make([]ColumnDef, 0, len(t.Columns))}
	var decls []string
	for _, col := range t.Columns {
		cd := ColumnDef{Name: col.Name}
		switch {
		case col.Role == schema.RolePrimary:
			cd.SQLType = d.Serial(unique)
			cd.Nullable = true
			cd.PrimaryKey = primaries > 1
		case col.Role == schema.RoleForeign:
			cd.SQLType = "INTEGER REFERENCES " + col.Ref.Table + "(" + col.Ref.Column + ")"
			cd.Nullable = true
			cd.PrimaryKey = primaries == 0
		case col.IsEnum():
			ds, typ, check := d.Enum(t.Name, col)
			decls = append(decls, ds...)
			cd.SQLType, cd.Check = typ, check
		case col.Type == schema.KindNull:
			// Every value is NULL; keep the column nullable.
			typ, _ := d.MapType(schema.KindString)
			cd.SQLType = typ
			cd.Nullable = true
		default:
			typ, ok := d.MapType(col.Type)
			if !ok {
				return TableDef{}, nil, internalf("unrecognised type %s of column %s.%s", col.Type, t.Name, col.Name)
			}
			cd.SQLType = typ
		}
		def.Columns = append(def.Columns, cd)
	}
	if primaries == 0 && foreigns == 0 {
		for i := range def.Columns {
			def.Columns[i].PrimaryKey = true
		}
	}
	return def, decls, nil
}

// Statements renders every statement for t in order: the schema statements
// of mode followed by one INSERT per row.
func Statements(t *schema.Table, d Dialect, mode Mode, r Resolver) ([]string, error) {
	var out []string
	switch mode {
	case ModeCreate:
		def, decls, err := TableDefFor(t, d)
		if err != nil {
			return nil, err
		}
		create, err := BuildCreateTableSQL(def)
		if err != nil {
			return nil, internalf("%v", err)
		}
		out = append(out, decls...)
		out = append(out, create)
	case ModeUpdate:
		out = append(out, d.Truncate(t)...)
	default:
		return nil, internalf("unrecognised mode %d", mode)
	}

	var (
		dataCols = t.DataColumns()
		names    []string
		keep     []int
	)
	for i, col := range dataCols {
		if col.Role == schema.RolePrimary {
			continue
		}
		names = append(names, col.Name)
		keep = append(keep, i)
	}
	for _, row := range t.Rows {
		values := make([]string, 0, len(keep))
		for _, i := range keep {
			v, err := renderValue(d, r, dataCols[i], row[i])
			if err != nil {
				return nil, err
			}
			values = append(values, v)
		}
		ins, err := BuildInsertSQL(t.Name, names, values)
		if err != nil {
			return nil, internalf("%v", err)
		}
		out = append(out, ins)
	}
	return out, nil
}

// Generate renders the statements of t separated and terminated by
// newlines.
func Generate(t *schema.Table, d Dialect, mode Mode, r Resolver) (string, error) {
	stmts, err := Statements(t, d, mode, r)
	if err != nil {
		return "", err
	}
	return strings.Join(stmts, "\n") + "\n", nil
}
