// Package ddl renders annotated tables as SQL text.
//
// It owns the dialect-neutral pieces: the TableDef/ColumnDef model and its
// CREATE TABLE renderer, INSERT rendering, literal rendering and the dialect
// registry. Dialect packages under internal/storage/<backend>/ddl supply the
// parts that differ (serial ids, enum syntax, truncation) and register
// themselves at init.
//
// Identifiers are emitted as written. The analyzer only lets plain
// identifiers through and rejects reserved words, so no quoting is needed.
package ddl

import (
	"fmt"
	"strings"
)

// BuildCreateTableSQL renders a CREATE TABLE statement from a TableDef.
//
// A column is rendered as
//
//	<Name> <SQLType> [NOT NULL] [CHECK (<Check>)]
//
// and columns with PrimaryKey set are collected into a trailing
// PRIMARY KEY (...) clause. The statement has the form:
//
//	CREATE TABLE <Name> (
//	  <col1-def>,
//	  <col2-def>,
//	  [PRIMARY KEY (<pk-cols>)]
//	);
func BuildCreateTableSQL(t TableDef) (string, error) {
	name := strings.TrimSpace(t.Name)
	if name == "" {
		return "", fmt.Errorf("ddl: table name must not be empty")
	}
	if len(t.Columns) == 0 {
		return "", fmt.Errorf("ddl: at least one column is required")
	}

	cols := make([]string, 0, len(t.Columns)+1)
	pks := make([]string, 0, len(t.Columns))

	for _, c := range t.Columns {
		cname := strings.TrimSpace(c.Name)
		if cname == "" {
			return "", fmt.Errorf("ddl: column with empty name in table %s", name)
		}
		typ := strings.TrimSpace(c.SQLType)
		if typ == "" {
			return "", fmt.Errorf("ddl: column %s missing SQLType", cname)
		}

		var sb strings.Builder
		sb.WriteString(cname)
		sb.WriteByte(' ')
		sb.WriteString(typ)

		if !c.Nullable {
			sb.WriteString(" NOT NULL")
		}
		if chk := strings.TrimSpace(c.Check); chk != "" {
			sb.WriteString(" CHECK (")
			sb.WriteString(chk)
			sb.WriteByte(')')
		}

		cols = append(cols, sb.String())

		if c.PrimaryKey {
			pks = append(pks, cname)
		}
	}

	if len(pks) > 0 {
		cols = append(cols, fmt.Sprintf("PRIMARY KEY (%s)", strings.Join(pks, ", ")))
	}

	stmt := fmt.Sprintf(
		"CREATE TABLE %s (\n  %s\n);",
		name,
		strings.Join(cols, ",\n  "),
	)
	return stmt, nil
}

// BuildInsertSQL renders a single-row INSERT. With no columns it falls back
// to DEFAULT VALUES, which every supported dialect accepts.
func BuildInsertSQL(table string, columns, values []string) (string, error) {
	if len(columns) != len(values) {
		return "", fmt.Errorf("ddl: insert into %s: %d columns but %d values", table, len(columns), len(values))
	}
	if len(columns) == 0 {
		return fmt.Sprintf("INSERT INTO %s DEFAULT VALUES;", table), nil
	}
	return fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s);",
		table,
		strings.Join(columns, ", "),
		strings.Join(values, ", "),
	), nil
}
