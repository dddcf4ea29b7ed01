package ddl

// ColumnDef describes a single column of a CREATE TABLE statement.
//
// Fields:
//   - Name: column name, emitted unquoted
//   - SQLType: full type clause, e.g. VARCHAR(255), SERIAL PRIMARY KEY or
//     INTEGER REFERENCES dept(id)
//   - Nullable: when false NOT NULL is appended
//   - PrimaryKey: the column is part of the trailing PRIMARY KEY (...) clause
//   - Check: optional CHECK expression, without the keyword and parentheses
type ColumnDef struct {
	Name       string
	SQLType    string
	Nullable   bool
	PrimaryKey bool
	Check      string
}

// TableDef holds the table name and its ordered columns.
type TableDef struct {
	Name    string
	Columns []ColumnDef
}
