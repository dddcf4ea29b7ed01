// Package all wires every built-in backend into the storage factory and
// every built-in dialect into the code generator.
//
// This package exists purely for side effects: importing it runs the init
// functions that register
//
//   - "PostgreSQL" (tsql/internal/storage/postgres and its ddl package)
//   - "SQLite"     (tsql/internal/storage/sqlite and its ddl package)
package all

import (
	_ "tsql/internal/storage/postgres"
	_ "tsql/internal/storage/postgres/ddl"
	_ "tsql/internal/storage/sqlite"
	_ "tsql/internal/storage/sqlite/ddl"
)
