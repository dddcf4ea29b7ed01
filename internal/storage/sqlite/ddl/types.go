// Package ddl contains the SQLite dialect of the code generator.
//
// SQLite has no enum types and no TRUNCATE. Enum columns become TEXT with a
// CHECK constraint listing the variants, and tables are emptied with DELETE
// plus a reset of their AUTOINCREMENT counter.
package ddl

import "tsql/internal/schema"

// MapType maps an inferred column kind to a SQLite column type. The type
// names are the same as for PostgreSQL; SQLite derives the column affinity
// from them (VARCHAR -> TEXT, BOOLEAN/TIMESTAMP -> NUMERIC, REAL -> REAL).
func MapType(k schema.Kind) (string, bool) {
	switch k {
	case schema.KindString:
		return "VARCHAR(255)", true
	case schema.KindBoolean:
		return "BOOLEAN", true
	case schema.KindInteger:
		return "INTEGER", true
	case schema.KindFloat:
		return "REAL", true
	case schema.KindTimestamp, schema.KindDate, schema.KindTime, schema.KindDateTime:
		return "TIMESTAMP", true
	default:
		return "", false
	}
}
