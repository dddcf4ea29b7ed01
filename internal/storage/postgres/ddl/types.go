// Package ddl contains the PostgreSQL dialect of the code generator.
package ddl

import "tsql/internal/schema"

// MapType maps an inferred column kind to a PostgreSQL column type.
//
//	string                        -> VARCHAR(255)
//	boolean                       -> BOOLEAN
//	integer                       -> INTEGER
//	float                         -> REAL
//	timestamp/date/time/datetime  -> TIMESTAMP
//
// Constants, variables and NULL have no scalar mapping.
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
