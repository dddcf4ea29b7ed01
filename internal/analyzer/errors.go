package analyzer

import (
	"errors"
	"fmt"

	"tsql/internal/keywords"
)

// ErrorKind names a class of user-facing validation failure.
type ErrorKind string

const (
	WrongColumnsCount              ErrorKind = "WrongColumnsCount"
	ColumnsCountInconsistent       ErrorKind = "ColumnsCountInconsistent"
	DifferentTypesInColumn         ErrorKind = "DifferentTypesInColumn"
	KnownVariableInPrimaryColumn   ErrorKind = "KnownVariableInPrimaryColumn"
	UnknownVariableInForeignColumn ErrorKind = "UnknownVariableInForeignColumn"
	WrongVariableInForeignColumn   ErrorKind = "WrongVariableInForeignColumn"
	ReservedKeyword                ErrorKind = "ReservedKeyword"
)

// Error is a validation failure in the input document. Only the fields that
// make sense for Kind are set.
type Error struct {
	Kind   ErrorKind
	Table  string
	Column string
	Value  string

	// Expected and Found hold literal kinds for DifferentTypesInColumn and
	// "table->column" targets for WrongVariableInForeignColumn. For the
	// column count errors they hold the declared and the observed widths.
	Expected string
	Found    string

	Dialect  string
	Category keywords.Category

	// Source and Line point at the table header when known.
	Source string
	Line   int
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Kind, e.message())
	if e.Source != "" {
		return fmt.Sprintf("%s:%d: %s", e.Source, e.Line, msg)
	}
	return msg
}

func (e *Error) message() string {
	switch e.Kind {
	case WrongColumnsCount:
		return fmt.Sprintf("Number of columns in `%s` table is not equal to defined number of columns (declared %s, rows have %s)!",
			e.Table, e.Expected, e.Found)
	case ColumnsCountInconsistent:
		return fmt.Sprintf("Number of columns in `%s` table is not consistent (rows have between %s and %s values)!",
			e.Table, e.Expected, e.Found)
	case DifferentTypesInColumn:
		return fmt.Sprintf("In table `%s`, %s `%s` was found in %s column `%s`!",
			e.Table, e.Found, e.Value, e.Expected, e.Column)
	case KnownVariableInPrimaryColumn:
		return fmt.Sprintf("Found already defined variable `%s` in primary key column `%s` of table `%s` (first defined in %s)!",
			e.Value, e.Column, e.Table, e.Found)
	case UnknownVariableInForeignColumn:
		return fmt.Sprintf("Found unknown variable `%s` in foreign key column `%s` of table `%s`!",
			e.Value, e.Column, e.Table)
	case WrongVariableInForeignColumn:
		return fmt.Sprintf("Variable `%s` in foreign key column `%s` of table `%s` belongs to %s and not %s!",
			e.Value, e.Column, e.Table, e.Found, e.Expected)
	case ReservedKeyword:
		return fmt.Sprintf("Column `%s` of table `%s` is a %s keyword in %s!",
			e.Column, e.Table, e.Category, e.Dialect)
	}
	return fmt.Sprintf("table `%s`", e.Table)
}

// IsKind reports whether err carries a validation error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var ae *Error
	return errors.As(err, &ae) && ae.Kind == kind
}
