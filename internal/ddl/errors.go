package ddl

import (
	"errors"
	"fmt"
)

// ErrInternal marks failures that point at a bug in the compiler rather
// than at the input document.
var ErrInternal = errors.New("internal error")

// ErrUnsupportedDialect is returned by Lookup for unknown dialect names.
var ErrUnsupportedDialect = errors.New("unsupported dialect")

func internalf(format string, a ...any) error {
	return fmt.Errorf("%w: %s", ErrInternal, fmt.Sprintf(format, a...))
}
