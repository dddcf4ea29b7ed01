package analyzer

import (
	"strconv"

	"tsql/internal/schema"
)

// checkCounts verifies that every row has the same width and that the width
// matches the header, either exactly or one short. The second form is short
// notation: the first declared column is a synthetic id absent from rows.
func checkCounts(raw schema.RawTable) (implicit bool, err error) {
	declared := len(raw.Columns)
	if len(raw.Rows) == 0 {
		return false, &Error{
			Kind:     WrongColumnsCount,
			Table:    raw.Name,
			Expected: strconv.Itoa(declared),
			Found:    "0 rows",
		}
	}

	minW, maxW := len(raw.Rows[0]), len(raw.Rows[0])
	for _, row := range raw.Rows[1:] {
		minW = min(minW, len(row))
		maxW = max(maxW, len(row))
	}
	if minW != declared && minW != declared-1 {
		return false, &Error{
			Kind:     WrongColumnsCount,
			Table:    raw.Name,
			Expected: strconv.Itoa(declared),
			Found:    strconv.Itoa(minW),
		}
	}
	if minW != maxW {
		return false, &Error{
			Kind:     ColumnsCountInconsistent,
			Table:    raw.Name,
			Expected: strconv.Itoa(minW),
			Found:    strconv.Itoa(maxW),
		}
	}
	return minW == declared-1, nil
}
