package analyzer

import "tsql/internal/schema"

// inferTypes fixes the type of every column. The synthetic id column is a
// variable column without looking at data. Any other column takes the kind
// of its first value and every later value must agree.
func inferTypes(t *schema.Table) error {
	off := dataOffset(t)
	if t.ImplicitID {
		t.Columns[0].Type = schema.KindVariable
	}
	for i := range t.Columns[off:] {
		col := &t.Columns[off+i]
		values := column(t, i)

		seed := values[0].Kind
		seen := make(map[string]struct{})
		for _, v := range values {
			if v.Kind != seed {
				return &Error{
					Kind:     DifferentTypesInColumn,
					Table:    t.Name,
					Column:   col.Name,
					Value:    v.Text,
					Expected: seed.String(),
					Found:    v.Kind.String(),
				}
			}
			if seed != schema.KindConstant {
				continue
			}
			sym := v.Symbol()
			if _, dup := seen[sym]; !dup {
				seen[sym] = struct{}{}
				col.Variants = append(col.Variants, sym)
			}
		}
		col.Type = seed
	}
	return nil
}
