package schema

import "testing"

func TestLiteralSymbol(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   Literal
		want string
	}{
		{name: "constant", in: Literal{Kind: KindConstant, Text: ":active"}, want: "active"},
		{name: "variable", in: Literal{Kind: KindVariable, Text: "alice"}, want: "alice"},
		{name: "string keeps quotes", in: Literal{Kind: KindString, Text: `":x"`}, want: `":x"`},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.in.Symbol(); got != tt.want {
				t.Fatalf("Symbol() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	t.Parallel()

	if got := KindDateTime.String(); got != "datetime" {
		t.Fatalf("KindDateTime.String() = %q", got)
	}
	if got := Kind(99).String(); got != "unknown" {
		t.Fatalf("Kind(99).String() = %q", got)
	}
}

func TestTableDataColumnsAndRoles(t *testing.T) {
	t.Parallel()

	tbl := &Table{
		Name: "dept",
		Columns: []Column{
			{Name: "id", Type: KindVariable, Role: RolePrimary},
			{Name: "name", Type: KindString},
		},
		ImplicitID: true,
	}
	cols := tbl.DataColumns()
	if len(cols) != 1 || cols[0].Name != "name" {
		t.Fatalf("DataColumns() = %+v", cols)
	}
	if n := tbl.CountRole(RolePrimary); n != 1 {
		t.Fatalf("CountRole(primary) = %d", n)
	}

	tbl.ImplicitID = false
	if got := len(tbl.DataColumns()); got != 2 {
		t.Fatalf("DataColumns() without implicit id = %d columns", got)
	}
}

func TestRefString(t *testing.T) {
	t.Parallel()

	if got := (Ref{Table: "dept", Column: "id"}).String(); got != "dept->id" {
		t.Fatalf("Ref.String() = %q", got)
	}
}

func TestColumnIsEnum(t *testing.T) {
	t.Parallel()

	if (Column{Type: KindConstant}).IsEnum() {
		t.Fatal("constant column without variants must not be an enum")
	}
	if !(Column{Type: KindConstant, Variants: []string{"a"}}).IsEnum() {
		t.Fatal("constant column with variants must be an enum")
	}
}
