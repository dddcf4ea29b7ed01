package ddl

import (
	"reflect"
	"testing"

	gddl "tsql/internal/ddl"
	"tsql/internal/schema"
	"tsql/internal/symtab"
)

func TestRegistered(t *testing.T) {
	t.Parallel()

	d, err := gddl.Lookup("SQLITE")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}
	if d.Name() != Name {
		t.Fatalf("Name() = %q", d.Name())
	}
}

func TestGenerateCreate(t *testing.T) {
	t.Parallel()

	tbl := &schema.Table{
		Name: "task",
		Columns: []schema.Column{
			{Name: "id", Type: schema.KindVariable, Role: schema.RolePrimary},
			{Name: "state", Type: schema.KindConstant, Variants: []string{"open", "done"}},
			{Name: "due", Type: schema.KindDateTime},
		},
		Rows: [][]schema.Literal{
			{{Kind: schema.KindConstant, Text: ":done"}, {Kind: schema.KindDateTime, Text: "2024-03-01T09:00:00"}},
		},
		ImplicitID: true,
	}

	got, err := gddl.Generate(tbl, Dialect{}, gddl.ModeCreate, symtab.New())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	want := "CREATE TABLE task (\n" +
		"  id INTEGER PRIMARY KEY AUTOINCREMENT,\n" +
		"  state TEXT NOT NULL CHECK (state IN ('open', 'done')),\n" +
		"  due TIMESTAMP NOT NULL\n" +
		");\n" +
		"INSERT INTO task (state, due) VALUES ('done', '2024-03-01 09:00:00');\n"
	if got != want {
		t.Fatalf("Generate() =\n%s\nwant:\n%s", got, want)
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		columns []schema.Column
		want    []string
	}{
		{
			name:    "autoincrement table",
			columns: []schema.Column{{Name: "id", Role: schema.RolePrimary}},
			want:    []string{"DELETE FROM t;", "DELETE FROM sqlite_sequence WHERE name = 't';"},
		},
		{
			name:    "composite key",
			columns: []schema.Column{{Name: "a", Role: schema.RoleForeign}, {Name: "b", Role: schema.RoleForeign}},
			want:    []string{"DELETE FROM t;"},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Dialect{}.Truncate(&schema.Table{Name: "t", Columns: tt.columns})
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("Truncate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSerialAndFloats(t *testing.T) {
	t.Parallel()

	d := Dialect{}
	if got := d.Serial(false); got != "INTEGER" {
		t.Fatalf("Serial(false) = %q", got)
	}
	if got := d.SpecialFloat(true, false); got != "-9e999" {
		t.Fatalf("SpecialFloat(-inf) = %q", got)
	}
	if got, ok := MapType(schema.KindBoolean); !ok || got != "BOOLEAN" {
		t.Fatalf("MapType(boolean) = %q, %v", got, ok)
	}
}
