// Package compiler drives a compilation run: sources are parsed (in
// parallel), then every table is analyzed and rendered strictly in document
// order, with one symbol table shared by all tables of the run.
package compiler

import (
	"context"
	"fmt"
	"io"
	"log"

	"tsql/internal/analyzer"
	"tsql/internal/ddl"
	"tsql/internal/keywords"
	"tsql/internal/schema"
	"tsql/internal/symtab"
)

// Options are the settings of one run.
type Options struct {
	Dialect  ddl.Dialect
	Mode     ddl.Mode
	Keywords *keywords.Set // nil disables the reserved word check
	Verbose  bool
}

// Stats summarizes a finished run.
type Stats struct {
	Tables  int
	Rows    int
	Symbols int
}

// Compile analyzes and renders every table of docs and writes the SQL to w.
// Tables are separated by a blank line. The first failure stops the run;
// output already written for earlier tables is kept.
func Compile(ctx context.Context, w io.Writer, docs []schema.Document, opts Options) (Stats, error) {
	if opts.Dialect == nil {
		return Stats{}, fmt.Errorf("compile: %w: no dialect selected", ddl.ErrInternal)
	}

	symbols := symtab.New()
	an := analyzer.New(symbols, opts.Keywords, opts.Dialect.Name())

	var st Stats
	for _, doc := range docs {
		for _, raw := range doc.Tables {
			if err := ctx.Err(); err != nil {
				return st, err
			}
			tbl, err := an.Analyze(raw)
			if err != nil {
				return st, err
			}
			text, err := ddl.Generate(tbl, opts.Dialect, opts.Mode, symbols)
			if err != nil {
				return st, fmt.Errorf("table %s: %w", raw.Name, err)
			}
			if st.Tables > 0 {
				text = "\n" + text
			}
			if _, err := io.WriteString(w, text); err != nil {
				return st, fmt.Errorf("compile: write: %w", err)
			}

			st.Tables++
			st.Rows += len(tbl.Rows)
			if opts.Verbose {
				log.Printf("compile: table=%s source=%s rows=%d implicit_id=%t primary=%d foreign=%d",
					tbl.Name, raw.Source, len(tbl.Rows), tbl.ImplicitID,
					tbl.CountRole(schema.RolePrimary), tbl.CountRole(schema.RoleForeign))
			}
		}
	}
	st.Symbols = symbols.Len()
	if opts.Verbose {
		log.Printf("compile: done dialect=%s mode=%s tables=%d rows=%d symbols=%d",
			opts.Dialect.Name(), opts.Mode, st.Tables, st.Rows, st.Symbols)
	}
	return st, nil
}

// CompileFiles loads paths and compiles them in order.
func CompileFiles(ctx context.Context, w io.Writer, paths []string, opts Options) (Stats, error) {
	docs, err := LoadFiles(ctx, paths)
	if err != nil {
		return Stats{}, err
	}
	return Compile(ctx, w, docs, opts)
}
