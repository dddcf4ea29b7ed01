// Package parser turns table documents into schema.RawTable values.
//
// A document is a sequence of table blocks separated by blank lines:
//
//	{dept}
//	[id][name]
//	eng "Engineering"   -- trailing comments are ignored
//	ops "Operations"
//
// The header names the table, the second line declares the columns and every
// following non-blank line is a row of whitespace-separated literals. Lines
// holding only a comment are skipped. Parsing stops at the first error; there
// is no recovery.
package parser

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"tsql/internal/schema"
)

// SyntaxError reports malformed input with its position.
type SyntaxError struct {
	Source string
	Line   int
	Col    int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d:%d: syntax error: %s", e.Source, e.Line, e.Col, e.Msg)
}

type state int

const (
	expectHeader state = iota
	expectColumns
	inRows
)

type parser struct {
	source string
	tables []schema.RawTable
	cur    *schema.RawTable
	state  state
}

// Parse reads a whole document. source is only used in diagnostics.
func Parse(source string, src []byte) (schema.Document, error) {
	p := &parser{source: source}

	sc := bufio.NewScanner(bytes.NewReader(src))
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		if err := p.line(lineNo, strings.TrimRight(sc.Text(), "\r")); err != nil {
			return schema.Document{}, err
		}
	}
	if err := sc.Err(); err != nil {
		return schema.Document{}, fmt.Errorf("read %s: %w", source, err)
	}
	if err := p.finish(lineNo + 1); err != nil {
		return schema.Document{}, err
	}
	if len(p.tables) == 0 {
		return schema.Document{}, p.errorf(lineNo+1, 1, "document contains no tables")
	}
	return schema.Document{Source: source, Tables: p.tables}, nil
}

func (p *parser) errorf(line, col int, format string, a ...any) error {
	return &SyntaxError{Source: p.source, Line: line, Col: col, Msg: fmt.Sprintf(format, a...)}
}

func (p *parser) line(n int, text string) error {
	blank := strings.TrimSpace(text) == ""
	if blank {
		if p.state == expectColumns {
			return p.errorf(n, 1, "expected column list for table %q", p.cur.Name)
		}
		return p.finish(n)
	}
	if isCommentOnly(text) {
		return nil
	}

	switch p.state {
	case expectHeader:
		return p.header(n, text)
	case expectColumns:
		cols, err := p.columns(n, text)
		if err != nil {
			return err
		}
		p.cur.Columns = cols
		p.state = inRows
		return nil
	default:
		if strings.HasPrefix(strings.TrimSpace(text), "{") {
			if err := p.finish(n); err != nil {
				return err
			}
			return p.header(n, text)
		}
		row, err := p.row(n, text)
		if err != nil {
			return err
		}
		p.cur.Rows = append(p.cur.Rows, row)
		return nil
	}
}

// finish closes the table being read, if any.
func (p *parser) finish(n int) error {
	switch p.state {
	case expectHeader:
		return nil
	case expectColumns:
		return p.errorf(n, 1, "expected column list for table %q", p.cur.Name)
	}
	if len(p.cur.Rows) == 0 {
		return p.errorf(n, 1, "table %q has no rows", p.cur.Name)
	}
	p.tables = append(p.tables, *p.cur)
	p.cur = nil
	p.state = expectHeader
	return nil
}

func (p *parser) header(n int, text string) error {
	body := stripComment(text)
	trimmed := strings.TrimSpace(body)
	col := strings.Index(body, trimmed) + 1
	if !strings.HasPrefix(trimmed, "{") || !strings.HasSuffix(trimmed, "}") {
		return p.errorf(n, col, "expected table header {name}, found %q", trimmed)
	}
	name := strings.TrimSpace(trimmed[1 : len(trimmed)-1])
	if !identRe.MatchString(name) {
		return p.errorf(n, col+1, "invalid table name %q", name)
	}
	p.cur = &schema.RawTable{Name: name, Source: p.source, Line: n}
	p.state = expectColumns
	return nil
}

func (p *parser) columns(n int, text string) ([]string, error) {
	body := stripComment(text)
	var cols []string
	i := 0
	for {
		for i < len(body) && isSpace(body[i]) {
			i++
		}
		if i >= len(body) {
			break
		}
		if body[i] != '[' {
			return nil, p.errorf(n, i+1, "expected '[' in column list, found %q", body[i])
		}
		end := strings.IndexByte(body[i:], ']')
		if end < 0 {
			return nil, p.errorf(n, i+1, "unterminated column name")
		}
		name := strings.TrimSpace(body[i+1 : i+end])
		if !identRe.MatchString(name) {
			return nil, p.errorf(n, i+2, "invalid column name %q", name)
		}
		cols = append(cols, name)
		i += end + 1
	}
	if len(cols) == 0 {
		return nil, p.errorf(n, 1, "empty column list")
	}
	return cols, nil
}

func (p *parser) row(n int, text string) ([]schema.Literal, error) {
	lx := &lexer{line: text}
	var out []schema.Literal
	for {
		tok, col, err := lx.next()
		if err != nil {
			return nil, p.errorf(n, col, "%v", err)
		}
		if tok == "" {
			break
		}
		if tok[0] == '"' || tok[0] == '\'' {
			out = append(out, schema.Literal{Kind: schema.KindString, Text: tok})
			continue
		}
		kind, ok := classify(tok)
		if !ok {
			return nil, p.errorf(n, col, "unrecognised literal %q", tok)
		}
		out = append(out, schema.Literal{Kind: kind, Text: tok})
	}
	return out, nil
}

func isSpace(b byte) bool { return b == ' ' || b == '\t' }

func isCommentOnly(text string) bool {
	return strings.HasPrefix(strings.TrimLeft(text, " \t"), "--")
}

// stripComment drops a trailing "--" comment from a line that carries no
// string literals (headers and column lists).
func stripComment(text string) string {
	if i := strings.Index(text, "--"); i >= 0 {
		return text[:i]
	}
	return text
}
