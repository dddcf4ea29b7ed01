// Package schema holds the data model shared by the parser, the analyzer and
// the code generator.
//
// A document is parsed into RawTable values (names plus typed literals). The
// analyzer turns each RawTable into a Table whose columns carry an inferred
// type and a key role. Tables are read-only once handed to the generator.
package schema

import "strings"

// Kind identifies the lexical class of a literal. It doubles as the inferred
// type of a column: KindVariable marks a variable column and KindConstant
// marks an enum column.
type Kind int

const (
	KindNull Kind = iota
	KindBoolean
	KindInteger
	KindFloat
	KindString
	KindTimestamp
	KindDate
	KindTime
	KindDateTime
	KindConstant
	KindVariable
)

var kindNames = [...]string{
	KindNull:      "null",
	KindBoolean:   "boolean",
	KindInteger:   "integer",
	KindFloat:     "float",
	KindString:    "string",
	KindTimestamp: "timestamp",
	KindDate:      "date",
	KindTime:      "time",
	KindDateTime:  "datetime",
	KindConstant:  "constant",
	KindVariable:  "variable",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Literal is a typed lexeme as produced by the parser. Text is the raw
// source text, including string quotes and the constant sigil.
type Literal struct {
	Kind Kind
	Text string
}

// ConstantSigil prefixes enum constants in the source format (":active").
const ConstantSigil = ":"

// Symbol returns the constant name without its sigil. For other kinds it
// returns Text unchanged.
func (l Literal) Symbol() string {
	if l.Kind != KindConstant {
		return l.Text
	}
	return strings.TrimPrefix(l.Text, ConstantSigil)
}

// RawTable is one table block exactly as written in a document.
type RawTable struct {
	Name    string
	Columns []string
	Rows    [][]Literal

	// Source and Line locate the table header for diagnostics.
	Source string
	Line   int
}

// Document is the parsed content of one input file.
type Document struct {
	Source string
	Tables []RawTable
}
