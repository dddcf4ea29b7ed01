package ddl

import (
	"math/big"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"

	"tsql/internal/schema"
	"tsql/internal/symtab"
)

// Resolver looks up where a variable was defined. *symtab.Table satisfies it.
type Resolver interface {
	Lookup(name string) (symtab.Entry, bool)
}

// QuoteString renders s as a single-quoted SQL string literal.
func QuoteString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// QuoteList renders each item with QuoteString and joins them with ", ".
func QuoteList(items []string) string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = QuoteString(it)
	}
	return strings.Join(out, ", ")
}

// renderValue renders one literal of column col for an INSERT.
func renderValue(d Dialect, r Resolver, col schema.Column, lit schema.Literal) (string, error) {
	if col.Role == schema.RoleForeign {
		e, ok := r.Lookup(lit.Text)
		if !ok {
			return "", internalf("unresolved variable %q in %s.%s", lit.Text, col.Ref.Table, col.Name)
		}
		return strconv.Itoa(e.SerialID()), nil
	}

	switch lit.Kind {
	case schema.KindNull:
		return "NULL", nil
	case schema.KindBoolean:
		return strings.ToUpper(lit.Text), nil
	case schema.KindInteger:
		return renderInteger(lit.Text)
	case schema.KindFloat:
		return renderFloat(d, lit.Text), nil
	case schema.KindString:
		return QuoteString(unquote(lit.Text)), nil
	case schema.KindTimestamp:
		return QuoteString(strings.TrimSpace(strings.Replace(lit.Text, "P", " ", 1))), nil
	case schema.KindDateTime:
		return QuoteString(strings.NewReplacer("T", " ", "t", " ").Replace(lit.Text)), nil
	case schema.KindDate, schema.KindTime:
		return QuoteString(lit.Text), nil
	case schema.KindConstant:
		return QuoteString(lit.Symbol()), nil
	}
	return "", internalf("cannot render %s value %q in column %s", lit.Kind, lit.Text, col.Name)
}

// renderInteger emits integers in decimal, whatever base they were written
// in. Values beyond int64 go through math/big.
func renderInteger(text string) (string, error) {
	s := strings.ReplaceAll(text, "_", "")
	if n, err := strconv.ParseInt(s, 0, 64); err == nil {
		return strconv.FormatInt(n, 10), nil
	}
	b, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return "", internalf("malformed integer %q", text)
	}
	return b.String(), nil
}

func renderFloat(d Dialect, text string) string {
	switch strings.TrimLeft(text, "+-") {
	case "INF":
		return d.SpecialFloat(strings.HasPrefix(text, "-"), false)
	case "NAN":
		return d.SpecialFloat(strings.HasPrefix(text, "-"), true)
	}
	return strings.ReplaceAll(text, "_", "")
}

// unquote strips the delimiters of a string literal, resolves backslash
// escapes and normalizes the result to NFC.
func unquote(lit string) string {
	if len(lit) < 2 {
		return lit
	}
	body := lit[1 : len(lit)-1]
	if strings.IndexByte(body, '\\') < 0 {
		return norm.NFC.String(body)
	}

	var sb strings.Builder
	sb.Grow(len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' || i+1 == len(body) {
			sb.WriteByte(c)
			continue
		}
		i++
		switch body[i] {
		case 'n':
			sb.WriteByte('\n')
		case 't':
			sb.WriteByte('\t')
		case 'r':
			sb.WriteByte('\r')
		default:
			sb.WriteByte(body[i])
		}
	}
	return norm.NFC.String(sb.String())
}
