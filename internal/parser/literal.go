package parser

import (
	"regexp"

	"tsql/internal/schema"
)

const (
	datePart   = `[0-9]{4}-[0-9]{1,2}-[0-9]{1,2}`
	timePart   = `[0-9]{1,2}:[0-9]{1,2}:[0-9]{1,2}(?:\.[0-9]+)?`
	offsetPart = `(?:[Zz]|[+-][0-9]{1,2}:[0-9]{1,2})`
	decDigits  = `[0-9](?:_?[0-9])*`
	decInteger = `[+-]?(?:0|[1-9](?:_?[0-9])*)`
	exponent   = `[eE][+-]?` + decDigits
	identifier = `[A-Za-z_][A-Za-z0-9_]*`
)

var (
	dateRe      = regexp.MustCompile(`^` + datePart + `$`)
	timeRe      = regexp.MustCompile(`^` + timePart + `$`)
	dateTimeRe  = regexp.MustCompile(`^` + datePart + `[Tt]` + timePart + offsetPart + `?$`)
	timestampRe = regexp.MustCompile(`^` + datePart + `P(?:` + timePart + `)?$`)

	decIntRe = regexp.MustCompile(`^` + decInteger + `$`)
	hexIntRe = regexp.MustCompile(`^0x[0-9A-Fa-f](?:_?[0-9A-Fa-f])*$`)
	octIntRe = regexp.MustCompile(`^0o[0-7](?:_?[0-7])*$`)
	binIntRe = regexp.MustCompile(`^0b[01](?:_?[01])*$`)

	floatRe        = regexp.MustCompile(`^` + decInteger + `(?:\.` + decDigits + `(?:` + exponent + `)?|` + exponent + `)$`)
	specialFloatRe = regexp.MustCompile(`^[+-]?(?:INF|NAN)$`)

	constantRe = regexp.MustCompile(`^` + schema.ConstantSigil + identifier + `$`)
	identRe    = regexp.MustCompile(`^` + identifier + `$`)
)

// classify returns the literal kind of an unquoted token. Keywords are
// checked before the identifier rule because they share its shape.
func classify(tok string) (schema.Kind, bool) {
	switch tok {
	case "NULL":
		return schema.KindNull, true
	case "TRUE", "FALSE":
		return schema.KindBoolean, true
	}
	switch {
	case dateTimeRe.MatchString(tok):
		return schema.KindDateTime, true
	case timestampRe.MatchString(tok):
		return schema.KindTimestamp, true
	case dateRe.MatchString(tok):
		return schema.KindDate, true
	case timeRe.MatchString(tok):
		return schema.KindTime, true
	case decIntRe.MatchString(tok), hexIntRe.MatchString(tok),
		octIntRe.MatchString(tok), binIntRe.MatchString(tok):
		return schema.KindInteger, true
	case floatRe.MatchString(tok), specialFloatRe.MatchString(tok):
		return schema.KindFloat, true
	case constantRe.MatchString(tok):
		return schema.KindConstant, true
	case identRe.MatchString(tok):
		return schema.KindVariable, true
	}
	return schema.KindNull, false
}
