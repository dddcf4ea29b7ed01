package parser

import "errors"

// lexer splits one row line into raw literal tokens. Quoted strings are kept
// whole, including their delimiters, so embedded spaces survive.
type lexer struct {
	line string
	pos  int
}

func (lx *lexer) peekN(n int) byte {
	p := lx.pos + n
	if p >= len(lx.line) {
		return 0
	}
	return lx.line[p]
}

func (lx *lexer) atComment() bool {
	return lx.peekN(0) == '-' && lx.peekN(1) == '-'
}

// next returns the next token and its 1-based column. An empty token means
// the end of the line (or the start of a comment) was reached.
func (lx *lexer) next() (string, int, error) {
	for lx.pos < len(lx.line) && isSpace(lx.line[lx.pos]) {
		lx.pos++
	}
	start := lx.pos
	if lx.pos >= len(lx.line) || lx.atComment() {
		return "", start + 1, nil
	}

	if q := lx.line[lx.pos]; q == '"' || q == '\'' {
		return lx.quoted(q)
	}
	for lx.pos < len(lx.line) && !isSpace(lx.line[lx.pos]) && !lx.atComment() {
		lx.pos++
	}
	return lx.line[start:lx.pos], start + 1, nil
}

func (lx *lexer) quoted(q byte) (string, int, error) {
	start := lx.pos
	lx.pos++
	for lx.pos < len(lx.line) {
		switch lx.line[lx.pos] {
		case '\\':
			lx.pos += 2
			continue
		case q:
			lx.pos++
			if lx.pos < len(lx.line) && !isSpace(lx.line[lx.pos]) && !lx.atComment() {
				return "", lx.pos + 1, errors.New("missing space after string literal")
			}
			return lx.line[start:lx.pos], start + 1, nil
		}
		lx.pos++
	}
	return "", start + 1, errors.New("unterminated string literal")
}
