package internal

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// A token is a single lexical element.
type token struct {
	Kind  tokenKind
	Value string
	Err   error

	Line, Col int
}

type tokenKind int

const (
	badToken tokenKind = iota

	eolToken       // run of newlines and semicolons
	eofToken       // end of input
	identToken     // identifier
	strlitToken    // {string}
	argToken       // #1
	separatorToken // one of ( ) , . =
)

var tokenNames = [...]string{"UNKNOWN", "EOL", "EOF", "ident", "strlit", "arg", "separator"}

// String returns the name of a token kind.
func (k tokenKind) String() string {
	if k < badToken || k > separatorToken {
		return fmt.Sprintf("tokenKind(%d)", int(k))
	}
	return tokenNames[k]
}

// describe returns a description of the token for error messages.
func (t token) describe() string {
	switch t.Kind {
	case eolToken:
		return "end of line"
	case eofToken:
		return "end of input"
	case strlitToken:
		return "{" + t.Value + "}"
	case argToken:
		return "#" + t.Value
	}
	return t.Value
}

// Scanner converts Velo source into tokens. The scanner always holds one
// token, the current one; Scan advances past it.
type Scanner struct {
	src  string
	pos  int
	line int
	col  int

	tok token
}

// NewScanner creates a scanner positioned on the first token of src.
func NewScanner(src string) *Scanner {
	s := &Scanner{src: src, line: 1, col: 1}
	s.Scan()
	return s
}

// Text returns the text of the current token. Argument tokens give only the
// digits, and string literals give the content between the outermost braces.
func (s *Scanner) Text() string {
	return s.tok.Value
}

// Kind returns the kind of the current token.
func (s *Scanner) Kind() tokenKind {
	return s.tok.Kind
}

// Scan advances past the current token and lexes the next.
func (s *Scanner) Scan() {
	s.tok = s.lex()
}

// peekRune returns the rune at the scanner position without consuming it.
func (s *Scanner) peekRune() (rune, int) {
	if s.pos >= len(s.src) {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRuneInString(s.src[s.pos:])
}

// next consumes one rune, tracking the line and column.
func (s *Scanner) next() rune {
	r, n := s.peekRune()
	s.pos += n
	if r == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	return r
}

// accept consumes the run of runes satisfying the predicate and returns it.
func (s *Scanner) accept(predicate func(rune) bool) string {
	start := s.pos
	for s.pos < len(s.src) {
		r, _ := s.peekRune()
		if !predicate(r) {
			break
		}
		s.next()
	}
	return s.src[start:s.pos]
}

func isSpace(r rune) bool {
	return strings.ContainsRune(" \t\r\f\v", r)
}

func isEOL(r rune) bool {
	return r == '\n' || r == ';'
}

func isWord(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// lex produces the token at the scanner position.
func (s *Scanner) lex() token {
	s.accept(isSpace)
	line, col := s.line, s.col
	if s.pos >= len(s.src) {
		return token{Kind: eofToken, Line: line, Col: col}
	}
	r, _ := s.peekRune()
	switch {
	case isEOL(r):
		// Newlines and semicolons, with any horizontal space between them,
		// make a single logical separator.
		text := s.accept(func(r rune) bool { return isEOL(r) || isSpace(r) })
		return token{Kind: eolToken, Value: text, Line: line, Col: col}
	case strings.ContainsRune("(),.=", r):
		s.next()
		return token{Kind: separatorToken, Value: string(r), Line: line, Col: col}
	case r == '#':
		s.next()
		digits := s.accept(isDigit)
		if digits == "" {
			return token{
				Kind:  badToken,
				Value: "#",
				Err:   fmt.Errorf("'#' must be followed by an argument number"),
				Line:  line,
				Col:   col,
			}
		}
		return token{Kind: argToken, Value: digits, Line: line, Col: col}
	case isWord(r):
		return token{Kind: identToken, Value: s.accept(isWord), Line: line, Col: col}
	case r == '{':
		return s.lexStrlit(line, col)
	}
	s.next()
	return token{
		Kind:  badToken,
		Value: string(r),
		Err:   fmt.Errorf("scanner encountered invalid character %q", r),
		Line:  line,
		Col:   col,
	}
}

// lexStrlit lexes a brace-delimited string literal. Nested braces balance;
// there are no escapes.
func (s *Scanner) lexStrlit(line, col int) token {
	s.next() // opening brace
	start := s.pos
	depth := 1
	for s.pos < len(s.src) {
		switch s.next() {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return token{Kind: strlitToken, Value: s.src[start : s.pos-1], Line: line, Col: col}
			}
		}
	}
	return token{
		Kind:  badToken,
		Value: "{" + s.src[start:],
		Err:   fmt.Errorf("unmatched '{' in string literal"),
		Line:  line,
		Col:   col,
	}
}
