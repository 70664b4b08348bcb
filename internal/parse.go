package internal

/*
This file is the recursive-descent parser. The grammar, with one token of
lookahead, is

	Script  ::= {EOL} Expr {EOL Expr} {EOL}
	Expr    ::= Base {"." {EOL} Name} ["=" {EOL} Expr | Expr {"," {EOL} Expr}]
	Base    ::= Name | ArgRef | StringLit | "(" {EOL} Expr ")"

A bare name is a lookup on self which is run if it finds a method. Names
which begin a "."-chain are likewise run before the next lookup.
*/

import (
	"io"
	"strconv"
)

// Parser builds the AST of one Velo source text.
type Parser struct {
	s *Scanner
}

// NewParser creates a parser for src.
func NewParser(src string) *Parser {
	return &Parser{s: NewScanner(src)}
}

// Parse parses a whole source text into a Script.
func Parse(src string) (*Script, error) {
	return NewParser(src).Script()
}

// ParseReader reads a source text fully and parses it.
func ParseReader(src io.Reader) (*Script, error) {
	b, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}
	return Parse(string(b))
}

// Script parses the Script production. The entire input must be consumed.
func (p *Parser) Script() (*Script, error) {
	script := &Script{}
	p.skipEOL()
	for {
		e, err := p.expr()
		if err != nil {
			return nil, err
		}
		if e == nil {
			break
		}
		script.Exprs = append(script.Exprs, e)
		if k := p.s.Kind(); k != eolToken && k != eofToken {
			return nil, p.unexpected()
		}
		p.skipEOL()
	}
	if p.s.Kind() != eofToken {
		return nil, p.unexpected()
	}
	return script, nil
}

// expr parses the Expr production. The result is nil if the current token
// cannot begin an expression, which is how empty argument positions and the
// end of a script are recognized.
func (p *Parser) expr() (Node, error) {
	if p.atExprEnd() {
		return nil, nil
	}
	recv, err := p.base()
	if err != nil {
		return nil, err
	}
	for p.consume(".") {
		p.skipEOL()
		if p.s.Kind() != identToken {
			return nil, syntaxErrorf(p.s.tok, "expected name after '.', found %s", p.s.tok.describe())
		}
		recv = &Lookup{Receiver: invoked(recv), Name: p.s.Text()}
		p.s.Scan()
	}
	if p.atExprEnd() {
		return invoked(recv), nil
	}
	if tok := p.s.tok; p.consume("=") {
		l, ok := recv.(*Lookup)
		if !ok {
			return nil, syntaxErrorf(tok, "assignment requires lvalue, but have %v", recv)
		}
		p.skipEOL()
		at := p.s.tok
		v, err := p.expr()
		if err != nil {
			return nil, err
		}
		if v == nil {
			return nil, syntaxErrorf(at, "expected expression after '=', found %s", at.describe())
		}
		return &Assignment{Target: l.Receiver, Field: l.Name, Value: v}, nil
	}
	var args []Node
	a, err := p.expr()
	if err != nil {
		return nil, err
	}
	if a != nil {
		args = append(args, a)
	}
	for p.consume(",") {
		p.skipEOL()
		if a, err = p.expr(); err != nil {
			return nil, err
		}
		if a != nil {
			args = append(args, a)
		}
	}
	return &MethodCall{Callee: recv, Args: args}, nil
}

// base parses the Base production.
func (p *Parser) base() (Node, error) {
	tok := p.s.tok
	switch tok.Kind {
	case separatorToken:
		if tok.Value != "(" {
			break
		}
		p.s.Scan()
		p.skipEOL()
		e, err := p.expr()
		if err != nil {
			return nil, err
		}
		if e == nil {
			return nil, syntaxErrorf(p.s.tok, "expected expression after '(', found %s", p.s.tok.describe())
		}
		if !p.consume(")") {
			return nil, syntaxErrorf(p.s.tok, "expected ')', found %s", p.s.tok.describe())
		}
		return e, nil
	case strlitToken:
		p.s.Scan()
		return &StringLiteral{Text: tok.Value}, nil
	case argToken:
		n, err := strconv.Atoi(tok.Value)
		if err != nil {
			return nil, syntaxErrorf(tok, "bad argument reference #%s: %v", tok.Value, err)
		}
		p.s.Scan()
		return &Argument{Index: n}, nil
	case identToken:
		p.s.Scan()
		return &Lookup{Receiver: &Self{}, Name: tok.Value}, nil
	}
	return nil, p.unexpected()
}

// invoked wraps a name lookup so that it is run if it finds a method. Other
// nodes are returned unchanged.
func invoked(n Node) Node {
	if l, ok := n.(*Lookup); ok {
		return &MethodCall{Callee: l}
	}
	return n
}

// atExprEnd reports whether the current token ends an expression.
func (p *Parser) atExprEnd() bool {
	switch p.s.Kind() {
	case eolToken, eofToken:
		return true
	case separatorToken:
		return p.s.Text() == ")" || p.s.Text() == ","
	}
	return false
}

// consume advances past the current token if it is the given separator.
func (p *Parser) consume(sep string) bool {
	if p.s.Kind() == separatorToken && p.s.Text() == sep {
		p.s.Scan()
		return true
	}
	return false
}

// skipEOL advances past an EOL token, if there is one. The scanner merges
// consecutive line ends, so there is at most one.
func (p *Parser) skipEOL() {
	if p.s.Kind() == eolToken {
		p.s.Scan()
	}
}

// unexpected creates a SyntaxError for the current token.
func (p *Parser) unexpected() error {
	tok := p.s.tok
	if tok.Kind == badToken {
		return syntaxErrorf(tok, "%v", tok.Err)
	}
	return syntaxErrorf(tok, "unexpected %s", tok.describe())
}
