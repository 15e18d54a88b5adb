// Package parser implements the recursive-descent parser for regex
// patterns (spec.md §4.2):
//
//	regex        := alternation
//	alternation  := concatenation ( '|' concatenation )*
//	concatenation := quantified*
//	quantified   := atom ( '*' | '+' | '?' | '{m,n}' )?
//	atom         := char | '.' | charset | anchor | '(' alternation ')' | boundary
package parser

import (
	"fmt"

	"github.com/edadma/goregex/ast"
	"github.com/edadma/goregex/lexer"
)

// SyntaxError reports a parse-time or lex-time failure, with the byte
// offset it occurred at (mirrors peggyvm.RuntimeError's "carry position
// and message" shape).
type SyntaxError struct {
	Pos int
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("regex syntax error at byte %d: %s", e.Pos, e.Msg)
}

// Parser consumes a lexer.Lexer's token stream and produces an ast.Node.
type Parser struct {
	lex        *lexer.Lexer
	groupCount int
}

// Parse compiles pattern's bytes into an AST. It returns the root node and
// the total group count (including implicit group 0, which covers the
// whole match and is not itself an ast.Group node).
func Parse(pattern []byte) (root *ast.Node, groupCount int, err error) {
	p := &Parser{lex: lexer.New(pattern)}

	root, err = p.parseAlternation()
	if err != nil {
		return nil, 0, err
	}

	if tok := p.lex.Peek(); tok.Kind != lexer.EOF {
		return nil, 0, &SyntaxError{Pos: tok.Pos, Msg: "unexpected trailing input"}
	}

	return root, p.groupCount + 1, nil
}

func (p *Parser) parseAlternation() (*ast.Node, error) {
	first, err := p.parseConcatenation()
	if err != nil {
		return nil, err
	}

	alts := []*ast.Node{first}
	for p.lex.Peek().Kind == lexer.Pipe {
		p.lex.Next()
		next, err := p.parseConcatenation()
		if err != nil {
			return nil, err
		}
		alts = append(alts, next)
	}

	if len(alts) == 1 {
		return alts[0], nil
	}
	return &ast.Node{Kind: ast.Alternation, Alts: alts}, nil
}

func (p *Parser) parseConcatenation() (*ast.Node, error) {
	var children []*ast.Node
	for {
		switch p.lex.Peek().Kind {
		case lexer.EOF, lexer.Pipe, lexer.RParen:
			return ast.NewSequence(children), nil
		}
		child, err := p.parseQuantified()
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
}

func (p *Parser) parseQuantified() (*ast.Node, error) {
	atom, err := p.parseAtom()
	if err != nil {
		return nil, err
	}

	tok := p.lex.Peek()
	switch tok.Kind {
	case lexer.Star:
		p.lex.Next()
		return &ast.Node{Kind: ast.Quantifier, Child: atom, QKind: ast.Star, Min: 0, Max: ast.Unbounded}, nil
	case lexer.Plus:
		p.lex.Next()
		return &ast.Node{Kind: ast.Quantifier, Child: atom, QKind: ast.Plus, Min: 1, Max: ast.Unbounded}, nil
	case lexer.Question:
		p.lex.Next()
		return &ast.Node{Kind: ast.Quantifier, Child: atom, QKind: ast.Optional, Min: 0, Max: 1}, nil
	case lexer.CountedQuant:
		p.lex.Next()
		max := ast.Unbounded
		if tok.Max != lexer.Unbounded {
			max = tok.Max
		}
		return &ast.Node{Kind: ast.Quantifier, Child: atom, QKind: ast.Counted, Min: tok.Min, Max: max}, nil
	}
	return atom, nil
}

func (p *Parser) parseAtom() (*ast.Node, error) {
	tok := p.lex.Next()
	switch tok.Kind {
	case lexer.Char:
		return &ast.Node{Kind: ast.Char, Byte: tok.Byte}, nil
	case lexer.Dot:
		return &ast.Node{Kind: ast.Dot}, nil
	case lexer.Charset:
		return &ast.Node{Kind: ast.Charset, Set: tok.Set}, nil
	case lexer.AnchorStart:
		return &ast.Node{Kind: ast.AnchorStart}, nil
	case lexer.AnchorEnd:
		return &ast.Node{Kind: ast.AnchorEnd}, nil
	case lexer.WordBoundary:
		return &ast.Node{Kind: ast.WordBoundary}, nil
	case lexer.NotWordBoundary:
		return &ast.Node{Kind: ast.NotWordBoundary}, nil
	case lexer.LParen:
		p.groupCount++
		num := p.groupCount
		child, err := p.parseAlternation()
		if err != nil {
			return nil, err
		}
		closing := p.lex.Next()
		if closing.Kind != lexer.RParen {
			return nil, &SyntaxError{Pos: closing.Pos, Msg: "unterminated group, expected ')'"}
		}
		return &ast.Node{Kind: ast.Group, GroupNum: num, Child: child}, nil
	case lexer.Error:
		return nil, &SyntaxError{Pos: tok.Pos, Msg: tok.Err}
	default:
		return nil, &SyntaxError{Pos: tok.Pos, Msg: "unexpected token"}
	}
}
