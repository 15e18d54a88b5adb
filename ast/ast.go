// Package ast defines the abstract syntax tree produced by package parser
// and consumed by package compiler (spec.md §3, §4.2).
package ast

import "github.com/edadma/goregex/charset"

// Kind discriminates a Node's variant. Per DESIGN NOTES §9, Node is a
// tagged-struct sum type: one Kind, per-kind operand fields.
type Kind int

const (
	// Char matches one literal byte (Node.Byte).
	Char Kind = iota
	// Dot matches any byte (any, or any-but-newline without the dotall flag).
	Dot
	// Charset matches a bracketed or shorthand character class (Node.Set).
	Charset
	// AnchorStart is '^'.
	AnchorStart
	// AnchorEnd is '$'.
	AnchorEnd
	// WordBoundary is '\b'.
	WordBoundary
	// NotWordBoundary is '\B'.
	NotWordBoundary
	// Group is a numbered capturing group (Node.GroupNum, Node.Child).
	Group
	// Sequence is an ordered concatenation of children (Node.Children);
	// may be empty (matches the empty string).
	Sequence
	// Alternation is a list of >= 2 alternatives (Node.Alts).
	Alternation
	// Quantifier repeats Node.Child per Node.QKind/Min/Max.
	Quantifier
)

// QuantKind discriminates a Quantifier node's repetition form.
type QuantKind int

const (
	// Star is zero-or-more, '*'.
	Star QuantKind = iota
	// Plus is one-or-more, '+'.
	Plus
	// Optional is zero-or-one, '?'.
	Optional
	// Counted is a {m}, {m,}, or {m,n} bound.
	Counted
)

// Unbounded marks a Quantifier's Max as "no upper bound" ({m,}, or '*'/'+').
const Unbounded = -1

// Node is one AST node. Ownership is a tree: each node owns its children;
// there are no cycles.
type Node struct {
	Kind Kind

	Byte byte         // Char
	Set  *charset.Set // Charset

	GroupNum int   // Group: 1-based, source order of '('
	Child    *Node // Group, Quantifier

	Children []*Node // Sequence
	Alts     []*Node // Alternation

	QKind QuantKind // Quantifier
	Min   int       // Quantifier
	Max   int       // Quantifier (Unbounded for no upper bound)
}

// NewSequence builds a Sequence node, normalizing a single-child sequence
// to that child directly (spec.md §3, §4.2).
func NewSequence(children []*Node) *Node {
	if len(children) == 1 {
		return children[0]
	}
	return &Node{Kind: Sequence, Children: children}
}
