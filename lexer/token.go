// Package lexer turns a regex pattern's bytes into a stream of tokens for
// the parser. It is hand-written and single-pass, with one-token
// lookahead (spec.md §4.1).
package lexer

import "github.com/edadma/goregex/charset"

// Kind discriminates the variant a Token holds. Per DESIGN NOTES §9, this
// is a tagged-struct sum type: one Kind field, operand fields used
// per-kind, rather than an opcode-plus-union encoding.
type Kind int

const (
	// Char is a single literal byte (Token.Byte).
	Char Kind = iota
	// Dot is the any-character wildcard '.'.
	Dot
	// Charset is a bracketed or shorthand character class (Token.Set).
	Charset
	// Star is the '*' quantifier.
	Star
	// Plus is the '+' quantifier.
	Plus
	// Question is the '?' quantifier.
	Question
	// CountedQuant is a parsed {m}, {m,}, or {m,n} quantifier
	// (Token.Min, Token.Max; Max == Unbounded for {m,}).
	CountedQuant
	// Pipe is the alternation operator '|'.
	Pipe
	// LParen opens a capturing group '('.
	LParen
	// RParen closes a group ')'.
	RParen
	// AnchorStart is '^'.
	AnchorStart
	// AnchorEnd is '$'.
	AnchorEnd
	// WordBoundary is '\b'.
	WordBoundary
	// NotWordBoundary is '\B'.
	NotWordBoundary
	// EOF is returned indefinitely once the input is exhausted.
	EOF
	// Error marks a lexical error (an unterminated bracket expression;
	// a malformed brace is lexed as a literal '{' instead); Token.Pos
	// carries the offending byte offset.
	Error
)

// Unbounded marks a CountedQuant token's Max field as "no upper bound"
// ({m,}), per spec.md §3's "max ∈ ℕ ∪ {∞}".
const Unbounded = -1

// Token is one lexical unit. Every token carries its source byte offset
// (Pos) for diagnostics (spec.md §3). Tokens are ephemeral: they do not
// outlive the lexer that produced them.
type Token struct {
	Kind Kind
	Pos  int

	Byte byte         // Char
	Set  *charset.Set // Charset
	Min  int          // CountedQuant
	Max  int          // CountedQuant (Unbounded for {m,})

	Err string // Error
}
