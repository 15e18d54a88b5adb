package lexer

import (
	"fmt"

	"github.com/edadma/goregex/charset"
)

// Lexer is a peekable, single-pass tokenizer over a pattern's bytes.
type Lexer struct {
	src    []byte
	pos    int
	peeked *Token
}

// New returns a Lexer over pattern.
func New(pattern []byte) *Lexer {
	return &Lexer{src: pattern}
}

// Peek returns the next token without consuming it.
func (l *Lexer) Peek() Token {
	if l.peeked == nil {
		t := l.lex()
		l.peeked = &t
	}
	return *l.peeked
}

// Next consumes and returns the next token. Past the end of input, it
// returns an EOF token indefinitely.
func (l *Lexer) Next() Token {
	t := l.Peek()
	l.peeked = nil
	return t
}

func (l *Lexer) errorf(pos int, format string, args ...interface{}) Token {
	return Token{Kind: Error, Pos: pos, Err: fmt.Sprintf(format, args...)}
}

func (l *Lexer) lex() Token {
	if l.pos >= len(l.src) {
		return Token{Kind: EOF, Pos: l.pos}
	}

	start := l.pos
	b := l.src[l.pos]

	switch b {
	case '.':
		l.pos++
		return Token{Kind: Dot, Pos: start}
	case '*':
		l.pos++
		return Token{Kind: Star, Pos: start}
	case '+':
		l.pos++
		return Token{Kind: Plus, Pos: start}
	case '?':
		l.pos++
		return Token{Kind: Question, Pos: start}
	case '|':
		l.pos++
		return Token{Kind: Pipe, Pos: start}
	case '(':
		l.pos++
		return Token{Kind: LParen, Pos: start}
	case ')':
		l.pos++
		return Token{Kind: RParen, Pos: start}
	case '^':
		l.pos++
		return Token{Kind: AnchorStart, Pos: start}
	case '$':
		l.pos++
		return Token{Kind: AnchorEnd, Pos: start}
	case '{':
		if tok, ok := l.lexCountedQuantifier(start); ok {
			return tok
		}
		l.pos++
		return Token{Kind: Char, Pos: start, Byte: '{'}
	case '[':
		return l.lexBracket(start)
	case '\\':
		return l.lexEscape(start)
	default:
		l.pos++
		return Token{Kind: Char, Pos: start, Byte: b}
	}
}

// lexCountedQuantifier consumes a {m}, {m,}, or {m,n} body starting at the
// '{' found at l.src[start]. On success it advances l.pos past the closing
// '}' and returns (token, true). On any malformed body — missing '}',
// non-digit contents, or m > n — it leaves l.pos untouched and returns
// (zero, false) so the caller re-emits '{' as a literal (spec.md §4.1).
func (l *Lexer) lexCountedQuantifier(start int) (Token, bool) {
	i := start + 1
	minStart := i
	for i < len(l.src) && l.src[i] >= '0' && l.src[i] <= '9' {
		i++
	}
	if i == minStart {
		return Token{}, false
	}
	min := atoi(l.src[minStart:i])

	max := min
	if i < len(l.src) && l.src[i] == ',' {
		i++
		maxStart := i
		for i < len(l.src) && l.src[i] >= '0' && l.src[i] <= '9' {
			i++
		}
		if i == maxStart {
			max = Unbounded
		} else {
			max = atoi(l.src[maxStart:i])
		}
	}

	if i >= len(l.src) || l.src[i] != '}' {
		return Token{}, false
	}
	if max != Unbounded && min > max {
		return Token{}, false
	}

	l.pos = i + 1
	return Token{Kind: CountedQuant, Pos: start, Min: min, Max: max}, true
}

func atoi(digits []byte) int {
	n := 0
	for _, d := range digits {
		n = n*10 + int(d-'0')
	}
	return n
}

// lexBracket consumes a bracket expression [...] per spec.md §4.1.
func (l *Lexer) lexBracket(start int) Token {
	i := start + 1
	set := charset.New()

	if i < len(l.src) && l.src[i] == '^' {
		set.Negate = true
		i++
	}

	first := true
	for {
		if i >= len(l.src) {
			l.pos = i
			return l.errorf(start, "unterminated bracket expression")
		}
		if l.src[i] == ']' && !first {
			i++
			l.pos = i
			return Token{Kind: Charset, Pos: start, Set: set}
		}
		first = false

		if l.src[i] == '\\' {
			b, consumed := decodeBracketEscape(l.src, i, set)
			if consumed == 0 {
				// Bare trailing backslash: treat as literal.
				set.Add('\\')
				i++
				continue
			}
			if b >= 0 {
				set.Add(byte(b))
			}
			i += consumed
			continue
		}

		// Range: X-Y, where neither X nor Y is ']'.
		if i+2 < len(l.src) && l.src[i] != ']' && l.src[i+1] == '-' && l.src[i+2] != ']' {
			lo, hi := l.src[i], l.src[i+2]
			set.AddRange(lo, hi)
			i += 3
			continue
		}

		set.Add(l.src[i])
		i++
	}
}

// decodeBracketEscape decodes a single backslash escape inside a bracket
// body starting at src[i] (src[i] == '\\'). It applies shorthand classes
// directly to set and returns (-1, consumed) for them, or returns the
// literal byte value and the number of bytes consumed for everything
// else. consumed == 0 signals a dangling backslash at end of input.
func decodeBracketEscape(src []byte, i int, set *charset.Set) (b int, consumed int) {
	if i+1 >= len(src) {
		return 0, 0
	}
	esc := src[i+1]
	switch esc {
	case 'd':
		applyShorthand(set, charset.Digit())
		return -1, 2
	case 'w':
		applyShorthand(set, charset.Word())
		return -1, 2
	case 's':
		applyShorthand(set, charset.Space())
		return -1, 2
	case 'D':
		applyShorthand(set, charset.NotDigit())
		return -1, 2
	case 'W':
		applyShorthand(set, charset.NotWord())
		return -1, 2
	case 'S':
		applyShorthand(set, charset.NotSpace())
		return -1, 2
	case 'n':
		return int('\n'), 2
	case 't':
		return int('\t'), 2
	case 'r':
		return int('\r'), 2
	case 'f':
		return int('\f'), 2
	case 'v':
		return int('\v'), 2
	case 'x':
		if i+3 < len(src) {
			if v, ok := hexByte(src[i+2], src[i+3]); ok {
				return int(v), 4
			}
		}
		return int('x'), 2
	default:
		return int(esc), 2
	}
}

// applyShorthand merges a resolved shorthand class's membership bits into
// an enclosing bracket expression's set. Per spec.md §4.1, a shorthand
// escape's *complement* flag is never applied to the surrounding bracket
// negation: \D inside [...] contributes the bytes \D would match (i.e.
// "not a digit") as positive members of the enclosing set.
func applyShorthand(dst *charset.Set, shorthand *charset.Set) {
	for i := 0; i < 256; i++ {
		if shorthand.Match(byte(i)) {
			dst.Add(byte(i))
		}
	}
}

func hexByte(hi, lo byte) (byte, bool) {
	h, ok1 := hexDigit(hi)
	l, ok2 := hexDigit(lo)
	if !ok1 || !ok2 {
		return 0, false
	}
	return h<<4 | l, true
}

func hexDigit(b byte) (byte, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}

// lexEscape consumes a backslash escape outside of a bracket expression,
// per spec.md §4.1.
func (l *Lexer) lexEscape(start int) Token {
	if start+1 >= len(l.src) {
		// Dangling backslash at end of pattern: literal backslash.
		l.pos = start + 1
		return Token{Kind: Char, Pos: start, Byte: '\\'}
	}
	esc := l.src[start+1]
	switch esc {
	case 'd':
		l.pos = start + 2
		return Token{Kind: Charset, Pos: start, Set: charset.Digit()}
	case 'w':
		l.pos = start + 2
		return Token{Kind: Charset, Pos: start, Set: charset.Word()}
	case 's':
		l.pos = start + 2
		return Token{Kind: Charset, Pos: start, Set: charset.Space()}
	case 'D':
		l.pos = start + 2
		return Token{Kind: Charset, Pos: start, Set: charset.NotDigit()}
	case 'W':
		l.pos = start + 2
		return Token{Kind: Charset, Pos: start, Set: charset.NotWord()}
	case 'S':
		l.pos = start + 2
		return Token{Kind: Charset, Pos: start, Set: charset.NotSpace()}
	case 'b':
		l.pos = start + 2
		return Token{Kind: WordBoundary, Pos: start}
	case 'B':
		l.pos = start + 2
		return Token{Kind: NotWordBoundary, Pos: start}
	case 'n':
		l.pos = start + 2
		return Token{Kind: Char, Pos: start, Byte: '\n'}
	case 't':
		l.pos = start + 2
		return Token{Kind: Char, Pos: start, Byte: '\t'}
	case 'r':
		l.pos = start + 2
		return Token{Kind: Char, Pos: start, Byte: '\r'}
	case 'f':
		l.pos = start + 2
		return Token{Kind: Char, Pos: start, Byte: '\f'}
	case 'v':
		l.pos = start + 2
		return Token{Kind: Char, Pos: start, Byte: '\v'}
	case 'x':
		if start+3 < len(l.src) {
			if v, ok := hexByte(l.src[start+2], l.src[start+3]); ok {
				l.pos = start + 4
				return Token{Kind: Char, Pos: start, Byte: v}
			}
		}
		l.pos = start + 2
		return Token{Kind: Char, Pos: start, Byte: 'x'}
	default:
		l.pos = start + 2
		return Token{Kind: Char, Pos: start, Byte: esc}
	}
}
