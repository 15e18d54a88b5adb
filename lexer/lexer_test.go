package lexer

import "testing"

func kinds(t *testing.T, pattern string) []Kind {
	t.Helper()
	l := New([]byte(pattern))
	var got []Kind
	for {
		tok := l.Next()
		got = append(got, tok.Kind)
		if tok.Kind == EOF || tok.Kind == Error {
			return got
		}
	}
}

func TestLexer_SimpleTokens(t *testing.T) {
	type testrow struct {
		Pattern string
		Want    []Kind
	}

	data := []testrow{
		{"a.b", []Kind{Char, Dot, Char, EOF}},
		{"a*b+c?", []Kind{Char, Star, Char, Plus, Char, Question, EOF}},
		{"a|b", []Kind{Char, Pipe, Char, EOF}},
		{"(a)", []Kind{LParen, Char, RParen, EOF}},
		{"^a$", []Kind{AnchorStart, Char, AnchorEnd, EOF}},
	}

	for i, row := range data {
		got := kinds(t, row.Pattern)
		if !equalKinds(got, row.Want) {
			t.Errorf("%03d: lex(%q) = %v, want %v", i, row.Pattern, got, row.Want)
		}
	}
}

func equalKinds(a, b []Kind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestLexer_CountedQuantifier(t *testing.T) {
	type testrow struct {
		Pattern string
		Min     int
		Max     int
	}

	data := []testrow{
		{"a{3}", 3, 3},
		{"a{2,}", 2, Unbounded},
		{"a{2,5}", 2, 5},
	}

	for i, row := range data {
		l := New([]byte(row.Pattern))
		l.Next() // 'a'
		tok := l.Next()
		if tok.Kind != CountedQuant {
			t.Errorf("%03d: expected CountedQuant, got %v", i, tok.Kind)
			continue
		}
		if tok.Min != row.Min || tok.Max != row.Max {
			t.Errorf("%03d: {min=%d max=%d}, want {min=%d max=%d}", i, tok.Min, tok.Max, row.Min, row.Max)
		}
	}
}

func TestLexer_MalformedBraceIsLiteral(t *testing.T) {
	got := kinds(t, "a{,}b")
	want := []Kind{Char, Char, Char, Char, Char, EOF}
	if !equalKinds(got, want) {
		t.Errorf("lex(%q) = %v, want %v", "a{,}b", got, want)
	}
}

func TestLexer_Bracket(t *testing.T) {
	l := New([]byte("[a-z^]"))
	tok := l.Next()
	if tok.Kind != Charset {
		t.Fatalf("expected Charset, got %v", tok.Kind)
	}
	if !tok.Set.Contains('m') {
		t.Error("expected range a-z to contain 'm'")
	}
	if !tok.Set.Contains('^') {
		t.Error("'^' after the start of a bracket is a literal member")
	}
	if tok.Set.Negate {
		t.Error("'^' not in first position must not negate the set")
	}
}

func TestLexer_BracketNegated(t *testing.T) {
	l := New([]byte("[^abc]"))
	tok := l.Next()
	if !tok.Set.Negate {
		t.Error("leading '^' should negate the bracket set")
	}
}

func TestLexer_BracketLeadingCloseBracketIsLiteral(t *testing.T) {
	l := New([]byte("[]a]"))
	tok := l.Next()
	if tok.Kind != Charset {
		t.Fatalf("expected Charset, got %v", tok.Kind)
	}
	if !tok.Set.Contains(']') || !tok.Set.Contains('a') {
		t.Error("leading ']' should be a literal member, not the closing bracket")
	}
}

func TestLexer_BracketUnterminated(t *testing.T) {
	l := New([]byte("[abc"))
	tok := l.Next()
	if tok.Kind != Error {
		t.Fatalf("expected Error, got %v", tok.Kind)
	}
}

func TestLexer_BracketShorthandEscape(t *testing.T) {
	l := New([]byte(`[\d_]`))
	tok := l.Next()
	if !tok.Set.Contains('5') || !tok.Set.Contains('_') {
		t.Error("expected bracket with \\d to contain digits and literal '_'")
	}
	if tok.Set.Contains('a') {
		t.Error("\\d inside a bracket should not pull in letters")
	}
}

func TestLexer_EscapeOutsideBracket(t *testing.T) {
	type testrow struct {
		Pattern string
		Want    Kind
	}

	data := []testrow{
		{`\d`, Charset},
		{`\w`, Charset},
		{`\s`, Charset},
		{`\b`, WordBoundary},
		{`\B`, NotWordBoundary},
		{`\n`, Char},
	}

	for i, row := range data {
		l := New([]byte(row.Pattern))
		tok := l.Next()
		if tok.Kind != row.Want {
			t.Errorf("%03d: lex(%q) kind = %v, want %v", i, row.Pattern, tok.Kind, row.Want)
		}
	}
}

func TestLexer_HexEscape(t *testing.T) {
	l := New([]byte(`\x41`))
	tok := l.Next()
	if tok.Kind != Char || tok.Byte != 'A' {
		t.Errorf("expected Char 'A', got %v %q", tok.Kind, tok.Byte)
	}
}

func TestLexer_PeekDoesNotConsume(t *testing.T) {
	l := New([]byte("ab"))
	first := l.Peek()
	second := l.Peek()
	if first.Kind != second.Kind || first.Byte != second.Byte {
		t.Fatal("Peek should be idempotent")
	}
	if l.Next().Byte != 'a' {
		t.Fatal("Next after Peek should return the peeked token")
	}
	if l.Next().Byte != 'b' {
		t.Fatal("lexer should advance past the peeked token")
	}
}
