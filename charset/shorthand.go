package charset

// Shorthand character classes, resolved once at lex time (spec.md §3).

// Digit returns the \d class: [0-9].
func Digit() *Set {
	s := New()
	s.AddRange('0', '9')
	return s
}

// NotDigit returns the \D class: [^0-9].
func NotDigit() *Set {
	s := Digit()
	s.Negate = true
	return s
}

// Word returns the \w class: [A-Za-z0-9_].
func Word() *Set {
	s := New()
	s.AddRange('a', 'z')
	s.AddRange('A', 'Z')
	s.AddRange('0', '9')
	s.Add('_')
	return s
}

// NotWord returns the \W class: [^A-Za-z0-9_].
func NotWord() *Set {
	s := Word()
	s.Negate = true
	return s
}

// whitespaceBytes are the bytes \s matches: space, tab, LF, CR, FF, VT.
var whitespaceBytes = [...]byte{' ', '\t', '\n', '\r', '\f', '\v'}

// Space returns the \s class.
func Space() *Set {
	s := New()
	for _, b := range whitespaceBytes {
		s.Add(b)
	}
	return s
}

// NotSpace returns the \S class.
func NotSpace() *Set {
	s := Space()
	s.Negate = true
	return s
}

// IsWordByte reports whether b is a "word" byte per spec.md §4.4's
// word-boundary definition: [A-Za-z0-9_].
func IsWordByte(b byte) bool {
	return (b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9') ||
		b == '_'
}
