package regexp

// MatchIterator walks the non-overlapping matches of a Regexp against a
// fixed input by calling the Regexp's Exec once per step, so each step
// advances the Regexp's own global-exec cursor (LastIndex). Grounded on
// original_source/regex.h's MatchIterator, but fixing the bug visible in
// original_source/execute.c's match_iterator_next: the original never
// advanced its cursor past a zero-length match, so a pattern like "a*"
// against "bbb" would report the same empty match at position 0 forever.
// Here, Exec moves the cursor at least one byte past a zero-length match.
type MatchIterator struct {
	re    *Regexp
	input string
	done  bool
}

// MatchAll returns an iterator over the matches of re in input, in
// order, left to right, non-overlapping, starting from re's current
// LastIndex. It requires the 'g' flag; it returns nil otherwise
// (spec.md §6, §8).
func (re *Regexp) MatchAll(input string) *MatchIterator {
	if !re.Global() {
		return nil
	}
	return &MatchIterator{re: re, input: input}
}

// Next runs one Exec and returns its match, or nil once Exec finds
// nothing (after which Next keeps returning nil, even though Exec has
// reset LastIndex to 0).
func (it *MatchIterator) Next() *MatchResult {
	if it.done {
		return nil
	}

	res := it.re.Exec(it.input)
	if res == nil {
		it.done = true
	}
	return res
}
