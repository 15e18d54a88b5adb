package regexp

// MatchResult is the outcome of a single successful match (spec.md §5),
// grounded on original_source/regex.h's MatchResult but widened from a
// single capture group to the full Captures vector.
type MatchResult struct {
	// Text is the overall matched substring (group 0).
	Text string
	// Groups holds each capturing group's matched substring, 1-indexed
	// by position (Groups[0] is group 1). An entry is "" with Matched
	// false at that index when the group did not participate in the
	// match (e.g. the untaken side of an alternation).
	Groups []Group
	// Index is the byte offset into Input where Text begins.
	Index int
	// Input is the subject string the match was found in.
	Input string
}

// Group is one capturing group's result.
type Group struct {
	Text    string
	Matched bool
}

func buildResult(input string, starts, ends []int) *MatchResult {
	res := &MatchResult{
		Text:  input[starts[0]:ends[0]],
		Index: starts[0],
		Input: input,
	}
	if len(starts) > 1 {
		res.Groups = make([]Group, len(starts)-1)
		for i := 1; i < len(starts); i++ {
			if starts[i] < 0 || ends[i] < 0 {
				continue
			}
			res.Groups[i-1] = Group{Text: input[starts[i]:ends[i]], Matched: true}
		}
	}
	return res
}
