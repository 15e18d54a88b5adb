package vm

// Search tries Program anchored at every position from start to
// len(input), returning the first successful Captures. It is how
// unanchored matching is built on top of an inherently anchored
// Execution: the compiler never emits a leading ".*?", the sweep lives
// here instead (mirrors how original_source/regex.c's regex_search
// loops match attempts over increasing offsets).
func Search(prog *Program, input []byte, start int, limits Limits) (ok bool, caps Captures, err error) {
	for pos := start; pos <= len(input); pos++ {
		ex := NewExecution(prog, input, pos, limits)
		state := ex.Run()
		if ex.Err != nil {
			return false, Captures{}, ex.Err
		}
		if state == Matched {
			return true, ex.Caps, nil
		}
	}
	return false, Captures{}, nil
}
