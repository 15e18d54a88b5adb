package vm

// Captures is the capture vector: two parallel arrays of length
// groupCount holding byte offsets into the subject, indexed by group
// number (0 is the whole match). -1 means "unset" (spec.md §3).
type Captures struct {
	Starts []int
	Ends   []int
}

// NewCaptures allocates a Captures with every slot unset.
func NewCaptures(groupCount int) Captures {
	c := Captures{
		Starts: make([]int, groupCount),
		Ends:   make([]int, groupCount),
	}
	for i := range c.Starts {
		c.Starts[i] = -1
		c.Ends[i] = -1
	}
	return c
}

// Clone returns a deep copy of c. Called at every CHOICE so that a
// later backtrack can restore exactly the capture state that was live
// when the choice point was pushed, without needing an undo log.
func (c Captures) Clone() Captures {
	starts := make([]int, len(c.Starts))
	ends := make([]int, len(c.Ends))
	copy(starts, c.Starts)
	copy(ends, c.Ends)
	return Captures{Starts: starts, Ends: ends}
}
