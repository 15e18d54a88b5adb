package vm

import "github.com/edadma/goregex/charset"

// State is the outcome of an Execution, once it stops Running.
type State int

const (
	Running State = iota
	Matched
	Failed
)

// Execution is one attempt to match Program against Input starting at a
// fixed position. Grounded on peggyvm.Execution/peggyvm.Frame: CS (here
// Choices) is the choice/call stack, Step switches on opcode, Run loops
// Step until the state leaves Running. It diverges from peggyvm exactly
// where spec.md's VM differs: Frame carries a full Captures snapshot
// instead of a position into an append-only assignment log, so
// backtracking is "pop a Frame, restore its fields" with no separate
// undo pass over a KS log.
type Execution struct {
	Program *Program
	Input   []byte

	PC    int
	Pos   int
	Caps  Captures
	Stack *intNode

	Choices []Frame

	lastOpOK bool

	instrCount int
	Limits     Limits

	State State
	Err   error
}

// NewExecution sets up an attempt to match prog against input, anchored
// at start.
func NewExecution(prog *Program, input []byte, start int, limits Limits) *Execution {
	return &Execution{
		Program: prog,
		Input:   input,
		PC:      0,
		Pos:     start,
		Caps:    NewCaptures(prog.GroupCount),
		State:   Running,
		Limits:  limits,
	}
}

// Run steps the execution to completion, returning its terminal State.
func (e *Execution) Run() State {
	for e.State == Running {
		e.Step()
	}
	return e.State
}

// Step executes a single instruction. It is exported so tests can
// single-step and inspect intermediate VM state.
func (e *Execution) Step() {
	if e.State != Running {
		return
	}

	e.instrCount++
	if e.instrCount > e.Limits.MaxInstructions {
		e.State = Failed
		return
	}

	if e.PC < 0 || e.PC >= len(e.Program.Instructions) {
		e.State = Failed
		e.Err = &RuntimeError{Err: ErrBadAddr, PC: e.PC, Pos: e.Pos}
		return
	}

	instr := e.Program.Instructions[e.PC]

	switch instr.Op {
	case CHAR:
		if e.Pos < len(e.Input) && e.charEquals(e.Input[e.Pos], instr.Byte) {
			e.Pos++
			e.PC++
			e.lastOpOK = true
		} else {
			e.backtrack()
		}

	case DOT:
		if e.Pos < len(e.Input) {
			b := e.Input[e.Pos]
			if b != '\n' || e.Program.Flags.Has(DotAll) {
				e.Pos++
				e.PC++
				e.lastOpOK = true
				return
			}
		}
		e.backtrack()

	case CHARSET:
		if e.Pos < len(e.Input) && e.setMatches(instr.Set, e.Input[e.Pos]) {
			e.Pos++
			e.PC++
			e.lastOpOK = true
		} else {
			e.backtrack()
		}

	case SAVE_GROUP:
		if instr.GroupNum < 0 || instr.GroupNum >= e.Program.GroupCount {
			e.State = Failed
			e.Err = &RuntimeError{Err: ErrBadGroupIndex, PC: e.PC, Pos: e.Pos}
			return
		}
		if instr.IsEnd {
			e.Caps.Ends[instr.GroupNum] = e.Pos
		} else {
			e.Caps.Starts[instr.GroupNum] = e.Pos
		}
		e.PC++
		e.lastOpOK = true

	case CHOICE:
		if len(e.Choices) >= e.Limits.MaxChoicePoints {
			e.State = Failed
			return
		}
		e.Choices = append(e.Choices, Frame{
			PC:    instr.Addr,
			Pos:   e.Pos,
			Caps:  e.Caps.Clone(),
			Stack: e.Stack,
		})
		e.PC++
		e.lastOpOK = true

	case BRANCH:
		e.PC = instr.Addr

	case BRANCH_IF_NOT:
		if e.lastOpOK {
			e.PC = instr.Addr
		} else {
			e.PC++
		}

	case SAVE_POINTER:
		e.Stack = e.Stack.push(e.Pos)
		e.PC++
		e.lastOpOK = true

	case ZERO_LENGTH:
		e.lastOpOK = e.Pos != e.Stack.peek()
		e.PC++

	case ANCHOR_START:
		if e.Pos == 0 || (e.Program.Flags.Has(Multiline) && e.Input[e.Pos-1] == '\n') {
			e.PC++
			e.lastOpOK = true
		} else {
			e.backtrack()
		}

	case ANCHOR_END:
		if e.Pos == len(e.Input) || (e.Program.Flags.Has(Multiline) && e.Input[e.Pos] == '\n') {
			e.PC++
			e.lastOpOK = true
		} else {
			e.backtrack()
		}

	case WORD_BOUNDARY:
		if e.atWordBoundary() {
			e.PC++
			e.lastOpOK = true
		} else {
			e.backtrack()
		}

	case WORD_BOUNDARY_NEG:
		if !e.atWordBoundary() {
			e.PC++
			e.lastOpOK = true
		} else {
			e.backtrack()
		}

	case MATCH:
		e.State = Matched

	case FAIL:
		e.backtrack()

	default:
		e.State = Failed
		e.Err = &RuntimeError{Err: ErrBadAddr, PC: e.PC, Pos: e.Pos}
	}
}

// backtrack pops the most recent choice point and resumes from it, or
// declares the whole attempt a non-match if none remain.
func (e *Execution) backtrack() {
	if len(e.Choices) == 0 {
		e.State = Failed
		return
	}
	top := len(e.Choices) - 1
	frame := e.Choices[top]
	e.Choices = e.Choices[:top]

	e.PC = frame.PC
	e.Pos = frame.Pos
	e.Caps = frame.Caps
	e.Stack = frame.Stack
	e.lastOpOK = false
}

func (e *Execution) charEquals(have, want byte) bool {
	if have == want {
		return true
	}
	if e.Program.Flags.Has(CaseInsensitive) {
		return foldByte(have) == foldByte(want)
	}
	return false
}

func (e *Execution) setMatches(set *charset.Set, b byte) bool {
	if set.Match(b) {
		return true
	}
	if e.Program.Flags.Has(CaseInsensitive) {
		return set.Match(swapCase(b))
	}
	return false
}

func (e *Execution) atWordBoundary() bool {
	before := e.Pos > 0 && charset.IsWordByte(e.Input[e.Pos-1])
	after := e.Pos < len(e.Input) && charset.IsWordByte(e.Input[e.Pos])
	return before != after
}

func foldByte(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

func swapCase(b byte) byte {
	switch {
	case b >= 'a' && b <= 'z':
		return b - ('a' - 'A')
	case b >= 'A' && b <= 'Z':
		return b + ('a' - 'A')
	}
	return b
}
