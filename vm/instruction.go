package vm

import "github.com/edadma/goregex/charset"

// OpCode identifies an Instruction's operation (spec.md §4.3).
type OpCode uint8

const (
	// CHAR matches one literal byte (Instruction.Byte), respecting
	// case-insensitive flag.
	CHAR OpCode = iota
	// DOT matches any byte; matches '\n' only if DotAll is set.
	DOT
	// CHARSET matches if the current byte is in Instruction.Set (already
	// carrying its own negation).
	CHARSET
	// SAVE_GROUP records the current input position into the start or
	// end slot of Instruction.GroupNum (Instruction.IsEnd selects which).
	SAVE_GROUP
	// CHOICE pushes a choice point targeting Instruction.Addr, then falls
	// through to the next instruction.
	CHOICE
	// BRANCH unconditionally jumps to Instruction.Addr.
	BRANCH
	// BRANCH_IF_NOT jumps to Instruction.Addr iff lastOpSucceeded is true.
	// Paired with a preceding ZERO_LENGTH, that flag means "the loop body
	// just advanced the input" — so despite the name (which refers to the
	// ZERO_LENGTH test reading NOT-zero-length), this is what re-enters
	// an unbounded-quantifier loop; falling through instead leaves the
	// loop once a zero-length iteration is detected.
	BRANCH_IF_NOT
	// SAVE_POINTER pushes the current input position onto the auxiliary
	// integer stack.
	SAVE_POINTER
	// ZERO_LENGTH compares the current input position to the top of the
	// auxiliary stack; sets lastOpSucceeded to false (no progress, loop
	// must exit) if equal, true otherwise.
	ZERO_LENGTH
	// ANCHOR_START asserts position 0, or (with Multiline) just after a
	// '\n'.
	ANCHOR_START
	// ANCHOR_END asserts end of input, or (with Multiline) just before a
	// '\n'.
	ANCHOR_END
	// WORD_BOUNDARY asserts a transition between word/non-word bytes.
	WORD_BOUNDARY
	// WORD_BOUNDARY_NEG is the complement of WORD_BOUNDARY.
	WORD_BOUNDARY_NEG
	// MATCH declares success.
	MATCH
	// FAIL forces a backtrack.
	FAIL
)

var opNames = [...]string{
	CHAR:              "CHAR",
	DOT:               "DOT",
	CHARSET:           "CHARSET",
	SAVE_GROUP:        "SAVE_GROUP",
	CHOICE:            "CHOICE",
	BRANCH:            "BRANCH",
	BRANCH_IF_NOT:     "BRANCH_IF_NOT",
	SAVE_POINTER:      "SAVE_POINTER",
	ZERO_LENGTH:       "ZERO_LENGTH",
	ANCHOR_START:      "ANCHOR_START",
	ANCHOR_END:        "ANCHOR_END",
	WORD_BOUNDARY:     "WORD_BOUNDARY",
	WORD_BOUNDARY_NEG: "WORD_BOUNDARY_NEG",
	MATCH:             "MATCH",
	FAIL:              "FAIL",
}

func (op OpCode) String() string {
	if int(op) < len(opNames) && opNames[op] != "" {
		return opNames[op]
	}
	return "ILLEGAL"
}

// Instruction is one bytecode instruction. Per DESIGN NOTES §9 ("sum types
// over opcode plus union"), it is a single discriminated struct rather
// than an opcode keying into a C-style union: every field below is named
// and typed, so there is no way to "read the wrong field" after a
// mis-patched opcode.
type Instruction struct {
	Op OpCode

	Byte byte         // CHAR
	Set  *charset.Set // CHARSET

	Addr int // CHOICE, BRANCH, BRANCH_IF_NOT: absolute target index

	GroupNum int  // SAVE_GROUP
	IsEnd    bool // SAVE_GROUP
}
