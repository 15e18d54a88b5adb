package vm

import (
	"fmt"
	"strings"
)

// Program is a compiled pattern: a flat, absolute-addressed instruction
// stream plus the group count needed to size a Captures vector.
type Program struct {
	Instructions []Instruction
	GroupCount   int
	Flags        Flags
}

// Disassemble renders p as one line per instruction, address-prefixed,
// in the style of peggyvm.Program.Disassemble — intended for debugging
// and for compiler tests that assert on exact emitted bytecode.
func (p *Program) Disassemble() string {
	var buf strings.Builder
	for i, instr := range p.Instructions {
		fmt.Fprintf(&buf, "%4d  %s", i, instr.Op)
		switch instr.Op {
		case CHAR:
			fmt.Fprintf(&buf, " %q", instr.Byte)
		case CHARSET:
			buf.WriteString(" <set>")
		case SAVE_GROUP:
			fmt.Fprintf(&buf, " g%d %s", instr.GroupNum, endOrStart(instr.IsEnd))
		case CHOICE, BRANCH, BRANCH_IF_NOT:
			fmt.Fprintf(&buf, " -> %d", instr.Addr)
		}
		buf.WriteByte('\n')
	}
	return buf.String()
}

func endOrStart(isEnd bool) string {
	if isEnd {
		return "end"
	}
	return "start"
}
