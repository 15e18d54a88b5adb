// Package compiler lowers an ast.Node tree into a vm.Program (spec.md
// §4.3). Grounded on peggyvm.Assembler's two-pass "emit now, patch the
// address field later" discipline, simplified because vm.Instruction is
// fixed-width: there is no relaxation loop, no byte-offset recomputation,
// just an index into a slice that never moves once appended.
package compiler

import "github.com/edadma/goregex/vm"

// assembler accumulates instructions and remembers which ones still need
// their Addr field patched to a label that hasn't been placed yet.
type assembler struct {
	instrs []vm.Instruction
}

// here returns the address the next emit will land at.
func (a *assembler) here() int { return len(a.instrs) }

// emit appends instr and returns its address.
func (a *assembler) emit(instr vm.Instruction) int {
	a.instrs = append(a.instrs, instr)
	return a.here() - 1
}

// patch sets the Addr field of the instruction at addr to target. Used
// once the label a forward branch was waiting on has finally been
// placed.
func (a *assembler) patch(addr, target int) {
	a.instrs[addr].Addr = target
}
