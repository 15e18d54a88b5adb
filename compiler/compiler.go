package compiler

import (
	"github.com/edadma/goregex/ast"
	"github.com/edadma/goregex/vm"
)

// Compile lowers root into a runnable vm.Program. groupCount is the
// value parser.Parse returned alongside root (it includes the implicit
// whole-match group 0). flags carries the surface-level i/m/s flags
// that affect instruction semantics (spec.md §4.4); the 'g' flag never
// reaches here, since it only affects the surface regexp.Regexp cursor.
func Compile(root *ast.Node, groupCount int, flags vm.Flags) *vm.Program {
	a := &assembler{}

	a.emit(vm.Instruction{Op: vm.SAVE_GROUP, GroupNum: 0, IsEnd: false})
	compileNode(a, root)
	a.emit(vm.Instruction{Op: vm.SAVE_GROUP, GroupNum: 0, IsEnd: true})
	a.emit(vm.Instruction{Op: vm.MATCH})

	return &vm.Program{
		Instructions: a.instrs,
		GroupCount:   groupCount,
		Flags:        flags,
	}
}

func compileNode(a *assembler, n *ast.Node) {
	switch n.Kind {
	case ast.Char:
		a.emit(vm.Instruction{Op: vm.CHAR, Byte: n.Byte})

	case ast.Dot:
		a.emit(vm.Instruction{Op: vm.DOT})

	case ast.Charset:
		a.emit(vm.Instruction{Op: vm.CHARSET, Set: n.Set})

	case ast.AnchorStart:
		a.emit(vm.Instruction{Op: vm.ANCHOR_START})

	case ast.AnchorEnd:
		a.emit(vm.Instruction{Op: vm.ANCHOR_END})

	case ast.WordBoundary:
		a.emit(vm.Instruction{Op: vm.WORD_BOUNDARY})

	case ast.NotWordBoundary:
		a.emit(vm.Instruction{Op: vm.WORD_BOUNDARY_NEG})

	case ast.Group:
		a.emit(vm.Instruction{Op: vm.SAVE_GROUP, GroupNum: n.GroupNum, IsEnd: false})
		compileNode(a, n.Child)
		a.emit(vm.Instruction{Op: vm.SAVE_GROUP, GroupNum: n.GroupNum, IsEnd: true})

	case ast.Sequence:
		for _, child := range n.Children {
			compileNode(a, child)
		}

	case ast.Alternation:
		compileAlternation(a, n.Alts)

	case ast.Quantifier:
		compileQuantifier(a, n)

	default:
		panic("compiler: unhandled ast.Kind")
	}
}

// compileAlternation emits, for n alternatives:
//
//	CHOICE alt2          ; patched once alt2's address is known
//	<alt1>
//	BRANCH end           ; patched once end is known
//	CHOICE alt3          ; (only if more than 2 alts remain)
//	<alt2>
//	BRANCH end
//	...
//	<altN>                ; last alternative has no guarding CHOICE
//
// end:
func compileAlternation(a *assembler, alts []*ast.Node) {
	var exitBranches []int

	for i, alt := range alts {
		last := i == len(alts)-1
		var choiceAddr int
		if !last {
			choiceAddr = a.emit(vm.Instruction{Op: vm.CHOICE})
		}

		compileNode(a, alt)

		if !last {
			exitBranches = append(exitBranches, a.emit(vm.Instruction{Op: vm.BRANCH}))
			a.patch(choiceAddr, a.here())
		}
	}

	end := a.here()
	for _, addr := range exitBranches {
		a.patch(addr, end)
	}
}

func compileQuantifier(a *assembler, n *ast.Node) {
	switch n.QKind {
	case ast.Optional:
		compileOptional(a, n.Child)

	case ast.Star:
		compileLoop(a, n.Child)

	case ast.Plus:
		compileNode(a, n.Child)
		compileLoop(a, n.Child)
		// spec.md §4.3 lists "+"'s template as a single obligatory match
		// followed by a bare CHOICE/BRANCH pair with no zero-length guard
		// at all. §8's "any pattern containing unbounded quantification
		// over a possibly-empty subpattern terminates" invariant applies
		// to "+" exactly as much as to "*" (consider "(a*)+"), so the
		// repeating tail here reuses the same guarded compileLoop as
		// "*", rather than the unguarded template as written.

	case ast.Counted:
		compileCounted(a, n.Child, n.Min, n.Max)

	default:
		panic("compiler: unhandled ast.QuantKind")
	}
}

// compileOptional emits a single greedy zero-or-one: try child first,
// fall back to skipping it.
func compileOptional(a *assembler, child *ast.Node) {
	choice := a.emit(vm.Instruction{Op: vm.CHOICE})
	compileNode(a, child)
	a.patch(choice, a.here())
}

// compileLoop emits a greedy zero-or-more of child, guarded by the
// auxiliary-stack zero-length check so an empty-matching child cannot
// loop forever (spec.md §4.3, §4.5):
//
//	loop:  CHOICE exit
//	       SAVE_POINTER
//	       <child>
//	       ZERO_LENGTH
//	       BRANCH_IF_NOT loop   ; re-enters the loop iff child advanced
//	exit:
//
// CHOICE is the first instruction of every iteration (including the
// first), so the VM always attempts the body before it ever considers
// exiting — DESIGN NOTES §9 flags a naive template that can invert this
// and "subtly prefer exiting over continuing"; this ordering keeps the
// loop greedy at every step, not just the first one.
func compileLoop(a *assembler, child *ast.Node) {
	top := a.here()
	choice := a.emit(vm.Instruction{Op: vm.CHOICE})
	a.emit(vm.Instruction{Op: vm.SAVE_POINTER})
	compileNode(a, child)
	a.emit(vm.Instruction{Op: vm.ZERO_LENGTH})
	a.emit(vm.Instruction{Op: vm.BRANCH_IF_NOT, Addr: top})
	a.patch(choice, a.here())
}

// compileCounted emits {m}, {m,n}, and {m,} per spec.md §4.3: min
// mandatory copies, then either (max-min) cascading optional copies that
// all exit to the same label (so backtracking peels them off the end
// one at a time), or, for an unbounded max, a greedy loop.
func compileCounted(a *assembler, child *ast.Node, min, max int) {
	for i := 0; i < min; i++ {
		compileNode(a, child)
	}

	if max == ast.Unbounded {
		compileLoop(a, child)
		return
	}

	var choices []int
	for i := min; i < max; i++ {
		choices = append(choices, a.emit(vm.Instruction{Op: vm.CHOICE}))
		compileNode(a, child)
	}
	end := a.here()
	for _, addr := range choices {
		a.patch(addr, end)
	}
}
