package vm

import (
	"regexp"
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
)

var reNL = regexp.MustCompile(`(?m)^`)

// diff renders a readable inline diff of l vs r, in the style
// peggyvm_test.go uses for its own Disassemble assertions.
func diff(l, r string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(l, r, false)
	pretty := dmp.DiffPrettyText(diffs)
	return reNL.ReplaceAllLiteralString(pretty, "\t")
}

func TestProgram_Disassemble(t *testing.T) {
	prog := &Program{
		GroupCount: 1,
		Instructions: []Instruction{
			{Op: SAVE_GROUP, GroupNum: 0, IsEnd: false},
			{Op: CHAR, Byte: 'a'},
			{Op: SAVE_GROUP, GroupNum: 0, IsEnd: true},
			{Op: MATCH},
		},
	}

	want := "" +
		"   0  SAVE_GROUP g0 start\n" +
		"   1  CHAR 'a'\n" +
		"   2  SAVE_GROUP g0 end\n" +
		"   3  MATCH\n"

	got := prog.Disassemble()
	if got != want {
		t.Errorf("Disassemble() mismatch:\n%s", diff(want, got))
	}
}
