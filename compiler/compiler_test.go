package compiler

import (
	"testing"

	"github.com/edadma/goregex/parser"
	"github.com/edadma/goregex/vm"
)

func compileString(t *testing.T, pattern string, flags vm.Flags) *vm.Program {
	t.Helper()
	root, groupCount, err := parser.Parse([]byte(pattern))
	if err != nil {
		t.Fatalf("Parse(%q): %v", pattern, err)
	}
	return Compile(root, groupCount, flags)
}

func mustMatch(t *testing.T, prog *vm.Program, input string, start int) vm.Captures {
	t.Helper()
	ok, caps, err := vm.Search(prog, []byte(input), start, vm.DefaultLimits())
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if !ok {
		t.Fatalf("expected a match in %q from %d, got none", input, start)
	}
	return caps
}

func mustNotMatch(t *testing.T, prog *vm.Program, input string, start int) {
	t.Helper()
	ok, _, err := vm.Search(prog, []byte(input), start, vm.DefaultLimits())
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if ok {
		t.Fatalf("expected no match in %q from %d", input, start)
	}
}

func TestCompile_Literal(t *testing.T) {
	prog := compileString(t, "hello", 0)
	caps := mustMatch(t, prog, "say hello there", 0)
	if caps.Starts[0] != 4 || caps.Ends[0] != 9 {
		t.Errorf("group 0 = [%d,%d), want [4,9)", caps.Starts[0], caps.Ends[0])
	}
}

func TestCompile_Groups(t *testing.T) {
	prog := compileString(t, `(\w+)\s+(\w+)`, 0)
	caps := mustMatch(t, prog, "hello world", 0)

	if got := string([]byte("hello world")[caps.Starts[1]:caps.Ends[1]]); got != "hello" {
		t.Errorf("group 1 = %q, want %q", got, "hello")
	}
	if got := string([]byte("hello world")[caps.Starts[2]:caps.Ends[2]]); got != "world" {
		t.Errorf("group 2 = %q, want %q", got, "world")
	}
}

func TestCompile_Alternation(t *testing.T) {
	prog := compileString(t, "cat|dog|bird", 0)
	for _, input := range []string{"cat", "dog", "bird"} {
		mustMatch(t, prog, input, 0)
	}
	mustNotMatch(t, prog, "fish", 0)
}

func TestCompile_Star(t *testing.T) {
	prog := compileString(t, "ab*c", 0)
	for _, input := range []string{"ac", "abc", "abbbbc"} {
		mustMatch(t, prog, input, 0)
	}
	mustNotMatch(t, prog, "abbbb", 0)
}

func TestCompile_Plus(t *testing.T) {
	prog := compileString(t, "ab+c", 0)
	mustNotMatch(t, prog, "ac", 0)
	mustMatch(t, prog, "abc", 0)
	mustMatch(t, prog, "abbbc", 0)
}

func TestCompile_Optional(t *testing.T) {
	prog := compileString(t, "colou?r", 0)
	mustMatch(t, prog, "color", 0)
	mustMatch(t, prog, "colour", 0)
}

func TestCompile_CountedExact(t *testing.T) {
	prog := compileString(t, "a{3}", 0)
	caps := mustMatch(t, prog, "aaaa", 0)
	if caps.Ends[0]-caps.Starts[0] != 3 {
		t.Errorf("matched length = %d, want 3", caps.Ends[0]-caps.Starts[0])
	}
	mustNotMatch(t, prog, "aa", 0)
}

func TestCompile_CountedRange(t *testing.T) {
	prog := compileString(t, "a{2,4}", 0)
	caps := mustMatch(t, prog, "aaaaaa", 0)
	if got := caps.Ends[0] - caps.Starts[0]; got != 4 {
		t.Errorf("greedy a{2,4} matched length = %d, want 4", got)
	}
	mustNotMatch(t, prog, "a", 0)
}

func TestCompile_CountedOpenEnded(t *testing.T) {
	prog := compileString(t, "a{2,}", 0)
	mustNotMatch(t, prog, "a", 0)
	caps := mustMatch(t, prog, "aaaaa", 0)
	if got := caps.Ends[0] - caps.Starts[0]; got != 5 {
		t.Errorf("greedy a{2,} matched length = %d, want 5", got)
	}
}

func TestCompile_Anchors(t *testing.T) {
	prog := compileString(t, "^abc$", 0)
	mustMatch(t, prog, "abc", 0)
	mustNotMatch(t, prog, "xabc", 0)
	mustNotMatch(t, prog, "abcx", 0)
}

func TestCompile_CaseInsensitiveFlag(t *testing.T) {
	prog := compileString(t, "HELLO", vm.CaseInsensitive)
	mustMatch(t, prog, "hello", 0)
}

func TestCompile_CatastrophicBacktrackingIsBounded(t *testing.T) {
	prog := compileString(t, "(a+)+b", 0)
	input := make([]byte, 40)
	for i := range input {
		input[i] = 'a'
	}
	limits := vm.Limits{MaxInstructions: 200_000, MaxChoicePoints: 5_000}
	ok, _, err := vm.Search(prog, input, 0, limits)
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if ok {
		t.Fatal("pattern with no trailing 'b' should not match")
	}
}
