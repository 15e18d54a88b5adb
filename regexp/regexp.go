// Package regexp is the public surface: pattern compilation and the
// test/exec/match/matchAll operations described in spec.md §5, grounded
// on original_source/regex.h's RegExp API shape (construct, then
// repeated exec against different subjects, with a sticky last_index
// cursor when the global flag is set).
package regexp

import (
	"github.com/edadma/goregex/compiler"
	"github.com/edadma/goregex/parser"
	"github.com/edadma/goregex/vm"
)

// Regexp is a compiled pattern, reusable across subjects.
type Regexp struct {
	source string
	flags  Flags
	prog   *vm.Program
	limits vm.Limits

	// lastIndex is the cursor Exec/Match resume from when Global is set
	// (spec.md §5's "global exec cursor").
	lastIndex int
}

// Compile parses and lowers pattern under the given flag string (e.g.
// "gi") into a reusable Regexp.
func Compile(pattern, flagString string) (*Regexp, error) {
	flags := ParseFlags(flagString)

	root, groupCount, err := parser.Parse([]byte(pattern))
	if err != nil {
		return nil, err
	}

	prog := compiler.Compile(root, groupCount, toVMFlags(flags))

	return &Regexp{
		source: pattern,
		flags:  flags,
		prog:   prog,
		limits: vm.DefaultLimits(),
	}, nil
}

func toVMFlags(f Flags) vm.Flags {
	var out vm.Flags
	if f.Has(IgnoreCase) {
		out |= vm.CaseInsensitive
	}
	if f.Has(Multiline) {
		out |= vm.Multiline
	}
	if f.Has(DotAll) {
		out |= vm.DotAll
	}
	return out
}

// Source returns the pattern text the Regexp was compiled from.
func (re *Regexp) Source() string { return re.source }

// Global reports whether the 'g' flag was set.
func (re *Regexp) Global() bool { return re.flags.Has(Global) }

// LastIndex returns the current global-exec cursor.
func (re *Regexp) LastIndex() int { return re.lastIndex }

// SetLastIndex resets the global-exec cursor, as assigning to a JS
// RegExp's lastIndex property would.
func (re *Regexp) SetLastIndex(i int) { re.lastIndex = i }

// search runs one match attempt, honoring the global-exec cursor when
// the 'g' flag is set: it resumes from lastIndex and advances it past
// the match found, wrapping back to 0 after a call that finds nothing.
// Without 'g', it always searches from the start and never touches
// lastIndex. Shared by Test and Exec, which only differ in what they do
// with a successful match's captures (spec.md §6).
func (re *Regexp) search(input string) (ok bool, caps vm.Captures) {
	start := 0
	if re.Global() {
		start = re.lastIndex
		if start > len(input) {
			re.lastIndex = 0
			return false, vm.Captures{}
		}
	}

	ok, caps, _ = vm.Search(re.prog, []byte(input), start, re.limits)
	if !ok {
		if re.Global() {
			re.lastIndex = 0
		}
		return false, vm.Captures{}
	}

	if re.Global() {
		end := caps.Ends[0]
		if end == caps.Starts[0] {
			end++ // zero-length match: force forward progress
		}
		re.lastIndex = end
	}

	return true, caps
}

// Test reports whether pattern matches input: at or after last_index
// when the 'g' flag is set, anywhere otherwise. It updates last_index
// only when 'g' is set (spec.md §6).
func (re *Regexp) Test(input string) bool {
	ok, _ := re.search(input)
	return ok
}

// Exec finds the next match, honoring the global-exec cursor exactly as
// search does (mirrors JS RegExp.prototype.exec).
func (re *Regexp) Exec(input string) *MatchResult {
	ok, caps := re.search(input)
	if !ok {
		return nil
	}
	return buildResult(input, caps.Starts, caps.Ends)
}

// Match runs a single exec, with last_index temporarily reset to 0
// unless 'g' is set (spec.md §6), returning its match record or nil.
// Without 'g', Exec/search already never reads or writes last_index, so
// that reset happens implicitly; with 'g', Match is exactly Exec.
func (re *Regexp) Match(input string) *MatchResult {
	return re.Exec(input)
}
