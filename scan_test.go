package splitq

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type splitTest struct {
	in   string
	toks []Token
}

func TestSplitWords(t *testing.T) {
	var sts = []splitTest{
		{in: "foo bar", toks: []Token{
			{Content: "foo", Kind: KPlain, Start: 0},
			{Content: "bar", Kind: KPlain, Start: 4},
		}},
		{in: "", toks: nil},
		{in: " \t\n\r\f\v", toks: nil},
		{in: "  a  b  ", toks: []Token{
			{Content: "a", Kind: KPlain, Start: 2},
			{Content: "b", Kind: KPlain, Start: 5},
		}},
	}
	runSplitTests(t, sts)
}

func TestSplitQuoted(t *testing.T) {
	var sts = []splitTest{
		{in: `"a b" c`, toks: []Token{
			{Content: "a b", Kind: KQuoted, Start: 0},
			{Content: "c", Kind: KPlain, Start: 6},
		}},
		{in: `""`, toks: []Token{
			{Content: "", Kind: KQuoted, Start: 0},
		}},
		{in: `a""b`, toks: []Token{
			{Content: "a", Kind: KPlain, Start: 0},
			{Content: "", Kind: KQuoted, Start: 1},
			{Content: "b", Kind: KPlain, Start: 3},
		}},
		// backticks are ordinary characters inside quotes
		{in: "\"a`b\"", toks: []Token{
			{Content: "a`b", Kind: KQuoted, Start: 0},
		}},
		{in: "\"a\tb\nc\"", toks: []Token{
			{Content: "a\tb\nc", Kind: KQuoted, Start: 0},
		}},
	}
	runSplitTests(t, sts)
}

func TestSplitEscapes(t *testing.T) {
	var sts = []splitTest{
		{in: `\"foo`, toks: []Token{
			{Content: `"foo`, Kind: KPlain, Start: 0},
		}},
		{in: `a\ b`, toks: []Token{
			{Content: "a b", Kind: KPlain, Start: 0},
		}},
		{in: `\\`, toks: []Token{
			{Content: `\`, Kind: KPlain, Start: 0},
		}},
		{in: "\\`a", toks: []Token{
			{Content: "`a", Kind: KPlain, Start: 0},
		}},
		{in: `"a\"b"`, toks: []Token{
			{Content: `a"b`, Kind: KQuoted, Start: 0},
		}},
		{in: "`a\\`b`", toks: []Token{
			{Content: "a`b", Kind: KCode, Start: 0},
		}},
		// a lone trailing backslash is dropped
		{in: `foo\`, toks: []Token{
			{Content: "foo", Kind: KPlain, Start: 0},
		}},
		{in: `\`, toks: nil},
	}
	runSplitTests(t, sts)
}

func TestSplitCode(t *testing.T) {
	var sts = []splitTest{
		{in: "`code`", toks: []Token{
			{Content: "code", Kind: KCode, Start: 0},
		}},
		{in: "``a`b``", toks: []Token{
			{Content: "a`b", Kind: KCode, Start: 0},
		}},
		{in: "```a``b```", toks: []Token{
			{Content: "a``b", Kind: KCode, Start: 0},
		}},
		// six backticks form one self-closed width-3 pair
		{in: "``````", toks: []Token{
			{Content: "", Kind: KCode, Start: 0},
		}},
		{in: "````````````", toks: []Token{
			{Content: "", Kind: KCode, Start: 0},
			{Content: "", Kind: KCode, Start: 6},
		}},
		{in: "``` ```", toks: []Token{
			{Content: " ", Kind: KCode, Start: 0},
		}},
		// a run of 4 opens width 3 with one literal backtick inside
		{in: "````x```", toks: []Token{
			{Content: "`x", Kind: KCode, Start: 0},
		}},
		{in: "x```y```z", toks: []Token{
			{Content: "x", Kind: KPlain, Start: 0},
			{Content: "y", Kind: KCode, Start: 1},
			{Content: "z", Kind: KPlain, Start: 8},
		}},
		// quotes are ordinary characters inside code
		{in: "`a\"b`", toks: []Token{
			{Content: `a"b`, Kind: KCode, Start: 0},
		}},
		{in: "foo `bar` \"baz\"", toks: []Token{
			{Content: "foo", Kind: KPlain, Start: 0},
			{Content: "bar", Kind: KCode, Start: 4},
			{Content: "baz", Kind: KQuoted, Start: 10},
		}},
	}
	runSplitTests(t, sts)
}

func runSplitTests(t *testing.T, sts []splitTest) {
	t.Helper()
	for _, st := range sts {
		seq, err := Split(st.in)
		if err != nil {
			t.Errorf("Split(%q): %v", st.in, err)
			continue
		}
		if seq.Original != st.in {
			t.Errorf("Split(%q): Original = %q", st.in, seq.Original)
		}
		if d := cmp.Diff(st.toks, seq.Tokens); d != "" {
			t.Errorf("Split(%q) tokens (-want +got):\n%s", st.in, d)
		}
	}
}

func TestSplitUnterminated(t *testing.T) {
	var uts = []struct {
		in   string
		kind GroupKind
		off  int
	}{
		{in: `"abc`, kind: KQuoted, off: 0},
		{in: "`abc", kind: KCode, off: 0},
		{in: "``", kind: KCode, off: 0},
		{in: "```", kind: KCode, off: 0},
		{in: "````````", kind: KCode, off: 6},  // pair closes, width 2 stays open
		{in: "```````", kind: KCode, off: 6},   // pair closes, width 1 stays open
		{in: "a``b", kind: KCode, off: 1},
		{in: `x "y`, kind: KQuoted, off: 2},
	}
	for _, ut := range uts {
		seq, err := Split(ut.in)
		if err == nil {
			t.Errorf("Split(%q): expected error, got %d tokens", ut.in, seq.Len())
			continue
		}
		if !errors.Is(err, ErrUnterminated) {
			t.Errorf("Split(%q): error %v does not wrap ErrUnterminated", ut.in, err)
			continue
		}
		var se *SplitError
		if !errors.As(err, &se) {
			t.Errorf("Split(%q): error %T is not a *SplitError", ut.in, err)
			continue
		}
		if se.Kind != ut.kind || se.Off != ut.off {
			t.Errorf("Split(%q): got %s at %d, want %s at %d", ut.in, se.Kind, se.Off, ut.kind, ut.off)
		}
		if !strings.HasPrefix(err.Error(), "SplitError: ") {
			t.Errorf("Split(%q): error rendering %q lacks prefix", ut.in, err.Error())
		}
	}
}

func TestSplitRestoreRoundTrip(t *testing.T) {
	for _, in := range []string{
		"foo bar",
		`  "a b" c  `,
		"x```y```z",
		"foo `bar`  \"baz\"",
		`a\ b "c \" d" ` + "``e``",
		"``````",
	} {
		seq, err := Split(in)
		if err != nil {
			t.Errorf("Split(%q): %v", in, err)
			continue
		}
		if seq.Len() == 0 {
			continue
		}
		got := seq.Restore(0, -1)
		want := in[seq.Tokens[0].Start:]
		if got != want {
			t.Errorf("Restore(0, -1) of %q = %q, want %q", in, got, want)
		}
		if strings.TrimSpace(got) != strings.TrimSpace(in) {
			t.Errorf("Restore(0, -1) of %q = %q: interior not preserved", in, got)
		}
	}
}

func TestSplitOffsetsNonDecreasing(t *testing.T) {
	for _, in := range []string{
		"a b c d",
		"``` ``` x ``````",
		`"" "" ""`,
	} {
		seq, err := Split(in)
		if err != nil {
			t.Fatalf("Split(%q): %v", in, err)
		}
		for i := 1; i < seq.Len(); i++ {
			if seq.Tokens[i].Start < seq.Tokens[i-1].Start {
				t.Errorf("Split(%q): offsets decrease at %d", in, i)
			}
		}
		for _, tok := range seq.Tokens {
			if tok.Kind == KUnset {
				t.Errorf("Split(%q): finalized token with KUnset", in)
			}
		}
	}
}
