package splitq

import (
	"strings"

	"github.com/signadot/splitq/debug"
)

// scanner holds the transient state of one Split call. It must not be
// reused or shared between calls.
type scanner struct {
	src  string
	toks []Token

	kind    GroupKind
	buf     strings.Builder
	start   int
	escaped bool

	// matched is the width of the open code group, 0 when none or not
	// yet known. pending counts consecutive unescaped backticks seen
	// but not yet classified.
	matched int
	pending int
}

// Split tokenizes input into a TokenSequence. It fails with a
// *SplitError wrapping ErrUnterminated if input ends while a quoted or
// code group is still open, and with one wrapping ErrInternal on a
// scanner defect. All other input splits without error.
func Split(input string) (*TokenSequence, error) {
	s := &scanner{src: input}
	for i := 0; i < len(input); i++ {
		if err := s.scan(i, input[i]); err != nil {
			return nil, err
		}
	}
	if err := s.end(len(input)); err != nil {
		return nil, err
	}
	return &TokenSequence{Original: input, Tokens: s.toks}, nil
}

func (s *scanner) scan(i int, c byte) error {
	if c == '`' && !s.escaped && s.kind != KQuoted {
		// backticks batch until the run ends
		s.pending++
		return nil
	}
	if s.pending > 0 {
		if err := s.endRun(i); err != nil {
			return err
		}
	}
	if s.escaped {
		// the escaped character is literal, whatever it is; the
		// backslash itself was not buffered
		s.escaped = false
		if s.kind == KUnset {
			// start was pinned at the backslash
			s.kind = KPlain
		}
		s.buf.WriteByte(c)
		return nil
	}
	switch c {
	case '\\':
		if s.kind == KUnset {
			s.start = i
		}
		s.escaped = true
	case '"':
		switch s.kind {
		case KQuoted:
			s.push(KQuoted)
		case KCode:
			s.buf.WriteByte(c)
		default:
			s.flushPlain()
			s.kind = KQuoted
			s.start = i
		}
	case ' ', '\t', '\n', '\r', '\f', '\v':
		switch s.kind {
		case KQuoted, KCode:
			s.buf.WriteByte(c)
		default:
			s.flushPlain()
		}
	default:
		if s.kind == KUnset {
			s.kind = KPlain
			s.start = i
		}
		s.buf.WriteByte(c)
	}
	return nil
}

// end processes the synthetic end-of-input marker at offset n.
func (s *scanner) end(n int) error {
	if s.pending > 0 {
		if err := s.endRun(n); err != nil {
			return err
		}
	}
	// a trailing backslash has nothing to escape and is dropped
	s.escaped = false
	switch s.kind {
	case KQuoted, KCode:
		return unterminatedErr(s.kind, s.start)
	}
	s.flushPlain()
	return nil
}

// endRun resolves the run of pending backticks that ended at offset i
// (exclusive). It may close the open code group, emit empty
// self-closed code tokens, open a new code group, or turn backticks
// into literal content.
func (s *scanner) endRun(i int) error {
	n := s.pending
	s.pending = 0
	cur := i - n
	if s.matched > 0 && s.kind != KCode {
		return internalErr("matched=%d outside code group (%s) at offset %d", s.matched, s.kind, cur)
	}
	if s.kind == KCode && s.matched == 0 {
		return internalErr("code group of unknown width at offset %d", cur)
	}
	closed, opened, literal := resolveRun(n, s.matched)
	if debug.Runs() {
		debug.Logf("run n=%d open=%d at %d -> closed=%d opened=%d literal=%d\n",
			n, s.matched, cur, closed, opened, literal)
	}
	if s.matched > 0 {
		if closed == 0 {
			// too short to complete the match
			s.buf.WriteString(strings.Repeat("`", literal))
			return nil
		}
		cur += s.matched
		s.matched = 0
		s.push(KCode)
		closed--
	} else {
		s.flushPlain()
	}
	for ; closed > 0; closed-- {
		// back-to-back self-closing width-3 pairs have no content
		s.toks = append(s.toks, Token{Kind: KCode, Start: cur})
		cur += 2 * maxWidth
	}
	if opened > 0 {
		s.kind = KCode
		s.matched = opened
		s.start = cur
		if literal > 0 {
			s.buf.WriteString(strings.Repeat("`", literal))
		}
	}
	return nil
}

// push finalizes the buffered token with the given kind and returns the
// scanner to the neutral state.
func (s *scanner) push(kind GroupKind) {
	tok := Token{Content: s.buf.String(), Kind: kind, Start: s.start}
	if debug.Scan() {
		debug.Logf("push %s\n", tok.Info())
	}
	s.toks = append(s.toks, tok)
	s.buf.Reset()
	s.kind = KUnset
}

// flushPlain finalizes a pending plain token, if any. An empty buffer
// between separators produces no token.
func (s *scanner) flushPlain() {
	if s.buf.Len() > 0 {
		s.push(KPlain)
	}
	s.kind = KUnset
}
