package splitq

// TokenSequence couples the original input string with the ordered
// tokens Split produced from it. Original is never mutated and Start
// offsets are non-decreasing in scan order, which is what makes
// Restore exact.
type TokenSequence struct {
	Original string
	Tokens   []Token
}

func (s *TokenSequence) Len() int {
	return len(s.Tokens)
}

// Get returns token i's content, reporting false when i is out of
// range.
func (s *TokenSequence) Get(i int) (string, bool) {
	if i < 0 || i >= len(s.Tokens) {
		return "", false
	}
	return s.Tokens[i].Content, true
}

// Restore returns the substring of Original from token i's start
// offset up to token j's start offset. A j that is negative or past
// the last token means the end of Original. Out-of-range indices clamp
// rather than fail: i past the last token yields "".
func (s *TokenSequence) Restore(i, j int) string {
	if i < 0 {
		i = 0
	}
	if i >= len(s.Tokens) {
		return ""
	}
	from := s.Tokens[i].Start
	if j < 0 || j >= len(s.Tokens) {
		return s.Original[from:]
	}
	if s.Tokens[j].Start < from {
		return ""
	}
	return s.Original[from:s.Tokens[j].Start]
}

// Shift removes and returns the first token's content, mutating the
// sequence. It reports false on an empty sequence.
func (s *TokenSequence) Shift() (string, bool) {
	if len(s.Tokens) == 0 {
		return "", false
	}
	c := s.Tokens[0].Content
	s.Tokens = s.Tokens[1:]
	return c, true
}

// Slice returns a new sequence over the same Original holding tokens
// [i, j), clamped to bounds; a negative j means Len(). The receiver is
// not mutated.
func (s *TokenSequence) Slice(i, j int) *TokenSequence {
	n := len(s.Tokens)
	if j < 0 || j > n {
		j = n
	}
	if i < 0 {
		i = 0
	}
	if i > j {
		i = j
	}
	return &TokenSequence{Original: s.Original, Tokens: s.Tokens[i:j:j]}
}
