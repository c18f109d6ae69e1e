package splitq

import "fmt"

// GroupKind describes how a token was delimited.
type GroupKind int

const (
	// KUnset is the neutral scan state; it never appears on a
	// finalized token.
	KUnset GroupKind = iota
	KPlain
	KQuoted
	KCode
)

func (k GroupKind) String() string {
	return map[GroupKind]string{
		KUnset:  "KUnset",
		KPlain:  "KPlain",
		KQuoted: "KQuoted",
		KCode:   "KCode",
	}[k]
}

// Name returns the wire name of k, as used in encoded output and
// filter expressions.
func (k GroupKind) Name() string {
	return map[GroupKind]string{
		KUnset:  "unset",
		KPlain:  "plain",
		KQuoted: "quoted",
		KCode:   "code",
	}[k]
}

// Token is one finalized unit of a split. Content is the decoded text
// with delimiters stripped and escapes resolved. Start is the byte
// offset in the original string where the token's delimiter or first
// character began; for a token opened by an escape it is the offset of
// the backslash. Tokens are never mutated after finalization.
type Token struct {
	Content string
	Kind    GroupKind
	Start   int
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %q at offset %d", t.Kind, t.Content, t.Start)
}
