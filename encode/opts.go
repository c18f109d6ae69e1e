package encode

// Format selects the output representation of a token sequence.
type Format int

const (
	TextFormat Format = iota
	YAMLFormat
	JSONFormat
)

func (f Format) String() string {
	return map[Format]string{
		TextFormat: "text",
		YAMLFormat: "yaml",
		JSONFormat: "json",
	}[f]
}

type encOpts struct {
	format  Format
	colors  *Colors
	offsets bool
}

type EncodeOption func(*encOpts)

// EncodeFormat selects the output format (default TextFormat).
func EncodeFormat(f Format) EncodeOption {
	return func(o *encOpts) {
		o.format = f
	}
}

// EncodeColors enables colored text output. Colors only apply to
// TextFormat.
func EncodeColors(c *Colors) EncodeOption {
	return func(o *encOpts) {
		o.colors = c
	}
}

// EncodeOffsets includes each token's start offset in text output.
func EncodeOffsets(v bool) EncodeOption {
	return func(o *encOpts) {
		o.offsets = v
	}
}
