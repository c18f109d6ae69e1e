package encode

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/signadot/splitq"

	"github.com/goccy/go-yaml"
)

type wireToken struct {
	Content string `json:"content" yaml:"content"`
	Kind    string `json:"kind" yaml:"kind"`
	Start   int    `json:"start" yaml:"start"`
}

// Encode writes seq to w in the configured format.
func Encode(seq *splitq.TokenSequence, w io.Writer, opts ...EncodeOption) error {
	opt := &encOpts{format: TextFormat}
	for _, o := range opts {
		o(opt)
	}
	switch opt.format {
	case TextFormat:
		return encodeText(seq, w, opt)
	case YAMLFormat:
		d, err := yaml.Marshal(wire(seq))
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	case JSONFormat:
		d, err := json.MarshalIndent(wire(seq), "", "  ")
		if err != nil {
			return err
		}
		if _, err := w.Write(d); err != nil {
			return err
		}
		_, err = w.Write([]byte("\n"))
		return err
	default:
		return fmt.Errorf("unsupported format %q", opt.format)
	}
}

func wire(seq *splitq.TokenSequence) []wireToken {
	res := make([]wireToken, 0, seq.Len())
	for _, tok := range seq.Tokens {
		res = append(res, wireToken{
			Content: tok.Content,
			Kind:    tok.Kind.Name(),
			Start:   tok.Start,
		})
	}
	return res
}

func encodeText(seq *splitq.TokenSequence, w io.Writer, opt *encOpts) error {
	for _, tok := range seq.Tokens {
		kind, content := tok.Kind.Name(), tok.Content
		if opt.colors != nil {
			kind = opt.colors.Default("%s", kind)
			content = opt.colors.sprintf(tok.Kind)("%s", content)
		}
		var err error
		if opt.offsets {
			_, err = fmt.Fprintf(w, "%-6s %4d %s\n", kind, tok.Start, content)
		} else {
			_, err = fmt.Fprintf(w, "%-6s %s\n", kind, content)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
