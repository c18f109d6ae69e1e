package main

import (
	"context"
	"strings"

	"github.com/signadot/splitq"

	"go.lsp.dev/protocol"
)

// legendTokenTypes must match the order used by typeIndex.
var legendTokenTypes = []protocol.SemanticTokenTypes{
	protocol.SemanticTokenParameter,
	protocol.SemanticTokenString,
	protocol.SemanticTokenKeyword,
}

func typeIndex(k splitq.GroupKind) uint32 {
	switch k {
	case splitq.KQuoted:
		return 1
	case splitq.KCode:
		return 2
	default:
		return 0
	}
}

// tokenSpan is one highlight region in absolute line/column terms.
// Columns are byte offsets, which line up with UTF-16 columns for
// ASCII delimiters.
type tokenSpan struct {
	line      uint32
	character uint32
	length    uint32
	typeIdx   uint32
}

const whitespace = " \t\n\r\f\v"

// collectSpans walks the per-line splits and produces spans covering
// each token's source text, delimiters included.
func collectSpans(doc *document) []tokenSpan {
	var spans []tokenSpan
	for lineNo, lt := range doc.lines {
		if lt.seq == nil {
			continue
		}
		for i, tok := range lt.seq.Tokens {
			src := strings.TrimRight(lt.seq.Restore(i, i+1), whitespace)
			if src == "" {
				continue
			}
			spans = append(spans, tokenSpan{
				line:      uint32(lineNo),
				character: uint32(tok.Start),
				length:    uint32(len(src)),
				typeIdx:   typeIndex(tok.Kind),
			})
		}
	}
	return spans
}

// encodeSpans delta-encodes spans per the LSP semantic token wire
// format: deltaLine, deltaChar, length, type, modifierBits per span.
// Spans must be ordered by line then character, which collectSpans
// guarantees.
func encodeSpans(spans []tokenSpan) []uint32 {
	data := []uint32{}
	var prevLine, prevChar uint32
	for _, sp := range spans {
		deltaLine := sp.line - prevLine
		deltaChar := sp.character
		if deltaLine == 0 {
			deltaChar = sp.character - prevChar
		}
		data = append(data, deltaLine, deltaChar, sp.length, sp.typeIdx, 0)
		prevLine = sp.line
		prevChar = sp.character
	}
	return data
}

func (s *Server) SemanticTokensFull(ctx context.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{
			Data: []uint32{},
		}, nil
	}

	return &protocol.SemanticTokens{
		Data: encodeSpans(collectSpans(doc)),
	}, nil
}

func (s *Server) SemanticTokensRange(ctx context.Context, params *protocol.SemanticTokensRangeParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{
			Data: []uint32{},
		}, nil
	}

	spans := collectSpans(doc)
	inRange := spans[:0:0]
	for _, sp := range spans {
		if sp.line < params.Range.Start.Line || sp.line > params.Range.End.Line {
			continue
		}
		inRange = append(inRange, sp)
	}

	return &protocol.SemanticTokens{
		Data: encodeSpans(inRange),
	}, nil
}
