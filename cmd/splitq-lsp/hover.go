package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/signadot/splitq"

	"go.lsp.dev/protocol"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}

	line := int(params.Position.Line)
	col := int(params.Position.Character)
	if line < 0 || line >= len(doc.lines) {
		return nil, nil
	}
	lt := doc.lines[line]
	if lt.seq == nil {
		return nil, nil
	}

	for i, tok := range lt.seq.Tokens {
		src := strings.TrimRight(lt.seq.Restore(i, i+1), whitespace)
		if col < tok.Start || col >= tok.Start+len(src) {
			continue
		}
		return &protocol.Hover{
			Contents: protocol.MarkupContent{
				Kind:  protocol.Markdown,
				Value: hoverText(&tok),
			},
		}, nil
	}
	return nil, nil
}

func hoverText(tok *splitq.Token) string {
	parts := []string{
		fmt.Sprintf("**Kind:** %s", tok.Kind.Name()),
		fmt.Sprintf("**Content:** `%s`", tok.Content),
		fmt.Sprintf("**Start:** %d", tok.Start),
	}
	return strings.Join(parts, "\n\n")
}
