package main

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/signadot/splitq"
	"github.com/signadot/splitq/debug"

	"go.lsp.dev/protocol"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

type document struct {
	uri     string
	content string
	version int32
	lines   []*lineTokens
}

// lineTokens holds the split of one document line.  On an unterminated
// group seq is nil and err holds the split error.
type lineTokens struct {
	text string
	seq  *splitq.TokenSequence
	err  *splitq.SplitError
}

func splitLines(content string) []*lineTokens {
	lines := strings.Split(content, "\n")
	res := make([]*lineTokens, 0, len(lines))
	for _, line := range lines {
		lt := &lineTokens{text: line}
		seq, err := splitq.Split(line)
		if err != nil {
			errors.As(err, &lt.err)
		} else {
			lt.seq = seq
		}
		res = append(res, lt)
	}
	return res
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[uri] = &document{
		uri:     uri,
		content: content,
		version: version,
		lines:   splitLines(content),
	}
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func (s *Server) publishDiagnostics(ctx context.Context, uri string) {
	doc := s.docs.get(uri)
	if doc == nil {
		return
	}

	diagnostics := s.validateDocument(doc)
	if debug.LSP() {
		debug.Logf("publish %d diagnostics for %s\n", len(diagnostics), uri)
	}

	if s.conn != nil {
		s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         protocol.DocumentURI(uri),
			Diagnostics: diagnostics,
		})
	}
}

func (s *Server) validateDocument(doc *document) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}

	for i, lt := range doc.lines {
		if lt.err == nil {
			continue
		}
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{
					Line:      uint32(i),
					Character: uint32(lt.err.Off),
				},
				End: protocol.Position{
					Line:      uint32(i),
					Character: uint32(len(lt.text)),
				},
			},
			Severity: protocol.DiagnosticSeverityError,
			Message:  lt.err.Error(),
			Source:   "splitq",
		})
	}

	return diagnostics
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil
	}

	// Full sync: each change carries the whole document.
	content := doc.content
	for _, change := range params.ContentChanges {
		content = change.Text
	}

	s.docs.put(string(params.TextDocument.URI), content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}
