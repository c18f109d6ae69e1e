package main

import (
	"fmt"

	"github.com/signadot/splitq"
	"github.com/signadot/splitq/encode"

	"github.com/scott-cotton/cli"

	"github.com/expr-lang/expr"
)

// matchEnv is the expression environment for one token.
type matchEnv struct {
	Content string `expr:"content"`
	Kind    string `expr:"kind"`
	Start   int    `expr:"start"`
	Index   int    `expr:"index"`
	Line    int    `expr:"line"`
}

func match(cfg *MatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Match.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Expr == "" {
		return fmt.Errorf("%w: match requires -e <expr>", cli.ErrUsage)
	}
	prg, err := expr.Compile(cfg.Expr, expr.Env(matchEnv{}), expr.AsBool())
	if err != nil {
		return fmt.Errorf("could not compile %q: %w", cfg.Expr, err)
	}
	opts := cfg.encOpts(cc.Out)
	return forEachLine(cc, args, func(file string, lineNo int, line string) error {
		seq, err := splitq.Split(line)
		if err != nil {
			return lineErr(file, lineNo, err)
		}
		hits := &splitq.TokenSequence{Original: seq.Original}
		for i, tok := range seq.Tokens {
			env := matchEnv{
				Content: tok.Content,
				Kind:    tok.Kind.Name(),
				Start:   tok.Start,
				Index:   i,
				Line:    lineNo,
			}
			res, err := expr.Run(prg, env)
			if err != nil {
				return lineErr(file, lineNo, err)
			}
			if res.(bool) {
				hits.Tokens = append(hits.Tokens, tok)
			}
		}
		if hits.Len() == 0 {
			return nil
		}
		return encode.Encode(hits, cc.Out, opts...)
	})
}
