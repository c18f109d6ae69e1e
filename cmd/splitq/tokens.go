package main

import (
	"github.com/signadot/splitq"
	"github.com/signadot/splitq/encode"

	"github.com/scott-cotton/cli"
)

func tokens(cfg *TokensConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tokens.Parse(cc, args)
	if err != nil {
		return err
	}
	opts := cfg.encOpts(cc.Out)
	if cfg.Offsets {
		opts = append(opts, encode.EncodeOffsets(true))
	}
	return forEachLine(cc, args, func(file string, lineNo int, line string) error {
		seq, err := splitq.Split(line)
		if err != nil {
			return lineErr(file, lineNo, err)
		}
		return encode.Encode(seq, cc.Out, opts...)
	})
}
