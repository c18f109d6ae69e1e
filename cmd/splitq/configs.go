package main

import (
	"io"
	"os"

	"github.com/signadot/splitq/encode"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='force colored output'"`

	Y bool `cli:"name=y aliases=yaml desc='output in yaml'"`
	J bool `cli:"name=j aliases=json desc='output in json'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var res []encode.EncodeOption
	switch {
	case cfg.Y:
		res = append(res, encode.EncodeFormat(encode.YAMLFormat))
		return res
	case cfg.J:
		res = append(res, encode.EncodeFormat(encode.JSONFormat))
		return res
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type TokensConfig struct {
	*MainConfig

	Offsets bool `cli:"name=n desc='include start offsets'"`
	Tokens  *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Quiet bool `cli:"name=q desc='suppress per-line diagnostics'"`
	Check *cli.Command
}

type MatchConfig struct {
	*MainConfig

	Expr  string `cli:"name=e desc='filter expression over content, kind, start, index, line'"`
	Match *cli.Command
}
