package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "splitq").
		WithSynopsis("splitq [opts] command [opts]").
		WithDescription("splitq is a tool for splitting lines into quote and code aware tokens.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return splitqMain(cfg, cc, args)
		}).
		WithSubs(
			TokensCommand(cfg),
			CheckCommand(cfg),
			MatchCommand(cfg))
}

func TokensCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TokensConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Tokens, "tokens").
		WithAliases("t", "tok").
		WithSynopsis("tokens [opts] [files]").
		WithDescription("split each input line and print its tokens").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return tokens(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c").
		WithSynopsis("check [opts] [files]").
		WithDescription("verify that token offsets reconstruct each input line").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

func MatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Match, "match").
		WithAliases("m").
		WithSynopsis("match -e <expr> [files]").
		WithDescription("print tokens matching an expression over content, kind, start, index, line").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return match(cfg, cc, args)
		})
}
