package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/signadot/splitq"

	"github.com/scott-cotton/cli"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

const whitespace = " \t\n\r\f\v"

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	bad := 0
	err = forEachLine(cc, args, func(file string, lineNo int, line string) error {
		seq, err := splitq.Split(line)
		if err != nil {
			var serr *splitq.SplitError
			if errors.As(err, &serr) && errors.Is(err, splitq.ErrUnterminated) {
				bad++
				if !cfg.Quiet {
					fmt.Fprintf(cc.Out, "%s:%d: unterminated %s group at offset %d\n",
						file, lineNo, serr.Kind, serr.Off)
				}
				return nil
			}
			return lineErr(file, lineNo, err)
		}
		want := strings.TrimLeft(line, whitespace)
		got := seq.Restore(0, -1)
		if got == want {
			return nil
		}
		bad++
		if !cfg.Quiet {
			diffCfg := diffpatch.New()
			diffs := diffCfg.DiffMain(want, got, false)
			fmt.Fprintf(cc.Out, "%s:%d: restore mismatch:\n%s\n",
				file, lineNo, diffCfg.DiffPrettyText(diffs))
		}
		return nil
	})
	if err != nil {
		return err
	}
	if bad > 0 {
		return fmt.Errorf("%d line(s) failed check", bad)
	}
	return nil
}

func lineErr(file string, lineNo int, err error) error {
	return fmt.Errorf("%s:%d: %w", file, lineNo, err)
}
