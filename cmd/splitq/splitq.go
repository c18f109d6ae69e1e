package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/scott-cotton/cli"
)

func splitqMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if count(cfg.J, cfg.Y) > 1 {
		return fmt.Errorf("%w: must specify at most one of -j[son] -y[aml]", cli.ErrUsage)
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func count(vs ...bool) int {
	ttl := 0
	for _, v := range vs {
		if v {
			ttl++
		}
	}
	return ttl
}

// forEachLine reads the named files, or cc.In when files is empty, and
// calls fn once per line.  A file named "-" means stdin.
func forEachLine(cc *cli.Context, files []string, fn func(file string, lineNo int, line string) error) error {
	if len(files) == 0 {
		return readerLines(cc.In, "<stdin>", fn)
	}
	for _, file := range files {
		if err := fileLines(file, fn); err != nil {
			return err
		}
	}
	return nil
}

func fileLines(file string, fn func(file string, lineNo int, line string) error) error {
	var (
		f   *os.File
		err error
	)
	if file != "-" {
		f, err = os.Open(file)
		if err != nil {
			return fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
	} else {
		f = os.Stdin
	}
	if err := readerLines(f, file, fn); err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	return nil
}

func readerLines(r io.Reader, name string, fn func(file string, lineNo int, line string) error) error {
	in, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading: %w", err)
	}
	lines := strings.Split(string(in), "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	for i, line := range lines {
		if err := fn(name, i+1, line); err != nil {
			return err
		}
	}
	return nil
}
