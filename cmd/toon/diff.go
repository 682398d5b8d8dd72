package main

import (
	"fmt"
	"io"
	"os"

	toon "github.com/jitendra-neema/toon-format"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := getObjFile(cc, args[0], cfg.decodeOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := getObjFile(cc, args[1], cfg.decodeOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	w, closeW, err := cfg.writer(cc)
	if err != nil {
		return err
	}
	defer closeW()
	d, err := toon.Diff(a, b, toon.DiffColor(diffColor(cfg, w)))
	if err != nil {
		return err
	}
	if d == "" {
		return nil
	}
	if _, err := w.Write([]byte(d)); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

func diffColor(cfg *DiffConfig, w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
