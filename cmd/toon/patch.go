package main

import (
	"fmt"

	toon "github.com/jitendra-neema/toon-format"
	"github.com/jitendra-neema/toon-format/encode"
	"github.com/jitendra-neema/toon-format/ir"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch requires 2 arguments, a document and a patch", cli.ErrUsage)
	}
	doc, err := getObjFile(cc, args[0], cfg.decodeOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	var res *ir.Node
	if cfg.Ops {
		ops, err := readArg(cc, args[1])
		if err != nil {
			return err
		}
		res, err = toon.ApplyPatch(doc, ops)
		if err != nil {
			return fmt.Errorf("error applying %s: %w", args[1], err)
		}
	} else {
		p, err := getObjFile(cc, args[1], cfg.decodeOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", args[1], err)
		}
		res, err = toon.MergePatch(doc, p)
		if err != nil {
			return fmt.Errorf("error applying %s: %w", args[1], err)
		}
	}
	w, closeW, err := cfg.writer(cc)
	if err != nil {
		return err
	}
	defer closeW()
	if err := encode.Encode(res, w, cfg.encOpts(w)...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	_, err = w.Write([]byte("\n"))
	return err
}
