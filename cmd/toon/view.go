package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jitendra-neema/toon-format/decode"
	"github.com/jitendra-neema/toon-format/encode"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	w, closeW, err := cfg.writer(cc)
	if err != nil {
		return err
	}
	defer closeW()
	if len(args) == 0 {
		return viewReader(cfg, w, cc.In)
	}
	return viewFiles(cfg, w, args)
}

func viewFiles(cfg *ViewConfig, w io.Writer, files []string) error {
	for i, file := range files {
		if err := viewFile(cfg, w, file); err != nil {
			return err
		}
		if i < len(files)-1 {
			w.Write([]byte("\n---\n"))
		}
	}
	return nil
}

func viewFile(cfg *ViewConfig, w io.Writer, file string) error {
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
	if err := viewReader(cfg, w, f); err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	return nil
}

func viewReader(cfg *ViewConfig, w io.Writer, r io.Reader) error {
	in, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading: %w", err)
	}
	node, err := decode.Decode(in, cfg.decodeOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding: %w", err)
	}
	if err := encode.Encode(node, w, cfg.encOpts(w)...); err != nil {
		return fmt.Errorf("error encoding: %w", err)
	}
	_, err = w.Write([]byte("\n"))
	return err
}
