package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jitendra-neema/toon-format/decode"
	"github.com/jitendra-neema/toon-format/ir"

	"github.com/scott-cotton/cli"
)

func getObjFile(cc *cli.Context, path string, opts ...decode.Option) (*ir.Node, error) {
	d, err := readArg(cc, path)
	if err != nil {
		return nil, err
	}
	return decode.Decode(d, opts...)
}

// readArg reads the named file, or the context's input when path is "-".
func readArg(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}
