package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jitendra-neema/toon-format/decode"
	"github.com/jitendra-neema/toon-format/encode"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color  bool `cli:"name=color desc='encode with color'"`
	Strict bool `cli:"name=strict desc='fail on malformed lines and length mismatches'"`
	Marker bool `cli:"name=m aliases=marker desc='write explicit # length markers'"`
	Indent int  `cli:"name=indent desc='columns per nesting level'"`

	Delim byte

	OutFile string

	Main *cli.Command
}

func (cfg *MainConfig) delimOpt() cli.FuncOpt {
	return func(_ *cli.Context, v string) (any, error) {
		switch v {
		case ",", "comma":
			cfg.Delim = ','
		case "\t", "tab":
			cfg.Delim = '\t'
		case "|", "pipe":
			cfg.Delim = '|'
		default:
			return nil, fmt.Errorf("%w: delimiter %q: want comma, tab or pipe", cli.ErrUsage, v)
		}
		return v, nil
	}
}

func (cfg *MainConfig) outOpt() cli.FuncOpt {
	return func(_ *cli.Context, v string) (any, error) {
		cfg.OutFile = v
		return v, nil
	}
}

// writer resolves the output writer: the -o file when given,
// otherwise the context's output.
func (cfg *MainConfig) writer(cc *cli.Context) (io.Writer, func() error, error) {
	if cfg.OutFile == "" {
		return cc.Out, func() error { return nil }, nil
	}
	f, err := os.Create(cfg.OutFile)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

func (cfg *MainConfig) decodeOpts() []decode.Option {
	var res []decode.Option
	if cfg.Strict {
		res = append(res, decode.Strict())
	}
	return res
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.Indent(cfg.Indent),
		encode.Delimiter(cfg.Delim),
		encode.LengthMarker(cfg.Marker),
	}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
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

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type ConvertConfig struct {
	*MainConfig

	Reverse bool `cli:"name=r aliases=reverse desc='convert to TOON instead of from it'"`

	Convert *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig

	Ops bool `cli:"name=ops desc='patch arg is an RFC 6902 operations file (JSON)'"`

	Patch *cli.Command
}
