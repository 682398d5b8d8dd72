package main

import (
	"fmt"
	"io"

	toon "github.com/jitendra-neema/toon-format"
	"github.com/jitendra-neema/toon-format/encode"
	"github.com/jitendra-neema/toon-format/ir"

	"github.com/scott-cotton/cli"
)

// bridge adapts one external notation to and from the IR.
type bridge interface {
	name() string
	from(d []byte) (*ir.Node, error)
	to(node *ir.Node) ([]byte, error)
}

type jsonBridge struct{}

func (jsonBridge) name() string                    { return "json" }
func (jsonBridge) from(d []byte) (*ir.Node, error) { return toon.FromJSON(d) }
func (jsonBridge) to(n *ir.Node) ([]byte, error)   { return toon.ToJSON(n) }

type yamlBridge struct{}

func (yamlBridge) name() string                    { return "yaml" }
func (yamlBridge) from(d []byte) (*ir.Node, error) { return toon.FromYAML(d) }
func (yamlBridge) to(n *ir.Node) ([]byte, error)   { return toon.ToYAML(n) }

func convert(cfg *ConvertConfig, cc *cli.Context, args []string, b bridge) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		cfg.Convert.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	w, closeW, err := cfg.writer(cc)
	if err != nil {
		return err
	}
	defer closeW()
	if len(args) == 0 {
		args = []string{"-"}
	}
	for i, arg := range args {
		if i > 0 {
			w.Write([]byte("\n---\n"))
		}
		if err := convertArg(cfg, cc, w, arg, b); err != nil {
			return fmt.Errorf("error converting %s: %w", arg, err)
		}
	}
	return nil
}

func convertArg(cfg *ConvertConfig, cc *cli.Context, w io.Writer, arg string, b bridge) error {
	if cfg.Reverse {
		d, err := readArg(cc, arg)
		if err != nil {
			return err
		}
		node, err := b.from(d)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", b.name(), err)
		}
		if err := encode.Encode(node, w, cfg.encOpts(w)...); err != nil {
			return fmt.Errorf("error encoding: %w", err)
		}
		_, err = w.Write([]byte("\n"))
		return err
	}
	node, err := getObjFile(cc, arg, cfg.decodeOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding: %w", err)
	}
	out, err := b.to(node)
	if err != nil {
		return fmt.Errorf("error encoding %s: %w", b.name(), err)
	}
	if _, err := w.Write(out); err != nil {
		return err
	}
	if len(out) == 0 || out[len(out)-1] != '\n' {
		if _, err := w.Write([]byte("\n")); err != nil {
			return err
		}
	}
	return nil
}
