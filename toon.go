package toon

import (
	"io"

	"github.com/jitendra-neema/toon-format/decode"
	"github.com/jitendra-neema/toon-format/encode"
	"github.com/jitendra-neema/toon-format/ir"
)

// Decode parses a TOON document. See the decode package for options.
func Decode(d []byte, opts ...decode.Option) (*ir.Node, error) {
	return decode.Decode(d, opts...)
}

// Encode renders node as a TOON document on w. See the encode
// package for options.
func Encode(node *ir.Node, w io.Writer, opts ...encode.EncodeOption) error {
	return encode.Encode(node, w, opts...)
}

// String renders node as a TOON document.
func String(node *ir.Node, opts ...encode.EncodeOption) (string, error) {
	return encode.String(node, opts...)
}
