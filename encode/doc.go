// Package encode renders IR nodes as TOON text.
//
// # Usage
//
//	node := ir.FromMap(map[string]*ir.Node{
//	    "name": ir.FromString("ada"),
//	    "age":  ir.FromInt(36),
//	})
//	err := encode.Encode(node, os.Stdout)
//
//	// Encode with options
//	out, err := encode.String(node, encode.Delimiter('\t'), encode.LengthMarker(true))
//
// Arrays choose among three layouts: tabular when every element is a
// non-empty object sharing one key set with all-scalar values, inline
// when every element is a scalar, and a hyphen list otherwise.
//
// # Related Packages
//
//   - github.com/jitendra-neema/toon-format/ir - IR representation
//   - github.com/jitendra-neema/toon-format/decode - parse text to IR
package encode
