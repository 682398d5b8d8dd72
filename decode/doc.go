// Package decode parses TOON text into IR nodes.
//
// # Usage
//
//	node, err := decode.Decode([]byte("users[2]{id,name}:\n  1,ada\n  2,bob"))
//	if err != nil {
//	    return err
//	}
//
//	// Opt in to strict validation
//	node, err = decode.Decode(data, decode.Strict())
//
// Decoding is best-effort by default: lines matching none of the
// recognized shapes are skipped, and declared array lengths are not
// checked against actual element counts. [Strict] turns both into
// errors. The only error produced in the default mode is the nesting
// depth guard.
//
// # Related Packages
//
//   - github.com/jitendra-neema/toon-format/ir - IR representation
//   - github.com/jitendra-neema/toon-format/encode - encode IR to text
//   - github.com/jitendra-neema/toon-format/token - line scanning
package decode
