// Package token provides the lexical layer of the TOON codec: line
// scanning with indentation tracking, quote-aware field splitting,
// string quoting and unquoting, scalar literal classification, and
// the array header syntax
//
//	key[#n<delim>]{fields}: inline
//
// where every component except the bracketed count is optional.
//
// # Related Packages
//
//   - github.com/jitendra-neema/toon-format/ir - IR representation
//   - github.com/jitendra-neema/toon-format/decode - block decoder
//   - github.com/jitendra-neema/toon-format/encode - encoder
package token
