// Package ir contains the in-memory representation of TOON documents.
//
// A document is a tree of [Node] values covering the JSON data model:
// null, booleans, numbers, strings, arrays and objects. Objects keep
// their fields in insertion order; numbers carry either an integer or a
// floating point value so that large integers survive a round trip
// without precision loss.
//
// # Related Packages
//
//   - github.com/jitendra-neema/toon-format/decode - decode TOON text to IR
//   - github.com/jitendra-neema/toon-format/encode - encode IR to TOON text
package ir
