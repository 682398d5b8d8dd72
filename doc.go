// Package toon implements TOON (Token-Oriented Object Notation), a
// compact indentation-based text format over the JSON data model,
// designed to minimize token count for language-model consumption
// while staying human-readable and losslessly round-trippable.
//
// A document is an object of `key: value` lines, arrays in one of
// three layouts, and scalars:
//
//	users[2]{id,name}:
//	  1,ada
//	  2,bob
//	tags[3]: a,b,c
//	servers:
//	  - host: alpha
//	    port: 8080
//	  - host: beta
//	    port: 8081
//
// The root package carries document-level operations: conversion to
// and from JSON and YAML, textual diffing, and JSON patching. The
// codec itself lives in the decode and encode packages, over the
// value model in ir.
package toon
