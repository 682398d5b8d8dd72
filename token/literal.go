package token

import (
	"strconv"
	"strings"

	"github.com/jitendra-neema/toon-format/ir"
)

// IsNumber reports whether v is a numeric literal: an optional
// leading minus, digits, an optional fraction and an optional
// exponent.
func IsNumber(v string) bool {
	i := 0
	if i < len(v) && v[i] == '-' {
		i++
	}
	j := digits(v, i)
	if j == i {
		return false
	}
	i = j
	if i < len(v) && v[i] == '.' {
		j = digits(v, i+1)
		if j == i+1 {
			return false
		}
		i = j
	}
	if i < len(v) && (v[i] == 'e' || v[i] == 'E') {
		i++
		if i < len(v) && (v[i] == '+' || v[i] == '-') {
			i++
		}
		j = digits(v, i)
		if j == i {
			return false
		}
		i = j
	}
	return i == len(v)
}

func digits(v string, i int) int {
	for i < len(v) && v[i] >= '0' && v[i] <= '9' {
		i++
	}
	return i
}

// Scalar classifies a raw trimmed token: null, true and false match
// case-insensitively, numeric literals become integer nodes when they
// fit an int64 without fraction or exponent, a complete double-quoted
// span is unquoted, and anything else is a bare string. Malformed
// quoting degrades to a bare string rather than failing.
func Scalar(tok string) *ir.Node {
	switch strings.ToLower(tok) {
	case "null":
		return ir.Null()
	case "true":
		return ir.FromBool(true)
	case "false":
		return ir.FromBool(false)
	}
	if IsNumber(tok) {
		if i, err := strconv.ParseInt(tok, 10, 64); err == nil {
			return ir.FromInt(i)
		}
		if f, err := strconv.ParseFloat(tok, 64); err == nil {
			return ir.FromFloat(f)
		}
	}
	if IsQuoted(tok) {
		if s, err := Unquote(tok); err == nil {
			return ir.FromString(s)
		}
	}
	return ir.FromString(tok)
}
