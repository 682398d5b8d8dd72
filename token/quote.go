package token

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

// Quote renders v as a double-quoted string, escaping quote,
// backslash, the common control characters and any other control
// rune as \uXXXX.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	for _, r := range v {
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if unicode.IsControl(r) {
				d = fmt.Appendf(d, "\\u%04x", r)
			} else {
				d = utf8.AppendRune(d, r)
			}
		}
	}
	return string(append(d, '"'))
}

// IsQuoted reports whether v is a complete double-quoted span.
func IsQuoted(v string) bool {
	return len(v) >= 2 && v[0] == '"' && v[len(v)-1] == '"'
}

// Unquote parses a double-quoted span, interpreting the escapes
// \" \\ \/ \n \r \t \b \f and \uXXXX (with surrogate pairing).
func Unquote(v string) (string, error) {
	if !IsQuoted(v) {
		return "", fmt.Errorf("not a quoted string: %q", v)
	}
	inner := v[1 : len(v)-1]
	var b strings.Builder
	for i := 0; i < len(inner); i++ {
		c := inner[i]
		if c == '"' {
			return "", fmt.Errorf("unescaped quote in %q", v)
		}
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		i++
		if i >= len(inner) {
			return "", fmt.Errorf("dangling escape in %q", v)
		}
		switch inner[i] {
		case '"':
			b.WriteByte('"')
		case '\\':
			b.WriteByte('\\')
		case '/':
			b.WriteByte('/')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'u':
			r, n, err := unquoteRune(inner[i+1:])
			if err != nil {
				return "", fmt.Errorf("%w in %q", err, v)
			}
			b.WriteRune(r)
			i += n
		default:
			return "", fmt.Errorf("unknown escape \\%c in %q", inner[i], v)
		}
	}
	return b.String(), nil
}

func unquoteRune(s string) (rune, int, error) {
	r, err := hex4(s)
	if err != nil {
		return 0, 0, err
	}
	if !utf16.IsSurrogate(r) {
		return r, 4, nil
	}
	if len(s) >= 10 && s[4] == '\\' && s[5] == 'u' {
		r2, err := hex4(s[6:])
		if err == nil {
			if dec := utf16.DecodeRune(r, r2); dec != utf8.RuneError {
				return dec, 10, nil
			}
		}
	}
	return utf8.RuneError, 4, nil
}

func hex4(s string) (rune, error) {
	if len(s) < 4 {
		return 0, fmt.Errorf("short \\u escape")
	}
	var r rune
	for i := 0; i < 4; i++ {
		c := s[i]
		r <<= 4
		switch {
		case c >= '0' && c <= '9':
			r |= rune(c - '0')
		case c >= 'a' && c <= 'f':
			r |= rune(c-'a') + 10
		case c >= 'A' && c <= 'F':
			r |= rune(c-'A') + 10
		default:
			return 0, fmt.Errorf("bad \\u escape digit %q", c)
		}
	}
	return r, nil
}

// ScanQuoted returns the end offset (exclusive) of the double-quoted
// span starting at s[0], honoring backslash escapes.
func ScanQuoted(s string) (int, bool) {
	if len(s) < 2 || s[0] != '"' {
		return 0, false
	}
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '"':
			return i + 1, true
		}
	}
	return 0, false
}

// NeedsQuote reports whether a string value must be quoted to survive
// a round trip when encoded with the given active delimiter: empty
// strings, strings containing the delimiter, a colon, a quote or
// backslash, whitespace, exactly "-" or a "- " prefix, and bare text
// that would be misread as a boolean, null, number or structural
// bracket. Tab and pipe always force quoting because a bare
// occurrence would change delimiter detection on decode.
func NeedsQuote(v string, delim byte) bool {
	if v == "" {
		return true
	}
	if strings.ContainsAny(v, string(delim)+":\"\\ \n\r\t|") {
		return true
	}
	if v == "-" || strings.HasPrefix(v, "- ") {
		return true
	}
	switch v[0] {
	case '[', '{':
		return true
	}
	switch strings.ToLower(v) {
	case "true", "false", "null":
		return true
	}
	return IsNumber(v)
}

// NeedsKeyQuote applies the value rules plus the stricter key rules:
// keys beginning with a hyphen, all-digit keys, and keys containing
// whitespace or any of ,:"[]{}\ are quoted.
func NeedsKeyQuote(k string, delim byte) bool {
	if NeedsQuote(k, delim) {
		return true
	}
	if strings.HasPrefix(k, "-") {
		return true
	}
	return strings.ContainsAny(k, ",:\"[]{}\\ \t\n\r")
}
