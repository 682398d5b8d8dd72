package token

import "strings"

// Delimiters legal in inline and tabular arrays.
const (
	Comma = byte(',')
	Tab   = byte('\t')
	Pipe  = byte('|')
)

// SplitQuoted splits s on delim, never inside a double-quoted span.
// A backslash escapes the following byte verbatim, so an escaped
// quote does not toggle quote state and an escaped delimiter does not
// split. Each token is trimmed of surrounding whitespace.
func SplitQuoted(s string, delim byte) []string {
	var (
		res     []string
		cur     strings.Builder
		inQuote bool
	)
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\\' && i+1 < len(s):
			cur.WriteByte(c)
			i++
			cur.WriteByte(s[i])
		case c == '"':
			inQuote = !inQuote
			cur.WriteByte(c)
		case c == delim && !inQuote:
			res = append(res, strings.TrimSpace(cur.String()))
			cur.Reset()
		default:
			cur.WriteByte(c)
		}
	}
	return append(res, strings.TrimSpace(cur.String()))
}

// DetectDelimiter resolves the delimiter for an array: an explicit
// header marker wins; otherwise the first of tab or pipe present in
// the sample text; otherwise comma. The sample rule lets a tabular
// array be recognized even when the header omits the marker. Bytes
// inside double-quoted spans never count: a quoted cell may carry a
// tab or pipe without changing the delimiter.
func DetectDelimiter(marker byte, sample string) byte {
	switch marker {
	case Tab:
		return Tab
	case Pipe:
		return Pipe
	}
	var tab, pipe, inQuote bool
	for i := 0; i < len(sample); i++ {
		switch c := sample[i]; {
		case c == '\\' && i+1 < len(sample):
			i++
		case c == '"':
			inQuote = !inQuote
		case inQuote:
		case c == Tab:
			tab = true
		case c == Pipe:
			pipe = true
		}
	}
	if tab {
		return Tab
	}
	if pipe {
		return Pipe
	}
	return Comma
}
