package token

import (
	"strconv"
	"strings"
)

// Header is the decomposition of one array header line,
//
//	key[#n<delim>]{fields}: inline
//
// Length is the declared element count; it is advisory and the
// decoder does not enforce it. Marker is the explicit delimiter
// marker byte (tab or pipe) or zero when absent. Fields is non-nil
// exactly when the {fields} spec is present. Inline is the trimmed
// text after the colon.
type Header struct {
	Key          string
	Length       int
	LengthMarker bool
	Marker       byte
	Fields       []string
	FieldsRaw    string
	Inline       string
}

// ParseHeader reports whether content matches the array header shape
// and decomposes it when it does. Lines that do not match are tried
// by callers as key-value lines, then key-only lines.
func ParseHeader(content string) (*Header, bool) {
	if strings.HasPrefix(content, `"`) {
		end, ok := ScanQuoted(content)
		if !ok || end >= len(content) || content[end] != '[' {
			return nil, false
		}
		key, err := Unquote(content[:end])
		if err != nil {
			return nil, false
		}
		h, ok := parseFromBracket(content[end:])
		if !ok {
			return nil, false
		}
		h.Key = key
		return h, true
	}
	// The key prefix is non-greedy: for each candidate bracket, try
	// the remainder as the bracketed part and accept the first one
	// that parses. An unquoted key never contains a colon or quote;
	// such lines are key-value lines, not headers.
	from := 0
	for {
		idx := strings.IndexByte(content[from:], '[')
		if idx < 0 {
			return nil, false
		}
		at := from + idx
		key := strings.TrimSpace(content[:at])
		if !strings.ContainsAny(key, ":\"") {
			if h, ok := parseFromBracket(content[at:]); ok {
				h.Key = key
				return h, true
			}
		}
		from = at + 1
	}
}

// parseFromBracket parses `[#n<delim>]{fields}: inline` with rest[0] == '['.
func parseFromBracket(rest string) (*Header, bool) {
	h := &Header{}
	rest = rest[1:]
	if strings.HasPrefix(rest, "#") {
		h.LengthMarker = true
		rest = rest[1:]
	}
	j := digits(rest, 0)
	if j == 0 {
		return nil, false
	}
	n, err := strconv.Atoi(rest[:j])
	if err != nil {
		return nil, false
	}
	h.Length = n
	rest = rest[j:]
	if len(rest) > 0 && (rest[0] == Tab || rest[0] == Pipe) {
		h.Marker = rest[0]
		rest = rest[1:]
	}
	if len(rest) == 0 || rest[0] != ']' {
		return nil, false
	}
	rest = rest[1:]
	if strings.HasPrefix(rest, "{") {
		k := closeBrace(rest)
		if k < 0 {
			return nil, false
		}
		h.FieldsRaw = rest[1:k]
		rest = rest[k+1:]
		delim := DetectDelimiter(h.Marker, h.FieldsRaw)
		names := SplitQuoted(h.FieldsRaw, delim)
		h.Fields = make([]string, 0, len(names))
		for _, name := range names {
			if IsQuoted(name) {
				if s, err := Unquote(name); err == nil {
					name = s
				}
			}
			h.Fields = append(h.Fields, name)
		}
	}
	if len(rest) == 0 || rest[0] != ':' {
		return nil, false
	}
	h.Inline = strings.TrimSpace(rest[1:])
	return h, true
}

// closeBrace finds the offset of the '}' closing rest[0] == '{',
// skipping quoted spans and escaped bytes.
func closeBrace(rest string) int {
	inQuote := false
	for i := 1; i < len(rest); i++ {
		switch rest[i] {
		case '\\':
			i++
		case '"':
			inQuote = !inQuote
		case '}':
			if !inQuote {
				return i
			}
		}
	}
	return -1
}
