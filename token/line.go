package token

import "strings"

// Line is one scanned input line. Content is Raw with the leading
// spaces removed; Indent counts them. A trailing carriage return is
// stripped before indentation is computed so that CRLF input scans
// the same as LF input.
type Line struct {
	Raw     string
	Indent  int
	Content string
}

func (l *Line) Blank() bool {
	return strings.TrimSpace(l.Content) == ""
}

// Scan splits d into lines on '\n'.
func Scan(d []byte) []Line {
	if len(d) == 0 {
		return nil
	}
	raw := strings.Split(string(d), "\n")
	lines := make([]Line, len(raw))
	for i, ln := range raw {
		ln = strings.TrimSuffix(ln, "\r")
		j := 0
		for j < len(ln) && ln[j] == ' ' {
			j++
		}
		lines[i] = Line{Raw: ln, Indent: j, Content: ln[j:]}
	}
	return lines
}

// IndentUnit detects the number of columns per nesting level: the
// first positive indentation increase between consecutive non-blank
// lines. Documents that never increase indentation report 2.
func IndentUnit(lines []Line) int {
	prev := -1
	for i := range lines {
		if lines[i].Blank() {
			continue
		}
		if prev >= 0 && lines[i].Indent > prev {
			return lines[i].Indent - prev
		}
		prev = lines[i].Indent
	}
	return 2
}
