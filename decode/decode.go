package decode

import (
	"fmt"
	"strings"

	"github.com/jitendra-neema/toon-format/ir"
	"github.com/jitendra-neema/toon-format/token"
)

// Decode parses a TOON document into an IR node. Empty input decodes
// to null. Structure is recovered from indentation and punctuation
// alone: each block is an object, a hyphen list, or an array body
// introduced by a header line.
func Decode(d []byte, opts ...Option) (*ir.Node, error) {
	o := &decodeOpts{maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(o)
	}
	lines := token.Scan(d)
	dec := &decoder{
		lines: lines,
		unit:  token.IndentUnit(lines),
		opts:  o,
	}

	first, nonBlank := -1, 0
	for i := range lines {
		if lines[i].Blank() {
			continue
		}
		if first < 0 {
			first = i
		}
		nonBlank++
	}
	if first < 0 {
		return ir.Null(), nil
	}
	if nonBlank == 1 {
		c := strings.TrimSpace(lines[first].Content)
		if !strings.Contains(c, ":") && !strings.HasPrefix(c, "- ") && !strings.HasPrefix(c, "[") {
			return token.Scalar(c), nil
		}
	}
	dec.pos = first

	// A keyless array header is recognized only at the document root.
	ln := &lines[first]
	if h, ok := token.ParseHeader(ln.Content); ok && h.Key == "" {
		dec.pos++
		return dec.parseArrayBody(h, ln.Indent+dec.unit)
	}
	return dec.parseBlock(ln.Indent)
}

type decoder struct {
	lines []token.Line
	pos   int
	unit  int
	depth int
	opts  *decodeOpts
}

func (d *decoder) enter() error {
	d.depth++
	if d.depth > d.opts.maxDepth {
		return fmt.Errorf("%w (%d)", ErrMaxDepth, d.opts.maxDepth)
	}
	return nil
}

func (d *decoder) leave() { d.depth-- }

// line returns the current line, or nil when input is exhausted.
func (d *decoder) line() *token.Line {
	if d.pos >= len(d.lines) {
		return nil
	}
	return &d.lines[d.pos]
}

// parseBlock decides what the block starting at the cursor is: a
// hyphen item seen before any line containing a colon makes it a
// list, a colon first makes it an object, and an empty block defaults
// to an empty object.
func (d *decoder) parseBlock(minIndent int) (*ir.Node, error) {
	if err := d.enter(); err != nil {
		return nil, err
	}
	defer d.leave()
	for i := d.pos; i < len(d.lines); i++ {
		ln := &d.lines[i]
		if ln.Blank() || ln.Indent < minIndent {
			break
		}
		if isListItem(ln.Content) {
			return d.parseList(minIndent)
		}
		if strings.Contains(ln.Content, ":") {
			return d.parseObject(minIndent)
		}
	}
	return d.parseObject(minIndent)
}

func (d *decoder) parseObject(minIndent int) (*ir.Node, error) {
	obj := &ir.Node{Type: ir.ObjectType}
	for {
		ln := d.line()
		if ln == nil || ln.Blank() || ln.Indent < minIndent {
			return obj, nil
		}
		if h, ok := token.ParseHeader(ln.Content); ok {
			// A keyless header belongs at the document root only.
			if h.Key == "" {
				if d.opts.strict {
					return nil, fmt.Errorf("%w: keyless array header at line %d: %q",
						ErrMalformed, d.pos+1, ln.Content)
				}
				d.pos++
				continue
			}
			d.pos++
			val, err := d.parseArrayBody(h, ln.Indent+d.unit)
			if err != nil {
				return nil, err
			}
			obj.Set(h.Key, val)
			continue
		}
		if key, val, ok := splitKeyValue(ln.Content); ok {
			obj.Set(key, token.Scalar(val))
			d.pos++
			continue
		}
		if key, ok := splitKeyOnly(ln.Content); ok {
			at := ln.Indent
			d.pos++
			val, err := d.parseBlock(at + d.unit)
			if err != nil {
				return nil, err
			}
			obj.Set(key, val)
			continue
		}
		if d.opts.strict {
			return nil, fmt.Errorf("%w: unrecognized line %d: %q",
				ErrMalformed, d.pos+1, ln.Content)
		}
		d.pos++
	}
}

func (d *decoder) parseList(minIndent int) (*ir.Node, error) {
	if err := d.enter(); err != nil {
		return nil, err
	}
	defer d.leave()
	arr := &ir.Node{Type: ir.ArrayType}
	for {
		ln := d.line()
		if ln == nil || ln.Blank() || ln.Indent < minIndent || !isListItem(ln.Content) {
			return arr, nil
		}
		itemIndent := ln.Indent
		fieldIndent := itemIndent + 2
		after := ""
		if ln.Content != "-" {
			after = strings.TrimSpace(ln.Content[2:])
		}
		if after == "" {
			d.pos++
			next := d.line()
			if next != nil && !next.Blank() && next.Indent > itemIndent {
				val, err := d.parseBlock(next.Indent)
				if err != nil {
					return nil, err
				}
				arr.Append(val)
			} else {
				arr.Append(&ir.Node{Type: ir.ObjectType})
			}
			continue
		}
		if h, ok := token.ParseHeader(after); ok {
			d.pos++
			val, err := d.parseArrayBody(h, fieldIndent+d.unit)
			if err != nil {
				return nil, err
			}
			if h.Key == "" {
				// The item is itself a nested array.
				arr.Append(val)
				continue
			}
			obj := &ir.Node{Type: ir.ObjectType}
			obj.Set(h.Key, val)
			if err := d.itemFields(obj, fieldIndent); err != nil {
				return nil, err
			}
			arr.Append(obj)
			continue
		}
		if key, val, ok := splitKeyValue(after); ok {
			obj := &ir.Node{Type: ir.ObjectType}
			obj.Set(key, token.Scalar(val))
			d.pos++
			if err := d.itemFields(obj, fieldIndent); err != nil {
				return nil, err
			}
			arr.Append(obj)
			continue
		}
		if key, ok := splitKeyOnly(after); ok {
			obj := &ir.Node{Type: ir.ObjectType}
			d.pos++
			next := d.line()
			if next != nil && !next.Blank() && next.Indent > itemIndent {
				val, err := d.parseBlock(next.Indent)
				if err != nil {
					return nil, err
				}
				obj.Set(key, val)
			} else {
				obj.Set(key, &ir.Node{Type: ir.ObjectType})
			}
			if err := d.itemFields(obj, fieldIndent); err != nil {
				return nil, err
			}
			arr.Append(obj)
			continue
		}
		arr.Append(token.Scalar(after))
		d.pos++
	}
}

// itemFields accumulates the fields of a multi-line hyphen item
// beyond the first: lines at or right of the item's first-field
// column that do not start a new hyphen item.
func (d *decoder) itemFields(obj *ir.Node, fieldIndent int) error {
	for {
		ln := d.line()
		if ln == nil || ln.Blank() || ln.Indent < fieldIndent || isListItem(ln.Content) {
			return nil
		}
		if h, ok := token.ParseHeader(ln.Content); ok {
			if h.Key == "" {
				if d.opts.strict {
					return fmt.Errorf("%w: keyless array header at line %d: %q",
						ErrMalformed, d.pos+1, ln.Content)
				}
				d.pos++
				continue
			}
			d.pos++
			val, err := d.parseArrayBody(h, ln.Indent+d.unit)
			if err != nil {
				return err
			}
			obj.Set(h.Key, val)
			continue
		}
		if key, val, ok := splitKeyValue(ln.Content); ok {
			obj.Set(key, token.Scalar(val))
			d.pos++
			continue
		}
		if key, ok := splitKeyOnly(ln.Content); ok {
			at := ln.Indent
			d.pos++
			val, err := d.parseBlock(at + d.unit)
			if err != nil {
				return err
			}
			obj.Set(key, val)
			continue
		}
		if d.opts.strict {
			return fmt.Errorf("%w: unrecognized line %d: %q",
				ErrMalformed, d.pos+1, ln.Content)
		}
		d.pos++
	}
}

// parseArrayBody dispatches on header shape with the precedence
// inline > tabular > list > empty. The declared length is advisory
// and only checked in strict mode.
func (d *decoder) parseArrayBody(h *token.Header, childIndent int) (*ir.Node, error) {
	arr := &ir.Node{Type: ir.ArrayType}
	switch {
	case h.Inline != "":
		delim := token.DetectDelimiter(h.Marker, h.Inline)
		for _, tok := range token.SplitQuoted(h.Inline, delim) {
			arr.Append(token.Scalar(tok))
		}
	case h.Fields != nil:
		delim := token.DetectDelimiter(h.Marker, h.FieldsRaw)
		for {
			ln := d.line()
			if ln == nil || ln.Blank() || ln.Indent < childIndent {
				break
			}
			cells := token.SplitQuoted(ln.Content, delim)
			row := &ir.Node{Type: ir.ObjectType}
			for i, f := range h.Fields {
				if i < len(cells) {
					row.Set(f, token.Scalar(cells[i]))
				} else {
					row.Set(f, ir.Null())
				}
			}
			arr.Append(row)
			d.pos++
		}
	default:
		ln := d.line()
		if ln != nil && !ln.Blank() && ln.Indent >= childIndent && isListItem(ln.Content) {
			items, err := d.parseList(childIndent)
			if err != nil {
				return nil, err
			}
			arr = items
		}
	}
	if d.opts.strict && h.Length != len(arr.Values) {
		return nil, fmt.Errorf("%w: header declares %d elements, found %d",
			ErrMalformed, h.Length, len(arr.Values))
	}
	return arr, nil
}

func isListItem(content string) bool {
	return content == "-" || strings.HasPrefix(content, "- ")
}

// splitKeyValue recognizes `key: value` with a non-empty value; the
// key may be double-quoted.
func splitKeyValue(content string) (string, string, bool) {
	if strings.HasPrefix(content, `"`) {
		end, ok := token.ScanQuoted(content)
		if !ok {
			return "", "", false
		}
		rest := strings.TrimLeft(content[end:], " ")
		if !strings.HasPrefix(rest, ":") {
			return "", "", false
		}
		val := strings.TrimSpace(rest[1:])
		if val == "" {
			return "", "", false
		}
		key, err := token.Unquote(content[:end])
		if err != nil {
			return "", "", false
		}
		return key, val, true
	}
	idx := strings.IndexByte(content, ':')
	if idx <= 0 {
		return "", "", false
	}
	key := strings.TrimSpace(content[:idx])
	val := strings.TrimSpace(content[idx+1:])
	if key == "" || val == "" {
		return "", "", false
	}
	return key, val, true
}

// splitKeyOnly recognizes `key:` with nothing after the colon.
func splitKeyOnly(content string) (string, bool) {
	if !strings.HasSuffix(content, ":") {
		return "", false
	}
	key := strings.TrimSpace(content[:len(content)-1])
	if key == "" {
		return "", false
	}
	if token.IsQuoted(key) {
		if s, err := token.Unquote(key); err == nil {
			return s, true
		}
	}
	return key, true
}
