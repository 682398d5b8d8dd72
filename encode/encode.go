package encode

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/jitendra-neema/toon-format/ir"
	"github.com/jitendra-neema/toon-format/token"
)

type EncState struct {
	buf     bytes.Buffer
	started bool

	indent int
	delim  byte
	marker bool

	visiting map[*ir.Node]bool

	Color func(ir.Type, ColorAttr, string) string
}

// Encode renders node as a TOON document on w. Options are validated
// before any encoding work; a circular container graph is rejected
// with ErrCircularRef. The document is buffered internally and
// written to w only on success, so a failed encode produces no
// partial output.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
		delim:  token.Comma,
	}
	for _, opt := range opts {
		opt(es)
	}
	if es.indent <= 0 {
		return fmt.Errorf("%w: indent must be positive, got %d", ErrInvalidOption, es.indent)
	}
	switch es.delim {
	case token.Comma, token.Tab, token.Pipe:
	default:
		return fmt.Errorf("%w: delimiter %q is not one of ',', '\\t', '|'", ErrInvalidOption, es.delim)
	}
	es.visiting = map[*ir.Node]bool{}
	if node == nil {
		node = ir.Null()
	}
	if err := es.encodeRoot(node); err != nil {
		return err
	}
	if es.buf.Len() == 0 {
		return nil
	}
	_, err := w.Write(es.buf.Bytes())
	return err
}

// String renders node as a TOON document.
func String(node *ir.Node, opts ...EncodeOption) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func MustString(node *ir.Node, opts ...EncodeOption) string {
	s, err := String(node, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

func (es *EncState) encodeRoot(node *ir.Node) error {
	switch node.Type {
	case ir.ObjectType:
		if len(node.Fields) == 0 {
			return nil
		}
		return es.encodeObjectBlock(node, 0)
	case ir.ArrayType:
		return es.encodeArray("", false, node, 0)
	case ir.NullType, ir.BoolType, ir.NumberType, ir.StringType:
		return es.writeScalar(node)
	default:
		return fmt.Errorf("%w: unencodable type %s", ErrEncoding, node.Type)
	}
}

// Cycle tracking

func (es *EncState) push(node *ir.Node) error {
	if es.visiting[node] {
		return fmt.Errorf("%w: %s is reachable from itself", ErrCircularRef, node.Type)
	}
	es.visiting[node] = true
	return nil
}

func (es *EncState) pop(node *ir.Node) { delete(es.visiting, node) }

// Line and token writing

func (es *EncState) newline(depth int) {
	if es.started {
		es.buf.WriteByte('\n')
	}
	es.started = true
	es.buf.WriteString(strings.Repeat(" ", es.indent*depth))
}

func (es *EncState) write(s string) {
	if s != "" {
		es.started = true
	}
	es.buf.WriteString(s)
}

func (es *EncState) color(t ir.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}

func (es *EncState) writeKey(k string) {
	if token.NeedsKeyQuote(k, es.delim) {
		k = token.Quote(k)
	}
	es.write(es.color(ir.ObjectType, FieldColor, k))
}

func (es *EncState) writeSep() {
	es.write(es.color(ir.ObjectType, SepColor, ":"))
}

func (es *EncState) writeDelim() {
	es.write(es.color(ir.ArrayType, SepColor, string(es.delim)))
}

func (es *EncState) writeHyphen() {
	es.write(es.color(ir.ArrayType, SepColor, "-"))
	es.write(" ")
}

// Object encoding

func (es *EncState) encodeObjectBlock(node *ir.Node, depth int) error {
	if err := es.push(node); err != nil {
		return err
	}
	defer es.pop(node)
	for i, f := range node.Fields {
		if err := es.encodeField(f.String, node.Values[i], depth); err != nil {
			return err
		}
	}
	return nil
}

func (es *EncState) encodeField(key string, val *ir.Node, depth int) error {
	es.newline(depth)
	switch val.Type {
	case ir.ArrayType:
		return es.encodeArray(key, true, val, depth)
	case ir.ObjectType:
		es.writeKey(key)
		es.writeSep()
		if len(val.Fields) == 0 {
			return nil
		}
		return es.encodeObjectBlock(val, depth+1)
	default:
		es.writeKey(key)
		es.writeSep()
		es.write(" ")
		return es.writeScalar(val)
	}
}

// Array encoding

type arrayLayout int

const (
	layoutInline arrayLayout = iota
	layoutTabular
	layoutList
)

// encodeArray writes the header on the current line; tabular rows and
// list items are placed at depth+1.
func (es *EncState) encodeArray(key string, hasKey bool, node *ir.Node, depth int) error {
	if err := es.push(node); err != nil {
		return err
	}
	defer es.pop(node)
	switch layoutOf(node) {
	case layoutInline:
		es.writeHeader(key, hasKey, len(node.Values), nil)
		if len(node.Values) == 0 {
			return nil
		}
		es.write(" ")
		for i, v := range node.Values {
			if i > 0 {
				es.writeDelim()
			}
			if err := es.writeScalar(v); err != nil {
				return err
			}
		}
		return nil
	case layoutTabular:
		fields := make([]string, len(node.Values[0].Fields))
		for i, f := range node.Values[0].Fields {
			fields[i] = f.String
		}
		es.writeHeader(key, hasKey, len(node.Values), fields)
		for _, elem := range node.Values {
			es.newline(depth + 1)
			for i, f := range fields {
				if i > 0 {
					es.writeDelim()
				}
				cell := ir.Get(elem, f)
				if cell == nil {
					cell = ir.Null()
				}
				if err := es.writeScalar(cell); err != nil {
					return err
				}
			}
		}
		return nil
	default:
		es.writeHeader(key, hasKey, len(node.Values), nil)
		return es.encodeListItems(node, depth+1)
	}
}

// layoutOf selects the array layout: tabular when non-empty and every
// element is a non-empty object with one shared key set and only
// scalar values, inline when every element is a scalar, else a hyphen
// list.
func layoutOf(node *ir.Node) arrayLayout {
	if len(node.Values) == 0 {
		return layoutInline
	}
	if isTabular(node) {
		return layoutTabular
	}
	for _, v := range node.Values {
		if !v.Type.IsLeaf() {
			return layoutList
		}
	}
	return layoutInline
}

func isTabular(node *ir.Node) bool {
	first := node.Values[0]
	if first.Type != ir.ObjectType || len(first.Fields) == 0 {
		return false
	}
	keys := make(map[string]bool, len(first.Fields))
	for _, f := range first.Fields {
		keys[f.String] = true
	}
	for _, elem := range node.Values {
		if elem.Type != ir.ObjectType || len(elem.Fields) != len(keys) {
			return false
		}
		for i, f := range elem.Fields {
			if !keys[f.String] {
				return false
			}
			if !elem.Values[i].Type.IsLeaf() {
				return false
			}
		}
	}
	return true
}

func (es *EncState) writeHeader(key string, hasKey bool, n int, fields []string) {
	if hasKey {
		es.writeKey(key)
	}
	var b strings.Builder
	b.WriteByte('[')
	if es.marker {
		b.WriteByte('#')
	}
	b.WriteString(strconv.Itoa(n))
	if es.delim != token.Comma {
		b.WriteByte(es.delim)
	}
	b.WriteByte(']')
	if fields != nil {
		b.WriteByte('{')
		for i, f := range fields {
			if i > 0 {
				b.WriteByte(es.delim)
			}
			if token.NeedsKeyQuote(f, es.delim) {
				f = token.Quote(f)
			}
			b.WriteString(f)
		}
		b.WriteByte('}')
	}
	es.write(es.color(ir.ArrayType, HeaderColor, b.String()))
	es.writeSep()
}

// List encoding

func (es *EncState) encodeListItems(node *ir.Node, depth int) error {
	for _, elem := range node.Values {
		es.newline(depth)
		switch elem.Type {
		case ir.ObjectType:
			if len(elem.Fields) == 0 {
				es.write(es.color(ir.ArrayType, SepColor, "-"))
				continue
			}
			if err := es.push(elem); err != nil {
				return err
			}
			es.writeHyphen()
			if err := es.encodeItemFirstField(elem.Fields[0].String, elem.Values[0], depth); err != nil {
				es.pop(elem)
				return err
			}
			for i := 1; i < len(elem.Fields); i++ {
				if err := es.encodeField(elem.Fields[i].String, elem.Values[i], depth+1); err != nil {
					es.pop(elem)
					return err
				}
			}
			es.pop(elem)
		case ir.ArrayType:
			es.writeHyphen()
			if err := es.encodeArray("", false, elem, depth+1); err != nil {
				return err
			}
		default:
			es.writeHyphen()
			if err := es.writeScalar(elem); err != nil {
				return err
			}
		}
	}
	return nil
}

// encodeItemFirstField renders the first field of an object list item
// inline after the hyphen, recursing for object and array values.
func (es *EncState) encodeItemFirstField(key string, val *ir.Node, depth int) error {
	switch val.Type {
	case ir.ArrayType:
		return es.encodeArray(key, true, val, depth+1)
	case ir.ObjectType:
		es.writeKey(key)
		es.writeSep()
		if len(val.Fields) == 0 {
			return nil
		}
		return es.encodeObjectBlock(val, depth+2)
	default:
		es.writeKey(key)
		es.writeSep()
		es.write(" ")
		return es.writeScalar(val)
	}
}

// Scalar encoding

func (es *EncState) writeScalar(node *ir.Node) error {
	switch node.Type {
	case ir.NullType:
		es.write(es.color(ir.NullType, ValueColor, "null"))
	case ir.BoolType:
		es.write(es.color(ir.BoolType, ValueColor, strconv.FormatBool(node.Bool)))
	case ir.NumberType:
		v, err := numberText(node)
		if err != nil {
			return err
		}
		es.write(es.color(ir.NumberType, ValueColor, v))
	case ir.StringType:
		v := node.String
		if token.NeedsQuote(v, es.delim) {
			v = token.Quote(v)
		}
		es.write(es.color(ir.StringType, ValueColor, v))
	default:
		return fmt.Errorf("%w: %s is not a scalar", ErrEncoding, node.Type)
	}
	return nil
}

// numberText formats a number: integers verbatim, floats in fixed
// notation with trailing zeros stripped, -0 normalized to 0, and
// non-finite values as null.
func numberText(node *ir.Node) (string, error) {
	if node.Int64 != nil {
		return strconv.FormatInt(*node.Int64, 10), nil
	}
	if node.Float64 == nil {
		return "", fmt.Errorf("%w: number node without a value", ErrEncoding)
	}
	f := *node.Float64
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "null", nil
	}
	v := strconv.FormatFloat(f, 'f', -1, 64)
	if v == "-0" {
		return "0", nil
	}
	return v, nil
}
