package ir

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
)

// FromJSON converts a JSON document to IR, preserving object field
// order. Numbers without a fractional part or exponent that fit an
// int64 become integer nodes.
func FromJSON(d []byte) (*Node, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	node, err := fromJSON(dec)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrJSON, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after document", ErrJSON)
	}
	return node, nil
}

func fromJSON(dec *json.Decoder) (*Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			obj := &Node{Type: ObjectType}
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("object key %v is not a string", keyTok)
				}
				val, err := fromJSON(dec)
				if err != nil {
					return nil, err
				}
				obj.Set(key, val)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return obj, nil
		case '[':
			arr := &Node{Type: ArrayType}
			for dec.More() {
				val, err := fromJSON(dec)
				if err != nil {
					return nil, err
				}
				arr.Append(val)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return arr, nil
		default:
			return nil, fmt.Errorf("unexpected delimiter %v", t)
		}
	case string:
		return FromString(t), nil
	case bool:
		return FromBool(t), nil
	case json.Number:
		if i, err := strconv.ParseInt(string(t), 10, 64); err == nil {
			return FromInt(i), nil
		}
		f, err := t.Float64()
		if err != nil {
			return nil, err
		}
		return FromFloat(f), nil
	case nil:
		return Null(), nil
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

// JSON renders the node as JSON text. Object field order is kept.
// Non-finite floats are not representable in JSON and become null.
func (y *Node) JSON() ([]byte, error) {
	buf, err := y.appendJSON(nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrJSON, err)
	}
	return buf, nil
}

// MustJSON is JSON for known-good trees, as in tests.
func (y *Node) MustJSON() string {
	d, err := y.JSON()
	if err != nil {
		panic(err)
	}
	return string(d)
}

func (y *Node) appendJSON(buf []byte) ([]byte, error) {
	var err error
	switch y.Type {
	case NullType:
		return append(buf, "null"...), nil
	case BoolType:
		return strconv.AppendBool(buf, y.Bool), nil
	case NumberType:
		if y.Int64 != nil {
			return strconv.AppendInt(buf, *y.Int64, 10), nil
		}
		if y.Float64 == nil {
			return nil, fmt.Errorf("number node without a value")
		}
		f := *y.Float64
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return append(buf, "null"...), nil
		}
		return strconv.AppendFloat(buf, f, 'f', -1, 64), nil
	case StringType:
		return appendJSONString(buf, y.String)
	case ArrayType:
		buf = append(buf, '[')
		for i, v := range y.Values {
			if i > 0 {
				buf = append(buf, ',')
			}
			buf, err = v.appendJSON(buf)
			if err != nil {
				return nil, err
			}
		}
		return append(buf, ']'), nil
	case ObjectType:
		buf = append(buf, '{')
		for i, f := range y.Fields {
			if i > 0 {
				buf = append(buf, ',')
			}
			buf, err = appendJSONString(buf, f.String)
			if err != nil {
				return nil, err
			}
			buf = append(buf, ':')
			buf, err = y.Values[i].appendJSON(buf)
			if err != nil {
				return nil, err
			}
		}
		return append(buf, '}'), nil
	default:
		return nil, fmt.Errorf("unencodable type %s", y.Type)
	}
}

func appendJSONString(buf []byte, s string) ([]byte, error) {
	d, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return append(buf, d...), nil
}
