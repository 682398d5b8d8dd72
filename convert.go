package toon

import (
	"errors"
	"fmt"
	"math"

	"github.com/jitendra-neema/toon-format/ir"

	"github.com/goccy/go-yaml"
)

// ErrConvert reports a value that cannot cross a format bridge.
var ErrConvert = errors.New("conversion error")

// FromJSON converts JSON text to IR, preserving object field order.
func FromJSON(d []byte) (*ir.Node, error) {
	return ir.FromJSON(d)
}

// ToJSON renders a decoded document as JSON text.
func ToJSON(node *ir.Node) ([]byte, error) {
	return node.JSON()
}

// FromYAML converts a YAML document to IR. Mappings keep their field
// order.
func FromYAML(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConvert, err)
	}
	return fromYAMLValue(v)
}

// ToYAML renders a decoded document as YAML.
func ToYAML(node *ir.Node) ([]byte, error) {
	v, err := toYAMLValue(node)
	if err != nil {
		return nil, err
	}
	d, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConvert, err)
	}
	return d, nil
}

func fromYAMLValue(v any) (*ir.Node, error) {
	switch t := v.(type) {
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(t), nil
	case string:
		return ir.FromString(t), nil
	case int:
		return ir.FromInt(int64(t)), nil
	case int64:
		return ir.FromInt(t), nil
	case uint64:
		if t <= math.MaxInt64 {
			return ir.FromInt(int64(t)), nil
		}
		return ir.FromFloat(float64(t)), nil
	case float64:
		return ir.FromFloat(t), nil
	case []any:
		arr := &ir.Node{Type: ir.ArrayType}
		for _, e := range t {
			v, err := fromYAMLValue(e)
			if err != nil {
				return nil, err
			}
			arr.Append(v)
		}
		return arr, nil
	case yaml.MapSlice:
		obj := &ir.Node{Type: ir.ObjectType}
		for _, item := range t {
			key, ok := item.Key.(string)
			if !ok {
				key = fmt.Sprintf("%v", item.Key)
			}
			val, err := fromYAMLValue(item.Value)
			if err != nil {
				return nil, err
			}
			obj.Set(key, val)
		}
		return obj, nil
	default:
		return nil, fmt.Errorf("%w: unsupported YAML value of type %T", ErrConvert, v)
	}
}

func toYAMLValue(node *ir.Node) (any, error) {
	switch node.Type {
	case ir.NullType:
		return nil, nil
	case ir.BoolType:
		return node.Bool, nil
	case ir.StringType:
		return node.String, nil
	case ir.NumberType:
		if node.Int64 != nil {
			return *node.Int64, nil
		}
		if node.Float64 != nil {
			return *node.Float64, nil
		}
		return nil, fmt.Errorf("%w: number node without a value", ErrConvert)
	case ir.ArrayType:
		res := make([]any, 0, len(node.Values))
		for _, v := range node.Values {
			e, err := toYAMLValue(v)
			if err != nil {
				return nil, err
			}
			res = append(res, e)
		}
		return res, nil
	case ir.ObjectType:
		res := make(yaml.MapSlice, 0, len(node.Fields))
		for i, f := range node.Fields {
			v, err := toYAMLValue(node.Values[i])
			if err != nil {
				return nil, err
			}
			res = append(res, yaml.MapItem{Key: f.String, Value: v})
		}
		return res, nil
	default:
		return nil, fmt.Errorf("%w: unsupported type %s", ErrConvert, node.Type)
	}
}
