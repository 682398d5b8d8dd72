package encode

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/jitendra-neema/toon-format/ir"
)

func obj(kvs ...any) *ir.Node {
	res := &ir.Node{Type: ir.ObjectType}
	for i := 0; i < len(kvs); i += 2 {
		res.Set(kvs[i].(string), kvs[i+1].(*ir.Node))
	}
	return res
}

func arr(vs ...*ir.Node) *ir.Node {
	res := &ir.Node{Type: ir.ArrayType}
	for _, v := range vs {
		res.Append(v)
	}
	return res
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		node *ir.Node
		want string
	}{
		{"null", ir.Null(), "null"},
		{"bool", ir.FromBool(true), "true"},
		{"int", ir.FromInt(-7), "-7"},
		{"float", ir.FromFloat(2.5), "2.5"},
		{"string", ir.FromString("hello"), "hello"},
		{"string with space", ir.FromString("hello world"), `"hello world"`},
		{"empty object", obj(), ""},
		{"empty array", arr(), "[0]:"},
		{
			"flat object",
			obj("name", ir.FromString("alice"), "age", ir.FromInt(30)),
			"name: alice\nage: 30",
		},
		{
			"nested object",
			obj("a", obj("b", ir.FromInt(1))),
			"a:\n  b: 1",
		},
		{
			"empty nested object",
			obj("config", obj()),
			"config:",
		},
		{
			"inline array",
			obj("tags", arr(ir.FromString("a"), ir.FromString("b"), ir.FromString("c"))),
			"tags[3]: a,b,c",
		},
		{
			"root inline array",
			arr(ir.FromInt(1), ir.FromInt(2), ir.FromInt(3)),
			"[3]: 1,2,3",
		},
		{
			"inline array quotes members",
			arr(ir.FromString("a,b"), ir.FromString("true"), ir.FromString("42")),
			`[3]: "a,b","true","42"`,
		},
		{
			"tabular",
			obj("users", arr(
				obj("id", ir.FromInt(1), "name", ir.FromString("alice")),
				obj("id", ir.FromInt(2), "name", ir.FromString("bob")),
			)),
			"users[2]{id,name}:\n  1,alice\n  2,bob",
		},
		{
			"root tabular",
			arr(
				obj("id", ir.FromInt(1)),
				obj("id", ir.FromInt(2)),
			),
			"[2]{id}:\n  1\n  2",
		},
		{
			"mixed array is a list",
			arr(ir.FromInt(1), obj("a", ir.FromInt(2))),
			"[2]:\n  - 1\n  - a: 2",
		},
		{
			"ragged objects are a list",
			arr(
				obj("a", ir.FromInt(1)),
				obj("a", ir.FromInt(2), "b", ir.FromInt(3)),
			),
			"[2]:\n  - a: 1\n  - a: 2\n    b: 3",
		},
		{
			"object values force a list",
			arr(obj("meta", obj("x", ir.FromInt(1)), "id", ir.FromInt(7))),
			"[1]:\n  - meta:\n      x: 1\n    id: 7",
		},
		{
			"nested arrays are a list",
			arr(arr(ir.FromInt(1), ir.FromInt(2)), arr(ir.FromInt(3))),
			"[2]:\n  - [2]: 1,2\n  - [1]: 3",
		},
		{
			"empty object item",
			arr(obj(), ir.FromInt(1)),
			"[2]:\n  -\n  - 1",
		},
		{
			"quoted key",
			obj("full name", ir.FromString("alice")),
			`"full name": alice`,
		},
		{
			"negative zero normalizes",
			arr(ir.FromFloat(math.Copysign(0, -1))),
			"[1]: 0",
		},
		{
			"non-finite floats become null",
			arr(ir.FromFloat(math.Inf(1)), ir.FromFloat(math.NaN())),
			"[2]: null,null",
		},
		{
			"fixed notation floats",
			arr(ir.FromFloat(1e3), ir.FromFloat(0.0001)),
			"[2]: 1000,0.0001",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := String(tt.node)
			if err != nil {
				t.Fatalf("String: %v", err)
			}
			if got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEncodeDelimiters(t *testing.T) {
	users := obj("users", arr(
		obj("id", ir.FromInt(1), "name", ir.FromString("alice")),
	))
	tab, err := String(users, Delimiter('\t'))
	if err != nil {
		t.Fatal(err)
	}
	if tab != "users[1\t]{id\tname}:\n  1\talice" {
		t.Errorf("tab delimiter output %q", tab)
	}
	pipe, err := String(users, Delimiter('|'))
	if err != nil {
		t.Fatal(err)
	}
	if pipe != "users[1|]{id|name}:\n  1|alice" {
		t.Errorf("pipe delimiter output %q", pipe)
	}
}

func TestEncodeOptions(t *testing.T) {
	node := obj("tags", arr(ir.FromString("a")))

	marked, err := String(node, LengthMarker(true))
	if err != nil {
		t.Fatal(err)
	}
	if marked != "tags[#1]: a" {
		t.Errorf("length marker output %q", marked)
	}

	wide, err := String(obj("a", obj("b", ir.FromInt(1))), Indent(4))
	if err != nil {
		t.Fatal(err)
	}
	if wide != "a:\n    b: 1" {
		t.Errorf("indent 4 output %q", wide)
	}

	if _, err := String(node, Indent(0)); !errors.Is(err, ErrInvalidOption) {
		t.Errorf("Indent(0) err = %v, want ErrInvalidOption", err)
	}
	if _, err := String(node, Indent(-1)); !errors.Is(err, ErrInvalidOption) {
		t.Errorf("Indent(-1) err = %v, want ErrInvalidOption", err)
	}
	if _, err := String(node, Delimiter(';')); !errors.Is(err, ErrInvalidOption) {
		t.Errorf("Delimiter(';') err = %v, want ErrInvalidOption", err)
	}
}

func TestEncodeCircular(t *testing.T) {
	selfArr := &ir.Node{Type: ir.ArrayType}
	selfArr.Append(selfArr)

	selfObj := &ir.Node{Type: ir.ObjectType}
	selfObj.Set("self", selfObj)

	for name, node := range map[string]*ir.Node{"array": selfArr, "object": selfObj} {
		var buf bytes.Buffer
		err := Encode(node, &buf)
		if !errors.Is(err, ErrCircularRef) {
			t.Errorf("%s: err = %v, want ErrCircularRef", name, err)
		}
		if buf.Len() != 0 {
			t.Errorf("%s: wrote %q before failing", name, buf.String())
		}
	}
}

func TestEncodeSharedSubtreesAreNotCycles(t *testing.T) {
	shared := obj("x", ir.FromInt(1))
	node := obj("a", shared, "b", shared)
	got, err := String(node)
	if err != nil {
		t.Fatalf("shared subtree: %v", err)
	}
	if got != "a:\n  x: 1\nb:\n  x: 1" {
		t.Errorf("shared subtree output %q", got)
	}
}
