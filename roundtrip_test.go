package toon

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jitendra-neema/toon-format/encode"
	"github.com/jitendra-neema/toon-format/ir"
)

func kv(k string, v *ir.Node) ir.KeyVal {
	return ir.KeyVal{Key: ir.FromString(k), Val: v}
}

// Trees whose encoding decodes back to the identical tree.
func roundTrippers() map[string]*ir.Node {
	return map[string]*ir.Node{
		"null":   ir.Null(),
		"bool":   ir.FromBool(false),
		"int":    ir.FromInt(-42),
		"float":  ir.FromFloat(1.5),
		"string": ir.FromString("hello"),
		"spaced": ir.FromString("hello world"),
		"empty":  ir.FromString(""),
		"flat": ir.FromKeyVals([]ir.KeyVal{
			kv("name", ir.FromString("alice")),
			kv("age", ir.FromInt(30)),
			kv("score", ir.FromFloat(99.5)),
			kv("ok", ir.FromBool(true)),
			kv("gone", ir.Null()),
		}),
		"nested": ir.FromKeyVals([]ir.KeyVal{
			kv("a", ir.FromKeyVals([]ir.KeyVal{
				kv("b", ir.FromKeyVals([]ir.KeyVal{kv("c", ir.FromInt(1))})),
			})),
		}),
		"inline": ir.FromKeyVals([]ir.KeyVal{
			kv("tags", ir.FromSlice([]*ir.Node{
				ir.FromString("x"), ir.FromString("y"), ir.FromString("z"),
			})),
		}),
		"empty array": ir.FromKeyVals([]ir.KeyVal{
			kv("tags", ir.FromSlice(nil)),
		}),
		"tabular": ir.FromSlice([]*ir.Node{
			ir.FromKeyVals([]ir.KeyVal{kv("id", ir.FromInt(1)), kv("name", ir.FromString("alice"))}),
			ir.FromKeyVals([]ir.KeyVal{kv("id", ir.FromInt(2)), kv("name", ir.FromString("bob"))}),
		}),
		"list": ir.FromSlice([]*ir.Node{
			ir.FromInt(1),
			ir.FromKeyVals([]ir.KeyVal{
				kv("meta", ir.FromKeyVals([]ir.KeyVal{kv("x", ir.FromInt(1))})),
				kv("id", ir.FromInt(7)),
			}),
			ir.FromSlice([]*ir.Node{ir.FromInt(3), ir.FromInt(4)}),
		}),
		"awkward strings": ir.FromSlice([]*ir.Node{
			ir.FromString("true"),
			ir.FromString("null"),
			ir.FromString("123"),
			ir.FromString("-4.5"),
			ir.FromString("a,b"),
			ir.FromString("k: v"),
			ir.FromString("- item"),
			ir.FromString("-"),
			ir.FromString("[3]: x"),
			ir.FromString(`say "hi"`),
			ir.FromString("tab\there"),
			ir.FromString("line\nbreak"),
		}),
		// a quoted pipe must not flip delimiter detection on decode
		"piped strings": ir.FromSlice([]*ir.Node{
			ir.FromString("a|b"),
			ir.FromString("c"),
		}),
		"piped field name": ir.FromSlice([]*ir.Node{
			ir.FromKeyVals([]ir.KeyVal{kv("a|b", ir.FromInt(1)), kv("c", ir.FromInt(2))}),
			ir.FromKeyVals([]ir.KeyVal{kv("a|b", ir.FromInt(3)), kv("c", ir.FromInt(4))}),
		}),
	}
}

func TestEncodeDecodeIdentity(t *testing.T) {
	for name, node := range roundTrippers() {
		t.Run(name, func(t *testing.T) {
			text, err := String(node)
			if err != nil {
				t.Fatalf("encode: %v", err)
			}
			back, err := Decode([]byte(text))
			if err != nil {
				t.Fatalf("decode of %q: %v", text, err)
			}
			if !ir.Equal(node, back) {
				t.Errorf("round trip of %q drifted:\nencoded: %q\ngot JSON: %s\nwant JSON: %s",
					name, text, back.MustJSON(), node.MustJSON())
			}
		})
	}
}

func TestDelimiterRoundTrip(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{
		kv("rows", ir.FromSlice([]*ir.Node{
			ir.FromKeyVals([]ir.KeyVal{kv("id", ir.FromInt(1)), kv("desc", ir.FromString("a,b"))}),
			ir.FromKeyVals([]ir.KeyVal{kv("id", ir.FromInt(2)), kv("desc", ir.FromString("c d"))}),
		})),
	})
	for name, opt := range map[string]encode.EncodeOption{
		"comma": encode.Delimiter(','),
		"tab":   encode.Delimiter('\t'),
		"pipe":  encode.Delimiter('|'),
	} {
		t.Run(name, func(t *testing.T) {
			text, err := String(node, opt)
			if err != nil {
				t.Fatalf("encode: %v", err)
			}
			back, err := Decode([]byte(text))
			if err != nil {
				t.Fatalf("decode of %q: %v", text, err)
			}
			if !ir.Equal(node, back) {
				t.Errorf("%s round trip drifted:\n%q\n%s", name, text, back.MustJSON())
			}
		})
	}
}

// Two encode passes over the same document must agree: whatever the
// first decode recovered, its rendering re-decodes to the same text.
func TestTextStability(t *testing.T) {
	docs := []string{
		"",
		"hello",
		"1e3",
		"a: 1\nb: two",
		"config:",
		"tags[3]: a,b,c",
		"users[2]{id,name}:\n  1,alice\n  2,bob",
		"items[2]:\n  - id: 1\n    name: alice\n  - 5",
		"matrix[2]:\n  - [2]: 1,2\n  - [2]: 3,4",
		"a: 1\n???\nb: 2",
		"rows[2]{a,b}:\n  1\n  2,3",
	}
	for _, doc := range docs {
		n1, err := Decode([]byte(doc))
		if err != nil {
			t.Fatalf("decode %q: %v", doc, err)
		}
		e1, err := String(n1)
		if err != nil {
			t.Fatalf("encode %q: %v", doc, err)
		}
		n2, err := Decode([]byte(e1))
		if err != nil {
			t.Fatalf("re-decode %q: %v", e1, err)
		}
		e2, err := String(n2)
		if err != nil {
			t.Fatalf("re-encode %q: %v", e1, err)
		}
		if d := cmp.Diff(e1, e2); d != "" {
			t.Errorf("unstable encoding for %q (-first +second):\n%s", doc, d)
		}
	}
}
