package toon

import (
	"strings"
	"testing"

	"github.com/jitendra-neema/toon-format/ir"
)

func TestDiffEqual(t *testing.T) {
	a := ir.FromKeyVals([]ir.KeyVal{kv("a", ir.FromInt(1))})
	b := ir.FromKeyVals([]ir.KeyVal{kv("a", ir.FromInt(1))})
	d, err := Diff(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if d != "" {
		t.Errorf("Diff of equal documents = %q, want empty", d)
	}
}

func TestDiffLines(t *testing.T) {
	a, err := Decode([]byte("a: 1\nb: 2\nc: 3"))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Decode([]byte("a: 1\nb: 9\nc: 3"))
	if err != nil {
		t.Fatal(err)
	}
	d, err := Diff(a, b)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"  a: 1\n", "- b: 2\n", "+ b: 9\n", "  c: 3\n"} {
		if !strings.Contains(d, want) {
			t.Errorf("diff missing %q:\n%s", want, d)
		}
	}
	if strings.Contains(d, "\x1b[") {
		t.Errorf("uncolored diff contains escape codes:\n%s", d)
	}
}

func TestDiffInsertDelete(t *testing.T) {
	a, err := Decode([]byte("a: 1"))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Decode([]byte("a: 1\nb: 2"))
	if err != nil {
		t.Fatal(err)
	}
	d, err := Diff(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(d, "+ b: 2\n") {
		t.Errorf("insertion not reported:\n%s", d)
	}
	rev, err := Diff(b, a)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(rev, "- b: 2\n") {
		t.Errorf("deletion not reported:\n%s", rev)
	}
}

func TestDiffNumericDrift(t *testing.T) {
	// an int and a float that render identically produce no diff
	a := ir.FromKeyVals([]ir.KeyVal{kv("n", ir.FromInt(1000))})
	b := ir.FromKeyVals([]ir.KeyVal{kv("n", ir.FromFloat(1000))})
	d, err := Diff(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if d != "" {
		t.Errorf("Diff of identical renderings = %q, want empty", d)
	}
}
