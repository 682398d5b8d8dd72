package token

import (
	"testing"

	"github.com/jitendra-neema/toon-format/ir"
)

func TestIsNumber(t *testing.T) {
	yes := []string{"0", "7", "-7", "42", "3.14", "-0.5", "1e3", "1E3", "2.5e-2", "-1e+10", "10.0"}
	no := []string{"", "-", ".", "1.", ".5", "1e", "1e+", "abc", "0x10", "1,000", "--1", "1.2.3", "Infinity", "NaN"}
	for _, v := range yes {
		if !IsNumber(v) {
			t.Errorf("IsNumber(%q) = false, want true", v)
		}
	}
	for _, v := range no {
		if IsNumber(v) {
			t.Errorf("IsNumber(%q) = true, want false", v)
		}
	}
}

func TestScalar(t *testing.T) {
	tests := []struct {
		in   string
		want *ir.Node
	}{
		{"null", ir.Null()},
		{"NULL", ir.Null()},
		{"true", ir.FromBool(true)},
		{"False", ir.FromBool(false)},
		{"42", ir.FromInt(42)},
		{"-7", ir.FromInt(-7)},
		{"3.5", ir.FromFloat(3.5)},
		{"1e3", ir.FromFloat(1000)},
		{"9223372036854775807", ir.FromInt(9223372036854775807)},
		// overflows int64, becomes float
		{"9223372036854775808", ir.FromFloat(9223372036854775808)},
		{`"quoted"`, ir.FromString("quoted")},
		{`"with, comma"`, ir.FromString("with, comma")},
		{`"42"`, ir.FromString("42")},
		{"bare", ir.FromString("bare")},
		{"truthy", ir.FromString("truthy")},
		// malformed quoting degrades to a bare string
		{`"unterminated`, ir.FromString(`"unterminated`)},
		{`"bad \q"`, ir.FromString(`"bad \q"`)},
	}
	for _, tt := range tests {
		got := Scalar(tt.in)
		if !ir.Equal(got, tt.want) {
			t.Errorf("Scalar(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}
