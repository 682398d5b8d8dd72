package toon

import (
	"strings"

	"github.com/jitendra-neema/toon-format/encode"
	"github.com/jitendra-neema/toon-format/ir"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type DiffConfig struct {
	Color bool
}

type DiffOpt func(*DiffConfig)

func DiffColor(v bool) DiffOpt {
	return func(c *DiffConfig) { c.Color = v }
}

// Diff produces a line-based comparison of the canonical encodings
// of from and to. If there are no differences, Diff returns the
// empty string. Deleted lines are prefixed "- ", inserted lines
// "+ ", and unchanged context "  ".
func Diff(from, to *ir.Node, opts ...DiffOpt) (string, error) {
	cfg := &DiffConfig{}
	for _, f := range opts {
		f(cfg)
	}
	if ir.Equal(from, to) {
		return "", nil
	}
	fromText, err := encode.String(from)
	if err != nil {
		return "", err
	}
	toText, err := encode.String(to)
	if err != nil {
		return "", err
	}
	if fromText == toText {
		return "", nil
	}
	dmp := diffpatch.New()
	a, b, lineArr := dmp.DiffLinesToChars(fromText+"\n", toText+"\n")
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineArr)

	var sb strings.Builder
	for i := range diffs {
		d := &diffs[i]
		for _, ln := range splitDiffLines(d.Text) {
			switch d.Type {
			case diffpatch.DiffDelete:
				sb.WriteString(diffLine(cfg, "- ", ln, color.RedString))
			case diffpatch.DiffInsert:
				sb.WriteString(diffLine(cfg, "+ ", ln, color.GreenString))
			default:
				sb.WriteString("  " + ln + "\n")
			}
		}
	}
	return sb.String(), nil
}

func splitDiffLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return []string{""}
	}
	return strings.Split(text, "\n")
}

func diffLine(cfg *DiffConfig, prefix, ln string, paint func(string, ...any) string) string {
	s := prefix + ln
	if cfg.Color {
		s = paint("%s", s)
	}
	return s + "\n"
}
