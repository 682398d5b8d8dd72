package toon

import (
	"fmt"

	"github.com/jitendra-neema/toon-format/ir"

	jsonpatch "github.com/evanphx/json-patch/v5"
)

// MergePatch applies an RFC 7386 merge patch to doc: object fields in
// patch overwrite those in doc, null fields delete them, and
// everything else replaces. Both documents cross through their JSON
// projections.
func MergePatch(doc, patch *ir.Node) (*ir.Node, error) {
	docJSON, err := doc.JSON()
	if err != nil {
		return nil, err
	}
	patchJSON, err := patch.JSON()
	if err != nil {
		return nil, err
	}
	merged, err := jsonpatch.MergePatch(docJSON, patchJSON)
	if err != nil {
		return nil, fmt.Errorf("merge patch: %w", err)
	}
	return ir.FromJSON(merged)
}

// CreateMergePatch computes the RFC 7386 merge patch that transforms
// from into to. The result may be applied with MergePatch.
func CreateMergePatch(from, to *ir.Node) (*ir.Node, error) {
	fromJSON, err := from.JSON()
	if err != nil {
		return nil, err
	}
	toJSON, err := to.JSON()
	if err != nil {
		return nil, err
	}
	d, err := jsonpatch.CreateMergePatch(fromJSON, toJSON)
	if err != nil {
		return nil, fmt.Errorf("create merge patch: %w", err)
	}
	return ir.FromJSON(d)
}

// ApplyPatch applies an RFC 6902 JSON patch, given as a JSON array of
// operations, to doc.
func ApplyPatch(doc *ir.Node, ops []byte) (*ir.Node, error) {
	p, err := jsonpatch.DecodePatch(ops)
	if err != nil {
		return nil, fmt.Errorf("decode patch: %w", err)
	}
	docJSON, err := doc.JSON()
	if err != nil {
		return nil, err
	}
	out, err := p.Apply(docJSON)
	if err != nil {
		return nil, fmt.Errorf("apply patch: %w", err)
	}
	return ir.FromJSON(out)
}
