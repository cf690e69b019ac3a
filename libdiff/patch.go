package libdiff

import (
	"bytes"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/signadot/go-voevent/encode"
	"github.com/signadot/go-voevent/ir"
)

func wireJSON(node *ir.Node) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf, encode.EncodeWire(true)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MergePatch returns the RFC 7386 merge patch turning from into to.
func MergePatch(from, to *ir.Node) ([]byte, error) {
	a, err := wireJSON(from)
	if err != nil {
		return nil, err
	}
	b, err := wireJSON(to)
	if err != nil {
		return nil, err
	}
	patch, err := jsonpatch.CreateMergePatch(a, b)
	if err != nil {
		return nil, fmt.Errorf("cannot create merge patch: %w", err)
	}
	return patch, nil
}

// ApplyMergePatch applies a merge patch to doc and returns the resulting
// JSON.
func ApplyMergePatch(doc *ir.Node, patch []byte) ([]byte, error) {
	d, err := wireJSON(doc)
	if err != nil {
		return nil, err
	}
	res, err := jsonpatch.MergePatch(d, patch)
	if err != nil {
		return nil, fmt.Errorf("cannot apply merge patch: %w", err)
	}
	return res, nil
}

// ApplyPatch applies an RFC 6902 JSON patch to doc.
func ApplyPatch(doc *ir.Node, patch []byte) ([]byte, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("cannot decode json patch: %w", err)
	}
	d, err := wireJSON(doc)
	if err != nil {
		return nil, err
	}
	res, err := ops.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("cannot apply json patch: %w", err)
	}
	return res, nil
}
