package xmlnode

import (
	"github.com/signadot/go-voevent/coerce"
	"github.com/signadot/go-voevent/ir"
)

type Attribute struct {
	Key   string
	Value coerce.Value
}

type Node struct {
	Tag      string
	Name     string
	Text     *string
	Attrs    []Attribute
	Value    coerce.Value
	Children []*Node
}

// Attr returns the attribute stored under key.
func (n *Node) Attr(key string) (coerce.Value, bool) {
	for i := range n.Attrs {
		if n.Attrs[i].Key == key {
			return n.Attrs[i].Value, true
		}
	}
	return coerce.Value{}, false
}

// Equal reports whether a and b are structurally identical trees.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Tag != b.Tag || a.Name != b.Name || !a.Value.Equal(b.Value) {
		return false
	}
	if (a.Text == nil) != (b.Text == nil) || (a.Text != nil && *a.Text != *b.Text) {
		return false
	}
	if len(a.Attrs) != len(b.Attrs) || len(a.Children) != len(b.Children) {
		return false
	}
	for i := range a.Attrs {
		if a.Attrs[i].Key != b.Attrs[i].Key || !a.Attrs[i].Value.Equal(b.Attrs[i].Value) {
			return false
		}
	}
	for i := range a.Children {
		if !Equal(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}

// IR converts n for export.
func (n *Node) IR() (*ir.Node, error) {
	attrs := make([]ir.KeyVal, len(n.Attrs))
	for i := range n.Attrs {
		attrs[i] = ir.KeyVal{Key: n.Attrs[i].Key, Val: n.Attrs[i].Value.IR()}
	}
	yAttrs, err := ir.FromKeyVals(attrs)
	if err != nil {
		return nil, err
	}
	yChildren, err := SliceIR(n.Children)
	if err != nil {
		return nil, err
	}
	text := ir.Null()
	if n.Text != nil {
		text = ir.FromString(*n.Text)
	}
	return ir.FromKeyVals([]ir.KeyVal{
		{Key: "tag", Val: ir.FromString(n.Tag)},
		{Key: "name", Val: ir.FromString(n.Name)},
		{Key: "text", Val: text},
		{Key: "attributes", Val: yAttrs},
		{Key: "value", Val: n.Value.IR()},
		{Key: "children", Val: yChildren},
	})
}

// SliceIR converts a sequence of nodes, as returned by FlattenChildren, to
// an ir array.
func SliceIR(nodes []*Node) (*ir.Node, error) {
	res := make([]*ir.Node, len(nodes))
	for i, c := range nodes {
		y, err := c.IR()
		if err != nil {
			return nil, err
		}
		res[i] = y
	}
	return ir.FromSlice(res), nil
}
