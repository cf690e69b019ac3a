package ir

import (
	"fmt"
)

type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string
	Fields      []*Node
	Values      []*Node

	String  string
	Bool    bool
	Float64 *float64
	Int64   *int64
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
	}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func Null() *Node {
	return &Node{Type: NullType}
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals builds an object preserving the order of kvs.  Keys must be
// distinct.
func FromKeyVals(kvs []KeyVal) (*Node, error) {
	res := &Node{Type: ObjectType}
	res.Fields = make([]*Node, len(kvs))
	res.Values = make([]*Node, len(kvs))
	seen := make(map[string]bool, len(kvs))
	for i := range kvs {
		kv := &kvs[i]
		if seen[kv.Key] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateField, kv.Key)
		}
		seen[kv.Key] = true
		key := &Node{
			Type:        StringType,
			String:      kv.Key,
			Parent:      res,
			ParentIndex: i,
			ParentField: kv.Key,
		}
		val := kv.Val
		if val == nil {
			val = Null()
		}
		val.Parent = res
		val.ParentIndex = i
		val.ParentField = kv.Key
		res.Fields[i] = key
		res.Values[i] = val
	}
	return res, nil
}

// MustKeyVals is FromKeyVals for statically known keys.
func MustKeyVals(kvs ...KeyVal) *Node {
	res, err := FromKeyVals(kvs)
	if err != nil {
		panic(err)
	}
	return res
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type: ArrayType,
	}
	res.Values = make([]*Node, len(ySlice))
	for i, y := range ySlice {
		res.Values[i] = y
		y.Parent = res
		y.ParentIndex = i
	}
	return res
}

func Get(y *Node, field string) *Node {
	n := len(y.Fields)
	for i := range n {
		if y.Fields[i].String == field {
			return y.Values[i]
		}
	}
	return nil
}
