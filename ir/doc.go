// Package ir provides the ordered intermediate representation used to export
// flattened XML trees.
//
// # Overview
//
// A Node is a recursive tagged union: atomic nodes (null, boolean, number,
// string) and composite nodes (object, array).  Unlike a Go map, an object
// node keeps its fields in insertion order, which lets exported documents
// mirror the order of the XML they came from.
//
// For ObjectType nodes, Fields[i] is the key for the value at Values[i].
// Fields are always string typed and distinct.
//
// Number values are placed under Int64 if integral or Float64 otherwise.
//
// # Creating Nodes
//
//	obj := ir.MustKeyVals(
//	    ir.KeyVal{Key: "tag", Val: ir.FromString("Param")},
//	    ir.KeyVal{Key: "value", Val: ir.FromFloat(1.23)},
//	)
//
// # Comparison
//
// Compare orders nodes by type rank then content; object comparison is
// field-order sensitive.  Equal is Compare(a, b) == 0.
//
// # Thread Safety
//
// Node structures are not thread-safe.  Build a separate tree per goroutine.
package ir
