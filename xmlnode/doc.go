// Package xmlnode converts arbitrary XML element trees into generic,
// typed Node trees.
//
// Every attribute and each element's primary value go through package
// coerce, so numbers, booleans and timestamps come out typed while the
// original text stays available.  A Node carries:
//
//   - Tag: the element name, in {namespace}local form when namespaced
//   - Name: the "name" attribute if present, else Tag
//   - Text: the element text (optionally trimmed), nil when empty
//   - Attrs: coerced attributes in document order; "value" is kept raw
//   - Value: the coerced "value" attribute, else the coerced text, else null
//   - Children: flattened child elements in document order
//
// Flatten never modifies its input and returns a fresh tree each call.
// IR converts a Node to an ir.Node with field order tag, name, text,
// attributes, value, children, which encodes to the JSON layout
// downstream tools expect.
package xmlnode
