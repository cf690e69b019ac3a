// Package encode renders ir nodes as text.
//
// # Usage
//
//	// JSON with 2-space indentation
//	err := encode.Encode(node, os.Stdout)
//
//	// compact JSON
//	err := encode.Encode(node, w, encode.EncodeWire(true))
//
//	// YAML
//	err := encode.Encode(node, w, encode.EncodeFormat(format.YAMLFormat))
//
// Indented JSON output puts one field or element per line, writes "{}" and
// "[]" for empty containers and escapes non-ASCII characters as \uXXXX.
//
// # Related Packages
//
//   - github.com/signadot/go-voevent/ir - IR representation
//   - github.com/signadot/go-voevent/format - output format selection
package encode
