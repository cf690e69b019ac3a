// Package format enumerates the output formats flattened documents can be
// written in.
package format
