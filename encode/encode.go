package encode

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/signadot/go-voevent/format"
	"github.com/signadot/go-voevent/ir"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	depth, indent int

	format format.Format
	wire   bool

	Color func(ir.Type, ColorAttr, string) string
}

func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if es.format.IsYAML() {
		return encodeYAML(node, w, es)
	}
	if err := encode(node, w, es); err != nil {
		return err
	}
	return writeString(w, "\n")
}

// Helper functions for writing
func writeNL(w io.Writer, es *EncState) error {
	if es.wire {
		return nil
	}
	return writeString(w, "\n"+strings.Repeat(" ", es.indent*es.depth))
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func applyColor(es *EncState, nodeType ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(nodeType, attr, v)
}

func writeSep(w io.Writer, es *EncState, cType ir.Type, sep string) error {
	return writeString(w, applyColor(es, cType, SepColor, sep))
}

// Main encode function

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.ObjectType:
		return encodeObject(node, w, es)
	case ir.ArrayType:
		return encodeArray(node, w, es)
	case ir.StringType:
		return writeString(w, applyColor(es, ir.StringType, ValueColor, Quote(node.String)))
	case ir.NumberType:
		return encodeNumber(node, w, es)
	case ir.BoolType:
		return writeString(w, applyColor(es, ir.BoolType, ValueColor, strconv.FormatBool(node.Bool)))
	case ir.NullType:
		return writeString(w, applyColor(es, ir.NullType, ValueColor, "null"))
	default:
		return fmt.Errorf("%w: unknown node type %s at %s", ErrEncoding, node.Type, node.Path())
	}
}

func encodeObject(node *ir.Node, w io.Writer, es *EncState) error {
	n := len(node.Fields)
	if n == 0 {
		return writeSep(w, es, ir.ObjectType, "{}")
	}
	if err := writeSep(w, es, ir.ObjectType, "{"); err != nil {
		return err
	}
	es.depth++
	for i, field := range node.Fields {
		if field.Type != ir.StringType {
			return fmt.Errorf("%w: %s field at %s", ErrEncoding, field.Type, node.Path())
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		key := applyColor(es, ir.ObjectType, FieldColor, Quote(field.String))
		if err := writeString(w, key); err != nil {
			return err
		}
		colon := ": "
		if es.wire {
			colon = ":"
		}
		if err := writeSep(w, es, ir.ObjectType, colon); err != nil {
			return err
		}
		if err := encode(node.Values[i], w, es); err != nil {
			return err
		}
		if i < n-1 {
			if err := writeSep(w, es, ir.ObjectType, ","); err != nil {
				return err
			}
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeSep(w, es, ir.ObjectType, "}")
}

func encodeArray(node *ir.Node, w io.Writer, es *EncState) error {
	n := len(node.Values)
	if n == 0 {
		return writeSep(w, es, ir.ArrayType, "[]")
	}
	if err := writeSep(w, es, ir.ArrayType, "["); err != nil {
		return err
	}
	es.depth++
	for i, v := range node.Values {
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encode(v, w, es); err != nil {
			return err
		}
		if i < n-1 {
			if err := writeSep(w, es, ir.ArrayType, ","); err != nil {
				return err
			}
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeSep(w, es, ir.ArrayType, "]")
}

func encodeNumber(node *ir.Node, w io.Writer, es *EncState) error {
	var v string
	switch {
	case node.Int64 != nil:
		v = strconv.FormatInt(*node.Int64, 10)
	case node.Float64 != nil:
		v = ir.FormatFloat(*node.Float64)
		switch v {
		case "NaN", "Infinity", "-Infinity":
			// not representable in JSON
			v = Quote(v)
		}
	default:
		return fmt.Errorf("%w: number without value at %s", ErrEncoding, node.Path())
	}
	return writeString(w, applyColor(es, ir.NumberType, ValueColor, v))
}
