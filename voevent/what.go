package voevent

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
	"github.com/signadot/go-voevent/coerce"
	"github.com/signadot/go-voevent/ir"
	"github.com/signadot/go-voevent/xmlnode"
)

// Param is a measured value.  Unit and UCD are empty when the Param does not
// carry them.
type Param struct {
	Value coerce.Value
	Unit  string
	UCD   string
}

// Entry holds exactly one of Param or Group.
type Entry struct {
	Param *Param
	Group *Group
}

func (e Entry) IsGroup() bool { return e.Group != nil }

// Group is an ordered mapping from names to entries.  Setting a name a
// second time replaces its entry but keeps its original position.
type Group struct {
	names   []string
	entries map[string]Entry
}

func NewGroup() *Group {
	return &Group{entries: map[string]Entry{}}
}

func (g *Group) Set(name string, e Entry) {
	if _, ok := g.entries[name]; !ok {
		g.names = append(g.names, name)
	}
	g.entries[name] = e
}

func (g *Group) Get(name string) (Entry, bool) {
	if g == nil {
		return Entry{}, false
	}
	e, ok := g.entries[name]
	return e, ok
}

// Names returns the entry names in document order.
func (g *Group) Names() []string {
	if g == nil {
		return nil
	}
	return append([]string(nil), g.names...)
}

func (g *Group) Len() int {
	if g == nil {
		return 0
	}
	return len(g.names)
}

// Param follows path through nested groups, for example "Group.flux".
func (g *Group) Param(path string) (*Param, bool) {
	parts := strings.Split(path, ".")
	cur := g
	for i, p := range parts {
		e, ok := cur.Get(p)
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return e.Param, e.Param != nil
		}
		if e.Group == nil {
			return nil, false
		}
		cur = e.Group
	}
	return nil, false
}

// Walk calls f for every Param in depth first document order with its dotted
// path.
func (g *Group) Walk(f func(path string, p *Param)) {
	g.walk("", f)
}

func (g *Group) walk(prefix string, f func(string, *Param)) {
	for _, name := range g.Names() {
		e := g.entries[name]
		path := prefix + name
		if e.Group != nil {
			e.Group.walk(path+".", f)
			continue
		}
		f(path, e.Param)
	}
}

func (p *Param) IR() *ir.Node {
	return ir.MustKeyVals(
		ir.KeyVal{Key: "value", Val: p.Value.IR()},
		ir.KeyVal{Key: "unit", Val: optString(p.Unit)},
		ir.KeyVal{Key: "ucd", Val: optString(p.UCD)},
	)
}

func (g *Group) IR() *ir.Node {
	kvs := make([]ir.KeyVal, 0, g.Len())
	for _, name := range g.Names() {
		e := g.entries[name]
		if e.Group != nil {
			kvs = append(kvs, ir.KeyVal{Key: name, Val: e.Group.IR()})
			continue
		}
		kvs = append(kvs, ir.KeyVal{Key: name, Val: e.Param.IR()})
	}
	return ir.MustKeyVals(kvs...)
}

func optString(s string) *ir.Node {
	if s == "" {
		return ir.Null()
	}
	return ir.FromString(s)
}

func (d *Document) parseWhat(el *etree.Element) error {
	g, err := d.whatGroup(el)
	if err != nil {
		return err
	}
	d.What = g
	d.trace("what", "params", g.Len())
	return nil
}

func (d *Document) whatGroup(el *etree.Element) (*Group, error) {
	g := NewGroup()
	for _, c := range el.ChildElements() {
		if c.NamespaceURI() != "" || (c.Tag != "Param" && c.Tag != "Group") {
			continue
		}
		name, _ := xmlnode.Attr(c, "name")
		if name == "" {
			return nil, fmt.Errorf("%w: %s at %s", ErrMissingName, c.Tag, c.GetPath())
		}
		if c.Tag == "Group" {
			sub, err := d.whatGroup(c)
			if err != nil {
				return nil, err
			}
			g.Set(name, Entry{Group: sub})
			continue
		}
		raw, _ := xmlnode.Attr(c, "value")
		dataType, _ := xmlnode.Attr(c, "dataType")
		v, err := coerce.Coerce(raw, d.opts.conversion, dataType)
		if err != nil {
			return nil, fmt.Errorf("param %q: %w", name, err)
		}
		unit, _ := xmlnode.Attr(c, "unit")
		ucd, _ := xmlnode.Attr(c, "ucd")
		g.Set(name, Entry{Param: &Param{Value: v, Unit: unit, UCD: ucd}})
	}
	return g, nil
}
