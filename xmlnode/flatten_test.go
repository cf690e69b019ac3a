package xmlnode

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/go-voevent/coerce"
	"github.com/signadot/go-voevent/encode"
)

const paramsXML = `<?xml version="1.0"?>
<Group name="g" xmlns:x="http://example.org/x">
  <Param name="flux" value="1.23" dataType="float" unit="Jy"/>
  <Param name="count" value="007"/>
  <Param value="" ucd="meta.id"/>
  <Note x:lang="en">  hello world  </Note>
  <Flag>yes</Flag>
</Group>
`

func mustFlatten(t *testing.T, src string, mode coerce.Mode, strip bool) *Node {
	t.Helper()
	doc, err := LoadBytes([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	n, err := FlattenDocument(doc, mode, strip)
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func TestFlattenNames(t *testing.T) {
	n := mustFlatten(t, paramsXML, coerce.ForceMode, true)
	var names, tags []string
	for _, c := range n.Children {
		names = append(names, c.Name)
		tags = append(tags, c.Tag)
	}
	if n.Name != "g" || n.Tag != "Group" {
		t.Errorf("root: got tag %q name %q", n.Tag, n.Name)
	}
	if diff := cmp.Diff([]string{"flux", "count", "Param", "Note", "Flag"}, names); diff != "" {
		t.Errorf("names (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Param", "Param", "Param", "Note", "Flag"}, tags); diff != "" {
		t.Errorf("tags (-want +got):\n%s", diff)
	}
}

func TestFlattenValues(t *testing.T) {
	n := mustFlatten(t, paramsXML, coerce.ForceMode, true)
	want := []coerce.Value{
		coerce.FromFloat(1.23),
		coerce.FromInt(7),
		coerce.Null(),
		coerce.FromString("hello world"),
		coerce.FromBool(true),
	}
	for i, c := range n.Children {
		if !c.Value.Equal(want[i]) {
			t.Errorf("child %d (%s): got %s(%s), want %s(%s)", i, c.Name, c.Value.Kind, c.Value, want[i].Kind, want[i])
		}
	}
	// "value" is kept raw in the attributes
	v, ok := n.Children[1].Attr("value")
	if !ok || !v.Equal(coerce.FromString("007")) {
		t.Errorf("raw value attribute: got %v %v", v, ok)
	}
	unit, _ := n.Children[0].Attr("unit")
	if !unit.Equal(coerce.FromString("Jy")) {
		t.Errorf("unit: got %v", unit)
	}
}

func TestFlattenText(t *testing.T) {
	stripped := mustFlatten(t, paramsXML, coerce.ForceMode, true)
	note := stripped.Children[3]
	if note.Text == nil || *note.Text != "hello world" {
		t.Errorf("stripped text: got %v", note.Text)
	}
	if stripped.Children[0].Text != nil {
		t.Errorf("empty element has text %q", *stripped.Children[0].Text)
	}
	raw := mustFlatten(t, paramsXML, coerce.ForceMode, false)
	note = raw.Children[3]
	if note.Text == nil || *note.Text != "  hello world  " {
		t.Errorf("unstripped text: got %v", note.Text)
	}
}

func TestFlattenNamespaces(t *testing.T) {
	src := `<v:VOEvent xmlns:v="http://www.ivoa.net/xml/VOEvent/v2.0" xmlns:x="http://example.org/x" x:a="1" b="2"><Who/></v:VOEvent>`
	n := mustFlatten(t, src, coerce.ForceMode, true)
	if n.Tag != "{http://www.ivoa.net/xml/VOEvent/v2.0}VOEvent" {
		t.Errorf("tag: got %q", n.Tag)
	}
	var keys []string
	for _, a := range n.Attrs {
		keys = append(keys, a.Key)
	}
	if diff := cmp.Diff([]string{"{http://example.org/x}a", "b"}, keys); diff != "" {
		t.Errorf("attribute keys (-want +got):\n%s", diff)
	}
	if n.Children[0].Tag != "Who" {
		t.Errorf("child tag: got %q", n.Children[0].Tag)
	}
}

func TestFlattenModes(t *testing.T) {
	src := `<P value="12" dataType="string" n="3"/>`
	tests := []struct {
		mode      coerce.Mode
		wantValue coerce.Value
		wantAttr  coerce.Value
	}{
		{coerce.ForceMode, coerce.FromInt(12), coerce.FromInt(3)},
		{coerce.AlwaysMode, coerce.FromString("12"), coerce.FromInt(3)},
		{coerce.GivenMode, coerce.FromString("12"), coerce.FromString("3")},
		{coerce.NoneMode, coerce.FromString("12"), coerce.FromString("3")},
	}
	for _, tt := range tests {
		n := mustFlatten(t, src, tt.mode, true)
		if !n.Value.Equal(tt.wantValue) {
			t.Errorf("%s value: got %s(%s)", tt.mode, n.Value.Kind, n.Value)
		}
		a, _ := n.Attr("n")
		if !a.Equal(tt.wantAttr) {
			t.Errorf("%s attr: got %s(%s)", tt.mode, a.Kind, a)
		}
	}
}

func TestFlattenDeclaredError(t *testing.T) {
	doc, err := LoadBytes([]byte(`<G><P value="abc" dataType="int"/></G>`))
	if err != nil {
		t.Fatal(err)
	}
	_, err = FlattenDocument(doc, coerce.GivenMode, true)
	if !errors.Is(err, coerce.ErrCoerce) {
		t.Fatalf("expected ErrCoerce, got %v", err)
	}
	// Force does not apply declared types
	if _, err := FlattenDocument(doc, coerce.ForceMode, true); err != nil {
		t.Fatal(err)
	}
}

func TestFlattenPure(t *testing.T) {
	doc, err := LoadBytes([]byte(paramsXML))
	if err != nil {
		t.Fatal(err)
	}
	a, err := FlattenDocument(doc, coerce.ForceMode, true)
	if err != nil {
		t.Fatal(err)
	}
	b, err := FlattenDocument(doc, coerce.ForceMode, true)
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(a, b) {
		t.Fatal("flattening twice gave different trees")
	}
	a.Attrs[0].Value = coerce.FromString("changed")
	if Equal(a, b) {
		t.Fatal("flattened trees share attributes")
	}
	if v, _ := Attr(doc.Root(), "name"); v != "g" {
		t.Errorf("source tree mutated: name=%q", v)
	}
}

func TestFlattenChildren(t *testing.T) {
	doc, err := LoadBytes([]byte(paramsXML))
	if err != nil {
		t.Fatal(err)
	}
	kids, err := FlattenChildren(doc.Root(), coerce.ForceMode, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(kids) != 5 {
		t.Fatalf("got %d children", len(kids))
	}
}

func TestNodeIR(t *testing.T) {
	n := mustFlatten(t, `<E name="e" when="2020-01-02 03:04:05.5">12</E>`, coerce.ForceMode, true)
	y, err := n.IR()
	if err != nil {
		t.Fatal(err)
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(y, buf); err != nil {
		t.Fatal(err)
	}
	want := `{
  "tag": "E",
  "name": "e",
  "text": "12",
  "attributes": {
    "name": "e",
    "when": "2020-01-02T03:04:05.500000"
  },
  "value": 12,
  "children": []
}
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := LoadBytes([]byte("<a>")); !errors.Is(err, ErrLoad) {
		t.Errorf("unterminated: got %v", err)
	}
	if _, err := LoadBytes([]byte("")); err == nil {
		t.Error("empty input: expected error")
	}
}

func TestFind(t *testing.T) {
	doc, err := LoadBytes([]byte(`<r><a><b><c>x</c></b></a></r>`))
	if err != nil {
		t.Fatal(err)
	}
	if got := Text(Find(doc.Root(), "a/b/c")); got != "x" {
		t.Errorf("Find: got %q", got)
	}
	if Find(doc.Root(), "a/z/c") != nil {
		t.Error("Find: expected nil for missing step")
	}
}
