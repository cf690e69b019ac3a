package voevent

import (
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/go-voevent/coerce"
	"github.com/signadot/go-voevent/xmlnode"
)

func event(rootAttrs, body string) []byte {
	return []byte(fmt.Sprintf(`<?xml version="1.0"?>
<voe:VOEvent xmlns:voe="http://www.ivoa.net/xml/VOEvent/v2.0" %s>%s</voe:VOEvent>`, rootAttrs, body))
}

const okAttrs = `version="2.0" role="observation" ivorn="ivo://example.org/test#1"`

func ts(s string) coerce.Value {
	t, err := time.Parse("2006-01-02T15:04:05.999999", s)
	if err != nil {
		panic(err)
	}
	return coerce.FromTime(t)
}

func TestParseHeader(t *testing.T) {
	d, err := ParseBytes(event(okAttrs, ""))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Identity{Authority: "example.org", ResourceKey: "test", LocalID: "1"}, d.Identity); diff != "" {
		t.Errorf("identity (-want +got):\n%s", diff)
	}
	if d.Role != RoleObservation {
		t.Errorf("role: got %s", d.Role)
	}
	if d.Version != (Version{Major: 2}) {
		t.Errorf("version: got %s", d.Version)
	}
	if d.What.Len() != 0 || d.WhereWhen.Position != nil || d.How.Present || d.Citations != nil {
		t.Errorf("absent sections not left empty")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  []byte
		want error
	}{
		{"role", event(`version="2.0" role="bogus" ivorn="ivo://example.org/test#1"`, ""), ErrInvalidRole},
		{"no role", event(`version="2.0" ivorn="ivo://example.org/test#1"`, ""), ErrInvalidRole},
		{"version 3", event(`version="3.0" role="test" ivorn="ivo://example.org/test#1"`, ""), ErrUnsupportedVersion},
		{"no version", event(`role="test" ivorn="ivo://example.org/test#1"`, ""), ErrUnsupportedVersion},
		{"bad version", event(`version="two" role="test" ivorn="ivo://example.org/test#1"`, ""), ErrUnsupportedVersion},
		{"ivorn no hash", event(`version="2.0" role="test" ivorn="ivo://example.org/test"`, ""), ErrMalformedIvorn},
		{"ivorn segments", event(`version="2.0" role="test" ivorn="ivo://example.org/a/b#1"`, ""), ErrMalformedIvorn},
		{"no ivorn", event(`version="2.0" role="test"`, ""), ErrMalformedIvorn},
		{"root", []byte(`<VOEvent version="2.0" role="test" ivorn="ivo://example.org/test#1"/>`), ErrInvalidRoot},
		{"root ns", []byte(`<VOEvent xmlns="http://example.org/VOEvent/v2.0" version="2.0" role="test" ivorn="ivo://example.org/test#1"/>`), ErrInvalidRoot},
		{"duplicate", event(okAttrs, "<Who/><Who/>"), ErrDuplicateSection},
		{"param name", event(okAttrs, `<What><Param value="1"/></What>`), ErrMissingName},
		{"group name", event(okAttrs, `<What><Group><Param name="a" value="1"/></Group></What>`), ErrMissingName},
		{"coord system", event(okAttrs, `<WhereWhen><ObsDataLocation><ObservationLocation><AstroCoordSystem id="BOGUS"/></ObservationLocation></ObsDataLocation></WhereWhen>`), ErrInvalidCoordSystem},
		{"coordinate", event(okAttrs, `<WhereWhen><ObsDataLocation><ObservationLocation><AstroCoords><Position2D><Name1>RA</Name1><Name2>Dec</Name2><Value2><C1>x</C1><C2>1</C2></Value2></Position2D></AstroCoords></ObservationLocation></ObsDataLocation></WhereWhen>`), ErrInvalidCoordinate},
		{"cite", event(okAttrs, `<Citations><EventIVORN cite="bogus">ivo://a/b#c</EventIVORN></Citations>`), ErrInvalidCitationType},
		{"no cite", event(okAttrs, `<Citations><EventIVORN>ivo://a/b#c</EventIVORN></Citations>`), ErrInvalidCitationType},
		{"citation element", event(okAttrs, `<Citations><Other/></Citations>`), ErrInvalidCitationElement},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseBytes(tt.doc)
			if !errors.Is(err, tt.want) {
				t.Fatalf("got %v, want %v", err, tt.want)
			}
			if !errors.Is(err, ErrVOEvent) {
				t.Errorf("%v does not match ErrVOEvent", err)
			}
			if d != nil {
				t.Error("document returned on failure")
			}
		})
	}
}

func TestParseOnce(t *testing.T) {
	tree, err := xmlnode.LoadBytes(event(okAttrs, ""))
	if err != nil {
		t.Fatal(err)
	}
	d := New(tree)
	if err := d.Parse(); err != nil {
		t.Fatal(err)
	}
	if err := d.Parse(); !errors.Is(err, ErrAlreadyParsed) {
		t.Fatalf("second parse: got %v", err)
	}
}

func TestParseFailureLeavesDocumentEmpty(t *testing.T) {
	tree, err := xmlnode.LoadBytes(event(`version="2.1" role="test" ivorn="ivo://example.org/test#1"`, `<Who><AuthorIVORN>ivo://x/y</AuthorIVORN></Who>
<What><Param name="a" value="1"/></What>
<Citations><Bad/></Citations>`))
	if err != nil {
		t.Fatal(err)
	}
	d := New(tree)
	if err := d.Parse(); !errors.Is(err, ErrInvalidCitationElement) {
		t.Fatalf("got %v", err)
	}
	if d.Who.AuthorIVORN != "" || d.IVORN != "" || d.Identity != (Identity{}) || d.Version != (Version{}) {
		t.Errorf("header or who kept after failure: %+v %+v", d.Identity, d.Who)
	}
	if d.Role != Role(0) || d.What.Len() != 0 || d.Citations != nil {
		t.Errorf("sections kept after failure: role=%s what=%d", d.Role, d.What.Len())
	}
	if err := d.Parse(); !errors.Is(err, ErrAlreadyParsed) {
		t.Fatalf("second parse: got %v", err)
	}
}

func TestParseVersion(t *testing.T) {
	tests := []struct {
		in   string
		want Version
	}{
		{"2", Version{2, 0}},
		{"2.0", Version{2, 0}},
		{"2.1", Version{2, 1}},
		{"2.1.3", Version{2, 1}},
	}
	for _, tt := range tests {
		got, err := ParseVersion(tt.in)
		if err != nil {
			t.Errorf("%q: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%q: got %s want %s", tt.in, got, tt.want)
		}
	}
	for _, bad := range []string{"", "1.0", "3", "2.x", "2..1"} {
		if _, err := ParseVersion(bad); !errors.Is(err, ErrUnsupportedVersion) {
			t.Errorf("%q: got %v", bad, err)
		}
	}
}

func TestParseIVORN(t *testing.T) {
	id, err := ParseIVORN("ivo://nasa.gsfc.gcn/SWIFT#BAT_GRB_Pos_1234567-890")
	if err != nil {
		t.Fatal(err)
	}
	want := Identity{Authority: "nasa.gsfc.gcn", ResourceKey: "SWIFT", LocalID: "BAT_GRB_Pos_1234567-890"}
	if diff := cmp.Diff(want, id); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if id.String() != "ivo://nasa.gsfc.gcn/SWIFT#BAT_GRB_Pos_1234567-890" {
		t.Errorf("String: got %q", id)
	}
	for _, bad := range []string{"", "ivo://a/b#c#d", "ivo://a/b", "ivo://a/b/c#d"} {
		if _, err := ParseIVORN(bad); !errors.Is(err, ErrMalformedIvorn) {
			t.Errorf("%q: got %v", bad, err)
		}
	}
}

func TestRoleText(t *testing.T) {
	for _, r := range Roles() {
		d, err := r.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Role
		if err := back.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if back != r {
			t.Errorf("%s: got %s", r, back)
		}
	}
}

func TestParseFixture(t *testing.T) {
	d, err := ParseFile("testdata/observation.xml")
	if err != nil {
		t.Fatal(err)
	}
	if d.Role != RoleObservation || d.Identity.ResourceKey != "SWIFT" {
		t.Errorf("header: got %s %+v", d.Role, d.Identity)
	}

	wantAuthor := &Author{Short: "VO-GCN", Name: "Scott Barthelmy", Email: "scott.barthelmy@nasa.gov"}
	if diff := cmp.Diff(wantAuthor, d.Who.Author); diff != "" {
		t.Errorf("author (-want +got):\n%s", diff)
	}
	if d.Who.AuthorIVORN != "ivo://nasa.gsfc.tan/gcn" || d.Who.Description != "Swift BAT alert" {
		t.Errorf("who: got %+v", d.Who)
	}
	if !d.Who.Date.Equal(ts("2020-01-02T03:04:05")) {
		t.Errorf("who date: got %s(%s)", d.Who.Date.Kind, d.Who.Date)
	}

	wantWhere := WhereWhen{
		Position:    &Position2D{RA: 123.4567, Dec: -45.6789, Error: ptr(0.05)},
		CoordSystem: "UTC-FK5-GEO",
		Time:        ts("2020-01-02T03:04:05.25"),
	}
	if diff := cmp.Diff(wantWhere, d.WhereWhen, cmp.Comparer(coerce.Value.Equal)); diff != "" {
		t.Errorf("wherewhen (-want +got):\n%s", diff)
	}

	wantHow := How{Present: true, Description: "Swift Satellite, BAT Instrument", Reference: "http://gcn.gsfc.nasa.gov/swift.html"}
	if diff := cmp.Diff(wantHow, d.How); diff != "" {
		t.Errorf("how (-want +got):\n%s", diff)
	}

	name := "GRB 200102A"
	wantWhy := Why{
		Importance: coerce.FromFloat(0.95),
		Inference: &Inference{
			Probability: coerce.FromFloat(0.9),
			Relation:    coerce.FromString("identified"),
			Name:        &name,
			Concept:     []string{"process.variation.burst", "em.gamma"},
		},
	}
	if diff := cmp.Diff(wantWhy, d.Why, cmp.Comparer(coerce.Value.Equal)); diff != "" {
		t.Errorf("why (-want +got):\n%s", diff)
	}

	wantCites := []Citation{
		{Kind: CiteSupersedes, Text: "ivo://nasa.gsfc.gcn/SWIFT#BAT_GRB_Pos_1234567-889"},
		{Kind: CiteDescription, Text: "Updated position"},
		{Kind: CiteFollowUp, Text: "ivo://nasa.gsfc.gcn/SWIFT#BAT_GRB_Pos_1234567-888"},
	}
	if diff := cmp.Diff(wantCites, d.Citations); diff != "" {
		t.Errorf("citations (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff(&Excerpt{Tag: "Note", Text: "first note"}, d.Description); diff != "" {
		t.Errorf("description (-want +got):\n%s", diff)
	}
	if d.Reference != nil {
		t.Errorf("reference: got %+v", d.Reference)
	}
}

func ptr[T any](v T) *T { return &v }

func TestPositionNaming(t *testing.T) {
	pos := func(n1, n2 string) []byte {
		return event(okAttrs, fmt.Sprintf(`<WhereWhen><ObsDataLocation><ObservationLocation><AstroCoords><Position2D>
<Name1>%s</Name1><Name2>%s</Name2><Value2><C1>10.5</C1><C2>-3</C2></Value2>
</Position2D></AstroCoords></ObservationLocation></ObsDataLocation></WhereWhen>`, n1, n2))
	}
	d, err := ParseBytes(pos("RA", "Dec"))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(&Position2D{RA: 10.5, Dec: -3}, d.WhereWhen.Position); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	for _, names := range [][2]string{{"Lon", "Lat"}, {"Dec", "RA"}, {"ra", "dec"}} {
		d, err := ParseBytes(pos(names[0], names[1]))
		if err != nil {
			t.Fatal(err)
		}
		if d.WhereWhen.Position != nil {
			t.Errorf("%v: got position %+v", names, d.WhereWhen.Position)
		}
	}
}

func TestWhereWhenNoLocation(t *testing.T) {
	d, err := ParseBytes(event(okAttrs, `<WhereWhen><ObsDataLocation/></WhereWhen>`))
	if err != nil {
		t.Fatal(err)
	}
	if d.WhereWhen.Position != nil || d.WhereWhen.CoordSystem != "" || !d.WhereWhen.Time.IsNull() {
		t.Errorf("got %+v", d.WhereWhen)
	}
}

func TestParseReader(t *testing.T) {
	f, err := os.Open("testdata/minimal.xml")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	d, err := ParseReader(f)
	if err != nil {
		t.Fatal(err)
	}
	if d.Role != RoleTest || d.IVORN != "ivo://example.org/test#1" {
		t.Errorf("got role %s ivorn %s", d.Role, d.IVORN)
	}
	if d.Description != nil || d.Why.Inference != nil || d.Who.Author != nil {
		t.Error("absent sections not left empty")
	}
}
