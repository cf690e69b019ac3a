package voevent

import (
	"fmt"

	"github.com/beevik/etree"
	"github.com/samber/lo"
	"github.com/signadot/go-voevent/coerce"
	"github.com/signadot/go-voevent/ir"
	"github.com/signadot/go-voevent/xmlnode"
)

// CoordSystems lists the recognized AstroCoordSystem ids.
var CoordSystems = []string{
	"TT-ICRS-TOPO", "UTC-ICRS-TOPO", "TT-FK5-TOPO", "UTC-FK5-TOPO",
	"GPS-ICRS-TOPO", "GPS-FK5-TOPO",
	"TT-ICRS-GEO", "UTC-ICRS-GEO", "TT-FK5-GEO", "UTC-FK5-GEO",
	"GPS-ICRS-GEO",
	"TDB-ICRS-BARY", "TDB-FK5-BARY",
	"UTC-GEOD-TOPO",
}

// Position2D is an equatorial position in degrees.
type Position2D struct {
	RA    float64
	Dec   float64
	Error *float64
}

type WhereWhen struct {
	Position    *Position2D
	CoordSystem string
	Time        coerce.Value
}

func (d *Document) parseWhereWhen(el *etree.Element) error {
	var ww WhereWhen
	loc := xmlnode.Find(el, "ObsDataLocation/ObservationLocation")
	if loc == nil {
		d.WhereWhen = ww
		d.trace("wherewhen", "location", false)
		return nil
	}
	if pos := xmlnode.Find(loc, "AstroCoords/Position2D"); pos != nil {
		p, err := parsePosition(pos)
		if err != nil {
			return err
		}
		ww.Position = p
	}
	if sys := xmlnode.Child(loc, "AstroCoordSystem"); sys != nil {
		id, ok := xmlnode.Attr(sys, "id")
		if ok && !lo.Contains(CoordSystems, id) {
			return fmt.Errorf("%w: %q", ErrInvalidCoordSystem, id)
		}
		ww.CoordSystem = id
	}
	if t := xmlnode.Find(loc, "AstroCoords/Time/TimeInstant/ISOTime"); t != nil {
		ww.Time = coerce.Default(t.Text())
	}
	d.WhereWhen = ww
	d.trace("wherewhen", "system", ww.CoordSystem, "time", ww.Time, "position", ww.Position != nil)
	return nil
}

func parsePosition(pos *etree.Element) (*Position2D, error) {
	if xmlnode.Text(xmlnode.Child(pos, "Name1")) != "RA" || xmlnode.Text(xmlnode.Child(pos, "Name2")) != "Dec" {
		return nil, nil
	}
	var errRadius *float64
	if e := xmlnode.Child(pos, "Error2Radius"); e != nil {
		f, err := coordinate(e)
		if err != nil {
			return nil, err
		}
		errRadius = &f
	}
	c1, c2 := xmlnode.Find(pos, "Value2/C1"), xmlnode.Find(pos, "Value2/C2")
	if c1 == nil || c2 == nil {
		return nil, nil
	}
	ra, err := coordinate(c1)
	if err != nil {
		return nil, err
	}
	dec, err := coordinate(c2)
	if err != nil {
		return nil, err
	}
	return &Position2D{RA: ra, Dec: dec, Error: errRadius}, nil
}

func coordinate(el *etree.Element) (float64, error) {
	v, err := coerce.Coerce(el.Text(), coerce.GivenMode, "float")
	if err != nil || v.Kind != coerce.FloatKind {
		return 0, fmt.Errorf("%w: %s %q", ErrInvalidCoordinate, el.Tag, el.Text())
	}
	return v.Float, nil
}

func (p *Position2D) IR() *ir.Node {
	if p == nil {
		return ir.Null()
	}
	errRadius := ir.Null()
	if p.Error != nil {
		errRadius = ir.FromFloat(*p.Error)
	}
	return ir.MustKeyVals(
		ir.KeyVal{Key: "ra", Val: ir.FromFloat(p.RA)},
		ir.KeyVal{Key: "dec", Val: ir.FromFloat(p.Dec)},
		ir.KeyVal{Key: "error", Val: errRadius},
	)
}

func (ww *WhereWhen) IR() *ir.Node {
	return ir.MustKeyVals(
		ir.KeyVal{Key: "position2d", Val: ww.Position.IR()},
		ir.KeyVal{Key: "system", Val: optString(ww.CoordSystem)},
		ir.KeyVal{Key: "time", Val: ww.Time.IR()},
	)
}
