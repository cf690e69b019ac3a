// Package voevent validates VOEvent 2.x alert documents and extracts their
// sections into typed values.
//
// A Document wraps an already loaded XML tree and is parsed exactly once:
//
//	doc, err := voevent.ParseFile("alert.xml")
//	if err != nil {
//		return err
//	}
//	if pos := doc.WhereWhen.Position; pos != nil {
//		fmt.Println(pos.RA, pos.Dec)
//	}
//
// Structural problems (root element, version, role, IVORN, duplicated
// sections, unnamed Params and Groups, coordinate systems, citations) are
// reported as errors matching the sentinels in this package.  Leaf values
// are coerced leniently with [coerce.Coerce].
package voevent
