package xmlnode

import (
	"strings"

	"github.com/beevik/etree"
)

// QName returns the tag of el in {namespace}local notation, or the bare
// local name when el is not namespaced.
func QName(el *etree.Element) string {
	if uri := el.NamespaceURI(); uri != "" {
		return "{" + uri + "}" + el.Tag
	}
	return el.Tag
}

const xmlNamespace = "http://www.w3.org/XML/1998/namespace"

func attrQName(a *etree.Attr) string {
	if a.Space == "xml" {
		return "{" + xmlNamespace + "}" + a.Key
	}
	if uri := a.NamespaceURI(); uri != "" {
		return "{" + uri + "}" + a.Key
	}
	return a.Key
}

func isNamespaceDecl(a *etree.Attr) bool {
	return a.Space == "xmlns" || (a.Space == "" && a.Key == "xmlns")
}

// Attr returns the value of the unqualified attribute key.
func Attr(el *etree.Element, key string) (string, bool) {
	for i := range el.Attr {
		a := &el.Attr[i]
		if a.Space == "" && a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

// Children returns the unqualified child elements of el named tag.
func Children(el *etree.Element, tag string) []*etree.Element {
	var res []*etree.Element
	for _, c := range el.ChildElements() {
		if c.Tag == tag && c.NamespaceURI() == "" {
			res = append(res, c)
		}
	}
	return res
}

// Child returns the first unqualified child element of el named tag.
func Child(el *etree.Element, tag string) *etree.Element {
	for _, c := range el.ChildElements() {
		if c.Tag == tag && c.NamespaceURI() == "" {
			return c
		}
	}
	return nil
}

// Find follows a '/' separated path of unqualified tags from el, taking the
// first match at each step.
func Find(el *etree.Element, path string) *etree.Element {
	for _, tag := range strings.Split(path, "/") {
		if el == nil {
			return nil
		}
		el = Child(el, tag)
	}
	return el
}

// Text returns the character data directly following the start tag of el,
// or "" for a nil element.
func Text(el *etree.Element) string {
	if el == nil {
		return ""
	}
	return el.Text()
}
