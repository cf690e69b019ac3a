package voevent

import (
	"github.com/beevik/etree"
	"github.com/signadot/go-voevent/coerce"
	"github.com/signadot/go-voevent/ir"
)

type Who struct {
	Description string
	AuthorIVORN string
	Date        coerce.Value
	Reference   string
	Author      *Author
}

type Author struct {
	Title       string
	Short       string
	Logo        string
	Name        string
	Email       string
	Phone       string
	Contributor string
}

func (d *Document) parseWho(el *etree.Element) error {
	var w Who
	for _, c := range el.ChildElements() {
		if c.NamespaceURI() != "" {
			continue
		}
		switch c.Tag {
		case "Description":
			w.Description = c.Text()
		case "AuthorIVORN":
			w.AuthorIVORN = c.Text()
		case "Date":
			w.Date = coerce.Default(c.Text())
		case "Reference":
			w.Reference = c.Text()
		case "Author":
			w.Author = parseAuthor(c)
		}
	}
	d.Who = w
	d.trace("who", "ivorn", w.AuthorIVORN, "date", w.Date)
	return nil
}

func parseAuthor(el *etree.Element) *Author {
	a := &Author{}
	fields := map[string]*string{
		"title":        &a.Title,
		"shortName":    &a.Short,
		"logoURL":      &a.Logo,
		"contactName":  &a.Name,
		"contactEmail": &a.Email,
		"contactPhone": &a.Phone,
		"contributor":  &a.Contributor,
	}
	for _, c := range el.ChildElements() {
		if p, ok := fields[c.Tag]; ok && c.NamespaceURI() == "" {
			*p = c.Text()
		}
	}
	return a
}

func (a *Author) IR() *ir.Node {
	if a == nil {
		return ir.Null()
	}
	return ir.MustKeyVals(
		ir.KeyVal{Key: "title", Val: optString(a.Title)},
		ir.KeyVal{Key: "short", Val: optString(a.Short)},
		ir.KeyVal{Key: "logo", Val: optString(a.Logo)},
		ir.KeyVal{Key: "name", Val: optString(a.Name)},
		ir.KeyVal{Key: "email", Val: optString(a.Email)},
		ir.KeyVal{Key: "phone", Val: optString(a.Phone)},
		ir.KeyVal{Key: "contributor", Val: optString(a.Contributor)},
	)
}

func (w *Who) IR() *ir.Node {
	return ir.MustKeyVals(
		ir.KeyVal{Key: "description", Val: optString(w.Description)},
		ir.KeyVal{Key: "ivorn", Val: optString(w.AuthorIVORN)},
		ir.KeyVal{Key: "date", Val: w.Date.IR()},
		ir.KeyVal{Key: "reference", Val: optString(w.Reference)},
		ir.KeyVal{Key: "author", Val: w.Author.IR()},
	)
}
