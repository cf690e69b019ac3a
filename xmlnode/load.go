package xmlnode

import (
	"fmt"
	"io"

	"github.com/beevik/etree"
	"golang.org/x/net/html/charset"
)

func newDocument() *etree.Document {
	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charset.NewReaderLabel
	return doc
}

func checkRoot(doc *etree.Document) (*etree.Document, error) {
	if doc.Root() == nil {
		return nil, ErrNoRoot
	}
	return doc, nil
}

// Load reads an XML document from r.
func Load(r io.Reader) (*etree.Document, error) {
	doc := newDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	return checkRoot(doc)
}

func LoadBytes(d []byte) (*etree.Document, error) {
	doc := newDocument()
	if err := doc.ReadFromBytes(d); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	return checkRoot(doc)
}

func LoadFile(path string) (*etree.Document, error) {
	doc := newDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoad, path, err)
	}
	return checkRoot(doc)
}
