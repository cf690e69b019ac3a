package voevent

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"

	"github.com/beevik/etree"
	"github.com/signadot/go-voevent/coerce"
	"github.com/signadot/go-voevent/debug"
	"github.com/signadot/go-voevent/xmlnode"
)

var rootTag = regexp.MustCompile(`^\{http://www\.ivoa\.net/xml/VOEvent/v\d(\.\d(\.\d)?)?\}VOEvent$`)

// Document is a VOEvent.  The exported fields are populated by Parse; until
// then they hold their zero values.
type Document struct {
	tree   *etree.Document
	opts   parseOpts
	parsed bool

	Version   Version
	Role      Role
	IVORN     string
	Identity  Identity
	Who       Who
	What      *Group
	WhereWhen WhereWhen
	How       How
	Why       Why
	Citations []Citation

	Description *Excerpt
	Reference   *Excerpt
}

type section struct {
	tag   string
	parse func(*Document, *etree.Element) error
}

var sections = []section{
	{"Who", (*Document).parseWho},
	{"What", (*Document).parseWhat},
	{"WhereWhen", (*Document).parseWhereWhen},
	{"How", (*Document).parseHow},
	{"Why", (*Document).parseWhy},
	{"Citations", (*Document).parseCitations},
	{"Description", (*Document).parseDescription},
	{"Reference", (*Document).parseReference},
}

func New(tree *etree.Document, opts ...Option) *Document {
	d := &Document{
		tree: tree,
		opts: parseOpts{conversion: coerce.ForceMode},
		What: NewGroup(),
	}
	for _, o := range opts {
		o(&d.opts)
	}
	return d
}

// Parse validates the document and extracts its sections.  It may be called
// only once.  On failure the exported fields keep their zero values.
func (d *Document) Parse() error {
	if d.parsed {
		return ErrAlreadyParsed
	}
	d.parsed = true
	res := &Document{tree: d.tree, opts: d.opts, parsed: true, What: NewGroup()}
	if err := res.extract(); err != nil {
		return err
	}
	*d = *res
	return nil
}

func (d *Document) extract() error {
	root := d.tree.Root()
	if root == nil {
		return fmt.Errorf("%w: no root element", ErrInvalidRoot)
	}
	if tag := xmlnode.QName(root); !rootTag.MatchString(tag) {
		return fmt.Errorf("%w: %s", ErrInvalidRoot, tag)
	}
	if err := d.parseHeader(root); err != nil {
		return err
	}
	found := make(map[string]*etree.Element, len(sections))
	for _, sec := range sections {
		els := xmlnode.Children(root, sec.tag)
		if len(els) > 1 {
			return fmt.Errorf("%w: %d %s elements", ErrDuplicateSection, len(els), sec.tag)
		}
		if len(els) == 1 {
			found[sec.tag] = els[0]
		}
	}
	for _, sec := range sections {
		el := found[sec.tag]
		if el == nil {
			continue
		}
		if err := sec.parse(d, el); err != nil {
			return fmt.Errorf("%s: %w", sec.tag, err)
		}
	}
	return nil
}

func (d *Document) parseHeader(root *etree.Element) error {
	version, _ := xmlnode.Attr(root, "version")
	v, err := ParseVersion(version)
	if err != nil {
		return err
	}
	role, _ := xmlnode.Attr(root, "role")
	r, err := ParseRole(role)
	if err != nil {
		return err
	}
	ivorn, _ := xmlnode.Attr(root, "ivorn")
	id, err := ParseIVORN(ivorn)
	if err != nil {
		return err
	}
	d.Version, d.Role, d.IVORN, d.Identity = v, r, ivorn, id
	d.trace("header", "version", v, "role", r, "ivorn", ivorn)
	return nil
}

func (d *Document) trace(sec string, args ...any) {
	if debug.Parse() {
		debug.Logf("voevent %s %v\n", sec, args)
	}
	if d.opts.logger == nil {
		return
	}
	d.opts.logger.Log(context.Background(), slog.LevelDebug, sec, args...)
}

func parsed(tree *etree.Document, opts []Option) (*Document, error) {
	d := New(tree, opts...)
	if err := d.Parse(); err != nil {
		return nil, err
	}
	return d, nil
}

func ParseBytes(data []byte, opts ...Option) (*Document, error) {
	tree, err := xmlnode.LoadBytes(data)
	if err != nil {
		return nil, err
	}
	return parsed(tree, opts)
}

func ParseFile(path string, opts ...Option) (*Document, error) {
	tree, err := xmlnode.LoadFile(path)
	if err != nil {
		return nil, err
	}
	d, err := parsed(tree, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

func ParseReader(r io.Reader, opts ...Option) (*Document, error) {
	tree, err := xmlnode.Load(r)
	if err != nil {
		return nil, err
	}
	return parsed(tree, opts)
}
