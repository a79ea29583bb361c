// Package xmlstream is the pull side of the codec: it turns an XML byte
// stream into namespace-resolved elements with name-table symbols, captures
// foreign subtrees, and resolves QName attribute values against the prefix
// scope of the element that carries them.
package xmlstream

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	wsdlerrors "github.com/jacoelho/wsdl/errors"
	"github.com/jacoelho/wsdl/internal/nametable"
	"github.com/jacoelho/wsdl/xmlnode"
)

// Options configures a Reader.
type Options struct {
	// CharsetReader converts non UTF-8 input. Nil rejects such documents.
	CharsetReader func(label string, input io.Reader) (io.Reader, error)
	// MaxDepth limits element nesting. Zero means no limit.
	MaxDepth int
	// MaxAttrs limits the attributes of one element, namespace declarations
	// included. Zero means no limit.
	MaxAttrs int
	Logger   zerolog.Logger
}

// Attr is an attribute of a start element.
type Attr struct {
	Name   xml.Name
	Prefix string
	Value  string
	Sym    nametable.Symbol
}

// Node converts the attribute to its carrier form.
func (a Attr) Node() xmlnode.Attr {
	return xmlnode.Attr{Name: a.Name, Prefix: a.Prefix, Value: a.Value}
}

// StartElement is an open element. Namespace declarations are reported in
// Namespaces and never appear in Attrs.
type StartElement struct {
	Name       xml.Name
	Prefix     string
	Sym        nametable.Symbol
	Attrs      []Attr
	Namespaces []xmlnode.Namespace
	Location   wsdlerrors.Location
	depth      int
}

// Reader reads one document. It is not safe for concurrent use and must not
// be reused for a second document.
type Reader struct {
	dec      *xml.Decoder
	names    *nametable.Table
	ns       nsStack
	open     []*StartElement
	log      zerolog.Logger
	xsiType  nametable.Symbol
	maxDepth int
	maxAttrs int
	rooted   bool
}

// NewReader returns a reader over r.
func NewReader(r io.Reader, opts Options) *Reader {
	dec := xml.NewDecoder(r)
	dec.Strict = true
	dec.CharsetReader = opts.CharsetReader
	names := nametable.New()
	return &Reader{
		dec:      dec,
		names:    names,
		log:      opts.Logger,
		xsiType:  names.Add(XSINamespace, "type"),
		maxDepth: opts.MaxDepth,
		maxAttrs: opts.MaxAttrs,
	}
}

// Names returns the reader's name table. Grammars register their vocabulary
// here before reading.
func (r *Reader) Names() *nametable.Table {
	return r.names
}

// Logger returns the reader's logger.
func (r *Reader) Logger() *zerolog.Logger {
	return &r.log
}

// Root advances to the document element.
func (r *Reader) Root() (*StartElement, error) {
	if r.rooted {
		return nil, fmt.Errorf("xmlstream: document element already read")
	}
	r.rooted = true
	for {
		tok, err := r.token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, r.malformed(nil, fmt.Errorf("no document element"))
			}
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			return r.start(t)
		case xml.EndElement:
			return nil, r.malformed(nil, fmt.Errorf("unexpected end element %s", rawName(t.Name)))
		case xml.CharData:
			if strings.TrimSpace(string(t)) != "" {
				return nil, r.malformed(nil, fmt.Errorf("character data before document element"))
			}
		}
	}
}

// Finish consumes the input after the document element. Only whitespace,
// comments and processing instructions may follow it.
func (r *Reader) Finish() error {
	for {
		tok, err := r.token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			return r.malformed(nil, fmt.Errorf("element %s after document element", rawName(t.Name)))
		case xml.EndElement:
			return r.malformed(nil, fmt.Errorf("unexpected end element %s", rawName(t.Name)))
		case xml.CharData:
			if strings.TrimSpace(string(t)) != "" {
				return r.malformed(nil, fmt.Errorf("character data after document element"))
			}
		case xml.Directive:
			return r.malformed(nil, fmt.Errorf("directive after document element"))
		}
	}
}

// Children calls fn for every child element of parent, in document order,
// and returns once parent's end tag is consumed. Character data, comments and
// processing instructions between children are ignored. A child that fn does
// not consume is skipped.
func (r *Reader) Children(parent *StartElement, fn func(*StartElement) error) error {
	for {
		tok, err := r.token()
		if err != nil {
			return r.eof(err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			child, err := r.start(t)
			if err != nil {
				return err
			}
			if err := fn(child); err != nil {
				return err
			}
			if r.isOpen(child) {
				if err := r.Skip(child); err != nil {
					return err
				}
			}
		case xml.EndElement:
			return r.end(t, parent)
		}
	}
}

// Skip discards the rest of start's subtree.
func (r *Reader) Skip(start *StartElement) error {
	for r.isOpen(start) {
		tok, err := r.token()
		if err != nil {
			return r.eof(err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if _, err := r.start(t); err != nil {
				return err
			}
		case xml.EndElement:
			if err := r.end(t, r.open[len(r.open)-1]); err != nil {
				return err
			}
		}
	}
	return nil
}

// Capture reads start's whole subtree into a carrier element.
func (r *Reader) Capture(start *StartElement) (*xmlnode.Element, error) {
	el := &xmlnode.Element{
		Name:   start.Name,
		Prefix: start.Prefix,
	}
	if len(start.Namespaces) > 0 {
		el.Namespaces = append([]xmlnode.Namespace(nil), start.Namespaces...)
	}
	for _, a := range start.Attrs {
		el.Attrs = append(el.Attrs, a.Node())
	}
	children, err := r.CaptureContent(start)
	if err != nil {
		return nil, err
	}
	el.Children = children
	r.log.Debug().
		Str("namespace", start.Name.Space).
		Str("element", start.Name.Local).
		Int("line", start.Location.Line).
		Msg("captured foreign element")
	return el, nil
}

// CaptureContent reads the content of start, up to and including its end
// tag, as carrier nodes. Adjacent character data is merged into one Text.
func (r *Reader) CaptureContent(start *StartElement) ([]xmlnode.Node, error) {
	var nodes []xmlnode.Node
	appendText := func(s string) {
		if n := len(nodes); n > 0 {
			if prev, ok := nodes[n-1].(*xmlnode.Text); ok {
				prev.Data += s
				return
			}
		}
		nodes = append(nodes, &xmlnode.Text{Data: s})
	}
	for {
		tok, err := r.token()
		if err != nil {
			return nil, r.eof(err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			child, err := r.start(t)
			if err != nil {
				return nil, err
			}
			el, err := r.Capture(child)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, el)
		case xml.EndElement:
			if err := r.end(t, start); err != nil {
				return nil, err
			}
			return nodes, nil
		case xml.CharData:
			appendText(string(t))
		case xml.Comment:
			nodes = append(nodes, &xmlnode.Comment{Data: string(t)})
		case xml.ProcInst:
			nodes = append(nodes, &xmlnode.ProcInst{Target: t.Target, Inst: string(t.Inst)})
		}
	}
}

// CheckType enforces that an xsi:type annotation on start, if present, names
// one of the expected types. slot is used in the error.
func (r *Reader) CheckType(start *StartElement, slot string, expected ...xml.Name) error {
	for _, a := range start.Attrs {
		if a.Sym != r.xsiType {
			continue
		}
		qn, err := r.ResolveQName(start, a.Value)
		if err != nil {
			return err
		}
		for _, want := range expected {
			if qn == want {
				return nil
			}
		}
		return &wsdlerrors.UnknownTypeError{Slot: slot, Name: qn, Location: start.Location}
	}
	return nil
}

// IsTypeAttr reports whether a is an xsi:type annotation.
func (r *Reader) IsTypeAttr(a Attr) bool {
	return a.Sym == r.xsiType
}

// ResolveQName resolves a QName attribute value in the scope of start, which
// must still be open. An unprefixed value takes the default namespace. An
// empty value resolves to the zero name.
func (r *Reader) ResolveQName(start *StartElement, value string) (xml.Name, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return xml.Name{}, nil
	}
	prefix, local := splitQName(value)
	ns, ok := r.ns.lookup(prefix, start.depth)
	if !ok {
		return xml.Name{}, r.malformed(start, fmt.Errorf("%w %q in QName %q", errUnboundPrefix, prefix, value))
	}
	return xml.Name{Space: ns, Local: local}, nil
}

// ResolveQNames resolves a whitespace separated list of QNames.
func (r *Reader) ResolveQNames(start *StartElement, value string) ([]xml.Name, error) {
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return nil, nil
	}
	out := make([]xml.Name, 0, len(fields))
	for _, f := range fields {
		qn, err := r.ResolveQName(start, f)
		if err != nil {
			return nil, err
		}
		out = append(out, qn)
	}
	return out, nil
}

// Malformed builds a MalformedDocumentError located at start.
func (r *Reader) Malformed(start *StartElement, err error) error {
	return r.malformed(start, err)
}

func (r *Reader) malformed(start *StartElement, err error) error {
	out := &wsdlerrors.MalformedDocumentError{Err: err}
	if start != nil {
		out.Name = start.Name
		out.Location = start.Location
	} else {
		line, col := r.dec.InputPos()
		out.Location = wsdlerrors.Location{Line: line, Column: col}
		if n := len(r.open); n > 0 {
			out.Name = r.open[n-1].Name
		}
	}
	return out
}

func (r *Reader) eof(err error) error {
	if errors.Is(err, io.EOF) {
		return r.malformed(nil, io.ErrUnexpectedEOF)
	}
	return err
}

func (r *Reader) token() (xml.Token, error) {
	tok, err := r.dec.RawToken()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		var syn *xml.SyntaxError
		if errors.As(err, &syn) {
			out := &wsdlerrors.MalformedDocumentError{Err: err, Location: wsdlerrors.Location{Line: syn.Line}}
			if n := len(r.open); n > 0 {
				out.Name = r.open[n-1].Name
			}
			return nil, out
		}
		return nil, r.malformed(nil, err)
	}
	return xml.CopyToken(tok), nil
}

func (r *Reader) isOpen(start *StartElement) bool {
	return len(r.open) > start.depth && r.open[start.depth] == start
}

func (r *Reader) start(t xml.StartElement) (*StartElement, error) {
	line, col := r.dec.InputPos()
	loc := wsdlerrors.Location{Line: line, Column: col}

	if r.maxAttrs > 0 && len(t.Attr) > r.maxAttrs {
		return nil, &wsdlerrors.MalformedDocumentError{
			Err:      fmt.Errorf("element has %d attributes, maximum is %d", len(t.Attr), r.maxAttrs),
			Name:     xml.Name{Local: t.Name.Local},
			Location: loc,
		}
	}

	scope := nsScope{}
	var decls []xmlnode.Namespace
	for _, a := range t.Attr {
		switch {
		case a.Name.Space == "" && a.Name.Local == "xmlns":
			scope.defaultNS = a.Value
			scope.defaultSet = true
			decls = append(decls, xmlnode.Namespace{URI: a.Value})
		case a.Name.Space == "xmlns":
			if scope.prefixes == nil {
				scope.prefixes = make(map[string]string, 2)
			}
			scope.prefixes[a.Name.Local] = a.Value
			decls = append(decls, xmlnode.Namespace{Prefix: a.Name.Local, URI: a.Value})
		}
	}
	depth := r.ns.push(scope)
	if r.maxDepth > 0 && depth >= r.maxDepth {
		r.ns.pop()
		return nil, &wsdlerrors.MalformedDocumentError{
			Err:      fmt.Errorf("element nesting exceeds maximum depth %d", r.maxDepth),
			Name:     xml.Name{Local: t.Name.Local},
			Location: loc,
		}
	}

	se := &StartElement{
		Prefix:     t.Name.Space,
		Namespaces: decls,
		Location:   loc,
		depth:      depth,
	}
	ns, ok := r.ns.lookup(t.Name.Space, depth)
	if !ok {
		r.ns.pop()
		return nil, &wsdlerrors.MalformedDocumentError{
			Err:      fmt.Errorf("%w %q on element %s", errUnboundPrefix, t.Name.Space, rawName(t.Name)),
			Location: loc,
		}
	}
	se.Name = xml.Name{Space: ns, Local: t.Name.Local}
	se.Sym = r.names.Lookup(ns, t.Name.Local)

	for _, a := range t.Attr {
		if a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns") {
			continue
		}
		attr := Attr{Prefix: a.Name.Space, Value: a.Value}
		switch a.Name.Space {
		case "":
			attr.Name = xml.Name{Local: a.Name.Local}
		default:
			ans, ok := r.ns.lookup(a.Name.Space, depth)
			if !ok {
				r.ns.pop()
				return nil, &wsdlerrors.MalformedDocumentError{
					Err:      fmt.Errorf("%w %q on attribute %s", errUnboundPrefix, a.Name.Space, rawName(a.Name)),
					Name:     se.Name,
					Location: loc,
				}
			}
			attr.Name = xml.Name{Space: ans, Local: a.Name.Local}
		}
		attr.Sym = r.names.Lookup(attr.Name.Space, attr.Name.Local)
		se.Attrs = append(se.Attrs, attr)
	}

	r.open = append(r.open, se)
	r.log.Trace().Str("namespace", ns).Str("element", t.Name.Local).Int("depth", depth).Msg("start element")
	return se, nil
}

func (r *Reader) end(t xml.EndElement, want *StartElement) error {
	n := len(r.open)
	if n == 0 {
		return r.malformed(nil, fmt.Errorf("unexpected end element %s", rawName(t.Name)))
	}
	top := r.open[n-1]
	if top != want || top.Prefix != t.Name.Space || top.Name.Local != t.Name.Local {
		return r.malformed(top, fmt.Errorf("end element %s does not match start element %s",
			rawName(t.Name), rawName(xml.Name{Space: top.Prefix, Local: top.Name.Local})))
	}
	r.open = r.open[:n-1]
	r.ns.pop()
	return nil
}

func splitQName(value string) (prefix, local string) {
	if i := strings.IndexByte(value, ':'); i >= 0 {
		return value[:i], value[i+1:]
	}
	return "", value
}

// rawName formats a name whose Space holds a prefix.
func rawName(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}
