// Package xmlsink is the push side of the codec: it writes namespace-qualified
// elements through encoding/xml, choosing prefixes from the declarations in
// scope and declaring new ones where an element, attribute or QName value
// needs them.
package xmlsink

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/rs/zerolog"

	wsdlerrors "github.com/jacoelho/wsdl/errors"
	"github.com/jacoelho/wsdl/xmlnode"
)

const xmlNamespace = "http://www.w3.org/XML/1998/namespace"

// ErrInvalidNode is returned by Node for a nil or unnamed carrier node.
var ErrInvalidNode = errors.New("xmlsink: invalid node")

// Options configures a Writer.
type Options struct {
	// Indent, when not empty, indents nested elements. Mixed content gains
	// whitespace when indented.
	Indent string
	// Declaration writes an XML declaration before the document element.
	Declaration bool
	// Prefixes maps namespace URIs to the prefix to declare when the writer
	// has to bind a namespace itself.
	Prefixes map[string]string
	Logger   zerolog.Logger
}

type scope struct {
	decls []xmlnode.Namespace
}

type pendingStart struct {
	name  xml.Name
	space string
	local string
	attrs []xml.Attr
}

// Writer writes one document. It is not safe for concurrent use.
type Writer struct {
	enc       *xml.Encoder
	scopes    []scope
	names     []xml.Name
	pending   *pendingStart
	preferred map[string]string
	generated int
	log       zerolog.Logger
	wroteDecl bool
	declare   bool
	// err is the first QName value that could not be written; it is
	// returned by the next call that flushes.
	err error
}

// NewWriter returns a writer to w.
func NewWriter(w io.Writer, opts Options) *Writer {
	enc := xml.NewEncoder(w)
	if opts.Indent != "" {
		enc.Indent("", opts.Indent)
	}
	return &Writer{
		enc:       enc,
		preferred: opts.Prefixes,
		log:       opts.Logger,
		declare:   opts.Declaration,
	}
}

// Start opens an element. decls are written on the element before any prefix
// is chosen, so the element name and its attributes can use them. hint is
// the prefix to prefer for the element name.
func (w *Writer) Start(space, local, hint string, decls []xmlnode.Namespace) error {
	if local == "" {
		return ErrInvalidNode
	}
	if err := w.flush(); err != nil {
		return err
	}
	if w.declare && !w.wroteDecl && len(w.scopes) == 0 {
		w.wroteDecl = true
		if err := w.enc.EncodeToken(xml.ProcInst{Target: "xml", Inst: []byte(`version="1.0" encoding="utf-8"`)}); err != nil {
			return fmt.Errorf("write declaration: %w", err)
		}
	}
	w.scopes = append(w.scopes, scope{})
	w.pending = &pendingStart{space: space, local: local}
	for _, d := range decls {
		w.addDecl(d.Prefix, d.URI)
	}
	prefix := w.elementPrefix(space, hint)
	w.pending.name = xml.Name{Local: qualify(prefix, local)}
	return nil
}

// Attr adds an unqualified attribute to the open start tag.
func (w *Writer) Attr(local, value string) {
	if w.pending == nil {
		return
	}
	w.pending.attrs = append(w.pending.attrs, xml.Attr{Name: xml.Name{Local: local}, Value: value})
}

// AttrNS adds a namespace-qualified attribute. Attributes never take the
// default namespace, so a prefix is always used for a non-empty space.
func (w *Writer) AttrNS(space, local, hint, value string) {
	if w.pending == nil {
		return
	}
	if space == "" {
		w.Attr(local, value)
		return
	}
	prefix := w.attrPrefix(space, hint)
	w.pending.attrs = append(w.pending.attrs, xml.Attr{Name: xml.Name{Local: qualify(prefix, local)}, Value: value})
}

// QNameAttr adds an attribute whose value is a QName. A zero name writes
// nothing.
func (w *Writer) QNameAttr(local string, qn xml.Name) {
	if qn.Local == "" {
		return
	}
	w.Attr(local, w.QNameValue(local, qn))
}

// QNameValue formats qn for attribute attr of the open start tag, declaring
// a prefix on it if none is in scope. A name with no namespace cannot be
// written while a default namespace is in scope; the next flush then fails.
func (w *Writer) QNameValue(attr string, qn xml.Name) string {
	if qn.Space == "" {
		if def, _ := w.lookup(""); def != "" && w.err == nil && w.pending != nil {
			w.err = &wsdlerrors.InvalidContentError{
				Slot: attr,
				Name: xml.Name{Space: w.pending.space, Local: w.pending.local},
				Type: "unqualified QName " + strconv.Quote(qn.Local) + " under default namespace " + strconv.Quote(def),
			}
		}
		return qn.Local
	}
	if def, _ := w.lookup(""); def == qn.Space {
		return qn.Local
	}
	return qualify(w.attrPrefix(qn.Space, ""), qn.Local)
}

// Text writes character data.
func (w *Writer) Text(s string) error {
	if err := w.flush(); err != nil {
		return err
	}
	return w.enc.EncodeToken(xml.CharData(s))
}

// Comment writes a comment.
func (w *Writer) Comment(s string) error {
	if err := w.flush(); err != nil {
		return err
	}
	return w.enc.EncodeToken(xml.Comment(s))
}

// ProcInst writes a processing instruction.
func (w *Writer) ProcInst(target, inst string) error {
	if err := w.flush(); err != nil {
		return err
	}
	return w.enc.EncodeToken(xml.ProcInst{Target: target, Inst: []byte(inst)})
}

// End closes the innermost open element.
func (w *Writer) End() error {
	if err := w.flush(); err != nil {
		return err
	}
	n := len(w.names)
	if n == 0 {
		return fmt.Errorf("xmlsink: end without open element")
	}
	name := w.names[n-1]
	w.names = w.names[:n-1]
	w.scopes = w.scopes[:len(w.scopes)-1]
	return w.enc.EncodeToken(xml.EndElement{Name: name})
}

// Node writes a carrier node verbatim.
func (w *Writer) Node(n xmlnode.Node) error {
	switch v := n.(type) {
	case *xmlnode.Element:
		if !v.Valid() {
			return ErrInvalidNode
		}
		if err := w.Start(v.Name.Space, v.Name.Local, v.Prefix, v.Namespaces); err != nil {
			return err
		}
		for _, a := range v.Attrs {
			w.AttrNS(a.Name.Space, a.Name.Local, a.Prefix, a.Value)
		}
		for _, child := range v.Children {
			if err := w.Node(child); err != nil {
				return err
			}
		}
		return w.End()
	case *xmlnode.Text:
		if v == nil {
			return ErrInvalidNode
		}
		return w.Text(v.Data)
	case *xmlnode.Comment:
		if v == nil {
			return ErrInvalidNode
		}
		return w.Comment(v.Data)
	case *xmlnode.ProcInst:
		if v == nil {
			return ErrInvalidNode
		}
		return w.ProcInst(v.Target, v.Inst)
	default:
		return ErrInvalidNode
	}
}

// Close flushes the output. Every element must be closed.
func (w *Writer) Close() error {
	if err := w.flush(); err != nil {
		return err
	}
	if len(w.names) != 0 {
		return fmt.Errorf("xmlsink: %d unclosed elements", len(w.names))
	}
	return w.enc.Close()
}

func (w *Writer) flush() error {
	if w.err != nil {
		return w.err
	}
	if w.pending == nil {
		return nil
	}
	p := w.pending
	w.pending = nil
	w.names = append(w.names, p.name)
	return w.enc.EncodeToken(xml.StartElement{Name: p.name, Attr: p.attrs})
}

// lookup resolves a prefix in the current scope chain, pending element
// included.
func (w *Writer) lookup(prefix string) (string, bool) {
	if prefix == "xml" {
		return xmlNamespace, true
	}
	for i := len(w.scopes) - 1; i >= 0; i-- {
		decls := w.scopes[i].decls
		for j := len(decls) - 1; j >= 0; j-- {
			if decls[j].Prefix == prefix {
				return decls[j].URI, true
			}
		}
	}
	return "", prefix == ""
}

// boundPrefix returns a non-empty prefix currently bound to uri.
func (w *Writer) boundPrefix(uri string) (string, bool) {
	if uri == xmlNamespace {
		return "xml", true
	}
	for i := len(w.scopes) - 1; i >= 0; i-- {
		decls := w.scopes[i].decls
		for j := len(decls) - 1; j >= 0; j-- {
			d := decls[j]
			if d.Prefix == "" || d.URI != uri {
				continue
			}
			if got, _ := w.lookup(d.Prefix); got == uri {
				return d.Prefix, true
			}
		}
	}
	return "", false
}

func (w *Writer) elementPrefix(space, hint string) string {
	def, _ := w.lookup("")
	if space == "" {
		if def != "" {
			w.addDecl("", "")
		}
		return ""
	}
	if p, ok := w.hinted(space, hint); ok {
		return p
	}
	if def == space {
		return ""
	}
	if p, ok := w.boundPrefix(space); ok {
		return p
	}
	return w.newPrefix(space, "")
}

func (w *Writer) attrPrefix(space, hint string) string {
	if p, ok := w.hinted(space, hint); ok {
		return p
	}
	if p, ok := w.boundPrefix(space); ok {
		return p
	}
	return w.newPrefix(space, "")
}

// hinted reports whether hint can name space, declaring it when unbound.
func (w *Writer) hinted(space, hint string) (string, bool) {
	if hint == "" || hint == "xmlns" {
		return "", false
	}
	got, ok := w.lookup(hint)
	switch {
	case ok && got == space:
		return hint, true
	case !ok && hint != "xml":
		w.addDecl(hint, space)
		return hint, true
	}
	return "", false
}

// newPrefix declares a prefix for uri on the pending element.
func (w *Writer) newPrefix(uri, hint string) string {
	for _, candidate := range []string{hint, w.preferred[uri]} {
		if candidate == "" || candidate == "xml" || candidate == "xmlns" {
			continue
		}
		if _, taken := w.lookup(candidate); !taken && !w.declaredHere(candidate) {
			w.addDecl(candidate, uri)
			return candidate
		}
	}
	for {
		w.generated++
		candidate := "q" + strconv.Itoa(w.generated)
		if _, taken := w.lookup(candidate); !taken {
			w.addDecl(candidate, uri)
			return candidate
		}
	}
}

func (w *Writer) declaredHere(prefix string) bool {
	if len(w.scopes) == 0 {
		return false
	}
	for _, d := range w.scopes[len(w.scopes)-1].decls {
		if d.Prefix == prefix {
			return true
		}
	}
	return false
}

func (w *Writer) addDecl(prefix, uri string) {
	if len(w.scopes) == 0 || w.pending == nil {
		return
	}
	top := &w.scopes[len(w.scopes)-1]
	for _, d := range top.decls {
		if d.Prefix == prefix {
			return
		}
	}
	top.decls = append(top.decls, xmlnode.Namespace{Prefix: prefix, URI: uri})
	name := "xmlns"
	if prefix != "" {
		name = "xmlns:" + prefix
	}
	w.pending.attrs = append(w.pending.attrs, xml.Attr{Name: xml.Name{Local: name}, Value: uri})
	w.log.Debug().Str("prefix", prefix).Str("namespace", uri).Msg("declared namespace")
}

func qualify(prefix, local string) string {
	if prefix == "" {
		return local
	}
	return prefix + ":" + local
}
