package xsdcodec

import (
	"encoding/xml"
	"errors"
	"fmt"

	wsdlerrors "github.com/jacoelho/wsdl/errors"
	"github.com/jacoelho/wsdl/internal/xmlsink"
	"github.com/jacoelho/wsdl/xmlnode"
	"github.com/jacoelho/wsdl/xsd"
)

// Writer writes schema elements to a sink.
type Writer struct {
	w *xmlsink.Writer
}

// NewWriter returns a schema writer over w.
func NewWriter(w *xmlsink.Writer) *Writer {
	return &Writer{w: w}
}

func name(local string) xml.Name {
	return xml.Name{Space: xsd.Namespace, Local: local}
}

func unknownType(slot string, v any) error {
	return &wsdlerrors.UnknownTypeError{Slot: slot, Type: fmt.Sprintf("%T", v)}
}

func invalidEnum(enum string, v fmt.Stringer, local string) error {
	return &wsdlerrors.InvalidEnumValueError{Enum: enum, Value: v.String(), Name: name(local)}
}

func (x *Writer) start(local string, decls []xmlnode.Namespace) error {
	return x.w.Start(xsd.Namespace, local, "", decls)
}

func (x *Writer) str(local, v string) {
	if v != "" {
		x.w.Attr(local, v)
	}
}

func (x *Writer) boolean(local string, v bool) {
	if v {
		x.w.Attr(local, "true")
	}
}

func (x *Writer) occurs(local string, o xsd.Occurs) {
	if !o.IsDefault() {
		x.w.Attr(local, o.String())
	}
}

func (x *Writer) form(owner, local string, f xsd.Form) error {
	if f == xsd.FormDefault {
		return nil
	}
	tok, ok := f.Token()
	if !ok {
		return invalidEnum("Form", f, owner)
	}
	x.w.Attr(local, tok)
	return nil
}

func (x *Writer) derivation(owner, local string, d xsd.DerivationSet) error {
	if d == 0 {
		return nil
	}
	tok, ok := d.Token()
	if !ok {
		return invalidEnum("DerivationSet", d, owner)
	}
	x.w.Attr(local, tok)
	return nil
}

func (x *Writer) processContents(owner string, p xsd.ProcessContents) error {
	if p == xsd.ProcessContentsDefault {
		return nil
	}
	tok, ok := p.Token()
	if !ok {
		return invalidEnum("ProcessContents", p, owner)
	}
	x.w.Attr("processContents", tok)
	return nil
}

func (x *Writer) attrs(attrs []xmlnode.Attr) {
	for _, a := range attrs {
		x.w.AttrNS(a.Name.Space, a.Name.Local, a.Prefix, a.Value)
	}
}

// elements writes carrier elements; owner names the element holding them.
func (x *Writer) elements(owner, slot string, els []*xmlnode.Element) error {
	for _, el := range els {
		if err := x.node(owner, slot, el); err != nil {
			return err
		}
	}
	return nil
}

func (x *Writer) node(owner, slot string, n xmlnode.Node) error {
	err := x.w.Node(n)
	if errors.Is(err, xmlsink.ErrInvalidNode) {
		return &wsdlerrors.InvalidContentError{Slot: slot, Name: name(owner), Type: fmt.Sprintf("%T", n)}
	}
	return err
}

// open starts an annotated component and writes its id.
func (x *Writer) open(local string, a *xsd.Annotated) error {
	if err := x.start(local, nil); err != nil {
		return err
	}
	x.str("id", a.ID)
	return nil
}

// body writes the unhandled attributes, the annotation and the unhandled
// elements of a component whose own attributes are already written.
func (x *Writer) body(local string, a *xsd.Annotated) error {
	x.attrs(a.UnhandledAttributes)
	if a.Annotation != nil {
		if err := x.writeAnnotation(a.Annotation); err != nil {
			return err
		}
	}
	return x.elements(local, "UnhandledElements", a.UnhandledElements)
}

// WriteSchema writes s as an xs:schema element.
func (x *Writer) WriteSchema(s *xsd.Schema) error {
	if s == nil {
		return unknownType("Schema", s)
	}
	if err := x.start("schema", s.Namespaces); err != nil {
		return err
	}
	x.str("id", s.ID)
	x.str("targetNamespace", s.TargetNamespace)
	x.str("version", s.Version)
	if err := x.form("schema", "attributeFormDefault", s.AttributeFormDefault); err != nil {
		return err
	}
	if err := x.form("schema", "elementFormDefault", s.ElementFormDefault); err != nil {
		return err
	}
	if err := x.derivation("schema", "blockDefault", s.BlockDefault); err != nil {
		return err
	}
	if err := x.derivation("schema", "finalDefault", s.FinalDefault); err != nil {
		return err
	}
	x.attrs(s.UnhandledAttributes)
	for _, ext := range s.Includes {
		if err := x.writeExternal(ext); err != nil {
			return err
		}
	}
	if err := x.elements("schema", "UnhandledElements", s.UnhandledElements); err != nil {
		return err
	}
	for _, item := range s.Items {
		if err := x.writeSchemaItem(item); err != nil {
			return err
		}
	}
	return x.w.End()
}

func (x *Writer) writeExternal(ext xsd.External) error {
	switch v := ext.(type) {
	case *xsd.Include:
		if v != nil {
			if err := x.open("include", &v.Annotated); err != nil {
				return err
			}
			x.str("schemaLocation", v.SchemaLocation)
			if err := x.body("include", &v.Annotated); err != nil {
				return err
			}
			return x.w.End()
		}
	case *xsd.Import:
		if v != nil {
			if err := x.open("import", &v.Annotated); err != nil {
				return err
			}
			x.str("namespace", v.Namespace)
			x.str("schemaLocation", v.SchemaLocation)
			if err := x.body("import", &v.Annotated); err != nil {
				return err
			}
			return x.w.End()
		}
	case *xsd.Redefine:
		if v != nil {
			return x.writeRedefine(v)
		}
	}
	return unknownType("Schema.Includes", ext)
}

func (x *Writer) writeRedefine(rd *xsd.Redefine) error {
	for _, item := range rd.Items {
		switch v := item.(type) {
		case *xsd.Annotation, *xsd.SimpleType, *xsd.ComplexType, *xsd.Group, *xsd.AttributeGroup:
			if isNilItem(v) {
				return unknownType("Redefine.Items", item)
			}
		default:
			return unknownType("Redefine.Items", item)
		}
	}
	if err := x.start("redefine", nil); err != nil {
		return err
	}
	x.str("id", rd.ID)
	x.str("schemaLocation", rd.SchemaLocation)
	x.attrs(rd.UnhandledAttributes)
	if err := x.elements("redefine", "UnhandledElements", rd.UnhandledElements); err != nil {
		return err
	}
	for _, item := range rd.Items {
		var err error
		switch v := item.(type) {
		case *xsd.Annotation:
			err = x.writeAnnotation(v)
		case *xsd.SimpleType:
			err = x.writeSimpleType(v)
		case *xsd.ComplexType:
			err = x.writeComplexType(v)
		case *xsd.Group:
			err = x.writeGroup(v)
		case *xsd.AttributeGroup:
			err = x.writeAttributeGroup(v)
		}
		if err != nil {
			return err
		}
	}
	return x.w.End()
}

func isNilItem(item any) bool {
	switch v := item.(type) {
	case *xsd.Annotation:
		return v == nil
	case *xsd.SimpleType:
		return v == nil
	case *xsd.ComplexType:
		return v == nil
	case *xsd.Group:
		return v == nil
	case *xsd.AttributeGroup:
		return v == nil
	case *xsd.Element:
		return v == nil
	case *xsd.Attribute:
		return v == nil
	case *xsd.Notation:
		return v == nil
	}
	return item == nil
}

func (x *Writer) writeSchemaItem(item xsd.SchemaItem) error {
	if isNilItem(item) {
		return unknownType("Schema.Items", item)
	}
	switch v := item.(type) {
	case *xsd.Annotation:
		return x.writeAnnotation(v)
	case *xsd.Element:
		return x.writeElement(v)
	case *xsd.ComplexType:
		return x.writeComplexType(v)
	case *xsd.SimpleType:
		return x.writeSimpleType(v)
	case *xsd.Group:
		return x.writeGroup(v)
	case *xsd.AttributeGroup:
		return x.writeAttributeGroup(v)
	case *xsd.Attribute:
		return x.writeAttribute(v)
	case *xsd.Notation:
		return x.writeNotation(v)
	}
	return unknownType("Schema.Items", item)
}

func (x *Writer) writeAnnotation(a *xsd.Annotation) error {
	for _, item := range a.Items {
		switch v := item.(type) {
		case *xsd.Documentation:
			if v == nil {
				return unknownType("Annotation.Items", item)
			}
		case *xsd.AppInfo:
			if v == nil {
				return unknownType("Annotation.Items", item)
			}
		default:
			return unknownType("Annotation.Items", item)
		}
	}
	if err := x.start("annotation", nil); err != nil {
		return err
	}
	x.str("id", a.ID)
	x.attrs(a.UnhandledAttributes)
	for _, item := range a.Items {
		switch v := item.(type) {
		case *xsd.Documentation:
			if err := x.start("documentation", nil); err != nil {
				return err
			}
			x.str("source", v.Source)
			if v.Language != "" {
				x.w.AttrNS(xmlNamespace, "lang", "xml", v.Language)
			}
			x.attrs(v.UnhandledAttributes)
			if err := x.markup("documentation", v.Markup); err != nil {
				return err
			}
		case *xsd.AppInfo:
			if err := x.start("appinfo", nil); err != nil {
				return err
			}
			x.str("source", v.Source)
			x.attrs(v.UnhandledAttributes)
			if err := x.markup("appinfo", v.Markup); err != nil {
				return err
			}
		}
		if err := x.w.End(); err != nil {
			return err
		}
	}
	if err := x.elements("annotation", "UnhandledElements", a.UnhandledElements); err != nil {
		return err
	}
	return x.w.End()
}

const xmlNamespace = "http://www.w3.org/XML/1998/namespace"

func (x *Writer) markup(owner string, nodes []xmlnode.Node) error {
	for _, n := range nodes {
		if err := x.node(owner, "Markup", n); err != nil {
			return err
		}
	}
	return nil
}

func (x *Writer) writeNotation(n *xsd.Notation) error {
	if err := x.open("notation", &n.Annotated); err != nil {
		return err
	}
	x.str("name", n.Name)
	x.str("public", n.Public)
	x.str("system", n.System)
	if err := x.body("notation", &n.Annotated); err != nil {
		return err
	}
	return x.w.End()
}
