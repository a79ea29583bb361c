package xsdcodec

import (
	"encoding/xml"
	"strings"

	"github.com/jacoelho/wsdl/internal/xmlstream"
	"github.com/jacoelho/wsdl/xmlnode"
	"github.com/jacoelho/wsdl/xsd"
)

// Reader reads schema elements from a stream reader. It shares the stream's
// name table and logger.
type Reader struct {
	r *xmlstream.Reader
	s symbols
}

// NewReader registers the schema vocabulary in r's name table.
func NewReader(r *xmlstream.Reader) *Reader {
	return &Reader{r: r, s: newSymbols(r.Names())}
}

// IsSchema reports whether start is an xs:schema element.
func (x *Reader) IsSchema(start *xmlstream.StartElement) bool {
	return start.Sym == x.s.schema
}

type attrFunc func(a xmlstream.Attr) (bool, error)

type childFunc func(c *xmlstream.StartElement) (bool, error)

// component reads the attributes and children of an annotated component.
// id and annotation are handled here; attr and child report whether they
// consumed an attribute or element. Anything left over is kept in the
// unhandled collections, except schema elements, which are not legal in
// slot.
func (x *Reader) component(start *xmlstream.StartElement, slot string, ann *xsd.Annotated, attr attrFunc, child childFunc) error {
	for _, a := range start.Attrs {
		if a.Sym == x.s.aID {
			ann.ID = a.Value
			continue
		}
		if attr != nil {
			ok, err := attr(a)
			if err != nil {
				return err
			}
			if ok {
				continue
			}
		}
		ann.UnhandledAttributes = x.unhandledAttr(start, ann.UnhandledAttributes, a)
	}
	return x.r.Children(start, func(c *xmlstream.StartElement) error {
		if c.Sym == x.s.annotation && ann.Annotation == nil {
			a, err := x.readAnnotation(c)
			if err != nil {
				return err
			}
			ann.Annotation = a
			return nil
		}
		if child != nil {
			ok, err := child(c)
			if err != nil || ok {
				return err
			}
		}
		return x.unhandled(c, slot, &ann.UnhandledElements)
	})
}

func (x *Reader) unhandledAttr(start *xmlstream.StartElement, dst []xmlnode.Attr, a xmlstream.Attr) []xmlnode.Attr {
	x.r.Logger().Debug().
		Str("element", start.Name.Local).
		Str("namespace", a.Name.Space).
		Str("attribute", a.Name.Local).
		Msg("captured unhandled attribute")
	return append(dst, a.Node())
}

func (x *Reader) unhandled(c *xmlstream.StartElement, slot string, dst *[]*xmlnode.Element) error {
	if c.Name.Space == xsd.Namespace {
		return x.r.UnknownType(c, slot)
	}
	el, err := x.r.Capture(c)
	if err != nil {
		return err
	}
	*dst = append(*dst, el)
	return nil
}

// ReadSchema reads the xs:schema element start, which must still be open.
func (x *Reader) ReadSchema(start *xmlstream.StartElement) (*xsd.Schema, error) {
	if start.Sym != x.s.schema {
		return nil, x.r.UnknownType(start, "Schema")
	}
	s := &xsd.Schema{}
	if len(start.Namespaces) > 0 {
		s.Namespaces = append([]xmlnode.Namespace(nil), start.Namespaces...)
	}
	for _, a := range start.Attrs {
		var err error
		switch a.Sym {
		case x.s.aID:
			s.ID = a.Value
		case x.s.aTargetNamespace:
			s.TargetNamespace = a.Value
		case x.s.aVersion:
			s.Version = a.Value
		case x.s.aAttributeFormDefault:
			s.AttributeFormDefault, err = x.form(start, a)
		case x.s.aElementFormDefault:
			s.ElementFormDefault, err = x.form(start, a)
		case x.s.aBlockDefault:
			s.BlockDefault, err = x.derivation(start, a)
		case x.s.aFinalDefault:
			s.FinalDefault, err = x.derivation(start, a)
		default:
			s.UnhandledAttributes = x.unhandledAttr(start, s.UnhandledAttributes, a)
		}
		if err != nil {
			return nil, err
		}
	}
	err := x.r.Children(start, func(c *xmlstream.StartElement) error {
		var (
			item xsd.SchemaItem
			err  error
		)
		switch c.Sym {
		case x.s.include, x.s.imprt, x.s.redefine:
			ext, err := x.readExternal(c)
			if err != nil {
				return err
			}
			s.Includes = append(s.Includes, ext)
			return nil
		case x.s.annotation:
			item, err = x.readAnnotation(c)
		case x.s.element:
			item, err = x.readElement(c)
		case x.s.complexType:
			item, err = x.readComplexType(c)
		case x.s.simpleType:
			item, err = x.readSimpleType(c)
		case x.s.group:
			item, err = x.readGroup(c)
		case x.s.attributeGroup:
			item, err = x.readAttributeGroup(c)
		case x.s.attribute:
			item, err = x.readAttribute(c)
		case x.s.notation:
			item, err = x.readNotation(c)
		default:
			return x.unhandled(c, "Schema.Items", &s.UnhandledElements)
		}
		if err != nil {
			return err
		}
		s.Items = append(s.Items, item)
		return nil
	})
	if err != nil {
		return nil, err
	}
	x.r.Logger().Debug().Str("targetNamespace", s.TargetNamespace).Int("items", len(s.Items)).Msg("read schema")
	return s, nil
}

func (x *Reader) readExternal(start *xmlstream.StartElement) (xsd.External, error) {
	switch start.Sym {
	case x.s.include:
		inc := &xsd.Include{}
		err := x.component(start, "Include", &inc.Annotated, func(a xmlstream.Attr) (bool, error) {
			if a.Sym == x.s.aSchemaLocation {
				inc.SchemaLocation = a.Value
				return true, nil
			}
			return false, nil
		}, nil)
		return inc, err
	case x.s.imprt:
		imp := &xsd.Import{}
		err := x.component(start, "Import", &imp.Annotated, func(a xmlstream.Attr) (bool, error) {
			switch a.Sym {
			case x.s.aNamespace:
				imp.Namespace = a.Value
			case x.s.aSchemaLocation:
				imp.SchemaLocation = a.Value
			default:
				return false, nil
			}
			return true, nil
		}, nil)
		return imp, err
	default:
		return x.readRedefine(start)
	}
}

func (x *Reader) readRedefine(start *xmlstream.StartElement) (*xsd.Redefine, error) {
	rd := &xsd.Redefine{}
	for _, a := range start.Attrs {
		switch a.Sym {
		case x.s.aID:
			rd.ID = a.Value
		case x.s.aSchemaLocation:
			rd.SchemaLocation = a.Value
		default:
			rd.UnhandledAttributes = x.unhandledAttr(start, rd.UnhandledAttributes, a)
		}
	}
	err := x.r.Children(start, func(c *xmlstream.StartElement) error {
		var (
			item xsd.RedefineItem
			err  error
		)
		switch c.Sym {
		case x.s.annotation:
			item, err = x.readAnnotation(c)
		case x.s.simpleType:
			item, err = x.readSimpleType(c)
		case x.s.complexType:
			item, err = x.readComplexType(c)
		case x.s.group:
			item, err = x.readGroup(c)
		case x.s.attributeGroup:
			item, err = x.readAttributeGroup(c)
		default:
			return x.unhandled(c, "Redefine.Items", &rd.UnhandledElements)
		}
		if err != nil {
			return err
		}
		rd.Items = append(rd.Items, item)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rd, nil
}

func (x *Reader) readAnnotation(start *xmlstream.StartElement) (*xsd.Annotation, error) {
	ann := &xsd.Annotation{}
	for _, a := range start.Attrs {
		if a.Sym == x.s.aID {
			ann.ID = a.Value
			continue
		}
		ann.UnhandledAttributes = x.unhandledAttr(start, ann.UnhandledAttributes, a)
	}
	err := x.r.Children(start, func(c *xmlstream.StartElement) error {
		switch c.Sym {
		case x.s.documentation:
			doc := &xsd.Documentation{}
			for _, a := range c.Attrs {
				switch a.Sym {
				case x.s.aSource:
					doc.Source = a.Value
				case x.s.aLang:
					doc.Language = a.Value
				default:
					doc.UnhandledAttributes = x.unhandledAttr(c, doc.UnhandledAttributes, a)
				}
			}
			markup, err := x.r.CaptureContent(c)
			if err != nil {
				return err
			}
			doc.Markup = markup
			ann.Items = append(ann.Items, doc)
		case x.s.appinfo:
			info := &xsd.AppInfo{}
			for _, a := range c.Attrs {
				if a.Sym == x.s.aSource {
					info.Source = a.Value
					continue
				}
				info.UnhandledAttributes = x.unhandledAttr(c, info.UnhandledAttributes, a)
			}
			markup, err := x.r.CaptureContent(c)
			if err != nil {
				return err
			}
			info.Markup = markup
			ann.Items = append(ann.Items, info)
		default:
			return x.unhandled(c, "Annotation.Items", &ann.UnhandledElements)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ann, nil
}

func (x *Reader) readNotation(start *xmlstream.StartElement) (*xsd.Notation, error) {
	n := &xsd.Notation{}
	err := x.component(start, "Notation", &n.Annotated, func(a xmlstream.Attr) (bool, error) {
		switch a.Sym {
		case x.s.aName:
			n.Name = a.Value
		case x.s.aPublic:
			n.Public = a.Value
		case x.s.aSystem:
			n.System = a.Value
		default:
			return false, nil
		}
		return true, nil
	}, nil)
	if err != nil {
		return nil, err
	}
	return n, nil
}

func (x *Reader) qname(start *xmlstream.StartElement, a xmlstream.Attr) (xml.Name, error) {
	return x.r.ResolveQName(start, a.Value)
}

func (x *Reader) occurs(start *xmlstream.StartElement, a xmlstream.Attr) (xsd.Occurs, error) {
	o, err := xsd.ParseOccurs(a.Name.Local, a.Value)
	if err != nil {
		return xsd.Occurs{}, x.r.Malformed(start, err)
	}
	return o, nil
}

func (x *Reader) form(start *xmlstream.StartElement, a xmlstream.Attr) (xsd.Form, error) {
	f, ok := xsd.ParseForm(strings.TrimSpace(a.Value))
	if !ok {
		return 0, x.r.InvalidEnum(start, "Form", a.Value)
	}
	return f, nil
}

func (x *Reader) derivation(start *xmlstream.StartElement, a xmlstream.Attr) (xsd.DerivationSet, error) {
	d, ok := xsd.ParseDerivationSet(a.Value)
	if !ok {
		return 0, x.r.InvalidEnum(start, "DerivationSet", a.Value)
	}
	return d, nil
}

func (x *Reader) use(start *xmlstream.StartElement, a xmlstream.Attr) (xsd.AttributeUse, error) {
	u, ok := xsd.ParseAttributeUse(strings.TrimSpace(a.Value))
	if !ok {
		return 0, x.r.InvalidEnum(start, "AttributeUse", a.Value)
	}
	return u, nil
}

func (x *Reader) processContents(start *xmlstream.StartElement, a xmlstream.Attr) (xsd.ProcessContents, error) {
	p, ok := xsd.ParseProcessContents(strings.TrimSpace(a.Value))
	if !ok {
		return 0, x.r.InvalidEnum(start, "ProcessContents", a.Value)
	}
	return p, nil
}
