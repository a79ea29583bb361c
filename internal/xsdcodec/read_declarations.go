package xsdcodec

import (
	"encoding/xml"

	"github.com/jacoelho/wsdl/internal/xmlstream"
	"github.com/jacoelho/wsdl/xsd"
)

func (x *Reader) readElement(start *xmlstream.StartElement) (*xsd.Element, error) {
	el := &xsd.Element{}
	attr := func(a xmlstream.Attr) (bool, error) {
		var err error
		switch a.Sym {
		case x.s.aName:
			el.Name = a.Value
		case x.s.aRef:
			el.Ref, err = x.qname(start, a)
		case x.s.aType:
			el.Type, err = x.qname(start, a)
		case x.s.aSubstitutionGroup:
			el.SubstitutionGroup, err = x.qname(start, a)
		case x.s.aMinOccurs:
			el.MinOccurs, err = x.occurs(start, a)
		case x.s.aMaxOccurs:
			el.MaxOccurs, err = x.occurs(start, a)
		case x.s.aDefault:
			el.Default, el.HasDefault = a.Value, true
		case x.s.aFixed:
			el.Fixed, el.HasFixed = a.Value, true
		case x.s.aNillable:
			el.Nillable, err = x.r.Bool(start, a.Value)
		case x.s.aAbstract:
			el.Abstract, err = x.r.Bool(start, a.Value)
		case x.s.aFinal:
			el.Final, err = x.derivation(start, a)
		case x.s.aBlock:
			el.Block, err = x.derivation(start, a)
		case x.s.aForm:
			el.Form, err = x.form(start, a)
		default:
			return false, nil
		}
		return true, err
	}
	child := func(c *xmlstream.StartElement) (bool, error) {
		switch c.Sym {
		case x.s.simpleType:
			if el.SchemaType != nil {
				return false, nil
			}
			st, err := x.readSimpleType(c)
			if err != nil {
				return true, err
			}
			el.SchemaType = st
		case x.s.complexType:
			if el.SchemaType != nil {
				return false, nil
			}
			ct, err := x.readComplexType(c)
			if err != nil {
				return true, err
			}
			el.SchemaType = ct
		case x.s.key, x.s.keyref, x.s.unique:
			ic, err := x.readIdentityConstraint(c)
			if err != nil {
				return true, err
			}
			el.Constraints = append(el.Constraints, ic)
		default:
			return false, nil
		}
		return true, nil
	}
	if err := x.component(start, "Element", &el.Annotated, attr, child); err != nil {
		return nil, err
	}
	return el, nil
}

func (x *Reader) readAttribute(start *xmlstream.StartElement) (*xsd.Attribute, error) {
	at := &xsd.Attribute{}
	attr := func(a xmlstream.Attr) (bool, error) {
		var err error
		switch a.Sym {
		case x.s.aName:
			at.Name = a.Value
		case x.s.aRef:
			at.Ref, err = x.qname(start, a)
		case x.s.aType:
			at.Type, err = x.qname(start, a)
		case x.s.aUse:
			at.Use, err = x.use(start, a)
		case x.s.aDefault:
			at.Default, at.HasDefault = a.Value, true
		case x.s.aFixed:
			at.Fixed, at.HasFixed = a.Value, true
		case x.s.aForm:
			at.Form, err = x.form(start, a)
		default:
			return false, nil
		}
		return true, err
	}
	child := func(c *xmlstream.StartElement) (bool, error) {
		if c.Sym != x.s.simpleType || at.SimpleType != nil {
			return false, nil
		}
		st, err := x.readSimpleType(c)
		if err != nil {
			return true, err
		}
		at.SimpleType = st
		return true, nil
	}
	if err := x.component(start, "Attribute", &at.Annotated, attr, child); err != nil {
		return nil, err
	}
	return at, nil
}

// attributeChild reads an attribute, attributeGroup reference or
// anyAttribute child into the given slots.
func (x *Reader) attributeChild(c *xmlstream.StartElement, attrs *[]xsd.AttributeItem, anyAttr **xsd.AnyAttribute) (bool, error) {
	switch c.Sym {
	case x.s.attribute:
		at, err := x.readAttribute(c)
		if err != nil {
			return true, err
		}
		*attrs = append(*attrs, at)
	case x.s.attributeGroup:
		ref, err := x.readAttributeGroupRef(c)
		if err != nil {
			return true, err
		}
		*attrs = append(*attrs, ref)
	case x.s.anyAttribute:
		if *anyAttr != nil {
			return false, nil
		}
		aa, err := x.readAnyAttribute(c)
		if err != nil {
			return true, err
		}
		*anyAttr = aa
	default:
		return false, nil
	}
	return true, nil
}

func (x *Reader) readAttributeGroup(start *xmlstream.StartElement) (*xsd.AttributeGroup, error) {
	g := &xsd.AttributeGroup{}
	err := x.component(start, "AttributeGroup", &g.Annotated,
		func(a xmlstream.Attr) (bool, error) {
			if a.Sym == x.s.aName {
				g.Name = a.Value
				return true, nil
			}
			return false, nil
		},
		func(c *xmlstream.StartElement) (bool, error) {
			return x.attributeChild(c, &g.Attributes, &g.AnyAttribute)
		})
	if err != nil {
		return nil, err
	}
	return g, nil
}

func (x *Reader) readAttributeGroupRef(start *xmlstream.StartElement) (*xsd.AttributeGroupRef, error) {
	ref := &xsd.AttributeGroupRef{}
	err := x.component(start, "AttributeGroupRef", &ref.Annotated, func(a xmlstream.Attr) (bool, error) {
		if a.Sym != x.s.aRef {
			return false, nil
		}
		var err error
		ref.Ref, err = x.qname(start, a)
		return true, err
	}, nil)
	if err != nil {
		return nil, err
	}
	return ref, nil
}

func (x *Reader) readAnyAttribute(start *xmlstream.StartElement) (*xsd.AnyAttribute, error) {
	aa := &xsd.AnyAttribute{}
	err := x.component(start, "AnyAttribute", &aa.Annotated, func(a xmlstream.Attr) (bool, error) {
		var err error
		switch a.Sym {
		case x.s.aNamespace:
			aa.Namespace = a.Value
		case x.s.aProcessContents:
			aa.ProcessContents, err = x.processContents(start, a)
		default:
			return false, nil
		}
		return true, err
	}, nil)
	if err != nil {
		return nil, err
	}
	return aa, nil
}

func (x *Reader) readIdentityConstraint(start *xmlstream.StartElement) (xsd.IdentityConstraint, error) {
	var (
		ann      xsd.Annotated
		name     string
		refer    xml.Name
		selector *xsd.XPath
		fields   []*xsd.XPath
	)
	isKeyref := start.Sym == x.s.keyref
	attr := func(a xmlstream.Attr) (bool, error) {
		switch {
		case a.Sym == x.s.aName:
			name = a.Value
		case a.Sym == x.s.aRefer && isKeyref:
			qn, err := x.qname(start, a)
			if err != nil {
				return true, err
			}
			refer = qn
		default:
			return false, nil
		}
		return true, nil
	}
	child := func(c *xmlstream.StartElement) (bool, error) {
		switch c.Sym {
		case x.s.selector:
			if selector != nil {
				return false, nil
			}
			xp, err := x.readXPath(c, "Selector")
			if err != nil {
				return true, err
			}
			selector = xp
		case x.s.field:
			xp, err := x.readXPath(c, "Field")
			if err != nil {
				return true, err
			}
			fields = append(fields, xp)
		default:
			return false, nil
		}
		return true, nil
	}
	if err := x.component(start, "IdentityConstraint", &ann, attr, child); err != nil {
		return nil, err
	}
	switch start.Sym {
	case x.s.key:
		return &xsd.Key{Annotated: ann, Name: name, Selector: selector, Fields: fields}, nil
	case x.s.unique:
		return &xsd.Unique{Annotated: ann, Name: name, Selector: selector, Fields: fields}, nil
	default:
		return &xsd.Keyref{Annotated: ann, Name: name, Refer: refer, Selector: selector, Fields: fields}, nil
	}
}

func (x *Reader) readXPath(start *xmlstream.StartElement, slot string) (*xsd.XPath, error) {
	xp := &xsd.XPath{}
	err := x.component(start, slot, &xp.Annotated, func(a xmlstream.Attr) (bool, error) {
		if a.Sym == x.s.aXPath {
			xp.XPath = a.Value
			return true, nil
		}
		return false, nil
	}, nil)
	if err != nil {
		return nil, err
	}
	return xp, nil
}
