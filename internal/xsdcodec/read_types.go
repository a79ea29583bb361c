package xsdcodec

import (
	"encoding/xml"

	"github.com/jacoelho/wsdl/internal/xmlstream"
	"github.com/jacoelho/wsdl/xsd"
)

func (x *Reader) readComplexType(start *xmlstream.StartElement) (*xsd.ComplexType, error) {
	ct := &xsd.ComplexType{}
	attr := func(a xmlstream.Attr) (bool, error) {
		var err error
		switch a.Sym {
		case x.s.aName:
			ct.Name = a.Value
		case x.s.aAbstract:
			ct.Abstract, err = x.r.Bool(start, a.Value)
		case x.s.aMixed:
			ct.Mixed, err = x.r.Bool(start, a.Value)
		case x.s.aBlock:
			ct.Block, err = x.derivation(start, a)
		case x.s.aFinal:
			ct.Final, err = x.derivation(start, a)
		default:
			return false, nil
		}
		return true, err
	}
	child := func(c *xmlstream.StartElement) (bool, error) {
		switch c.Sym {
		case x.s.simpleContent, x.s.complexContent:
			if ct.ContentModel != nil || ct.Particle != nil {
				return false, nil
			}
			cm, err := x.readContentModel(c)
			if err != nil {
				return true, err
			}
			ct.ContentModel = cm
			return true, nil
		case x.s.sequence, x.s.choice, x.s.all, x.s.group:
			if ct.ContentModel != nil || ct.Particle != nil {
				return false, nil
			}
			p, err := x.readParticle(c)
			if err != nil {
				return true, err
			}
			ct.Particle = p
			return true, nil
		}
		if ct.ContentModel != nil {
			return false, nil
		}
		return x.attributeChild(c, &ct.Attributes, &ct.AnyAttribute)
	}
	if err := x.component(start, "ComplexType", &ct.Annotated, attr, child); err != nil {
		return nil, err
	}
	return ct, nil
}

func (x *Reader) readContentModel(start *xmlstream.StartElement) (xsd.ContentModel, error) {
	if start.Sym == x.s.simpleContent {
		sc := &xsd.SimpleContent{}
		err := x.component(start, "SimpleContent", &sc.Annotated, nil, func(c *xmlstream.StartElement) (bool, error) {
			if sc.Derivation != nil {
				return false, nil
			}
			var err error
			switch c.Sym {
			case x.s.extension:
				sc.Derivation, err = x.readSimpleContentExtension(c)
			case x.s.restriction:
				sc.Derivation, err = x.readSimpleContentRestriction(c)
			default:
				return false, nil
			}
			return true, err
		})
		if err != nil {
			return nil, err
		}
		return sc, nil
	}

	cc := &xsd.ComplexContent{}
	attr := func(a xmlstream.Attr) (bool, error) {
		if a.Sym != x.s.aMixed {
			return false, nil
		}
		var err error
		cc.Mixed, err = x.r.Bool(start, a.Value)
		return true, err
	}
	err := x.component(start, "ComplexContent", &cc.Annotated, attr, func(c *xmlstream.StartElement) (bool, error) {
		if cc.Derivation != nil {
			return false, nil
		}
		var err error
		switch c.Sym {
		case x.s.extension:
			cc.Derivation, err = x.readComplexContentExtension(c)
		case x.s.restriction:
			cc.Derivation, err = x.readComplexContentRestriction(c)
		default:
			return false, nil
		}
		return true, err
	})
	if err != nil {
		return nil, err
	}
	return cc, nil
}

func (x *Reader) baseAttr(start *xmlstream.StartElement, base *xml.Name) attrFunc {
	return func(a xmlstream.Attr) (bool, error) {
		if a.Sym != x.s.aBase {
			return false, nil
		}
		qn, err := x.r.ResolveQName(start, a.Value)
		*base = qn
		return true, err
	}
}

func (x *Reader) readSimpleContentExtension(start *xmlstream.StartElement) (*xsd.SimpleContentExtension, error) {
	ext := &xsd.SimpleContentExtension{}
	err := x.component(start, "SimpleContentExtension", &ext.Annotated, x.baseAttr(start, &ext.Base),
		func(c *xmlstream.StartElement) (bool, error) {
			return x.attributeChild(c, &ext.Attributes, &ext.AnyAttribute)
		})
	if err != nil {
		return nil, err
	}
	return ext, nil
}

func (x *Reader) readSimpleContentRestriction(start *xmlstream.StartElement) (*xsd.SimpleContentRestriction, error) {
	res := &xsd.SimpleContentRestriction{}
	err := x.component(start, "SimpleContentRestriction", &res.Annotated, x.baseAttr(start, &res.Base),
		func(c *xmlstream.StartElement) (bool, error) {
			if c.Sym == x.s.simpleType && res.SimpleType == nil && res.Facets == nil {
				st, err := x.readSimpleType(c)
				res.SimpleType = st
				return true, err
			}
			ok, err := x.attributeChild(c, &res.Attributes, &res.AnyAttribute)
			if ok || err != nil {
				return true, err
			}
			return x.facet(c, &res.Facets)
		})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (x *Reader) readComplexContentExtension(start *xmlstream.StartElement) (*xsd.ComplexContentExtension, error) {
	ext := &xsd.ComplexContentExtension{}
	err := x.component(start, "ComplexContentExtension", &ext.Annotated, x.baseAttr(start, &ext.Base),
		func(c *xmlstream.StartElement) (bool, error) {
			return x.derivationChild(c, &ext.Particle, &ext.Attributes, &ext.AnyAttribute)
		})
	if err != nil {
		return nil, err
	}
	return ext, nil
}

func (x *Reader) readComplexContentRestriction(start *xmlstream.StartElement) (*xsd.ComplexContentRestriction, error) {
	res := &xsd.ComplexContentRestriction{}
	err := x.component(start, "ComplexContentRestriction", &res.Annotated, x.baseAttr(start, &res.Base),
		func(c *xmlstream.StartElement) (bool, error) {
			return x.derivationChild(c, &res.Particle, &res.Attributes, &res.AnyAttribute)
		})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (x *Reader) derivationChild(c *xmlstream.StartElement, particle *xsd.Particle, attrs *[]xsd.AttributeItem, anyAttr **xsd.AnyAttribute) (bool, error) {
	switch c.Sym {
	case x.s.sequence, x.s.choice, x.s.all, x.s.group:
		if *particle != nil {
			return false, nil
		}
		p, err := x.readParticle(c)
		if err != nil {
			return true, err
		}
		*particle = p
		return true, nil
	}
	return x.attributeChild(c, attrs, anyAttr)
}

// facet reads a constraining facet. Children that are not facets are kept
// as *xsd.Raw in the facet list.
func (x *Reader) facet(c *xmlstream.StartElement, facets *[]xsd.Facet) (bool, error) {
	mk, ok := x.s.facets[c.Sym]
	if !ok {
		el, err := x.r.Capture(c)
		if err != nil {
			return true, err
		}
		*facets = append(*facets, &xsd.Raw{Element: el})
		return true, nil
	}
	var v xsd.FacetValue
	err := x.component(c, "Facet", &v.Annotated, func(a xmlstream.Attr) (bool, error) {
		var err error
		switch a.Sym {
		case x.s.aValue:
			v.Value = a.Value
		case x.s.aFixed:
			v.Fixed, err = x.r.Bool(c, a.Value)
		default:
			return false, nil
		}
		return true, err
	}, nil)
	if err != nil {
		return true, err
	}
	*facets = append(*facets, mk(v))
	return true, nil
}

func (x *Reader) readSimpleType(start *xmlstream.StartElement) (*xsd.SimpleType, error) {
	st := &xsd.SimpleType{}
	attr := func(a xmlstream.Attr) (bool, error) {
		var err error
		switch a.Sym {
		case x.s.aName:
			st.Name = a.Value
		case x.s.aFinal:
			st.Final, err = x.derivation(start, a)
		default:
			return false, nil
		}
		return true, err
	}
	child := func(c *xmlstream.StartElement) (bool, error) {
		if st.Content != nil {
			return false, nil
		}
		var err error
		switch c.Sym {
		case x.s.restriction:
			st.Content, err = x.readSimpleTypeRestriction(c)
		case x.s.list:
			st.Content, err = x.readList(c)
		case x.s.union:
			st.Content, err = x.readUnion(c)
		default:
			return false, nil
		}
		return true, err
	}
	if err := x.component(start, "SimpleType", &st.Annotated, attr, child); err != nil {
		return nil, err
	}
	return st, nil
}

func (x *Reader) readSimpleTypeRestriction(start *xmlstream.StartElement) (*xsd.SimpleTypeRestriction, error) {
	res := &xsd.SimpleTypeRestriction{}
	err := x.component(start, "SimpleTypeRestriction", &res.Annotated, x.baseAttr(start, &res.Base),
		func(c *xmlstream.StartElement) (bool, error) {
			if c.Sym == x.s.simpleType && res.SimpleType == nil && res.Facets == nil {
				st, err := x.readSimpleType(c)
				res.SimpleType = st
				return true, err
			}
			return x.facet(c, &res.Facets)
		})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (x *Reader) readList(start *xmlstream.StartElement) (*xsd.SimpleTypeList, error) {
	l := &xsd.SimpleTypeList{}
	err := x.component(start, "SimpleTypeList", &l.Annotated,
		func(a xmlstream.Attr) (bool, error) {
			if a.Sym != x.s.aItemType {
				return false, nil
			}
			qn, err := x.r.ResolveQName(start, a.Value)
			l.ItemType = qn
			return true, err
		},
		func(c *xmlstream.StartElement) (bool, error) {
			if c.Sym != x.s.simpleType || l.ItemSimpleType != nil {
				return false, nil
			}
			st, err := x.readSimpleType(c)
			l.ItemSimpleType = st
			return true, err
		})
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (x *Reader) readUnion(start *xmlstream.StartElement) (*xsd.SimpleTypeUnion, error) {
	u := &xsd.SimpleTypeUnion{}
	err := x.component(start, "SimpleTypeUnion", &u.Annotated,
		func(a xmlstream.Attr) (bool, error) {
			if a.Sym != x.s.aMemberTypes {
				return false, nil
			}
			names, err := x.r.ResolveQNames(start, a.Value)
			u.MemberTypes = names
			return true, err
		},
		func(c *xmlstream.StartElement) (bool, error) {
			if c.Sym != x.s.simpleType {
				return false, nil
			}
			st, err := x.readSimpleType(c)
			if err != nil {
				return true, err
			}
			u.SimpleTypes = append(u.SimpleTypes, st)
			return true, nil
		})
	if err != nil {
		return nil, err
	}
	return u, nil
}

// readGroup reads a named model group definition.
func (x *Reader) readGroup(start *xmlstream.StartElement) (*xsd.Group, error) {
	g := &xsd.Group{}
	err := x.component(start, "Group", &g.Annotated,
		func(a xmlstream.Attr) (bool, error) {
			if a.Sym == x.s.aName {
				g.Name = a.Value
				return true, nil
			}
			return false, nil
		},
		func(c *xmlstream.StartElement) (bool, error) {
			if g.Particle != nil {
				return false, nil
			}
			var err error
			switch c.Sym {
			case x.s.sequence:
				g.Particle, err = x.readSequence(c)
			case x.s.choice:
				g.Particle, err = x.readChoice(c)
			case x.s.all:
				g.Particle, err = x.readAll(c)
			default:
				return false, nil
			}
			return true, err
		})
	if err != nil {
		return nil, err
	}
	return g, nil
}

// readParticle reads the particle of a complex type or content derivation.
func (x *Reader) readParticle(c *xmlstream.StartElement) (xsd.Particle, error) {
	switch c.Sym {
	case x.s.sequence:
		return x.readSequence(c)
	case x.s.choice:
		return x.readChoice(c)
	case x.s.all:
		return x.readAll(c)
	case x.s.group:
		return x.readGroupRef(c)
	}
	return nil, x.r.UnknownType(c, "Particle")
}

func (x *Reader) occursAttr(start *xmlstream.StartElement, min, max *xsd.Occurs) attrFunc {
	return func(a xmlstream.Attr) (bool, error) {
		var err error
		switch a.Sym {
		case x.s.aMinOccurs:
			*min, err = x.occurs(start, a)
		case x.s.aMaxOccurs:
			*max, err = x.occurs(start, a)
		default:
			return false, nil
		}
		return true, err
	}
}

// nestedParticle reads an item of a sequence or choice.
func (x *Reader) nestedParticle(c *xmlstream.StartElement, items *[]xsd.Particle) (bool, error) {
	var (
		p   xsd.Particle
		err error
	)
	switch c.Sym {
	case x.s.element:
		p, err = x.readElement(c)
	case x.s.any:
		p, err = x.readAny(c)
	case x.s.sequence:
		p, err = x.readSequence(c)
	case x.s.choice:
		p, err = x.readChoice(c)
	case x.s.group:
		p, err = x.readGroupRef(c)
	default:
		return false, nil
	}
	if err != nil {
		return true, err
	}
	*items = append(*items, p)
	return true, nil
}

func (x *Reader) readSequence(start *xmlstream.StartElement) (*xsd.Sequence, error) {
	seq := &xsd.Sequence{}
	err := x.component(start, "Sequence.Items", &seq.Annotated, x.occursAttr(start, &seq.MinOccurs, &seq.MaxOccurs),
		func(c *xmlstream.StartElement) (bool, error) {
			return x.nestedParticle(c, &seq.Items)
		})
	if err != nil {
		return nil, err
	}
	return seq, nil
}

func (x *Reader) readChoice(start *xmlstream.StartElement) (*xsd.Choice, error) {
	ch := &xsd.Choice{}
	err := x.component(start, "Choice.Items", &ch.Annotated, x.occursAttr(start, &ch.MinOccurs, &ch.MaxOccurs),
		func(c *xmlstream.StartElement) (bool, error) {
			return x.nestedParticle(c, &ch.Items)
		})
	if err != nil {
		return nil, err
	}
	return ch, nil
}

func (x *Reader) readAll(start *xmlstream.StartElement) (*xsd.All, error) {
	all := &xsd.All{}
	err := x.component(start, "All.Items", &all.Annotated, x.occursAttr(start, &all.MinOccurs, &all.MaxOccurs),
		func(c *xmlstream.StartElement) (bool, error) {
			if c.Sym != x.s.element {
				return false, nil
			}
			el, err := x.readElement(c)
			if err != nil {
				return true, err
			}
			all.Items = append(all.Items, el)
			return true, nil
		})
	if err != nil {
		return nil, err
	}
	return all, nil
}

func (x *Reader) readGroupRef(start *xmlstream.StartElement) (*xsd.GroupRef, error) {
	ref := &xsd.GroupRef{}
	occurs := x.occursAttr(start, &ref.MinOccurs, &ref.MaxOccurs)
	err := x.component(start, "GroupRef", &ref.Annotated, func(a xmlstream.Attr) (bool, error) {
		if a.Sym == x.s.aRef {
			qn, err := x.r.ResolveQName(start, a.Value)
			ref.Ref = qn
			return true, err
		}
		return occurs(a)
	}, nil)
	if err != nil {
		return nil, err
	}
	return ref, nil
}

func (x *Reader) readAny(start *xmlstream.StartElement) (*xsd.Any, error) {
	wc := &xsd.Any{}
	occurs := x.occursAttr(start, &wc.MinOccurs, &wc.MaxOccurs)
	err := x.component(start, "Any", &wc.Annotated, func(a xmlstream.Attr) (bool, error) {
		var err error
		switch a.Sym {
		case x.s.aNamespace:
			wc.Namespace = a.Value
		case x.s.aProcessContents:
			wc.ProcessContents, err = x.processContents(start, a)
		default:
			return occurs(a)
		}
		return true, err
	}, nil)
	if err != nil {
		return nil, err
	}
	return wc, nil
}
