package xsdcodec

import (
	"encoding/xml"
	"strings"

	"github.com/jacoelho/wsdl/xsd"
)

func (x *Writer) writeComplexType(ct *xsd.ComplexType) error {
	if ct.ContentModel != nil && (ct.Particle != nil || len(ct.Attributes) > 0 || ct.AnyAttribute != nil) {
		return unknownType("ComplexType.ContentModel", ct.ContentModel)
	}
	if err := x.open("complexType", &ct.Annotated); err != nil {
		return err
	}
	x.str("name", ct.Name)
	x.boolean("abstract", ct.Abstract)
	x.boolean("mixed", ct.Mixed)
	if err := x.derivation("complexType", "block", ct.Block); err != nil {
		return err
	}
	if err := x.derivation("complexType", "final", ct.Final); err != nil {
		return err
	}
	if err := x.body("complexType", &ct.Annotated); err != nil {
		return err
	}
	if ct.ContentModel != nil {
		if err := x.writeContentModel(ct.ContentModel); err != nil {
			return err
		}
		return x.w.End()
	}
	if ct.Particle != nil {
		if err := x.writeParticle("ComplexType.Particle", ct.Particle); err != nil {
			return err
		}
	}
	if err := x.writeAttributes("ComplexType.Attributes", ct.Attributes, ct.AnyAttribute); err != nil {
		return err
	}
	return x.w.End()
}

func (x *Writer) writeContentModel(cm xsd.ContentModel) error {
	switch v := cm.(type) {
	case *xsd.SimpleContent:
		if v == nil {
			break
		}
		switch d := v.Derivation.(type) {
		case nil, *xsd.SimpleContentExtension, *xsd.SimpleContentRestriction:
		default:
			return unknownType("SimpleContent.Derivation", d)
		}
		if err := x.open("simpleContent", &v.Annotated); err != nil {
			return err
		}
		if err := x.body("simpleContent", &v.Annotated); err != nil {
			return err
		}
		if err := x.writeDerivation("SimpleContent.Derivation", v.Derivation); err != nil {
			return err
		}
		return x.w.End()
	case *xsd.ComplexContent:
		if v == nil {
			break
		}
		switch d := v.Derivation.(type) {
		case nil, *xsd.ComplexContentExtension, *xsd.ComplexContentRestriction:
		default:
			return unknownType("ComplexContent.Derivation", d)
		}
		if err := x.open("complexContent", &v.Annotated); err != nil {
			return err
		}
		x.boolean("mixed", v.Mixed)
		if err := x.body("complexContent", &v.Annotated); err != nil {
			return err
		}
		if err := x.writeDerivation("ComplexContent.Derivation", v.Derivation); err != nil {
			return err
		}
		return x.w.End()
	}
	return unknownType("ComplexType.ContentModel", cm)
}

func (x *Writer) writeDerivation(slot string, d xsd.ContentDerivation) error {
	switch v := d.(type) {
	case nil:
		return nil
	case *xsd.SimpleContentExtension:
		if v == nil {
			break
		}
		if err := x.derivationStart("extension", &v.Annotated, v.Base); err != nil {
			return err
		}
		if err := x.writeAttributes("SimpleContentExtension.Attributes", v.Attributes, v.AnyAttribute); err != nil {
			return err
		}
		return x.w.End()
	case *xsd.SimpleContentRestriction:
		if v == nil {
			break
		}
		if err := checkFacets("SimpleContentRestriction.Facets", v.Facets); err != nil {
			return err
		}
		if err := x.derivationStart("restriction", &v.Annotated, v.Base); err != nil {
			return err
		}
		if v.SimpleType != nil {
			if err := x.writeSimpleType(v.SimpleType); err != nil {
				return err
			}
		}
		if err := x.writeFacets("restriction", v.Facets); err != nil {
			return err
		}
		if err := x.writeAttributes("SimpleContentRestriction.Attributes", v.Attributes, v.AnyAttribute); err != nil {
			return err
		}
		return x.w.End()
	case *xsd.ComplexContentExtension:
		if v == nil {
			break
		}
		return x.complexDerivation("extension", "ComplexContentExtension", &v.Annotated, v.Base, v.Particle, v.Attributes, v.AnyAttribute)
	case *xsd.ComplexContentRestriction:
		if v == nil {
			break
		}
		return x.complexDerivation("restriction", "ComplexContentRestriction", &v.Annotated, v.Base, v.Particle, v.Attributes, v.AnyAttribute)
	}
	return unknownType(slot, d)
}

func (x *Writer) derivationStart(local string, a *xsd.Annotated, base xml.Name) error {
	if err := x.open(local, a); err != nil {
		return err
	}
	x.w.QNameAttr("base", base)
	return x.body(local, a)
}

func (x *Writer) complexDerivation(local, typ string, a *xsd.Annotated, base xml.Name, p xsd.Particle, attrs []xsd.AttributeItem, anyAttr *xsd.AnyAttribute) error {
	if err := x.derivationStart(local, a, base); err != nil {
		return err
	}
	if p != nil {
		if err := x.writeParticle(typ+".Particle", p); err != nil {
			return err
		}
	}
	if err := x.writeAttributes(typ+".Attributes", attrs, anyAttr); err != nil {
		return err
	}
	return x.w.End()
}

func (x *Writer) writeSimpleType(st *xsd.SimpleType) error {
	if err := x.open("simpleType", &st.Annotated); err != nil {
		return err
	}
	x.str("name", st.Name)
	if err := x.derivation("simpleType", "final", st.Final); err != nil {
		return err
	}
	if err := x.body("simpleType", &st.Annotated); err != nil {
		return err
	}
	switch v := st.Content.(type) {
	case nil:
	case *xsd.SimpleTypeRestriction:
		if v == nil {
			return unknownType("SimpleType.Content", st.Content)
		}
		if err := checkFacets("SimpleTypeRestriction.Facets", v.Facets); err != nil {
			return err
		}
		if err := x.derivationStart("restriction", &v.Annotated, v.Base); err != nil {
			return err
		}
		if v.SimpleType != nil {
			if err := x.writeSimpleType(v.SimpleType); err != nil {
				return err
			}
		}
		if err := x.writeFacets("restriction", v.Facets); err != nil {
			return err
		}
		if err := x.w.End(); err != nil {
			return err
		}
	case *xsd.SimpleTypeList:
		if v == nil {
			return unknownType("SimpleType.Content", st.Content)
		}
		if err := x.open("list", &v.Annotated); err != nil {
			return err
		}
		x.w.QNameAttr("itemType", v.ItemType)
		if err := x.body("list", &v.Annotated); err != nil {
			return err
		}
		if v.ItemSimpleType != nil {
			if err := x.writeSimpleType(v.ItemSimpleType); err != nil {
				return err
			}
		}
		if err := x.w.End(); err != nil {
			return err
		}
	case *xsd.SimpleTypeUnion:
		if v == nil {
			return unknownType("SimpleType.Content", st.Content)
		}
		if err := x.writeUnion(v); err != nil {
			return err
		}
	default:
		return unknownType("SimpleType.Content", st.Content)
	}
	return x.w.End()
}

func (x *Writer) writeUnion(u *xsd.SimpleTypeUnion) error {
	for _, st := range u.SimpleTypes {
		if st == nil {
			return unknownType("SimpleTypeUnion.SimpleTypes", st)
		}
	}
	if err := x.open("union", &u.Annotated); err != nil {
		return err
	}
	if len(u.MemberTypes) > 0 {
		members := make([]string, 0, len(u.MemberTypes))
		for _, m := range u.MemberTypes {
			members = append(members, x.w.QNameValue("memberTypes", m))
		}
		x.w.Attr("memberTypes", strings.Join(members, " "))
	}
	if err := x.body("union", &u.Annotated); err != nil {
		return err
	}
	for _, st := range u.SimpleTypes {
		if err := x.writeSimpleType(st); err != nil {
			return err
		}
	}
	return x.w.End()
}

func checkFacets(slot string, facets []xsd.Facet) error {
	for _, f := range facets {
		if facetLocal(f) == "" {
			if r, ok := f.(*xsd.Raw); ok && r != nil {
				continue
			}
			return unknownType(slot, f)
		}
	}
	return nil
}

// facetLocal returns the element name of a constraining facet, or "" for
// anything else.
func facetLocal(f xsd.Facet) string {
	v := facetValue(f)
	if v == nil {
		return ""
	}
	switch f.(type) {
	case *xsd.Length:
		return "length"
	case *xsd.MinLength:
		return "minLength"
	case *xsd.MaxLength:
		return "maxLength"
	case *xsd.Pattern:
		return "pattern"
	case *xsd.Enumeration:
		return "enumeration"
	case *xsd.MinInclusive:
		return "minInclusive"
	case *xsd.MaxInclusive:
		return "maxInclusive"
	case *xsd.MinExclusive:
		return "minExclusive"
	case *xsd.MaxExclusive:
		return "maxExclusive"
	case *xsd.TotalDigits:
		return "totalDigits"
	case *xsd.FractionDigits:
		return "fractionDigits"
	case *xsd.WhiteSpace:
		return "whiteSpace"
	}
	return ""
}

func facetValue(f xsd.Facet) *xsd.FacetValue {
	switch v := f.(type) {
	case *xsd.Length:
		return (*xsd.FacetValue)(v)
	case *xsd.MinLength:
		return (*xsd.FacetValue)(v)
	case *xsd.MaxLength:
		return (*xsd.FacetValue)(v)
	case *xsd.Pattern:
		return (*xsd.FacetValue)(v)
	case *xsd.Enumeration:
		return (*xsd.FacetValue)(v)
	case *xsd.MinInclusive:
		return (*xsd.FacetValue)(v)
	case *xsd.MaxInclusive:
		return (*xsd.FacetValue)(v)
	case *xsd.MinExclusive:
		return (*xsd.FacetValue)(v)
	case *xsd.MaxExclusive:
		return (*xsd.FacetValue)(v)
	case *xsd.TotalDigits:
		return (*xsd.FacetValue)(v)
	case *xsd.FractionDigits:
		return (*xsd.FacetValue)(v)
	case *xsd.WhiteSpace:
		return (*xsd.FacetValue)(v)
	}
	return nil
}

// writeFacets writes facets checked by checkFacets. Raw facets are written
// back verbatim.
func (x *Writer) writeFacets(owner string, facets []xsd.Facet) error {
	for _, f := range facets {
		if r, ok := f.(*xsd.Raw); ok {
			if err := x.node(owner, "Facets", r.Element); err != nil {
				return err
			}
			continue
		}
		local, v := facetLocal(f), facetValue(f)
		if err := x.open(local, &v.Annotated); err != nil {
			return err
		}
		x.w.Attr("value", v.Value)
		x.boolean("fixed", v.Fixed)
		if err := x.body(local, &v.Annotated); err != nil {
			return err
		}
		if err := x.w.End(); err != nil {
			return err
		}
	}
	return nil
}

func (x *Writer) writeGroup(g *xsd.Group) error {
	switch p := g.Particle.(type) {
	case nil:
	case *xsd.Sequence, *xsd.Choice, *xsd.All:
		if isNilParticle(p) {
			return unknownType("Group.Particle", p)
		}
	default:
		return unknownType("Group.Particle", p)
	}
	if err := x.open("group", &g.Annotated); err != nil {
		return err
	}
	x.str("name", g.Name)
	if err := x.body("group", &g.Annotated); err != nil {
		return err
	}
	if g.Particle != nil {
		if err := x.writeParticle("Group.Particle", g.Particle); err != nil {
			return err
		}
	}
	return x.w.End()
}

func isNilParticle(p xsd.Particle) bool {
	switch v := p.(type) {
	case *xsd.Element:
		return v == nil
	case *xsd.Any:
		return v == nil
	case *xsd.Sequence:
		return v == nil
	case *xsd.Choice:
		return v == nil
	case *xsd.All:
		return v == nil
	case *xsd.GroupRef:
		return v == nil
	}
	return p == nil
}

// writeParticle writes the top-level particle of a complex type, derivation
// or named group. Only model groups and group references are legal here.
func (x *Writer) writeParticle(slot string, p xsd.Particle) error {
	if isNilParticle(p) {
		return unknownType(slot, p)
	}
	switch v := p.(type) {
	case *xsd.Sequence:
		return x.modelGroup("sequence", &v.Annotated, v.MinOccurs, v.MaxOccurs, "Sequence.Items", v.Items)
	case *xsd.Choice:
		return x.modelGroup("choice", &v.Annotated, v.MinOccurs, v.MaxOccurs, "Choice.Items", v.Items)
	case *xsd.All:
		for _, item := range v.Items {
			if el, ok := item.(*xsd.Element); !ok || el == nil {
				return unknownType("All.Items", item)
			}
		}
		return x.modelGroup("all", &v.Annotated, v.MinOccurs, v.MaxOccurs, "All.Items", v.Items)
	case *xsd.GroupRef:
		if slot == "Group.Particle" {
			break
		}
		return x.writeGroupRef(v)
	}
	return unknownType(slot, p)
}

func (x *Writer) modelGroup(local string, a *xsd.Annotated, min, max xsd.Occurs, slot string, items []xsd.Particle) error {
	for _, item := range items {
		if isNilParticle(item) {
			return unknownType(slot, item)
		}
		if _, ok := item.(*xsd.All); ok {
			return unknownType(slot, item)
		}
	}
	if err := x.open(local, a); err != nil {
		return err
	}
	x.occurs("minOccurs", min)
	x.occurs("maxOccurs", max)
	if err := x.body(local, a); err != nil {
		return err
	}
	for _, item := range items {
		var err error
		switch v := item.(type) {
		case *xsd.Element:
			err = x.writeElement(v)
		case *xsd.Any:
			err = x.writeAny(v)
		case *xsd.GroupRef:
			err = x.writeGroupRef(v)
		default:
			err = x.writeParticle(slot, item)
		}
		if err != nil {
			return err
		}
	}
	return x.w.End()
}

func (x *Writer) writeGroupRef(ref *xsd.GroupRef) error {
	if err := x.open("group", &ref.Annotated); err != nil {
		return err
	}
	x.w.QNameAttr("ref", ref.Ref)
	x.occurs("minOccurs", ref.MinOccurs)
	x.occurs("maxOccurs", ref.MaxOccurs)
	if err := x.body("group", &ref.Annotated); err != nil {
		return err
	}
	return x.w.End()
}

func (x *Writer) writeAny(wc *xsd.Any) error {
	if err := x.open("any", &wc.Annotated); err != nil {
		return err
	}
	x.str("namespace", wc.Namespace)
	if err := x.processContents("any", wc.ProcessContents); err != nil {
		return err
	}
	x.occurs("minOccurs", wc.MinOccurs)
	x.occurs("maxOccurs", wc.MaxOccurs)
	if err := x.body("any", &wc.Annotated); err != nil {
		return err
	}
	return x.w.End()
}
