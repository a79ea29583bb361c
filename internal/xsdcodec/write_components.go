package xsdcodec

import "github.com/jacoelho/wsdl/xsd"

func (x *Writer) writeElement(el *xsd.Element) error {
	if err := checkTypeDefinition(el.SchemaType); err != nil {
		return err
	}
	for _, ic := range el.Constraints {
		if err := checkIdentityConstraint(ic); err != nil {
			return err
		}
	}
	if err := x.open("element", &el.Annotated); err != nil {
		return err
	}
	x.str("name", el.Name)
	x.w.QNameAttr("ref", el.Ref)
	x.w.QNameAttr("type", el.Type)
	x.w.QNameAttr("substitutionGroup", el.SubstitutionGroup)
	x.occurs("minOccurs", el.MinOccurs)
	x.occurs("maxOccurs", el.MaxOccurs)
	if el.HasDefault || el.Default != "" {
		x.w.Attr("default", el.Default)
	}
	if el.HasFixed || el.Fixed != "" {
		x.w.Attr("fixed", el.Fixed)
	}
	x.boolean("nillable", el.Nillable)
	x.boolean("abstract", el.Abstract)
	if err := x.derivation("element", "final", el.Final); err != nil {
		return err
	}
	if err := x.derivation("element", "block", el.Block); err != nil {
		return err
	}
	if err := x.form("element", "form", el.Form); err != nil {
		return err
	}
	if err := x.body("element", &el.Annotated); err != nil {
		return err
	}
	switch t := el.SchemaType.(type) {
	case *xsd.SimpleType:
		if err := x.writeSimpleType(t); err != nil {
			return err
		}
	case *xsd.ComplexType:
		if err := x.writeComplexType(t); err != nil {
			return err
		}
	}
	for _, ic := range el.Constraints {
		if err := x.writeIdentityConstraint(ic); err != nil {
			return err
		}
	}
	return x.w.End()
}

func checkTypeDefinition(t xsd.TypeDefinition) error {
	switch v := t.(type) {
	case nil:
		return nil
	case *xsd.SimpleType:
		if v != nil {
			return nil
		}
	case *xsd.ComplexType:
		if v != nil {
			return nil
		}
	}
	return unknownType("Element.SchemaType", t)
}

func (x *Writer) writeAttribute(at *xsd.Attribute) error {
	if err := x.open("attribute", &at.Annotated); err != nil {
		return err
	}
	x.str("name", at.Name)
	x.w.QNameAttr("ref", at.Ref)
	x.w.QNameAttr("type", at.Type)
	if at.Use != xsd.AttributeUseDefault {
		tok, ok := at.Use.Token()
		if !ok {
			return invalidEnum("AttributeUse", at.Use, "attribute")
		}
		x.w.Attr("use", tok)
	}
	if at.HasDefault || at.Default != "" {
		x.w.Attr("default", at.Default)
	}
	if at.HasFixed || at.Fixed != "" {
		x.w.Attr("fixed", at.Fixed)
	}
	if err := x.form("attribute", "form", at.Form); err != nil {
		return err
	}
	if err := x.body("attribute", &at.Annotated); err != nil {
		return err
	}
	if at.SimpleType != nil {
		if err := x.writeSimpleType(at.SimpleType); err != nil {
			return err
		}
	}
	return x.w.End()
}

func checkAttributeItems(slot string, items []xsd.AttributeItem) error {
	for _, item := range items {
		switch v := item.(type) {
		case *xsd.Attribute:
			if v != nil {
				continue
			}
		case *xsd.AttributeGroupRef:
			if v != nil {
				continue
			}
		}
		return unknownType(slot, item)
	}
	return nil
}

// writeAttributes writes an attribute list followed by its wildcard.
func (x *Writer) writeAttributes(slot string, items []xsd.AttributeItem, anyAttr *xsd.AnyAttribute) error {
	if err := checkAttributeItems(slot, items); err != nil {
		return err
	}
	for _, item := range items {
		var err error
		switch v := item.(type) {
		case *xsd.Attribute:
			err = x.writeAttribute(v)
		case *xsd.AttributeGroupRef:
			err = x.writeAttributeGroupRef(v)
		}
		if err != nil {
			return err
		}
	}
	if anyAttr == nil {
		return nil
	}
	if err := x.open("anyAttribute", &anyAttr.Annotated); err != nil {
		return err
	}
	x.str("namespace", anyAttr.Namespace)
	if err := x.processContents("anyAttribute", anyAttr.ProcessContents); err != nil {
		return err
	}
	if err := x.body("anyAttribute", &anyAttr.Annotated); err != nil {
		return err
	}
	return x.w.End()
}

func (x *Writer) writeAttributeGroup(g *xsd.AttributeGroup) error {
	if err := checkAttributeItems("AttributeGroup.Attributes", g.Attributes); err != nil {
		return err
	}
	if err := x.open("attributeGroup", &g.Annotated); err != nil {
		return err
	}
	x.str("name", g.Name)
	if err := x.body("attributeGroup", &g.Annotated); err != nil {
		return err
	}
	if err := x.writeAttributes("AttributeGroup.Attributes", g.Attributes, g.AnyAttribute); err != nil {
		return err
	}
	return x.w.End()
}

func (x *Writer) writeAttributeGroupRef(ref *xsd.AttributeGroupRef) error {
	if err := x.open("attributeGroup", &ref.Annotated); err != nil {
		return err
	}
	x.w.QNameAttr("ref", ref.Ref)
	if err := x.body("attributeGroup", &ref.Annotated); err != nil {
		return err
	}
	return x.w.End()
}

func checkIdentityConstraint(ic xsd.IdentityConstraint) error {
	switch v := ic.(type) {
	case *xsd.Key:
		if v != nil {
			return nil
		}
	case *xsd.Unique:
		if v != nil {
			return nil
		}
	case *xsd.Keyref:
		if v != nil {
			return nil
		}
	}
	return unknownType("Element.Constraints", ic)
}

func (x *Writer) writeIdentityConstraint(ic xsd.IdentityConstraint) error {
	var (
		local    string
		slot     string
		ann      *xsd.Annotated
		name     string
		selector *xsd.XPath
		fields   []*xsd.XPath
	)
	switch v := ic.(type) {
	case *xsd.Key:
		local, slot, ann, name, selector, fields = "key", "Key.Fields", &v.Annotated, v.Name, v.Selector, v.Fields
	case *xsd.Unique:
		local, slot, ann, name, selector, fields = "unique", "Unique.Fields", &v.Annotated, v.Name, v.Selector, v.Fields
	case *xsd.Keyref:
		local, slot, ann, name, selector, fields = "keyref", "Keyref.Fields", &v.Annotated, v.Name, v.Selector, v.Fields
	default:
		return unknownType("Element.Constraints", ic)
	}
	if err := x.open(local, ann); err != nil {
		return err
	}
	x.str("name", name)
	if kr, ok := ic.(*xsd.Keyref); ok {
		x.w.QNameAttr("refer", kr.Refer)
	}
	if err := x.body(local, ann); err != nil {
		return err
	}
	if selector != nil {
		if err := x.writeXPath("selector", selector); err != nil {
			return err
		}
	}
	for _, f := range fields {
		if f == nil {
			return unknownType(slot, f)
		}
		if err := x.writeXPath("field", f); err != nil {
			return err
		}
	}
	return x.w.End()
}

func (x *Writer) writeXPath(local string, xp *xsd.XPath) error {
	if err := x.open(local, &xp.Annotated); err != nil {
		return err
	}
	x.str("xpath", xp.XPath)
	if err := x.body(local, &xp.Annotated); err != nil {
		return err
	}
	return x.w.End()
}
