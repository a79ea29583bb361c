package xsd

import "encoding/xml"

// Element is an xs:element declaration or reference.
type Element struct {
	Annotated
	Name              string
	Ref               xml.Name
	Type              xml.Name
	SubstitutionGroup xml.Name
	MinOccurs         Occurs
	MaxOccurs         Occurs
	Default           string
	// HasDefault is true when the default attribute is present, even if empty.
	HasDefault bool
	Fixed      string
	HasFixed   bool
	Nillable   bool
	Abstract   bool
	Final      DerivationSet
	Block      DerivationSet
	Form       Form
	// SchemaType is the anonymous type definition, if any.
	SchemaType  TypeDefinition
	Constraints []IdentityConstraint
}

// TypeDefinition is an anonymous *SimpleType or *ComplexType.
type TypeDefinition interface {
	typeDefinition()
}

func (*SimpleType) typeDefinition()  {}
func (*ComplexType) typeDefinition() {}

// Attribute is an xs:attribute declaration or reference.
type Attribute struct {
	Annotated
	Name       string
	Ref        xml.Name
	Type       xml.Name
	Use        AttributeUse
	Default    string
	HasDefault bool
	Fixed      string
	HasFixed   bool
	Form       Form
	SimpleType *SimpleType
}

// AttributeGroup is a named xs:attributeGroup definition.
type AttributeGroup struct {
	Annotated
	Name         string
	Attributes   []AttributeItem
	AnyAttribute *AnyAttribute
}

// AttributeGroupRef is an xs:attributeGroup reference.
type AttributeGroupRef struct {
	Annotated
	Ref xml.Name
}

// AttributeItem is an *Attribute or *AttributeGroupRef.
type AttributeItem interface {
	attributeItem()
}

func (*Attribute) attributeItem()         {}
func (*AttributeGroupRef) attributeItem() {}

// AnyAttribute is an xs:anyAttribute wildcard.
type AnyAttribute struct {
	Annotated
	Namespace       string
	ProcessContents ProcessContents
}

// Group is a named xs:group definition. Particle holds its sequence, choice
// or all.
type Group struct {
	Annotated
	Name     string
	Particle Particle
}
