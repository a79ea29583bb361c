package xsd

import "encoding/xml"

// ComplexType is an xs:complexType definition. A type has either a
// ContentModel or a Particle with Attributes, not both.
type ComplexType struct {
	Annotated
	Name         string
	Abstract     bool
	Mixed        bool
	Block        DerivationSet
	Final        DerivationSet
	ContentModel ContentModel
	Particle     Particle
	Attributes   []AttributeItem
	AnyAttribute *AnyAttribute
}

// ContentModel is a *SimpleContent or *ComplexContent.
type ContentModel interface {
	contentModel()
}

// SimpleContent is an xs:simpleContent element. Derivation holds a
// *SimpleContentExtension or *SimpleContentRestriction.
type SimpleContent struct {
	Annotated
	Derivation ContentDerivation
}

// ComplexContent is an xs:complexContent element. Derivation holds a
// *ComplexContentExtension or *ComplexContentRestriction.
type ComplexContent struct {
	Annotated
	Mixed      bool
	Derivation ContentDerivation
}

// ContentDerivation is an extension or restriction inside a content model.
type ContentDerivation interface {
	contentDerivation()
}

// SimpleContentExtension is xs:extension inside xs:simpleContent.
type SimpleContentExtension struct {
	Annotated
	Base         xml.Name
	Attributes   []AttributeItem
	AnyAttribute *AnyAttribute
}

// SimpleContentRestriction is xs:restriction inside xs:simpleContent.
type SimpleContentRestriction struct {
	Annotated
	Base         xml.Name
	SimpleType   *SimpleType
	Facets       []Facet
	Attributes   []AttributeItem
	AnyAttribute *AnyAttribute
}

// ComplexContentExtension is xs:extension inside xs:complexContent.
type ComplexContentExtension struct {
	Annotated
	Base         xml.Name
	Particle     Particle
	Attributes   []AttributeItem
	AnyAttribute *AnyAttribute
}

// ComplexContentRestriction is xs:restriction inside xs:complexContent.
type ComplexContentRestriction struct {
	Annotated
	Base         xml.Name
	Particle     Particle
	Attributes   []AttributeItem
	AnyAttribute *AnyAttribute
}

func (*SimpleContent) contentModel()  {}
func (*ComplexContent) contentModel() {}

func (*SimpleContentExtension) contentDerivation()    {}
func (*SimpleContentRestriction) contentDerivation()  {}
func (*ComplexContentExtension) contentDerivation()   {}
func (*ComplexContentRestriction) contentDerivation() {}

// SimpleType is an xs:simpleType definition.
type SimpleType struct {
	Annotated
	Name    string
	Final   DerivationSet
	Content SimpleTypeContent
}

// SimpleTypeContent is a *SimpleTypeList, *SimpleTypeUnion or
// *SimpleTypeRestriction.
type SimpleTypeContent interface {
	simpleTypeContent()
}

// SimpleTypeList is xs:list. ItemType and ItemSimpleType are exclusive.
type SimpleTypeList struct {
	Annotated
	ItemType       xml.Name
	ItemSimpleType *SimpleType
}

// SimpleTypeUnion is xs:union.
type SimpleTypeUnion struct {
	Annotated
	MemberTypes []xml.Name
	SimpleTypes []*SimpleType
}

// SimpleTypeRestriction is xs:restriction inside xs:simpleType.
type SimpleTypeRestriction struct {
	Annotated
	Base       xml.Name
	SimpleType *SimpleType
	Facets     []Facet
}

func (*SimpleTypeList) simpleTypeContent()        {}
func (*SimpleTypeUnion) simpleTypeContent()       {}
func (*SimpleTypeRestriction) simpleTypeContent() {}
