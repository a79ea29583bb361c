// Package xsd is the object model of an XML Schema 1.0 document as it
// appears on the wire, either standalone or embedded in a WSDL types section.
//
// The model is syntactic: references such as Element.Ref or
// SimpleTypeRestriction.Base are resolved QNames and are never linked to
// their declarations. Each slot that accepts several element kinds is a
// sealed interface implemented by the kinds the grammar allows there.
package xsd

import (
	"encoding/xml"

	"github.com/jacoelho/wsdl/xmlnode"
)

// Namespace is the XML Schema namespace.
const Namespace = "http://www.w3.org/2001/XMLSchema"

// Annotated holds the members shared by every schema component.
type Annotated struct {
	ID         string
	Annotation *Annotation
	// UnhandledAttributes are attributes outside the component's grammar,
	// in document order.
	UnhandledAttributes []xmlnode.Attr
	// UnhandledElements are child elements from other namespaces, in
	// document order.
	UnhandledElements []*xmlnode.Element
}

// Schema is an xs:schema element.
type Schema struct {
	ID                   string
	TargetNamespace      string
	Version              string
	AttributeFormDefault Form
	ElementFormDefault   Form
	BlockDefault         DerivationSet
	FinalDefault         DerivationSet
	// Namespaces are the declarations written on the schema element, in order.
	Namespaces []xmlnode.Namespace
	// Includes holds include, import and redefine directives.
	Includes []External
	Items    []SchemaItem

	UnhandledAttributes []xmlnode.Attr
	UnhandledElements   []*xmlnode.Element
}

// External is an include, import or redefine directive.
type External interface {
	external()
}

// SchemaItem is a top level schema component.
type SchemaItem interface {
	schemaItem()
}

// RedefineItem is a component redefined inside xs:redefine.
type RedefineItem interface {
	redefineItem()
}

// Include is an xs:include directive.
type Include struct {
	Annotated
	SchemaLocation string
}

// Import is an xs:import directive.
type Import struct {
	Annotated
	Namespace      string
	SchemaLocation string
}

// Redefine is an xs:redefine directive. Its annotations are items, so it
// does not embed Annotated.
type Redefine struct {
	ID             string
	SchemaLocation string
	Items          []RedefineItem

	UnhandledAttributes []xmlnode.Attr
	UnhandledElements   []*xmlnode.Element
}

// Notation is an xs:notation declaration.
type Notation struct {
	Annotated
	Name   string
	Public string
	System string
}

// Raw is a facet slot entry the codec does not recognize, kept verbatim.
type Raw struct {
	Element *xmlnode.Element
}

// Name returns the element name, or the zero name when the carrier is empty.
func (r *Raw) Name() xml.Name {
	if r == nil || r.Element == nil {
		return xml.Name{}
	}
	return r.Element.Name
}

func (*Include) external()  {}
func (*Import) external()   {}
func (*Redefine) external() {}

func (*Element) schemaItem()        {}
func (*ComplexType) schemaItem()    {}
func (*SimpleType) schemaItem()     {}
func (*Group) schemaItem()          {}
func (*AttributeGroup) schemaItem() {}
func (*Attribute) schemaItem()      {}
func (*Notation) schemaItem()       {}
func (*Annotation) schemaItem()     {}

func (*Annotation) redefineItem()     {}
func (*SimpleType) redefineItem()     {}
func (*ComplexType) redefineItem()    {}
func (*Group) redefineItem()          {}
func (*AttributeGroup) redefineItem() {}
