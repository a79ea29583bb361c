package wsdl

import (
	"encoding/xml"

	"github.com/jacoelho/wsdl/xmlnode"
)

// Extension is an extensibility element. The binding variants of this
// package implement it, and *Raw covers every other element.
type Extension interface {
	extension()
}

// Raw is an extensibility element the codec does not recognize. The element
// is written back verbatim.
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

// FormatExtension holds the members shared by binding extension elements.
type FormatExtension struct {
	// Required is the wsdl:required attribute.
	Required bool
	// ExtensibleAttributes are attributes outside the element's grammar.
	ExtensibleAttributes []xmlnode.Attr
	// UnhandledElements are child elements the extension does not define.
	UnhandledElements []*xmlnode.Element
}

func (*Raw) extension() {}

func (*SoapBinding) extension()          {}
func (*SoapOperationBinding) extension() {}
func (*SoapBodyBinding) extension()      {}
func (*SoapHeaderBinding) extension()    {}
func (*SoapFaultBinding) extension()     {}
func (*SoapAddressBinding) extension()   {}

func (*Soap12Binding) extension()          {}
func (*Soap12OperationBinding) extension() {}
func (*Soap12BodyBinding) extension()      {}
func (*Soap12HeaderBinding) extension()    {}
func (*Soap12FaultBinding) extension()     {}
func (*Soap12AddressBinding) extension()   {}

func (*HTTPBinding) extension()          {}
func (*HTTPOperationBinding) extension() {}
func (*HTTPAddressBinding) extension()   {}
func (*HTTPURLEncoded) extension()       {}
func (*HTTPURLReplacement) extension()   {}

func (*MimeContentBinding) extension()          {}
func (*MimeMultipartRelatedBinding) extension() {}
func (*MimeXMLBinding) extension()              {}
func (*MimeTextBinding) extension()             {}
