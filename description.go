package wsdl

import (
	"encoding/xml"

	"github.com/jacoelho/wsdl/xmlnode"
	"github.com/jacoelho/wsdl/xsd"
)

const xsdNamespace = xsd.Namespace

// Extensible holds the members every WSDL entity carries besides its own
// grammar.
type Extensible struct {
	// DocumentationElement is the wsdl:documentation element, kept whole.
	DocumentationElement *xmlnode.Element
	// ExtensibleAttributes are attributes outside the entity's grammar, in
	// document order.
	ExtensibleAttributes []xmlnode.Attr
	// Extensions are extensibility elements in document order: binding
	// variants such as *SoapAddressBinding, or *Raw for anything else.
	Extensions []Extension
}

// ServiceDescription is a wsdl:definitions document.
type ServiceDescription struct {
	Extensible
	Name            string
	TargetNamespace string
	// Namespaces are declared on the definitions element, in order.
	Namespaces []xmlnode.Namespace
	Imports    []*Import
	Types      *Types
	Messages   []*Message
	PortTypes  []*PortType
	Bindings   []*Binding
	Services   []*Service
}

// Import is a wsdl:import.
type Import struct {
	Extensible
	Namespace string
	Location  string
}

// Types is the wsdl:types section.
type Types struct {
	Extensible
	Schemas []*xsd.Schema
}

// Message is a wsdl:message.
type Message struct {
	Extensible
	Name  string
	Parts []*MessagePart
}

// MessagePart is a wsdl:part. Element and Type are alternatives; nothing
// checks that only one is set.
type MessagePart struct {
	Extensible
	Name    string
	Element xml.Name
	Type    xml.Name
}

// Message returns the message named name.
func (sd *ServiceDescription) Message(name string) *Message {
	for _, m := range sd.Messages {
		if m.Name == name {
			return m
		}
	}
	return nil
}

// PortType returns the port type named name.
func (sd *ServiceDescription) PortType(name string) *PortType {
	for _, pt := range sd.PortTypes {
		if pt.Name == name {
			return pt
		}
	}
	return nil
}

// Binding returns the binding named name.
func (sd *ServiceDescription) Binding(name string) *Binding {
	for _, b := range sd.Bindings {
		if b.Name == name {
			return b
		}
	}
	return nil
}

// Service returns the service named name.
func (sd *ServiceDescription) Service(name string) *Service {
	for _, s := range sd.Services {
		if s.Name == name {
			return s
		}
	}
	return nil
}
