package wsdl

import "encoding/xml"

// Binding is a wsdl:binding. Its Extensions usually hold one
// *SoapBinding, *Soap12Binding or *HTTPBinding.
type Binding struct {
	Extensible
	Name       string
	Type       xml.Name
	Operations []*OperationBinding
}

// OperationBinding is an operation inside a binding.
type OperationBinding struct {
	Extensible
	Name   string
	Input  *MessageBinding
	Output *MessageBinding
	Faults []*MessageBinding
}

// MessageBinding is an input, output or fault of an operation binding. Its
// Extensions describe the message encoding.
type MessageBinding struct {
	Extensible
	Name string
}

// Service is a wsdl:service.
type Service struct {
	Extensible
	Name  string
	Ports []*Port
}

// Port is a wsdl:port. Its Extensions usually hold one address variant.
type Port struct {
	Extensible
	Name    string
	Binding xml.Name
}
