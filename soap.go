package wsdl

import (
	"encoding/xml"
	"strconv"

	"github.com/jacoelho/wsdl/internal/tokens"
)

// SoapBindingStyle is the style attribute of soap:binding and soap:operation.
type SoapBindingStyle int

const (
	// SoapBindingStyleDefault means the attribute is absent.
	SoapBindingStyleDefault SoapBindingStyle = iota
	SoapBindingStyleDocument
	SoapBindingStyleRpc
)

var styleTokens = tokens.New("SoapBindingStyle",
	tokens.Pair[SoapBindingStyle]{Value: SoapBindingStyleDocument, Token: "document"},
	tokens.Pair[SoapBindingStyle]{Value: SoapBindingStyleRpc, Token: "rpc"},
)

// Token returns the wire token. SoapBindingStyleDefault has none.
func (s SoapBindingStyle) Token() (string, bool) { return styleTokens.Token(s) }

func (s SoapBindingStyle) String() string {
	if tok, ok := s.Token(); ok {
		return tok
	}
	if s == SoapBindingStyleDefault {
		return "default"
	}
	return "SoapBindingStyle(" + strconv.Itoa(int(s)) + ")"
}

// ParseSoapBindingStyle parses a style token.
func ParseSoapBindingStyle(s string) (SoapBindingStyle, bool) { return styleTokens.Parse(s) }

// SoapBindingUse is the use attribute of body, header, headerfault and
// fault bindings.
type SoapBindingUse int

const (
	// SoapBindingUseDefault means the attribute is absent.
	SoapBindingUseDefault SoapBindingUse = iota
	SoapBindingUseEncoded
	SoapBindingUseLiteral
)

var useTokens = tokens.New("SoapBindingUse",
	tokens.Pair[SoapBindingUse]{Value: SoapBindingUseEncoded, Token: "encoded"},
	tokens.Pair[SoapBindingUse]{Value: SoapBindingUseLiteral, Token: "literal"},
)

// Token returns the wire token. SoapBindingUseDefault has none.
func (u SoapBindingUse) Token() (string, bool) { return useTokens.Token(u) }

func (u SoapBindingUse) String() string {
	if tok, ok := u.Token(); ok {
		return tok
	}
	if u == SoapBindingUseDefault {
		return "default"
	}
	return "SoapBindingUse(" + strconv.Itoa(int(u)) + ")"
}

// ParseSoapBindingUse parses a use token.
func ParseSoapBindingUse(s string) (SoapBindingUse, bool) { return useTokens.Parse(s) }

// SoapBinding is soap:binding.
type SoapBinding struct {
	FormatExtension
	Transport string
	Style     SoapBindingStyle
}

// SoapOperationBinding is soap:operation.
type SoapOperationBinding struct {
	FormatExtension
	SoapAction string
	Style      SoapBindingStyle
}

// SoapBodyBinding is soap:body. A nil Parts means the attribute is absent;
// an empty non-nil slice is written as parts="".
type SoapBodyBinding struct {
	FormatExtension
	Parts     []string
	Use       SoapBindingUse
	Encoding  string
	Namespace string
}

// SoapHeaderBinding is soap:header. Faults are written in the namespace of
// the header that holds them.
type SoapHeaderBinding struct {
	FormatExtension
	Message   xml.Name
	Part      string
	Use       SoapBindingUse
	Encoding  string
	Namespace string
	Faults    []*SoapHeaderFaultBinding
}

// SoapHeaderFaultBinding is soap:headerfault.
type SoapHeaderFaultBinding struct {
	FormatExtension
	Message   xml.Name
	Part      string
	Use       SoapBindingUse
	Encoding  string
	Namespace string
}

// SoapFaultBinding is soap:fault.
type SoapFaultBinding struct {
	FormatExtension
	Name      string
	Use       SoapBindingUse
	Encoding  string
	Namespace string
}

// SoapAddressBinding is soap:address.
type SoapAddressBinding struct {
	FormatExtension
	Location string
}

// SOAP 1.2 binding elements share the SOAP 1.1 shapes.
type (
	Soap12Binding          SoapBinding
	Soap12OperationBinding SoapOperationBinding
	Soap12BodyBinding      SoapBodyBinding
	Soap12HeaderBinding    SoapHeaderBinding
	Soap12FaultBinding     SoapFaultBinding
	Soap12AddressBinding   SoapAddressBinding
)
