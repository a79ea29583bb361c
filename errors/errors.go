// Package errors defines the errors returned by the WSDL and XSD codecs.
//
// Every error is fatal for the document being processed. Callers can switch
// on the concrete type with errors.As or on the code with CodeOf.
package errors

import (
	"encoding/xml"
	"errors"
	"fmt"
	"strings"
)

// ErrorCode identifies an error kind.
type ErrorCode string

const (
	// ErrUnknownType indicates a value or element whose type is not legal for its slot.
	ErrUnknownType ErrorCode = "unknown-type"
	// ErrInvalidEnumValue indicates a token or value outside a closed vocabulary.
	ErrInvalidEnumValue ErrorCode = "invalid-enum-value"
	// ErrInvalidContent indicates a slot that must hold a foreign element or nothing holds neither.
	ErrInvalidContent ErrorCode = "invalid-content"
	// ErrMalformedDocument indicates a structural failure of the XML input.
	ErrMalformedDocument ErrorCode = "malformed-document"
)

// Location is the position of the offending construct. Zero values mean the
// position is unknown, which is always the case on write.
type Location struct {
	Line   int
	Column int
}

func (l Location) String() string {
	if l.Line <= 0 {
		return ""
	}
	if l.Column <= 0 {
		return fmt.Sprintf("line %d", l.Line)
	}
	return fmt.Sprintf("line %d, column %d", l.Line, l.Column)
}

// UnknownTypeError reports a value or element not among the variants a slot
// accepts.
//
//nolint:errname // public API name follows the codec error taxonomy.
type UnknownTypeError struct {
	Location
	// Slot names the entity field being read or written.
	Slot string
	// Name is the offending element name or xsi:type QName when reading, or
	// the element being written.
	Name xml.Name
	// Type is the Go type of the rejected value when writing.
	Type string
}

// Code returns ErrUnknownType.
func (e *UnknownTypeError) Code() ErrorCode { return ErrUnknownType }

func (e *UnknownTypeError) Error() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("[%s] ", ErrUnknownType))
	switch {
	case e.Type != "":
		b.WriteString(fmt.Sprintf("value of type %s is not allowed in %s", e.Type, e.Slot))
	default:
		b.WriteString(fmt.Sprintf("type %s is not allowed in %s", formatName(e.Name), e.Slot))
	}
	appendLocation(&b, e.Location)
	return b.String()
}

// InvalidEnumValueError reports a token or enumeration value that has no
// mapping.
//
//nolint:errname // public API name follows the codec error taxonomy.
type InvalidEnumValueError struct {
	Location
	// Enum names the enumeration, for example "SoapBindingUse".
	Enum string
	// Value is the offending token or the formatted value.
	Value string
	// Name is the element carrying the value.
	Name xml.Name
}

// Code returns ErrInvalidEnumValue.
func (e *InvalidEnumValueError) Code() ErrorCode { return ErrInvalidEnumValue }

func (e *InvalidEnumValueError) Error() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("[%s] %q is not a valid %s value", ErrInvalidEnumValue, e.Value, e.Enum))
	if e.Name.Local != "" {
		b.WriteString(fmt.Sprintf(" on %s", formatName(e.Name)))
	}
	appendLocation(&b, e.Location)
	return b.String()
}

// InvalidContentError reports a slot that must hold a foreign element or be
// empty but holds something else.
//
//nolint:errname // public API name follows the codec error taxonomy.
type InvalidContentError struct {
	Location
	Slot string
	// Name is the element owning the slot.
	Name xml.Name
	// Type is the Go type found in the slot.
	Type string
}

// Code returns ErrInvalidContent.
func (e *InvalidContentError) Code() ErrorCode { return ErrInvalidContent }

func (e *InvalidContentError) Error() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("[%s] %s of %s must be an XML element or absent", ErrInvalidContent, e.Slot, formatName(e.Name)))
	if e.Type != "" {
		b.WriteString(fmt.Sprintf(" (actual: %s)", e.Type))
	}
	appendLocation(&b, e.Location)
	return b.String()
}

// MalformedDocumentError reports input that ended or broke structure inside
// an element.
//
//nolint:errname // public API name follows the codec error taxonomy.
type MalformedDocumentError struct {
	Location
	// Name is the innermost open element, when known.
	Name xml.Name
	Err  error
}

// Code returns ErrMalformedDocument.
func (e *MalformedDocumentError) Code() ErrorCode { return ErrMalformedDocument }

func (e *MalformedDocumentError) Error() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("[%s] ", ErrMalformedDocument))
	if e.Err != nil {
		b.WriteString(e.Err.Error())
	} else {
		b.WriteString("malformed document")
	}
	if e.Name.Local != "" {
		b.WriteString(fmt.Sprintf(" in %s", formatName(e.Name)))
	}
	appendLocation(&b, e.Location)
	return b.String()
}

func (e *MalformedDocumentError) Unwrap() error { return e.Err }

type coded interface {
	Code() ErrorCode
}

// CodeOf returns the code of the first codec error in err's chain.
func CodeOf(err error) (ErrorCode, bool) {
	if err == nil {
		return "", false
	}
	var c coded
	if errors.As(err, &c) {
		return c.Code(), true
	}
	return "", false
}

func appendLocation(b *strings.Builder, loc Location) {
	if s := loc.String(); s != "" {
		b.WriteString(" at ")
		b.WriteString(s)
	}
}

func formatName(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return "{" + n.Space + "}" + n.Local
}
