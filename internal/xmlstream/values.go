package xmlstream

import (
	"fmt"
	"strconv"
	"strings"

	wsdlerrors "github.com/jacoelho/wsdl/errors"
)

// UnknownType reports start as an element not accepted in slot.
func (r *Reader) UnknownType(start *StartElement, slot string) error {
	return &wsdlerrors.UnknownTypeError{Location: start.Location, Slot: slot, Name: start.Name}
}

// InvalidEnum reports a token outside the named enumeration.
func (r *Reader) InvalidEnum(start *StartElement, enum, value string) error {
	return &wsdlerrors.InvalidEnumValueError{Location: start.Location, Enum: enum, Value: value, Name: start.Name}
}

// Bool parses an xs:boolean attribute value.
func (r *Reader) Bool(start *StartElement, value string) (bool, error) {
	switch strings.TrimSpace(value) {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	}
	return false, r.InvalidEnum(start, "boolean", value)
}

// Int parses an integer attribute value.
func (r *Reader) Int(start *StartElement, attr, value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, r.malformed(start, fmt.Errorf("invalid %s attribute value %q", attr, value))
	}
	return n, nil
}
