package errors

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want []string
	}{
		{
			name: "unknown type on read",
			err: &UnknownTypeError{
				Slot:     "document element",
				Name:     xml.Name{Space: "urn:x", Local: "root"},
				Location: Location{Line: 3, Column: 7},
			},
			want: []string{"[unknown-type]", "{urn:x}root", "document element", "line 3, column 7"},
		},
		{
			name: "unknown type on write",
			err:  &UnknownTypeError{Slot: "port extensions", Type: "*wsdl.SoapBinding"},
			want: []string{"*wsdl.SoapBinding", "port extensions"},
		},
		{
			name: "enum",
			err:  &InvalidEnumValueError{Enum: "SoapBindingUse", Value: "bogus", Name: xml.Name{Local: "body"}},
			want: []string{"[invalid-enum-value]", `"bogus"`, "SoapBindingUse", "on body"},
		},
		{
			name: "content",
			err:  &InvalidContentError{Slot: "documentation", Name: xml.Name{Local: "port"}, Type: "<nil>"},
			want: []string{"[invalid-content]", "documentation of port", "(actual: <nil>)"},
		},
		{
			name: "malformed",
			err:  &MalformedDocumentError{Err: io.ErrUnexpectedEOF, Name: xml.Name{Local: "definitions"}, Location: Location{Line: 9}},
			want: []string{"[malformed-document]", "unexpected EOF", "in definitions", "at line 9"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, want := range tt.want {
				if !strings.Contains(msg, want) {
					t.Fatalf("Error() = %q, want substring %q", msg, want)
				}
			}
		})
	}
}

func TestCodeOfThroughWrapping(t *testing.T) {
	err := fmt.Errorf("read port: %w", &InvalidEnumValueError{Enum: "x", Value: "y"})
	code, ok := CodeOf(err)
	if !ok || code != ErrInvalidEnumValue {
		t.Fatalf("CodeOf() = %q, %v, want %q, true", code, ok, ErrInvalidEnumValue)
	}
	if _, ok := CodeOf(errors.New("plain")); ok {
		t.Fatalf("CodeOf(plain) ok = true")
	}
	if _, ok := CodeOf(nil); ok {
		t.Fatalf("CodeOf(nil) ok = true")
	}
}

func TestMalformedUnwrap(t *testing.T) {
	err := fmt.Errorf("outer: %w", &MalformedDocumentError{Err: io.ErrUnexpectedEOF})
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("errors.Is(err, io.ErrUnexpectedEOF) = false")
	}
	var mal *MalformedDocumentError
	if !errors.As(err, &mal) {
		t.Fatalf("errors.As(*MalformedDocumentError) = false")
	}
}
