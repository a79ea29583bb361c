package wsdl

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	wsdlerrors "github.com/jacoelho/wsdl/errors"
)

func invalidEnum(enum string, v fmt.Stringer, space, local string) error {
	return &wsdlerrors.InvalidEnumValueError{Enum: enum, Value: v.String(), Name: xml.Name{Space: space, Local: local}}
}

// writeExtension writes one extension of the element named owner. Slot
// legality is checked before the owner is started.
func (x *Writer) writeExtension(owner string, e Extension) error {
	switch v := e.(type) {
	case *Raw:
		if v.Element == nil {
			return &wsdlerrors.InvalidContentError{Slot: "Raw.Element", Name: typeName(owner), Type: fmt.Sprintf("%T", v.Element)}
		}
		return x.node(owner, "Extensions", v.Element)
	case *SoapBinding:
		return x.writeSoapBinding(SoapNamespace, v)
	case *Soap12Binding:
		return x.writeSoapBinding(Soap12Namespace, (*SoapBinding)(v))
	case *SoapOperationBinding:
		return x.writeSoapOperation(SoapNamespace, v)
	case *Soap12OperationBinding:
		return x.writeSoapOperation(Soap12Namespace, (*SoapOperationBinding)(v))
	case *SoapBodyBinding:
		return x.writeSoapBody(SoapNamespace, v)
	case *Soap12BodyBinding:
		return x.writeSoapBody(Soap12Namespace, (*SoapBodyBinding)(v))
	case *SoapHeaderBinding:
		return x.writeSoapHeader(SoapNamespace, v)
	case *Soap12HeaderBinding:
		return x.writeSoapHeader(Soap12Namespace, (*SoapHeaderBinding)(v))
	case *SoapFaultBinding:
		return x.writeSoapFault(SoapNamespace, v)
	case *Soap12FaultBinding:
		return x.writeSoapFault(Soap12Namespace, (*SoapFaultBinding)(v))
	case *SoapAddressBinding:
		return x.writeLocated(SoapNamespace, "address", "location", v.Location, &v.FormatExtension)
	case *Soap12AddressBinding:
		return x.writeLocated(Soap12Namespace, "address", "location", v.Location, &v.FormatExtension)
	case *HTTPBinding:
		return x.writeLocated(HTTPNamespace, "binding", "verb", v.Verb, &v.FormatExtension)
	case *HTTPOperationBinding:
		return x.writeLocated(HTTPNamespace, "operation", "location", v.Location, &v.FormatExtension)
	case *HTTPAddressBinding:
		return x.writeLocated(HTTPNamespace, "address", "location", v.Location, &v.FormatExtension)
	case *HTTPURLEncoded:
		return x.writeLocated(HTTPNamespace, "urlEncoded", "", "", &v.FormatExtension)
	case *HTTPURLReplacement:
		return x.writeLocated(HTTPNamespace, "urlReplacement", "", "", &v.FormatExtension)
	case *MimeContentBinding:
		return x.writeMimeContent(v)
	case *MimeXMLBinding:
		return x.writeLocated(MimeNamespace, "mimeXml", "part", v.Part, &v.FormatExtension)
	case *MimeMultipartRelatedBinding:
		return x.writeMultipartRelated(v)
	case *MimeTextBinding:
		return x.writeMimeText(v)
	}
	return unknownType(owner+".Extensions", e)
}

// openFormat starts a binding extension and writes wsdl:required.
func (x *Writer) openFormat(space, local string, fe *FormatExtension) error {
	if err := x.w.Start(space, local, "", nil); err != nil {
		return err
	}
	if fe.Required {
		x.w.AttrNS(Namespace, "required", "", "true")
	}
	return nil
}

// closeFormat writes the extensible attributes and unhandled elements of a
// binding extension and ends it.
func (x *Writer) closeFormat(space, local string, fe *FormatExtension, children func() error) error {
	x.attrs(fe.ExtensibleAttributes)
	if children != nil {
		if err := children(); err != nil {
			return err
		}
	}
	if err := x.unhandled(xml.Name{Space: space, Local: local}, fe.UnhandledElements); err != nil {
		return err
	}
	return x.w.End()
}

// writeLocated writes an extension with at most one string attribute.
func (x *Writer) writeLocated(space, local, attr, value string, fe *FormatExtension) error {
	if err := x.openFormat(space, local, fe); err != nil {
		return err
	}
	if attr != "" {
		x.str(attr, value)
	}
	return x.closeFormat(space, local, fe, nil)
}

func (x *Writer) style(space, local string, s SoapBindingStyle) error {
	if s == SoapBindingStyleDefault {
		return nil
	}
	tok, ok := s.Token()
	if !ok {
		return invalidEnum("SoapBindingStyle", s, space, local)
	}
	x.w.Attr("style", tok)
	return nil
}

func (x *Writer) use(space, local string, u SoapBindingUse) error {
	if u == SoapBindingUseDefault {
		return nil
	}
	tok, ok := u.Token()
	if !ok {
		return invalidEnum("SoapBindingUse", u, space, local)
	}
	x.w.Attr("use", tok)
	return nil
}

func (x *Writer) writeSoapBinding(space string, b *SoapBinding) error {
	if _, ok := b.Style.Token(); !ok && b.Style != SoapBindingStyleDefault {
		return invalidEnum("SoapBindingStyle", b.Style, space, "binding")
	}
	if err := x.openFormat(space, "binding", &b.FormatExtension); err != nil {
		return err
	}
	x.str("transport", b.Transport)
	if err := x.style(space, "binding", b.Style); err != nil {
		return err
	}
	return x.closeFormat(space, "binding", &b.FormatExtension, nil)
}

func (x *Writer) writeSoapOperation(space string, op *SoapOperationBinding) error {
	if _, ok := op.Style.Token(); !ok && op.Style != SoapBindingStyleDefault {
		return invalidEnum("SoapBindingStyle", op.Style, space, "operation")
	}
	if err := x.openFormat(space, "operation", &op.FormatExtension); err != nil {
		return err
	}
	x.str("soapAction", op.SoapAction)
	if err := x.style(space, "operation", op.Style); err != nil {
		return err
	}
	return x.closeFormat(space, "operation", &op.FormatExtension, nil)
}

func checkUse(space, local string, u SoapBindingUse) error {
	if _, ok := u.Token(); !ok && u != SoapBindingUseDefault {
		return invalidEnum("SoapBindingUse", u, space, local)
	}
	return nil
}

func (x *Writer) writeSoapBody(space string, b *SoapBodyBinding) error {
	if err := checkUse(space, "body", b.Use); err != nil {
		return err
	}
	if err := x.openFormat(space, "body", &b.FormatExtension); err != nil {
		return err
	}
	if b.Parts != nil {
		x.w.Attr("parts", strings.Join(b.Parts, " "))
	}
	if err := x.use(space, "body", b.Use); err != nil {
		return err
	}
	x.str("encodingStyle", b.Encoding)
	x.str("namespace", b.Namespace)
	return x.closeFormat(space, "body", &b.FormatExtension, nil)
}

func (x *Writer) headerAttrs(space, local string, h *SoapHeaderFaultBinding) error {
	x.w.QNameAttr("message", h.Message)
	x.str("part", h.Part)
	if err := x.use(space, local, h.Use); err != nil {
		return err
	}
	x.str("encodingStyle", h.Encoding)
	x.str("namespace", h.Namespace)
	return nil
}

func (x *Writer) writeSoapHeader(space string, h *SoapHeaderBinding) error {
	if err := checkUse(space, "header", h.Use); err != nil {
		return err
	}
	for _, hf := range h.Faults {
		if hf == nil {
			return unknownType("SoapHeaderBinding.Faults", hf)
		}
		if err := checkUse(space, "headerfault", hf.Use); err != nil {
			return err
		}
	}
	if err := x.openFormat(space, "header", &h.FormatExtension); err != nil {
		return err
	}
	fields := SoapHeaderFaultBinding{
		Message:   h.Message,
		Part:      h.Part,
		Use:       h.Use,
		Encoding:  h.Encoding,
		Namespace: h.Namespace,
	}
	if err := x.headerAttrs(space, "header", &fields); err != nil {
		return err
	}
	return x.closeFormat(space, "header", &h.FormatExtension, func() error {
		for _, hf := range h.Faults {
			if err := x.openFormat(space, "headerfault", &hf.FormatExtension); err != nil {
				return err
			}
			if err := x.headerAttrs(space, "headerfault", hf); err != nil {
				return err
			}
			if err := x.closeFormat(space, "headerfault", &hf.FormatExtension, nil); err != nil {
				return err
			}
		}
		return nil
	})
}

func (x *Writer) writeSoapFault(space string, f *SoapFaultBinding) error {
	if err := checkUse(space, "fault", f.Use); err != nil {
		return err
	}
	if err := x.openFormat(space, "fault", &f.FormatExtension); err != nil {
		return err
	}
	x.str("name", f.Name)
	if err := x.use(space, "fault", f.Use); err != nil {
		return err
	}
	x.str("encodingStyle", f.Encoding)
	x.str("namespace", f.Namespace)
	return x.closeFormat(space, "fault", &f.FormatExtension, nil)
}

func (x *Writer) writeMimeContent(m *MimeContentBinding) error {
	if err := x.openFormat(MimeNamespace, "content", &m.FormatExtension); err != nil {
		return err
	}
	x.str("part", m.Part)
	x.str("type", m.Type)
	return x.closeFormat(MimeNamespace, "content", &m.FormatExtension, nil)
}

func (x *Writer) writeMultipartRelated(m *MimeMultipartRelatedBinding) error {
	for _, p := range m.Parts {
		if p == nil {
			return unknownType("MimeMultipartRelatedBinding.Parts", p)
		}
		if err := checkExtensions("MimePart", slotMimePart, p.Extensions); err != nil {
			return err
		}
	}
	if err := x.openFormat(MimeNamespace, "multipartRelated", &m.FormatExtension); err != nil {
		return err
	}
	return x.closeFormat(MimeNamespace, "multipartRelated", &m.FormatExtension, func() error {
		for _, p := range m.Parts {
			if err := x.w.Start(MimeNamespace, "part", "", nil); err != nil {
				return err
			}
			x.attrs(p.ExtensibleAttributes)
			for _, e := range p.Extensions {
				if err := x.writeExtension("part", e); err != nil {
					return err
				}
			}
			if err := x.w.End(); err != nil {
				return err
			}
		}
		return nil
	})
}

func (x *Writer) writeMimeText(t *MimeTextBinding) error {
	if err := checkMatches("MimeTextBinding.Matches", t.Matches); err != nil {
		return err
	}
	if err := x.openFormat(MimeTextNamespace, "text", &t.FormatExtension); err != nil {
		return err
	}
	return x.closeFormat(MimeTextNamespace, "text", &t.FormatExtension, func() error {
		return x.writeMatches(t.Matches)
	})
}

func checkMatches(slot string, matches []*MimeTextMatch) error {
	for _, m := range matches {
		if m == nil {
			return unknownType(slot, m)
		}
		if err := checkMatches("MimeTextMatch.Matches", m.Matches); err != nil {
			return err
		}
	}
	return nil
}

func (x *Writer) writeMatches(matches []*MimeTextMatch) error {
	for _, m := range matches {
		if err := x.w.Start(MimeTextNamespace, "match", "", nil); err != nil {
			return err
		}
		x.str("name", m.Name)
		x.str("type", m.Type)
		if m.Group != 1 {
			x.w.Attr("group", strconv.Itoa(m.Group))
		}
		if m.Capture != 0 {
			x.w.Attr("capture", strconv.Itoa(m.Capture))
		}
		switch m.Repeats {
		case 1:
		case RepeatsUnbounded:
			x.w.Attr("repeats", "*")
		default:
			x.w.Attr("repeats", strconv.Itoa(m.Repeats))
		}
		x.str("pattern", m.Pattern)
		if m.IgnoreCase {
			x.w.Attr("ignoreCase", "true")
		}
		x.attrs(m.ExtensibleAttributes)
		if err := x.writeMatches(m.Matches); err != nil {
			return err
		}
		if err := x.unhandled(xml.Name{Space: MimeTextNamespace, Local: "match"}, m.UnhandledElements); err != nil {
			return err
		}
		if err := x.w.End(); err != nil {
			return err
		}
	}
	return nil
}
