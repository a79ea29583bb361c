package wsdl

import (
	"strings"

	"github.com/jacoelho/wsdl/internal/nametable"
	"github.com/jacoelho/wsdl/internal/xmlstream"
)

// extensionSlots returns the slots of the known extension named by sym.
func (x *Reader) extensionSlots(sym nametable.Symbol) (extSlot, bool) {
	s := &x.s
	switch sym {
	case s.soap.binding, s.soap12.binding, s.httpBinding:
		return slotBinding, true
	case s.soap.operation, s.soap12.operation, s.httpOperation:
		return slotOperation, true
	case s.soap.body, s.soap12.body, s.soap.header, s.soap12.header, s.mimeContent, s.mimeXML, s.tmText:
		return slotInput | slotOutput | slotMimePart, true
	case s.mimeMultipartRelated:
		return slotInput | slotOutput, true
	case s.httpURLEncoded, s.httpURLReplacement:
		return slotInput, true
	case s.soap.fault, s.soap12.fault:
		return slotFault, true
	case s.soap.address, s.soap12.address, s.httpAddress:
		return slotPort, true
	}
	return 0, false
}

// extension reads a child of an extensible element. Known binding
// extensions that are legal in slot are decoded; anything else is kept
// whole as Raw.
func (x *Reader) extension(c *xmlstream.StartElement, slot extSlot) (Extension, error) {
	if slots, ok := x.extensionSlots(c.Sym); ok && slots&slot != 0 {
		return x.knownExtension(c)
	}
	el, err := x.r.Capture(c)
	if err != nil {
		return nil, err
	}
	x.r.Logger().Debug().
		Str("namespace", el.Name.Space).
		Str("element", el.Name.Local).
		Msg("captured extension element")
	return &Raw{Element: el}, nil
}

func (x *Reader) knownExtension(c *xmlstream.StartElement) (Extension, error) {
	s := &x.s
	switch c.Sym {
	case s.soap.binding:
		return x.readSoapBinding(c)
	case s.soap12.binding:
		b, err := x.readSoapBinding(c)
		return (*Soap12Binding)(b), err
	case s.soap.operation:
		return x.readSoapOperation(c)
	case s.soap12.operation:
		op, err := x.readSoapOperation(c)
		return (*Soap12OperationBinding)(op), err
	case s.soap.body:
		return x.readSoapBody(c)
	case s.soap12.body:
		b, err := x.readSoapBody(c)
		return (*Soap12BodyBinding)(b), err
	case s.soap.header:
		return x.readSoapHeader(c, s.soap.headerfault)
	case s.soap12.header:
		h, err := x.readSoapHeader(c, s.soap12.headerfault)
		return (*Soap12HeaderBinding)(h), err
	case s.soap.fault:
		return x.readSoapFault(c)
	case s.soap12.fault:
		f, err := x.readSoapFault(c)
		return (*Soap12FaultBinding)(f), err
	case s.soap.address:
		return x.readSoapAddress(c)
	case s.soap12.address:
		a, err := x.readSoapAddress(c)
		return (*Soap12AddressBinding)(a), err
	case s.httpBinding:
		b := &HTTPBinding{}
		return b, x.format(c, &b.FormatExtension, x.stringAttr(s.aVerb, &b.Verb), nil)
	case s.httpOperation:
		op := &HTTPOperationBinding{}
		return op, x.format(c, &op.FormatExtension, x.stringAttr(s.aLocation, &op.Location), nil)
	case s.httpAddress:
		a := &HTTPAddressBinding{}
		return a, x.format(c, &a.FormatExtension, x.stringAttr(s.aLocation, &a.Location), nil)
	case s.httpURLEncoded:
		u := &HTTPURLEncoded{}
		return u, x.format(c, &u.FormatExtension, nil, nil)
	case s.httpURLReplacement:
		u := &HTTPURLReplacement{}
		return u, x.format(c, &u.FormatExtension, nil, nil)
	case s.mimeContent:
		m := &MimeContentBinding{}
		return m, x.format(c, &m.FormatExtension, func(a xmlstream.Attr) (bool, error) {
			switch a.Sym {
			case s.aPart:
				m.Part = a.Value
			case s.aType:
				m.Type = a.Value
			default:
				return false, nil
			}
			return true, nil
		}, nil)
	case s.mimeXML:
		m := &MimeXMLBinding{}
		return m, x.format(c, &m.FormatExtension, x.stringAttr(s.aPart, &m.Part), nil)
	case s.mimeMultipartRelated:
		return x.readMultipartRelated(c)
	default:
		return x.readMimeText(c)
	}
}

// format reads the attributes and children of a binding extension. attr and
// child report whether they consumed an attribute or element; the rest is
// kept in the extension's extensible attributes and unhandled elements.
func (x *Reader) format(start *xmlstream.StartElement, fe *FormatExtension, attr attrFunc, child childFunc) error {
	for _, a := range start.Attrs {
		if a.Sym == x.s.aRequired {
			v, err := x.r.Bool(start, a.Value)
			if err != nil {
				return err
			}
			fe.Required = v
			continue
		}
		if attr != nil {
			ok, err := attr(a)
			if err != nil {
				return err
			}
			if ok {
				continue
			}
		}
		fe.ExtensibleAttributes = x.extensibleAttr(start, fe.ExtensibleAttributes, a)
	}
	return x.r.Children(start, func(c *xmlstream.StartElement) error {
		if child != nil {
			ok, err := child(c)
			if err != nil || ok {
				return err
			}
		}
		el, err := x.r.Capture(c)
		if err != nil {
			return err
		}
		fe.UnhandledElements = append(fe.UnhandledElements, el)
		return nil
	})
}

func (x *Reader) stringAttr(sym nametable.Symbol, dst *string) attrFunc {
	return func(a xmlstream.Attr) (bool, error) {
		if a.Sym != sym {
			return false, nil
		}
		*dst = a.Value
		return true, nil
	}
}

func (x *Reader) style(start *xmlstream.StartElement, a xmlstream.Attr) (SoapBindingStyle, error) {
	v, ok := ParseSoapBindingStyle(strings.TrimSpace(a.Value))
	if !ok {
		return 0, x.r.InvalidEnum(start, "SoapBindingStyle", a.Value)
	}
	return v, nil
}

func (x *Reader) use(start *xmlstream.StartElement, a xmlstream.Attr) (SoapBindingUse, error) {
	v, ok := ParseSoapBindingUse(strings.TrimSpace(a.Value))
	if !ok {
		return 0, x.r.InvalidEnum(start, "SoapBindingUse", a.Value)
	}
	return v, nil
}

func (x *Reader) readSoapBinding(start *xmlstream.StartElement) (*SoapBinding, error) {
	b := &SoapBinding{}
	err := x.format(start, &b.FormatExtension, func(a xmlstream.Attr) (bool, error) {
		var err error
		switch a.Sym {
		case x.s.aTransport:
			b.Transport = a.Value
		case x.s.aStyle:
			b.Style, err = x.style(start, a)
		default:
			return false, nil
		}
		return true, err
	}, nil)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (x *Reader) readSoapOperation(start *xmlstream.StartElement) (*SoapOperationBinding, error) {
	op := &SoapOperationBinding{}
	err := x.format(start, &op.FormatExtension, func(a xmlstream.Attr) (bool, error) {
		var err error
		switch a.Sym {
		case x.s.aSoapAction:
			op.SoapAction = a.Value
		case x.s.aStyle:
			op.Style, err = x.style(start, a)
		default:
			return false, nil
		}
		return true, err
	}, nil)
	if err != nil {
		return nil, err
	}
	return op, nil
}

func (x *Reader) readSoapBody(start *xmlstream.StartElement) (*SoapBodyBinding, error) {
	b := &SoapBodyBinding{}
	err := x.format(start, &b.FormatExtension, func(a xmlstream.Attr) (bool, error) {
		var err error
		switch a.Sym {
		case x.s.aParts:
			b.Parts = strings.Fields(a.Value)
			if b.Parts == nil {
				b.Parts = []string{}
			}
		case x.s.aUse:
			b.Use, err = x.use(start, a)
		case x.s.aEncodingStyle:
			b.Encoding = a.Value
		case x.s.aNamespace:
			b.Namespace = a.Value
		default:
			return false, nil
		}
		return true, err
	}, nil)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// headerAttrs reads the attributes shared by soap:header and
// soap:headerfault.
func (x *Reader) headerAttrs(start *xmlstream.StartElement, h *SoapHeaderFaultBinding) attrFunc {
	return func(a xmlstream.Attr) (bool, error) {
		var err error
		switch a.Sym {
		case x.s.aMessage:
			h.Message, err = x.qname(start, a)
		case x.s.aPart:
			h.Part = a.Value
		case x.s.aUse:
			h.Use, err = x.use(start, a)
		case x.s.aEncodingStyle:
			h.Encoding = a.Value
		case x.s.aNamespace:
			h.Namespace = a.Value
		default:
			return false, nil
		}
		return true, err
	}
}

func (x *Reader) readSoapHeader(start *xmlstream.StartElement, headerfault nametable.Symbol) (*SoapHeaderBinding, error) {
	var fields SoapHeaderFaultBinding
	var faults []*SoapHeaderFaultBinding
	err := x.format(start, &fields.FormatExtension, x.headerAttrs(start, &fields), func(c *xmlstream.StartElement) (bool, error) {
		if c.Sym != headerfault {
			return false, nil
		}
		hf := &SoapHeaderFaultBinding{}
		if err := x.format(c, &hf.FormatExtension, x.headerAttrs(c, hf), nil); err != nil {
			return true, err
		}
		faults = append(faults, hf)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return &SoapHeaderBinding{
		FormatExtension: fields.FormatExtension,
		Message:         fields.Message,
		Part:            fields.Part,
		Use:             fields.Use,
		Encoding:        fields.Encoding,
		Namespace:       fields.Namespace,
		Faults:          faults,
	}, nil
}

func (x *Reader) readSoapFault(start *xmlstream.StartElement) (*SoapFaultBinding, error) {
	f := &SoapFaultBinding{}
	err := x.format(start, &f.FormatExtension, func(a xmlstream.Attr) (bool, error) {
		var err error
		switch a.Sym {
		case x.s.aName:
			f.Name = a.Value
		case x.s.aUse:
			f.Use, err = x.use(start, a)
		case x.s.aEncodingStyle:
			f.Encoding = a.Value
		case x.s.aNamespace:
			f.Namespace = a.Value
		default:
			return false, nil
		}
		return true, err
	}, nil)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (x *Reader) readSoapAddress(start *xmlstream.StartElement) (*SoapAddressBinding, error) {
	a := &SoapAddressBinding{}
	if err := x.format(start, &a.FormatExtension, x.stringAttr(x.s.aLocation, &a.Location), nil); err != nil {
		return nil, err
	}
	return a, nil
}

func (x *Reader) readMultipartRelated(start *xmlstream.StartElement) (*MimeMultipartRelatedBinding, error) {
	m := &MimeMultipartRelatedBinding{}
	err := x.format(start, &m.FormatExtension, nil, func(c *xmlstream.StartElement) (bool, error) {
		if c.Sym != x.s.mimePart {
			return false, nil
		}
		p := &MimePart{}
		for _, a := range c.Attrs {
			p.ExtensibleAttributes = x.extensibleAttr(c, p.ExtensibleAttributes, a)
		}
		err := x.r.Children(c, func(pc *xmlstream.StartElement) error {
			e, err := x.extension(pc, slotMimePart)
			if err != nil {
				return err
			}
			p.Extensions = append(p.Extensions, e)
			return nil
		})
		if err != nil {
			return true, err
		}
		m.Parts = append(m.Parts, p)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (x *Reader) readMimeText(start *xmlstream.StartElement) (*MimeTextBinding, error) {
	t := &MimeTextBinding{}
	err := x.format(start, &t.FormatExtension, nil, func(c *xmlstream.StartElement) (bool, error) {
		if c.Sym != x.s.tmMatch {
			return false, nil
		}
		m, err := x.readMatch(c)
		if err != nil {
			return true, err
		}
		t.Matches = append(t.Matches, m)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (x *Reader) readMatch(start *xmlstream.StartElement) (*MimeTextMatch, error) {
	m := NewMimeTextMatch()
	for _, a := range start.Attrs {
		var err error
		switch a.Sym {
		case x.s.aName:
			m.Name = a.Value
		case x.s.aType:
			m.Type = a.Value
		case x.s.aGroup:
			m.Group, err = x.r.Int(start, "group", a.Value)
		case x.s.aCapture:
			m.Capture, err = x.r.Int(start, "capture", a.Value)
		case x.s.aRepeats:
			if strings.TrimSpace(a.Value) == "*" {
				m.Repeats = RepeatsUnbounded
			} else {
				m.Repeats, err = x.r.Int(start, "repeats", a.Value)
			}
		case x.s.aPattern:
			m.Pattern = a.Value
		case x.s.aIgnoreCase:
			m.IgnoreCase, err = x.r.Bool(start, a.Value)
		default:
			m.ExtensibleAttributes = x.extensibleAttr(start, m.ExtensibleAttributes, a)
		}
		if err != nil {
			return nil, err
		}
	}
	err := x.r.Children(start, func(c *xmlstream.StartElement) error {
		if c.Sym == x.s.tmMatch {
			nested, err := x.readMatch(c)
			if err != nil {
				return err
			}
			m.Matches = append(m.Matches, nested)
			return nil
		}
		el, err := x.r.Capture(c)
		if err != nil {
			return err
		}
		m.UnhandledElements = append(m.UnhandledElements, el)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}
