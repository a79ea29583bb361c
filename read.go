package wsdl

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"github.com/jacoelho/wsdl/internal/xmlstream"
	"github.com/jacoelho/wsdl/internal/xsdcodec"
	"github.com/jacoelho/wsdl/xmlnode"
	"github.com/jacoelho/wsdl/xsd"
)

var errReaderUsed = errors.New("wsdl: reader already used")

// Reader decodes one document. It is not safe for concurrent use and reads
// at most one document.
type Reader struct {
	r    *xmlstream.Reader
	xsd  *xsdcodec.Reader
	s    symbols
	used bool
}

// NewReader returns a reader over r.
func NewReader(r io.Reader, opts ReadOptions) (*Reader, error) {
	resolved, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}
	stream := xmlstream.NewReader(r, resolved)
	return &Reader{
		r:   stream,
		xsd: xsdcodec.NewReader(stream),
		s:   newSymbols(stream.Names()),
	}, nil
}

func (x *Reader) root() (*xmlstream.StartElement, error) {
	if x.used {
		return nil, errReaderUsed
	}
	x.used = true
	return x.r.Root()
}

// ReadServiceDescription reads a wsdl:definitions document.
func (x *Reader) ReadServiceDescription() (*ServiceDescription, error) {
	start, err := x.root()
	if err != nil {
		return nil, err
	}
	if start.Sym != x.s.definitions {
		return nil, x.r.UnknownType(start, "ServiceDescription")
	}
	sd, err := x.readDefinitions(start)
	if err != nil {
		return nil, err
	}
	if err := x.r.Finish(); err != nil {
		return nil, err
	}
	return sd, nil
}

// ReadSchema reads a standalone xs:schema document.
func (x *Reader) ReadSchema() (*xsd.Schema, error) {
	start, err := x.root()
	if err != nil {
		return nil, err
	}
	s, err := x.xsd.ReadSchema(start)
	if err != nil {
		return nil, err
	}
	if err := x.r.Finish(); err != nil {
		return nil, err
	}
	return s, nil
}

type attrFunc func(a xmlstream.Attr) (bool, error)

type childFunc func(c *xmlstream.StartElement) (bool, error)

// entity reads an extensible WSDL element. The first wsdl:documentation
// child is captured, attr and child report whether they consumed an
// attribute or element, and the remaining foreign children become extensions
// checked against slot. WSDL elements left over are not legal in name.
func (x *Reader) entity(start *xmlstream.StartElement, name string, ext *Extensible, slot extSlot, attr attrFunc, child childFunc) error {
	for _, a := range start.Attrs {
		if attr != nil {
			ok, err := attr(a)
			if err != nil {
				return err
			}
			if ok {
				continue
			}
		}
		ext.ExtensibleAttributes = x.extensibleAttr(start, ext.ExtensibleAttributes, a)
	}
	return x.r.Children(start, func(c *xmlstream.StartElement) error {
		if c.Sym == x.s.documentation && ext.DocumentationElement == nil {
			doc, err := x.r.Capture(c)
			if err != nil {
				return err
			}
			ext.DocumentationElement = doc
			return nil
		}
		if child != nil {
			ok, err := child(c)
			if err != nil || ok {
				return err
			}
		}
		if c.Name.Space == Namespace {
			return x.r.UnknownType(c, name)
		}
		e, err := x.extension(c, slot)
		if err != nil {
			return err
		}
		ext.Extensions = append(ext.Extensions, e)
		return nil
	})
}

func (x *Reader) extensibleAttr(start *xmlstream.StartElement, dst []xmlnode.Attr, a xmlstream.Attr) []xmlnode.Attr {
	x.r.Logger().Debug().
		Str("element", start.Name.Local).
		Str("namespace", a.Name.Space).
		Str("attribute", a.Name.Local).
		Msg("captured extensible attribute")
	return append(dst, a.Node())
}

func (x *Reader) qname(start *xmlstream.StartElement, a xmlstream.Attr) (xml.Name, error) {
	return x.r.ResolveQName(start, a.Value)
}

func typeName(local string) xml.Name {
	return xml.Name{Space: Namespace, Local: local}
}

func (x *Reader) readDefinitions(start *xmlstream.StartElement) (*ServiceDescription, error) {
	sd := &ServiceDescription{}
	if len(start.Namespaces) > 0 {
		sd.Namespaces = append([]xmlnode.Namespace(nil), start.Namespaces...)
	}
	if err := x.r.CheckType(start, "ServiceDescription", typeName("tDefinitions")); err != nil {
		return nil, err
	}
	attr := func(a xmlstream.Attr) (bool, error) {
		switch a.Sym {
		case x.s.aName:
			sd.Name = a.Value
		case x.s.aTargetNamespace:
			sd.TargetNamespace = a.Value
		default:
			return false, nil
		}
		return true, nil
	}
	child := func(c *xmlstream.StartElement) (bool, error) {
		var err error
		switch c.Sym {
		case x.s.imprt:
			var imp *Import
			if imp, err = x.readImport(c); err == nil {
				sd.Imports = append(sd.Imports, imp)
			}
		case x.s.types:
			if sd.Types != nil {
				return false, nil
			}
			sd.Types, err = x.readTypes(c)
		case x.s.message:
			var m *Message
			if m, err = x.readMessage(c); err == nil {
				sd.Messages = append(sd.Messages, m)
			}
		case x.s.portType:
			var pt *PortType
			if pt, err = x.readPortType(c); err == nil {
				sd.PortTypes = append(sd.PortTypes, pt)
			}
		case x.s.binding:
			var b *Binding
			if b, err = x.readBinding(c); err == nil {
				sd.Bindings = append(sd.Bindings, b)
			}
		case x.s.service:
			var svc *Service
			if svc, err = x.readService(c); err == nil {
				sd.Services = append(sd.Services, svc)
			}
		default:
			return false, nil
		}
		return true, err
	}
	if err := x.entity(start, "ServiceDescription", &sd.Extensible, slotOther, attr, child); err != nil {
		return nil, err
	}
	x.r.Logger().Debug().
		Str("name", sd.Name).
		Str("targetNamespace", sd.TargetNamespace).
		Int("services", len(sd.Services)).
		Msg("read service description")
	return sd, nil
}

func (x *Reader) readImport(start *xmlstream.StartElement) (*Import, error) {
	if err := x.r.CheckType(start, "Import", typeName("tImport")); err != nil {
		return nil, err
	}
	imp := &Import{}
	err := x.entity(start, "Import", &imp.Extensible, slotOther, func(a xmlstream.Attr) (bool, error) {
		switch a.Sym {
		case x.s.aNamespace:
			imp.Namespace = a.Value
		case x.s.aLocation:
			imp.Location = a.Value
		default:
			return false, nil
		}
		return true, nil
	}, nil)
	if err != nil {
		return nil, err
	}
	return imp, nil
}

func (x *Reader) readTypes(start *xmlstream.StartElement) (*Types, error) {
	if err := x.r.CheckType(start, "Types", typeName("tTypes")); err != nil {
		return nil, err
	}
	t := &Types{}
	err := x.entity(start, "Types", &t.Extensible, slotOther, nil, func(c *xmlstream.StartElement) (bool, error) {
		if !x.xsd.IsSchema(c) {
			return false, nil
		}
		s, err := x.xsd.ReadSchema(c)
		if err != nil {
			return true, err
		}
		t.Schemas = append(t.Schemas, s)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (x *Reader) readMessage(start *xmlstream.StartElement) (*Message, error) {
	if err := x.r.CheckType(start, "Message", typeName("tMessage")); err != nil {
		return nil, err
	}
	m := &Message{}
	err := x.entity(start, "Message", &m.Extensible, slotOther, x.nameAttr(&m.Name),
		func(c *xmlstream.StartElement) (bool, error) {
			if c.Sym != x.s.part {
				return false, nil
			}
			p, err := x.readPart(c)
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

func (x *Reader) nameAttr(dst *string) attrFunc {
	return func(a xmlstream.Attr) (bool, error) {
		if a.Sym != x.s.aName {
			return false, nil
		}
		*dst = a.Value
		return true, nil
	}
}

func (x *Reader) readPart(start *xmlstream.StartElement) (*MessagePart, error) {
	if err := x.r.CheckType(start, "MessagePart", typeName("tPart")); err != nil {
		return nil, err
	}
	p := &MessagePart{}
	err := x.entity(start, "MessagePart", &p.Extensible, slotOther, func(a xmlstream.Attr) (bool, error) {
		var err error
		switch a.Sym {
		case x.s.aName:
			p.Name = a.Value
		case x.s.aElement:
			p.Element, err = x.qname(start, a)
		case x.s.aType:
			p.Type, err = x.qname(start, a)
		default:
			return false, nil
		}
		return true, err
	}, nil)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (x *Reader) readPortType(start *xmlstream.StartElement) (*PortType, error) {
	if err := x.r.CheckType(start, "PortType", typeName("tPortType")); err != nil {
		return nil, err
	}
	pt := &PortType{}
	err := x.entity(start, "PortType", &pt.Extensible, slotOther, x.nameAttr(&pt.Name),
		func(c *xmlstream.StartElement) (bool, error) {
			if c.Sym != x.s.operation {
				return false, nil
			}
			op, err := x.readOperation(c)
			if err != nil {
				return true, err
			}
			pt.Operations = append(pt.Operations, op)
			return true, nil
		})
	if err != nil {
		return nil, err
	}
	return pt, nil
}

func (x *Reader) readOperation(start *xmlstream.StartElement) (*Operation, error) {
	if err := x.r.CheckType(start, "Operation", typeName("tOperation")); err != nil {
		return nil, err
	}
	op := &Operation{}
	attr := func(a xmlstream.Attr) (bool, error) {
		switch a.Sym {
		case x.s.aName:
			op.Name = a.Value
		case x.s.aParameterOrder:
			op.ParameterOrder = strings.Fields(a.Value)
			if op.ParameterOrder == nil {
				op.ParameterOrder = []string{}
			}
		default:
			return false, nil
		}
		return true, nil
	}
	child := func(c *xmlstream.StartElement) (bool, error) {
		var err error
		switch c.Sym {
		case x.s.input:
			if op.Input != nil {
				return false, nil
			}
			op.OutputFirst = op.Output != nil
			op.Input, err = x.readOperationMessage(c, "OperationMessage", "tParam")
		case x.s.output:
			if op.Output != nil {
				return false, nil
			}
			op.Output, err = x.readOperationMessage(c, "OperationMessage", "tParam")
		case x.s.fault:
			var f *OperationMessage
			if f, err = x.readOperationMessage(c, "OperationFault", "tFault"); err == nil {
				op.Faults = append(op.Faults, f)
			}
		default:
			return false, nil
		}
		return true, err
	}
	if err := x.entity(start, "Operation", &op.Extensible, slotOther, attr, child); err != nil {
		return nil, err
	}
	return op, nil
}

func (x *Reader) readOperationMessage(start *xmlstream.StartElement, slot, typ string) (*OperationMessage, error) {
	if err := x.r.CheckType(start, slot, typeName(typ)); err != nil {
		return nil, err
	}
	m := &OperationMessage{}
	err := x.entity(start, slot, &m.Extensible, slotOther, func(a xmlstream.Attr) (bool, error) {
		var err error
		switch a.Sym {
		case x.s.aName:
			m.Name = a.Value
		case x.s.aMessage:
			m.Message, err = x.qname(start, a)
		default:
			return false, nil
		}
		return true, err
	}, nil)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (x *Reader) readBinding(start *xmlstream.StartElement) (*Binding, error) {
	if err := x.r.CheckType(start, "Binding", typeName("tBinding")); err != nil {
		return nil, err
	}
	b := &Binding{}
	attr := func(a xmlstream.Attr) (bool, error) {
		var err error
		switch a.Sym {
		case x.s.aName:
			b.Name = a.Value
		case x.s.aType:
			b.Type, err = x.qname(start, a)
		default:
			return false, nil
		}
		return true, err
	}
	child := func(c *xmlstream.StartElement) (bool, error) {
		if c.Sym != x.s.operation {
			return false, nil
		}
		op, err := x.readOperationBinding(c)
		if err != nil {
			return true, err
		}
		b.Operations = append(b.Operations, op)
		return true, nil
	}
	if err := x.entity(start, "Binding", &b.Extensible, slotBinding, attr, child); err != nil {
		return nil, err
	}
	return b, nil
}

func (x *Reader) readOperationBinding(start *xmlstream.StartElement) (*OperationBinding, error) {
	if err := x.r.CheckType(start, "OperationBinding", typeName("tBindingOperation")); err != nil {
		return nil, err
	}
	op := &OperationBinding{}
	child := func(c *xmlstream.StartElement) (bool, error) {
		var err error
		switch c.Sym {
		case x.s.input:
			if op.Input != nil {
				return false, nil
			}
			op.Input, err = x.readMessageBinding(c, "InputBinding", "tBindingOperationMessage", slotInput)
		case x.s.output:
			if op.Output != nil {
				return false, nil
			}
			op.Output, err = x.readMessageBinding(c, "OutputBinding", "tBindingOperationMessage", slotOutput)
		case x.s.fault:
			var f *MessageBinding
			if f, err = x.readMessageBinding(c, "FaultBinding", "tBindingOperationFault", slotFault); err == nil {
				op.Faults = append(op.Faults, f)
			}
		default:
			return false, nil
		}
		return true, err
	}
	if err := x.entity(start, "OperationBinding", &op.Extensible, slotOperation, x.nameAttr(&op.Name), child); err != nil {
		return nil, err
	}
	return op, nil
}

func (x *Reader) readMessageBinding(start *xmlstream.StartElement, slot, typ string, ext extSlot) (*MessageBinding, error) {
	if err := x.r.CheckType(start, slot, typeName(typ)); err != nil {
		return nil, err
	}
	m := &MessageBinding{}
	if err := x.entity(start, slot, &m.Extensible, ext, x.nameAttr(&m.Name), nil); err != nil {
		return nil, err
	}
	return m, nil
}

func (x *Reader) readService(start *xmlstream.StartElement) (*Service, error) {
	if err := x.r.CheckType(start, "Service", typeName("tService")); err != nil {
		return nil, err
	}
	svc := &Service{}
	err := x.entity(start, "Service", &svc.Extensible, slotOther, x.nameAttr(&svc.Name),
		func(c *xmlstream.StartElement) (bool, error) {
			if c.Sym != x.s.port {
				return false, nil
			}
			p, err := x.readPort(c)
			if err != nil {
				return true, err
			}
			svc.Ports = append(svc.Ports, p)
			return true, nil
		})
	if err != nil {
		return nil, err
	}
	return svc, nil
}

func (x *Reader) readPort(start *xmlstream.StartElement) (*Port, error) {
	if err := x.r.CheckType(start, "Port", typeName("tPort")); err != nil {
		return nil, err
	}
	p := &Port{}
	err := x.entity(start, "Port", &p.Extensible, slotPort, func(a xmlstream.Attr) (bool, error) {
		var err error
		switch a.Sym {
		case x.s.aName:
			p.Name = a.Value
		case x.s.aBinding:
			p.Binding, err = x.qname(start, a)
		default:
			return false, nil
		}
		return true, err
	}, nil)
	if err != nil {
		return nil, err
	}
	return p, nil
}
