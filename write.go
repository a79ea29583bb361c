package wsdl

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	wsdlerrors "github.com/jacoelho/wsdl/errors"
	"github.com/jacoelho/wsdl/internal/xmlsink"
	"github.com/jacoelho/wsdl/internal/xsdcodec"
	"github.com/jacoelho/wsdl/xmlnode"
	"github.com/jacoelho/wsdl/xsd"
)

var errWriterUsed = errors.New("wsdl: writer already used")

// Writer encodes one document. It is not safe for concurrent use and writes
// at most one document.
type Writer struct {
	w    *xmlsink.Writer
	xsd  *xsdcodec.Writer
	used bool
}

// NewWriter returns a writer to w.
func NewWriter(w io.Writer, opts WriteOptions) (*Writer, error) {
	resolved, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}
	sink := xmlsink.NewWriter(w, resolved)
	return &Writer{w: sink, xsd: xsdcodec.NewWriter(sink)}, nil
}

// WriteServiceDescription writes sd as a wsdl:definitions document.
func (x *Writer) WriteServiceDescription(sd *ServiceDescription) error {
	if x.used {
		return errWriterUsed
	}
	x.used = true
	if sd == nil {
		return unknownType("ServiceDescription", sd)
	}
	if err := x.writeDefinitions(sd); err != nil {
		return err
	}
	return x.w.Close()
}

// WriteSchema writes s as a standalone xs:schema document.
func (x *Writer) WriteSchema(s *xsd.Schema) error {
	if x.used {
		return errWriterUsed
	}
	x.used = true
	if err := x.xsd.WriteSchema(s); err != nil {
		return err
	}
	return x.w.Close()
}

func unknownType(slot string, v any) error {
	return &wsdlerrors.UnknownTypeError{Slot: slot, Type: fmt.Sprintf("%T", v)}
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

func (x *Writer) start(local string, decls []xmlnode.Namespace) error {
	return x.w.Start(Namespace, local, "", decls)
}

func (x *Writer) str(local, v string) {
	if v != "" {
		x.w.Attr(local, v)
	}
}

func (x *Writer) attrs(attrs []xmlnode.Attr) {
	for _, a := range attrs {
		x.w.AttrNS(a.Name.Space, a.Name.Local, a.Prefix, a.Value)
	}
}

func (x *Writer) node(owner, slot string, n xmlnode.Node) error {
	return x.nodeIn(typeName(owner), slot, n)
}

// nodeIn writes a carrier held in slot of the element owner.
func (x *Writer) nodeIn(owner xml.Name, slot string, n xmlnode.Node) error {
	err := x.w.Node(n)
	if errors.Is(err, xmlsink.ErrInvalidNode) {
		return &wsdlerrors.InvalidContentError{Slot: slot, Name: owner, Type: fmt.Sprintf("%T", n)}
	}
	return err
}

func (x *Writer) unhandled(owner xml.Name, els []*xmlnode.Element) error {
	for _, el := range els {
		if err := x.nodeIn(owner, "UnhandledElements", el); err != nil {
			return err
		}
	}
	return nil
}

func checkExtensions(name string, slot extSlot, exts []Extension) error {
	for _, e := range exts {
		if isNil(e) || !legalIn(e, slot) {
			return unknownType(name+".Extensions", e)
		}
		// The reader rejects foreign content in the WSDL namespace.
		if r, ok := e.(*Raw); ok && r.Name().Space == Namespace {
			return &wsdlerrors.UnknownTypeError{Slot: name + ".Extensions", Name: r.Name()}
		}
	}
	return nil
}

// open checks the extensions of an extensible element and starts it.
func (x *Writer) open(local, name string, ext *Extensible, slot extSlot, decls []xmlnode.Namespace) error {
	if err := checkExtensions(name, slot, ext.Extensions); err != nil {
		return err
	}
	return x.start(local, decls)
}

// body writes the extensible attributes, documentation and extensions of an
// element whose own attributes are already written.
func (x *Writer) body(local string, ext *Extensible) error {
	x.attrs(ext.ExtensibleAttributes)
	if ext.DocumentationElement != nil {
		if err := x.node(local, "DocumentationElement", ext.DocumentationElement); err != nil {
			return err
		}
	}
	for _, e := range ext.Extensions {
		if err := x.writeExtension(local, e); err != nil {
			return err
		}
	}
	return nil
}

func (x *Writer) writeDefinitions(sd *ServiceDescription) error {
	for _, list := range []struct {
		slot string
		n    int
		nth  func(int) any
	}{
		{"ServiceDescription.Imports", len(sd.Imports), func(i int) any { return sd.Imports[i] }},
		{"ServiceDescription.Messages", len(sd.Messages), func(i int) any { return sd.Messages[i] }},
		{"ServiceDescription.PortTypes", len(sd.PortTypes), func(i int) any { return sd.PortTypes[i] }},
		{"ServiceDescription.Bindings", len(sd.Bindings), func(i int) any { return sd.Bindings[i] }},
		{"ServiceDescription.Services", len(sd.Services), func(i int) any { return sd.Services[i] }},
	} {
		for i := range list.n {
			if v := list.nth(i); isNil(v) {
				return unknownType(list.slot, v)
			}
		}
	}
	if err := x.open("definitions", "ServiceDescription", &sd.Extensible, slotOther, sd.Namespaces); err != nil {
		return err
	}
	x.str("name", sd.Name)
	x.str("targetNamespace", sd.TargetNamespace)
	if err := x.body("definitions", &sd.Extensible); err != nil {
		return err
	}
	for _, imp := range sd.Imports {
		if err := x.writeImport(imp); err != nil {
			return err
		}
	}
	if sd.Types != nil {
		if err := x.writeTypes(sd.Types); err != nil {
			return err
		}
	}
	for _, m := range sd.Messages {
		if err := x.writeMessage(m); err != nil {
			return err
		}
	}
	for _, pt := range sd.PortTypes {
		if err := x.writePortType(pt); err != nil {
			return err
		}
	}
	for _, b := range sd.Bindings {
		if err := x.writeBinding(b); err != nil {
			return err
		}
	}
	for _, svc := range sd.Services {
		if err := x.writeService(svc); err != nil {
			return err
		}
	}
	return x.w.End()
}

func (x *Writer) writeImport(imp *Import) error {
	if err := x.open("import", "Import", &imp.Extensible, slotOther, nil); err != nil {
		return err
	}
	x.str("namespace", imp.Namespace)
	x.str("location", imp.Location)
	if err := x.body("import", &imp.Extensible); err != nil {
		return err
	}
	return x.w.End()
}

func (x *Writer) writeTypes(t *Types) error {
	for _, s := range t.Schemas {
		if s == nil {
			return unknownType("Types.Schemas", s)
		}
	}
	for _, e := range t.Extensions {
		// An xs:schema child reads back as a schema, not an extension.
		if r, ok := e.(*Raw); ok && r.Name() == (xml.Name{Space: xsd.Namespace, Local: "schema"}) {
			return &wsdlerrors.UnknownTypeError{Slot: "Types.Extensions", Name: r.Name()}
		}
	}
	if err := x.open("types", "Types", &t.Extensible, slotOther, nil); err != nil {
		return err
	}
	if err := x.body("types", &t.Extensible); err != nil {
		return err
	}
	for _, s := range t.Schemas {
		if err := x.xsd.WriteSchema(s); err != nil {
			return err
		}
	}
	return x.w.End()
}

func (x *Writer) writeMessage(m *Message) error {
	for _, p := range m.Parts {
		if p == nil {
			return unknownType("Message.Parts", p)
		}
	}
	if err := x.open("message", "Message", &m.Extensible, slotOther, nil); err != nil {
		return err
	}
	x.str("name", m.Name)
	if err := x.body("message", &m.Extensible); err != nil {
		return err
	}
	for _, p := range m.Parts {
		if err := x.open("part", "MessagePart", &p.Extensible, slotOther, nil); err != nil {
			return err
		}
		x.str("name", p.Name)
		x.w.QNameAttr("element", p.Element)
		x.w.QNameAttr("type", p.Type)
		if err := x.body("part", &p.Extensible); err != nil {
			return err
		}
		if err := x.w.End(); err != nil {
			return err
		}
	}
	return x.w.End()
}

func (x *Writer) writePortType(pt *PortType) error {
	for _, op := range pt.Operations {
		if op == nil {
			return unknownType("PortType.Operations", op)
		}
	}
	if err := x.open("portType", "PortType", &pt.Extensible, slotOther, nil); err != nil {
		return err
	}
	x.str("name", pt.Name)
	if err := x.body("portType", &pt.Extensible); err != nil {
		return err
	}
	for _, op := range pt.Operations {
		if err := x.writeOperation(op); err != nil {
			return err
		}
	}
	return x.w.End()
}

func (x *Writer) writeOperation(op *Operation) error {
	for _, f := range op.Faults {
		if f == nil {
			return unknownType("Operation.Faults", f)
		}
	}
	if err := x.open("operation", "Operation", &op.Extensible, slotOther, nil); err != nil {
		return err
	}
	x.str("name", op.Name)
	if op.ParameterOrder != nil {
		x.w.Attr("parameterOrder", strings.Join(op.ParameterOrder, " "))
	}
	if err := x.body("operation", &op.Extensible); err != nil {
		return err
	}
	first, second := op.Input, op.Output
	firstLocal, secondLocal := "input", "output"
	if op.OutputFirst && op.Input != nil && op.Output != nil {
		first, second = second, first
		firstLocal, secondLocal = secondLocal, firstLocal
	}
	if err := x.writeOperationMessage(firstLocal, "OperationMessage", first); err != nil {
		return err
	}
	if err := x.writeOperationMessage(secondLocal, "OperationMessage", second); err != nil {
		return err
	}
	for _, f := range op.Faults {
		if err := x.writeOperationMessage("fault", "OperationFault", f); err != nil {
			return err
		}
	}
	return x.w.End()
}

func (x *Writer) writeOperationMessage(local, name string, m *OperationMessage) error {
	if m == nil {
		return nil
	}
	if err := x.open(local, name, &m.Extensible, slotOther, nil); err != nil {
		return err
	}
	x.str("name", m.Name)
	x.w.QNameAttr("message", m.Message)
	if err := x.body(local, &m.Extensible); err != nil {
		return err
	}
	return x.w.End()
}

func (x *Writer) writeBinding(b *Binding) error {
	for _, op := range b.Operations {
		if op == nil {
			return unknownType("Binding.Operations", op)
		}
	}
	if err := x.open("binding", "Binding", &b.Extensible, slotBinding, nil); err != nil {
		return err
	}
	x.str("name", b.Name)
	x.w.QNameAttr("type", b.Type)
	if err := x.body("binding", &b.Extensible); err != nil {
		return err
	}
	for _, op := range b.Operations {
		if err := x.writeOperationBinding(op); err != nil {
			return err
		}
	}
	return x.w.End()
}

func (x *Writer) writeOperationBinding(op *OperationBinding) error {
	for _, f := range op.Faults {
		if f == nil {
			return unknownType("OperationBinding.Faults", f)
		}
	}
	if err := x.open("operation", "OperationBinding", &op.Extensible, slotOperation, nil); err != nil {
		return err
	}
	x.str("name", op.Name)
	if err := x.body("operation", &op.Extensible); err != nil {
		return err
	}
	if err := x.writeMessageBinding("input", "InputBinding", slotInput, op.Input); err != nil {
		return err
	}
	if err := x.writeMessageBinding("output", "OutputBinding", slotOutput, op.Output); err != nil {
		return err
	}
	for _, f := range op.Faults {
		if err := x.writeMessageBinding("fault", "FaultBinding", slotFault, f); err != nil {
			return err
		}
	}
	return x.w.End()
}

func (x *Writer) writeMessageBinding(local, name string, slot extSlot, m *MessageBinding) error {
	if m == nil {
		return nil
	}
	if err := x.open(local, name, &m.Extensible, slot, nil); err != nil {
		return err
	}
	x.str("name", m.Name)
	if err := x.body(local, &m.Extensible); err != nil {
		return err
	}
	return x.w.End()
}

func (x *Writer) writeService(svc *Service) error {
	for _, p := range svc.Ports {
		if p == nil {
			return unknownType("Service.Ports", p)
		}
	}
	if err := x.open("service", "Service", &svc.Extensible, slotOther, nil); err != nil {
		return err
	}
	x.str("name", svc.Name)
	if err := x.body("service", &svc.Extensible); err != nil {
		return err
	}
	for _, p := range svc.Ports {
		if err := x.open("port", "Port", &p.Extensible, slotPort, nil); err != nil {
			return err
		}
		x.str("name", p.Name)
		x.w.QNameAttr("binding", p.Binding)
		if err := x.body("port", &p.Extensible); err != nil {
			return err
		}
		if err := x.w.End(); err != nil {
			return err
		}
	}
	return x.w.End()
}
