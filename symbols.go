package wsdl

import "github.com/jacoelho/wsdl/internal/nametable"

// soapSymbols is the vocabulary shared by the SOAP 1.1 and SOAP 1.2 binding
// namespaces.
type soapSymbols struct {
	binding     nametable.Symbol
	operation   nametable.Symbol
	body        nametable.Symbol
	header      nametable.Symbol
	headerfault nametable.Symbol
	fault       nametable.Symbol
	address     nametable.Symbol
}

type symbols struct {
	definitions   nametable.Symbol
	imprt         nametable.Symbol
	types         nametable.Symbol
	message       nametable.Symbol
	part          nametable.Symbol
	portType      nametable.Symbol
	operation     nametable.Symbol
	input         nametable.Symbol
	output        nametable.Symbol
	fault         nametable.Symbol
	binding       nametable.Symbol
	service       nametable.Symbol
	port          nametable.Symbol
	documentation nametable.Symbol

	soap   soapSymbols
	soap12 soapSymbols

	httpBinding        nametable.Symbol
	httpOperation      nametable.Symbol
	httpAddress        nametable.Symbol
	httpURLEncoded     nametable.Symbol
	httpURLReplacement nametable.Symbol

	mimeContent          nametable.Symbol
	mimeMultipartRelated nametable.Symbol
	mimePart             nametable.Symbol
	mimeXML              nametable.Symbol

	tmText  nametable.Symbol
	tmMatch nametable.Symbol

	aName            nametable.Symbol
	aTargetNamespace nametable.Symbol
	aNamespace       nametable.Symbol
	aLocation        nametable.Symbol
	aElement         nametable.Symbol
	aType            nametable.Symbol
	aMessage         nametable.Symbol
	aParameterOrder  nametable.Symbol
	aBinding         nametable.Symbol
	aRequired        nametable.Symbol
	aTransport       nametable.Symbol
	aStyle           nametable.Symbol
	aSoapAction      nametable.Symbol
	aParts           nametable.Symbol
	aUse             nametable.Symbol
	aEncodingStyle   nametable.Symbol
	aPart            nametable.Symbol
	aVerb            nametable.Symbol
	aGroup           nametable.Symbol
	aCapture         nametable.Symbol
	aRepeats         nametable.Symbol
	aPattern         nametable.Symbol
	aIgnoreCase      nametable.Symbol
}

func newSymbols(t *nametable.Table) symbols {
	el := func(local string) nametable.Symbol { return t.Add(Namespace, local) }
	at := func(local string) nametable.Symbol { return t.Add("", local) }
	soap := func(ns string) soapSymbols {
		return soapSymbols{
			binding:     t.Add(ns, "binding"),
			operation:   t.Add(ns, "operation"),
			body:        t.Add(ns, "body"),
			header:      t.Add(ns, "header"),
			headerfault: t.Add(ns, "headerfault"),
			fault:       t.Add(ns, "fault"),
			address:     t.Add(ns, "address"),
		}
	}
	return symbols{
		definitions:   el("definitions"),
		imprt:         el("import"),
		types:         el("types"),
		message:       el("message"),
		part:          el("part"),
		portType:      el("portType"),
		operation:     el("operation"),
		input:         el("input"),
		output:        el("output"),
		fault:         el("fault"),
		binding:       el("binding"),
		service:       el("service"),
		port:          el("port"),
		documentation: el("documentation"),

		soap:   soap(SoapNamespace),
		soap12: soap(Soap12Namespace),

		httpBinding:        t.Add(HTTPNamespace, "binding"),
		httpOperation:      t.Add(HTTPNamespace, "operation"),
		httpAddress:        t.Add(HTTPNamespace, "address"),
		httpURLEncoded:     t.Add(HTTPNamespace, "urlEncoded"),
		httpURLReplacement: t.Add(HTTPNamespace, "urlReplacement"),

		mimeContent:          t.Add(MimeNamespace, "content"),
		mimeMultipartRelated: t.Add(MimeNamespace, "multipartRelated"),
		mimePart:             t.Add(MimeNamespace, "part"),
		mimeXML:              t.Add(MimeNamespace, "mimeXml"),

		tmText:  t.Add(MimeTextNamespace, "text"),
		tmMatch: t.Add(MimeTextNamespace, "match"),

		aName:            at("name"),
		aTargetNamespace: at("targetNamespace"),
		aNamespace:       at("namespace"),
		aLocation:        at("location"),
		aElement:         at("element"),
		aType:            at("type"),
		aMessage:         at("message"),
		aParameterOrder:  at("parameterOrder"),
		aBinding:         at("binding"),
		aRequired:        t.Add(Namespace, "required"),
		aTransport:       at("transport"),
		aStyle:           at("style"),
		aSoapAction:      at("soapAction"),
		aParts:           at("parts"),
		aUse:             at("use"),
		aEncodingStyle:   at("encodingStyle"),
		aPart:            at("part"),
		aVerb:            at("verb"),
		aGroup:           at("group"),
		aCapture:         at("capture"),
		aRepeats:         at("repeats"),
		aPattern:         at("pattern"),
		aIgnoreCase:      at("ignoreCase"),
	}
}

// extSlot is a set of places where a binding extension may appear.
type extSlot uint8

const (
	slotBinding extSlot = 1 << iota
	slotOperation
	slotInput
	slotOutput
	slotFault
	slotPort
	slotMimePart

	// slotOther covers every extensible element that defines no extension
	// of its own; only Raw is legal there.
	slotOther extSlot = 0
)

// legalIn reports whether e may appear in slot. Raw is legal everywhere.
func legalIn(e Extension, slot extSlot) bool {
	if _, ok := e.(*Raw); ok {
		return true
	}
	return slotsOf(e)&slot != 0
}

// slotsOf returns the slots in which a known extension is legal.
func slotsOf(e Extension) extSlot {
	switch e.(type) {
	case *SoapBinding, *Soap12Binding, *HTTPBinding:
		return slotBinding
	case *SoapOperationBinding, *Soap12OperationBinding, *HTTPOperationBinding:
		return slotOperation
	case *SoapBodyBinding, *Soap12BodyBinding, *SoapHeaderBinding, *Soap12HeaderBinding,
		*MimeContentBinding, *MimeXMLBinding, *MimeTextBinding:
		return slotInput | slotOutput | slotMimePart
	case *MimeMultipartRelatedBinding:
		return slotInput | slotOutput
	case *HTTPURLEncoded, *HTTPURLReplacement:
		return slotInput
	case *SoapFaultBinding, *Soap12FaultBinding:
		return slotFault
	case *SoapAddressBinding, *Soap12AddressBinding, *HTTPAddressBinding:
		return slotPort
	}
	return 0
}
