// Package xsdcodec reads and writes xs:schema elements, standalone or
// embedded in a WSDL types section.
package xsdcodec

import (
	"github.com/jacoelho/wsdl/internal/nametable"
	"github.com/jacoelho/wsdl/internal/xmlstream"
	"github.com/jacoelho/wsdl/xsd"
)

// symbols is the schema vocabulary registered in a reader's name table.
type symbols struct {
	schema         nametable.Symbol
	include        nametable.Symbol
	imprt          nametable.Symbol
	redefine       nametable.Symbol
	annotation     nametable.Symbol
	documentation  nametable.Symbol
	appinfo        nametable.Symbol
	element        nametable.Symbol
	complexType    nametable.Symbol
	simpleType     nametable.Symbol
	group          nametable.Symbol
	attributeGroup nametable.Symbol
	attribute      nametable.Symbol
	notation       nametable.Symbol
	sequence       nametable.Symbol
	choice         nametable.Symbol
	all            nametable.Symbol
	any            nametable.Symbol
	anyAttribute   nametable.Symbol
	simpleContent  nametable.Symbol
	complexContent nametable.Symbol
	extension      nametable.Symbol
	restriction    nametable.Symbol
	list           nametable.Symbol
	union          nametable.Symbol
	key            nametable.Symbol
	keyref         nametable.Symbol
	unique         nametable.Symbol
	selector       nametable.Symbol
	field          nametable.Symbol

	facets map[nametable.Symbol]func(xsd.FacetValue) xsd.Facet

	aID                   nametable.Symbol
	aName                 nametable.Symbol
	aRef                  nametable.Symbol
	aType                 nametable.Symbol
	aSubstitutionGroup    nametable.Symbol
	aMinOccurs            nametable.Symbol
	aMaxOccurs            nametable.Symbol
	aDefault              nametable.Symbol
	aFixed                nametable.Symbol
	aNillable             nametable.Symbol
	aAbstract             nametable.Symbol
	aFinal                nametable.Symbol
	aBlock                nametable.Symbol
	aForm                 nametable.Symbol
	aUse                  nametable.Symbol
	aNamespace            nametable.Symbol
	aProcessContents      nametable.Symbol
	aMixed                nametable.Symbol
	aBase                 nametable.Symbol
	aItemType             nametable.Symbol
	aMemberTypes          nametable.Symbol
	aRefer                nametable.Symbol
	aXPath                nametable.Symbol
	aValue                nametable.Symbol
	aSchemaLocation       nametable.Symbol
	aTargetNamespace      nametable.Symbol
	aVersion              nametable.Symbol
	aAttributeFormDefault nametable.Symbol
	aElementFormDefault   nametable.Symbol
	aBlockDefault         nametable.Symbol
	aFinalDefault         nametable.Symbol
	aPublic               nametable.Symbol
	aSystem               nametable.Symbol
	aSource               nametable.Symbol
	aLang                 nametable.Symbol
}

// facetNames lists the constraining facets in the order the writer knows
// them.
var facetNames = []struct {
	local string
	make  func(xsd.FacetValue) xsd.Facet
}{
	{"length", func(v xsd.FacetValue) xsd.Facet { f := xsd.Length(v); return &f }},
	{"minLength", func(v xsd.FacetValue) xsd.Facet { f := xsd.MinLength(v); return &f }},
	{"maxLength", func(v xsd.FacetValue) xsd.Facet { f := xsd.MaxLength(v); return &f }},
	{"pattern", func(v xsd.FacetValue) xsd.Facet { f := xsd.Pattern(v); return &f }},
	{"enumeration", func(v xsd.FacetValue) xsd.Facet { f := xsd.Enumeration(v); return &f }},
	{"minInclusive", func(v xsd.FacetValue) xsd.Facet { f := xsd.MinInclusive(v); return &f }},
	{"maxInclusive", func(v xsd.FacetValue) xsd.Facet { f := xsd.MaxInclusive(v); return &f }},
	{"minExclusive", func(v xsd.FacetValue) xsd.Facet { f := xsd.MinExclusive(v); return &f }},
	{"maxExclusive", func(v xsd.FacetValue) xsd.Facet { f := xsd.MaxExclusive(v); return &f }},
	{"totalDigits", func(v xsd.FacetValue) xsd.Facet { f := xsd.TotalDigits(v); return &f }},
	{"fractionDigits", func(v xsd.FacetValue) xsd.Facet { f := xsd.FractionDigits(v); return &f }},
	{"whiteSpace", func(v xsd.FacetValue) xsd.Facet { f := xsd.WhiteSpace(v); return &f }},
}

func newSymbols(t *nametable.Table) symbols {
	el := func(local string) nametable.Symbol { return t.Add(xsd.Namespace, local) }
	at := func(local string) nametable.Symbol { return t.Add("", local) }
	s := symbols{
		schema:         el("schema"),
		include:        el("include"),
		imprt:          el("import"),
		redefine:       el("redefine"),
		annotation:     el("annotation"),
		documentation:  el("documentation"),
		appinfo:        el("appinfo"),
		element:        el("element"),
		complexType:    el("complexType"),
		simpleType:     el("simpleType"),
		group:          el("group"),
		attributeGroup: el("attributeGroup"),
		attribute:      el("attribute"),
		notation:       el("notation"),
		sequence:       el("sequence"),
		choice:         el("choice"),
		all:            el("all"),
		any:            el("any"),
		anyAttribute:   el("anyAttribute"),
		simpleContent:  el("simpleContent"),
		complexContent: el("complexContent"),
		extension:      el("extension"),
		restriction:    el("restriction"),
		list:           el("list"),
		union:          el("union"),
		key:            el("key"),
		keyref:         el("keyref"),
		unique:         el("unique"),
		selector:       el("selector"),
		field:          el("field"),

		aID:                   at("id"),
		aName:                 at("name"),
		aRef:                  at("ref"),
		aType:                 at("type"),
		aSubstitutionGroup:    at("substitutionGroup"),
		aMinOccurs:            at("minOccurs"),
		aMaxOccurs:            at("maxOccurs"),
		aDefault:              at("default"),
		aFixed:                at("fixed"),
		aNillable:             at("nillable"),
		aAbstract:             at("abstract"),
		aFinal:                at("final"),
		aBlock:                at("block"),
		aForm:                 at("form"),
		aUse:                  at("use"),
		aNamespace:            at("namespace"),
		aProcessContents:      at("processContents"),
		aMixed:                at("mixed"),
		aBase:                 at("base"),
		aItemType:             at("itemType"),
		aMemberTypes:          at("memberTypes"),
		aRefer:                at("refer"),
		aXPath:                at("xpath"),
		aValue:                at("value"),
		aSchemaLocation:       at("schemaLocation"),
		aTargetNamespace:      at("targetNamespace"),
		aVersion:              at("version"),
		aAttributeFormDefault: at("attributeFormDefault"),
		aElementFormDefault:   at("elementFormDefault"),
		aBlockDefault:         at("blockDefault"),
		aFinalDefault:         at("finalDefault"),
		aPublic:               at("public"),
		aSystem:               at("system"),
		aSource:               at("source"),
		aLang:                 t.Add(xmlstream.XMLNamespace, "lang"),
	}
	s.facets = make(map[nametable.Symbol]func(xsd.FacetValue) xsd.Facet, len(facetNames))
	for _, f := range facetNames {
		s.facets[el(f.local)] = f.make
	}
	return s
}
