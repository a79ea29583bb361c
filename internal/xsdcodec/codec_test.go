package xsdcodec

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	wsdlerrors "github.com/jacoelho/wsdl/errors"
	"github.com/jacoelho/wsdl/internal/xmlsink"
	"github.com/jacoelho/wsdl/internal/xmlstream"
	"github.com/jacoelho/wsdl/xmlnode"
	"github.com/jacoelho/wsdl/xsd"
)

const calcSchema = `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" xmlns:tns="urn:calc" xmlns:ext="urn:ext" targetNamespace="urn:calc" elementFormDefault="qualified" blockDefault="#all" ext:flag="on">
  <xs:import namespace="urn:other" schemaLocation="other.xsd"/>
  <xs:include schemaLocation="inc.xsd"/>
  <xs:annotation id="a1">
    <xs:documentation xml:lang="en" source="doc.html">Adds <b>two</b> numbers</xs:documentation>
    <xs:appinfo><ext:hint level="2"/></xs:appinfo>
  </xs:annotation>
  <xs:element name="Add" id="e1">
    <xs:complexType>
      <xs:sequence>
        <xs:element name="a" type="xs:int"/>
        <xs:element name="b" type="xs:int" minOccurs="0" maxOccurs="unbounded" nillable="true"/>
        <xs:choice minOccurs="0">
          <xs:element ref="tns:Extra"/>
          <xs:any namespace="##other" processContents="lax"/>
        </xs:choice>
        <xs:group ref="tns:Common"/>
      </xs:sequence>
      <xs:attribute name="mode" type="tns:Mode" use="required" default="fast"/>
      <xs:attributeGroup ref="tns:Attrs"/>
      <xs:anyAttribute namespace="##any" processContents="skip"/>
    </xs:complexType>
    <xs:key name="k"><xs:selector xpath="a"/><xs:field xpath="@id"/></xs:key>
    <xs:keyref name="kr" refer="tns:k"><xs:selector xpath="b"/><xs:field xpath="."/></xs:keyref>
  </xs:element>
  <xs:simpleType name="Mode" final="list restriction">
    <xs:restriction base="xs:string">
      <xs:enumeration value="fast"/>
      <xs:enumeration value="slow" fixed="true"/>
      <ext:note>vendor facet</ext:note>
    </xs:restriction>
  </xs:simpleType>
  <xs:simpleType name="Modes"><xs:list itemType="tns:Mode"/></xs:simpleType>
  <xs:simpleType name="Num">
    <xs:union memberTypes="xs:int xs:decimal">
      <xs:simpleType><xs:restriction base="xs:string"><xs:pattern value="[a-z]+"/></xs:restriction></xs:simpleType>
    </xs:union>
  </xs:simpleType>
  <xs:complexType name="Price">
    <xs:simpleContent>
      <xs:extension base="xs:decimal"><xs:attribute name="currency" type="xs:string"/></xs:extension>
    </xs:simpleContent>
  </xs:complexType>
  <xs:complexType name="Derived" mixed="true">
    <xs:complexContent>
      <xs:extension base="tns:Base"><xs:all><xs:element name="x" type="xs:string"/></xs:all></xs:extension>
    </xs:complexContent>
  </xs:complexType>
  <xs:group name="Common"><xs:sequence><xs:element name="note" type="xs:string" minOccurs="0"/></xs:sequence></xs:group>
  <xs:attributeGroup name="Attrs"><xs:attribute name="lang" type="xs:language" form="qualified"/></xs:attributeGroup>
  <xs:attribute name="version" fixed="1"/>
  <xs:notation name="png" public="image/png"/>
  <ext:extra/>
</xs:schema>`

func readSchema(doc string) (*xsd.Schema, error) {
	r := xmlstream.NewReader(strings.NewReader(doc), xmlstream.Options{})
	sr := NewReader(r)
	root, err := r.Root()
	if err != nil {
		return nil, err
	}
	return sr.ReadSchema(root)
}

func writeSchema(s *xsd.Schema) (string, error) {
	var b strings.Builder
	w := xmlsink.NewWriter(&b, xmlsink.Options{})
	if err := NewWriter(w).WriteSchema(s); err != nil {
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}
	return b.String(), nil
}

func qn(space, local string) xml.Name {
	return xml.Name{Space: space, Local: local}
}

func xs(local string) xml.Name {
	return qn(xsd.Namespace, local)
}

var xsDecl = []xmlnode.Namespace{{Prefix: "xs", URI: xsd.Namespace}}

func TestReadSchema(t *testing.T) {
	s, err := readSchema(calcSchema)
	require.NoError(t, err)

	assert.Equal(t, "urn:calc", s.TargetNamespace)
	assert.Equal(t, xsd.FormQualified, s.ElementFormDefault)
	assert.Equal(t, xsd.FormDefault, s.AttributeFormDefault)
	assert.True(t, s.BlockDefault.Has(xsd.DerivationAll))
	require.Len(t, s.UnhandledAttributes, 1)
	assert.Equal(t, qn("urn:ext", "flag"), s.UnhandledAttributes[0].Name)
	require.Len(t, s.UnhandledElements, 1)
	assert.Equal(t, qn("urn:ext", "extra"), s.UnhandledElements[0].Name)

	require.Len(t, s.Includes, 2)
	assert.Equal(t, &xsd.Import{Namespace: "urn:other", SchemaLocation: "other.xsd"}, s.Includes[0])
	assert.Equal(t, &xsd.Include{SchemaLocation: "inc.xsd"}, s.Includes[1])

	require.Len(t, s.Items, 11)

	ann := s.Items[0].(*xsd.Annotation)
	assert.Equal(t, "a1", ann.ID)
	require.Len(t, ann.Items, 2)
	doc := ann.Items[0].(*xsd.Documentation)
	assert.Equal(t, "en", doc.Language)
	assert.Equal(t, "doc.html", doc.Source)
	require.Len(t, doc.Markup, 3)
	assert.Equal(t, &xmlnode.Text{Data: "Adds "}, doc.Markup[0])
	assert.Equal(t, qn("", "b"), doc.Markup[1].(*xmlnode.Element).Name)

	add := s.Items[1].(*xsd.Element)
	assert.Equal(t, "Add", add.Name)
	assert.Equal(t, "e1", add.ID)
	ct := add.SchemaType.(*xsd.ComplexType)
	seq := ct.Particle.(*xsd.Sequence)
	require.Len(t, seq.Items, 4)

	a := seq.Items[0].(*xsd.Element)
	assert.Equal(t, xs("int"), a.Type)
	assert.True(t, a.MinOccurs.IsDefault())

	b := seq.Items[1].(*xsd.Element)
	assert.Equal(t, uint64(0), b.MinOccurs.Value())
	assert.True(t, b.MaxOccurs.IsUnbounded())
	assert.True(t, b.Nillable)

	choice := seq.Items[2].(*xsd.Choice)
	assert.Equal(t, qn("urn:calc", "Extra"), choice.Items[0].(*xsd.Element).Ref)
	wc := choice.Items[1].(*xsd.Any)
	assert.Equal(t, "##other", wc.Namespace)
	assert.Equal(t, xsd.ProcessContentsLax, wc.ProcessContents)
	assert.Equal(t, qn("urn:calc", "Common"), seq.Items[3].(*xsd.GroupRef).Ref)

	require.Len(t, ct.Attributes, 2)
	mode := ct.Attributes[0].(*xsd.Attribute)
	assert.Equal(t, xsd.AttributeUseRequired, mode.Use)
	assert.True(t, mode.HasDefault)
	assert.Equal(t, "fast", mode.Default)
	assert.False(t, mode.HasFixed)
	assert.Equal(t, qn("urn:calc", "Attrs"), ct.Attributes[1].(*xsd.AttributeGroupRef).Ref)
	assert.Equal(t, xsd.ProcessContentsSkip, ct.AnyAttribute.ProcessContents)

	require.Len(t, add.Constraints, 2)
	key := add.Constraints[0].(*xsd.Key)
	assert.Equal(t, "a", key.Selector.XPath)
	assert.Equal(t, "@id", key.Fields[0].XPath)
	assert.Equal(t, qn("urn:calc", "k"), add.Constraints[1].(*xsd.Keyref).Refer)

	mt := s.Items[2].(*xsd.SimpleType)
	assert.True(t, mt.Final.Has(xsd.DerivationList))
	assert.True(t, mt.Final.Has(xsd.DerivationRestriction))
	res := mt.Content.(*xsd.SimpleTypeRestriction)
	assert.Equal(t, xs("string"), res.Base)
	require.Len(t, res.Facets, 3)
	assert.Equal(t, "fast", res.Facets[0].(*xsd.Enumeration).Value)
	assert.True(t, res.Facets[1].(*xsd.Enumeration).Fixed)
	raw := res.Facets[2].(*xsd.Raw)
	assert.Equal(t, qn("urn:ext", "note"), raw.Name())

	assert.Equal(t, qn("urn:calc", "Mode"), s.Items[3].(*xsd.SimpleType).Content.(*xsd.SimpleTypeList).ItemType)

	union := s.Items[4].(*xsd.SimpleType).Content.(*xsd.SimpleTypeUnion)
	assert.Equal(t, []xml.Name{xs("int"), xs("decimal")}, union.MemberTypes)
	require.Len(t, union.SimpleTypes, 1)

	price := s.Items[5].(*xsd.ComplexType).ContentModel.(*xsd.SimpleContent)
	assert.Equal(t, xs("decimal"), price.Derivation.(*xsd.SimpleContentExtension).Base)

	derived := s.Items[6].(*xsd.ComplexType)
	assert.True(t, derived.Mixed)
	ext := derived.ContentModel.(*xsd.ComplexContent).Derivation.(*xsd.ComplexContentExtension)
	assert.Equal(t, qn("urn:calc", "Base"), ext.Base)
	assert.IsType(t, &xsd.All{}, ext.Particle)

	assert.Equal(t, "Common", s.Items[7].(*xsd.Group).Name)
	ag := s.Items[8].(*xsd.AttributeGroup)
	assert.Equal(t, xsd.FormQualified, ag.Attributes[0].(*xsd.Attribute).Form)

	version := s.Items[9].(*xsd.Attribute)
	assert.True(t, version.HasFixed)
	assert.Equal(t, "1", version.Fixed)

	assert.Equal(t, &xsd.Notation{Name: "png", Public: "image/png"}, s.Items[10])
}

func TestSchemaRoundTrip(t *testing.T) {
	first, err := readSchema(calcSchema)
	require.NoError(t, err)

	out, err := writeSchema(first)
	require.NoError(t, err)

	second, err := readSchema(out)
	require.NoError(t, err, out)
	assert.Equal(t, first, second)
}

func TestReadSchemaRejectsOtherRoots(t *testing.T) {
	_, err := readSchema(`<definitions xmlns="http://schemas.xmlsoap.org/wsdl/"/>`)
	var typeErr *wsdlerrors.UnknownTypeError
	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, "Schema", typeErr.Slot)
}

func TestReadSchemaErrors(t *testing.T) {
	const open = `<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema">`
	tests := []struct {
		name string
		body string
		code wsdlerrors.ErrorCode
	}{
		{"sequence inside all", `<xs:complexType><xs:all><xs:sequence/></xs:all></xs:complexType>`, wsdlerrors.ErrUnknownType},
		{"facet inside element", `<xs:element name="a"><xs:length value="1"/></xs:element>`, wsdlerrors.ErrUnknownType},
		{"second annotation", `<xs:element name="a"><xs:annotation/><xs:annotation/></xs:element>`, wsdlerrors.ErrUnknownType},
		{"unknown use", `<xs:attribute name="a" use="sometimes"/>`, wsdlerrors.ErrInvalidEnumValue},
		{"unknown form", `<xs:element name="a" form="loose"/>`, wsdlerrors.ErrInvalidEnumValue},
		{"unknown process contents", `<xs:complexType><xs:anyAttribute processContents="eager"/></xs:complexType>`, wsdlerrors.ErrInvalidEnumValue},
		{"unknown derivation", `<xs:complexType final="sideways"/>`, wsdlerrors.ErrInvalidEnumValue},
		{"bad boolean", `<xs:element name="a" nillable="yes"/>`, wsdlerrors.ErrInvalidEnumValue},
		{"bad occurs", `<xs:group name="g"><xs:sequence minOccurs="many"/></xs:group>`, wsdlerrors.ErrMalformedDocument},
		{"unbound type prefix", `<xs:element name="a" type="nope:int"/>`, wsdlerrors.ErrMalformedDocument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := readSchema(open + tt.body + `</xs:schema>`)
			require.Error(t, err)
			code, ok := wsdlerrors.CodeOf(err)
			require.True(t, ok, err.Error())
			assert.Equal(t, tt.code, code, err.Error())
		})
	}
}

func TestReadSchemaInvalidEnumDetails(t *testing.T) {
	_, err := readSchema(`<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema"><xs:attribute name="a" use="sometimes"/></xs:schema>`)
	var enumErr *wsdlerrors.InvalidEnumValueError
	require.ErrorAs(t, err, &enumErr)
	assert.Equal(t, "AttributeUse", enumErr.Enum)
	assert.Equal(t, "sometimes", enumErr.Value)
	assert.Equal(t, xs("attribute"), enumErr.Name)
}

func TestWriteOmitsDefaults(t *testing.T) {
	s := &xsd.Schema{
		Namespaces: xsDecl,
		Items: []xsd.SchemaItem{
			&xsd.Element{Name: "a", MinOccurs: xsd.OccursOf(1), MaxOccurs: xsd.OccursOf(1)},
			&xsd.Attribute{Name: "b", Use: xsd.AttributeUseDefault, Form: xsd.FormDefault},
		},
	}
	out, err := writeSchema(s)
	require.NoError(t, err)
	assert.Equal(t,
		`<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema"><xs:element name="a"></xs:element><xs:attribute name="b"></xs:attribute></xs:schema>`,
		out)
}

func TestWriteOccursAndQNames(t *testing.T) {
	s := &xsd.Schema{
		Namespaces: xsDecl,
		Items: []xsd.SchemaItem{
			&xsd.Element{
				Name:      "a",
				Type:      qn("urn:t", "T"),
				MinOccurs: xsd.OccursOf(0),
				MaxOccurs: xsd.Unbounded,
			},
		},
	}
	out, err := writeSchema(s)
	require.NoError(t, err)
	assert.Contains(t, out, `xmlns:q1="urn:t"`)
	assert.Contains(t, out, `type="q1:T"`)
	assert.Contains(t, out, `minOccurs="0"`)
	assert.Contains(t, out, `maxOccurs="unbounded"`)
}

func TestWriteRejectsIllegalVariants(t *testing.T) {
	tests := []struct {
		name string
		item xsd.SchemaItem
		slot string
	}{
		{
			name: "element as complex type particle",
			item: &xsd.ComplexType{Particle: &xsd.Element{Name: "a"}},
			slot: "ComplexType.Particle",
		},
		{
			name: "sequence inside all",
			item: &xsd.ComplexType{Particle: &xsd.All{Items: []xsd.Particle{&xsd.Sequence{}}}},
			slot: "All.Items",
		},
		{
			name: "all inside sequence",
			item: &xsd.Group{Particle: &xsd.Sequence{Items: []xsd.Particle{&xsd.All{}}}},
			slot: "Sequence.Items",
		},
		{
			name: "group reference as group particle",
			item: &xsd.Group{Particle: &xsd.GroupRef{}},
			slot: "Group.Particle",
		},
		{
			name: "complex derivation in simple content",
			item: &xsd.ComplexType{ContentModel: &xsd.SimpleContent{Derivation: &xsd.ComplexContentExtension{}}},
			slot: "SimpleContent.Derivation",
		},
		{
			name: "nil element type",
			item: &xsd.Element{SchemaType: (*xsd.SimpleType)(nil)},
			slot: "Element.SchemaType",
		},
		{
			name: "nil attribute item",
			item: &xsd.AttributeGroup{Attributes: []xsd.AttributeItem{nil}},
			slot: "AttributeGroup.Attributes",
		},
		{
			name: "nil schema item",
			item: nil,
			slot: "Schema.Items",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := writeSchema(&xsd.Schema{Namespaces: xsDecl, Items: []xsd.SchemaItem{tt.item}})
			var typeErr *wsdlerrors.UnknownTypeError
			require.ErrorAs(t, err, &typeErr)
			assert.Equal(t, tt.slot, typeErr.Slot)
		})
	}
}

func TestWriteRejectsOutOfRangeEnums(t *testing.T) {
	_, err := writeSchema(&xsd.Schema{
		Namespaces: xsDecl,
		Items:      []xsd.SchemaItem{&xsd.Attribute{Name: "a", Use: xsd.AttributeUse(42)}},
	})
	var enumErr *wsdlerrors.InvalidEnumValueError
	require.ErrorAs(t, err, &enumErr)
	assert.Equal(t, "AttributeUse", enumErr.Enum)

	_, err = writeSchema(&xsd.Schema{Namespaces: xsDecl, ElementFormDefault: xsd.Form(9)})
	require.ErrorAs(t, err, &enumErr)
	assert.Equal(t, "Form", enumErr.Enum)
}

func TestWriteRawFacet(t *testing.T) {
	note := xmlnode.NewElement("urn:ext", "note")
	note.Prefix = "ext"
	note.Children = []xmlnode.Node{&xmlnode.Text{Data: "kept"}}
	st := &xsd.SimpleType{
		Name: "T",
		Content: &xsd.SimpleTypeRestriction{
			Base:   xs("string"),
			Facets: []xsd.Facet{&xsd.MaxLength{Value: "3"}, &xsd.Raw{Element: note}},
		},
	}
	out, err := writeSchema(&xsd.Schema{Namespaces: xsDecl, Items: []xsd.SchemaItem{st}})
	require.NoError(t, err)
	assert.Contains(t, out, `<xs:maxLength value="3"></xs:maxLength><ext:note xmlns:ext="urn:ext">kept</ext:note>`)

	st.Content.(*xsd.SimpleTypeRestriction).Facets = []xsd.Facet{&xsd.Raw{}}
	_, err = writeSchema(&xsd.Schema{Namespaces: xsDecl, Items: []xsd.SchemaItem{st}})
	var contentErr *wsdlerrors.InvalidContentError
	require.ErrorAs(t, err, &contentErr)
	assert.Equal(t, "Facets", contentErr.Slot)
}
