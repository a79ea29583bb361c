package xmlsink

import (
	"bytes"
	"encoding/xml"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	wsdlerrors "github.com/jacoelho/wsdl/errors"
	"github.com/jacoelho/wsdl/internal/xmlstream"
	"github.com/jacoelho/wsdl/xmlnode"
)

func TestWriterPrefixes(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, Options{Prefixes: map[string]string{"urn:soap": "soap"}})

	require.NoError(t, w.Start("urn:wsdl", "definitions", "", []xmlnode.Namespace{
		{URI: "urn:wsdl"},
		{Prefix: "tns", URI: "urn:tns"},
	}))
	w.Attr("name", "x")
	require.NoError(t, w.Start("urn:wsdl", "port", "", nil))
	w.QNameAttr("binding", xml.Name{Space: "urn:tns", Local: "B"})
	w.QNameAttr("absent", xml.Name{})
	require.NoError(t, w.Start("urn:soap", "address", "", nil))
	w.Attr("location", "http://x")
	require.NoError(t, w.End())
	require.NoError(t, w.End())
	require.NoError(t, w.End())
	require.NoError(t, w.Close())

	want := `<definitions xmlns="urn:wsdl" xmlns:tns="urn:tns" name="x">` +
		`<port binding="tns:B">` +
		`<soap:address xmlns:soap="urn:soap" location="http://x"></soap:address>` +
		`</port></definitions>`
	assert.Equal(t, want, buf.String())
}

func TestWriterGeneratesPrefixForQNameValue(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, Options{})
	require.NoError(t, w.Start("", "e", "", nil))
	w.QNameAttr("type", xml.Name{Space: "urn:z", Local: "T"})
	w.QNameAttr("local", xml.Name{Local: "L"})
	require.NoError(t, w.End())
	require.NoError(t, w.Close())
	assert.Equal(t, `<e xmlns:q1="urn:z" type="q1:T" local="L"></e>`, buf.String())
}

func TestWriterUndeclaresDefaultForUnqualifiedElement(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, Options{})
	require.NoError(t, w.Start("urn:d", "r", "", []xmlnode.Namespace{{URI: "urn:d"}}))
	require.NoError(t, w.Start("", "c", "", nil))
	require.NoError(t, w.End())
	require.NoError(t, w.End())
	require.NoError(t, w.Close())
	assert.Equal(t, `<r xmlns="urn:d"><c xmlns=""></c></r>`, buf.String())
}

func TestWriterConflictingHint(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, Options{})
	require.NoError(t, w.Start("urn:one", "r", "p", []xmlnode.Namespace{{Prefix: "p", URI: "urn:one"}}))
	require.NoError(t, w.Start("urn:two", "x", "p", nil))
	require.NoError(t, w.End())
	require.NoError(t, w.End())
	require.NoError(t, w.Close())
	assert.Equal(t, `<p:r xmlns:p="urn:one"><q1:x xmlns:q1="urn:two"></q1:x></p:r>`, buf.String())
}

func TestWriterNodeRoundTrip(t *testing.T) {
	doc := `<p:ext xmlns:p="urn:p" p:flag="on" plain="v">one<!-- c --><q:i xmlns:q="urn:q">two &amp; more</q:i><?pi data?></p:ext>`
	r := xmlstream.NewReader(strings.NewReader(doc), xmlstream.Options{})
	root, err := r.Root()
	require.NoError(t, err)
	el, err := r.Capture(root)
	require.NoError(t, err)

	var buf bytes.Buffer
	w := NewWriter(&buf, Options{})
	require.NoError(t, w.Node(el))
	require.NoError(t, w.Close())
	assert.Equal(t, doc, buf.String())
}

func TestWriterInvalidNodes(t *testing.T) {
	w := NewWriter(&bytes.Buffer{}, Options{})
	assert.ErrorIs(t, w.Node(nil), ErrInvalidNode)
	assert.ErrorIs(t, w.Node(&xmlnode.Element{}), ErrInvalidNode)
	assert.ErrorIs(t, w.Node((*xmlnode.Element)(nil)), ErrInvalidNode)
	assert.ErrorIs(t, w.Node((*xmlnode.Text)(nil)), ErrInvalidNode)
}

func TestWriterDeclarationAndIndent(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, Options{Declaration: true, Indent: "  "})
	require.NoError(t, w.Start("", "a", "", nil))
	require.NoError(t, w.Start("", "b", "", nil))
	require.NoError(t, w.End())
	require.NoError(t, w.End())
	require.NoError(t, w.Close())

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, `<?xml version="1.0" encoding="utf-8"?>`), out)
	assert.Contains(t, out, "\n  <b></b>")
}

func TestWriterCloseWithOpenElement(t *testing.T) {
	w := NewWriter(&bytes.Buffer{}, Options{})
	require.NoError(t, w.Start("", "a", "", nil))
	assert.Error(t, w.Close())
	assert.Error(t, NewWriter(&bytes.Buffer{}, Options{}).End())
}

func TestWriterRejectsUnqualifiedQNameUnderDefault(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, Options{})
	require.NoError(t, w.Start("urn:d", "part", "", []xmlnode.Namespace{{URI: "urn:d"}}))
	w.QNameAttr("type", xml.Name{Local: "string"})

	err := w.End()
	var contentErr *wsdlerrors.InvalidContentError
	require.ErrorAs(t, err, &contentErr)
	assert.Equal(t, "type", contentErr.Slot)
	assert.Equal(t, xml.Name{Space: "urn:d", Local: "part"}, contentErr.Name)
	assert.Error(t, w.Close())
	assert.Empty(t, buf.String())
}

func TestWriterUnqualifiedQNameAfterUndeclaredDefault(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, Options{})
	require.NoError(t, w.Start("urn:d", "r", "", []xmlnode.Namespace{{URI: "urn:d"}}))
	require.NoError(t, w.Start("", "c", "", nil))
	w.QNameAttr("type", xml.Name{Local: "T"})
	require.NoError(t, w.End())
	require.NoError(t, w.End())
	require.NoError(t, w.Close())
	assert.Equal(t, `<r xmlns="urn:d"><c xmlns="" type="T"></c></r>`, buf.String())
}
