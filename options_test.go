package wsdl

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadOptionsDefaults(t *testing.T) {
	opts, err := NewReadOptions().withDefaults()
	require.NoError(t, err)
	assert.Equal(t, defaultXMLMaxDepth, opts.MaxDepth)
	assert.Equal(t, defaultXMLMaxAttrs, opts.MaxAttrs)
	assert.NotNil(t, opts.CharsetReader)
}

func TestReadOptionsOverrides(t *testing.T) {
	opts, err := NewReadOptions().
		WithMaxDepth(8).
		WithMaxAttrs(4).
		WithCharsetReader(nil).
		withDefaults()
	require.NoError(t, err)
	assert.Equal(t, 8, opts.MaxDepth)
	assert.Equal(t, 4, opts.MaxAttrs)
	assert.Nil(t, opts.CharsetReader)

	opts, err = NewReadOptions().WithMaxDepth(0).withDefaults()
	require.NoError(t, err)
	assert.Equal(t, defaultXMLMaxDepth, opts.MaxDepth)

	opts, err = NewReadOptions().WithMaxDepth(NoLimit).WithMaxAttrs(NoLimit).withDefaults()
	require.NoError(t, err)
	assert.Zero(t, opts.MaxDepth)
	assert.Zero(t, opts.MaxAttrs)
}

func TestReadOptionsValidate(t *testing.T) {
	require.NoError(t, NewReadOptions().Validate())
	require.NoError(t, NewReadOptions().WithMaxDepth(NoLimit).Validate())
	require.Error(t, NewReadOptions().WithMaxDepth(-2).Validate())
	require.Error(t, NewReadOptions().WithMaxAttrs(-3).Validate())

	_, err := NewReader(strings.NewReader("<a/>"), NewReadOptions().WithMaxDepth(-2))
	require.Error(t, err)
}

func TestReadWithoutCharsetReader(t *testing.T) {
	doc := "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?><definitions xmlns=\"http://schemas.xmlsoap.org/wsdl/\"/>"
	_, err := ReadWithOptions(strings.NewReader(doc), NewReadOptions().WithCharsetReader(nil))
	require.Error(t, err)

	called := false
	custom := func(_ string, input io.Reader) (io.Reader, error) {
		called = true
		return input, nil
	}
	_, err = ReadWithOptions(strings.NewReader(doc), NewReadOptions().WithCharsetReader(custom))
	require.NoError(t, err)
	assert.True(t, called)
}

func TestReadLogsCapturedExtensions(t *testing.T) {
	var logs bytes.Buffer
	logger := zerolog.New(&logs).Level(zerolog.DebugLevel)
	doc := `<definitions xmlns="http://schemas.xmlsoap.org/wsdl/" xmlns:ext="urn:ext"><ext:policy/></definitions>`
	_, err := ReadWithOptions(strings.NewReader(doc), NewReadOptions().WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "captured extension element")
	assert.Contains(t, logs.String(), `"element":"policy"`)
}

func TestWriteOptionsValidate(t *testing.T) {
	require.NoError(t, NewWriteOptions().WithIndent("\t").Validate())

	tests := []struct {
		name string
		opts WriteOptions
	}{
		{name: "indent text", opts: NewWriteOptions().WithIndent("--")},
		{name: "empty namespace", opts: NewWriteOptions().WithPrefix("", "p")},
		{name: "empty prefix", opts: NewWriteOptions().WithPrefix("urn:x", "")},
		{name: "colon prefix", opts: NewWriteOptions().WithPrefix("urn:x", "a:b")},
		{name: "reserved prefix", opts: NewWriteOptions().WithPrefix("urn:x", "xmlfoo")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, tt.opts.Validate())
		})
	}
}

func TestWriteOptionsPrefixes(t *testing.T) {
	base := NewWriteOptions().WithPrefix("urn:a", "a")
	derived := base.WithPrefix("urn:b", "b")
	assert.Len(t, base.prefixes, 1)
	assert.Len(t, derived.prefixes, 2)

	opts, err := derived.WithPrefix(Namespace, "w").withDefaults()
	require.NoError(t, err)
	assert.Equal(t, "w", opts.Prefixes[Namespace])
	assert.Equal(t, "soap", opts.Prefixes[SoapNamespace])
	assert.Equal(t, "wsdl", defaultPrefixes[Namespace])
	assert.True(t, opts.Declaration)
}
