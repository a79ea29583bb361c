package wsdl

import (
	"maps"

	"github.com/rs/zerolog"
)

// NewReadOptions returns a default, valid read options value.
func NewReadOptions() ReadOptions {
	return ReadOptions{}
}

// NewWriteOptions returns a default, valid write options value.
func NewWriteOptions() WriteOptions {
	return WriteOptions{}
}

// Validate validates read options values.
func (o ReadOptions) Validate() error {
	_, err := o.withDefaults()
	return err
}

// Validate validates write options values.
func (o WriteOptions) Validate() error {
	_, err := o.withDefaults()
	return err
}

// WithLogger sets the logger used while reading (default is a no-op logger).
func (o ReadOptions) WithLogger(l zerolog.Logger) ReadOptions {
	o.logger = &l
	return o
}

// WithCharsetReader sets the converter for non UTF-8 documents. Nil rejects
// such documents.
func (o ReadOptions) WithCharsetReader(fn CharsetReader) ReadOptions {
	o.charsetReader = charsetOption{value: fn, set: true}
	return o
}

// WithMaxDepth sets the element nesting limit (0 uses default, NoLimit
// disables it).
func (o ReadOptions) WithMaxDepth(value int) ReadOptions {
	o.maxDepth = intOption{value: value, set: true}
	return o
}

// WithMaxAttrs sets the per-element attribute limit (0 uses default, NoLimit
// disables it).
func (o ReadOptions) WithMaxAttrs(value int) ReadOptions {
	o.maxAttrs = intOption{value: value, set: true}
	return o
}

// WithLogger sets the logger used while writing (default is a no-op logger).
func (o WriteOptions) WithLogger(l zerolog.Logger) WriteOptions {
	o.logger = &l
	return o
}

// WithIndent indents nested elements with value.
func (o WriteOptions) WithIndent(value string) WriteOptions {
	o.indent = value
	return o
}

// WithoutDeclaration omits the XML declaration.
func (o WriteOptions) WithoutDeclaration() WriteOptions {
	o.omitDeclaration = true
	return o
}

// WithPrefix sets the prefix declared for namespace when the writer has to
// bind it itself.
func (o WriteOptions) WithPrefix(namespace, prefix string) WriteOptions {
	prefixes := make(map[string]string, len(o.prefixes)+1)
	maps.Copy(prefixes, o.prefixes)
	prefixes[namespace] = prefix
	o.prefixes = prefixes
	return o
}
