package wsdl

import (
	"io"

	"github.com/rs/zerolog"
)

type intOption struct {
	value int
	set   bool
}

func (o intOption) resolved() int {
	if !o.set {
		return 0
	}
	return o.value
}

// CharsetReader converts a document in the named encoding to UTF-8.
type CharsetReader func(label string, input io.Reader) (io.Reader, error)

type charsetOption struct {
	value CharsetReader
	set   bool
}

// ReadOptions configures document reading.
type ReadOptions struct {
	logger        *zerolog.Logger
	charsetReader charsetOption
	maxDepth      intOption
	maxAttrs      intOption
}

// WriteOptions configures document writing.
type WriteOptions struct {
	logger          *zerolog.Logger
	indent          string
	omitDeclaration bool
	prefixes        map[string]string
}
