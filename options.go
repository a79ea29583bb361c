package wsdl

import (
	"fmt"
	"maps"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/net/html/charset"

	"github.com/jacoelho/wsdl/internal/xmlsink"
	"github.com/jacoelho/wsdl/internal/xmlstream"
)

func (o ReadOptions) withDefaults() (xmlstream.Options, error) {
	limits, err := resolveXMLParseLimits(o.maxDepth.resolved(), o.maxAttrs.resolved())
	if err != nil {
		return xmlstream.Options{}, fmt.Errorf("xml limits: %w", err)
	}
	opts := xmlstream.Options{
		CharsetReader: charset.NewReaderLabel,
		MaxDepth:      limits.maxDepth,
		MaxAttrs:      limits.maxAttrs,
		Logger:        zerolog.Nop(),
	}
	if o.charsetReader.set {
		opts.CharsetReader = o.charsetReader.value
	}
	if o.logger != nil {
		opts.Logger = *o.logger
	}
	return opts, nil
}

func (o WriteOptions) withDefaults() (xmlsink.Options, error) {
	if strings.TrimLeft(o.indent, " \t") != "" {
		return xmlsink.Options{}, fmt.Errorf("indent must be spaces or tabs")
	}
	prefixes := maps.Clone(defaultPrefixes)
	for ns, prefix := range o.prefixes {
		switch {
		case ns == "":
			return xmlsink.Options{}, fmt.Errorf("prefix %q: empty namespace", prefix)
		case prefix == "" || strings.ContainsAny(prefix, ": \t\r\n") || strings.HasPrefix(strings.ToLower(prefix), "xml"):
			return xmlsink.Options{}, fmt.Errorf("invalid prefix %q for namespace %s", prefix, ns)
		}
		prefixes[ns] = prefix
	}
	opts := xmlsink.Options{
		Indent:      o.indent,
		Declaration: !o.omitDeclaration,
		Prefixes:    prefixes,
		Logger:      zerolog.Nop(),
	}
	if o.logger != nil {
		opts.Logger = *o.logger
	}
	return opts, nil
}
