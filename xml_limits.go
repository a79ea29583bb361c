package wsdl

import (
	"cmp"
	"fmt"
)

const (
	defaultXMLMaxDepth = 256
	defaultXMLMaxAttrs = 256
)

// NoLimit disables a read limit.
const NoLimit = -1

type xmlParseLimits struct {
	maxDepth int
	maxAttrs int
}

func resolveXMLParseLimits(maxDepth, maxAttrs int) (xmlParseLimits, error) {
	if maxDepth < NoLimit {
		return xmlParseLimits{}, fmt.Errorf("xml max depth must be >= 0 or NoLimit")
	}
	if maxAttrs < NoLimit {
		return xmlParseLimits{}, fmt.Errorf("xml max attrs must be >= 0 or NoLimit")
	}
	return xmlParseLimits{
		maxDepth: defaultXMLLimit(maxDepth, defaultXMLMaxDepth),
		maxAttrs: defaultXMLLimit(maxAttrs, defaultXMLMaxAttrs),
	}, nil
}

// defaultXMLLimit maps 0 to fallback and NoLimit to 0, which the stream
// reader treats as unbounded.
func defaultXMLLimit(value, fallback int) int {
	if value == NoLimit {
		return 0
	}
	return cmp.Or(value, fallback)
}
