package xmlstream

import "errors"

// Well-known namespaces.
const (
	XMLNamespace   = "http://www.w3.org/XML/1998/namespace"
	XMLNSNamespace = "http://www.w3.org/2000/xmlns/"
	XSINamespace   = "http://www.w3.org/2001/XMLSchema-instance"
)

var errUnboundPrefix = errors.New("unbound namespace prefix")

type nsScope struct {
	prefixes   map[string]string
	defaultNS  string
	defaultSet bool
}

type nsStack struct {
	scopes []nsScope
}

func (s *nsStack) push(scope nsScope) int {
	s.scopes = append(s.scopes, scope)
	return len(s.scopes) - 1
}

func (s *nsStack) pop() {
	if len(s.scopes) == 0 {
		return
	}
	s.scopes = s.scopes[:len(s.scopes)-1]
}

// lookup resolves prefix as seen by the element at depth. The empty prefix
// resolves to the default namespace, which may be empty.
func (s *nsStack) lookup(prefix string, depth int) (string, bool) {
	if prefix == "xml" {
		return XMLNamespace, true
	}
	if depth >= len(s.scopes) {
		depth = len(s.scopes) - 1
	}
	if prefix == "" {
		for i := depth; i >= 0; i-- {
			if s.scopes[i].defaultSet {
				return s.scopes[i].defaultNS, true
			}
		}
		return "", true
	}
	for i := depth; i >= 0; i-- {
		if ns, ok := s.scopes[i].prefixes[prefix]; ok {
			// xmlns:p="" undeclares p (XML Namespaces 1.1).
			return ns, ns != ""
		}
	}
	return "", false
}
