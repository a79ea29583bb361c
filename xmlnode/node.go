// Package xmlnode holds self-contained XML subtrees.
//
// The codec uses these values for content its grammar does not recognize:
// vendor extension elements, foreign attributes, documentation markup. A
// subtree has no link back to the document it was read from, so it can be
// moved between graphs or built by hand.
package xmlnode

import (
	"encoding/xml"
	"strings"
)

// Node is one child of an Element: *Element, *Text, *Comment or *ProcInst.
type Node interface {
	node()
}

// Namespace is a namespace declaration. An empty Prefix declares the default
// namespace.
type Namespace struct {
	Prefix string
	URI    string
}

// Attr is an attribute with its resolved name. Prefix records the prefix used
// in the source document; writers reuse it when it is still bound to
// Name.Space.
type Attr struct {
	Name   xml.Name
	Prefix string
	Value  string
}

// Element is an element subtree. Name.Space holds the namespace URI.
type Element struct {
	Name       xml.Name
	Prefix     string
	Namespaces []Namespace
	Attrs      []Attr
	Children   []Node
}

// Text is character data. CDATA sections are read as text.
type Text struct {
	Data string
}

// Comment is an XML comment.
type Comment struct {
	Data string
}

// ProcInst is a processing instruction inside a subtree.
type ProcInst struct {
	Target string
	Inst   string
}

func (*Element) node()  {}
func (*Text) node()     {}
func (*Comment) node()  {}
func (*ProcInst) node() {}

// NewElement returns an empty element.
func NewElement(space, local string) *Element {
	return &Element{Name: xml.Name{Space: space, Local: local}}
}

// Valid reports whether e can be written: it must be non-nil and named.
func (e *Element) Valid() bool {
	return e != nil && e.Name.Local != ""
}

// Attr returns the value of the attribute with the given name.
func (e *Element) Attr(space, local string) (string, bool) {
	if e == nil {
		return "", false
	}
	for _, a := range e.Attrs {
		if a.Name.Space == space && a.Name.Local == local {
			return a.Value, true
		}
	}
	return "", false
}

// SetAttr sets or appends an attribute, keeping the position of an existing one.
func (e *Element) SetAttr(space, local, value string) {
	for i := range e.Attrs {
		if e.Attrs[i].Name.Space == space && e.Attrs[i].Name.Local == local {
			e.Attrs[i].Value = value
			return
		}
	}
	e.Attrs = append(e.Attrs, Attr{Name: xml.Name{Space: space, Local: local}, Value: value})
}

// Elements returns the element children in document order.
func (e *Element) Elements() []*Element {
	if e == nil {
		return nil
	}
	var out []*Element
	for _, child := range e.Children {
		if el, ok := child.(*Element); ok {
			out = append(out, el)
		}
	}
	return out
}

// Text returns the concatenated character data of the subtree.
func (e *Element) Text() string {
	if e == nil {
		return ""
	}
	var sb strings.Builder
	collectText(e, &sb)
	return sb.String()
}

func collectText(e *Element, sb *strings.Builder) {
	for _, child := range e.Children {
		switch n := child.(type) {
		case *Text:
			sb.WriteString(n.Data)
		case *Element:
			collectText(n, sb)
		}
	}
}

// Clone returns a deep copy of e.
func (e *Element) Clone() *Element {
	if e == nil {
		return nil
	}
	out := &Element{Name: e.Name, Prefix: e.Prefix}
	if e.Namespaces != nil {
		out.Namespaces = append([]Namespace(nil), e.Namespaces...)
	}
	if e.Attrs != nil {
		out.Attrs = append([]Attr(nil), e.Attrs...)
	}
	if e.Children != nil {
		out.Children = CloneNodes(e.Children)
	}
	return out
}

// CloneNodes deep copies a node list.
func CloneNodes(nodes []Node) []Node {
	if nodes == nil {
		return nil
	}
	out := make([]Node, len(nodes))
	for i, n := range nodes {
		switch v := n.(type) {
		case *Element:
			out[i] = v.Clone()
		case *Text:
			c := *v
			out[i] = &c
		case *Comment:
			c := *v
			out[i] = &c
		case *ProcInst:
			c := *v
			out[i] = &c
		default:
			out[i] = n
		}
	}
	return out
}
