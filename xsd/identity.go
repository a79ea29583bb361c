package xsd

import "encoding/xml"

// IdentityConstraint is a *Key, *Keyref or *Unique.
type IdentityConstraint interface {
	identityConstraint()
}

// XPath is an xs:selector or xs:field.
type XPath struct {
	Annotated
	XPath string
}

// Key is an xs:key constraint.
type Key struct {
	Annotated
	Name     string
	Selector *XPath
	Fields   []*XPath
}

// Unique is an xs:unique constraint.
type Unique struct {
	Annotated
	Name     string
	Selector *XPath
	Fields   []*XPath
}

// Keyref is an xs:keyref constraint. Refer names a key or unique constraint
// and is not resolved.
type Keyref struct {
	Annotated
	Name     string
	Refer    xml.Name
	Selector *XPath
	Fields   []*XPath
}

func (*Key) identityConstraint()    {}
func (*Unique) identityConstraint() {}
func (*Keyref) identityConstraint() {}
