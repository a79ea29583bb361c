package xsd

import "encoding/xml"

// Particle is a content model term. Which kinds are accepted depends on the
// slot:
//
//	ComplexType.Particle, derivation Particle: *Sequence, *Choice, *All, *GroupRef
//	Group.Particle:                            *Sequence, *Choice, *All
//	Sequence.Items, Choice.Items:              *Element, *Any, *Sequence, *Choice, *GroupRef
//	All.Items:                                 *Element
type Particle interface {
	particle()
}

// Sequence is an xs:sequence compositor.
type Sequence struct {
	Annotated
	MinOccurs Occurs
	MaxOccurs Occurs
	Items     []Particle
}

// Choice is an xs:choice compositor.
type Choice struct {
	Annotated
	MinOccurs Occurs
	MaxOccurs Occurs
	Items     []Particle
}

// All is an xs:all compositor.
type All struct {
	Annotated
	MinOccurs Occurs
	MaxOccurs Occurs
	Items     []Particle
}

// GroupRef is an xs:group reference.
type GroupRef struct {
	Annotated
	Ref       xml.Name
	MinOccurs Occurs
	MaxOccurs Occurs
}

// Any is an xs:any wildcard.
type Any struct {
	Annotated
	Namespace       string
	ProcessContents ProcessContents
	MinOccurs       Occurs
	MaxOccurs       Occurs
}

func (*Element) particle()  {}
func (*Any) particle()      {}
func (*Sequence) particle() {}
func (*Choice) particle()   {}
func (*All) particle()      {}
func (*GroupRef) particle() {}
