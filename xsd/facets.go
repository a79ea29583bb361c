package xsd

// FacetValue is the shape shared by every constraining facet.
type FacetValue struct {
	Annotated
	Value string
	Fixed bool
}

// Facet is a constraining facet of a restriction, or *Raw for a child the
// codec does not recognize.
type Facet interface {
	facet()
}

type (
	Length         FacetValue
	MinLength      FacetValue
	MaxLength      FacetValue
	Pattern        FacetValue
	Enumeration    FacetValue
	MinInclusive   FacetValue
	MaxInclusive   FacetValue
	MinExclusive   FacetValue
	MaxExclusive   FacetValue
	TotalDigits    FacetValue
	FractionDigits FacetValue
	WhiteSpace     FacetValue
)

func (*Length) facet()         {}
func (*MinLength) facet()      {}
func (*MaxLength) facet()      {}
func (*Pattern) facet()        {}
func (*Enumeration) facet()    {}
func (*MinInclusive) facet()   {}
func (*MaxInclusive) facet()   {}
func (*MinExclusive) facet()   {}
func (*MaxExclusive) facet()   {}
func (*TotalDigits) facet()    {}
func (*FractionDigits) facet() {}
func (*WhiteSpace) facet()     {}
func (*Raw) facet()            {}
