package xsd

import (
	"fmt"
	"strconv"
	"strings"
)

// Occurs is a minOccurs or maxOccurs bound. The zero value is the grammar
// default of 1, so a bound of 1 is never written.
type Occurs struct {
	// n holds the bound minus one, wrapping for a bound of zero.
	n         uint64
	unbounded bool
}

// Unbounded is maxOccurs="unbounded".
var Unbounded = Occurs{unbounded: true}

// OccursOf returns the bound n.
func OccursOf(n uint64) Occurs {
	return Occurs{n: n - 1}
}

// Value returns the numeric bound. It is meaningless for Unbounded.
func (o Occurs) Value() uint64 {
	return o.n + 1
}

// IsUnbounded reports whether o is Unbounded.
func (o Occurs) IsUnbounded() bool {
	return o.unbounded
}

// IsDefault reports whether o is the default bound of 1.
func (o Occurs) IsDefault() bool {
	return o == Occurs{}
}

func (o Occurs) String() string {
	if o.unbounded {
		return "unbounded"
	}
	return strconv.FormatUint(o.Value(), 10)
}

// ParseOccurs parses the value of the named occurrence attribute. Only
// maxOccurs accepts "unbounded".
func ParseOccurs(attr, value string) (Occurs, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Occurs{}, fmt.Errorf("%s attribute cannot be empty", attr)
	}
	if value == "unbounded" {
		if attr == "minOccurs" {
			return Occurs{}, fmt.Errorf("minOccurs attribute cannot be 'unbounded'")
		}
		return Unbounded, nil
	}
	u, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return Occurs{}, fmt.Errorf("invalid %s attribute value '%s'", attr, value)
	}
	return OccursOf(u), nil
}
