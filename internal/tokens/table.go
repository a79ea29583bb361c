// Package tokens maps closed enumerations to their wire tokens and back.
package tokens

import "fmt"

// Pair binds one enumeration value to its wire token.
type Pair[T comparable] struct {
	Value T
	Token string
}

// Table is a bijection between enumeration values and wire tokens. Values
// without a pair (the "absent" variants) have no token.
type Table[T comparable] struct {
	name      string
	toToken   map[T]string
	fromToken map[string]T
	values    []T
}

// New builds a table. It panics when a value or token appears twice, since a
// table that is not a bijection is a programming error.
func New[T comparable](name string, pairs ...Pair[T]) *Table[T] {
	t := &Table[T]{
		name:      name,
		toToken:   make(map[T]string, len(pairs)),
		fromToken: make(map[string]T, len(pairs)),
		values:    make([]T, 0, len(pairs)),
	}
	for _, p := range pairs {
		if _, dup := t.toToken[p.Value]; dup {
			panic(fmt.Sprintf("tokens: %s: duplicate value %v", name, p.Value))
		}
		if _, dup := t.fromToken[p.Token]; dup {
			panic(fmt.Sprintf("tokens: %s: duplicate token %q", name, p.Token))
		}
		t.toToken[p.Value] = p.Token
		t.fromToken[p.Token] = p.Value
		t.values = append(t.values, p.Value)
	}
	return t
}

// Name returns the enumeration name used in error messages.
func (t *Table[T]) Name() string {
	return t.name
}

// Token returns the wire token for v.
func (t *Table[T]) Token(v T) (string, bool) {
	s, ok := t.toToken[v]
	return s, ok
}

// Parse returns the value for a wire token. Tokens are matched exactly.
func (t *Table[T]) Parse(s string) (T, bool) {
	v, ok := t.fromToken[s]
	return v, ok
}

// Values returns the values that have tokens, in declaration order.
func (t *Table[T]) Values() []T {
	return append([]T(nil), t.values...)
}
