package xsd

import (
	"strconv"
	"strings"

	"github.com/jacoelho/wsdl/internal/tokens"
)

// Form is the form attribute of element and attribute declarations and the
// schema form defaults.
type Form int

const (
	// FormDefault means the attribute is absent.
	FormDefault Form = iota
	FormQualified
	FormUnqualified
)

var formTokens = tokens.New("Form",
	tokens.Pair[Form]{Value: FormQualified, Token: "qualified"},
	tokens.Pair[Form]{Value: FormUnqualified, Token: "unqualified"},
)

// Token returns the wire token. FormDefault has none.
func (f Form) Token() (string, bool) { return formTokens.Token(f) }

func (f Form) String() string { return enumString(formTokens, f) }

// ParseForm parses a form token.
func ParseForm(s string) (Form, bool) { return formTokens.Parse(s) }

// AttributeUse is the use attribute of an attribute declaration.
type AttributeUse int

const (
	// AttributeUseDefault means the attribute is absent, which the grammar
	// reads as optional.
	AttributeUseDefault AttributeUse = iota
	AttributeUseOptional
	AttributeUseProhibited
	AttributeUseRequired
)

var attributeUseTokens = tokens.New("AttributeUse",
	tokens.Pair[AttributeUse]{Value: AttributeUseOptional, Token: "optional"},
	tokens.Pair[AttributeUse]{Value: AttributeUseProhibited, Token: "prohibited"},
	tokens.Pair[AttributeUse]{Value: AttributeUseRequired, Token: "required"},
)

// Token returns the wire token. AttributeUseDefault has none.
func (u AttributeUse) Token() (string, bool) { return attributeUseTokens.Token(u) }

func (u AttributeUse) String() string { return enumString(attributeUseTokens, u) }

// ParseAttributeUse parses a use token.
func ParseAttributeUse(s string) (AttributeUse, bool) { return attributeUseTokens.Parse(s) }

// ProcessContents is the processContents attribute of wildcards.
type ProcessContents int

const (
	// ProcessContentsDefault means the attribute is absent (strict).
	ProcessContentsDefault ProcessContents = iota
	ProcessContentsLax
	ProcessContentsSkip
	ProcessContentsStrict
)

var processContentsTokens = tokens.New("ProcessContents",
	tokens.Pair[ProcessContents]{Value: ProcessContentsLax, Token: "lax"},
	tokens.Pair[ProcessContents]{Value: ProcessContentsSkip, Token: "skip"},
	tokens.Pair[ProcessContents]{Value: ProcessContentsStrict, Token: "strict"},
)

// Token returns the wire token. ProcessContentsDefault has none.
func (p ProcessContents) Token() (string, bool) { return processContentsTokens.Token(p) }

func (p ProcessContents) String() string { return enumString(processContentsTokens, p) }

// ParseProcessContents parses a processContents token.
func ParseProcessContents(s string) (ProcessContents, bool) {
	return processContentsTokens.Parse(s)
}

func enumString[T ~int](tab *tokens.Table[T], v T) string {
	if s, ok := tab.Token(v); ok {
		return s
	}
	if v == 0 {
		return "default"
	}
	return tab.Name() + "(" + strconv.Itoa(int(v)) + ")"
}

// DerivationSet is a block, final, blockDefault or finalDefault value. The
// zero value means the attribute is absent.
type DerivationSet uint8

const (
	DerivationSubstitution DerivationSet = 1 << iota
	DerivationExtension
	DerivationRestriction
	DerivationList
	DerivationUnion
	// DerivationAll is "#all" and cannot be combined.
	DerivationAll
	// DerivationEmpty is an attribute present with an empty value.
	DerivationEmpty
)

var derivationNames = [...]struct {
	flag  DerivationSet
	token string
}{
	{DerivationExtension, "extension"},
	{DerivationRestriction, "restriction"},
	{DerivationList, "list"},
	{DerivationUnion, "union"},
	{DerivationSubstitution, "substitution"},
}

// Has reports whether every flag in f is set.
func (s DerivationSet) Has(f DerivationSet) bool { return s&f == f }

// Token returns the wire value. The zero set and invalid combinations have
// none.
func (s DerivationSet) Token() (string, bool) {
	switch s {
	case 0:
		return "", false
	case DerivationEmpty:
		return "", true
	case DerivationAll:
		return "#all", true
	}
	if s&(DerivationAll|DerivationEmpty) != 0 {
		return "", false
	}
	var parts []string
	rest := s
	for _, d := range derivationNames {
		if s.Has(d.flag) {
			parts = append(parts, d.token)
			rest &^= d.flag
		}
	}
	if rest != 0 {
		return "", false
	}
	return strings.Join(parts, " "), true
}

func (s DerivationSet) String() string {
	if tok, ok := s.Token(); ok {
		return tok
	}
	return "DerivationSet(" + strconv.Itoa(int(s)) + ")"
}

// ParseDerivationSet parses a whitespace separated derivation list. "#all"
// must appear alone.
func ParseDerivationSet(value string) (DerivationSet, bool) {
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return DerivationEmpty, true
	}
	var set DerivationSet
	for _, f := range fields {
		if f == "#all" {
			if len(fields) != 1 {
				return 0, false
			}
			return DerivationAll, true
		}
		found := false
		for _, d := range derivationNames {
			if d.token == f {
				set |= d.flag
				found = true
				break
			}
		}
		if !found {
			return 0, false
		}
	}
	return set, true
}
