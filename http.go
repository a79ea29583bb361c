package wsdl

// HTTPBinding is http:binding.
type HTTPBinding struct {
	FormatExtension
	Verb string
}

// HTTPOperationBinding is http:operation.
type HTTPOperationBinding struct {
	FormatExtension
	Location string
}

// HTTPAddressBinding is http:address.
type HTTPAddressBinding struct {
	FormatExtension
	Location string
}

// HTTPURLEncoded is http:urlEncoded.
type HTTPURLEncoded struct {
	FormatExtension
}

// HTTPURLReplacement is http:urlReplacement.
type HTTPURLReplacement struct {
	FormatExtension
}
