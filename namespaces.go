package wsdl

// Namespaces of the WSDL 1.1 vocabulary and its binding extensions.
const (
	Namespace             = "http://schemas.xmlsoap.org/wsdl/"
	SoapNamespace         = "http://schemas.xmlsoap.org/wsdl/soap/"
	Soap12Namespace       = "http://schemas.xmlsoap.org/wsdl/soap12/"
	HTTPNamespace         = "http://schemas.xmlsoap.org/wsdl/http/"
	MimeNamespace         = "http://schemas.xmlsoap.org/wsdl/mime/"
	MimeTextNamespace     = "http://microsoft.com/wsdl/mime/textMatching/"
	SoapEncodingNamespace = "http://schemas.xmlsoap.org/soap/encoding/"

	// SoapHTTPTransport is the transport URI of SOAP over HTTP.
	SoapHTTPTransport = "http://schemas.xmlsoap.org/soap/http"
)

// defaultPrefixes are declared when the writer binds one of these
// namespaces itself.
var defaultPrefixes = map[string]string{
	Namespace:             "wsdl",
	SoapNamespace:         "soap",
	Soap12Namespace:       "soap12",
	HTTPNamespace:         "http",
	MimeNamespace:         "mime",
	MimeTextNamespace:     "tm",
	SoapEncodingNamespace: "soapenc",
	xsdNamespace:          "xs",
}
