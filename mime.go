package wsdl

import "github.com/jacoelho/wsdl/xmlnode"

// MimeContentBinding is mime:content.
type MimeContentBinding struct {
	FormatExtension
	Part string
	Type string
}

// MimeMultipartRelatedBinding is mime:multipartRelated.
type MimeMultipartRelatedBinding struct {
	FormatExtension
	Parts []*MimePart
}

// MimePart is a mime:part. Its Extensions describe one part of the message.
type MimePart struct {
	ExtensibleAttributes []xmlnode.Attr
	Extensions           []Extension
}

// MimeXMLBinding is mime:mimeXml.
type MimeXMLBinding struct {
	FormatExtension
	Part string
}

// MimeTextBinding is tm:text.
type MimeTextBinding struct {
	FormatExtension
	Matches []*MimeTextMatch
}

// RepeatsUnbounded is the repeats value written as "*".
const RepeatsUnbounded = -1

// MimeTextMatch is tm:match. Group defaults to 1, Capture to 0 and Repeats
// to 1; NewMimeTextMatch returns a match holding those defaults.
type MimeTextMatch struct {
	Name       string
	Type       string
	Group      int
	Capture    int
	Repeats    int
	Pattern    string
	IgnoreCase bool
	Matches    []*MimeTextMatch

	ExtensibleAttributes []xmlnode.Attr
	UnhandledElements    []*xmlnode.Element
}

// NewMimeTextMatch returns a match with the default group, capture and
// repeats.
func NewMimeTextMatch() *MimeTextMatch {
	return &MimeTextMatch{Group: 1, Capture: 0, Repeats: 1}
}
