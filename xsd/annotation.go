package xsd

import "github.com/jacoelho/wsdl/xmlnode"

// Annotation is an xs:annotation element.
type Annotation struct {
	ID                  string
	Items               []AnnotationItem
	UnhandledAttributes []xmlnode.Attr
	UnhandledElements   []*xmlnode.Element
}

// AnnotationItem is an xs:documentation or xs:appinfo child.
type AnnotationItem interface {
	annotationItem()
}

// Documentation is an xs:documentation element. Markup is its mixed content.
type Documentation struct {
	Source              string
	Language            string
	Markup              []xmlnode.Node
	UnhandledAttributes []xmlnode.Attr
}

// AppInfo is an xs:appinfo element.
type AppInfo struct {
	Source              string
	Markup              []xmlnode.Node
	UnhandledAttributes []xmlnode.Attr
}

func (*Documentation) annotationItem() {}
func (*AppInfo) annotationItem()       {}
