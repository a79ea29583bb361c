package xmlnode

import (
	"encoding/xml"
	"testing"
)

func sample() *Element {
	return &Element{
		Name:       xml.Name{Space: "urn:v", Local: "policy"},
		Prefix:     "v",
		Namespaces: []Namespace{{Prefix: "v", URI: "urn:v"}},
		Attrs:      []Attr{{Name: xml.Name{Local: "id"}, Value: "p1"}},
		Children: []Node{
			&Text{Data: "lead "},
			&Element{Name: xml.Name{Space: "urn:v", Local: "rule"}, Children: []Node{&Text{Data: "inner"}}},
			&Comment{Data: " note "},
			&Text{Data: " tail"},
		},
	}
}

func TestElementText(t *testing.T) {
	if got := sample().Text(); got != "lead inner tail" {
		t.Fatalf("Text() = %q, want %q", got, "lead inner tail")
	}
}

func TestElementAttr(t *testing.T) {
	el := sample()
	if v, ok := el.Attr("", "id"); !ok || v != "p1" {
		t.Fatalf("Attr(id) = %q, %v, want p1, true", v, ok)
	}
	if _, ok := el.Attr("urn:v", "id"); ok {
		t.Fatalf("Attr({urn:v}id) found, want missing")
	}
	el.SetAttr("", "id", "p2")
	el.SetAttr("", "extra", "x")
	if len(el.Attrs) != 2 || el.Attrs[0].Value != "p2" || el.Attrs[1].Name.Local != "extra" {
		t.Fatalf("SetAttr() attrs = %+v", el.Attrs)
	}
}

func TestElementCloneIsDeep(t *testing.T) {
	orig := sample()
	c := orig.Clone()
	c.Attrs[0].Value = "changed"
	c.Children[1].(*Element).Name.Local = "changed"
	c.Children[0].(*Text).Data = "changed"

	if orig.Attrs[0].Value != "p1" {
		t.Fatalf("clone shares attrs")
	}
	if orig.Children[1].(*Element).Name.Local != "rule" {
		t.Fatalf("clone shares child elements")
	}
	if orig.Children[0].(*Text).Data != "lead " {
		t.Fatalf("clone shares text nodes")
	}
}

func TestElementElementsAndValid(t *testing.T) {
	el := sample()
	kids := el.Elements()
	if len(kids) != 1 || kids[0].Name.Local != "rule" {
		t.Fatalf("Elements() = %+v, want [rule]", kids)
	}
	var nilEl *Element
	if nilEl.Valid() {
		t.Fatalf("nil element Valid() = true")
	}
	if (&Element{}).Valid() {
		t.Fatalf("unnamed element Valid() = true")
	}
	if !NewElement("", "x").Valid() {
		t.Fatalf("NewElement Valid() = false")
	}
}
