package nametable

import "testing"

func TestAddIsIdempotent(t *testing.T) {
	tab := New()
	a := tab.Add("urn:a", "x")
	b := tab.Add("urn:a", "x")
	if a != b {
		t.Fatalf("Add() twice = %d, %d, want equal", a, b)
	}
	if a == Unknown {
		t.Fatalf("Add() = Unknown")
	}
	if tab.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", tab.Len())
	}
}

func TestSameLocalDifferentNamespace(t *testing.T) {
	tab := New()
	soap := tab.Add("http://schemas.xmlsoap.org/wsdl/soap/", "body")
	soap12 := tab.Add("http://schemas.xmlsoap.org/wsdl/soap12/", "body")
	if soap == soap12 {
		t.Fatalf("symbols for different namespaces are equal")
	}
	if got := tab.Lookup("http://schemas.xmlsoap.org/wsdl/soap12/", "body"); got != soap12 {
		t.Fatalf("Lookup(soap12 body) = %d, want %d", got, soap12)
	}
}

func TestLookupUnknown(t *testing.T) {
	tab := New()
	tab.Add("", "name")
	if got := tab.Lookup("", "other"); got != Unknown {
		t.Fatalf("Lookup(other) = %d, want Unknown", got)
	}
	if _, _, ok := tab.Name(Unknown); ok {
		t.Fatalf("Name(Unknown) ok = true")
	}
}

func TestLookupThroughRecentRing(t *testing.T) {
	tab := New()
	syms := make([]Symbol, 0, 20)
	for i := 0; i < 20; i++ {
		syms = append(syms, tab.Add("urn:x", string(rune('a'+i))))
	}
	for round := 0; round < 3; round++ {
		for i, want := range syms {
			if got := tab.Lookup("urn:x", string(rune('a'+i))); got != want {
				t.Fatalf("Lookup(%c) = %d, want %d", 'a'+i, got, want)
			}
		}
	}
	ns, local, ok := tab.Name(syms[3])
	if !ok || ns != "urn:x" || local != "d" {
		t.Fatalf("Name() = %q, %q, %v", ns, local, ok)
	}
}
