package xsd

import "testing"

func TestOccursZeroValueIsOne(t *testing.T) {
	var o Occurs
	if !o.IsDefault() || o.Value() != 1 || o.String() != "1" {
		t.Fatalf("zero Occurs = %v (default %v), want 1", o, o.IsDefault())
	}
	if OccursOf(1) != o {
		t.Fatalf("OccursOf(1) != zero value")
	}
	if got := OccursOf(0); got.Value() != 0 || got.IsDefault() || got.String() != "0" {
		t.Fatalf("OccursOf(0) = %v", got)
	}
	if !Unbounded.IsUnbounded() || Unbounded.String() != "unbounded" || Unbounded.IsDefault() {
		t.Fatalf("Unbounded = %v", Unbounded)
	}
}

func TestParseOccurs(t *testing.T) {
	tests := []struct {
		attr    string
		value   string
		want    Occurs
		wantErr bool
	}{
		{attr: "maxOccurs", value: "unbounded", want: Unbounded},
		{attr: "minOccurs", value: " 0 ", want: OccursOf(0)},
		{attr: "maxOccurs", value: "1", want: Occurs{}},
		{attr: "maxOccurs", value: "18446744073709551615", want: OccursOf(18446744073709551615)},
		{attr: "minOccurs", value: "unbounded", wantErr: true},
		{attr: "minOccurs", value: "", wantErr: true},
		{attr: "maxOccurs", value: "-1", wantErr: true},
		{attr: "maxOccurs", value: "many", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseOccurs(tt.attr, tt.value)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseOccurs(%q, %q) error = %v, wantErr %v", tt.attr, tt.value, err, tt.wantErr)
		}
		if err == nil && got != tt.want {
			t.Fatalf("ParseOccurs(%q, %q) = %v, want %v", tt.attr, tt.value, got, tt.want)
		}
	}
}
