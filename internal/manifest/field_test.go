package manifest

import (
	"errors"
	"strings"
	"testing"
	"testing/quick"
)

func TestCamelCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"related_applications", "relatedApplications"},
		{"prefer_related_applications", "preferRelatedApplications"},
		{"start_url", "startUrl"},
		{"short_name", "shortName"},
		{"shortName", "shortName"},
		{"ShortName", "shortName"},
		{"name", "name"},
		{"background__color", "backgroundColor"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := CamelCase(tt.in); got != tt.want {
			t.Errorf("CamelCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseField_WireAndInternalNames(t *testing.T) {
	for _, f := range Fields() {
		got, err := ParseField(f.String())
		if err != nil || got != f {
			t.Errorf("ParseField(%q) = %v, %v; want %v", f.String(), got, err, f)
		}
		got, err = ParseField(f.WireName())
		if err != nil || got != f {
			t.Errorf("ParseField(%q) = %v, %v; want %v", f.WireName(), got, err, f)
		}
	}
}

func TestParseField_Unknown(t *testing.T) {
	_, err := ParseField("favicon")
	var uerr *UnknownFieldError
	if !errors.As(err, &uerr) {
		t.Fatalf("ParseField() error = %v, want *UnknownFieldError", err)
	}
	if uerr.Field != "favicon" {
		t.Errorf("UnknownFieldError.Field = %q, want %q", uerr.Field, "favicon")
	}
	if !errors.Is(err, ErrUnknownField) {
		t.Error("errors.Is(err, ErrUnknownField) = false, want true")
	}
	if !strings.Contains(err.Error(), `"favicon"`) {
		t.Errorf("Error() = %q, want it to name the field", err.Error())
	}
}

func TestFields_Count(t *testing.T) {
	if got := len(Fields()); got != 14 {
		t.Errorf("len(Fields()) = %d, want 14", got)
	}
}

func TestField_StringOutOfRange(t *testing.T) {
	if got := Field(99).String(); got != "unknown" {
		t.Errorf("Field(99).String() = %q, want %q", got, "unknown")
	}
	if Field(-1).Valid() {
		t.Error("Field(-1).Valid() = true, want false")
	}
}

// Property test: wire names and their camel-case translation resolve to the same field
func TestProperty_WireNameTranslatesToInternalName(t *testing.T) {
	f := func(idx uint8) bool {
		field := Field(int(idx) % int(fieldCount))
		return CamelCase(field.WireName()) == field.String()
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 100}); err != nil {
		t.Errorf("Property test failed: %v", err)
	}
}
