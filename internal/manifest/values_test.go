package manifest

import (
	"errors"
	"testing"
	"testing/quick"
)

func TestValidate_AcceptsLegalValues(t *testing.T) {
	fs, _ := NewFieldSet(Values{"dir": "rtl", "display": "minimal-ui", "orientation": "portrait-primary"})
	if err := fs.Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
}

func TestValidate_IgnoresUnsetFields(t *testing.T) {
	fs, _ := NewFieldSet(Values{"name": "App"})
	if err := fs.Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
}

func TestValidate_RejectsFirstInFieldOrder(t *testing.T) {
	fs, _ := NewFieldSet(Values{"dir": "up", "display": "tv"})
	err := fs.Validate()
	var ierr *InvalidValueError
	if !errors.As(err, &ierr) {
		t.Fatalf("Validate() error = %v, want *InvalidValueError", err)
	}
	if ierr.Field != Dir || ierr.Value != "up" {
		t.Errorf("InvalidValueError = %+v, want dir/up", ierr)
	}
	if len(ierr.Allowed) != len(DirValues) {
		t.Errorf("Allowed = %v, want %v", ierr.Allowed, DirValues)
	}
}

// Property test: every listed display value passes validation
func TestProperty_DisplayValuesValidate(t *testing.T) {
	f := func(idx uint8) bool {
		v := DisplayValues[int(idx)%len(DisplayValues)]
		fs, err := NewFieldSet(Values{"display": v})
		return err == nil && fs.Validate() == nil
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 50}); err != nil {
		t.Errorf("Property test failed: %v", err)
	}
}
