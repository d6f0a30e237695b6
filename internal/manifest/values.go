package manifest

import "slices"

// Legal values for the enumerated fields. They are not enforced on
// assignment; use Validate or WithStrictValues to check them.
var (
	DirValues = []string{
		"ltr",
		"rtl",
		"auto",
	}

	DisplayValues = []string{
		"standalone",
		"fullscreen",
		"minimal-ui",
		"browser",
	}

	OrientationValues = []string{
		"any",
		"natural",
		"landscape",
		"landscape-primary",
		"landscape-secondary",
		"portrait",
		"portrait-primary",
		"portrait-secondary",
	}
)

var enumerated = []struct {
	field   Field
	allowed []string
}{
	{Dir, DirValues},
	{Display, DisplayValues},
	{Orientation, OrientationValues},
}

// Validate checks the explicitly set enumerated fields (dir, display,
// orientation) against their legal values and returns an
// *InvalidValueError for the first violation.
func (fs *FieldSet) Validate() error {
	for _, e := range enumerated {
		if !fs.IsSet(e.field) {
			continue
		}
		v, _ := fs.Get(e.field).(string)
		if !slices.Contains(e.allowed, v) {
			return &InvalidValueError{
				Field:   e.field,
				Value:   v,
				Allowed: slices.Clone(e.allowed),
			}
		}
	}
	return nil
}
