package manifest

import (
	"slices"

	"github.com/go-viper/mapstructure/v2"
)

// Icon is an image that can represent the application
type Icon struct {
	Src   string `json:"src" yaml:"src"`     // Image path; relative URLs resolve against the manifest URL
	Sizes string `json:"sizes" yaml:"sizes"` // Space-separated dimensions, e.g. "48x48 96x96"
	Type  string `json:"type" yaml:"type"`   // Media type hint, e.g. "image/png"
}

// RelatedApplication points to a native application offering similar functionality
type RelatedApplication struct {
	Platform string `json:"platform" yaml:"platform"` // Platform the application can be found on, e.g. "play"
	URL      string `json:"url" yaml:"url"`           // URL at which the application can be found
	ID       string `json:"id" yaml:"id"`             // Application ID on that platform
}

// decodeRecords converts an input value into a slice of records. Typed
// slices and single records are taken as-is; generic sequences of maps, as
// produced by JSON, YAML and TOML decoders, go through mapstructure using
// the records' json tags.
func decodeRecords[T any](f Field, v any, want string) ([]T, error) {
	switch x := v.(type) {
	case []T:
		return slices.Clone(x), nil
	case T:
		return []T{x}, nil
	case map[string]any:
		v = []any{x}
	case []any, []map[string]any:
	default:
		return nil, &ValueTypeError{Field: f, Value: v, Want: want}
	}

	out := make([]T, 0)
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:     "json",
		ErrorUnused: true,
		Result:      &out,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(v); err != nil {
		return nil, &ValueTypeError{Field: f, Value: v, Want: want, Cause: err}
	}
	return out, nil
}
