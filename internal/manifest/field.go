package manifest

import "strings"

// Field identifies one of the known manifest members
type Field int

const (
	BackgroundColor Field = iota
	Description
	Dir
	Display
	Icons
	Lang
	Name
	Orientation
	PreferRelatedApplications
	RelatedApplications
	Scope
	ShortName
	StartURL
	ThemeColor

	fieldCount
)

// fieldNames holds the internal camel-style names, indexed by Field
var fieldNames = [fieldCount]string{
	"backgroundColor",
	"description",
	"dir",
	"display",
	"icons",
	"lang",
	"name",
	"orientation",
	"preferRelatedApplications",
	"relatedApplications",
	"scope",
	"shortName",
	"startUrl",
	"themeColor",
}

// wireNames holds the names used in the rendered document
var wireNames = [fieldCount]string{
	"background_color",
	"description",
	"dir",
	"display",
	"icons",
	"lang",
	"name",
	"orientation",
	"prefer_related_applications",
	"related_applications",
	"scope",
	"short_name",
	"start_url",
	"theme_color",
}

var fieldsByName = func() map[string]Field {
	m := make(map[string]Field, fieldCount)
	for f := Field(0); f < fieldCount; f++ {
		m[fieldNames[f]] = f
	}
	return m
}()

// Fields returns every known field in declaration order
func Fields() []Field {
	fields := make([]Field, 0, fieldCount)
	for f := Field(0); f < fieldCount; f++ {
		fields = append(fields, f)
	}
	return fields
}

// String returns the internal camel-style name of the field
func (f Field) String() string {
	if f < 0 || f >= fieldCount {
		return "unknown"
	}
	return fieldNames[f]
}

// WireName returns the underscore-separated name used in the output document
func (f Field) WireName() string {
	if f < 0 || f >= fieldCount {
		return "unknown"
	}
	return wireNames[f]
}

// Valid reports whether f is one of the known fields
func (f Field) Valid() bool {
	return f >= 0 && f < fieldCount
}

// ParseField resolves an input key to a Field. Underscore-separated names
// are translated with CamelCase first, so "short_name" and "shortName"
// resolve to the same field.
func ParseField(name string) (Field, error) {
	if f, ok := fieldsByName[CamelCase(name)]; ok {
		return f, nil
	}
	return 0, &UnknownFieldError{Field: name}
}

// CamelCase capitalizes each underscore-delimited segment, joins them and
// lower-cases the first character of the result:
//
//	related_applications -> relatedApplications
//	start_url            -> startUrl
//	ShortName            -> shortName
func CamelCase(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, segment := range strings.Split(name, "_") {
		b.WriteString(upperFirst(segment))
	}
	return lowerFirst(b.String())
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	if c := s[0]; c >= 'a' && c <= 'z' {
		return string(c-'a'+'A') + s[1:]
	}
	return s
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	if c := s[0]; c >= 'A' && c <= 'Z' {
		return string(c-'A'+'a') + s[1:]
	}
	return s
}
