package manifest

import (
	"fmt"
	"iter"
	"slices"
	"strconv"
	"strings"
)

// Values is the key-value input accepted by NewFieldSet and Merge. Keys are
// internal camel-style names ("shortName") or wire names ("short_name").
type Values map[string]any

// FieldSet holds a sparse set of manifest fields. It tracks which fields
// were explicitly assigned separately from the values, so a field can
// expose a default through its getter without being reported as set.
type FieldSet struct {
	backgroundColor           string
	description               string
	dir                       string
	display                   string
	icons                     []Icon
	lang                      string
	name                      string
	orientation               string
	preferRelatedApplications string
	relatedApplications       []RelatedApplication
	scope                     string
	shortName                 string
	startURL                  string
	themeColor                string

	set   [fieldCount]bool
	order []Field // fields in the order they were first set
}

// NewFieldSet builds a FieldSet from v. Entries are applied in ascending
// key order; the first key that does not name a known field aborts
// construction with an *UnknownFieldError.
func NewFieldSet(v Values) (*FieldSet, error) {
	fs := &FieldSet{}
	if err := fs.apply(v); err != nil {
		return nil, err
	}
	return fs, nil
}

// Merge returns a copy of fs with v layered on top. fs itself is never
// modified; if any entry is rejected the copy is discarded and nil is
// returned with the error.
func (fs *FieldSet) Merge(v Values) (*FieldSet, error) {
	merged := fs.Clone()
	if err := merged.apply(v); err != nil {
		return nil, err
	}
	return merged, nil
}

// Clone returns a deep copy of fs.
func (fs *FieldSet) Clone() *FieldSet {
	if fs == nil {
		return &FieldSet{}
	}
	c := *fs
	c.icons = slices.Clone(fs.icons)
	c.relatedApplications = slices.Clone(fs.relatedApplications)
	c.order = slices.Clone(fs.order)
	return &c
}

func (fs *FieldSet) apply(v Values) error {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, k := range keys {
		f, err := ParseField(k)
		if err != nil {
			return err
		}
		if err := assigners[f](fs, v[k]); err != nil {
			return err
		}
	}
	return nil
}

// assigners maps each field to the typed setter that stores it
var assigners = [fieldCount]func(*FieldSet, any) error{
	BackgroundColor:           stringAssigner(BackgroundColor, (*FieldSet).SetBackgroundColor),
	Description:               stringAssigner(Description, (*FieldSet).SetDescription),
	Dir:                       stringAssigner(Dir, (*FieldSet).SetDir),
	Display:                   stringAssigner(Display, (*FieldSet).SetDisplay),
	Icons:                     assignIcons,
	Lang:                      stringAssigner(Lang, (*FieldSet).SetLang),
	Name:                      stringAssigner(Name, (*FieldSet).SetName),
	Orientation:               stringAssigner(Orientation, (*FieldSet).SetOrientation),
	PreferRelatedApplications: assignPreferRelatedApplications,
	RelatedApplications:       assignRelatedApplications,
	Scope:                     stringAssigner(Scope, (*FieldSet).SetScope),
	ShortName:                 stringAssigner(ShortName, (*FieldSet).SetShortName),
	StartURL:                  stringAssigner(StartURL, (*FieldSet).SetStartURL),
	ThemeColor:                stringAssigner(ThemeColor, (*FieldSet).SetThemeColor),
}

func stringAssigner(f Field, set func(*FieldSet, string)) func(*FieldSet, any) error {
	return func(fs *FieldSet, v any) error {
		s, ok := asString(v)
		if !ok {
			return &ValueTypeError{Field: f, Value: v, Want: "string"}
		}
		set(fs, s)
		return nil
	}
}

func assignPreferRelatedApplications(fs *FieldSet, v any) error {
	if b, ok := v.(bool); ok {
		fs.SetPreferRelatedApplications(strconv.FormatBool(b))
		return nil
	}
	s, ok := asString(v)
	if !ok {
		return &ValueTypeError{Field: PreferRelatedApplications, Value: v, Want: "string or bool"}
	}
	fs.SetPreferRelatedApplications(s)
	return nil
}

func assignIcons(fs *FieldSet, v any) error {
	icons, err := decodeRecords[Icon](Icons, v, "icon list")
	if err != nil {
		return err
	}
	fs.SetIcons(icons)
	return nil
}

func assignRelatedApplications(fs *FieldSet, v any) error {
	apps, err := decodeRecords[RelatedApplication](RelatedApplications, v, "related application list")
	if err != nil {
		return err
	}
	fs.SetRelatedApplications(apps)
	return nil
}

func asString(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case fmt.Stringer:
		return x.String(), true
	default:
		return "", false
	}
}

func (fs *FieldSet) markSet(f Field) {
	if fs.set[f] {
		return
	}
	fs.set[f] = true
	fs.order = append(fs.order, f)
}

// normalizeColor prepends "#" unless the value already contains one
func normalizeColor(c string) string {
	if strings.Contains(c, "#") {
		return c
	}
	return "#" + c
}

// IsSet reports whether f has been explicitly assigned.
func (fs *FieldSet) IsSet(f Field) bool {
	return f.Valid() && fs.set[f]
}

// Len returns the number of explicitly assigned fields.
func (fs *FieldSet) Len() int {
	return len(fs.order)
}

// All yields the explicitly assigned fields with their current values, in
// the order they were first set. Fields that only expose a default are
// skipped. The sequence may be iterated more than once.
func (fs *FieldSet) All() iter.Seq2[Field, any] {
	return func(yield func(Field, any) bool) {
		for _, f := range fs.order {
			if !yield(f, fs.Get(f)) {
				return
			}
		}
	}
}

// Get returns the value of f through its getter, defaults included.
func (fs *FieldSet) Get(f Field) any {
	switch f {
	case BackgroundColor:
		return fs.BackgroundColor()
	case Description:
		return fs.Description()
	case Dir:
		return fs.Dir()
	case Display:
		return fs.Display()
	case Icons:
		return fs.Icons()
	case Lang:
		return fs.Lang()
	case Name:
		return fs.Name()
	case Orientation:
		return fs.Orientation()
	case PreferRelatedApplications:
		return fs.PreferRelatedApplications()
	case RelatedApplications:
		return fs.RelatedApplications()
	case Scope:
		return fs.Scope()
	case ShortName:
		return fs.ShortName()
	case StartURL:
		return fs.StartURL()
	case ThemeColor:
		return fs.ThemeColor()
	default:
		return nil
	}
}

// SetBackgroundColor sets the color drawn behind the application before its
// stylesheet loads. A missing "#" is prepended.
func (fs *FieldSet) SetBackgroundColor(c string) {
	fs.backgroundColor = normalizeColor(c)
	fs.markSet(BackgroundColor)
}

func (fs *FieldSet) BackgroundColor() string { return fs.backgroundColor }

// SetDescription sets the general description of what the application does.
func (fs *FieldSet) SetDescription(d string) {
	fs.description = d
	fs.markSet(Description)
}

func (fs *FieldSet) Description() string { return fs.description }

// SetDir sets the primary text direction for name, short_name and
// description. See DirValues.
func (fs *FieldSet) SetDir(d string) {
	fs.dir = d
	fs.markSet(Dir)
}

func (fs *FieldSet) Dir() string { return fs.dir }

// SetDisplay sets the preferred display mode. See DisplayValues.
func (fs *FieldSet) SetDisplay(d string) {
	fs.display = d
	fs.markSet(Display)
}

func (fs *FieldSet) Display() string { return fs.display }

// SetIcons sets the images that can represent the application.
func (fs *FieldSet) SetIcons(icons []Icon) {
	fs.icons = slices.Clone(icons)
	fs.markSet(Icons)
}

// Icons returns a copy of the icon list, empty when unset.
func (fs *FieldSet) Icons() []Icon {
	if fs.icons == nil {
		return []Icon{}
	}
	return slices.Clone(fs.icons)
}

// SetLang sets the language tag of name and short_name.
func (fs *FieldSet) SetLang(l string) {
	fs.lang = l
	fs.markSet(Lang)
}

func (fs *FieldSet) Lang() string { return fs.lang }

func (fs *FieldSet) SetName(n string) {
	fs.name = n
	fs.markSet(Name)
}

func (fs *FieldSet) Name() string { return fs.name }

// SetOrientation sets the default orientation of top level browsing
// contexts. See OrientationValues.
func (fs *FieldSet) SetOrientation(o string) {
	fs.orientation = o
	fs.markSet(Orientation)
}

func (fs *FieldSet) Orientation() string { return fs.orientation }

// SetPreferRelatedApplications hints whether the related native
// applications should be recommended over the website ("true"/"false").
func (fs *FieldSet) SetPreferRelatedApplications(p string) {
	fs.preferRelatedApplications = p
	fs.markSet(PreferRelatedApplications)
}

// PreferRelatedApplications returns "false" when unset.
func (fs *FieldSet) PreferRelatedApplications() string {
	if !fs.set[PreferRelatedApplications] {
		return "false"
	}
	return fs.preferRelatedApplications
}

// SetRelatedApplications sets the native applications that are alternatives
// to the website.
func (fs *FieldSet) SetRelatedApplications(apps []RelatedApplication) {
	fs.relatedApplications = slices.Clone(apps)
	fs.markSet(RelatedApplications)
}

// RelatedApplications returns a copy of the list, empty when unset.
func (fs *FieldSet) RelatedApplications() []RelatedApplication {
	if fs.relatedApplications == nil {
		return []RelatedApplication{}
	}
	return slices.Clone(fs.relatedApplications)
}

// SetScope restricts the navigation scope of the application.
func (fs *FieldSet) SetScope(s string) {
	fs.scope = s
	fs.markSet(Scope)
}

// Scope returns "" when unset.
func (fs *FieldSet) Scope() string { return fs.scope }

// SetShortName sets the name used where there is insufficient space for
// the full name, like device homescreens.
func (fs *FieldSet) SetShortName(n string) {
	fs.shortName = n
	fs.markSet(ShortName)
}

func (fs *FieldSet) ShortName() string { return fs.shortName }

// SetStartURL sets the URL loaded when the user launches the application,
// relative to the manifest URL.
func (fs *FieldSet) SetStartURL(u string) {
	fs.startURL = u
	fs.markSet(StartURL)
}

func (fs *FieldSet) StartURL() string { return fs.startURL }

// SetThemeColor sets the default theme color. A missing "#" is prepended.
func (fs *FieldSet) SetThemeColor(c string) {
	fs.themeColor = normalizeColor(c)
	fs.markSet(ThemeColor)
}

func (fs *FieldSet) ThemeColor() string { return fs.themeColor }
