package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Document is the rendered manifest. Every known field is always present:
// unset strings render as "" and unset lists as [].
type Document struct {
	BackgroundColor           string               `json:"background_color" yaml:"background_color"`
	Description               string               `json:"description" yaml:"description"`
	Dir                       string               `json:"dir" yaml:"dir"`
	Display                   string               `json:"display" yaml:"display"`
	Icons                     []Icon               `json:"icons" yaml:"icons"`
	Lang                      string               `json:"lang" yaml:"lang"`
	Name                      string               `json:"name" yaml:"name"`
	Orientation               string               `json:"orientation" yaml:"orientation"`
	PreferRelatedApplications string               `json:"prefer_related_applications" yaml:"prefer_related_applications"`
	RelatedApplications       []RelatedApplication `json:"related_applications" yaml:"related_applications"`
	Scope                     string               `json:"scope" yaml:"scope"`
	ShortName                 string               `json:"short_name" yaml:"short_name"`
	StartURL                  string               `json:"start_url" yaml:"start_url"`
	ThemeColor                string               `json:"theme_color" yaml:"theme_color"`
}

// NewDocument reads every field of fs through its getter.
func NewDocument(fs *FieldSet) Document {
	if fs == nil {
		fs = &FieldSet{}
	}
	return Document{
		BackgroundColor:           fs.BackgroundColor(),
		Description:               fs.Description(),
		Dir:                       fs.Dir(),
		Display:                   fs.Display(),
		Icons:                     fs.Icons(),
		Lang:                      fs.Lang(),
		Name:                      fs.Name(),
		Orientation:               fs.Orientation(),
		PreferRelatedApplications: fs.PreferRelatedApplications(),
		RelatedApplications:       fs.RelatedApplications(),
		Scope:                     fs.Scope(),
		ShortName:                 fs.ShortName(),
		StartURL:                  fs.StartURL(),
		ThemeColor:                fs.ThemeColor(),
	}
}

// JSON serializes the document on a single line. HTML characters in values
// are left unescaped.
func (d Document) JSON() ([]byte, error) {
	return d.JSONIndent("", "")
}

// JSONIndent serializes the document like json.MarshalIndent.
func (d Document) JSONIndent(prefix, indent string) ([]byte, error) {
	d = d.withLists()

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent(prefix, indent)
	if err := enc.Encode(d); err != nil {
		return nil, fmt.Errorf("failed to encode manifest: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// YAML serializes the document as YAML.
func (d Document) YAML() ([]byte, error) {
	out, err := yaml.Marshal(d.withLists())
	if err != nil {
		return nil, fmt.Errorf("failed to encode manifest: %w", err)
	}
	return out, nil
}

// withLists replaces nil lists so they encode as [] rather than null
func (d Document) withLists() Document {
	if d.Icons == nil {
		d.Icons = []Icon{}
	}
	if d.RelatedApplications == nil {
		d.RelatedApplications = []RelatedApplication{}
	}
	return d
}
