package htmlhead

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"slices"

	"webmanifest/internal/manifest"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// HeadTemplate is the template rendered by Render
const HeadTemplate = "head.html.tmpl"

// TemplateEngine handles template loading and rendering
type TemplateEngine struct {
	templates map[string]*template.Template
}

// NewTemplateEngine creates a new template engine with embedded templates
func NewTemplateEngine() (*TemplateEngine, error) {
	engine := &TemplateEngine{
		templates: make(map[string]*template.Template),
	}

	entries, err := templateFS.ReadDir("templates")
	if err != nil {
		return nil, fmt.Errorf("failed to read templates directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		content, err := templateFS.ReadFile("templates/" + name)
		if err != nil {
			return nil, fmt.Errorf("failed to read template %s: %w", name, err)
		}

		tmpl, err := template.New(name).Parse(string(content))
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}

		engine.templates[name] = tmpl
	}

	return engine, nil
}

// Execute renders a template with the given data
func (e *TemplateEngine) Execute(templateName string, data any) ([]byte, error) {
	tmpl, ok := e.templates[templateName]
	if !ok {
		return nil, fmt.Errorf("template not found: %s", templateName)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute template %s: %w", templateName, err)
	}

	return buf.Bytes(), nil
}

// Render renders the head snippet that links a page to its manifest
func (e *TemplateEngine) Render(doc manifest.Document, manifestHref string) ([]byte, error) {
	return e.Execute(HeadTemplate, NewTemplateData(doc, manifestHref))
}

// RenderToFile renders the head snippet and writes it to filePath
func (e *TemplateEngine) RenderToFile(doc manifest.Document, manifestHref, filePath string) error {
	content, err := e.Render(doc, manifestHref)
	if err != nil {
		return err
	}

	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	return os.WriteFile(filePath, content, 0644)
}

// ListTemplates returns all available template names, sorted
func (e *TemplateEngine) ListTemplates() []string {
	names := make([]string, 0, len(e.templates))
	for name := range e.templates {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// TemplateData holds all data needed for head rendering
type TemplateData struct {
	ManifestHref    string
	ApplicationName string
	Description     string
	ThemeColor      string
	Standalone      bool
	Icons           []manifest.Icon
}

// NewTemplateData creates TemplateData from a rendered manifest
func NewTemplateData(doc manifest.Document, manifestHref string) *TemplateData {
	data := &TemplateData{
		ManifestHref:    manifestHref,
		ApplicationName: doc.ShortName,
		Description:     doc.Description,
		ThemeColor:      doc.ThemeColor,
		Standalone:      doc.Display == "standalone" || doc.Display == "fullscreen",
		Icons:           doc.Icons,
	}

	// Set defaults
	if data.ManifestHref == "" {
		data.ManifestHref = "/manifest.webmanifest"
	}
	if data.ApplicationName == "" {
		data.ApplicationName = doc.Name
	}

	return data
}
