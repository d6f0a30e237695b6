package htmlhead

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"webmanifest/internal/manifest"
)

func newEngine(t *testing.T) *TemplateEngine {
	t.Helper()
	engine, err := NewTemplateEngine()
	if err != nil {
		t.Fatalf("NewTemplateEngine() error = %v", err)
	}
	return engine
}

func TestNewTemplateEngine_LoadsEmbeddedTemplates(t *testing.T) {
	engine := newEngine(t)
	if diff := cmp.Diff([]string{HeadTemplate}, engine.ListTemplates()); diff != "" {
		t.Errorf("ListTemplates() mismatch (-want +got):\n%s", diff)
	}
}

func TestExecute_UnknownTemplate(t *testing.T) {
	engine := newEngine(t)
	if _, err := engine.Execute("missing.tmpl", nil); err == nil {
		t.Error("Execute() error = nil for missing template")
	}
}

func TestRender_FullDocument(t *testing.T) {
	g, err := manifest.NewGenerator(manifest.Values{
		"name":        "Example Application",
		"short_name":  "Example",
		"description": "Tasks & notes",
		"theme_color": "336699",
		"display":     "standalone",
		"icons":       []manifest.Icon{{Src: "/icon-192.png", Sizes: "192x192", Type: "image/png"}},
	})
	if err != nil {
		t.Fatalf("NewGenerator() error = %v", err)
	}

	out, err := newEngine(t).Render(g.Document(), "/app.webmanifest")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	got := string(out)
	for _, want := range []string{
		`<link rel="manifest" href="/app.webmanifest">`,
		`<meta name="application-name" content="Example">`,
		`<meta name="description" content="Tasks &amp; notes">`,
		`<meta name="theme-color" content="#336699">`,
		`<meta name="mobile-web-app-capable" content="yes">`,
		`<link rel="icon" href="/icon-192.png" sizes="192x192" type="image/png">`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Render() output missing %q:\n%s", want, got)
		}
	}
}

func TestRender_EmptyDocument(t *testing.T) {
	out, err := newEngine(t).Render(manifest.NewDocument(nil), "")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	got := strings.TrimSpace(string(out))
	if got != `<link rel="manifest" href="/manifest.webmanifest">` {
		t.Errorf("Render() = %q, want only the manifest link", got)
	}
}

func TestRender_EscapesValues(t *testing.T) {
	doc := manifest.NewDocument(nil)
	doc.Name = `"><script>alert(1)</script>`
	out, err := newEngine(t).Render(doc, "")
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if strings.Contains(string(out), "<script>") {
		t.Errorf("Render() did not escape name:\n%s", out)
	}
}

func TestNewTemplateData_Defaults(t *testing.T) {
	doc := manifest.Document{Name: "Full Name", Display: "browser"}
	data := NewTemplateData(doc, "")
	if data.ManifestHref != "/manifest.webmanifest" {
		t.Errorf("ManifestHref = %q, want default", data.ManifestHref)
	}
	if data.ApplicationName != "Full Name" {
		t.Errorf("ApplicationName = %q, want name fallback", data.ApplicationName)
	}
	if data.Standalone {
		t.Error("Standalone = true for browser display")
	}
}

func TestRenderToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partials", "head.html")
	doc := manifest.Document{ShortName: "App"}
	if err := newEngine(t).RenderToFile(doc, "/m.json", path); err != nil {
		t.Fatalf("RenderToFile() error = %v", err)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(content), `content="App"`) {
		t.Errorf("file content = %s, want application name", content)
	}
}
