package manifest

import (
	"log/slog"
	"sync"
)

// Generator owns a FieldSet across render requests. Overrides passed to
// Render accumulate: each successful merge becomes the new held state.
type Generator struct {
	fields *FieldSet    // Current field set, replaced on every successful merge
	strict bool         // Validate enumerated fields after each merge
	logger *slog.Logger // Logger for render diagnostics
	mu     sync.Mutex   // Protects fields
}

// Option configures a Generator
type Option func(*Generator)

// WithStrictValues makes the generator reject dir, display and orientation
// values outside DirValues, DisplayValues and OrientationValues.
func WithStrictValues() Option {
	return func(g *Generator) {
		g.strict = true
	}
}

// WithLogger sets the logger used for diagnostics. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// NewGenerator creates a generator from raw key-value input
func NewGenerator(v Values, opts ...Option) (*Generator, error) {
	fs, err := NewFieldSet(v)
	if err != nil {
		return nil, err
	}
	g := NewGeneratorFromFields(fs, opts...)
	if g.strict {
		if err := fs.Validate(); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// NewGeneratorFromFields creates a generator that adopts fs directly.
// A nil fs is treated as an empty field set.
func NewGeneratorFromFields(fs *FieldSet, opts ...Option) *Generator {
	if fs == nil {
		fs = &FieldSet{}
	}
	g := &Generator{
		fields: fs,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Render merges overrides into the held field set and returns the full
// document. On error the held field set is left unchanged.
func (g *Generator) Render(overrides Values) (Document, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	merged, err := g.fields.Merge(overrides)
	if err != nil {
		g.logger.Debug("Rejected manifest overrides", "error", err)
		return Document{}, err
	}
	if g.strict {
		if err := merged.Validate(); err != nil {
			g.logger.Debug("Rejected manifest overrides", "error", err)
			return Document{}, err
		}
	}
	g.fields = merged

	g.logger.Debug("Rendered manifest", "overrides", len(overrides), "setFields", merged.Len())
	return NewDocument(merged), nil
}

// JSON renders the document with overrides applied and encodes it as JSON.
func (g *Generator) JSON(overrides Values) ([]byte, error) {
	doc, err := g.Render(overrides)
	if err != nil {
		return nil, err
	}
	return doc.JSON()
}

// YAML renders the document with overrides applied and encodes it as YAML.
func (g *Generator) YAML(overrides Values) ([]byte, error) {
	doc, err := g.Render(overrides)
	if err != nil {
		return nil, err
	}
	return doc.YAML()
}

// Document reads the held field set without merging anything.
func (g *Generator) Document() Document {
	g.mu.Lock()
	defer g.mu.Unlock()
	return NewDocument(g.fields)
}

// Fields returns a copy of the held field set.
func (g *Generator) Fields() *FieldSet {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.fields.Clone()
}
