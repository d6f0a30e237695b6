package source

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"webmanifest/internal/manifest"
)

// Format identifies the encoding of a manifest input file
type Format int

const (
	FormatUnknown Format = iota
	FormatJSON
	FormatYAML
	FormatTOML
)

// String returns the string representation of the format
func (f Format) String() string {
	names := []string{"unknown", "json", "yaml", "toml"}
	if int(f) < len(names) {
		return names[f]
	}
	return "unknown"
}

// FormatFromPath picks a format from the file extension
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".webmanifest":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatUnknown
	}
}

// UnsupportedFormatError occurs when no decoder matches the input.
type UnsupportedFormatError struct {
	Path string
}

// Error implements the error interface.
func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported manifest input format: %s", e.Path)
}

// DecodeError occurs when the input is not valid for its format.
type DecodeError struct {
	Format Format
	Cause  error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Format, e.Cause)
}

// Unwrap implements the implicit interface used by errors.Is and errors.As.
func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// ReadFile loads manifest values from a JSON, YAML or TOML file
func ReadFile(path string) (manifest.Values, error) {
	format := FormatFromPath(path)
	if format == FormatUnknown {
		return nil, &UnsupportedFormatError{Path: path}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	values, err := Read(f, format)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return values, nil
}

// Read decodes manifest values from r. An empty document yields empty values.
func Read(r io.Reader, format Format) (manifest.Values, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	m := make(map[string]any)
	switch format {
	case FormatJSON:
		if len(strings.TrimSpace(string(b))) > 0 {
			err = json.Unmarshal(b, &m)
		}
	case FormatYAML:
		err = yaml.Unmarshal(b, &m)
	case FormatTOML:
		err = toml.Unmarshal(b, &m)
	default:
		return nil, &UnsupportedFormatError{Path: format.String()}
	}
	if err != nil {
		return nil, &DecodeError{Format: format, Cause: err}
	}
	return manifest.Values(m), nil
}

// Merge combines values from several sources; later sources override
// earlier ones. Keys naming a known field are canonicalized first so
// "short_name" in one source and "shortName" in another collide. Unknown
// keys are kept as given.
func Merge(sources ...manifest.Values) manifest.Values {
	merged := make(manifest.Values)
	for _, src := range sources {
		for k, v := range src {
			if f, err := manifest.ParseField(k); err == nil {
				k = f.String()
			}
			merged[k] = v
		}
	}
	return merged
}
