package iconprobe

import (
	"bytes"
	"cmp"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"webmanifest/internal/manifest"
)

// Sizes returns the pixel dimensions contained in an icon file. ICO files
// may contain several images; every other format yields one size.
func Sizes(data []byte) ([]image.Point, error) {
	format := DetectFormat(data)
	switch format {
	case FormatUnknown:
		return nil, fmt.Errorf("unsupported image format")
	case FormatICO:
		return icoSizes(data)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s header: %w", format, err)
	}
	return []image.Point{image.Pt(cfg.Width, cfg.Height)}, nil
}

// FormatSizes renders dimensions as the sizes member expects them:
// space-separated "WxH" tokens, ascending by area, without duplicates.
func FormatSizes(sizes []image.Point) string {
	sorted := slices.Clone(sizes)
	slices.SortFunc(sorted, func(a, b image.Point) int {
		if c := cmp.Compare(a.X*a.Y, b.X*b.Y); c != 0 {
			return c
		}
		return cmp.Compare(a.X, b.X)
	})
	sorted = slices.Compact(sorted)

	tokens := make([]string, 0, len(sorted))
	for _, s := range sorted {
		tokens = append(tokens, strconv.Itoa(s.X)+"x"+strconv.Itoa(s.Y))
	}
	return strings.Join(tokens, " ")
}

// Icon builds an icon record from image data
func Icon(data []byte, src string) (manifest.Icon, error) {
	sizes, err := Sizes(data)
	if err != nil {
		return manifest.Icon{}, err
	}
	return manifest.Icon{
		Src:   src,
		Sizes: FormatSizes(sizes),
		Type:  DetectFormat(data).MIMEType(),
	}, nil
}

// Probe reads an icon file and builds its record. An empty src defaults
// to the file's base name.
func Probe(path, src string) (manifest.Icon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return manifest.Icon{}, fmt.Errorf("failed to read icon: %w", err)
	}
	if src == "" {
		src = filepath.Base(path)
	}

	icon, err := Icon(data, src)
	if err != nil {
		return manifest.Icon{}, fmt.Errorf("failed to probe icon %s: %w", path, err)
	}
	slog.Debug("Probed icon", "path", path, "sizes", icon.Sizes, "type", icon.Type)
	return icon, nil
}

// ProbeAll probes every path in order. Each src is baseURL joined with the
// file's base name.
func ProbeAll(paths []string, baseURL string) ([]manifest.Icon, error) {
	icons := make([]manifest.Icon, 0, len(paths))
	for _, p := range paths {
		icon, err := Probe(p, joinURL(baseURL, filepath.Base(p)))
		if err != nil {
			return nil, err
		}
		icons = append(icons, icon)
	}
	return icons, nil
}

func joinURL(base, name string) string {
	if base == "" {
		return name
	}
	return strings.TrimSuffix(base, "/") + "/" + name
}
