package iconprobe

import "bytes"

// ImageFormat represents icon image formats recognized by DetectFormat
type ImageFormat int

const (
	FormatUnknown ImageFormat = iota
	FormatPNG
	FormatJPEG
	FormatWebP
	FormatBMP
	FormatICO
	FormatGIF
)

// String returns the string representation of the image format
func (f ImageFormat) String() string {
	names := []string{"Unknown", "PNG", "JPEG", "WebP", "BMP", "ICO", "GIF"}
	if f >= 0 && int(f) < len(names) {
		return names[f]
	}
	return "Unknown"
}

// MIMEType returns the media type written to the icon's type member
func (f ImageFormat) MIMEType() string {
	switch f {
	case FormatPNG:
		return "image/png"
	case FormatJPEG:
		return "image/jpeg"
	case FormatWebP:
		return "image/webp"
	case FormatBMP:
		return "image/bmp"
	case FormatICO:
		return "image/x-icon"
	case FormatGIF:
		return "image/gif"
	default:
		return ""
	}
}

// Magic bytes for format detection
var (
	magicPNG  = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A} // PNG signature
	magicJPEG = []byte{0xFF, 0xD8, 0xFF}                                // JPEG SOI marker
	magicBMP  = []byte{0x42, 0x4D}                                      // "BM"
	magicICO  = []byte{0x00, 0x00, 0x01, 0x00}                          // ICO header
	magicRIFF = []byte{0x52, 0x49, 0x46, 0x46}                          // "RIFF" for WebP
	magicWEBP = []byte{0x57, 0x45, 0x42, 0x50}                          // "WEBP" at offset 8
	magicGIF  = []byte("GIF8")                                          // GIF87a / GIF89a
)

// DetectFormat detects the image format by examining magic bytes in the data.
// File extensions are never consulted.
func DetectFormat(data []byte) ImageFormat {
	// Need at least 2 bytes for the shortest magic (BMP)
	if len(data) < 2 {
		return FormatUnknown
	}

	switch {
	case bytes.HasPrefix(data, magicPNG):
		return FormatPNG
	case bytes.HasPrefix(data, magicJPEG):
		return FormatJPEG
	case len(data) >= 12 && bytes.HasPrefix(data, magicRIFF) && bytes.Equal(data[8:12], magicWEBP):
		// "RIFF", 4 bytes of file size, then "WEBP"
		return FormatWebP
	case bytes.HasPrefix(data, magicGIF):
		return FormatGIF
	case bytes.HasPrefix(data, magicICO):
		return FormatICO
	case bytes.HasPrefix(data, magicBMP):
		return FormatBMP
	}
	return FormatUnknown
}
