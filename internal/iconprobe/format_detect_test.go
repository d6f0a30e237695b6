package iconprobe

import (
	"testing"
	"testing/quick"
)

func TestDetectFormat_PNG(t *testing.T) {
	// PNG magic bytes: 89 50 4E 47 0D 0A 1A 0A
	pngData := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00}
	if got := DetectFormat(pngData); got != FormatPNG {
		t.Errorf("DetectFormat(PNG data) = %v, want %v", got, FormatPNG)
	}
}

func TestDetectFormat_JPEG(t *testing.T) {
	jpegData := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10}
	if got := DetectFormat(jpegData); got != FormatJPEG {
		t.Errorf("DetectFormat(JPEG data) = %v, want %v", got, FormatJPEG)
	}
}

func TestDetectFormat_WebP(t *testing.T) {
	webpData := []byte{
		0x52, 0x49, 0x46, 0x46, // RIFF
		0x00, 0x00, 0x00, 0x00, // file size (placeholder)
		0x57, 0x45, 0x42, 0x50, // WEBP
	}
	if got := DetectFormat(webpData); got != FormatWebP {
		t.Errorf("DetectFormat(WebP data) = %v, want %v", got, FormatWebP)
	}
}

func TestDetectFormat_RIFFWithoutWebP(t *testing.T) {
	wavData := []byte{0x52, 0x49, 0x46, 0x46, 0x00, 0x00, 0x00, 0x00, 'W', 'A', 'V', 'E'}
	if got := DetectFormat(wavData); got != FormatUnknown {
		t.Errorf("DetectFormat(RIFF/WAVE data) = %v, want %v", got, FormatUnknown)
	}
}

func TestDetectFormat_GIF(t *testing.T) {
	if got := DetectFormat([]byte("GIF89a\x10\x00\x10\x00")); got != FormatGIF {
		t.Errorf("DetectFormat(GIF data) = %v, want %v", got, FormatGIF)
	}
}

func TestDetectFormat_BMP(t *testing.T) {
	bmpData := []byte{0x42, 0x4D, 0x00, 0x00, 0x00, 0x00}
	if got := DetectFormat(bmpData); got != FormatBMP {
		t.Errorf("DetectFormat(BMP data) = %v, want %v", got, FormatBMP)
	}
}

func TestDetectFormat_ICO(t *testing.T) {
	icoData := []byte{0x00, 0x00, 0x01, 0x00, 0x01, 0x00}
	if got := DetectFormat(icoData); got != FormatICO {
		t.Errorf("DetectFormat(ICO data) = %v, want %v", got, FormatICO)
	}
}

func TestDetectFormat_UnknownShortAndEmpty(t *testing.T) {
	tests := map[string][]byte{
		"unknown":   {0x12, 0x34, 0x56, 0x78, 0x9A, 0xBC},
		"too short": {0x89},
		"empty":     {},
		"svg":       []byte(`<svg xmlns="http://www.w3.org/2000/svg"/>`),
	}
	for name, data := range tests {
		if got := DetectFormat(data); got != FormatUnknown {
			t.Errorf("DetectFormat(%s) = %v, want %v", name, got, FormatUnknown)
		}
	}
}

// Property test: any data with the PNG signature is detected as PNG
func TestProperty_PNGDetection(t *testing.T) {
	f := func(suffix []byte) bool {
		data := append([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, suffix...)
		return DetectFormat(data) == FormatPNG
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 100}); err != nil {
		t.Errorf("Property test failed: %v", err)
	}
}

// Property test: any data with the ICO header prefix is detected as ICO
func TestProperty_ICODetection(t *testing.T) {
	f := func(suffix []byte) bool {
		data := append([]byte{0x00, 0x00, 0x01, 0x00}, suffix...)
		return DetectFormat(data) == FormatICO
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 100}); err != nil {
		t.Errorf("Property test failed: %v", err)
	}
}

// Property test: RIFF....WEBP is detected as WebP whatever the size field holds
func TestProperty_WebPDetection(t *testing.T) {
	f := func(fileSize uint32, suffix []byte) bool {
		header := []byte{
			0x52, 0x49, 0x46, 0x46, // RIFF
			byte(fileSize), byte(fileSize >> 8), byte(fileSize >> 16), byte(fileSize >> 24),
			0x57, 0x45, 0x42, 0x50, // WEBP
		}
		return DetectFormat(append(header, suffix...)) == FormatWebP
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 100}); err != nil {
		t.Errorf("Property test failed: %v", err)
	}
}

// Property test: every detected format has a MIME type, unknown has none
func TestProperty_DetectedFormatHasMIMEType(t *testing.T) {
	f := func(data []byte) bool {
		format := DetectFormat(data)
		if format == FormatUnknown {
			return format.MIMEType() == ""
		}
		return format.MIMEType() != ""
	}
	if err := quick.Check(f, &quick.Config{MaxCount: 200}); err != nil {
		t.Errorf("Property test failed: %v", err)
	}
}

func TestImageFormat_String(t *testing.T) {
	tests := []struct {
		format   ImageFormat
		expected string
	}{
		{FormatUnknown, "Unknown"},
		{FormatPNG, "PNG"},
		{FormatJPEG, "JPEG"},
		{FormatWebP, "WebP"},
		{FormatBMP, "BMP"},
		{FormatICO, "ICO"},
		{FormatGIF, "GIF"},
		{ImageFormat(100), "Unknown"}, // Out of range
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.expected {
			t.Errorf("ImageFormat(%d).String() = %q, want %q", tt.format, got, tt.expected)
		}
	}
}
