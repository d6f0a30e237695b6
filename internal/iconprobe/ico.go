package iconprobe

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"image/png"
)

// icoHeader represents the ICO file header (6 bytes)
type icoHeader struct {
	Reserved uint16 // Must be 0
	Type     uint16 // 1 = ICO, 2 = CUR
	Count    uint16 // Number of images
}

// icoEntry represents an ICO directory entry (16 bytes)
type icoEntry struct {
	Width      uint8  // Width in pixels (0 means 256)
	Height     uint8  // Height in pixels (0 means 256)
	ColorCount uint8  // Number of colors in palette (0 if >= 256 colors)
	Reserved   uint8  // Reserved, should be 0
	Planes     uint16 // Color planes (ICO) or hotspot X (CUR)
	BitCount   uint16 // Bits per pixel (ICO) or hotspot Y (CUR)
	Size       uint32 // Size of image data in bytes
	Offset     uint32 // Offset of image data from beginning of file
}

// actualWidth returns the actual width, converting 0 to 256
func (e *icoEntry) actualWidth() int {
	if e.Width == 0 {
		return 256
	}
	return int(e.Width)
}

// actualHeight returns the actual height, converting 0 to 256
func (e *icoEntry) actualHeight() int {
	if e.Height == 0 {
		return 256
	}
	return int(e.Height)
}

// parseICOEntry parses a 16-byte ICO directory entry
func parseICOEntry(data []byte) *icoEntry {
	return &icoEntry{
		Width:      data[0],
		Height:     data[1],
		ColorCount: data[2],
		Reserved:   data[3],
		Planes:     binary.LittleEndian.Uint16(data[4:6]),
		BitCount:   binary.LittleEndian.Uint16(data[6:8]),
		Size:       binary.LittleEndian.Uint32(data[8:12]),
		Offset:     binary.LittleEndian.Uint32(data[12:16]),
	}
}

// icoSizes lists the dimensions of every valid image in an ICO file, in
// directory order. Embedded PNG images report their real dimensions, so
// entries larger than 256 pixels are not truncated.
func icoSizes(data []byte) ([]image.Point, error) {
	if len(data) < 6 {
		return nil, fmt.Errorf("invalid ICO file: too short for header")
	}

	header := icoHeader{
		Reserved: binary.LittleEndian.Uint16(data[0:2]),
		Type:     binary.LittleEndian.Uint16(data[2:4]),
		Count:    binary.LittleEndian.Uint16(data[4:6]),
	}

	if header.Reserved != 0 {
		return nil, fmt.Errorf("invalid ICO file: reserved field must be 0, got %d", header.Reserved)
	}
	if header.Type != 1 {
		return nil, fmt.Errorf("invalid ICO file: type must be 1 for ICO, got %d", header.Type)
	}
	if header.Count == 0 {
		return nil, fmt.Errorf("invalid ICO file: no images in file")
	}

	directorySize := 6 + int(header.Count)*16
	if len(data) < directorySize {
		return nil, fmt.Errorf("invalid ICO file: too short for directory entries")
	}

	var sizes []image.Point
	for i := 0; i < int(header.Count); i++ {
		offset := 6 + i*16
		entry := parseICOEntry(data[offset : offset+16])

		if entry.Offset == 0 || entry.Size == 0 {
			continue
		}
		if int(entry.Offset)+int(entry.Size) > len(data) {
			continue // Skip invalid entries
		}

		size := image.Pt(entry.actualWidth(), entry.actualHeight())
		imageData := data[entry.Offset : entry.Offset+entry.Size]
		if bytes.HasPrefix(imageData, magicPNG) {
			cfg, err := png.DecodeConfig(bytes.NewReader(imageData))
			if err != nil {
				return nil, fmt.Errorf("failed to decode PNG in ICO: %w", err)
			}
			size = image.Pt(cfg.Width, cfg.Height)
		}
		sizes = append(sizes, size)
	}

	if len(sizes) == 0 {
		return nil, fmt.Errorf("invalid ICO file: no valid image entries found")
	}
	return sizes, nil
}
