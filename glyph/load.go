package glyph

import (
	"errors"
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

// DefaultDPI is the resolution used when loading scalable fonts.
const DefaultDPI = 72

// ParseOpenType creates a face from OpenType (or TrueType) font data.
func ParseOpenType(data []byte, size float64) (font.Face, error) {
	if size <= 0 {
		return nil, errors.New("glyph: font size must be positive")
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("glyph: parse opentype: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     DefaultDPI,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("glyph: opentype face: %w", err)
	}
	return face, nil
}

// ParseTrueType creates a face from TrueType font data using the freetype rasterizer.
func ParseTrueType(data []byte, size float64) (font.Face, error) {
	if size <= 0 {
		return nil, errors.New("glyph: font size must be positive")
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("glyph: parse truetype: %w", err)
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     DefaultDPI,
		Hinting: font.HintingFull,
	}), nil
}

// Parse tries OpenType first and falls back to the freetype parser, which
// accepts some older TrueType files the sfnt parser rejects.
func Parse(data []byte, size float64) (font.Face, error) {
	face, err := ParseOpenType(data, size)
	if err == nil {
		return face, nil
	}
	face, ttErr := ParseTrueType(data, size)
	if ttErr != nil {
		return nil, errors.Join(err, ttErr)
	}
	return face, nil
}

// Load reads a font file and parses it with Parse. An empty path returns Classic.
func Load(path string, size float64) (font.Face, error) {
	if path == "" {
		return Classic, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("glyph: %w", err)
	}
	return Parse(data, size)
}
