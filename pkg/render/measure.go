// Package render draws laid-out overlay passes as SVG or PNG and measures
// label text with the same font the renderers use.
package render

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// FontMeasurer measures label text with Go Regular at a fixed size.
type FontMeasurer struct {
	face font.Face
	size float64
}

// NewFontMeasurer creates a measurer for the given point size at 72 DPI,
// so one point is one pixel.
func NewFontMeasurer(size float64) (*FontMeasurer, error) {
	face, err := newFace(size)
	if err != nil {
		return nil, err
	}
	return &FontMeasurer{face: face, size: size}, nil
}

func newFace(size float64) (font.Face, error) {
	fnt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("create face: %w", err)
	}
	return face, nil
}

// Width returns the advance width of s in pixels.
func (m *FontMeasurer) Width(s string) float64 {
	return fixedToFloat(font.MeasureString(m.face, s))
}

// Height returns the line height in pixels.
func (m *FontMeasurer) Height() float64 {
	return fixedToFloat(m.face.Metrics().Height)
}

// Size returns the font size in points.
func (m *FontMeasurer) Size() float64 {
	return m.size
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
