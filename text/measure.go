// Package text measures words and exposes font metrics for layout.
// Faces are built from the embedded Go fonts, so measurement is fully
// deterministic and needs no font files on disk.
package text

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Font describes the face a run of text is set in. It is the
// descriptor carried through layout into the display list.
type Font struct {
	Size   float64
	Bold   bool
	Italic bool
}

// String renders the descriptor for logs and test failures.
func (f Font) String() string {
	s := fmt.Sprintf("%gpx", f.Size)
	if f.Bold {
		s += " bold"
	}
	if f.Italic {
		s += " italic"
	}
	return s
}

// Measurer measures text against cached font faces. It is not safe
// for concurrent use; the layout pipeline is single-threaded.
type Measurer struct {
	regular    *sfnt.Font
	bold       *sfnt.Font
	italic     *sfnt.Font
	boldItalic *sfnt.Font

	faces map[Font]font.Face
}

// NewMeasurer parses the embedded fonts and returns a ready measurer.
func NewMeasurer() (*Measurer, error) {
	m := &Measurer{faces: make(map[Font]font.Face)}
	var err error
	if m.regular, err = opentype.Parse(goregular.TTF); err != nil {
		return nil, fmt.Errorf("text: parsing regular font: %w", err)
	}
	if m.bold, err = opentype.Parse(gobold.TTF); err != nil {
		return nil, fmt.Errorf("text: parsing bold font: %w", err)
	}
	if m.italic, err = opentype.Parse(goitalic.TTF); err != nil {
		return nil, fmt.Errorf("text: parsing italic font: %w", err)
	}
	if m.boldItalic, err = opentype.Parse(gobolditalic.TTF); err != nil {
		return nil, fmt.Errorf("text: parsing bold italic font: %w", err)
	}
	return m, nil
}

// face returns the cached face for a descriptor, creating it on first
// use. Sizes are clamped to at least 1px so degenerate styles still
// measure.
func (m *Measurer) face(f Font) font.Face {
	if f.Size < 1 {
		f.Size = 1
	}
	if face, ok := m.faces[f]; ok {
		return face
	}
	src := m.regular
	switch {
	case f.Bold && f.Italic:
		src = m.boldItalic
	case f.Bold:
		src = m.bold
	case f.Italic:
		src = m.italic
	}
	face, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    f.Size,
		DPI:     72, // 1pt == 1px, so Size is in pixels
		Hinting: font.HintingNone,
	})
	if err != nil {
		// The parsed fonts are known good; a face failure can only
		// come from pathological options. Fall back to a bitmap face
		// rather than failing layout.
		face = basicfont.Face7x13
	}
	m.faces[f] = face
	return face
}

// Width returns the advance width of s in pixels.
func (m *Measurer) Width(s string, f Font) float64 {
	return fromFixed(font.MeasureString(m.face(f), s))
}

// Metrics returns the ascent and descent of the face in pixels, both
// as positive distances from the baseline.
func (m *Measurer) Metrics(f Font) (ascent, descent float64) {
	metrics := m.face(f).Metrics()
	return fromFixed(metrics.Ascent), fromFixed(metrics.Descent)
}

// Linespace returns the default line height of the face in pixels.
func (m *Measurer) Linespace(f Font) float64 {
	ascent, descent := m.Metrics(f)
	return ascent + descent
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
