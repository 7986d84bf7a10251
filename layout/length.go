package layout

import (
	"strconv"
	"strings"

	"github.com/parchment-engine/parchment/text"
)

// ParseLength resolves a length literal to pixels. Only the px unit
// is recognized; a missing, unitless, or malformed value resolves to
// zero rather than an error, per the engine's no-failure contract.
func ParseLength(v string) float64 {
	v = strings.TrimSpace(v)
	if !strings.HasSuffix(v, "px") {
		return 0
	}
	n, err := strconv.ParseFloat(strings.TrimSuffix(v, "px"), 64)
	if err != nil {
		return 0
	}
	return n
}

// computeEdges populates the box-model offsets from the computed
// style map.
func (b *Box) computeEdges() {
	s := b.Node.Style
	b.Margin = EdgeSizes{
		Top:    ParseLength(s["margin-top"]),
		Right:  ParseLength(s["margin-right"]),
		Bottom: ParseLength(s["margin-bottom"]),
		Left:   ParseLength(s["margin-left"]),
	}
	b.Border = EdgeSizes{
		Top:    ParseLength(s["border-top-width"]),
		Right:  ParseLength(s["border-right-width"]),
		Bottom: ParseLength(s["border-bottom-width"]),
		Left:   ParseLength(s["border-left-width"]),
	}
	b.Padding = EdgeSizes{
		Top:    ParseLength(s["padding-top"]),
		Right:  ParseLength(s["padding-right"]),
		Bottom: ParseLength(s["padding-bottom"]),
		Left:   ParseLength(s["padding-left"]),
	}
}

// fontFor derives the font descriptor for a node's computed style.
// The cascade guarantees font-size, font-weight, and font-style are
// always present.
func fontFor(style map[string]string) text.Font {
	size := ParseLength(style["font-size"])
	if size <= 0 {
		size = 16
	}
	return text.Font{
		Size:   size,
		Bold:   style["font-weight"] == "bold",
		Italic: style["font-style"] == "italic",
	}
}
