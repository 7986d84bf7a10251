// Package render walks a geometrically-resolved layout tree and emits
// an ordered display list of paint commands. The display list is the
// sole handoff to the paint backend: everything positional is already
// resolved, and each command carries its vertical bounds so a viewport
// can cull without understanding the content.
package render

import (
	"fmt"
	"image/color"

	"github.com/parchment-engine/parchment/css"
	"github.com/parchment-engine/parchment/layout"
	"github.com/parchment-engine/parchment/text"
)

// Command is a single paint operation. Top and Bottom bound the
// command vertically for visibility culling.
type Command interface {
	Top() float64
	Bottom() float64
}

// DrawRect fills a rectangle with a solid color.
type DrawRect struct {
	Rect  layout.Rect
	Color color.RGBA
}

func (c DrawRect) Top() float64    { return c.Rect.Y }
func (c DrawRect) Bottom() float64 { return c.Rect.Y + c.Rect.Height }

func (c DrawRect) String() string {
	return fmt.Sprintf("rect (%g,%g) %gx%g #%02x%02x%02x",
		c.Rect.X, c.Rect.Y, c.Rect.Width, c.Rect.Height,
		c.Color.R, c.Color.G, c.Color.B)
}

// DrawText draws a run of text whose top-left corner is at (X, Y).
type DrawText struct {
	X, Y   float64
	Text   string
	Font   text.Font
	Color  color.RGBA
	Height float64
}

func (c DrawText) Top() float64    { return c.Y }
func (c DrawText) Bottom() float64 { return c.Y + c.Height }

func (c DrawText) String() string {
	return fmt.Sprintf("text (%g,%g) %s %q", c.X, c.Y, c.Font, c.Text)
}

// Paint produces the display list for a laid-out tree. Backgrounds
// are emitted before the descendants they sit behind, so executing
// the list in order yields correct stacking.
func Paint(root *layout.Box) []Command {
	var list []Command
	paintBox(root, &list)
	return list
}

func paintBox(b *layout.Box, list *[]Command) {
	switch b.Type {
	case layout.LineRunBox:
		col, ok := css.ParseColor(b.Node.Style["color"])
		if !ok {
			col = color.RGBA{A: 255} // black
		}
		*list = append(*list, DrawText{
			X:      b.X,
			Y:      b.Y,
			Text:   b.Text,
			Font:   b.Font,
			Color:  col,
			Height: b.Height,
		})
	case layout.DocumentBox, layout.BlockBox, layout.InlineBox:
		if bg, ok := css.ParseColor(b.Node.Style["background-color"]); ok {
			*list = append(*list, DrawRect{Rect: b.BorderBox(), Color: bg})
		}
		for _, c := range b.Children {
			paintBox(c, list)
		}
	}
}

// Cull returns the commands visible in the vertical band from top to
// bottom, preserving order. The scroll position of the external
// viewport maps directly onto the band.
func Cull(list []Command, top, bottom float64) []Command {
	var visible []Command
	for _, cmd := range list {
		if cmd.Bottom() < top || cmd.Top() > bottom {
			continue
		}
		visible = append(visible, cmd)
	}
	return visible
}
