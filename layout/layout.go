package layout

import "github.com/parchment-engine/parchment/text"

// Layout computes geometry for the whole tree. It must be called on
// the DocumentBox returned by BuildTree, with the viewport width in
// pixels. Layout never fails: unresolvable style values fall back to
// zero.
//
// Each box runs four phases in order, because each phase's inputs are
// only valid once the previous one has completed on the relevant
// other box:
//
//  1. width, from the parent's content width (parent first)
//  2. horizontal position, from the parent's content left edge
//  3. vertical position, from the previous sibling's margin-box
//     bottom (the previous sibling must be fully laid out)
//  4. children, then height from the children's outer heights
func (b *Box) Layout(m *text.Measurer, viewportWidth float64) {
	b.X, b.Y = 0, 0
	b.Width = viewportWidth
	child := b.Children[0]
	child.layoutBox(m)
	b.Height = child.MarginBox().Height
}

func (b *Box) layoutBox(m *text.Measurer) {
	switch b.Type {
	case DocumentBox:
		// The document root is laid out by Layout itself.
	case BlockBox:
		b.computeEdges()
		b.computeWidth()
		b.computeX()
		b.computeY()
		for _, c := range b.Children {
			c.layoutBox(m)
		}
		b.Height = 0
		for _, c := range b.Children {
			b.Height += c.MarginBox().Height
		}
	case InlineBox:
		b.computeEdges()
		b.computeWidth()
		b.computeX()
		b.computeY()
		b.layoutInline(m)
	case LineRunBox:
		// Runs are positioned by their InlineBox parent.
	}
}

// computeWidth sets the content width from the parent's content width
// minus this box's own margins, border, and padding. The parent's
// width phase has already run, so Parent.Width is valid.
func (b *Box) computeWidth() {
	w := b.Parent.Width -
		b.Margin.Left - b.Margin.Right -
		b.Border.Left - b.Border.Right -
		b.Padding.Left - b.Padding.Right
	if w < 0 {
		w = 0
	}
	b.Width = w
}

// computeX places the content left edge relative to the parent's
// content left edge.
func (b *Box) computeX() {
	b.X = b.Parent.X + b.Margin.Left + b.Border.Left + b.Padding.Left
}

// computeY places the content top edge below the previous sibling's
// margin box, or at the parent's content top for a first child. The
// previous sibling is fully laid out by the time this runs, which is
// what forces the strict top-to-bottom sibling ordering.
func (b *Box) computeY() {
	top := b.Margin.Top + b.Border.Top + b.Padding.Top
	if b.PrevSibling != nil {
		prev := b.PrevSibling.MarginBox()
		b.Y = prev.Y + prev.Height + top
		return
	}
	b.Y = b.Parent.Y + top
}
