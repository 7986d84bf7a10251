// Package layout builds the layout tree and computes geometry for
// every box under a strict dependency order: width before position,
// position before children, children before height.
package layout

import (
	"github.com/parchment-engine/parchment/html"
	"github.com/parchment-engine/parchment/text"
)

// BoxType identifies the kind of a layout box. The set is closed;
// geometry and painting dispatch over it with exhaustive switches.
type BoxType int

const (
	// DocumentBox is the root of the layout tree. Its single child is
	// always a BlockBox for the document's root element.
	DocumentBox BoxType = iota
	// BlockBox stacks its children vertically.
	BlockBox
	// InlineBox lays the words of its element subtree into lines.
	InlineBox
	// LineRunBox is a single positioned word; it is created and
	// placed by its InlineBox parent, never laid out on its own.
	LineRunBox
)

func (t BoxType) String() string {
	switch t {
	case DocumentBox:
		return "document"
	case BlockBox:
		return "block"
	case InlineBox:
		return "inline"
	case LineRunBox:
		return "run"
	}
	return "unknown"
}

// Rect represents a rectangular area.
type Rect struct {
	X, Y, Width, Height float64
}

// EdgeSizes represents the sizes of the four edges of a box layer.
type EdgeSizes struct {
	Top, Right, Bottom, Left float64
}

// ExpandedBy returns the rectangle grown outward by the given edges.
func (r Rect) ExpandedBy(e EdgeSizes) Rect {
	return Rect{
		X:      r.X - e.Left,
		Y:      r.Y - e.Top,
		Width:  r.Width + e.Left + e.Right,
		Height: r.Height + e.Top + e.Bottom,
	}
}

// Box is a node of the layout tree. X, Y, Width and Height describe
// the content box; margin, border and padding wrap around it. Parent
// and PrevSibling are non-owning back-references; Children are owned.
// The tree is rebuilt wholesale on every layout pass.
type Box struct {
	Type BoxType
	Node *html.Node

	Parent      *Box
	PrevSibling *Box
	Children    []*Box

	X, Y          float64
	Width, Height float64

	Margin  EdgeSizes
	Border  EdgeSizes
	Padding EdgeSizes

	// Line run fields, set only for LineRunBox.
	Text    string
	Font    text.Font
	Ascent  float64
	Descent float64
}

// ContentBox returns the content rectangle.
func (b *Box) ContentBox() Rect {
	return Rect{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height}
}

// PaddingBox returns the area covered by content and padding.
func (b *Box) PaddingBox() Rect {
	return b.ContentBox().ExpandedBy(b.Padding)
}

// BorderBox returns the area covered by content, padding, and border.
func (b *Box) BorderBox() Rect {
	return b.PaddingBox().ExpandedBy(b.Border)
}

// MarginBox returns the full outer area including margins.
func (b *Box) MarginBox() Rect {
	return b.BorderBox().ExpandedBy(b.Margin)
}

// BuildTree constructs a layout tree for a styled document tree. The
// result carries no geometry yet; call Layout on it.
func BuildTree(root *html.Node) *Box {
	doc := &Box{Type: DocumentBox, Node: root}
	child := buildBox(root, doc, nil)
	// The document's child is always a block, whatever the root
	// element's own content would classify it as.
	child.Type = BlockBox
	doc.Children = []*Box{child}
	return doc
}

// nonRendered elements and their subtrees produce no boxes. Their
// content is document metadata, not page content.
var nonRendered = map[string]bool{
	"head": true, "title": true, "style": true, "script": true,
	"meta": true, "link": true, "base": true,
}

func buildBox(n *html.Node, parent, prev *Box) *Box {
	b := &Box{Node: n, Parent: parent, PrevSibling: prev}
	if layoutMode(n) == InlineBox {
		b.Type = InlineBox
		// Line runs are produced during geometry, when the available
		// width is known.
		return b
	}
	b.Type = BlockBox
	var prevChild *Box
	for _, c := range n.Children {
		if c.Type == html.ElementNode && nonRendered[c.Tag] {
			continue
		}
		var cb *Box
		if c.Type == html.TextNode {
			// Bare text inside a block container gets its own inline
			// box; mixed content is handled in block mode rather than
			// by anonymous-box splitting.
			cb = &Box{Type: InlineBox, Node: c, Parent: b, PrevSibling: prevChild}
		} else {
			cb = buildBox(c, b, prevChild)
		}
		b.Children = append(b.Children, cb)
		prevChild = cb
	}
	return b
}

// layoutMode classifies an element: block when any child element has
// computed display block (pulling interleaved inline content into
// block mode with it), inline when every child is text or an
// inline-level element. Childless elements produce empty blocks.
func layoutMode(n *html.Node) BoxType {
	if n.Type == html.TextNode {
		return InlineBox
	}
	if len(n.Children) == 0 {
		return BlockBox
	}
	for _, c := range n.Children {
		if c.Type == html.ElementNode && display(c) == "block" {
			return BlockBox
		}
	}
	return InlineBox
}

// display returns an element's computed display value; elements with
// no declared display are inline-level.
func display(n *html.Node) string {
	if v, ok := n.Style["display"]; ok {
		return v
	}
	return "inline"
}
