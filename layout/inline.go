package layout

import (
	"strings"

	"github.com/parchment-engine/parchment/html"
	"github.com/parchment-engine/parchment/text"
)

// breakGap is the fixed extra vertical space added after an explicit
// line break and at the end of an inline box's content.
const breakGap = 12.0

// leadingFactor spaces lines at 1.2x the tallest run's metrics, so
// adjacent lines never touch.
const leadingFactor = 1.2

// lineLayout accumulates words left to right and flushes them into
// baseline-aligned lines. Cursor coordinates are relative to the
// inline box's content origin until a flush finalizes them.
type lineLayout struct {
	box     *Box
	m       *text.Measurer
	cursorX float64
	cursorY float64
	line    []*Box
	prevRun *Box
}

// layoutInline produces and positions the LineRunBox children of an
// inline box by walking its element subtree. Runs of different font
// sizes on the same line share a common baseline: each run sits at
// lineBaseline minus its own ascent.
func (b *Box) layoutInline(m *text.Measurer) {
	ll := &lineLayout{box: b, m: m}
	ll.walk(b.Node)
	ll.flush()
	ll.cursorY += breakGap
	b.Height = ll.cursorY
}

func (ll *lineLayout) walk(n *html.Node) {
	if n.Type == html.TextNode {
		ll.text(n)
		return
	}
	if n.Tag == "br" {
		ll.flush()
		ll.cursorY += breakGap
		return
	}
	if nonRendered[n.Tag] {
		return
	}
	for _, c := range n.Children {
		ll.walk(c)
	}
}

// text appends one run per word, breaking the line whenever the next
// word would exceed the available width.
func (ll *lineLayout) text(n *html.Node) {
	f := fontFor(n.Style)
	spaceWidth := ll.m.Width(" ", f)
	ascent, descent := ll.m.Metrics(f)
	for _, word := range strings.Fields(n.Text) {
		w := ll.m.Width(word, f)
		if ll.cursorX+w > ll.box.Width && len(ll.line) > 0 {
			ll.flush()
		}
		run := &Box{
			Type:        LineRunBox,
			Node:        n,
			Parent:      ll.box,
			PrevSibling: ll.prevRun,
			Text:        word,
			Font:        f,
			X:           ll.cursorX, // relative until flushed
			Width:       w,
			Height:      ascent + descent,
			Ascent:      ascent,
			Descent:     descent,
		}
		ll.line = append(ll.line, run)
		ll.box.Children = append(ll.box.Children, run)
		ll.prevRun = run
		ll.cursorX += w + spaceWidth
	}
}

// flush finalizes the current line: the baseline sits leadingFactor
// times the tallest ascent below the line top, every run hangs from
// that shared baseline, and the next line starts leadingFactor times
// the deepest descent below it.
func (ll *lineLayout) flush() {
	if len(ll.line) == 0 {
		ll.cursorX = 0
		return
	}
	var maxAscent, maxDescent float64
	for _, run := range ll.line {
		if run.Ascent > maxAscent {
			maxAscent = run.Ascent
		}
		if run.Descent > maxDescent {
			maxDescent = run.Descent
		}
	}
	baseline := ll.cursorY + leadingFactor*maxAscent
	for _, run := range ll.line {
		run.X = ll.box.X + run.X
		run.Y = ll.box.Y + baseline - run.Ascent
	}
	ll.cursorY = baseline + leadingFactor*maxDescent
	ll.cursorX = 0
	ll.line = nil
}
