package layout

import (
	"strings"
	"testing"
)

// runs returns the line run boxes under an inline box in creation
// order.
func runs(b *Box) []*Box {
	var out []*Box
	for _, c := range b.Children {
		if c.Type == LineRunBox {
			out = append(out, c)
		}
	}
	return out
}

func TestInline_OneRunPerWord(t *testing.T) {
	tree := layoutDocument(t, `<body><p>alpha beta gamma</p></body>`, 800, "")

	p := findBox(tree, "p")
	got := runs(p)
	if len(got) != 3 {
		t.Fatalf("got %d runs, want 3", len(got))
	}
	for i, word := range []string{"alpha", "beta", "gamma"} {
		if got[i].Text != word {
			t.Errorf("run %d text = %q, want %q", i, got[i].Text, word)
		}
	}
}

func TestInline_SingleLineSharesY(t *testing.T) {
	tree := layoutDocument(t, `<body><p>alpha beta</p></body>`, 800, "")

	got := runs(findBox(tree, "p"))
	if len(got) != 2 {
		t.Fatalf("got %d runs, want 2", len(got))
	}
	if !approx(got[0].Y, got[1].Y) {
		t.Errorf("same-font runs on one line at y %g and %g, want equal", got[0].Y, got[1].Y)
	}
	if got[1].X <= got[0].X+got[0].Width {
		t.Errorf("second run at x %g overlaps first ending at %g", got[1].X, got[0].X+got[0].Width)
	}
}

func TestInline_WrapsAtWidth(t *testing.T) {
	tree := layoutDocument(t, `<body><p>aaaa bbbb cccc dddd eeee ffff gggg hhhh</p></body>`, 120, "")

	got := runs(findBox(tree, "p"))
	if len(got) != 8 {
		t.Fatalf("got %d runs, want 8", len(got))
	}
	var lines int
	lastY := -1.0
	for _, r := range got {
		if !approx(r.Y, lastY) {
			lines++
			lastY = r.Y
		}
		if r.X+r.Width > 120+epsilon && r.X > findBox(tree, "p").X+epsilon {
			t.Errorf("run %q at x %g width %g overflows a 120px line", r.Text, r.X, r.Width)
		}
	}
	if lines < 2 {
		t.Errorf("got %d lines, want wrapping onto at least 2", lines)
	}
}

func TestInline_OverlongWordStaysOnItsOwnLine(t *testing.T) {
	tree := layoutDocument(t, `<body><p>`+strings.Repeat("x", 100)+` tail</p></body>`, 100, "")

	got := runs(findBox(tree, "p"))
	if len(got) != 2 {
		t.Fatalf("got %d runs, want 2", len(got))
	}
	// The overlong first word is emitted even though it exceeds the
	// width; the next word starts a fresh line.
	if approx(got[0].Y, got[1].Y) {
		t.Error("overlong word and following word share a line, want a break between them")
	}
}

func TestInline_MixedSizesShareBaseline(t *testing.T) {
	tree := layoutDocument(t, `<body><p>small <span class="big">LARGE</span> small</p></body>`, 800,
		`.big { font-size: 32px; }`)

	got := runs(findBox(tree, "p"))
	if len(got) != 3 {
		t.Fatalf("got %d runs, want 3", len(got))
	}
	base0 := got[0].Y + got[0].Ascent
	for i, r := range got[1:] {
		if base := r.Y + r.Ascent; !approx(base, base0) {
			t.Errorf("run %d baseline = %g, want %g (all runs share the line baseline)", i+1, base, base0)
		}
	}
	// The larger run's top sits above the smaller runs' tops.
	if got[1].Y >= got[0].Y {
		t.Errorf("large run top %g not above small run top %g", got[1].Y, got[0].Y)
	}
}

func TestInline_BoldStyling(t *testing.T) {
	tree := layoutDocument(t, `<body><p>A<b>B</b></p></body>`, 800, "")

	got := runs(findBox(tree, "p"))
	if len(got) != 2 {
		t.Fatalf("got %d runs, want 2", len(got))
	}
	if got[0].Font.Bold {
		t.Error("first run bold, want regular")
	}
	if !got[1].Font.Bold {
		t.Error("second run not bold")
	}
	if !approx(got[0].Y+got[0].Ascent, got[1].Y+got[1].Ascent) {
		t.Error("runs do not share a baseline")
	}
}

func TestInline_ExplicitBreak(t *testing.T) {
	tree := layoutDocument(t, `<body><p>one<br>two</p></body>`, 800, "")

	got := runs(findBox(tree, "p"))
	if len(got) != 2 {
		t.Fatalf("got %d runs, want 2", len(got))
	}
	if got[1].Y <= got[0].Y {
		t.Errorf("run after br at y %g, want below %g", got[1].Y, got[0].Y)
	}
	p := findBox(tree, "p")
	if !approx(got[1].X, p.X) {
		t.Errorf("run after br at x %g, want line start %g", got[1].X, p.X)
	}
}

func TestInline_ConsecutiveBreaksAddSpace(t *testing.T) {
	single := layoutDocument(t, `<body><p>one<br>two</p></body>`, 800, "")
	double := layoutDocument(t, `<body><p>one<br><br>two</p></body>`, 800, "")

	s := runs(findBox(single, "p"))
	d := runs(findBox(double, "p"))
	if len(s) != 2 || len(d) != 2 {
		t.Fatalf("got %d and %d runs, want 2 and 2", len(s), len(d))
	}
	if d[1].Y <= s[1].Y {
		t.Errorf("after two breaks y = %g, want below single-break y %g", d[1].Y, s[1].Y)
	}
}

func TestInline_HeightCoversContent(t *testing.T) {
	tree := layoutDocument(t, `<body><p>one two three</p></body>`, 800, "")

	p := findBox(tree, "p")
	if p.Height <= 0 {
		t.Fatalf("inline box height = %g, want positive", p.Height)
	}
	for _, r := range runs(p) {
		if bottom := r.Y + r.Height; bottom > p.Y+p.Height+epsilon {
			t.Errorf("run bottom %g exceeds box bottom %g", bottom, p.Y+p.Height)
		}
	}
}

func TestInline_EmptyElement(t *testing.T) {
	tree := layoutDocument(t, `<body><p></p></body>`, 800, "")

	p := findBox(tree, "p")
	if p == nil {
		t.Fatal("no box for p")
	}
	if len(runs(p)) != 0 {
		t.Errorf("empty paragraph produced %d runs", len(runs(p)))
	}
}
