package layout

import (
	"math"
	"testing"

	"github.com/parchment-engine/parchment/css"
	"github.com/parchment-engine/parchment/html"
	"github.com/parchment-engine/parchment/text"
)

const epsilon = 1e-6

func approx(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

// layoutDocument runs the full front half of the pipeline for a test
// document: parse, cascade with the default rules plus extra sheets,
// build, and lay out at the given viewport width.
func layoutDocument(t *testing.T, markup string, width float64, extraCSS string) *Box {
	t.Helper()
	root := html.Parse(markup)
	rules := css.DefaultRules()
	if extraCSS != "" {
		rules = append(rules, css.Parse(extraCSS)...)
	}
	css.Resolve(root, rules)
	m, err := text.NewMeasurer()
	if err != nil {
		t.Fatalf("NewMeasurer: %v", err)
	}
	tree := BuildTree(root)
	tree.Layout(m, width)
	return tree
}

// findBox returns the first box in the tree whose node is an element
// with the given tag.
func findBox(b *Box, tag string) *Box {
	if b.Node != nil && b.Node.Type == html.ElementNode && b.Node.Tag == tag {
		return b
	}
	for _, c := range b.Children {
		if found := findBox(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func TestBuildTree_RootIsDocumentWithBlockChild(t *testing.T) {
	root := html.Parse(`<body><p>x</p></body>`)
	css.Resolve(root, css.DefaultRules())

	tree := BuildTree(root)
	if tree.Type != DocumentBox {
		t.Fatalf("root type = %v, want document", tree.Type)
	}
	if len(tree.Children) != 1 || tree.Children[0].Type != BlockBox {
		t.Fatalf("document child = %v, want a single block", tree.Children)
	}
}

func TestBuildTree_InlineLeafForTextContent(t *testing.T) {
	root := html.Parse(`<body><p>hello world</p></body>`)
	css.Resolve(root, css.DefaultRules())

	tree := BuildTree(root)
	p := findBox(tree, "p")
	if p == nil {
		t.Fatal("no box for p")
	}
	if p.Type != InlineBox {
		t.Errorf("p box type = %v, want inline (all children are text)", p.Type)
	}
}

func TestBuildTree_MixedContentGoesBlock(t *testing.T) {
	root := html.Parse(`<body><div>loose text<p>para</p></div></body>`)
	css.Resolve(root, css.DefaultRules())

	tree := BuildTree(root)
	div := findBox(tree, "div")
	if div == nil {
		t.Fatal("no box for div")
	}
	if div.Type != BlockBox {
		t.Fatalf("div box type = %v, want block (contains a block child)", div.Type)
	}
	// The bare text child is wrapped in its own inline box.
	if len(div.Children) != 2 {
		t.Fatalf("div has %d children, want 2", len(div.Children))
	}
	if div.Children[0].Type != InlineBox {
		t.Errorf("text wrapper type = %v, want inline", div.Children[0].Type)
	}
	if div.Children[1].Type != BlockBox {
		t.Errorf("p child type = %v, want block", div.Children[1].Type)
	}
}

func TestBuildTree_ChildlessElementIsBlock(t *testing.T) {
	root := html.Parse(`<body><div></div></body>`)
	css.Resolve(root, css.DefaultRules())

	tree := BuildTree(root)
	div := findBox(tree, "div")
	if div == nil {
		t.Fatal("no box for div")
	}
	if div.Type != BlockBox {
		t.Errorf("empty div type = %v, want block", div.Type)
	}
}

func TestLayout_WidthFillsParent(t *testing.T) {
	tree := layoutDocument(t, `<body><div><p>x</p></div></body>`, 640, "")

	if !approx(tree.Width, 640) {
		t.Errorf("document width = %g, want 640", tree.Width)
	}
	for _, tag := range []string{"html", "body", "div"} {
		b := findBox(tree, tag)
		if b == nil {
			t.Fatalf("no box for %s", tag)
		}
		if !approx(b.Width, 640) {
			t.Errorf("%s width = %g, want 640", tag, b.Width)
		}
	}
}

func TestLayout_MarginNarrowsAndOffsets(t *testing.T) {
	tree := layoutDocument(t, `<body><div class="m"><p>x</p></div></body>`, 400,
		`.m { margin-left: 10px; margin-right: 10px; margin-top: 10px; }`)

	div := findBox(tree, "div")
	if div == nil {
		t.Fatal("no box for div")
	}
	if !approx(div.Width, 380) {
		t.Errorf("div width = %g, want 380 (400 minus both margins)", div.Width)
	}
	if !approx(div.X, 10) {
		t.Errorf("div x = %g, want 10", div.X)
	}
	if !approx(div.Y, 10) {
		t.Errorf("div y = %g, want 10", div.Y)
	}
}

func TestLayout_PaddingNarrowsContent(t *testing.T) {
	tree := layoutDocument(t, `<body><div class="p"><p>x</p></div></body>`, 400,
		`.p { padding-left: 20px; padding-right: 20px; }`)

	div := findBox(tree, "div")
	if !approx(div.Width, 360) {
		t.Errorf("div width = %g, want 360", div.Width)
	}
	if !approx(div.X, 20) {
		t.Errorf("div x = %g, want 20 (content starts after padding)", div.X)
	}
	p := findBox(tree, "p")
	if !approx(p.Width, 360) {
		t.Errorf("p width = %g, want 360 (fills div content)", p.Width)
	}
}

func TestLayout_SiblingsStackVertically(t *testing.T) {
	tree := layoutDocument(t, `<body><p>one</p><p>two</p></body>`, 400, "")

	body := findBox(tree, "body")
	if len(body.Children) != 2 {
		t.Fatalf("body has %d children, want 2", len(body.Children))
	}
	first, second := body.Children[0], body.Children[1]
	if first.Height <= 0 {
		t.Fatalf("first paragraph height = %g, want positive", first.Height)
	}
	wantY := first.MarginBox().Y + first.MarginBox().Height
	if !approx(second.Y, wantY) {
		t.Errorf("second paragraph y = %g, want %g (below first's margin box)", second.Y, wantY)
	}
}

func TestLayout_BlockHeightIsSumOfChildren(t *testing.T) {
	tree := layoutDocument(t, `<body><p>one</p><p>two</p></body>`, 400, "")

	body := findBox(tree, "body")
	var sum float64
	for _, c := range body.Children {
		sum += c.MarginBox().Height
	}
	if !approx(body.Height, sum) {
		t.Errorf("body height = %g, want %g (sum of children's outer heights)", body.Height, sum)
	}
}

func TestLayout_MarginBottomSeparatesParagraphs(t *testing.T) {
	// The default sheet gives p a 16px bottom margin.
	tree := layoutDocument(t, `<body><p>one</p><p>two</p></body>`, 400, "")

	body := findBox(tree, "body")
	first, second := body.Children[0], body.Children[1]
	gap := second.Y - (first.Y + first.Height)
	if !approx(gap, 16) {
		t.Errorf("gap between paragraphs = %g, want 16", gap)
	}
}

func TestLayout_DocumentHeightMatchesRoot(t *testing.T) {
	tree := layoutDocument(t, `<body><p>one</p><p>two</p><p>three</p></body>`, 400, "")

	rootBox := tree.Children[0]
	if !approx(tree.Height, rootBox.MarginBox().Height) {
		t.Errorf("document height = %g, want %g", tree.Height, rootBox.MarginBox().Height)
	}
	if tree.Height <= 0 {
		t.Errorf("document height = %g, want positive", tree.Height)
	}
}

func TestLayout_OverNarrowViewportClampsToZero(t *testing.T) {
	tree := layoutDocument(t, `<body><div class="m">x</div></body>`, 10,
		`.m { margin-left: 20px; margin-right: 20px; }`)

	div := findBox(tree, "div")
	if div.Width < 0 {
		t.Errorf("div width = %g, want clamped to 0", div.Width)
	}
}

func TestParseLength(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"16px", 16},
		{"1.5px", 1.5},
		{"0px", 0},
		{"-4px", -4},
		{" 8px ", 8},
		{"16", 0},
		{"2em", 0},
		{"50%", 0},
		{"auto", 0},
		{"", 0},
		{"px", 0},
		{"abcpx", 0},
	}
	for _, tt := range tests {
		if got := ParseLength(tt.in); !approx(got, tt.want) {
			t.Errorf("ParseLength(%q) = %g, want %g", tt.in, got, tt.want)
		}
	}
}

func TestBoxRects_Nesting(t *testing.T) {
	b := &Box{
		X: 100, Y: 50, Width: 200, Height: 80,
		Padding: EdgeSizes{Top: 1, Right: 2, Bottom: 3, Left: 4},
		Border:  EdgeSizes{Top: 5, Right: 6, Bottom: 7, Left: 8},
		Margin:  EdgeSizes{Top: 9, Right: 10, Bottom: 11, Left: 12},
	}

	padding := b.PaddingBox()
	if padding.X != 96 || padding.Y != 49 || padding.Width != 206 || padding.Height != 84 {
		t.Errorf("padding box = %+v", padding)
	}
	border := b.BorderBox()
	if border.X != 88 || border.Y != 44 || border.Width != 220 || border.Height != 96 {
		t.Errorf("border box = %+v", border)
	}
	margin := b.MarginBox()
	if margin.X != 76 || margin.Y != 35 || margin.Width != 242 || margin.Height != 116 {
		t.Errorf("margin box = %+v", margin)
	}
}
