// Package engine wires the pipeline together: markup to tree, tree
// plus stylesheets to styled tree, styled tree to layout tree and
// display list. A pass is single-threaded and synchronous; any
// mutation of the source tree is handled by discarding the previous
// layout and rerunning the whole pipeline through Relayout.
package engine

import (
	"strings"

	"go.uber.org/zap"

	"github.com/parchment-engine/parchment/css"
	"github.com/parchment-engine/parchment/html"
	"github.com/parchment-engine/parchment/layout"
	"github.com/parchment-engine/parchment/render"
	"github.com/parchment-engine/parchment/text"
)

// Options configures an Engine.
type Options struct {
	// Width is the viewport width in pixels. Zero means 800.
	Width float64
	// ExtraCSS holds additional stylesheet sources, applied after the
	// browser defaults and before the document's own style elements.
	ExtraCSS []string
	// Logger receives pipeline diagnostics. Nil means no logging.
	Logger *zap.Logger
}

// Engine runs the render pipeline for one document at a time.
type Engine struct {
	width    float64
	extra    []css.Rule
	measurer *text.Measurer
	log      *zap.Logger

	// rules is the full cascade input for the current document:
	// defaults, extra sheets, then document style elements.
	rules []css.Rule
}

// Result is the output of a pipeline pass.
type Result struct {
	Root        *html.Node
	Layout      *layout.Box
	DisplayList []render.Command
}

// New creates an engine. The only failure mode is the embedded fonts
// failing to parse, which indicates a broken build.
func New(opts Options) (*Engine, error) {
	m, err := text.NewMeasurer()
	if err != nil {
		return nil, err
	}
	width := opts.Width
	if width <= 0 {
		width = 800
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	var extra []css.Rule
	for _, src := range opts.ExtraCSS {
		extra = append(extra, css.Parse(src)...)
	}
	return &Engine{
		width:    width,
		extra:    extra,
		measurer: m,
		log:      log,
	}, nil
}

// Load parses markup, gathers its stylesheets, and runs a full
// pipeline pass. It never fails: malformed markup and styles degrade
// gracefully inside their parsers.
func (e *Engine) Load(markup string) *Result {
	root := html.Parse(markup)

	rules := css.DefaultRules()
	rules = append(rules, e.extra...)
	for _, sheet := range styleElementText(root) {
		rules = append(rules, css.Parse(sheet)...)
	}
	e.rules = rules
	e.log.Debug("document loaded",
		zap.Int("rules", len(rules)))

	layoutTree, displayList := e.Relayout(root)
	return &Result{Root: root, Layout: layoutTree, DisplayList: displayList}
}

// Relayout reruns the cascade, layout, and display list production
// for a tree whose content or styles may have changed. The previous
// layout tree is discarded wholesale; there is no incremental path.
func (e *Engine) Relayout(root *html.Node) (*layout.Box, []render.Command) {
	rules := e.rules
	if rules == nil {
		rules = css.DefaultRules()
	}
	css.Resolve(root, rules)

	tree := layout.BuildTree(root)
	tree.Layout(e.measurer, e.width)
	list := render.Paint(tree)

	e.log.Debug("relayout complete",
		zap.Float64("height", tree.Height),
		zap.Int("commands", len(list)))
	return tree, list
}

// styleElementText collects the text content of every <style> element
// in document order.
func styleElementText(root *html.Node) []string {
	var sheets []string
	root.Walk(func(n *html.Node) {
		if n.Type == html.ElementNode && n.Tag == "style" {
			if text := strings.TrimSpace(n.TextContent()); text != "" {
				sheets = append(sheets, text)
			}
		}
	})
	return sheets
}
