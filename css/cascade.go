package css

import (
	"sort"

	"github.com/parchment-engine/parchment/html"
)

// InheritedProperties lists the properties that pass from parent to
// child, with the default used at the tree root. Every element's style
// map is guaranteed to contain these keys after Resolve.
var InheritedProperties = map[string]string{
	"font-size":   "16px",
	"font-style":  "normal",
	"font-weight": "normal",
	"color":       "black",
}

// Resolve computes the style map of every node in the tree, in place.
// Per element, three layers apply, highest priority first: the
// element's own style attribute, matched rules ordered by specificity
// then source order, and inherited values. Text nodes alias their
// parent's style map rather than copying it.
func Resolve(root *html.Node, rules []Rule) {
	sorted := sortByPrecedence(rules)
	resolveNode(root, sorted)
}

// sortByPrecedence orders rules so that a simple first-assignment-wins
// walk applies the cascade: higher specificity first, and among equal
// specificity the later-declared rule first, so later source order
// wins ties.
func sortByPrecedence(rules []Rule) []Rule {
	type indexed struct {
		rule  Rule
		order int
	}
	tmp := make([]indexed, len(rules))
	for i, r := range rules {
		tmp[i] = indexed{rule: r, order: i}
	}
	sort.SliceStable(tmp, func(i, j int) bool {
		si, sj := tmp[i].rule.Selector.Specificity(), tmp[j].rule.Selector.Specificity()
		if si != sj {
			return si > sj
		}
		return tmp[i].order > tmp[j].order
	})
	sorted := make([]Rule, len(tmp))
	for i, t := range tmp {
		sorted[i] = t.rule
	}
	return sorted
}

func resolveNode(n *html.Node, sorted []Rule) {
	if n.Type == html.TextNode {
		if n.Parent != nil {
			n.Style = n.Parent.Style
		} else {
			n.Style = make(map[string]string)
		}
		return
	}

	style := make(map[string]string)

	// Layer 1: the element's own explicit declarations. These are
	// assigned first and never overwritten below.
	if attr := n.GetAttribute("style"); attr != "" {
		for prop, val := range ParseDeclarations(attr) {
			style[prop] = val
		}
	}

	// Layer 2: matched rules, in precedence order.
	for _, rule := range sorted {
		if !rule.Selector.Matches(n) {
			continue
		}
		for prop, val := range rule.Declarations {
			if _, ok := style[prop]; !ok {
				style[prop] = val
			}
		}
	}

	// Layer 3: inheritance, or the root default.
	for prop, def := range InheritedProperties {
		if _, ok := style[prop]; ok {
			continue
		}
		if n.Parent != nil {
			style[prop] = n.Parent.Style[prop]
		} else {
			style[prop] = def
		}
	}

	n.Style = style
	for _, c := range n.Children {
		resolveNode(c, sorted)
	}
}
