// Package css provides stylesheet parsing and cascade resolution.
// The selector grammar is deliberately small: tag, class, and id
// selectors only, with fixed specificity weights. Anything the parser
// does not understand is skipped, not rejected, so unknown rules in a
// sheet never break the rules around them.
package css

import "github.com/parchment-engine/parchment/html"

// SelectorType identifies the kind of a simple selector.
type SelectorType int

const (
	TagSelector   SelectorType = iota // p
	ClassSelector                     // .warn
	IDSelector                        // #main
)

// Selector is a simple selector: a tag name, class name, or id.
type Selector struct {
	Type  SelectorType
	Value string
}

// Specificity returns the fixed cascade weight of the selector kind.
func (s Selector) Specificity() int {
	switch s.Type {
	case IDSelector:
		return 256
	case ClassSelector:
		return 16
	default:
		return 1
	}
}

// Matches reports whether the selector matches the given element.
// Text nodes never match.
func (s Selector) Matches(n *html.Node) bool {
	if n.Type != html.ElementNode {
		return false
	}
	switch s.Type {
	case TagSelector:
		return n.Tag == s.Value
	case ClassSelector:
		return n.HasClass(s.Value)
	case IDSelector:
		return n.GetAttribute("id") == s.Value
	}
	return false
}

// String returns the selector in source form.
func (s Selector) String() string {
	switch s.Type {
	case ClassSelector:
		return "." + s.Value
	case IDSelector:
		return "#" + s.Value
	default:
		return s.Value
	}
}

// Rule pairs a selector with its declaration block.
type Rule struct {
	Selector     Selector
	Declarations map[string]string // property -> literal value
}
