// Package html provides a fault-tolerant HTML tree builder. Any byte
// sequence parses into a well-formed tree; structural errors in the
// source (missing boilerplate, unmatched close tags, malformed
// attributes) are repaired rather than reported.
package html

import "strings"

// NodeType represents the type of a node in the document tree.
type NodeType int

const (
	ElementNode NodeType = iota
	TextNode
)

// Node represents a node in the document tree. Element nodes carry a
// tag name and attributes; text nodes carry literal text. The tree
// owns its children through the Children slice; Parent is a non-owning
// back-reference used only for upward queries.
type Node struct {
	Type       NodeType
	Tag        string            // lower-cased tag name, elements only
	Attributes map[string]string // elements only
	Text       string            // text nodes only

	// Style is the computed style map, populated by the cascade
	// resolver. A text node shares its parent's map by reference.
	Style map[string]string

	Parent   *Node
	Children []*Node
}

// NewElement creates a detached element node.
func NewElement(tag string, attrs map[string]string) *Node {
	if attrs == nil {
		attrs = make(map[string]string)
	}
	return &Node{
		Type:       ElementNode,
		Tag:        tag,
		Attributes: attrs,
	}
}

// NewText creates a detached text node.
func NewText(text string) *Node {
	return &Node{Type: TextNode, Text: text}
}

// AppendChild adds a child node to the end of this node's children.
func (n *Node) AppendChild(c *Node) {
	c.Parent = n
	n.Children = append(n.Children, c)
}

// GetAttribute returns the value of the named attribute, or the empty
// string if the attribute is absent.
func (n *Node) GetAttribute(key string) string {
	return n.Attributes[key]
}

// HasAttribute reports whether the node has the named attribute.
func (n *Node) HasAttribute(key string) bool {
	_, ok := n.Attributes[key]
	return ok
}

// HasClass reports whether the node's class attribute contains the
// given class name as a whitespace-separated entry.
func (n *Node) HasClass(name string) bool {
	for _, c := range strings.Fields(n.GetAttribute("class")) {
		if c == name {
			return true
		}
	}
	return false
}

// TextContent returns the concatenated text of the node and its
// descendants.
func (n *Node) TextContent() string {
	var sb strings.Builder
	n.collectTextContent(&sb)
	return sb.String()
}

func (n *Node) collectTextContent(sb *strings.Builder) {
	if n.Type == TextNode {
		sb.WriteString(n.Text)
		return
	}
	for _, c := range n.Children {
		c.collectTextContent(sb)
	}
}

// Walk calls fn for the node and every descendant in tree order.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// String renders the subtree as markup-like text, for debugging and
// test failure messages.
func (n *Node) String() string {
	var sb strings.Builder
	n.write(&sb)
	return sb.String()
}

func (n *Node) write(sb *strings.Builder) {
	if n.Type == TextNode {
		sb.WriteString(n.Text)
		return
	}
	sb.WriteByte('<')
	sb.WriteString(n.Tag)
	sb.WriteByte('>')
	for _, c := range n.Children {
		c.write(sb)
	}
	sb.WriteString("</")
	sb.WriteString(n.Tag)
	sb.WriteByte('>')
}
