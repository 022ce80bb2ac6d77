// Package surface renders a post into an in-memory node tree shaped like the
// DOM an editor would build, and maps that tree back to the post.
package surface

import (
	"strings"

	"github.com/iw2rmb/postcursor/internal/grapheme"
	"github.com/iw2rmb/postcursor/resolve"
)

// NodeType distinguishes elements from text nodes.
type NodeType uint8

const (
	ElementNode NodeType = iota
	TextNode
)

// Node is one element or text node of a rendered tree.
type Node struct {
	Type NodeType
	// Tag is the element name; empty for text nodes.
	Tag string
	// Class marks structural roles: "atom", "card", "card-content", "edge".
	Class string
	// Text is the content of a text node.
	Text string
	// Markups carries the marker's markup tags on its text node.
	Markups []string

	parent   *Node
	children []*Node
}

func newElement(tag, class string) *Node { return &Node{Type: ElementNode, Tag: tag, Class: class} }

func newText(text string) *Node { return &Node{Type: TextNode, Text: text} }

func (n *Node) append(children ...*Node) *Node {
	for _, c := range children {
		c.parent = n
		n.children = append(n.children, c)
	}
	return n
}

// Parent implements resolve.Node. The root reports a nil interface.
func (n *Node) Parent() resolve.Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

// ChildNodes implements resolve.Node.
func (n *Node) ChildNodes() []resolve.Node {
	out := make([]resolve.Node, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

func (n *Node) Children() []*Node { return n.children }

func (n *Node) ParentNode() *Node { return n.parent }

func (n *Node) IsText() bool { return n.Type == TextNode }

// Len is the node's own offset range: UTF-16 units for a text node, the
// child count for an element.
func (n *Node) Len() int {
	if n.IsText() {
		return grapheme.UTF16Len(n.Text)
	}
	return len(n.children)
}

// IndexInParent returns the node's child index, or -1 for the root.
func (n *Node) IndexInParent() int {
	if n.parent == nil {
		return -1
	}
	for i, c := range n.parent.children {
		if c == n {
			return i
		}
	}
	return -1
}

// TextContent concatenates all text below n.
func (n *Node) TextContent() string {
	if n.IsText() {
		return n.Text
	}
	var b strings.Builder
	for _, c := range n.children {
		b.WriteString(c.TextContent())
	}
	return b.String()
}

func (n *Node) String() string {
	if n.IsText() {
		return "#text"
	}
	if n.Class != "" {
		return n.Tag + "." + n.Class
	}
	return n.Tag
}
