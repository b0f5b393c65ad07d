package markup

import (
	"strings"
	"unicode/utf8"
)

// Kind identifies what a Node represents.
type Kind uint8

const (
	KindRoot Kind = iota
	KindElement
	KindText
)

// Node is one node of a rendered content tree.
type Node struct {
	Kind     Kind
	Tag      string
	Classes  []string
	Children []*Node

	// Text is set for text nodes only.
	Text string

	runes int
}

// Root returns a container node holding children.
func Root(children ...*Node) *Node {
	return &Node{Kind: KindRoot, Tag: "div", Children: compact(children)}
}

// Element returns an element node.
func Element(tag string, classes []string, children ...*Node) *Node {
	return &Node{
		Kind:     KindElement,
		Tag:      tag,
		Classes:  append([]string(nil), classes...),
		Children: compact(children),
	}
}

// TextNode returns a text node holding s.
func TextNode(s string) *Node {
	return &Node{Kind: KindText, Text: s, runes: utf8.RuneCountInString(s)}
}

// FromText builds the tree used for unhighlighted content: a root with a single
// text node, or an empty root when s is empty.
func FromText(s string) *Node {
	if s == "" {
		return Root()
	}
	return Root(TextNode(s))
}

func (n *Node) IsText() bool { return n != nil && n.Kind == KindText }

// Len returns the rune length of a text node, and 0 for any other node.
func (n *Node) Len() int {
	if !n.IsText() {
		return 0
	}
	return n.runes
}

// Walk visits root and its descendants in document order. Returning false from
// fn stops the walk.
func Walk(root *Node, fn func(n *Node) bool) {
	walk(root, fn)
}

func walk(n *Node, fn func(n *Node) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n) {
		return false
	}
	for _, c := range n.Children {
		if !walk(c, fn) {
			return false
		}
	}
	return true
}

// TextNodes returns the text nodes under root in document order.
func TextNodes(root *Node) []*Node {
	var out []*Node
	Walk(root, func(n *Node) bool {
		if n.IsText() {
			out = append(out, n)
		}
		return true
	})
	return out
}

// Text returns the concatenated text content of root.
func Text(root *Node) string {
	var sb strings.Builder
	Walk(root, func(n *Node) bool {
		if n.IsText() {
			sb.WriteString(n.Text)
		}
		return true
	})
	return sb.String()
}

// TextLen returns the rune length of Text(root).
func TextLen(root *Node) int {
	total := 0
	Walk(root, func(n *Node) bool {
		total += n.Len()
		return true
	})
	return total
}

// Contains reports whether target is root or one of its descendants.
func Contains(root, target *Node) bool {
	if root == nil || target == nil {
		return false
	}
	found := false
	Walk(root, func(n *Node) bool {
		if n == target {
			found = true
			return false
		}
		return true
	})
	return found
}

func compact(nodes []*Node) []*Node {
	if len(nodes) == 0 {
		return nil
	}
	out := make([]*Node, 0, len(nodes))
	for _, n := range nodes {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}
