package markup

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Parse builds a tree from highlighter markup. The markup is parsed as the
// content of a <div>, entities are decoded, and comments are dropped.
func Parse(src string) (*Node, error) {
	container := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(src), container)
	if err != nil {
		return nil, fmt.Errorf("parse markup: %w", err)
	}

	root := Root()
	for _, n := range nodes {
		if c := convert(n); c != nil {
			root.Children = append(root.Children, c)
		}
	}
	return root, nil
}

// TextContent returns the text content of an HTML fragment, such as a pasted
// <pre> element.
func TextContent(src string) (string, error) {
	root, err := Parse(src)
	if err != nil {
		return "", err
	}
	return Text(root), nil
}

func convert(n *html.Node) *Node {
	switch n.Type {
	case html.TextNode:
		return TextNode(n.Data)
	case html.ElementNode:
		el := &Node{Kind: KindElement, Tag: n.Data, Classes: classList(n)}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if cc := convert(c); cc != nil {
				el.Children = append(el.Children, cc)
			}
		}
		return el
	default:
		return nil
	}
}

func classList(n *html.Node) []string {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == "class" {
			return strings.Fields(a.Val)
		}
	}
	return nil
}
