// Package dom is the node query layer: it parses markup and answers CSS
// selector queries with element handles that expose their attributes.
package dom

import (
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// Node is a queryable element handle.
// This allows the heatmap core to be tested without real markup.
type Node interface {
	// Attr returns the named attribute and whether it was present.
	Attr(name string) (string, bool)

	// Select returns the descendants matching the CSS selector in document order.
	Select(selector string) ([]Node, error)
}

// htmlNode implements Node on top of a parsed golang.org/x/net/html tree.
type htmlNode struct {
	n *html.Node
}

var _ Node = htmlNode{} // Compile-time check

// Parse reads a full HTML document and returns its root.
func Parse(r io.Reader) (Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	return htmlNode{n: doc}, nil
}

// ParseString is a convenience wrapper around Parse.
func ParseString(s string) (Node, error) {
	return Parse(strings.NewReader(s))
}

// Wrap exposes an existing html.Node as a Node.
func Wrap(n *html.Node) Node {
	return htmlNode{n: n}
}

// Attr implements the Node interface.
func (h htmlNode) Attr(name string) (string, bool) {
	for _, a := range h.n.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// Select implements the Node interface. The receiver itself is never part of
// the result, only its descendants.
func (h htmlNode) Select(selector string) ([]Node, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid selector %q: %w", selector, err)
	}

	var out []Node
	for c := h.n.FirstChild; c != nil; c = c.NextSibling {
		for _, m := range sel.MatchAll(c) {
			out = append(out, htmlNode{n: m})
		}
	}
	return out, nil
}
