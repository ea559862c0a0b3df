package selector

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/sharky-david/bevy-prototype-css/utils"
)

// IdentityFromNode derives the matchable identity of an HTML element
// from its "id" and "class" attributes.
func IdentityFromNode(node *html.Node) Identity {
	var identity Identity
	if node == nil || node.Type != html.ElementNode {
		return identity
	}
	for _, attr := range node.Attr {
		switch attr.Key {
		case "id":
			identity.ID = attr.Val
		case "class":
			// the class attribute is a set, duplicates are dropped
			for _, class := range strings.Fields(attr.Val) {
				if !utils.IsIn(identity.Classes, class) {
					identity.Classes = append(identity.Classes, class)
				}
			}
		}
	}
	return identity
}

// MatchAll returns all the element nodes under `root`, in document
// order, whose identity matches `group`.
func MatchAll(root *html.Node, group SelectorGroup) []*html.Node {
	var matched []*html.Node
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.ElementNode && group.Matches(IdentityFromNode(node)) {
			matched = append(matched, node)
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	if root != nil {
		walk(root)
	}
	return matched
}
