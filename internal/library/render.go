package library

import (
	"fmt"
	"strings"
)

const (
	indentStep = "  "

	// DefaultMaxChildren caps how many children of one category are
	// rendered into the digest; the rest collapse into an elision line.
	// Bounds prompt cost as the archive grows.
	DefaultMaxChildren = 50
)

// Render produces the compact textual digest of the library tree that is
// injected verbatim into the classification prompt. Transcript entries
// render as a single line with their stored summary and theme path;
// category folders render as a header line followed by indented children.
// The synthetic root renders no line for itself. maxChildren <= 0 means
// no cap.
func Render(tree *Node, maxChildren int) string {
	var b strings.Builder
	renderChildren(&b, tree.Children, 0, maxChildren)
	return b.String()
}

func renderChildren(b *strings.Builder, nodes []*Node, depth, maxChildren int) {
	shown := nodes
	elided := 0
	if maxChildren > 0 && len(nodes) > maxChildren {
		shown = nodes[:maxChildren]
		elided = len(nodes) - maxChildren
	}

	for _, n := range shown {
		renderNode(b, n, depth, maxChildren)
	}
	if elided > 0 {
		fmt.Fprintf(b, "%s... +%d more\n", strings.Repeat(indentStep, depth), elided)
	}
}

func renderNode(b *strings.Builder, n *Node, depth, maxChildren int) {
	indent := strings.Repeat(indentStep, depth)

	switch n.Kind {
	case TranscriptEntry:
		fmt.Fprintf(b, "%s- [transcript] %s: %s (%s)\n",
			indent, n.Name, n.Meta.Theme.Summary, themePath(n.Meta.Theme))
	default:
		fmt.Fprintf(b, "%s- [category] %s/\n", indent, n.Name)
		renderChildren(b, n.Children, depth+1, maxChildren)
	}
}

func themePath(t Theme) string {
	if t.Label == "" {
		return t.Category
	}
	return t.Category + "/" + t.Label
}
