package converter

import (
	"strings"

	"github.com/hellenic-development/figma-nocode/pkg/figma"
)

// Name substrings that mark a node as a button group regardless of its
// structure.
var buttonGroupNameHints = []string{"button group", "buttons", "btn-group", "buttongroup"}

const (
	nodeInstance     = "INSTANCE"
	layoutHorizontal = "HORIZONTAL"
)

// DetectButtonGroup reports whether a node is a button group candidate.
// Two independent signals are ORed: the node's lower-cased name contains one
// of the known hints, or the node lays out horizontally and has at least two
// direct INSTANCE children named like buttons. Nested groups are detected
// independently; overlapping subtrees are not deduplicated.
func DetectButtonGroup(n *figma.Node) bool {
	name := strings.ToLower(n.Name)
	for _, hint := range buttonGroupNameHints {
		if strings.Contains(name, hint) {
			return true
		}
	}

	// Structural signal. The layout mode match is exact, not lower-cased.
	if n.LayoutMode != layoutHorizontal {
		return false
	}
	buttonChildren := 0
	for i := range n.Children {
		child := &n.Children[i]
		if child.Type == nodeInstance && strings.Contains(strings.ToLower(child.Name), "button") {
			buttonChildren++
		}
	}
	return buttonChildren >= 2
}
