package nodeutil

import (
	"github.com/NickyBoy89/solpact/solast"
)

// RequireName returns the name of a node, or a `MalformedInput` error if the
// node was never given one
func RequireName(node solast.Node, name *string) (string, error) {
	if name == nil || *name == "" {
		return "", Malformed(node, "%s without a name found", node.NodeType())
	}
	return *name, nil
}
