package nodeutil

import (
	"fmt"
	"strings"

	"github.com/NickyBoy89/solpact/solast"
	"github.com/pkg/errors"
)

// ErrorKind classifies why a node could not be transpiled
type ErrorKind int

const (
	// MalformedInput means a field the AST should always carry is missing,
	// such as the name of a function
	MalformedInput ErrorKind = iota
	// UnsupportedConstruct is valid source that has no translation yet
	UnsupportedConstruct
	// UnmappableType is an elementary type with no Compact equivalent
	UnmappableType
)

func (k ErrorKind) String() string {
	switch k {
	case MalformedInput:
		return "malformed input"
	case UnsupportedConstruct:
		return "unsupported construct"
	case UnmappableType:
		return "unmappable type"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// NodeError is the error returned for a single node that could not be
// transpiled
type NodeError struct {
	Kind ErrorKind
	// Node is the solc node type of the offending node
	Node string
	Pos  solast.Pos
	Msg  string
}

func (e *NodeError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s at %s: %s", e.Kind, e.Pos, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Malformed creates a `MalformedInput` error for the given node
func Malformed(node solast.Node, format string, args ...any) *NodeError {
	return newError(MalformedInput, node, format, args...)
}

// Unsupported creates an `UnsupportedConstruct` error for the given node
func Unsupported(node solast.Node, format string, args ...any) *NodeError {
	return newError(UnsupportedConstruct, node, format, args...)
}

// Unmappable creates an `UnmappableType` error for the given node
func Unmappable(node solast.Node, format string, args ...any) *NodeError {
	return newError(UnmappableType, node, format, args...)
}

func newError(kind ErrorKind, node solast.Node, format string, args ...any) *NodeError {
	return &NodeError{
		Kind: kind,
		Node: node.NodeType(),
		Pos:  node.NodePos(),
		Msg:  fmt.Sprintf(format, args...),
	}
}

// KindOf returns the kind of the first `NodeError` in the error's chain
func KindOf(err error) (ErrorKind, bool) {
	var nodeErr *NodeError
	if errors.As(err, &nodeErr) {
		return nodeErr.Kind, true
	}
	return 0, false
}

// Diagnostics is a list of errors collected over a whole file, at most one
// per top-level declaration
type Diagnostics []error

func (d Diagnostics) Error() string {
	messages := make([]string, len(d))
	for ind, err := range d {
		messages[ind] = err.Error()
	}
	return fmt.Sprintf("%d declaration(s) failed to transpile:\n  %s", len(d), strings.Join(messages, "\n  "))
}

// Unwrap exposes the collected errors to `errors.Is` and `errors.As`
func (d Diagnostics) Unwrap() []error {
	return d
}
