package tree

import (
	"fmt"
)

// InvariantError is returned by Validate for a tree a conforming parser could
// not have produced.
type InvariantError struct {
	Node   *Node
	Reason string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("malformed %s node: %s", e.Node.Kind, e.Reason)
}

// Validate checks that every node of the tree has the shape its kind
// requires and that no node is reachable twice.
func Validate(root *Node) error {
	if root == nil {
		return &InvariantError{Node: &Node{Kind: Empty}, Reason: "nil root"}
	}
	seen := make(map[*Node]bool)
	return validate(root, seen)
}

func validate(n *Node, seen map[*Node]bool) error {
	if seen[n] {
		return &InvariantError{Node: n, Reason: "node has more than one parent"}
	}
	seen[n] = true

	fail := func(format string, a ...interface{}) error {
		return &InvariantError{Node: n, Reason: fmt.Sprintf(format, a...)}
	}

	switch {
	case n.Kind == Empty:
		if n.Left != nil || n.Right != nil || len(n.Args) != 0 {
			return fail("empty command carries children or arguments")
		}
		return nil

	case n.Kind == Simple:
		if n.Left != nil || n.Right != nil {
			return fail("simple command has children")
		}
		if len(n.Args) == 0 {
			return fail("missing command name")
		}
		if n.Args[0] == "" {
			return fail("blank command name")
		}
		return nil

	case n.Kind.binary():
		if n.Left == nil || n.Right == nil {
			return fail("needs two operands")
		}
		if len(n.Args) != 0 {
			return fail("operator carries arguments")
		}
		if err := validate(n.Left, seen); err != nil {
			return err
		}
		return validate(n.Right, seen)

	case n.Kind.unary():
		if n.Left == nil {
			return fail("missing operand")
		}
		if n.Right != nil {
			return fail("unexpected right operand")
		}
		if n.Kind.IsRedirect() {
			if len(n.Args) != 1 || n.Args[0] == "" {
				return fail("redirection needs exactly one target path, got %q", n.Args)
			}
		} else if len(n.Args) != 0 {
			return fail("operator carries arguments")
		}
		return validate(n.Left, seen)

	default:
		return fail("unknown kind")
	}
}
