// Package tree holds the parsed representation of one shell input line.
//
// A tree is a binary tree whose interior nodes are control operators and
// whose leaves are simple commands. Nodes exclusively own their children: a
// tree is built bottom-up by the parser, executed once, then released.
package tree

import (
	"fmt"
)

// Kind identifies the operator or command a Node represents.
type Kind int

const (
	Empty Kind = iota
	Simple
	Sequence
	SequenceIfOk
	SequenceIfFail
	Background
	Pipe
	RedirectIn
	RedirectOut
	RedirectAppend
	RedirectErr
	RedirectErrOut
	SubShell
)

var kindNames = map[Kind]string{
	Empty:          "empty",
	Simple:         "simple",
	Sequence:       "sequence",
	SequenceIfOk:   "and",
	SequenceIfFail: "or",
	Background:     "background",
	Pipe:           "pipe",
	RedirectIn:     "redirect-in",
	RedirectOut:    "redirect-out",
	RedirectAppend: "redirect-append",
	RedirectErr:    "redirect-err",
	RedirectErrOut: "redirect-err-out",
	SubShell:       "subshell",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// IsRedirect is true for the kinds that rebind a standard stream to a file.
func (k Kind) IsRedirect() bool {
	switch k {
	case RedirectIn, RedirectOut, RedirectAppend, RedirectErr, RedirectErrOut:
		return true
	default:
		return false
	}
}

// binary is true for kinds that use both Left and Right.
func (k Kind) binary() bool {
	switch k {
	case Sequence, SequenceIfOk, SequenceIfFail, Pipe:
		return true
	default:
		return false
	}
}

// unary is true for kinds that use Left only.
func (k Kind) unary() bool {
	return k == Background || k == SubShell || k.IsRedirect()
}

// Node is a single node of a command tree. Kind determines which of Left,
// Right and Args are meaningful:
//
//   - Simple uses Args as an argument vector, Args[0] is the command name.
//   - Redirect kinds use Left and Args[0] as the target path.
//   - Background and SubShell use Left.
//   - Sequence, SequenceIfOk, SequenceIfFail and Pipe use Left and Right.
//   - Empty uses nothing.
type Node struct {
	Kind  Kind
	Left  *Node
	Right *Node
	Args  []string
}

// New builds a node from its parts without checking its shape, use Validate
// on the finished tree.
func New(kind Kind, left, right *Node, args []string) *Node {
	return &Node{
		Kind:  kind,
		Left:  left,
		Right: right,
		Args:  args,
	}
}

// NewEmpty creates an empty command.
func NewEmpty() *Node {
	return &Node{Kind: Empty}
}

// NewSimple creates a simple command, argv[0] is the command name.
func NewSimple(argv ...string) *Node {
	return &Node{Kind: Simple, Args: append([]string(nil), argv...)}
}

// NewSequence creates `left ; right`.
func NewSequence(left, right *Node) *Node {
	return &Node{Kind: Sequence, Left: left, Right: right}
}

// NewAnd creates `left && right`.
func NewAnd(left, right *Node) *Node {
	return &Node{Kind: SequenceIfOk, Left: left, Right: right}
}

// NewOr creates `left || right`.
func NewOr(left, right *Node) *Node {
	return &Node{Kind: SequenceIfFail, Left: left, Right: right}
}

// NewPipe creates `left | right`.
func NewPipe(left, right *Node) *Node {
	return &Node{Kind: Pipe, Left: left, Right: right}
}

// NewBackground creates `left &`.
func NewBackground(left *Node) *Node {
	return &Node{Kind: Background, Left: left}
}

// NewSubShell creates `( left )`.
func NewSubShell(left *Node) *Node {
	return &Node{Kind: SubShell, Left: left}
}

// NewRedirect wraps left in a redirection of the given kind to path.
func NewRedirect(kind Kind, path string, left *Node) *Node {
	return &Node{Kind: kind, Left: left, Args: []string{path}}
}

// Path returns the redirection target of a redirect node.
func (n *Node) Path() string {
	if len(n.Args) == 0 {
		return ""
	}
	return n.Args[0]
}

// Clone returns a deep copy of the tree rooted at n that shares nothing with
// it.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	out := &Node{Kind: n.Kind, Left: n.Left.Clone(), Right: n.Right.Clone()}
	if n.Args != nil {
		out.Args = append([]string(nil), n.Args...)
	}
	return out
}

// Walk visits every node of the tree rooted at n in post-order.
func (n *Node) Walk(visit func(*Node)) {
	if n == nil {
		return
	}
	n.Left.Walk(visit)
	n.Right.Walk(visit)
	visit(n)
}

// Release tears the tree down post-order, dropping every child link and
// argument so nothing stays reachable through the root. It returns the
// number of nodes released. A tree must be released at most once.
func (n *Node) Release() int {
	released := 0
	n.Walk(func(node *Node) {
		for i := range node.Args {
			node.Args[i] = ""
		}
		node.Args = nil
		node.Left = nil
		node.Right = nil
		released++
	})
	return released
}
