package tree

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

var printLabels = map[Kind]string{
	Empty:          "<empty>",
	Simple:         "Command",
	Sequence:       "Sequence",
	SequenceIfOk:   "If success",
	SequenceIfFail: "If failure",
	Background:     "Background",
	Pipe:           "Pipe",
	RedirectIn:     "Stdin from",
	RedirectOut:    "Stdout to",
	RedirectAppend: "Stdout (append) to",
	RedirectErr:    "Stderr to",
	RedirectErrOut: "Stdout and stderr to",
	SubShell:       "Subshell",
}

// Fprint writes an indented rendering of the tree to w, one node per line.
//
//	Sequence
//	|-- Command [false]
//	`-- Stdout to [out.txt]
//	    `-- Command [echo] [hi]
func Fprint(w io.Writer, root *Node) error {
	buf := &bytes.Buffer{}
	printNode(buf, root, "", "")
	_, err := w.Write(buf.Bytes())
	return err
}

// String renders the tree the same way as Fprint.
func (n *Node) String() string {
	buf := &bytes.Buffer{}
	printNode(buf, n, "", "")
	return buf.String()
}

func printNode(buf *bytes.Buffer, n *Node, lead, childLead string) {
	if n == nil {
		return
	}

	buf.WriteString(lead)
	label, ok := printLabels[n.Kind]
	if !ok {
		label = n.Kind.String()
	}
	buf.WriteString(label)
	switch {
	case n.Kind == Simple, n.Kind.IsRedirect():
		for _, arg := range n.Args {
			fmt.Fprintf(buf, " [%s]", arg)
		}
	}
	buf.WriteByte('\n')

	var children []*Node
	for _, child := range []*Node{n.Left, n.Right} {
		if child != nil {
			children = append(children, child)
		}
	}

	for i, child := range children {
		if i == len(children)-1 {
			printNode(buf, child, childLead+"`-- ", childLead+strings.Repeat(" ", 4))
		} else {
			printNode(buf, child, childLead+"|-- ", childLead+"|   ")
		}
	}
}
