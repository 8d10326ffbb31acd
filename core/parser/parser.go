// Package parser turns one line of shell syntax into a command tree.
//
// The grammar is the subset of
// https://pubs.opengroup.org/onlinepubs/9699919799/utilities/V3_chap02.html
// the engine knows how to run: simple commands, lists (; && || &), pipelines,
// sub-shells, and redirection of standard input, output and error to files.
// Words are taken literally once quoting is removed, there are no expansions.
package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/josephlewis42/minishell/core/tree"
	"mvdan.cc/sh/v3/syntax"
)

// SyntaxError is returned for input that can't be turned into a tree.
type SyntaxError struct {
	// Pos is the "line:col" position of the problem, if known.
	Pos string
	Msg string
}

func (e *SyntaxError) Error() string {
	if e.Pos == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

func unsupported(node syntax.Node, format string, a ...interface{}) error {
	return &SyntaxError{
		Pos: node.Pos().String(),
		Msg: fmt.Sprintf(format, a...),
	}
}

// Parse parses a single line of input into a tree.
//
// A blank line or a line holding only a comment becomes an Empty node.
func Parse(line string) (*tree.Node, error) {
	file, err := syntax.NewParser().Parse(strings.NewReader(line), "")
	if err != nil {
		var parseErr syntax.ParseError
		if errors.As(err, &parseErr) {
			return nil, &SyntaxError{Pos: parseErr.Pos.String(), Msg: parseErr.Text}
		}
		return nil, &SyntaxError{Msg: err.Error()}
	}

	return lowerStmts(file.Stmts)
}

// lowerStmts folds a statement list left to right into Sequence nodes.
func lowerStmts(stmts []*syntax.Stmt) (*tree.Node, error) {
	if len(stmts) == 0 {
		return tree.NewEmpty(), nil
	}

	var root *tree.Node
	for _, stmt := range stmts {
		node, err := lowerStmt(stmt)
		if err != nil {
			return nil, err
		}
		if root == nil {
			root = node
		} else {
			root = tree.NewSequence(root, node)
		}
	}
	return root, nil
}

func lowerStmt(stmt *syntax.Stmt) (*tree.Node, error) {
	if stmt.Negated {
		return nil, unsupported(stmt, "negation with ! is not supported")
	}
	if stmt.Coprocess {
		return nil, unsupported(stmt, "coprocesses are not supported")
	}

	node, err := lowerCommand(stmt.Cmd)
	if err != nil {
		return nil, err
	}

	node, err = lowerRedirects(stmt.Redirs, node)
	if err != nil {
		return nil, err
	}

	if stmt.Background {
		node = tree.NewBackground(node)
	}
	return node, nil
}

func lowerCommand(cmd syntax.Command) (*tree.Node, error) {
	switch cmd := cmd.(type) {
	case nil:
		// Redirections without a command, e.g. "> file".
		return tree.NewEmpty(), nil

	case *syntax.CallExpr:
		if len(cmd.Assigns) > 0 {
			return nil, unsupported(cmd, "variable assignment is not supported")
		}
		if len(cmd.Args) == 0 {
			return tree.NewEmpty(), nil
		}
		argv := make([]string, 0, len(cmd.Args))
		for _, word := range cmd.Args {
			arg, err := literal(word)
			if err != nil {
				return nil, err
			}
			argv = append(argv, arg)
		}
		if argv[0] == "" {
			return nil, unsupported(cmd, "empty command name")
		}
		return tree.NewSimple(argv...), nil

	case *syntax.BinaryCmd:
		left, err := lowerStmt(cmd.X)
		if err != nil {
			return nil, err
		}
		right, err := lowerStmt(cmd.Y)
		if err != nil {
			return nil, err
		}
		switch cmd.Op {
		case syntax.AndStmt:
			return tree.NewAnd(left, right), nil
		case syntax.OrStmt:
			return tree.NewOr(left, right), nil
		case syntax.Pipe:
			return tree.NewPipe(left, right), nil
		default:
			return nil, unsupported(cmd, "operator %q is not supported", cmd.Op.String())
		}

	case *syntax.Subshell:
		body, err := lowerStmts(cmd.Stmts)
		if err != nil {
			return nil, err
		}
		return tree.NewSubShell(body), nil

	case *syntax.Block:
		return lowerStmts(cmd.Stmts)

	default:
		return nil, unsupported(cmd, "%s is not supported", describe(cmd))
	}
}

// lowerRedirects wraps node in one redirect node per redirection. The first
// redirection written becomes the outermost node so the last one written is
// applied last and wins, as in POSIX shells.
func lowerRedirects(redirs []*syntax.Redirect, node *tree.Node) (*tree.Node, error) {
	type pending struct {
		kind tree.Kind
		path string
	}

	var wraps []pending
	for i := 0; i < len(redirs); i++ {
		redir := redirs[i]
		kind, err := redirectKind(redir)
		if err != nil {
			return nil, err
		}

		if kind == tree.RedirectOut && i+1 < len(redirs) && isStderrToStdout(redirs[i+1]) {
			// "> file 2>&1" shares one descriptor between both streams.
			kind = tree.RedirectErrOut
			i++
		}

		path, err := literal(redir.Word)
		if err != nil {
			return nil, err
		}
		if path == "" {
			return nil, unsupported(redir, "missing redirection target")
		}
		wraps = append(wraps, pending{kind: kind, path: path})
	}

	for i := len(wraps) - 1; i >= 0; i-- {
		node = tree.NewRedirect(wraps[i].kind, wraps[i].path, node)
	}
	return node, nil
}

func redirectKind(redir *syntax.Redirect) (tree.Kind, error) {
	fd := ""
	if redir.N != nil {
		fd = redir.N.Value
	}

	switch redir.Op {
	case syntax.RdrIn:
		if fd == "" || fd == "0" {
			return tree.RedirectIn, nil
		}
	case syntax.RdrOut, syntax.ClbOut:
		switch fd {
		case "", "1":
			return tree.RedirectOut, nil
		case "2":
			return tree.RedirectErr, nil
		}
	case syntax.AppOut:
		if fd == "" || fd == "1" {
			return tree.RedirectAppend, nil
		}
	case syntax.RdrAll:
		return tree.RedirectErrOut, nil
	case syntax.DplOut:
		// ">&file" is the csh spelling of "&>file", descriptor duplication
		// only has meaning as part of "> file 2>&1".
		if target, err := literal(redir.Word); err == nil && fd == "" && !isNumeric(target) {
			return tree.RedirectErrOut, nil
		}
	}

	return 0, unsupported(redir, "redirection %s%s is not supported", fd, redir.Op.String())
}

func isStderrToStdout(redir *syntax.Redirect) bool {
	if redir.Op != syntax.DplOut || redir.N == nil || redir.N.Value != "2" {
		return false
	}
	target, err := literal(redir.Word)
	return err == nil && target == "1"
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func describe(cmd syntax.Command) string {
	switch cmd.(type) {
	case *syntax.IfClause:
		return "if"
	case *syntax.WhileClause:
		return "while"
	case *syntax.ForClause:
		return "for"
	case *syntax.CaseClause:
		return "case"
	case *syntax.FuncDecl:
		return "function declaration"
	default:
		return fmt.Sprintf("%T", cmd)
	}
}
