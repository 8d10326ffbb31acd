// Package engine evaluates command trees.
//
// Evaluation is depth-first. Every node reports an integer status through its
// return value; failures of a single node (a missing program, a file that
// can't be opened) become a non-zero status for that subtree and never stop
// the surrounding tree from being evaluated according to its operators.
package engine

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"github.com/josephlewis42/minishell/core/tree"
	"github.com/josephlewis42/minishell/core/vos"
	"go.uber.org/zap"
)

// ExitError is returned by Execute when the line asked the shell to exit.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// Runner evaluates command trees against a process.
type Runner struct {
	// Builtins are consulted before any program is looked up.
	Builtins Registry
	// History backs the history built-in.
	History History
	// Hostname and Now back the hostname and date built-ins.
	Hostname func() (string, error)
	Now      func() time.Time

	log  *zap.Logger
	last atomic.Int64
}

// NewRunner creates a runner dispatching to builtins. A nil logger discards
// everything.
func NewRunner(builtins Registry, log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	if builtins == nil {
		builtins = Registry{}
	}

	return &Runner{
		Builtins: builtins,
		History:  noHistory{},
		Hostname: os.Hostname,
		Now:      time.Now,
		log:      log,
	}
}

// LastStatus returns the status of the last line executed.
func (r *Runner) LastStatus() int {
	return int(r.last.Load())
}

// Execute evaluates root against proc and returns its status. Every call
// starts from a status of 0.
//
// The error is non-nil only if root is malformed, in which case it is a
// *tree.InvariantError and nothing was run, or if the line requested the
// shell to exit, in which case it is an *ExitError carrying the status.
func (r *Runner) Execute(ctx context.Context, proc *vos.Process, root *tree.Node) (int, error) {
	if err := tree.Validate(root); err != nil {
		r.log.Error("refusing to run malformed tree", zap.Error(err))
		return 1, err
	}

	sc := &scope{}
	status := r.eval(ctx, sc, proc, root)
	r.last.Store(int64(status))

	if sc.exited {
		return status, &ExitError{Code: status}
	}
	return status, nil
}

func (r *Runner) eval(ctx context.Context, sc *scope, proc *vos.Process, n *tree.Node) int {
	status := r.evalNode(ctx, sc, proc, n)
	sc.last = status
	return status
}

func (r *Runner) evalNode(ctx context.Context, sc *scope, proc *vos.Process, n *tree.Node) int {
	switch n.Kind {
	case tree.Empty:
		return 0

	case tree.Simple:
		return r.simple(ctx, sc, proc, n.Args)

	case tree.Sequence:
		status := r.eval(ctx, sc, proc, n.Left)
		if sc.exited {
			return status
		}
		return r.eval(ctx, sc, proc, n.Right)

	case tree.SequenceIfOk:
		status := r.eval(ctx, sc, proc, n.Left)
		if sc.exited || status != 0 {
			return status
		}
		return r.eval(ctx, sc, proc, n.Right)

	case tree.SequenceIfFail:
		status := r.eval(ctx, sc, proc, n.Left)
		if sc.exited || status == 0 {
			return status
		}
		return r.eval(ctx, sc, proc, n.Right)

	case tree.Background:
		return r.background(ctx, sc, proc, n.Left)

	case tree.Pipe:
		return r.pipe(ctx, sc, proc, n.Left, n.Right)

	case tree.SubShell:
		// Exit and directory changes stop at the subshell boundary.
		return r.eval(ctx, sc.child(), proc.Clone(), n.Left)

	case tree.RedirectIn, tree.RedirectOut, tree.RedirectAppend, tree.RedirectErr, tree.RedirectErrOut:
		return r.redirect(ctx, sc, proc, n)
	}

	r.log.Error("unknown node kind", zap.Stringer("kind", n.Kind))
	return 1
}

func (r *Runner) simple(ctx context.Context, sc *scope, proc *vos.Process, args []string) int {
	builtin, ok := r.Builtins.Lookup(args[0])
	if !ok {
		return r.spawn(ctx, proc, args)
	}

	env := &builtinEnv{runner: r, scope: sc, proc: proc}
	status := builtin.Main(env, args)
	if sc.exited {
		status = sc.exitCode
	}

	r.log.Debug("builtin finished",
		zap.String("command", args[0]),
		zap.Bool("builtin", true),
		zap.Int("status", status))
	return status
}

// background evaluates left on its own copy of the process and tree and
// returns without waiting. Its status is never collected.
//
// Files bound to the task's streams are duplicated, so an enclosing redirect
// or pipe closing its descriptor doesn't cut the task's output off.
func (r *Runner) background(ctx context.Context, sc *scope, proc *vos.Process, left *tree.Node) int {
	streams, release, err := proc.Streams.WithStdin(nil).Dup()
	if err != nil {
		diagnose(proc.Stderr, "background", describe(err))
		r.log.Debug("background task not started", zap.Error(err))
		return 1
	}

	task := left.Clone()
	bg := proc.Clone().WithStreams(streams)

	go func() {
		status := r.eval(context.WithoutCancel(ctx), &scope{}, bg, task)
		if err := release(); err != nil {
			r.log.Debug("closing background streams", zap.Error(err))
		}
		r.log.Debug("background task finished", zap.Int("status", status))
		task.Release()
	}()

	return sc.last
}
