package engine

import (
	"context"
	"os"

	"github.com/josephlewis42/minishell/core/tree"
	"github.com/josephlewis42/minishell/core/vos"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const redirectPerm = 0664

var redirectFlags = map[tree.Kind]int{
	tree.RedirectIn:     os.O_RDONLY,
	tree.RedirectOut:    os.O_CREATE | os.O_TRUNC | os.O_WRONLY,
	tree.RedirectAppend: os.O_CREATE | os.O_APPEND | os.O_WRONLY,
	tree.RedirectErr:    os.O_CREATE | os.O_TRUNC | os.O_WRONLY,
	tree.RedirectErrOut: os.O_CREATE | os.O_TRUNC | os.O_WRONLY,
}

// redirect evaluates the operand of n with one or two streams bound to the
// target file. The binding only exists on the copy of the process handed to
// the operand, the caller's streams are never touched.
func (r *Runner) redirect(ctx context.Context, sc *scope, proc *vos.Process, n *tree.Node) int {
	target := n.Path()
	fd, err := proc.Fs().OpenFile(proc.Resolve(target), redirectFlags[n.Kind], redirectPerm)
	if err != nil {
		diagnose(proc.Stderr, target, describe(err))
		r.log.Debug("redirect failed",
			zap.Stringer("kind", n.Kind),
			zap.String("path", target),
			zap.Error(err))
		return 1
	}
	defer fd.Close()

	streams := proc.Streams
	switch n.Kind {
	case tree.RedirectIn:
		streams = streams.WithStdin(fd)
	case tree.RedirectOut, tree.RedirectAppend:
		streams = streams.WithStdout(fd)
	case tree.RedirectErr:
		streams = streams.WithStderr(fd)
	case tree.RedirectErrOut:
		streams = streams.WithStdout(fd).WithStderr(fd)
	}

	return r.eval(ctx, sc, proc.WithStreams(streams), n.Left)
}

// pipe connects the output of left to the input of right.
//
// Both stages run at the same time so a writer is never stuck on a full pipe
// waiting for a reader that hasn't started. The left stage gets its own copy
// of the process, the right stage runs in the calling shell and its status is
// the status of the pipeline.
func (r *Runner) pipe(ctx context.Context, sc *scope, proc *vos.Process, left, right *tree.Node) int {
	pr, pw, err := os.Pipe()
	if err != nil {
		diagnose(proc.Stderr, "pipe", describe(err))
		r.log.Debug("pipe failed", zap.Error(err))
		return 1
	}

	writer := proc.Clone()
	writer = writer.WithStreams(writer.Streams.WithStdout(pw))
	reader := proc.WithStreams(proc.Streams.WithStdin(pr))
	writerScope := sc.child()

	var g errgroup.Group
	g.Go(func() error {
		// The reader sees EOF once the write end is closed.
		defer pw.Close()
		r.eval(ctx, writerScope, writer, left)
		return nil
	})

	status := r.eval(ctx, sc, reader, right)

	// Unblocks a writer whose reader exited early.
	pr.Close()
	_ = g.Wait()

	return status
}
