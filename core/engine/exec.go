package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os/exec"
	"syscall"

	"github.com/josephlewis42/minishell/core/vos"
	"go.uber.org/zap"
)

// Statuses reported when a program can't be run, following the POSIX shell
// conventions.
const (
	StatusNotExecutable = 126
	StatusNotFound      = 127
	// StatusSignalBase is added to the number of the signal that killed a
	// program.
	StatusSignalBase = 128
)

// spawn runs the program named by args[0] and waits for it.
func (r *Runner) spawn(ctx context.Context, proc *vos.Process, args []string) int {
	name := args[0]
	path, err := proc.LookPath(name)
	switch {
	case errors.Is(err, vos.ErrNotFound):
		diagnose(proc.Stderr, name, "command not found")
		r.log.Debug("command not found", zap.String("command", name))
		return StatusNotFound
	case err != nil:
		diagnose(proc.Stderr, name, describe(err))
		r.log.Debug("command not executable", zap.String("command", name), zap.Error(err))
		return StatusNotExecutable
	}

	cmd := exec.CommandContext(ctx, path)
	cmd.Args = args
	cmd.Dir = proc.Getwd()
	cmd.Env = proc.Env().Environ()
	cmd.Stdin = proc.Stdin
	cmd.Stdout = proc.Stdout
	cmd.Stderr = proc.Stderr

	err = cmd.Run()
	status, started := exitStatus(cmd, err)
	if !started {
		diagnose(proc.Stderr, name, describe(err))
		status = StatusNotExecutable
	}

	r.log.Debug("program finished",
		zap.String("command", name),
		zap.String("path", path),
		zap.Bool("builtin", false),
		zap.Int("status", status),
		zap.NamedError("error", err))
	return status
}

// exitStatus converts the result of running cmd to a status. started is
// false if the program never ran.
func exitStatus(cmd *exec.Cmd, err error) (status int, started bool) {
	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return 0, true

	case errors.As(err, &exitErr):
		if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
			return StatusSignalBase + int(ws.Signal()), true
		}
		return exitErr.ExitCode(), true

	case cmd.ProcessState != nil:
		// The program exited but copying one of its streams failed.
		return cmd.ProcessState.ExitCode(), true

	default:
		return 0, false
	}
}

func diagnose(w io.Writer, subject, msg string) {
	fmt.Fprintf(w, "minishell: %s: %s\n", subject, msg)
}

// describe drops the operation and path from err, the caller already names
// the subject.
func describe(err error) string {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err.Error()
	}
	return err.Error()
}
