// Package vostest runs built-ins against a deterministic in-memory shell.
package vostest

import (
	"bytes"
	"context"
	"errors"
	"io"
	"time"

	"github.com/josephlewis42/minishell/core/engine"
	"github.com/josephlewis42/minishell/core/tree"
	"github.com/josephlewis42/minishell/core/vos"
	"github.com/spf13/afero"
)

// Hostname is the host name reported to commands run through Cmd.
const Hostname = "vostest"

// previousCommand runs before the command under test to set the status it
// sees as the last one.
const previousCommand = "vostest-previous"

// Now is the clock commands run through Cmd see.
func Now() time.Time {
	// Go's reference timestmap with a different value in each position.
	return time.Date(2006, 1, 2, 3, 4, 5, 0, time.UTC)
}

// Cmd is similar to exec.Cmd but dispatches to a built-in through the engine.
type Cmd struct {
	// Builtin to run.
	Builtin engine.Builtin
	// Process arguments, the first argument should be the built-in name.
	Argv []string
	// Builtins registered alongside Builtin.
	Builtins engine.Registry
	// If Dir is non-empty, the shell starts in that directory, it's created
	// if needed.
	Dir string
	// Env gives the environment variables in the form returned by Environ.
	Env []string
	// History holds the lines the history built-in sees, it reflects any
	// changes made once Run returns.
	History []string
	// Fs defaults to an empty in-memory filesystem.
	Fs afero.Fs
	// LastStatus is the status of the command run before this one on the
	// same line.
	LastStatus int

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	ExitStatus int
	// Exited is set if the command asked the shell to exit.
	Exited bool
	// Process is the shell process once Run returns.
	Process *vos.Process

	Setup func(*vos.Process) error
}

// Command returns a Cmd that runs builtin as name with the given arguments.
func Command(builtin engine.Builtin, name string, arg ...string) *Cmd {
	return &Cmd{
		Builtin: builtin,
		Argv:    append([]string{name}, arg...),
	}
}

// CombinedOutput runs the command and returns stdout and stderr interleaved.
func (c *Cmd) CombinedOutput() ([]byte, error) {
	buf := &bytes.Buffer{}
	c.Stdout = buf
	c.Stderr = buf

	err := c.Run()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Run starts the command and waits for it to complete.
func (c *Cmd) Run() error {
	fs := c.Fs
	if fs == nil {
		fs = afero.NewMemMapFs()
	}
	dir := c.Dir
	if dir == "" {
		dir = "/"
	}
	if err := fs.MkdirAll(dir, 0755); err != nil {
		return err
	}

	registry := engine.Registry{}
	for name, b := range c.Builtins {
		registry[name] = b
	}
	registry[c.Argv[0]] = c.Builtin

	root := tree.NewSimple(c.Argv...)
	if c.LastStatus != 0 {
		status := c.LastStatus
		registry[previousCommand] = engine.BuiltinFunc(func(engine.Env, []string) int {
			return status
		})
		root = tree.NewSequence(tree.NewSimple(previousCommand), root)
	}
	defer root.Release()

	runner := engine.NewRunner(registry, nil)
	runner.Now = Now
	runner.Hostname = func() (string, error) { return Hostname, nil }
	runner.History = (*history)(c)

	c.Process = vos.NewProcess(fs, vos.NewStreams(c.Stdin, c.Stdout, c.Stderr), dir, vos.NewMapEnvFromEnvList(c.Env))
	if c.Setup != nil {
		if err := c.Setup(c.Process); err != nil {
			return err
		}
	}

	status, err := runner.Execute(context.Background(), c.Process, root)

	var exitErr *engine.ExitError
	switch {
	case errors.As(err, &exitErr):
		c.Exited = true
	case err != nil:
		return err
	}

	c.ExitStatus = status
	return nil
}

type history Cmd

func (h *history) Lines() []string {
	return h.History
}

func (h *history) Clear() {
	h.History = nil
}
