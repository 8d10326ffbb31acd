package engine

import (
	"io"
	"time"

	"github.com/josephlewis42/minishell/core/vos"
)

// scope tracks the shell state that doesn't survive a fork: the status seen
// by the next command and whether exit was requested.
type scope struct {
	last     int
	exited   bool
	exitCode int
}

func (sc *scope) child() *scope {
	return &scope{last: sc.last}
}

// builtinEnv is the Env handed to a built-in for one invocation.
type builtinEnv struct {
	runner *Runner
	scope  *scope
	proc   *vos.Process
}

var _ Env = (*builtinEnv)(nil)

func (e *builtinEnv) Stdin() io.Reader  { return e.proc.Stdin }
func (e *builtinEnv) Stdout() io.Writer { return e.proc.Stdout }
func (e *builtinEnv) Stderr() io.Writer { return e.proc.Stderr }

func (e *builtinEnv) Getwd() string {
	return e.proc.Getwd()
}

func (e *builtinEnv) Chdir(dir string) error {
	return e.proc.Chdir(dir)
}

func (e *builtinEnv) Getenv(key string) string {
	return e.proc.Env().Getenv(key)
}

func (e *builtinEnv) Hostname() (string, error) {
	return e.runner.Hostname()
}

func (e *builtinEnv) Now() time.Time {
	return e.runner.Now()
}

func (e *builtinEnv) History() []string {
	return e.runner.History.Lines()
}

func (e *builtinEnv) ClearHistory() {
	e.runner.History.Clear()
}

func (e *builtinEnv) LastStatus() int {
	return e.scope.last
}

func (e *builtinEnv) Exit(code int) {
	e.scope.exited = true
	e.scope.exitCode = code
}

func (e *builtinEnv) Builtins() Registry {
	return e.runner.Builtins
}
