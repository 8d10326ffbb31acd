package engine

import (
	"io"
	"sort"
	"time"
)

// Env is the part of the running shell a built-in may act on. Everything it
// exposes belongs to the shell itself, never to a child process.
type Env interface {
	Stdin() io.Reader
	Stdout() io.Writer
	Stderr() io.Writer

	// Getwd and Chdir act on the working directory of the evaluating shell.
	Getwd() string
	Chdir(dir string) error
	Getenv(key string) string

	Hostname() (string, error)
	Now() time.Time

	// History gives the lines entered so far, oldest first.
	History() []string
	ClearHistory()

	// LastStatus is the status of the most recently completed command.
	LastStatus() int
	// Exit asks the shell to stop once the built-in returns.
	Exit(code int)

	// Builtins is the registry the built-in was dispatched from.
	Builtins() Registry
}

// Builtin is a command the shell runs in-process.
type Builtin interface {
	Main(env Env, args []string) int
}

// BuiltinFunc adapts a function to the Builtin interface.
type BuiltinFunc func(env Env, args []string) int

// Main calls f(env, args).
func (f BuiltinFunc) Main(env Env, args []string) int {
	return f(env, args)
}

var _ Builtin = (BuiltinFunc)(nil)

// Registry maps command names to built-ins.
type Registry map[string]Builtin

// Lookup finds the built-in registered under name.
func (r Registry) Lookup(name string) (Builtin, bool) {
	b, ok := r[name]
	return b, ok && b != nil
}

// Names returns the registered names in sorted order.
func (r Registry) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// History holds the lines the user entered.
type History interface {
	Lines() []string
	Clear()
}

type noHistory struct{}

func (noHistory) Lines() []string { return nil }
func (noHistory) Clear()          {}
