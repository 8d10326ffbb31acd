// Package vos models the parts of the operating system a shell evaluation
// sees: its standard stream bindings, working directory and environment.
package vos

import (
	"io/fs"
	"path/filepath"
	"sync"
	"syscall"

	"github.com/spf13/afero"
)

// Process is the execution context one subtree is evaluated against.
//
// Stream bindings belong to the Process value, the working directory and
// environment are shared by every Process derived with the With* methods and
// copied by Clone.
type Process struct {
	Streams

	fs    afero.Fs
	state *procState
}

type procState struct {
	mu  sync.RWMutex
	dir string
	env *MapEnv
}

// NewProcess creates a process rooted in dir with a copy of environ.
func NewProcess(fs afero.Fs, streams Streams, dir string, environ EnvironFetcher) *Process {
	env := NewMapEnv()
	if environ != nil {
		CopyEnv(env, environ.Environ())
	}

	return &Process{
		Streams: streams,
		fs:      fs,
		state: &procState{
			dir: filepath.Clean(dir),
			env: env,
		},
	}
}

// Fs is the filesystem redirections and path lookups go through.
func (p *Process) Fs() afero.Fs {
	return p.fs
}

// Env is the environment passed to spawned programs.
func (p *Process) Env() *MapEnv {
	return p.state.env
}

// Getwd returns the working directory.
func (p *Process) Getwd() string {
	p.state.mu.RLock()
	defer p.state.mu.RUnlock()
	return p.state.dir
}

// Resolve makes path absolute relative to the working directory.
func (p *Process) Resolve(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(p.Getwd(), path)
}

// Chdir changes the working directory of this process and every process
// sharing its state. PWD follows the change.
func (p *Process) Chdir(path string) error {
	dir := p.Resolve(path)
	info, err := p.fs.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return &fs.PathError{Op: "chdir", Path: path, Err: syscall.ENOTDIR}
	}

	p.state.mu.Lock()
	p.state.dir = dir
	p.state.mu.Unlock()

	p.state.env.Setenv("PWD", dir)
	return nil
}

// WithStreams returns a process sharing p's state but bound to streams.
func (p *Process) WithStreams(streams Streams) *Process {
	out := *p
	out.Streams = streams
	return &out
}

// Clone returns a process with its own copy of the working directory and
// environment, changes made through it don't escape to p.
func (p *Process) Clone() *Process {
	p.state.mu.RLock()
	dir := p.state.dir
	p.state.mu.RUnlock()

	return &Process{
		Streams: p.Streams,
		fs:      p.fs,
		state: &procState{
			dir: dir,
			env: p.state.env.Clone(),
		},
	}
}
