package vos

import (
	"errors"
	"io/fs"
	"os/exec"
	"path/filepath"
	"strings"
)

// ErrNotFound is the error resulting if a path search failed to find an executable file.
var ErrNotFound = exec.ErrNotFound

func (p *Process) findExecutable(file string) error {
	d, err := p.fs.Stat(p.Resolve(file))
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return ErrNotFound
	case err != nil:
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0111 != 0 {
		return nil
	}
	return fs.ErrPermission
}

// LookPath searches for an executable named file in the directories named by
// the process's PATH. If file contains a slash, it is tried directly and the
// PATH is not consulted. Relative results are resolved against the working
// directory, so the returned path is always absolute.
//
// A file that exists but can't be executed yields fs.ErrPermission, a file
// that doesn't exist anywhere yields ErrNotFound.
func (p *Process) LookPath(file string) (string, error) {
	if strings.Contains(file, "/") {
		if err := p.findExecutable(file); err != nil {
			return "", err
		}
		return p.Resolve(file), nil
	}

	var firstErr error
	for _, dir := range filepath.SplitList(p.Env().Getenv("PATH")) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		path := filepath.Join(dir, file)
		err := p.findExecutable(path)
		if err == nil {
			return p.Resolve(path), nil
		}
		if firstErr == nil && !errors.Is(err, ErrNotFound) {
			firstErr = err
		}
	}

	if firstErr != nil {
		return "", firstErr
	}
	return "", ErrNotFound
}
