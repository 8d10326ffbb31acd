package vos

import (
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// Streams holds the current binding of the three standard streams.
//
// Streams is passed by value: rebinding a stream produces a new value for
// the subtree that needs it and the caller's binding is left untouched, so
// leaving a scope restores the previous binding without any bookkeeping.
type Streams struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewStreams creates a binding, nil streams are bound to a null device.
func NewStreams(stdin io.Reader, stdout, stderr io.Writer) Streams {
	return Streams{
		Stdin:  readerOrNull(stdin),
		Stdout: writerOrDiscard(stdout),
		Stderr: writerOrDiscard(stderr),
	}
}

// OSStreams binds to the process's own standard streams.
func OSStreams() Streams {
	return NewStreams(os.Stdin, os.Stdout, os.Stderr)
}

// NewNullStreams creates a valid /dev/null style binding, reads hit EOF and
// writes are discarded.
func NewNullStreams() Streams {
	return NewStreams(nil, nil, nil)
}

// WithStdin returns a copy of s with standard input rebound to r.
func (s Streams) WithStdin(r io.Reader) Streams {
	s.Stdin = readerOrNull(r)
	return s
}

// WithStdout returns a copy of s with standard output rebound to w.
func (s Streams) WithStdout(w io.Writer) Streams {
	s.Stdout = writerOrDiscard(w)
	return s
}

// WithStderr returns a copy of s with standard error rebound to w.
func (s Streams) WithStderr(w io.Writer) Streams {
	s.Stderr = writerOrDiscard(w)
	return s
}

// Dup returns a copy of s where every stream bound to an *os.File refers to
// a new descriptor for the same open file, like the streams a forked child
// inherits. Call release once the copy is no longer used to close the new
// descriptors; other bindings are shared as they are.
func (s Streams) Dup() (dup Streams, release func() error, err error) {
	files := make(map[*os.File]*os.File)
	release = func() error {
		var firstErr error
		for _, f := range files {
			if err := f.Close(); err != nil && firstErr == nil {
				firstErr = err
			}
		}
		return firstErr
	}

	dupOf := func(f *os.File) (*os.File, error) {
		if d, ok := files[f]; ok {
			return d, nil
		}
		d, err := dupFile(f)
		if err != nil {
			return nil, err
		}
		files[f] = d
		return d, nil
	}

	dup = s
	if f, ok := s.Stdin.(*os.File); ok {
		if dup.Stdin, err = dupOf(f); err != nil {
			release()
			return Streams{}, nil, err
		}
	}
	if f, ok := s.Stdout.(*os.File); ok {
		if dup.Stdout, err = dupOf(f); err != nil {
			release()
			return Streams{}, nil, err
		}
	}
	if f, ok := s.Stderr.(*os.File); ok {
		if dup.Stderr, err = dupOf(f); err != nil {
			release()
			return Streams{}, nil, err
		}
	}

	return dup, release, nil
}

// dupFile duplicates the descriptor of f without changing its blocking mode.
func dupFile(f *os.File) (*os.File, error) {
	rc, err := f.SyscallConn()
	if err != nil {
		return nil, err
	}

	var fd int
	var dupErr error
	if err := rc.Control(func(orig uintptr) {
		fd, dupErr = unix.FcntlInt(orig, unix.F_DUPFD_CLOEXEC, 0)
	}); err != nil {
		return nil, &os.PathError{Op: "dup", Path: f.Name(), Err: err}
	}
	if dupErr != nil {
		return nil, &os.PathError{Op: "dup", Path: f.Name(), Err: dupErr}
	}

	return os.NewFile(uintptr(fd), f.Name()), nil
}

func writerOrDiscard(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}
	return w
}

func readerOrNull(r io.Reader) io.Reader {
	if r == nil {
		return nullReader{}
	}
	return r
}

// nullReader is always at end of file.
type nullReader struct{}

var _ io.Reader = nullReader{}

func (nullReader) Read([]byte) (int, error) {
	return 0, io.EOF
}
