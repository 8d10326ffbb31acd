package core

import (
	"bufio"
	"errors"
	"io"
	"math"
	"sync"

	"github.com/abiosoft/readline"
)

// ErrInterrupt is returned by a LineSource when the user abandoned the line
// being edited.
var ErrInterrupt = errors.New("interrupt")

// LineSource supplies the shell with one line of input at a time.
type LineSource interface {
	// ReadLine returns the next line without its terminator. It returns
	// io.EOF once input is exhausted.
	ReadLine(prompt string) (string, error)
	Close() error
}

type readlineSource struct {
	rl *readline.Instance
}

var _ LineSource = (*readlineSource)(nil)

// NewReadlineSource creates an interactive line editor. Lines are added to
// history, clearing history also clears what the editor recalls.
func NewReadlineSource(stdin io.Reader, stdout, stderr io.Writer, history *LineHistory) (LineSource, error) {
	limit := history.Limit()
	if limit == 0 {
		limit = math.MaxInt32
	}

	cfg := &readline.Config{
		Stdin:        readline.NewCancelableStdin(stdin),
		Stdout:       stdout,
		Stderr:       stderr,
		HistoryLimit: limit,
	}
	if err := cfg.Init(); err != nil {
		return nil, err
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		return nil, err
	}

	history.OnClear(rl.ResetHistory)
	return &readlineSource{rl: rl}, nil
}

func (r *readlineSource) ReadLine(prompt string) (string, error) {
	r.rl.SetPrompt(prompt)
	line, err := r.rl.Readline()
	if err == readline.ErrInterrupt {
		return line, ErrInterrupt
	}
	return line, err
}

func (r *readlineSource) Close() error {
	return r.rl.Close()
}

type scannerSource struct {
	scanner *bufio.Scanner
}

var _ LineSource = (*scannerSource)(nil)

// NewScannerSource reads newline separated lines from r without prompting.
func NewScannerSource(r io.Reader) LineSource {
	return &scannerSource{scanner: bufio.NewScanner(r)}
}

func (s *scannerSource) ReadLine(string) (string, error) {
	if s.scanner.Scan() {
		return s.scanner.Text(), nil
	}
	if err := s.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

func (s *scannerSource) Close() error {
	return nil
}

// LineHistory is the in-memory list of lines entered in the shell. It backs
// the history built-in.
type LineHistory struct {
	mu      sync.Mutex
	limit   int
	lines   []string
	onClear []func()
}

// NewLineHistory creates a history keeping the last limit lines, a limit of
// zero keeps every line.
func NewLineHistory(limit int) *LineHistory {
	return &LineHistory{limit: limit}
}

// Limit returns the maximum number of lines kept, zero if unbounded.
func (h *LineHistory) Limit() int {
	return h.limit
}

// Add appends a line, dropping the oldest one if the history is full.
func (h *LineHistory) Add(line string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.lines = append(h.lines, line)
	if h.limit > 0 && len(h.lines) > h.limit {
		h.lines = append([]string(nil), h.lines[len(h.lines)-h.limit:]...)
	}
}

// Lines returns a copy of the history, oldest first.
func (h *LineHistory) Lines() []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	return append([]string(nil), h.lines...)
}

// Clear forgets every line.
func (h *LineHistory) Clear() {
	h.mu.Lock()
	h.lines = nil
	callbacks := h.onClear
	h.mu.Unlock()

	for _, cb := range callbacks {
		cb()
	}
}

// OnClear registers a function called after the history is cleared.
func (h *LineHistory) OnClear(cb func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.onClear = append(h.onClear, cb)
}
