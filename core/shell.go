package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/josephlewis42/minishell/commands"
	"github.com/josephlewis42/minishell/core/config"
	"github.com/josephlewis42/minishell/core/engine"
	"github.com/josephlewis42/minishell/core/parser"
	"github.com/josephlewis42/minishell/core/vos"
	"go.uber.org/zap"
)

const (
	EnvPath = "PATH"
)

// Shell reads lines, parses them and runs them one at a time.
type Shell struct {
	Runner  *engine.Runner
	Process *vos.Process
	Config  *config.Configuration
	History *LineHistory

	log *zap.Logger
}

// NewShell creates a shell running lines against proc with every registered
// built-in available.
func NewShell(proc *vos.Process, cfg *config.Configuration, log *zap.Logger) *Shell {
	if log == nil {
		log = zap.NewNop()
	}

	history := NewLineHistory(cfg.HistorySize)
	runner := engine.NewRunner(commands.AllBuiltins, log)
	runner.History = history

	if _, ok := proc.Env().LookupEnv(EnvPath); !ok {
		proc.Env().Setenv(EnvPath, cfg.Path)
	}

	return &Shell{
		Runner:  runner,
		Process: proc,
		Config:  cfg,
		History: history,
		log:     log,
	}
}

// Prompt renders the prompt for the next line.
func (s *Shell) Prompt() string {
	return s.Config.FormatPrompt(s.Runner.LastStatus())
}

// Run executes lines until input ends or a line asks the shell to exit. The
// returned status is the one the shell should exit with.
//
// A non-nil error means the shell can't continue: reading input failed or the
// parser produced a malformed tree.
func (s *Shell) Run(ctx context.Context, lines LineSource) (int, error) {
	for {
		if err := ctx.Err(); err != nil {
			return s.Runner.LastStatus(), err
		}

		line, err := lines.ReadLine(s.Prompt())
		switch {
		case errors.Is(err, io.EOF):
			return s.Runner.LastStatus(), nil // Input closed, quit.

		case errors.Is(err, ErrInterrupt):
			continue

		case err != nil:
			return s.Runner.LastStatus(), fmt.Errorf("reading input: %w", err)
		}

		status, err := s.RunLine(ctx, line)
		var exitErr *engine.ExitError
		switch {
		case errors.As(err, &exitErr):
			return exitErr.Code, nil
		case err != nil:
			return status, err
		}
	}
}

// RunLine parses and executes a single line.
//
// Syntax errors are reported on the shell's stderr and leave the last status
// unchanged. The error is an *engine.ExitError if the line ran exit.
func (s *Shell) RunLine(ctx context.Context, line string) (int, error) {
	if strings.TrimSpace(line) != "" {
		s.History.Add(line)
	}

	root, err := parser.Parse(line)
	if err != nil {
		fmt.Fprintf(s.Process.Stderr, "minishell: syntax error: %v\n", err)
		s.log.Debug("syntax error", zap.String("line", line), zap.Error(err))
		return s.Runner.LastStatus(), nil
	}
	defer root.Release()

	return s.Runner.Execute(ctx, s.Process, root)
}

// IgnoreInterrupts keeps the shell alive while the terminal delivers SIGINT
// to a foreground program. Programs the shell starts keep the default
// behavior. Call the returned function to restore it for the shell.
func IgnoreInterrupts() (stop func()) {
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)

	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-interrupts:
			case <-done:
				return
			}
		}
	}()

	return func() {
		signal.Stop(interrupts)
		close(done)
	}
}
