package commands

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/josephlewis42/minishell/core/engine"
	getopt "github.com/pborman/getopt/v2"
	"golang.org/x/term"
)

// AllBuiltins holds every registered built-in.
var AllBuiltins = make(engine.Registry)

// builtin is a registered built-in with its one line description.
type builtin struct {
	short string
	main  engine.BuiltinFunc
}

func (b *builtin) Main(env engine.Env, args []string) int {
	return b.main(env, args)
}

// Short describes the built-in in one line.
func (b *builtin) Short() string {
	return b.short
}

// addBuiltin registers a built-in under name.
func addBuiltin(name, short string, main engine.BuiltinFunc) {
	if _, ok := AllBuiltins[name]; ok {
		panic(fmt.Sprintf("duplicate builtin %q", name))
	}
	AllBuiltins[name] = &builtin{short: short, main: main}
}

// Describe returns the one line description of a built-in, if it has one.
func Describe(b engine.Builtin) string {
	if d, ok := b.(interface{ Short() string }); ok {
		return d.Short()
	}
	return ""
}

type SimpleCommand struct {
	// Use holds a one line usage string
	Use string
	// Short holds a one line description of the command.
	Short string
	// ShowHelp sets whether help is displayed or not.
	// If this is non-nil when Run() is called, then the default help flag isn't
	// added.
	ShowHelp *bool
	// NeverBail skips interacting with stdout/stderr on failure and
	// always runs the callback.
	NeverBail bool

	flags *getopt.Set
}

// Flags gets the command's flag set.
func (s *SimpleCommand) Flags() *getopt.Set {
	if s.flags == nil {
		s.flags = getopt.New()
	}

	return s.flags
}

// PrintHelp writes help for the command to the given writer.
func (s *SimpleCommand) PrintHelp(w io.Writer) {
	fmt.Fprint(w, "usage: ")
	fmt.Fprintln(w, s.Use)
	fmt.Fprintln(w, s.Short)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	s.Flags().PrintOptions(w)
}

// Run parses args, args[0] being the command name. If flag parsing was
// successful the callback is called and its status returned.
func (s *SimpleCommand) Run(env engine.Env, args []string, callback func() int) int {
	opts := s.Flags()

	// Add help flag if not overridden.
	if s.ShowHelp == nil {
		s.ShowHelp = opts.BoolLong("help", 'h', "show this help and exit")
	}

	err := opts.Getopt(args, nil)
	if err != nil && !s.NeverBail {
		fmt.Fprintf(env.Stderr(), "%s: %s\n\n", args[0], err)

		s.PrintHelp(env.Stderr())
		return 1
	}

	if *s.ShowHelp {
		s.PrintHelp(env.Stdout())
		return 0
	}

	return callback()
}

// errorf writes a diagnostic prefixed with the command name.
func errorf(env engine.Env, name, format string, a ...interface{}) {
	fmt.Fprintf(env.Stderr(), "%s: %s\n", name, fmt.Sprintf(format, a...))
}

const (
	ColorAlways = "always"
	ColorAuto   = "auto"
	ColorNever  = "never"
)

// DefaultColor is the --color value used when a built-in isn't given one.
var DefaultColor = ColorAuto

var (
	ColorBoldBlue = color.New(color.FgBlue, color.Bold)
	ColorBoldRed  = color.New(color.FgRed, color.Bold)
)

type ColorPrinter struct {
	value *string
	w     io.Writer
}

// Init sets up the flag and the writer that determine the color output.
func (c *ColorPrinter) Init(flags *getopt.Set, w io.Writer) {
	c.w = w
	c.value = flags.EnumLong(
		"color",
		rune(0), // No short flag.
		[]string{ColorAlways, ColorAuto, ColorNever},
		DefaultColor,
		"colorize the output (always|auto|never)")
}

func (c *ColorPrinter) ShouldColor() bool {
	switch {
	case *c.value == ColorNever:
		return false
	case *c.value == ColorAlways:
		return true
	default:
		return isTerminal(c.w)
	}
}

func (c *ColorPrinter) Sprintf(col *color.Color, format string, a ...interface{}) string {
	if !c.ShouldColor() {
		return fmt.Sprintf(format, a...)
	}

	// Copy so forcing color on doesn't leak into other users of col.
	forced := *col
	forced.EnableColor()
	return forced.Sprintf(format, a...)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}
