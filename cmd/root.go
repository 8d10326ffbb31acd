package cmd

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/josephlewis42/minishell/commands"
	"github.com/josephlewis42/minishell/core"
	"github.com/josephlewis42/minishell/core/config"
	"github.com/josephlewis42/minishell/core/logger"
	"github.com/josephlewis42/minishell/core/vos"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

var (
	cfgPath  string
	logLevel string
	command  string

	// exitCode is the status the process exits with once the root command
	// returns.
	exitCode int
)

func loadConfig() (*config.Configuration, error) {
	return config.Load(afero.NewOsFs(), cfgPath)
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "minishell",
	Short: "A small command shell",
	Long: `A small command shell supporting lists, conditionals, pipelines,
sub-shells, background tasks and redirection.

Lines are read interactively if standard input is a terminal, otherwise one
line at a time until the end of input.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		dir, err := os.Getwd()
		if err != nil {
			return err
		}

		sh, log, err := newShell(cmd, cfg, dir)
		if err != nil {
			return err
		}
		defer log.Sync()

		if cmd.Flags().Changed("command") {
			exitCode, err = runCommand(sh, command)
			return err
		}

		exitCode, err = runInput(cmd, sh)
		return err
	},
}

// newShell creates a shell in dir over the real filesystem and the command's
// standard streams.
func newShell(cmd *cobra.Command, cfg *config.Configuration, dir string) (*core.Shell, *zap.Logger, error) {
	level := cfg.LogLevel
	if logLevel != "" {
		level = logLevel
	}

	log, err := logger.New(level, cmd.ErrOrStderr())
	if err != nil {
		return nil, nil, err
	}

	commands.DefaultColor = cfg.Color
	if cfg.Color == commands.ColorNever {
		color.NoColor = true
	}

	streams := vos.NewStreams(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
	proc := vos.NewProcess(afero.NewOsFs(), streams, dir, vos.NewMapEnvFromEnvList(os.Environ()))

	return core.NewShell(proc, cfg, log), log, nil
}

// runCommand runs a single line and returns its status.
func runCommand(sh *core.Shell, line string) (int, error) {
	status, err := sh.RunLine(context.Background(), line)
	if code, ok := exitStatus(err); ok {
		return code, nil
	}
	return status, err
}

// runInput runs lines from the command's input until it ends or a line exits.
func runInput(cmd *cobra.Command, sh *core.Shell) (int, error) {
	lines, err := lineSource(cmd, sh)
	if err != nil {
		return 1, err
	}
	defer lines.Close()

	return sh.Run(context.Background(), lines)
}

// lineSource picks a line editor if input is a terminal.
func lineSource(cmd *cobra.Command, sh *core.Shell) (core.LineSource, error) {
	stdin := cmd.InOrStdin()
	if !isTerminal(stdin) {
		return core.NewScannerSource(stdin), nil
	}

	stop := core.IgnoreInterrupts()
	lines, err := core.NewReadlineSource(stdin, cmd.OutOrStdout(), cmd.ErrOrStderr(), sh.History)
	if err != nil {
		stop()
		return nil, err
	}
	return &stopOnClose{LineSource: lines, stop: stop}, nil
}

type stopOnClose struct {
	core.LineSource
	stop func()
}

func (s *stopOnClose) Close() error {
	defer s.stop()
	return s.LineSource.Close()
}

func isTerminal(r interface{}) bool {
	f, ok := r.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

func defaultConfigDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(dir, "minishell")
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
	os.Exit(exitCode)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", defaultConfigDir(), "directory holding "+config.ConfigurationName)
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug|info|warn|error), overrides the configuration")
	rootCmd.Flags().StringVarP(&command, "command", "c", "", "run a single line and exit with its status")
}
