package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/josephlewis42/minishell/core/config"
	"github.com/josephlewis42/minishell/core/logger"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// playgroundCmd runs the shell in a scratch directory for testing
var playgroundCmd = &cobra.Command{
	Use:   "playground",
	Short: "Run the shell in a temporary directory with debug logging.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		dir, err := os.MkdirTemp("", "playground")
		if err != nil {
			return err
		}
		defer os.RemoveAll(dir)

		setupLog, err := logger.New("info", cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		if _, err := config.Initialize(afero.NewOsFs(), dir, setupLog); err != nil {
			return err
		}

		cfg, err := config.Load(afero.NewOsFs(), dir)
		if err != nil {
			return err
		}
		cfg.LogLevel = "debug"
		// Make the scratch shell easy to tell apart from a real one.
		cfg.Prompt = "[%d] playground > "

		sh, log, err := newShell(cmd, cfg, dir)
		if err != nil {
			return err
		}
		defer log.Sync()

		fmt.Fprintf(cmd.ErrOrStderr(), "Working in: file://%s\n", dir)
		fmt.Fprintln(cmd.ErrOrStderr(), strings.Repeat("=", 80))

		status, err := runInput(cmd, sh)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exit code: %d\n", status)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(playgroundCmd)
}
