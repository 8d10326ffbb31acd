package cmd

import (
	"github.com/josephlewis42/minishell/core/config"
	"github.com/josephlewis42/minishell/core/logger"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// initCmd writes the default configuration.
var initCmd = &cobra.Command{
	Use:   "init [DIR]",
	Short: "Write the default configuration into DIR, the config directory by default.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		dir := cfgPath
		if len(args) > 0 {
			dir = args[0]
		}

		log, err := logger.New("info", cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer log.Sync()

		_, err = config.Initialize(afero.NewOsFs(), dir, log)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
