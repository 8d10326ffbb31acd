package cmd

import (
	"fmt"

	"github.com/josephlewis42/minishell/commands"
	"github.com/spf13/cobra"
)

// builtinsCmd lists the built-in commands
var builtinsCmd = &cobra.Command{
	Use:   "builtins",
	Short: "Show the commands built into the shell.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range commands.AllBuiltins.Names() {
			b, _ := commands.AllBuiltins.Lookup(name)
			fmt.Fprintf(cmd.OutOrStdout(), "%-10s %s\n", name, commands.Describe(b))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(builtinsCmd)
}
