package cmd

import (
	"strings"

	"github.com/josephlewis42/minishell/core/parser"
	"github.com/josephlewis42/minishell/core/tree"
	"github.com/spf13/cobra"
)

// treeCmd shows how a line is parsed without running it
var treeCmd = &cobra.Command{
	Use:   "tree LINE...",
	Short: "Print the command tree a line parses to.",
	Long: `Print the command tree a line parses to without running it.

Arguments are joined with spaces, quote the line to keep operators away from
the calling shell:

  minishell tree 'ls -l | wc > count.txt'`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		root, err := parser.Parse(strings.Join(args, " "))
		if err != nil {
			return err
		}
		defer root.Release()

		return tree.Fprint(cmd.OutOrStdout(), root)
	},
}

func init() {
	rootCmd.AddCommand(treeCmd)
}
