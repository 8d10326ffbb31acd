package commands

import (
	"fmt"

	"github.com/josephlewis42/minishell/core/engine"
)

// History lists or clears the lines entered in this session.
func History(env engine.Env, args []string) int {
	cmd := &SimpleCommand{
		Use:   "history [-c]",
		Short: "Display the history list with line numbers.",
	}
	clearAll := cmd.Flags().Bool('c', "clear the history by deleting all entries")

	return cmd.Run(env, args, func() int {
		if *clearAll {
			env.ClearHistory()
			return 0
		}

		for i, line := range env.History() {
			fmt.Fprintf(env.Stdout(), "%5d  %s\n", i+1, line)
		}
		return 0
	})
}

func init() {
	addBuiltin("history", "Display or clear the history list.", History)
}
