package commands

import (
	"fmt"

	"github.com/josephlewis42/minishell/core/engine"
)

// Pwd prints the shell's working directory.
func Pwd(env engine.Env, args []string) int {
	cmd := &SimpleCommand{
		Use:   "pwd",
		Short: "Print the name of the current working directory.",
	}

	return cmd.Run(env, args, func() int {
		if len(cmd.Flags().Args()) != 0 {
			errorf(env, "pwd", "too many arguments")
			return 1
		}

		fmt.Fprintln(env.Stdout(), env.Getwd())
		return 0
	})
}

func init() {
	addBuiltin("pwd", "Print the name of the current working directory.", Pwd)
}
