package commands

import (
	"strconv"

	"github.com/josephlewis42/minishell/core/engine"
)

// Exit asks the shell to stop. The status is the argument, or without one the
// status of the previous command on the same line, 0 if exit starts the line.
func Exit(env engine.Env, args []string) int {
	cmd := &SimpleCommand{
		Use:   "exit [N]",
		Short: "Exit the shell with status N.",
	}

	return cmd.Run(env, args, func() int {
		code := env.LastStatus()

		switch operands := cmd.Flags().Args(); len(operands) {
		case 0:
		case 1:
			n, err := strconv.Atoi(operands[0])
			if err != nil {
				errorf(env, "exit", "%s: numeric argument required", operands[0])
				code = 2
				break
			}
			code = n & 0xff
		default:
			errorf(env, "exit", "too many arguments")
			return 1
		}

		env.Exit(code)
		return code
	})
}

func init() {
	addBuiltin("exit", "Exit the shell.", Exit)
}
