package commands

import (
	"errors"
	"io/fs"

	"github.com/josephlewis42/minishell/core/engine"
)

// Cd changes the working directory of the shell itself.
func Cd(env engine.Env, args []string) int {
	cmd := &SimpleCommand{
		Use:   "cd PATH",
		Short: "Change the shell working directory.",
	}

	return cmd.Run(env, args, func() int {
		operands := cmd.Flags().Args()
		if len(operands) != 1 {
			errorf(env, "cd", "usage: %s", cmd.Use)
			return 1
		}

		if err := env.Chdir(operands[0]); err != nil {
			errorf(env, "cd", "%s: %s", operands[0], reason(err))
			return 2
		}
		return 0
	})
}

// reason strips the operation and path a *fs.PathError repeats.
func reason(err error) string {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err.Error()
	}
	return err.Error()
}

func init() {
	addBuiltin("cd", "Change the shell working directory.", Cd)
}
