package commands

import (
	"github.com/josephlewis42/minishell/core/engine"
)

// Remote is reserved for running commands on other machines.
func Remote(env engine.Env, args []string) int {
	cmd := &SimpleCommand{
		Use:       "remote ...",
		Short:     "Run commands on remote machines (not supported).",
		NeverBail: true,
	}

	return cmd.Run(env, args, func() int {
		errorf(env, "remote", "not supported")
		return 1
	})
}

func init() {
	addBuiltin("remote", "Run commands on remote machines (not supported).", Remote)
}
