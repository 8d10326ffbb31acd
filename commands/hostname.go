package commands

import (
	"fmt"

	"github.com/josephlewis42/minishell/core/engine"
)

// Hostname prints the name of the host.
func Hostname(env engine.Env, args []string) int {
	cmd := &SimpleCommand{
		Use:   "hostname",
		Short: "Show the system's hostname.",
	}

	return cmd.Run(env, args, func() int {
		host, err := env.Hostname()
		if err != nil {
			errorf(env, "hostname", "%v", err)
			return 1
		}

		fmt.Fprintln(env.Stdout(), host)
		return 0
	})
}

func init() {
	addBuiltin("hostname", "Show the system's hostname.", Hostname)
}
