package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/josephlewis42/minishell/core/engine"
	"golang.org/x/sys/unix"
)

// parseSignal accepts a signal number or a name with or without the SIG
// prefix.
func parseSignal(s string) (unix.Signal, error) {
	if n, err := strconv.Atoi(s); err == nil && n >= 0 {
		return unix.Signal(n), nil
	}

	name := strings.ToUpper(s)
	if !strings.HasPrefix(name, "SIG") {
		name = "SIG" + name
	}
	if sig := unix.SignalNum(name); sig != 0 {
		return sig, nil
	}

	return 0, fmt.Errorf("%s: invalid signal specification", s)
}

// isPid is true for strings made only of digits.
func isPid(s string) bool {
	return s != "" && strings.Trim(s, "0123456789") == ""
}

// signalShorthand rewrites "kill -SIGNAL ..." as "kill -s SIGNAL ...".
func signalShorthand(args []string) []string {
	if len(args) < 2 || len(args[1]) < 2 || args[1][0] != '-' || args[1][1] == '-' {
		return args
	}
	if _, err := parseSignal(args[1][1:]); err != nil {
		return args
	}

	out := []string{args[0], "-s", args[1][1:]}
	return append(out, args[2:]...)
}

// Kill sends a signal, TERM by default, to each of the listed processes.
func Kill(env engine.Env, args []string) int {
	args = signalShorthand(args)
	cmd := &SimpleCommand{
		Use:   "kill [-s SIGNAL | -SIGNAL] PID...",
		Short: "Send a signal to processes.",
	}
	sigSpec := cmd.Flags().StringLong("signal", 's', "TERM", "name or number of the signal to send")

	return cmd.Run(env, args, func() int {
		operands := cmd.Flags().Args()
		if len(operands) == 0 {
			errorf(env, "kill", "usage: %s", cmd.Use)
			return 1
		}

		sig, err := parseSignal(*sigSpec)
		if err != nil {
			errorf(env, "kill", "%v", err)
			return 1
		}

		var pids []int
		for _, operand := range operands {
			pid, err := strconv.Atoi(operand)
			if !isPid(operand) || err != nil || pid == 0 {
				errorf(env, "kill", "%s: arguments must be process IDs", operand)
				return 2
			}
			pids = append(pids, pid)
		}

		status := 0
		for _, pid := range pids {
			if err := unix.Kill(pid, sig); err != nil {
				errorf(env, "kill", "(%d) - %v", pid, err)
				status = 3
			}
		}
		return status
	})
}

func init() {
	addBuiltin("kill", "Send a signal to processes.", Kill)
}
