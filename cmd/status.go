package cmd

import (
	"errors"

	"github.com/josephlewis42/minishell/core/engine"
)

// exitStatus reports the status requested by exit, if err carries one.
func exitStatus(err error) (int, bool) {
	var exitErr *engine.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code, true
	}
	return 0, false
}
