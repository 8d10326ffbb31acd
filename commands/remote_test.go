package commands

import (
	"testing"

	"github.com/josephlewis42/minishell/core/engine"
	"github.com/josephlewis42/minishell/core/vos/vostest"
	"github.com/stretchr/testify/assert"
)

func TestRemote(t *testing.T) {
	status, stdout, stderr := run(t, vostest.Command(engine.BuiltinFunc(Remote), "remote", "host", "-x", "ls"))

	assert.Equal(t, 1, status)
	assert.Empty(t, stdout)
	assert.Equal(t, "remote: not supported\n", stderr)
}
