package commands

import (
	"errors"
	"os"
	"os/exec"
	"strconv"
	"syscall"
	"testing"

	"github.com/josephlewis42/minishell/core/engine"
	"github.com/josephlewis42/minishell/core/vos/vostest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestParseSignal(t *testing.T) {
	cases := map[string]struct {
		in      string
		want    unix.Signal
		wantErr bool
	}{
		"name":      {"TERM", unix.SIGTERM, false},
		"prefixed":  {"SIGKILL", unix.SIGKILL, false},
		"lowercase": {"hup", unix.SIGHUP, false},
		"number":    {"9", unix.SIGKILL, false},
		"zero":      {"0", 0, false},
		"unknown":   {"NOPE", 0, true},
		"negative":  {"-1", 0, true},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			got, err := parseSignal(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestKill_errors(t *testing.T) {
	cases := map[string]struct {
		args       []string
		wantStatus int
		wantErr    string
	}{
		"no pids":     {[]string{"kill"}, 1, "kill: usage: kill [-s SIGNAL | -SIGNAL] PID...\n"},
		"no pids sig": {[]string{"kill", "-9"}, 1, "kill: usage: kill [-s SIGNAL | -SIGNAL] PID...\n"},
		"bad signal":  {[]string{"kill", "-s", "NOPE", "1"}, 1, "kill: NOPE: invalid signal specification\n"},
		"not numeric": {[]string{"kill", "12a"}, 2, "kill: 12a: arguments must be process IDs\n"},
		"zero pid":    {[]string{"kill", "0"}, 2, "kill: 0: arguments must be process IDs\n"},
		"no such pid": {[]string{"kill", "-s", "0", "2147483646"}, 3, "kill: (2147483646) - no such process\n"},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			status, _, stderr := run(t, vostest.Command(engine.BuiltinFunc(Kill), tc.args[0], tc.args[1:]...))

			assert.Equal(t, tc.wantStatus, status)
			assert.Equal(t, tc.wantErr, stderr)
		})
	}
}

func TestSignalShorthand(t *testing.T) {
	cases := map[string]struct {
		args []string
		want []string
	}{
		"number":     {[]string{"kill", "-9", "12"}, []string{"kill", "-s", "9", "12"}},
		"name":       {[]string{"kill", "-sigterm", "12"}, []string{"kill", "-s", "sigterm", "12"}},
		"flag":       {[]string{"kill", "-s", "HUP", "12"}, []string{"kill", "-s", "HUP", "12"}},
		"long flag":  {[]string{"kill", "--signal=HUP", "12"}, []string{"kill", "--signal=HUP", "12"}},
		"not signal": {[]string{"kill", "-x", "12"}, []string{"kill", "-x", "12"}},
		"pid only":   {[]string{"kill", "12"}, []string{"kill", "12"}},
		"no args":    {[]string{"kill"}, []string{"kill"}},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			assert.Equal(t, tc.want, signalShorthand(tc.args))
		})
	}
}

func TestKill_self(t *testing.T) {
	// Signal 0 only checks the process exists.
	status, _, stderr := run(t, vostest.Command(engine.BuiltinFunc(Kill), "kill", "-s", "0", strconv.Itoa(os.Getpid())))

	assert.Equal(t, 0, status)
	assert.Empty(t, stderr)
}

func TestKill_process(t *testing.T) {
	sleepPath, err := exec.LookPath("sleep")
	if err != nil {
		t.Skip("sleep not available")
	}

	cases := map[string]struct {
		args []string
		want syscall.Signal
	}{
		"default term": {nil, syscall.SIGTERM},
		"named signal": {[]string{"-s", "KILL"}, syscall.SIGKILL},
		"number short": {[]string{"-9"}, syscall.SIGKILL},
		"name short":   {[]string{"-HUP"}, syscall.SIGHUP},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			sleep := exec.Command(sleepPath, "30")
			require.NoError(t, sleep.Start())

			args := append(tc.args, strconv.Itoa(sleep.Process.Pid))
			status, _, stderr := run(t, vostest.Command(engine.BuiltinFunc(Kill), "kill", args...))
			assert.Equal(t, 0, status)
			assert.Empty(t, stderr)

			err := sleep.Wait()
			var exitErr *exec.ExitError
			require.True(t, errors.As(err, &exitErr))
			ws := exitErr.Sys().(syscall.WaitStatus)
			assert.True(t, ws.Signaled())
			assert.Equal(t, tc.want, ws.Signal())
		})
	}
}
