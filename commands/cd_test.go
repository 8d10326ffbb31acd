package commands

import (
	"testing"

	"github.com/josephlewis42/minishell/core/engine"
	"github.com/josephlewis42/minishell/core/vos/vostest"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFs(t *testing.T) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/home/user/projects", 0755))
	require.NoError(t, afero.WriteFile(fs, "/home/user/notes.txt", []byte("notes"), 0644))
	return fs
}

func TestCd(t *testing.T) {
	cases := map[string]struct {
		args       []string
		wantStatus int
		wantDir    string
		wantErr    string
	}{
		"absolute":      {[]string{"cd", "/home"}, 0, "/home", ""},
		"relative":      {[]string{"cd", "projects"}, 0, "/home/user/projects", ""},
		"parent":        {[]string{"cd", ".."}, 0, "/home", ""},
		"no args":       {[]string{"cd"}, 1, "/home/user", "cd: usage: cd PATH\n"},
		"too many args": {[]string{"cd", "a", "b"}, 1, "/home/user", "cd: usage: cd PATH\n"},
		"missing":       {[]string{"cd", "nope"}, 2, "/home/user", "cd: nope: file does not exist\n"},
		"not a dir":     {[]string{"cd", "notes.txt"}, 2, "/home/user", "cd: notes.txt: not a directory\n"},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			cmd := vostest.Command(engine.BuiltinFunc(Cd), tc.args[0], tc.args[1:]...)
			cmd.Fs = testFs(t)
			cmd.Dir = "/home/user"

			status, _, stderr := run(t, cmd)

			assert.Equal(t, tc.wantStatus, status)
			assert.Equal(t, tc.wantErr, stderr)
			assert.Equal(t, tc.wantDir, cmd.Process.Getwd())
		})
	}
}

func TestPwd(t *testing.T) {
	cmd := vostest.Command(engine.BuiltinFunc(Pwd), "pwd")
	cmd.Dir = "/home/user"

	status, stdout, _ := run(t, cmd)
	assert.Equal(t, 0, status)
	assert.Equal(t, "/home/user\n", stdout)

	status, stdout, stderr := run(t, vostest.Command(engine.BuiltinFunc(Pwd), "pwd", "extra"))
	assert.Equal(t, 1, status)
	assert.Empty(t, stdout)
	assert.Equal(t, "pwd: too many arguments\n", stderr)
}
