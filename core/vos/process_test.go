package vos

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"strings"
	"syscall"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProcess(t *testing.T) *Process {
	t.Helper()

	memFs := afero.NewMemMapFs()
	require.NoError(t, memFs.MkdirAll("/home/user", 0755))
	require.NoError(t, memFs.MkdirAll("/bin", 0755))
	require.NoError(t, afero.WriteFile(memFs, "/bin/ls", []byte("#!"), 0755))
	require.NoError(t, afero.WriteFile(memFs, "/bin/readme", []byte("text"), 0644))
	require.NoError(t, afero.WriteFile(memFs, "/home/user/run.sh", []byte("#!"), 0755))

	env := NewMapEnvFromEnvList([]string{"PATH=/usr/bin:/bin", "PWD=/"})
	return NewProcess(memFs, NewNullStreams(), "/", env)
}

func TestProcess_Chdir(t *testing.T) {
	proc := newTestProcess(t)

	require.NoError(t, proc.Chdir("home"))
	require.NoError(t, proc.Chdir("user"))
	assert.Equal(t, "/home/user", proc.Getwd())
	assert.Equal(t, "/home/user", proc.Env().Getenv("PWD"))

	require.NoError(t, proc.Chdir(".."))
	assert.Equal(t, "/home", proc.Getwd())

	err := proc.Chdir("/does/not/exist")
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	err = proc.Chdir("/bin/ls")
	assert.True(t, errors.Is(err, syscall.ENOTDIR))
	assert.Equal(t, "/home", proc.Getwd())
}

func TestProcess_Resolve(t *testing.T) {
	proc := newTestProcess(t)
	require.NoError(t, proc.Chdir("/home/user"))

	assert.Equal(t, "/home/user/out.txt", proc.Resolve("out.txt"))
	assert.Equal(t, "/home/out.txt", proc.Resolve("../out.txt"))
	assert.Equal(t, "/tmp/x", proc.Resolve("/tmp//x"))
}

func TestProcess_WithStreamsSharesState(t *testing.T) {
	proc := newTestProcess(t)
	buf := &bytes.Buffer{}

	redirected := proc.WithStreams(proc.Streams.WithStdout(buf))
	require.NoError(t, redirected.Chdir("/bin"))

	assert.Equal(t, "/bin", proc.Getwd())
	assert.Equal(t, io.Discard, proc.Stdout)
	assert.Equal(t, buf, redirected.Stdout)
}

func TestProcess_CloneIsolatesState(t *testing.T) {
	proc := newTestProcess(t)

	clone := proc.Clone()
	require.NoError(t, clone.Chdir("/bin"))
	clone.Env().Setenv("ONLY_IN_CLONE", "1")

	assert.Equal(t, "/", proc.Getwd())
	_, ok := proc.Env().LookupEnv("ONLY_IN_CLONE")
	assert.False(t, ok)
}

func TestProcess_LookPath(t *testing.T) {
	proc := newTestProcess(t)
	require.NoError(t, proc.Chdir("/home/user"))

	cases := map[string]struct {
		file    string
		want    string
		wantErr error
	}{
		"on path":        {"ls", "/bin/ls", nil},
		"missing":        {"nope", "", ErrNotFound},
		"not executable": {"readme", "", fs.ErrPermission},
		"relative":       {"./run.sh", "/home/user/run.sh", nil},
		"absolute":       {"/bin/ls", "/bin/ls", nil},
		"directory":      {"/bin", "", fs.ErrPermission},
		"absolute gone":  {"/bin/gone", "", ErrNotFound},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			got, err := proc.LookPath(tc.file)
			if tc.wantErr != nil {
				assert.True(t, errors.Is(err, tc.wantErr), "got error %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNullStreams(t *testing.T) {
	streams := NewNullStreams()

	n, err := streams.Stdin.Read(make([]byte, 8))
	assert.Equal(t, 0, n)
	assert.Equal(t, io.EOF, err)

	copied, err := io.Copy(streams.Stdout, strings.NewReader("discarded"))
	assert.NoError(t, err)
	assert.EqualValues(t, 9, copied)
}
