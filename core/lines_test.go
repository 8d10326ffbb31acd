package core

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScannerSource(t *testing.T) {
	src := NewScannerSource(strings.NewReader("echo one\n\nls -l | wc\nno newline"))
	defer src.Close()

	var got []string
	for {
		line, err := src.ReadLine("ignored > ")
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		got = append(got, line)
	}

	assert.Equal(t, []string{"echo one", "", "ls -l | wc", "no newline"}, got)
}

func TestLineHistory(t *testing.T) {
	cases := map[string]struct {
		limit int
		add   []string
		want  []string
	}{
		"empty":     {limit: 3, want: nil},
		"under":     {limit: 3, add: []string{"a", "b"}, want: []string{"a", "b"}},
		"over":      {limit: 3, add: []string{"a", "b", "c", "d", "e"}, want: []string{"c", "d", "e"}},
		"unlimited": {limit: 0, add: []string{"a", "b", "c", "d"}, want: []string{"a", "b", "c", "d"}},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			h := NewLineHistory(tc.limit)
			for _, line := range tc.add {
				h.Add(line)
			}

			assert.Equal(t, tc.want, h.Lines())
		})
	}
}

func TestLineHistory_LinesIsCopy(t *testing.T) {
	h := NewLineHistory(0)
	h.Add("a")

	lines := h.Lines()
	lines[0] = "changed"

	assert.Equal(t, []string{"a"}, h.Lines())
}
