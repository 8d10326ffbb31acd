package tree

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind_String(t *testing.T) {
	assert.Equal(t, "pipe", Pipe.String())
	assert.Equal(t, "redirect-err-out", RedirectErrOut.String())
	assert.Equal(t, "kind(99)", Kind(99).String())
}

func TestWalk_postOrder(t *testing.T) {
	root := NewSequence(
		NewPipe(NewSimple("a"), NewSimple("b")),
		NewRedirect(RedirectOut, "out", NewSimple("c")),
	)

	var order []string
	root.Walk(func(n *Node) {
		if n.Kind == Simple {
			order = append(order, n.Args[0])
		} else {
			order = append(order, n.Kind.String())
		}
	})

	assert.Equal(t, []string{"a", "b", "pipe", "c", "redirect-out", "sequence"}, order)
}

func TestRelease(t *testing.T) {
	echo := NewSimple("echo", "hi")
	redirect := NewRedirect(RedirectAppend, "/tmp/x", echo)
	root := NewAnd(NewSimple("false"), NewBackground(redirect))

	var nodes []*Node
	root.Walk(func(n *Node) { nodes = append(nodes, n) })

	assert.Equal(t, 5, root.Release())
	for _, n := range nodes {
		assert.Nil(t, n.Left)
		assert.Nil(t, n.Right)
		assert.Nil(t, n.Args)
	}
}

func TestClone(t *testing.T) {
	root := NewPipe(NewSimple("echo", "ab"), NewRedirect(RedirectOut, "out", NewSimple("wc", "-c")))
	clone := root.Clone()

	assert.Equal(t, root, clone)
	root.Release()

	assert.NoError(t, Validate(clone))
	assert.Equal(t, []string{"echo", "ab"}, clone.Left.Args)
	assert.Equal(t, "out", clone.Right.Path())
}

func TestRelease_nil(t *testing.T) {
	var root *Node
	assert.Equal(t, 0, root.Release())
}

func TestNewSimple_copiesArgs(t *testing.T) {
	argv := []string{"echo", "hi"}
	n := NewSimple(argv...)
	argv[1] = "changed"

	assert.Equal(t, []string{"echo", "hi"}, n.Args)
}

func TestValidate(t *testing.T) {
	shared := NewSimple("true")

	cases := map[string]struct {
		root    *Node
		wantErr bool
	}{
		"empty":             {NewEmpty(), false},
		"simple":            {NewSimple("ls", "-l"), false},
		"pipe":              {NewPipe(NewSimple("a"), NewSimple("b")), false},
		"redirect":          {NewRedirect(RedirectIn, "in.txt", NewSimple("cat")), false},
		"subshell":          {NewSubShell(NewEmpty()), false},
		"nil root":          {nil, true},
		"simple no args":    {New(Simple, nil, nil, nil), true},
		"simple blank name": {NewSimple(""), true},
		"simple children":   {New(Simple, NewEmpty(), nil, []string{"x"}), true},
		"sequence missing":  {NewSequence(NewSimple("a"), nil), true},
		"background right":  {New(Background, NewEmpty(), NewEmpty(), nil), true},
		"redirect no path":  {New(RedirectOut, NewSimple("a"), nil, nil), true},
		"redirect two path": {New(RedirectOut, NewSimple("a"), nil, []string{"a", "b"}), true},
		"empty with args":   {New(Empty, nil, nil, []string{"x"}), true},
		"unknown kind":      {New(Kind(42), nil, nil, nil), true},
		"shared node":       {NewSequence(shared, shared), true},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			err := Validate(tc.root)
			if !tc.wantErr {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			var invariantErr *InvariantError
			assert.True(t, errors.As(err, &invariantErr))
		})
	}
}

func TestFprint(t *testing.T) {
	g := goldie.New(
		t,
		goldie.WithFixtureDir(filepath.Join("testdata", "golden")),
		goldie.WithDiffEngine(goldie.ColoredDiff),
	)

	cases := map[string]*Node{
		"empty":  NewEmpty(),
		"simple": NewSimple("echo", "hello", "world"),
		"nested": NewSequence(
			NewAnd(
				NewPipe(NewSimple("echo", "ab"), NewSimple("wc", "-c")),
				NewRedirect(RedirectOut, "/tmp/x", NewSimple("echo", "hi")),
			),
			NewBackground(NewSubShell(NewSimple("sleep", "1"))),
		),
	}

	for name, root := range cases {
		buf := &bytes.Buffer{}
		require.NoError(t, Fprint(buf, root))
		g.Assert(t, name, buf.Bytes())
		assert.Equal(t, buf.String(), root.String())
	}
}
