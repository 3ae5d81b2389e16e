package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/closetree/input"
	"github.com/katalvlaran/closetree/subtree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	var stdout, stderr bytes.Buffer
	in := "5 3\n0 1 1\n1 2 1\n2 3 2\n3 4 2\n"
	require.NoError(t, run([]string{"--log-level=debug"}, strings.NewReader(in), &stdout, &stderr))
	assert.Equal(t, "4\n", stdout.String())
	assert.Contains(t, stderr.String(), "cheapest subtree")
}

func TestRun_Errors(t *testing.T) {
	var stdout, stderr bytes.Buffer

	err := run(nil, strings.NewReader("3 5\n0 1 1\n"), &stdout, &stderr)
	assert.ErrorIs(t, err, subtree.ErrTooFewVertices)

	err = run(nil, strings.NewReader("3 1\n0 1"), &stdout, &stderr)
	assert.ErrorIs(t, err, input.ErrParse)

	assert.Empty(t, stdout.String())
}
