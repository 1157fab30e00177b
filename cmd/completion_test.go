package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWhereFlagCompletion(t *testing.T) {
	out, _, err := runCLI(t, "__complete", "list", "--where", "cmd.ca")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "cmd.category\tcommand category", lines[0])
	assert.Equal(t, ":6", lines[1])
}

func TestValueFlagCompletion(t *testing.T) {
	out, _, err := runCLI(t, "__complete", "--keymap", "e")
	require.NoError(t, err)
	assert.Equal(t, "emacs\n:4\n", out)

	out, _, err = runCLI(t, "__complete", "config", "get", "-o", "")
	require.NoError(t, err)
	assert.Equal(t, "yaml\njson\ntoml\n:4\n", out)
}
