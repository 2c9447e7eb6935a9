package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	err := rootCmd.Execute()
	return out.String(), err
}

func TestHashCommand(t *testing.T) {
	out, err := execute(t, "hash", "dup", "frob")
	require.NoError(t, err)
	assert.Contains(t, out, "DUP $BC84\n")
	assert.Contains(t, out, "FROB $")
}

func TestHashCommand_Collision(t *testing.T) {
	out, err := execute(t, "hash", "ABQM", "BXDA")
	assert.Error(t, err)
	assert.Contains(t, out, "BXDA $8DDA clashes with ABQM")
}

func TestCommandsCommand_Plain(t *testing.T) {
	out, err := execute(t, "commands", "--plain")
	require.NoError(t, err)
	assert.Contains(t, out, "| `HELP` | `$7D54` |")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "fconsole version ")
}
