package main

import (
	"bytes"
	"testing"

	"github.com/aretw0/lcsviz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func TestVersionCommand(t *testing.T) {
	assert.Equal(t, "lcsviz version "+lcsviz.Version+"\n", execute(t, "version"))
}

func TestShowCommand(t *testing.T) {
	out := execute(t, "show", "--first", "ab", "--second", "ba", "--steps", "1", "--plain")

	assert.Contains(t, out, "String 1: AB")
	assert.Contains(t, out, "Step 2 of 4")
	assert.Contains(t, out, "[ 1]")
}

func TestGraphCommand(t *testing.T) {
	out := execute(t, "graph", "--first", "ABCBDAB", "--second", "BDCABA", "--all")

	assert.Contains(t, out, "graph TD")
	assert.Contains(t, out, `c7_5(("B (7,5) = 4"))`)
}

func TestInvalidDelayFlag(t *testing.T) {
	rootCmd.SetArgs([]string{"show", "--delay", "5s"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})

	assert.Error(t, rootCmd.Execute())
}
