package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_HasSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, name := range []string{"run", "check", "frontier", "summary"} {
		assert.True(t, names[name], "expected subcommand %q not found", name)
	}
}

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "ceac", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
}

func TestRunCommand_Flags(t *testing.T) {
	for _, name := range []string{"input", "chart", "out", "format", "strict", "workers"} {
		assert.NotNil(t, runCmd.Flags().Lookup(name), "run should have --%s flag", name)
	}

	flag := runCmd.Flags().Lookup("format")
	require.NotNil(t, flag)
	assert.Equal(t, "table", flag.DefValue)

	flag = runCmd.Flags().Lookup("strict")
	require.NotNil(t, flag)
	assert.Equal(t, "true", flag.DefValue)
}

func TestSubcommands_RequireInput(t *testing.T) {
	for _, c := range []string{"run", "check", "frontier", "summary"} {
		cmd, _, err := rootCmd.Find([]string{c})
		require.NoError(t, err)

		flag := cmd.Flags().Lookup("input")
		require.NotNil(t, flag, "%s should have --input flag", c)
		assert.Equal(t, []string{"true"}, flag.Annotations[cobra.BashCompOneRequiredFlag])
	}
}
