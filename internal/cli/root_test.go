package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// response is a CLIResponse with a typed payload.
type response[T any] struct {
	Status string    `json:"status"`
	Data   T         `json:"data"`
	Error  *CLIError `json:"error"`
}

func decode[T any](t *testing.T, out string) response[T] {
	t.Helper()
	var resp response[T]
	require.NoError(t, json.Unmarshal([]byte(out), &resp), "output: %s", out)
	return resp
}

// clearEnv removes gkquad settings the host may have set.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"GKQUAD_FAMILY", "GKQUAD_DB", "GKQUAD_LOG_LEVEL", "GKQUAD_MAX_POINTS"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "gkquad", cmd.Use)
	assert.Contains(t, cmd.Long, "Genz-Keister")
	assert.Contains(t, cmd.Long, "GKQUAD_DB")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"families", "rule", "grid", "moments", "validate", "test", "cache", "replay"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)
}

func TestGridCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	gridCmd, _, err := cmd.Find([]string{"grid"})
	require.NoError(t, err)

	outputFlag := gridCmd.Flags().Lookup("output")
	require.NotNil(t, outputFlag)
	assert.Equal(t, "o", outputFlag.Shorthand)

	for _, name := range []string{"family", "level", "dist", "max-points", "db", "limit"} {
		assert.NotNil(t, gridCmd.Flags().Lookup(name), "missing flag %s", name)
	}
}

func TestInvalidFormat(t *testing.T) {
	clearEnv(t)
	_, err := execute(t, "families", "--format", "xml")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "invalid format")
}

func TestInvalidEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("GKQUAD_LOG_LEVEL", "loud")

	_, err := execute(t, "families")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestSubcommandWithoutRoot(t *testing.T) {
	clearEnv(t)
	buf := &bytes.Buffer{}
	cmd := NewRuleCommand(&RootOptions{Format: "json"})
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--level", "0"})

	require.NoError(t, cmd.Execute())
	resp := decode[RuleView](t, buf.String())
	assert.Equal(t, "gk24", resp.Data.Family)
	assert.Equal(t, []float64{0}, resp.Data.Abscissas)
	assert.Equal(t, []float64{1}, resp.Data.Weights)
}
