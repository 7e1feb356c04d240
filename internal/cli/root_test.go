package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the CLI and captures both streams.
func run(t *testing.T, args ...string) (stdout, stderr string, code int) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = Execute(args, &out, &errOut)

	return out.String(), errOut.String(), code
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "lvtopo", cmd.Use)
	assert.Contains(t, cmd.Long, "before/after")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()

	for _, cmdName := range []string{"sort", "validate"} {
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

func TestInvalidFormat(t *testing.T) {
	stdout, stderr, code := run(t, "--format", "xml", "sort", "testdata/core.yaml")
	assert.Equal(t, ExitCommandError, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "invalid --format")
	assert.Contains(t, stderr, `"xml"`)
}

func TestMissingArguments(t *testing.T) {
	for _, name := range []string{"sort", "validate"} {
		_, stderr, code := run(t, name)
		assert.Equal(t, ExitCommandError, code, name)
		assert.Contains(t, stderr, "requires at least 1 arg", name)
	}
}

func TestVersion(t *testing.T) {
	SetVersion("1.2.3")
	t.Cleanup(func() { SetVersion("dev") })

	stdout, _, code := run(t, "--version")
	assert.Equal(t, ExitSuccess, code)
	assert.Contains(t, stdout, "1.2.3")
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitFailure, GetExitCode(assert.AnError))
	assert.Equal(t, ExitCommandError, GetExitCode(WrapExitError(ExitCommandError, "x", assert.AnError)))

	err := WrapExitError(ExitFailure, "sorting", assert.AnError)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, "sorting: "+assert.AnError.Error(), err.Error())
	assert.Equal(t, "bare", (&ExitError{Message: "bare"}).Error())
}
