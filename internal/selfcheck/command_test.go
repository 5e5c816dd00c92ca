package selfcheck_test

import (
	"bytes"
	"strings"
	"testing"

	"coffee/internal/selfcheck"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommand_Run(t *testing.T) {
	cmd := selfcheck.NewCommand()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "OK\n", out.String())
}

func TestCommand_Verbose(t *testing.T) {
	cmd := selfcheck.NewCommand()
	logs := new(bytes.Buffer)
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(logs)
	cmd.SetArgs([]string{"--verbose"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, logs.String(), "Check passed")
	assert.Contains(t, logs.String(), "description lists every extra")
}

func TestCommand_List(t *testing.T) {
	cmd := selfcheck.NewCommand()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetArgs([]string{"--list"})

	require.NoError(t, cmd.Execute())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, len(selfcheck.Checks()))
	assert.Equal(t, selfcheck.Checks()[0].Name, lines[0])
}

func TestCommand_RejectsArguments(t *testing.T) {
	cmd := selfcheck.NewCommand()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"extra"})

	require.Error(t, cmd.Execute())
}
