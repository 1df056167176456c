package proc

import (
	"bytes"
	"context"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsalwasser/kmpexp/internal/xterm"
)

func TestCmd_String(t *testing.T) {
	assert.Equal(t, "git", Command("git").String())
	assert.Equal(t, "git clone x", Command("git", "clone", "x").String())
}

func TestRunner_Run_CapturesOutput(t *testing.T) {
	var out bytes.Buffer
	r := &Runner{Out: &out, Color: xterm.NoColor}

	got, err := r.Run(context.Background(), Command("sh", "-c", "echo one; echo two 1>&2"))
	require.NoError(t, err)

	assert.Contains(t, got, "one\n")
	assert.Contains(t, got, "two\n")

	assert.Contains(t, out.String(), "$ sh -c echo one; echo two 1>&2")
	assert.Contains(t, out.String(), "  | one")
	assert.Contains(t, out.String(), "  | two")
}

func TestRunner_Run_Failure(t *testing.T) {
	var out bytes.Buffer
	r := &Runner{Out: &out, Color: xterm.NoColor}

	got, err := r.Run(context.Background(), Command("sh", "-c", "echo boom; exit 7"))

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 7, exitErr.ExitCode())

	assert.Contains(t, got, "boom\n", "output is captured even when the command fails")
	assert.Contains(t, out.String(), "command failed")
}

func TestRunner_Run_MissingProgram(t *testing.T) {
	var out bytes.Buffer
	r := &Runner{Out: &out, Color: xterm.NoColor}

	_, err := r.Run(context.Background(), Command("definitely-not-a-program-4711"))
	require.Error(t, err)
}
