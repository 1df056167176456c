package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsalwasser/kmpexp/internal/testutil"
)

const validExperiment = `
suite "bench" {
  graphs    = "graphs"
  processes = [1]
  threads   = [2]
  ks        = [4]
  epsilons  = [0.03]
  seeds     = [1]

  variant "baseline" {
    git-url = "https://example.com/KaMinPar.git"
  }
}
`

func TestValidateCommand(t *testing.T) {
	dir := t.TempDir()
	testutil.GraphDir(t, dir, "a.metis")
	testutil.WriteExperiment(t, dir, validExperiment)

	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs([]string{"validate", "-C", dir})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "Experiment description is valid")
}

func TestValidateCommand_BadDescription(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteExperiment(t, dir, "system = \"nope\"\n")

	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs([]string{"validate", "-C", dir})

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown system "nope"`)
}

func TestRootCommand_Help(t *testing.T) {
	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs([]string{"--help"})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "kmpexp")
	assert.Contains(t, out.String(), "validate")
}
