// Package testutil provides helpers shared by the package tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dsalwasser/kmpexp/internal/config"
)

// WriteExperiment writes an experiment description into dir and returns its
// path.
func WriteExperiment(t *testing.T, dir, src string) string {
	t.Helper()

	path := filepath.Join(dir, config.DescriptionFile)
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

// GraphDir creates a graphs directory below dir holding one small file per
// name, and returns its path.
func GraphDir(t *testing.T, dir string, names ...string) string {
	t.Helper()

	graphs := filepath.Join(dir, "graphs")
	require.NoError(t, os.MkdirAll(graphs, 0o755))
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(graphs, name), []byte("0 0\n"), 0o644))
	}
	return graphs
}
