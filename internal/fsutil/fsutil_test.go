package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.metis"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.metis"), nil, 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nested", "c.metis"), nil, 0o644))

	files, err := ListFiles(dir)
	require.NoError(t, err)

	want := []string{filepath.Join(dir, "a.metis"), filepath.Join(dir, "b.metis")}
	assert.Equal(t, want, files)
	for _, f := range files {
		assert.True(t, filepath.IsAbs(f), "path %q should be absolute", f)
	}
}

func TestListFiles_MissingDir(t *testing.T) {
	_, err := ListFiles(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}

func TestStem(t *testing.T) {
	testCases := []struct {
		path string
		want string
	}{
		{path: "/data/graphs/rgg_n26.metis", want: "rgg_n26"},
		{path: "eur.osm.graph", want: "eur.osm"},
		{path: "plain", want: "plain"},
	}

	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			assert.Equal(t, tc.want, Stem(tc.path))
		})
	}
}

func TestMakeExecutable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "starter.sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/usr/bin/env bash\n"), 0o644))

	require.NoError(t, MakeExecutable(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())
}
