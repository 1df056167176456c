// Package fsutil provides the file system helpers shared by the sweep
// expander and the script emitter.
package fsutil

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ListFiles returns the absolute paths of all regular files directly inside
// dir, sorted alphabetically. Subdirectories are not descended into; a graph
// collection is a flat directory of graph files.
func ListFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if !info.Mode().IsRegular() {
			continue
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, err
		}
		files = append(files, abs)
	}

	sort.Strings(files)
	return files, nil
}

// Stem returns the file name of path without its final extension, e.g.
// "/graphs/eu-2005.graph" becomes "eu-2005".
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// MakeExecutable adds an execute bit for every class that currently has a
// read bit, mirroring what `chmod +x` does.
func MakeExecutable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	mode := info.Mode()
	return os.Chmod(path, mode|(mode&0o444)>>2)
}
