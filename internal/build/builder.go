// Package build fetches and compiles the partitioner variants of an
// experiment. Builds are keyed by the variant fingerprint, so variants that
// share a repository, branch and compile flags share a checkout and a build
// tree.
package build

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/dsalwasser/kmpexp/internal/config"
	"github.com/dsalwasser/kmpexp/internal/ctxlog"
	"github.com/dsalwasser/kmpexp/internal/proc"
)

// configureFlags are always passed to CMake. Per-variant compile flags are
// appended after them and therefore win on conflict.
var configureFlags = []string{
	"-DCMAKE_BUILD_TYPE=Release",
	"-DKAMINPAR_BUILD_DISTRIBUTED=On",
	"-DKAMINPAR_BUILD_TESTS=Off",
	"-DKAMINPAR_BUILD_BENCHMARKS=On",
}

// Result describes a finished build.
type Result struct {
	// SrcDir is the checkout the binary was built from.
	SrcDir string
	// Binary is the absolute path of the built target.
	Binary string
}

// Error reports a failed fetch or compile step. ExitCode is zero when the
// command did not run at all.
type Error struct {
	Cmd      string
	ExitCode int
	Output   string
	Err      error
}

func (e *Error) Error() string {
	if e.ExitCode != 0 {
		return fmt.Sprintf("build: %s: exit code %d", e.Cmd, e.ExitCode)
	}
	return fmt.Sprintf("build: %s: %v", e.Cmd, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// RunFunc executes an external command and returns its combined output.
type RunFunc func(ctx context.Context, cmd proc.Cmd) (string, error)

// Builder prepares the binaries of an experiment under a common root
// directory. It memoizes finished work, so Ensure can be called once per
// variant without repeating clones or compiles.
type Builder struct {
	Root string
	Run  RunFunc

	prepared map[string]bool
	done     map[string]Result
}

// New creates a Builder that places checkouts under root and executes
// commands through run.
func New(root string, run RunFunc) *Builder {
	return &Builder{
		Root:     root,
		Run:      run,
		prepared: make(map[string]bool),
		done:     make(map[string]Result),
	}
}

// Ensure makes sure the binary of v exists and returns where it lives. An
// existing checkout is reused as is, without fetching new commits.
func (b *Builder) Ensure(ctx context.Context, v *config.Variant) (Result, error) {
	fp := v.Fingerprint()
	key := fp + "\x00" + v.Target
	if res, ok := b.done[key]; ok {
		return res, nil
	}

	srcDir := filepath.Join(b.Root, fp)
	if !b.prepared[fp] {
		if err := b.fetch(ctx, v, srcDir); err != nil {
			return Result{}, err
		}
		if err := b.configure(ctx, v, srcDir); err != nil {
			return Result{}, err
		}
		b.prepared[fp] = true
	}

	buildDir := filepath.Join(srcDir, "build")
	if err := b.run(ctx, proc.Command("cmake", "--build", buildDir, "--target", v.Target, "--parallel")); err != nil {
		return Result{}, err
	}

	res := Result{SrcDir: srcDir, Binary: binaryPath(srcDir, v.Target)}
	b.done[key] = res
	return res, nil
}

func (b *Builder) fetch(ctx context.Context, v *config.Variant, srcDir string) error {
	logger := ctxlog.FromContext(ctx)

	if _, err := os.Stat(srcDir); err == nil {
		logger.Debug("Reusing existing checkout.", "dir", srcDir)
		return nil
	}

	steps := []proc.Cmd{
		proc.Command("git", "clone", "--recurse-submodules", v.GitURL, srcDir),
		proc.Command("git", "-C", srcDir, "-c", "advice.detachedHead=false", "checkout", v.Branch),
		proc.Command("git", "-C", srcDir, "submodule", "update", "--recursive"),
	}
	for _, cmd := range steps {
		if err := b.run(ctx, cmd); err != nil {
			return err
		}
	}
	return nil
}

func (b *Builder) configure(ctx context.Context, v *config.Variant, srcDir string) error {
	args := []string{"-S", srcDir, "-B", filepath.Join(srcDir, "build")}
	args = append(args, configureFlags...)
	args = append(args, v.CompileFlags...)
	return b.run(ctx, proc.Command("cmake", args...))
}

func (b *Builder) run(ctx context.Context, cmd proc.Cmd) error {
	out, err := b.Run(ctx, cmd)
	if err == nil {
		return nil
	}

	berr := &Error{Cmd: cmd.String(), Output: out, Err: err}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		berr.ExitCode = exitErr.ExitCode()
	}
	return berr
}

// binaryPath locates the built target inside a checkout. The partitioner
// frontends land under apps, everything else is a benchmark target.
func binaryPath(srcDir, target string) string {
	switch target {
	case "KaMinPar", "dKaMinPar":
		return filepath.Join(srcDir, "build", "apps", target)
	default:
		return filepath.Join(srcDir, "build", "benchmarks", target)
	}
}
