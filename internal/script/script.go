// Package script renders the submission artifacts of an experiment: one
// starter script per suite, a starter with all invocations reordered by
// graph, and the submit scripts that hand the starters to the system.
package script

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/dsalwasser/kmpexp/internal/config"
	"github.com/dsalwasser/kmpexp/internal/ctxlog"
	"github.com/dsalwasser/kmpexp/internal/fsutil"
	"github.com/dsalwasser/kmpexp/internal/sweep"
)

// WriteError reports a failed script or directory write.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("script: writing %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Emitter renders submission artifacts into a directory tree. Binaries maps
// each variant to the partitioner binary its invocations run.
type Emitter struct {
	Config   *config.Config
	Binaries map[*config.Variant]string
	Dir      string
}

// Emit writes every submission artifact of the experiment below the
// emitter's directory. Log directories are created up front so the starters
// can redirect into them unconditionally.
func (e *Emitter) Emit(ctx context.Context, plans []sweep.SuitePlan) error {
	logger := ctxlog.FromContext(ctx)

	type entry struct {
		graph string
		line  string
	}
	var all []entry

	var submits []string
	for _, p := range plans {
		if err := e.makeLogDirs(p.Suite); err != nil {
			return err
		}

		var lines []string
		p.Each(func(inv sweep.Invocation) {
			line := e.Render(inv)
			lines = append(lines, line)
			all = append(all, entry{graph: inv.Graph, line: line})
		})

		starter := filepath.Join(e.Dir, "scripts", p.Suite.Name, "starter.sh")
		if err := e.writeScript(starter, e.starterLines(lines)); err != nil {
			return err
		}
		logger.Info("Wrote starter script.", "suite", p.Suite.Name, "path", starter, "invocations", len(lines))

		submits = append(submits, e.Config.System.Submit(starter))
	}

	if err := e.writeScript(filepath.Join(e.Dir, "submit.sh"), submits); err != nil {
		return err
	}

	// The reordered starter keeps all runs on one graph contiguous, so a
	// machine holds each graph in its page cache only once. The sort is
	// stable to preserve submission order within a graph.
	slices.SortStableFunc(all, func(a, b entry) int {
		return strings.Compare(a.graph, b.graph)
	})
	ordered := make([]string, len(all))
	for i, en := range all {
		ordered[i] = en.line
	}

	orderedStarter := filepath.Join(e.Dir, "scripts", "ordered-starter.sh")
	if err := e.writeScript(orderedStarter, e.starterLines(ordered)); err != nil {
		return err
	}
	logger.Info("Wrote reordered starter script.", "path", orderedStarter, "invocations", len(ordered))

	submit := []string{e.Config.System.Submit(orderedStarter)}
	return e.writeScript(filepath.Join(e.Dir, "submit-ordered.sh"), submit)
}

// Render builds the shell command of a single invocation, including the
// call wrapper, timeout, time command and log redirection.
func (e *Emitter) Render(inv sweep.Invocation) string {
	var sb strings.Builder
	sb.WriteString(e.Binaries[inv.Variant])
	sb.WriteByte(' ')
	sb.WriteString(inv.Graph)
	fmt.Fprintf(&sb, " -k %d", inv.K)
	fmt.Fprintf(&sb, " -e %s", formatEpsilon(inv.Epsilon))
	fmt.Fprintf(&sb, " --seed %d", inv.Seed)
	fmt.Fprintf(&sb, " -p %d", inv.Processes)
	fmt.Fprintf(&sb, " -t %d", inv.Threads)
	if inv.Variant.HeapProfiled() {
		sb.WriteString(" -H")
	}
	for _, arg := range inv.Args {
		sb.WriteByte(' ')
		sb.WriteString(arg)
	}

	cmd := e.Config.CallWrapper.Wrap(inv.Processes, inv.Threads, sb.String())
	if inv.Suite.Timeout > 0 {
		cmd = fmt.Sprintf("timeout -v %dm %s", inv.Suite.Timeout, cmd)
	}
	if e.Config.TimeCmd != "" {
		cmd = fmt.Sprintf("%s -v %s", e.Config.TimeCmd, cmd)
	}
	return fmt.Sprintf("%s >> %s 2>&1", cmd, e.logPath(inv))
}

// logPath places the log of an invocation. The file name carries the full
// configuration so a log can be attributed without opening it.
func (e *Emitter) logPath(inv sweep.Invocation) string {
	name := fmt.Sprintf("%s___P1x%dx%d_seed%d_eps%s_k%d.log",
		fsutil.Stem(inv.Graph), inv.Processes, inv.Threads, inv.Seed,
		formatEpsilon(inv.Epsilon), inv.K)
	return filepath.Join(e.Dir, "logs", inv.Suite.Name, inv.Variant.Name, name)
}

// starterLines prepends sourcing the environment file, if one is configured.
func (e *Emitter) starterLines(lines []string) []string {
	if e.Config.Env == "" {
		return lines
	}
	return append([]string{"source " + e.Config.Env}, lines...)
}

func (e *Emitter) makeLogDirs(s *config.Suite) error {
	for _, v := range s.Variants {
		dir := filepath.Join(e.Dir, "logs", s.Name, v.Name)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &WriteError{Path: dir, Err: err}
		}
	}
	return nil
}

// writeScript writes an executable bash script made of the given lines.
func (e *Emitter) writeScript(path string, lines []string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return &WriteError{Path: path, Err: err}
	}

	var sb strings.Builder
	sb.WriteString("#!/usr/bin/env bash\n")
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	if err := fsutil.MakeExecutable(path); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

func formatEpsilon(eps float64) string {
	return strconv.FormatFloat(eps, 'g', -1, 64)
}
