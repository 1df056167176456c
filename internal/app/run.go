package app

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/dsalwasser/kmpexp/internal/build"
	"github.com/dsalwasser/kmpexp/internal/config"
	"github.com/dsalwasser/kmpexp/internal/ctxlog"
	"github.com/dsalwasser/kmpexp/internal/proc"
	"github.com/dsalwasser/kmpexp/internal/script"
	"github.com/dsalwasser/kmpexp/internal/xterm"
)

// Run generates the experiment: it loads the description, expands the
// sweeps, builds every variant and writes the submission scripts.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	cfg, plans, err := a.load(ctx)
	if err != nil {
		return err
	}

	total := 0
	for _, p := range plans {
		total += p.Count()
	}
	a.logger.Info("🚀 Generating experiment...", "suite_count", len(plans), "invocation_count", total)

	// Build everything before writing any script, so a failed compile
	// cannot leave a submittable half experiment behind.
	binaries, err := a.buildVariants(ctx, cfg)
	if err != nil {
		return err
	}

	emitter := &script.Emitter{
		Config:   cfg,
		Binaries: binaries,
		Dir:      a.dir,
	}
	if err := emitter.Emit(ctx, plans); err != nil {
		return err
	}

	a.logger.Info("🏁 Experiment generated.", "dir", a.dir)
	return nil
}

// buildVariants prepares the binary of every variant and maps each variant
// to the binary its invocations run.
func (a *App) buildVariants(ctx context.Context, cfg *config.Config) (map[*config.Variant]string, error) {
	run := a.config.BuildRun
	if run == nil {
		runner := &proc.Runner{Out: a.outW}
		run = runner.Run
	}

	builder := build.New(filepath.Join(a.dir, "src"), run)
	binaries := make(map[*config.Variant]string)
	for _, s := range cfg.Suites {
		for _, v := range s.Variants {
			fmt.Fprintf(a.outW, "Preparing %s / %s\n", xterm.Suite.S(s.Name), xterm.Variant.S(v.Name))
			res, err := builder.Ensure(ctx, v)
			if err != nil {
				return nil, err
			}
			binaries[v] = res.Binary
		}
	}
	return binaries, nil
}
