package app

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/dsalwasser/kmpexp/internal/config"
	"github.com/dsalwasser/kmpexp/internal/ctxlog"
	"github.com/dsalwasser/kmpexp/internal/sweep"
)

// load reads the experiment description and expands it into per-suite plans.
// Relative paths in the description are resolved against the experiment
// directory, so the generated scripts work from anywhere.
func (a *App) load(ctx context.Context) (*config.Config, []sweep.SuitePlan, error) {
	logger := ctxlog.FromContext(ctx)

	dir, err := filepath.Abs(a.config.Dir)
	if err != nil {
		return nil, nil, fmt.Errorf("resolving experiment directory: %w", err)
	}
	a.dir = dir

	path := filepath.Join(dir, config.DescriptionFile)
	logger.Debug("Loading experiment description.", "path", path)

	cfg, err := a.loader.Load(ctx, path)
	if err != nil {
		return nil, nil, err
	}

	if cfg.Env != "" && !filepath.IsAbs(cfg.Env) {
		cfg.Env = filepath.Join(dir, cfg.Env)
	}
	for _, s := range cfg.Suites {
		if !filepath.IsAbs(s.Graphs) {
			s.Graphs = filepath.Join(dir, s.Graphs)
		}
	}

	plans, err := sweep.Plan(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	logger.Debug("Experiment description loaded.", "suite_count", len(plans))
	return cfg, plans, nil
}
