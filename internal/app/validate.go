package app

import (
	"context"

	"github.com/dsalwasser/kmpexp/internal/ctxlog"
)

// Validate loads and expands the experiment description without building
// anything or writing any file.
func (a *App) Validate(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	_, plans, err := a.load(ctx)
	if err != nil {
		return err
	}

	total := 0
	for _, p := range plans {
		a.logger.Info("Suite expanded.",
			"suite", p.Suite.Name,
			"graph_count", len(p.Graphs),
			"variant_count", len(p.Suite.Variants),
			"invocation_count", p.Count(),
		)
		total += p.Count()
	}

	a.logger.Info("Experiment description is valid.", "suite_count", len(plans), "invocation_count", total)
	return nil
}
