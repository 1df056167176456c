// Package sweep expands an experiment description into the full set of
// partitioner invocations. Expansion is deterministic: graphs vary slowest,
// then processes, threads, the number of blocks, imbalance factors and
// seeds, with the variants of a suite innermost, so runs of one
// configuration across variants land next to each other in submission order.
package sweep

import (
	"context"
	"fmt"

	"github.com/dsalwasser/kmpexp/internal/config"
	"github.com/dsalwasser/kmpexp/internal/ctxlog"
	"github.com/dsalwasser/kmpexp/internal/fsutil"
)

// Invocation is a single partitioner run.
type Invocation struct {
	Suite     *config.Suite
	Variant   *config.Variant
	Graph     string
	Processes int
	Threads   int
	K         int
	Epsilon   float64
	Seed      int
	// Args holds the variant's baseline arguments plus the extras
	// registered for K.
	Args []string
}

// SuitePlan is one suite with its graph instances resolved.
type SuitePlan struct {
	Suite  *config.Suite
	Graphs []string
}

// Plan resolves the graph directories of every suite and returns one plan
// per suite, in declaration order.
func Plan(ctx context.Context, cfg *config.Config) ([]SuitePlan, error) {
	logger := ctxlog.FromContext(ctx)

	plans := make([]SuitePlan, 0, len(cfg.Suites))
	for _, s := range cfg.Suites {
		graphs, err := fsutil.ListFiles(s.Graphs)
		if err != nil {
			return nil, config.Errorf(fmt.Sprintf("suite %q: graphs", s.Name), "%v", err)
		}

		p := SuitePlan{Suite: s, Graphs: graphs}
		if p.Count() == 0 {
			logger.Warn("Suite expands to no invocations.", "suite", s.Name)
		}
		plans = append(plans, p)
	}
	return plans, nil
}

// Count returns the number of invocations the suite expands to. Any empty
// dimension makes it zero.
func (p SuitePlan) Count() int {
	s := p.Suite
	return len(p.Graphs) * len(s.Processes) * len(s.Threads) * len(s.Ks) *
		len(s.Epsilons) * len(s.Seeds) * len(s.Variants)
}

// Each calls fn for every invocation of the suite, in submission order.
func (p SuitePlan) Each(fn func(Invocation)) {
	s := p.Suite
	for _, graph := range p.Graphs {
		for _, processes := range s.Processes {
			for _, threads := range s.Threads {
				for _, k := range s.Ks {
					for _, eps := range s.Epsilons {
						for _, seed := range s.Seeds {
							for _, v := range s.Variants {
								fn(Invocation{
									Suite:     s,
									Variant:   v,
									Graph:     graph,
									Processes: processes,
									Threads:   threads,
									K:         k,
									Epsilon:   eps,
									Seed:      seed,
									Args:      variantArgs(v, k),
								})
							}
						}
					}
				}
			}
		}
	}
}

// variantArgs combines the baseline arguments of a variant with the extras
// registered for k. Keys of per-k-args that name no swept k stay inert.
func variantArgs(v *config.Variant, k int) []string {
	extra := v.PerKArgs[k]
	if len(extra) == 0 {
		return v.Args
	}
	args := make([]string, 0, len(v.Args)+len(extra))
	args = append(args, v.Args...)
	args = append(args, extra...)
	return args
}
