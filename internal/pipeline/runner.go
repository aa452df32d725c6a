// Package pipeline orchestrates a single run: fetch every configured source
// in order, then merge the per-source lists into one capped output.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jobsift/jobsift/internal/model"
)

// Runner owns the fetch-then-merge pipeline for one invocation.
type Runner struct {
	sources []model.Source
	logger  *slog.Logger
}

// NewRunner creates a runner over the given sources. Source order is
// significant: it decides interleave turns and the merge tie-break.
func NewRunner(sources []model.Source, logger *slog.Logger) *Runner {
	return &Runner{sources: sources, logger: logger}
}

// Run fetches each source sequentially and merges the results. Any connector
// error aborts the whole run; there is no partial output.
func (r *Runner) Run(ctx context.Context, opts model.FetchOptions) ([]model.Job, error) {
	lists := make([][]model.Job, 0, len(r.sources))
	for _, src := range r.sources {
		jobs, err := src.Fetch(ctx, opts)
		if err != nil {
			return nil, fmt.Errorf("fetching %s: %w", src.Name(), err)
		}
		r.logger.Info("fetched source", "source", src.Name(), "jobs", len(jobs))
		lists = append(lists, jobs)
	}

	merged := Merge(lists, opts.Limit)
	r.logger.Info("merged sources", "sources", len(lists), "jobs", len(merged))
	return merged, nil
}
