// Package executor evaluates a batch of line definitions concurrently.
package executor

import (
	"context"
	"fmt"

	"github.com/vk/edgecpwg/internal/config"
	"github.com/vk/edgecpwg/internal/cpwg"
	"github.com/vk/edgecpwg/internal/ctxlog"
	"golang.org/x/sync/errgroup"
)

// Evaluation pairs a line definition with its computed result.
type Evaluation struct {
	Line   *config.Line
	Result cpwg.Result
}

// Executor runs cpwg.Calculate over many lines with a bounded number of
// concurrent workers.
type Executor struct {
	workers int
}

// New creates an Executor. A worker count below 1 is treated as 1.
func New(workers int) *Executor {
	if workers < 1 {
		workers = 1
	}
	return &Executor{workers: workers}
}

// Run evaluates every line and returns the evaluations in input order. It
// stops early and returns the context error if ctx is cancelled.
func (e *Executor) Run(ctx context.Context, lines []*config.Line) ([]Evaluation, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Executor starting run.", "lines", len(lines), "workers", e.workers)

	results := make([]Evaluation, len(lines))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)

	for i, line := range lines {
		i, line := i, line
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = e.evaluate(gctx, line)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("evaluation aborted: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("evaluation aborted: %w", err)
	}

	logger.Debug("Executor finished run.", "lines", len(lines))
	return results, nil
}

// evaluate runs the four computation stages for one line.
func (e *Executor) evaluate(ctx context.Context, line *config.Line) Evaluation {
	ctx = ctxlog.With(ctx, "line", line.Name)
	logger := ctxlog.FromContext(ctx)

	g := cpwg.Reduce(line.Params)
	logger.Debug("Geometry reduced.", "a", g.A, "b", g.B, "c", g.C, "k1", g.K1, "delta", g.Delta)

	bk := cpwg.Correct(g, line.Params.Gap, line.Params.Height)
	logger.Debug("Backing moduli corrected.", "ke", bk.Ke, "ko", bk.Ko)

	res := cpwg.Synthesize(line.Params, g, bk)
	if !res.Finite() {
		logger.Info("Result is not finite; geometry is outside the model's domain.", "source", line.Source)
	}

	return Evaluation{Line: line, Result: res}
}
