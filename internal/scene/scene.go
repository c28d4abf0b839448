package scene

import (
	"context"
	"fmt"

	"github.com/specialistvlad/extpoly/internal/concept"
	"github.com/specialistvlad/extpoly/internal/config"
	"github.com/specialistvlad/extpoly/internal/ctxlog"
	"github.com/specialistvlad/extpoly/internal/registry"
	"golang.org/x/sync/errgroup"
)

// Build binds every item of model, in order. The first payload that fails
// to construct aborts the build; no partially built sequence is returned.
func Build(ctx context.Context, reg *registry.Registry, model *config.Model, env registry.Env) (concept.Sequence, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Building scene.", "items", len(model.Items))

	seq := make(concept.Sequence, 0, len(model.Items))
	for _, item := range model.Items {
		c, err := reg.Bind(item.Kind, item.Behavior, item.Args, env)
		if err != nil {
			if item.Source != "" {
				return nil, fmt.Errorf("%s (%s): %w", item.ID(), item.Source, err)
			}
			return nil, fmt.Errorf("%s: %w", item.ID(), err)
		}
		logger.Debug("Bound scene item.", "item", item.ID(), "behavior", item.Behavior)
		seq = append(seq, c)
	}
	return seq, nil
}

// Run performs every element of seq in order on the calling goroutine. It
// stops early, returning the context error, if ctx is cancelled between
// elements.
func Run(ctx context.Context, seq concept.Sequence) error {
	logger := ctxlog.FromContext(ctx)
	for i, c := range seq {
		if err := ctx.Err(); err != nil {
			logger.Warn("Scene run cancelled.", "performed", i, "total", len(seq))
			return err
		}
		c.PerformAction()
	}
	logger.Debug("Scene run finished.", "performed", len(seq))
	return nil
}

// RunConcurrent performs the elements of seq on at most workers goroutines.
// Completion order is not defined. Behaviors must be safe for concurrent use
// and share only synchronised sinks; that is the caller's responsibility.
// A workers value below 2 falls back to Run.
func RunConcurrent(ctx context.Context, seq concept.Sequence, workers int) error {
	if workers < 2 {
		return Run(ctx, seq)
	}

	logger := ctxlog.FromContext(ctx)
	logger.Debug("Starting concurrent scene run.", "workers", workers, "total", len(seq))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	dispatched := 0
	for _, c := range seq {
		if gctx.Err() != nil {
			break
		}
		dispatched++
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			c.PerformAction()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if dispatched < len(seq) {
		logger.Warn("Scene run cancelled.", "dispatched", dispatched, "total", len(seq))
		return ctx.Err()
	}
	return nil
}
