package app

import (
	"context"
	"fmt"
	"io"

	"github.com/specialistvlad/extpoly/internal/config"
	"github.com/specialistvlad/extpoly/internal/ctxlog"
	"github.com/specialistvlad/extpoly/internal/registry"
	"github.com/specialistvlad/extpoly/internal/scene"
)

// Run loads the scene, validates it against the registry, binds every item
// and performs the resulting sequence.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	model, err := a.loadScene(ctx)
	if err != nil {
		return err
	}

	if err := a.registry.Validate(ctx, model); err != nil {
		return err
	}

	var out io.Writer = a.outW
	if a.config.WorkerCount > 1 {
		out = &syncWriter{w: a.outW}
	}
	env := registry.Env{Out: out, Logger: a.logger}

	seq, err := scene.Build(ctx, a.registry, model, env)
	if err != nil {
		return fmt.Errorf("failed to build scene: %w", err)
	}

	if len(seq) == 0 {
		a.logger.Warn("Scene is empty, nothing to perform.")
		return nil
	}

	a.logger.Info("Performing scene.", "items", len(seq), "workers", a.config.WorkerCount)
	if err := scene.RunConcurrent(ctx, seq, a.config.WorkerCount); err != nil {
		return fmt.Errorf("scene run failed: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

func (a *App) loadScene(ctx context.Context) (*config.Model, error) {
	if a.config.ScenePath == "" {
		a.logger.Debug("No scene path given, using the built-in demo scene.")
		return config.Default(), nil
	}

	model, err := a.loader.Load(ctx, a.config.ScenePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load scene: %w", err)
	}
	a.logger.Debug("Scene loaded.", "path", a.config.ScenePath, "items", len(model.Items))
	return model, nil
}
