package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/edgecpwg/internal/config"
	"github.com/vk/edgecpwg/internal/ctxlog"
	"github.com/vk/edgecpwg/internal/executor"
	"github.com/vk/edgecpwg/internal/report"
)

// Run loads the parameter sets, evaluates them and writes the report.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "mode", a.config.Mode)

	lines, err := a.lines(ctx)
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		a.logger.Warn("No line definitions found, nothing to evaluate.", "grid_path", a.config.GridPath)
		return nil
	}

	if a.config.Strict {
		if err := validate(lines); err != nil {
			return err
		}
		a.logger.Debug("Strict validation passed.", "lines", len(lines))
	}

	evals, err := executor.New(a.config.WorkerCount).Run(ctx, lines)
	if err != nil {
		return fmt.Errorf("execution failed: %w", err)
	}

	w := report.NewWriter(a.outW, a.config.Output, a.config.Mode == ModeBatch)
	if err := w.Write(evals); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// lines returns the parameter sets for the configured mode.
func (a *App) lines(ctx context.Context) ([]*config.Line, error) {
	if a.config.Mode == ModeSingle {
		return []*config.Line{{
			Name:   SingleLineName,
			Params: a.config.Params,
			Source: "command line",
		}}, nil
	}

	if a.loader == nil {
		return nil, errors.New("batch mode requires a configuration loader")
	}
	model, err := a.loader.Load(ctx, a.config.GridPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	a.logger.Info("Line definitions loaded.", "count", len(model.Lines))
	return model.Lines, nil
}

// validate checks every line and joins all failures into one error.
func validate(lines []*config.Line) error {
	var errs []error
	for _, l := range lines {
		if err := l.Params.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("line %q (%s): %w", l.Name, l.Source, err))
		}
	}
	return errors.Join(errs...)
}
