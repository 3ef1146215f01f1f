package app

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/vk/sweepgridgo/internal/config"
	"github.com/vk/sweepgridgo/internal/ctxlog"
	"github.com/vk/sweepgridgo/internal/script"
	"github.com/vk/sweepgridgo/internal/sweep"
)

// Run executes the main application logic based on the App's configuration.
// Explain mode wins over print mode when both are set; the default mode
// renders every sweep concurrently and persists the scripts.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if len(a.model.Sweeps) == 0 {
		a.logger.Warn("No sweeps found in configuration, nothing to render.")
		return nil
	}

	var err error
	switch {
	case a.config.Explain:
		err = a.explain(ctx)
	case a.config.Print:
		err = a.print(ctx)
	default:
		err = a.render(ctx)
	}
	if err != nil {
		return err
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// explain decodes one array index per sweep and writes the parameter values
// that index receives, without rendering any script. Values are shown as the
// shell words the script would assign.
func (a *App) explain(ctx context.Context) error {
	idx := a.config.ExplainIndex
	for _, sw := range a.model.Sweeps {
		plan, err := script.Plan(sw.Params, sw.Order)
		if err != nil {
			return fmt.Errorf("sweep %q: %w", sw.Name, err)
		}
		values, err := plan.At(idx)
		if err != nil {
			return fmt.Errorf("sweep %q: %w", sw.Name, err)
		}

		fmt.Fprintf(a.outW, "sweep %q: index %d of 0-%d\n", sw.Name, idx, plan.UpperBound())
		for i, p := range plan.Params {
			word, err := sweep.FormatValue(values[i])
			if err != nil {
				return fmt.Errorf("sweep %q: %w", sw.Name, err)
			}
			fmt.Fprintf(a.outW, "  %s=%s\n", p.Name, word)
		}
	}
	return nil
}

// print renders every sweep sequentially, in model order, and writes the
// script text to the output writer instead of the file system.
func (a *App) print(ctx context.Context) error {
	for _, sw := range a.model.Sweeps {
		text, err := a.renderSweep(ctx, sw)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(a.outW, text); err != nil {
			return fmt.Errorf("writing sweep %q to output: %w", sw.Name, err)
		}
	}
	return nil
}

// render renders every sweep concurrently and persists each script under
// the output directory.
func (a *App) render(ctx context.Context) error {
	a.logger.Info("🚀 Starting concurrent rendering...", "sweeps", len(a.model.Sweeps), "workers", a.config.WorkerCount)

	g, gctx := errgroup.WithContext(ctx)
	if a.config.WorkerCount > 0 {
		g.SetLimit(a.config.WorkerCount)
	}
	for _, sw := range a.model.Sweeps {
		sw := sw
		g.Go(func() error {
			return a.writeSweep(gctx, sw)
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("rendering failed: %w", err)
	}

	a.logger.Info("🏁 Rendering finished.", "scripts", len(a.model.Sweeps))
	return nil
}

func (a *App) renderSweep(ctx context.Context, sw *config.Sweep) (string, error) {
	r, err := script.NewRenderer(sw.EffectiveScheduler())
	if err != nil {
		return "", fmt.Errorf("sweep %q: %w", sw.Name, err)
	}
	text, err := r.Render(ctx, sw.Fields, sw.Params, sw.Order)
	if err != nil {
		return "", fmt.Errorf("sweep %q: %w", sw.Name, err)
	}
	return text, nil
}

func (a *App) writeSweep(ctx context.Context, sw *config.Sweep) error {
	r, err := script.NewRenderer(sw.EffectiveScheduler())
	if err != nil {
		return fmt.Errorf("sweep %q: %w", sw.Name, err)
	}
	if err := r.Write(ctx, a.scriptPath(sw), sw.Fields, sw.Params, sw.Order); err != nil {
		return fmt.Errorf("sweep %q: %w", sw.Name, err)
	}
	return nil
}

// scriptPath resolves where a sweep's script lands. A relative script path
// is joined under the output directory; an absolute one is used as given.
func (a *App) scriptPath(sw *config.Sweep) string {
	path := sw.ScriptName()
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(a.config.OutputDir, path)
}
