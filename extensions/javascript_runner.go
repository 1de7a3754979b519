package extensions

import (
	"context"
	"fmt"

	"github.com/wudi/chartkit/chart"
	"github.com/wudi/chartkit/extensions/dom"
	"github.com/wudi/chartkit/observability"
	"github.com/wudi/chartkit/scripting"
)

// Script is a named JavaScript source.
type Script struct {
	Name   string
	Source string
}

// JavaScriptRunner is a Transformer extension that runs scripts against the
// chart, in order, after presets.
type JavaScriptRunner struct {
	engine  scripting.Engine
	scripts []Script
	logger  observability.Logger
}

func NewJavaScriptRunner(engine scripting.Engine, logger observability.Logger, scripts ...Script) *JavaScriptRunner {
	return &JavaScriptRunner{engine: engine, scripts: scripts, logger: observability.OrNop(logger)}
}

func (r *JavaScriptRunner) Name() string {
	return "JavaScriptRunner"
}

func (r *JavaScriptRunner) Phase() Phase {
	return PhaseTransform
}

func (r *JavaScriptRunner) Priority() int {
	return 100 // Run after presets
}

func (r *JavaScriptRunner) Execute(ctx context.Context, c *chart.Chart) error {
	if r.engine == nil || len(r.scripts) == 0 {
		return nil
	}
	if err := r.engine.RegisterChart(dom.New(c, r.logger)); err != nil {
		return fmt.Errorf("register chart: %w", err)
	}
	for _, s := range r.scripts {
		if _, err := r.engine.Execute(ctx, s.Source); err != nil {
			return fmt.Errorf("script %s: %w", s.Name, err)
		}
		r.logger.Debug("script finished", observability.String("script", s.Name))
	}
	return nil
}
