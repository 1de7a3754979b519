package extensions

import (
	"context"
	"fmt"
	"io"

	"github.com/wudi/chartkit/chart"
	"github.com/wudi/chartkit/observability"
	"github.com/wudi/chartkit/preset"
	"github.com/wudi/chartkit/report"
)

// PresetApplier applies an axis style preset.
type PresetApplier struct {
	preset *preset.Preset
	cfg    preset.Config
	// Touched is the number of axes changed by the last run.
	Touched int
}

func NewPresetApplier(p *preset.Preset, cfg preset.Config) *PresetApplier {
	return &PresetApplier{preset: p, cfg: cfg}
}

func (a *PresetApplier) Name() string  { return "PresetApplier" }
func (a *PresetApplier) Phase() Phase  { return PhaseTransform }
func (a *PresetApplier) Priority() int { return 50 }
func (a *PresetApplier) Execute(ctx context.Context, c *chart.Chart) error {
	n, err := a.preset.Apply(ctx, c, a.cfg)
	a.Touched = n
	if err != nil {
		return err
	}
	observability.OrNop(a.cfg.Logger).Info("preset applied", observability.String("preset", a.preset.Name), observability.Int("axes", n))
	return nil
}

// ReportWriter writes the axis summary once all transforms have run.
type ReportWriter struct {
	w    io.Writer
	opts report.Options
	html bool
}

func NewReportWriter(w io.Writer, opts report.Options, html bool) *ReportWriter {
	return &ReportWriter{w: w, opts: opts, html: html}
}

func (r *ReportWriter) Name() string  { return "ReportWriter" }
func (r *ReportWriter) Phase() Phase  { return PhaseReport }
func (r *ReportWriter) Priority() int { return 100 }
func (r *ReportWriter) Execute(ctx context.Context, c *chart.Chart) error {
	if !r.html {
		_, err := io.WriteString(r.w, report.Markdown(c, r.opts))
		return err
	}
	out, err := report.HTML(c, r.opts)
	if err != nil {
		return err
	}
	if _, err := r.w.Write(out); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
