package extensions

import (
	"context"
	"fmt"
	"sort"

	"github.com/wudi/chartkit/chart"
	"github.com/wudi/chartkit/observability"
)

type Phase int

const (
	PhaseTransform Phase = iota
	PhaseReport
)

func (p Phase) String() string { return []string{"Transform", "Report"}[p] }

type Extension interface {
	Name() string
	Phase() Phase
	Priority() int
	Execute(ctx context.Context, c *chart.Chart) error
}

type Hub interface {
	Register(ext Extension) error
	Execute(ctx context.Context, c *chart.Chart) error
	Extensions(phase Phase) []Extension
}

type HubImpl struct {
	exts   map[Phase][]Extension
	logger observability.Logger
}

func NewHub(logger observability.Logger) *HubImpl {
	return &HubImpl{exts: make(map[Phase][]Extension), logger: observability.OrNop(logger)}
}

func (h *HubImpl) Register(ext Extension) error {
	if ext == nil {
		return fmt.Errorf("register nil extension")
	}
	ph := ext.Phase()
	h.exts[ph] = append(h.exts[ph], ext)
	sort.SliceStable(h.exts[ph], func(i, j int) bool { return h.exts[ph][i].Priority() < h.exts[ph][j].Priority() })
	return nil
}

// Execute runs every extension phase by phase, lowest priority first, and
// stops at the first error.
func (h *HubImpl) Execute(ctx context.Context, c *chart.Chart) error {
	phases := []Phase{PhaseTransform, PhaseReport}
	for _, ph := range phases {
		for _, e := range h.exts[ph] {
			if err := ctx.Err(); err != nil {
				return err
			}
			h.logger.Debug("running extension", observability.String("name", e.Name()), observability.String("phase", ph.String()))
			if err := e.Execute(ctx, c); err != nil {
				return fmt.Errorf("%s: %w", e.Name(), err)
			}
		}
	}
	return nil
}

func (h *HubImpl) Extensions(phase Phase) []Extension {
	return append([]Extension(nil), h.exts[phase]...)
}
