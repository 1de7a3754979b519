package dom

import (
	"fmt"

	"github.com/wudi/chartkit/chart"
	"github.com/wudi/chartkit/observability"
	"github.com/wudi/chartkit/oxml"
	"github.com/wudi/chartkit/scripting"
)

// Adapter exposes a chart to scripting engines.
type Adapter struct {
	chart  *chart.Chart
	logger observability.Logger
}

func New(c *chart.Chart, logger observability.Logger) *Adapter {
	return &Adapter{chart: c, logger: observability.OrNop(logger)}
}

func (a *Adapter) Axes() []scripting.AxisProxy {
	axes := a.chart.Axes()
	out := make([]scripting.AxisProxy, 0, len(axes))
	for _, ax := range axes {
		out = append(out, NewAxisProxy(ax))
	}
	return out
}

// Axis resolves "category" and "value" the way charts do (XY charts keep
// both on c:valAx); other kinds return the first axis of that kind.
func (a *Adapter) Axis(kind string) (scripting.AxisProxy, error) {
	k, err := chart.ParseAxisKind(kind)
	if err != nil {
		return nil, err
	}
	var ax *chart.Axis
	switch k {
	case chart.AxisCategory:
		ax, err = a.chart.CategoryAxis()
	case chart.AxisValue:
		ax, err = a.chart.ValueAxis()
	default:
		if axes := a.chart.AxesOfKind(k); len(axes) > 0 {
			ax = axes[0]
		} else {
			err = fmt.Errorf("%s axis: %w", k, oxml.ErrNotFound)
		}
	}
	if err != nil {
		return nil, err
	}
	return NewAxisProxy(ax), nil
}

func (a *Adapter) Log(message string) {
	a.logger.Info("script", observability.String("message", message))
}
