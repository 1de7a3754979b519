package dom

import (
	"github.com/wudi/chartkit/chart"
)

type AxisProxy struct {
	axis *chart.Axis
}

func NewAxisProxy(a *chart.Axis) *AxisProxy {
	return &AxisProxy{axis: a}
}

func (p *AxisProxy) Kind() string {
	return string(p.axis.Kind())
}

func (p *AxisProxy) Properties() []string {
	return chart.Properties
}

func (p *AxisProxy) GetProperty(name string) (interface{}, error) {
	return p.axis.Get(name)
}

func (p *AxisProxy) SetProperty(name string, value interface{}) error {
	return p.axis.Set(name, value)
}
