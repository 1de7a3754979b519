package chart

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/wudi/chartkit/oxml"
)

var axisTagList = []string{"c:catAx", "c:valAx", "c:dateAx", "c:serAx"}

// Chart wraps the c:chartSpace root of a chart part.
type Chart struct {
	el *etree.Element
}

// NewChart binds a Chart to a c:chartSpace element.
func NewChart(el *etree.Element) *Chart {
	return &Chart{el: el}
}

// ParseChart reads a chart part (e.g. ppt/charts/chart1.xml).
func ParseChart(data []byte, cfg oxml.ParseConfig) (*Chart, error) {
	root, err := oxml.Parse(data, cfg)
	if err != nil {
		return nil, err
	}
	if root.FullTag() != "c:chartSpace" {
		return nil, fmt.Errorf("chart part root is %s, want c:chartSpace: %w", root.FullTag(), oxml.ErrNotFound)
	}
	return NewChart(root), nil
}

func (c *Chart) Element() *etree.Element { return c.el }

func (c *Chart) plotArea() *etree.Element {
	return oxml.FirstChild(oxml.FirstChild(c.el, "c:chart"), "c:plotArea")
}

// Axes returns every axis of the plot area in document order.
func (c *Chart) Axes() []*Axis {
	var axes []*Axis
	for _, el := range oxml.Children(c.plotArea(), axisTagList...) {
		axes = append(axes, NewAxis(el))
	}
	return axes
}

// AxesOfKind returns the axes of one kind in document order.
func (c *Chart) AxesOfKind(kind AxisKind) []*Axis {
	var axes []*Axis
	for _, a := range c.Axes() {
		if a.Kind() == kind {
			axes = append(axes, a)
		}
	}
	return axes
}

// CategoryAxis returns the category axis: the first c:catAx, else the first
// c:dateAx, else (XY charts) the first c:valAx.
func (c *Chart) CategoryAxis() (*Axis, error) {
	plotArea := c.plotArea()
	for _, tag := range []string{"c:catAx", "c:dateAx", "c:valAx"} {
		if el := oxml.FirstChild(plotArea, tag); el != nil {
			return NewAxis(el), nil
		}
	}
	return nil, fmt.Errorf("category axis: %w", oxml.ErrNotFound)
}

// ValueAxis returns the value axis. On XY charts, where both axes are
// c:valAx and the first serves as category axis, it is the second one.
func (c *Chart) ValueAxis() (*Axis, error) {
	plotArea := c.plotArea()
	valAxes := oxml.Children(plotArea, "c:valAx")
	idx := 0
	if oxml.FirstChild(plotArea, "c:catAx", "c:dateAx") == nil {
		idx = 1
	}
	if len(valAxes) <= idx {
		return nil, fmt.Errorf("value axis: %w", oxml.ErrNotFound)
	}
	return NewAxis(valAxes[idx]), nil
}

// Bytes serializes the chart part.
func (c *Chart) Bytes() ([]byte, error) {
	return oxml.Bytes(c.el, 0)
}

func init() {
	for _, tag := range axisTagList {
		oxml.Register(tag, func(el *etree.Element) oxml.Node { return NewAxis(el) })
	}
	oxml.Register("c:chartSpace", func(el *etree.Element) oxml.Node { return NewChart(el) })
}
