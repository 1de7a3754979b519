// Package preset reads axis style presets from YAML and applies them to
// charts.
package preset

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/beevik/etree"
	"gopkg.in/yaml.v3"

	"github.com/wudi/chartkit/chart"
	"github.com/wudi/chartkit/observability"
	"github.com/wudi/chartkit/oxml"
)

// Auto is the YAML value that removes a fixed scale bound.
const Auto = "auto"

// Preset is an ordered list of axis styles. Later styles override earlier
// ones on the axes they share.
type Preset struct {
	Name string      `yaml:"name,omitempty"`
	Axes []AxisStyle `yaml:"axes"`
}

// AxisStyle selects axes by kind and lists the properties to assign. Nil
// fields are left untouched.
type AxisStyle struct {
	Kind                 string  `yaml:"kind,omitempty"`
	Visible              *bool   `yaml:"visible,omitempty"`
	MaximumScale         *Bound  `yaml:"maximum_scale,omitempty"`
	MinimumScale         *Bound  `yaml:"minimum_scale,omitempty"`
	MajorTickMark        *string `yaml:"major_tick_mark,omitempty"`
	MinorTickMark        *string `yaml:"minor_tick_mark,omitempty"`
	HasMajorGridlines    *bool   `yaml:"has_major_gridlines,omitempty"`
	HasMinorGridlines    *bool   `yaml:"has_minor_gridlines,omitempty"`
	ReverseOrder         *bool   `yaml:"reverse_order,omitempty"`
	TickLabelPosition    *string `yaml:"tick_label_position,omitempty"`
	NumberFormat         *string `yaml:"number_format,omitempty"`
	NumberFormatIsLinked *bool   `yaml:"number_format_is_linked,omitempty"`
	TickLabelOffset      *int    `yaml:"tick_label_offset,omitempty"`
}

// Bound is a scale bound: a number, or "auto" to let the renderer choose.
type Bound struct {
	Value float64
	Auto  bool
}

func (b *Bound) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode && strings.EqualFold(n.Value, Auto) {
		*b = Bound{Auto: true}
		return nil
	}
	var v float64
	if err := n.Decode(&v); err != nil {
		return fmt.Errorf("line %d: scale bound must be a number or %q", n.Line, Auto)
	}
	*b = Bound{Value: v}
	return nil
}

func (b Bound) MarshalYAML() (interface{}, error) {
	if b.Auto {
		return Auto, nil
	}
	return b.Value, nil
}

func (b *Bound) value() interface{} {
	if b.Auto {
		return nil
	}
	return b.Value
}

// Config carries the hooks used while applying a preset.
type Config struct {
	Logger observability.Logger
	Tracer observability.Tracer
}

// Load decodes and validates a preset. Unknown keys are rejected.
func Load(r io.Reader) (*Preset, error) {
	p := &Preset{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(p); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode preset: empty document")
		}
		return nil, fmt.Errorf("decode preset: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// LoadFile reads a preset from disk.
func LoadFile(path string) (*Preset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	p, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Validate checks axis kinds and enumerated values without a chart.
func (p *Preset) Validate() error {
	if len(p.Axes) == 0 {
		return fmt.Errorf("invalid preset: no axes defined")
	}
	for i, s := range p.Axes {
		if s.Kind != "" {
			if _, err := chart.ParseAxisKind(s.Kind); err != nil {
				return fmt.Errorf("invalid preset: axes[%d]: %w", i, err)
			}
		}
		for _, m := range []*string{s.MajorTickMark, s.MinorTickMark} {
			if m == nil {
				continue
			}
			if _, err := chart.ParseTickMark(*m); err != nil {
				return fmt.Errorf("invalid preset: axes[%d]: %w", i, err)
			}
		}
		if s.TickLabelPosition != nil {
			if _, err := chart.ParseTickLabelPosition(*s.TickLabelPosition); err != nil {
				return fmt.Errorf("invalid preset: axes[%d]: %w", i, err)
			}
		}
		if s.TickLabelOffset != nil {
			if off := *s.TickLabelOffset; off < 0 || off > chart.MaxLabelOffset {
				return fmt.Errorf("invalid preset: axes[%d]: tick_label_offset %d out of range 0-%d", i, off, chart.MaxLabelOffset)
			}
			if s.Kind != "" && !chart.AxisKind(s.Kind).HasLabelOffset() {
				return fmt.Errorf("invalid preset: axes[%d]: tick_label_offset is not supported on %s axes", i, s.Kind)
			}
		}
		if len(s.assignments()) == 0 {
			return fmt.Errorf("invalid preset: axes[%d] sets no properties", i)
		}
	}
	return nil
}

// Apply assigns every style to the matching axes of c and returns the number
// of distinct axes touched. A style without a kind skips tick_label_offset on
// axes that cannot carry it. Every assignment is checked before the first one
// is made, so a failing preset leaves c unchanged.
func (p *Preset) Apply(ctx context.Context, c *chart.Chart, cfg Config) (n int, err error) {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := observability.OrNop(cfg.Logger)
	tracer := cfg.Tracer
	if tracer == nil {
		tracer = observability.NopTracer()
	}
	_, span := tracer.StartSpan(ctx, observability.SpanApplyPreset)
	defer func() {
		span.SetTag("axes", n)
		if err != nil {
			span.SetError(err)
		}
		span.Finish()
	}()

	plan, err := p.plan(c, logger)
	if err != nil {
		return 0, err
	}
	for _, step := range plan {
		if err := step.axis.Check(step.prop, step.value); err != nil {
			return 0, fmt.Errorf("axes[%d] %s axis: %w", step.style, step.axis.Kind(), err)
		}
	}

	touched := make(map[*etree.Element]bool)
	for _, step := range plan {
		if err := ctx.Err(); err != nil {
			return len(touched), err
		}
		if err := step.axis.Set(step.prop, step.value); err != nil {
			return len(touched), fmt.Errorf("axes[%d] %s axis: %w", step.style, step.axis.Kind(), err)
		}
		touched[step.axis.Element()] = true
	}
	return len(touched), nil
}

type step struct {
	style int
	axis  *chart.Axis
	assignment
}

// plan lists the assignments of every style against its target axes, in
// application order.
func (p *Preset) plan(c *chart.Chart, logger observability.Logger) ([]step, error) {
	var steps []step
	axes := c.Axes()
	for i, s := range p.Axes {
		targets := axes
		if s.Kind != "" {
			kind, err := chart.ParseAxisKind(s.Kind)
			if err != nil {
				return nil, fmt.Errorf("axes[%d]: %w", i, err)
			}
			targets = c.AxesOfKind(kind)
		}
		if len(targets) == 0 {
			logger.Debug("preset style matched no axes", observability.Int("index", i), observability.String("kind", s.Kind))
			continue
		}
		for _, axis := range targets {
			for _, a := range s.assignments() {
				if a.prop == chart.PropTickLabelOffset && s.Kind == "" && !axis.Kind().HasLabelOffset() {
					continue
				}
				steps = append(steps, step{style: i, axis: axis, assignment: a})
			}
		}
		logger.Debug("preset style planned", observability.Int("index", i), observability.Int("axes", len(targets)))
	}
	return steps, nil
}

// Encode writes the preset as YAML.
func (p *Preset) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("encode preset: %w", err)
	}
	return enc.Close()
}

// Capture records the current style of every axis of c, one style per axis
// kind present. The first axis of each kind wins.
func Capture(c *chart.Chart) (*Preset, error) {
	p := &Preset{}
	seen := make(map[chart.AxisKind]bool)
	for _, axis := range c.Axes() {
		kind := axis.Kind()
		if seen[kind] {
			continue
		}
		seen[kind] = true
		p.Axes = append(p.Axes, styleOf(axis))
	}
	if len(p.Axes) == 0 {
		return nil, fmt.Errorf("capture preset: %w", oxml.ErrNotFound)
	}
	return p, nil
}

func styleOf(a *chart.Axis) AxisStyle {
	visible := a.Visible()
	major := a.MajorTickMark().String()
	minor := a.MinorTickMark().String()
	majorGrid := a.HasMajorGridlines()
	minorGrid := a.HasMinorGridlines()
	reverse := a.ReverseOrder()
	pos := a.TickLabelPosition().String()
	labels := a.TickLabels()
	format := labels.NumberFormat()
	linked := labels.NumberFormatIsLinked()

	s := AxisStyle{
		Kind:                 string(a.Kind()),
		Visible:              &visible,
		MaximumScale:         &Bound{Auto: true},
		MinimumScale:         &Bound{Auto: true},
		MajorTickMark:        &major,
		MinorTickMark:        &minor,
		HasMajorGridlines:    &majorGrid,
		HasMinorGridlines:    &minorGrid,
		ReverseOrder:         &reverse,
		TickLabelPosition:    &pos,
		NumberFormat:         &format,
		NumberFormatIsLinked: &linked,
	}
	if v, ok := a.MaximumScale(); ok {
		s.MaximumScale = &Bound{Value: v}
	}
	if v, ok := a.MinimumScale(); ok {
		s.MinimumScale = &Bound{Value: v}
	}
	if k := a.Kind(); k == chart.AxisCategory || k == chart.AxisDate {
		offset := labels.Offset()
		s.TickLabelOffset = &offset
	}
	return s
}

type assignment struct {
	prop  string
	value interface{}
}

func (s AxisStyle) assignments() []assignment {
	var out []assignment
	add := func(prop string, set bool, value func() interface{}) {
		if set {
			out = append(out, assignment{prop, value()})
		}
	}
	add(chart.PropVisible, s.Visible != nil, func() interface{} { return *s.Visible })
	add(chart.PropMaximumScale, s.MaximumScale != nil, func() interface{} { return s.MaximumScale.value() })
	add(chart.PropMinimumScale, s.MinimumScale != nil, func() interface{} { return s.MinimumScale.value() })
	add(chart.PropMajorTickMark, s.MajorTickMark != nil, func() interface{} { return *s.MajorTickMark })
	add(chart.PropMinorTickMark, s.MinorTickMark != nil, func() interface{} { return *s.MinorTickMark })
	add(chart.PropHasMajorGridlines, s.HasMajorGridlines != nil, func() interface{} { return *s.HasMajorGridlines })
	add(chart.PropHasMinorGridlines, s.HasMinorGridlines != nil, func() interface{} { return *s.HasMinorGridlines })
	add(chart.PropReverseOrder, s.ReverseOrder != nil, func() interface{} { return *s.ReverseOrder })
	add(chart.PropTickLabelPosition, s.TickLabelPosition != nil, func() interface{} { return *s.TickLabelPosition })
	add(chart.PropNumberFormat, s.NumberFormat != nil, func() interface{} { return *s.NumberFormat })
	add(chart.PropNumberFormatIsLinked, s.NumberFormatIsLinked != nil, func() interface{} { return *s.NumberFormatIsLinked })
	add(chart.PropTickLabelOffset, s.TickLabelOffset != nil, func() interface{} { return *s.TickLabelOffset })
	return out
}
