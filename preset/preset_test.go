package preset

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wudi/chartkit/chart"
	"github.com/wudi/chartkit/observability"
	"github.com/wudi/chartkit/oxml"
	"github.com/wudi/chartkit/oxml/cxml"
)

const barChart = "c:chartSpace/c:chart/c:plotArea/(c:barChart," +
	"c:catAx/(c:axId{val=1},c:delete{val=1},c:crossAx{val=2})," +
	"c:valAx/(c:axId{val=2},c:scaling/c:max{val=10},c:crossAx{val=1}))"

func newChart(t *testing.T) *chart.Chart {
	t.Helper()
	return chart.NewChart(cxml.MustElement(barChart))
}

func TestLoad(t *testing.T) {
	p, err := Load(strings.NewReader(`
name: finance
axes:
  - kind: value
    visible: true
    maximum_scale: auto
    minimum_scale: -2.5
    major_tick_mark: out
    number_format: "0.0%"
  - visible: false
`))
	require.NoError(t, err)
	assert.Equal(t, "finance", p.Name)
	require.Len(t, p.Axes, 2)

	s := p.Axes[0]
	assert.Equal(t, "value", s.Kind)
	require.NotNil(t, s.MaximumScale)
	assert.True(t, s.MaximumScale.Auto)
	require.NotNil(t, s.MinimumScale)
	assert.Equal(t, -2.5, s.MinimumScale.Value)
	assert.Equal(t, "out", *s.MajorTickMark)
	assert.Nil(t, s.MinorTickMark)
	assert.Len(t, s.assignments(), 5)
	assert.Equal(t, "", p.Axes[1].Kind)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"empty", "", "empty document"},
		{"unknown field", "axes:\n  - colour: red\n", "colour"},
		{"no axes", "name: x\n", "no axes"},
		{"bad kind", "axes:\n  - kind: radial\n    visible: true\n", "radial"},
		{"bad tick mark", "axes:\n  - major_tick_mark: sideways\n", "sideways"},
		{"bad label position", "axes:\n  - tick_label_position: middle\n", "middle"},
		{"bad bound", "axes:\n  - maximum_scale: lots\n", "scale bound"},
		{"nothing set", "axes:\n  - kind: value\n", "sets no properties"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p.yaml")
	require.NoError(t, os.WriteFile(path, []byte("axes:\n  - visible: true\n"), 0o644))
	p, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, p.Axes, 1)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestApply(t *testing.T) {
	p, err := Load(strings.NewReader(`
axes:
  - visible: true
  - kind: value
    maximum_scale: auto
    minimum_scale: 0
    major_tick_mark: out
    number_format: "0%"
  - kind: category
    tick_label_offset: 200
`))
	require.NoError(t, err)

	c := newChart(t)
	n, err := p.Apply(context.Background(), c, Config{})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	cat, err := c.CategoryAxis()
	require.NoError(t, err)
	assert.Equal(t,
		cxml.XML("c:catAx/(c:axId{val=1},c:delete{val=0},c:crossAx{val=2},c:lblOffset{val=200})"),
		oxml.XML(cat.Element()))

	val, err := c.ValueAxis()
	require.NoError(t, err)
	assert.Equal(t,
		cxml.XML("c:valAx/(c:axId{val=2},c:scaling/c:min{val=0},c:delete{val=0},c:numFmt{formatCode=0%},c:majorTickMark{val=out},c:crossAx{val=1})"),
		oxml.XML(val.Element()))
}

func TestApplyNoMatch(t *testing.T) {
	p, err := Load(strings.NewReader("axes:\n  - kind: date\n    visible: false\n"))
	require.NoError(t, err)
	n, err := p.Apply(context.Background(), newChart(t), Config{})
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestApplyOffsetSkipsValueAxes(t *testing.T) {
	p, err := Load(strings.NewReader("axes:\n  - major_tick_mark: out\n    tick_label_offset: 300\n"))
	require.NoError(t, err)

	c := newChart(t)
	n, err := p.Apply(context.Background(), c, Config{})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	cat, err := c.CategoryAxis()
	require.NoError(t, err)
	assert.Equal(t,
		cxml.XML("c:catAx/(c:axId{val=1},c:delete{val=1},c:majorTickMark{val=out},c:crossAx{val=2},c:lblOffset{val=300})"),
		oxml.XML(cat.Element()))

	val, err := c.ValueAxis()
	require.NoError(t, err)
	assert.Equal(t,
		cxml.XML("c:valAx/(c:axId{val=2},c:scaling/c:max{val=10},c:majorTickMark{val=out},c:crossAx{val=1})"),
		oxml.XML(val.Element()))
}

func TestValidateLabelOffset(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"above range", "axes:\n  - major_tick_mark: out\n    tick_label_offset: 5000\n", "out of range"},
		{"negative", "axes:\n  - kind: category\n    tick_label_offset: -1\n", "out of range"},
		{"value axis", "axes:\n  - kind: value\n    tick_label_offset: 50\n", "not supported on value axes"},
		{"series axis", "axes:\n  - kind: series\n    tick_label_offset: 50\n", "not supported on series axes"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestApplyFailureLeavesChartUnchanged(t *testing.T) {
	visible, offset := true, 50
	p := &Preset{Axes: []AxisStyle{
		{Visible: &visible},
		{Kind: "value", TickLabelOffset: &offset},
	}}
	c := newChart(t)
	before := oxml.XML(c.Element())

	n, err := p.Apply(context.Background(), c, Config{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, oxml.ErrInvalidArgument))
	assert.Contains(t, err.Error(), "axes[1] value axis")
	assert.Zero(t, n)
	assert.Equal(t, before, oxml.XML(c.Element()))
}

func TestApplyCanceled(t *testing.T) {
	p, err := Load(strings.NewReader("axes:\n  - visible: true\n"))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = p.Apply(ctx, newChart(t), Config{})
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestApplyTraced(t *testing.T) {
	p, err := Load(strings.NewReader("axes:\n  - visible: true\n"))
	require.NoError(t, err)

	tracer := &recordingTracer{}
	_, err = p.Apply(context.Background(), newChart(t), Config{Tracer: tracer})
	require.NoError(t, err)
	require.Len(t, tracer.spans, 1)
	assert.Equal(t, 2, tracer.spans[0].tags["axes"])
	assert.True(t, tracer.spans[0].finished)
}

func TestCaptureRoundTrip(t *testing.T) {
	src := newChart(t)
	p, err := Capture(src)
	require.NoError(t, err)
	require.Len(t, p.Axes, 2)
	assert.Equal(t, "category", p.Axes[0].Kind)
	require.NotNil(t, p.Axes[0].TickLabelOffset)
	assert.Nil(t, p.Axes[1].TickLabelOffset)
	assert.Equal(t, 10.0, p.Axes[1].MaximumScale.Value)

	var buf bytes.Buffer
	require.NoError(t, p.Encode(&buf))
	assert.Contains(t, buf.String(), "minimum_scale: auto")
	assert.Contains(t, buf.String(), "maximum_scale: 10")

	loaded, err := Load(&buf)
	require.NoError(t, err)

	dst := chart.NewChart(cxml.MustElement(
		"c:chartSpace/c:chart/c:plotArea/(c:catAx/c:axId{val=1},c:valAx/(c:axId{val=2},c:delete))"))
	_, err = loaded.Apply(context.Background(), dst, Config{})
	require.NoError(t, err)

	srcAxes, dstAxes := src.Axes(), dst.Axes()
	for i := range srcAxes {
		for _, prop := range chart.Properties {
			want, _ := srcAxes[i].Get(prop)
			got, _ := dstAxes[i].Get(prop)
			assert.Equal(t, want, got, "%s %s", srcAxes[i].Kind(), prop)
		}
	}
}

func TestCaptureNoAxes(t *testing.T) {
	_, err := Capture(chart.NewChart(cxml.MustElement("c:chartSpace/c:chart/c:plotArea/c:pieChart")))
	assert.True(t, errors.Is(err, oxml.ErrNotFound))
}

type recordingSpan struct {
	name     string
	tags     map[string]interface{}
	err      error
	finished bool
}

func (s *recordingSpan) SetTag(key string, value interface{}) { s.tags[key] = value }
func (s *recordingSpan) SetError(err error)                   { s.err = err }
func (s *recordingSpan) Finish()                              { s.finished = true }

type recordingTracer struct {
	spans []*recordingSpan
}

func (r *recordingTracer) StartSpan(ctx context.Context, name string) (context.Context, observability.Span) {
	span := &recordingSpan{name: name, tags: make(map[string]interface{})}
	r.spans = append(r.spans, span)
	return ctx, span
}
