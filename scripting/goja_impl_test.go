package scripting

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/wudi/chartkit/chart"
	"github.com/wudi/chartkit/oxml"
	"github.com/wudi/chartkit/oxml/cxml"
)

func TestGojaEngine_ContextCancellation(t *testing.T) {
	engine := NewEngine(Config{})

	ctx, cancel := context.WithTimeout(context.Background(), 25*time.Millisecond)
	defer cancel()

	if _, err := engine.Execute(ctx, "while (true) {}"); err == nil || !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected context deadline error, got %v", err)
	}

	if _, err := engine.Execute(context.Background(), "1 + 1"); err != nil {
		t.Fatalf("engine should recover after cancellation, got %v", err)
	}
}

func TestGojaEngine_ImmediateCancel(t *testing.T) {
	engine := NewEngine(Config{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := engine.Execute(ctx, "42"); err == nil || !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context canceled error, got %v", err)
	}
}

func TestGojaEngine_CancelAfterRunDoesNotLeak(t *testing.T) {
	engine := NewEngine(Config{})

	for i := 0; i < 200; i++ {
		ctx, cancel := context.WithCancel(context.Background())
		go cancel()
		_, _ = engine.Execute(ctx, "1")
		cancel()

		if _, err := engine.Execute(context.Background(), "1 + 1"); err != nil {
			t.Fatalf("run %d: stale interrupt reached the next script: %v", i, err)
		}
	}
}

type axisProxy struct{ a *chart.Axis }

func (p axisProxy) Kind() string                              { return string(p.a.Kind()) }
func (p axisProxy) Properties() []string                      { return chart.Properties }
func (p axisProxy) GetProperty(n string) (interface{}, error) { return p.a.Get(n) }
func (p axisProxy) SetProperty(n string, v interface{}) error { return p.a.Set(n, v) }

type chartDOM struct {
	c    *chart.Chart
	logs []string
}

func (d *chartDOM) Axes() []AxisProxy {
	var out []AxisProxy
	for _, a := range d.c.Axes() {
		out = append(out, axisProxy{a})
	}
	return out
}

func (d *chartDOM) Axis(kind string) (AxisProxy, error) {
	for _, a := range d.c.Axes() {
		if string(a.Kind()) == kind {
			return axisProxy{a}, nil
		}
	}
	return nil, fmt.Errorf("no %s axis", kind)
}

func (d *chartDOM) Log(message string) { d.logs = append(d.logs, message) }

func newChartEngine(t *testing.T) (*GojaEngine, *chartDOM) {
	t.Helper()
	dom := &chartDOM{c: chart.NewChart(cxml.MustElement(
		"c:chartSpace/c:chart/c:plotArea/(c:catAx/c:axId{val=1},c:valAx/(c:axId{val=2},c:delete))"))}
	engine := NewEngine(Config{})
	if err := engine.RegisterChart(dom); err != nil {
		t.Fatalf("RegisterChart failed: %v", err)
	}
	return engine, dom
}

func TestGojaEngine_AxisProperties(t *testing.T) {
	engine, dom := newChartEngine(t)

	script := `
var v = axis("value");
v.visible = true;
v.maximum_scale = 120;
v.minimum_scale = 0.5;
v.major_tick_mark = "out";
v.number_format = "0.0";
log(v.kind + " " + v.maximum_scale);
v.visible;
`
	got, err := engine.Execute(context.Background(), script)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if got != true {
		t.Errorf("expected visible true, got %v", got)
	}
	if len(dom.logs) != 1 || dom.logs[0] != "value 120" {
		t.Errorf("unexpected logs %q", dom.logs)
	}

	val, err := dom.c.ValueAxis()
	if err != nil {
		t.Fatal(err)
	}
	want := cxml.XML("c:valAx/(c:axId{val=2},c:scaling/(c:max{val=120},c:min{val=0.5}),c:delete{val=0},c:numFmt{formatCode=0.0},c:majorTickMark{val=out})")
	if xml := oxml.XML(val.Element()); xml != want {
		t.Errorf("unexpected axis XML\n got: %s\nwant: %s", xml, want)
	}
}

func TestGojaEngine_ClearScale(t *testing.T) {
	engine, dom := newChartEngine(t)

	if _, err := engine.Execute(context.Background(), `axis("value").maximum_scale = 9; axis("value").maximum_scale = null;`); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	val, _ := dom.c.ValueAxis()
	if _, ok := val.MaximumScale(); ok {
		t.Error("expected maximum scale to be cleared")
	}
}

func TestGojaEngine_RejectsNonBoolVisible(t *testing.T) {
	engine, dom := newChartEngine(t)

	got, err := engine.Execute(context.Background(), `
try {
	axis("value").visible = "foobar";
	"assigned";
} catch (e) {
	(e instanceof TypeError) + ":" + e.message;
}
`)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	s, _ := got.(string)
	if !strings.HasPrefix(s, "true:") || !strings.Contains(s, "invalid argument") {
		t.Errorf("expected TypeError, got %q", s)
	}

	val, _ := dom.c.ValueAxis()
	if val.Visible() {
		t.Error("rejected assignment must not change the axis")
	}

	if _, err := engine.Execute(context.Background(), `axis("value").visible = 1`); err == nil {
		t.Error("uncaught TypeError should surface as an error")
	}
}

func TestGojaEngine_Axes(t *testing.T) {
	engine, _ := newChartEngine(t)

	got, err := engine.Execute(context.Background(), `
var kinds = [];
axes().forEach(function (a) { a.major_tick_mark = "none"; kinds.push(a.kind + "=" + a.major_tick_mark); });
kinds.join(",");
`)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if got != "category=none,value=none" {
		t.Errorf("unexpected result %v", got)
	}
}

func TestGojaEngine_MissingAxis(t *testing.T) {
	engine, _ := newChartEngine(t)

	got, err := engine.Execute(context.Background(), `axis("date") === null`)
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if got != true {
		t.Errorf("expected null for missing axis, got %v", got)
	}
}
