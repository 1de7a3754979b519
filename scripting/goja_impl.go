package scripting

import (
	"context"
	"time"

	"github.com/dop251/goja"

	"github.com/wudi/chartkit/observability"
)

// Config configures a GojaEngine. Zero values select no-op hooks.
type Config struct {
	Logger observability.Logger
	Tracer observability.Tracer
}

type GojaEngine struct {
	vm     *goja.Runtime
	logger observability.Logger
	tracer observability.Tracer
}

func NewEngine(cfg Config) *GojaEngine {
	vm := goja.New()
	tracer := cfg.Tracer
	if tracer == nil {
		tracer = observability.NopTracer()
	}
	return &GojaEngine{vm: vm, logger: observability.OrNop(cfg.Logger), tracer: tracer}
}

func (e *GojaEngine) Execute(ctx context.Context, script string) (result interface{}, err error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ctx, span := e.tracer.StartSpan(ctx, observability.SpanRunScript)
	start := time.Now()
	defer func() {
		if err != nil {
			span.SetError(err)
		}
		span.Finish()
		e.logger.Debug("script executed",
			observability.Int("bytes", len(script)),
			observability.Float64("elapsed_ms", float64(time.Since(start).Microseconds())/1000),
			observability.Bool("ok", err == nil))
	}()

	done := make(chan struct{})
	stopped := make(chan struct{})
	defer func() {
		close(done)
		<-stopped
		e.vm.ClearInterrupt()
	}()

	go func() {
		defer close(stopped)
		select {
		case <-ctx.Done():
			e.vm.Interrupt(ctx.Err())
		case <-done:
		}
	}()

	val, err := e.vm.RunString(script)
	if err != nil {
		if interruptedErr, ok := err.(*goja.InterruptedError); ok {
			if cause := interruptedErr.Unwrap(); cause != nil {
				return nil, cause
			}
			return nil, context.Canceled
		}
		return nil, err
	}
	return val.Export(), nil
}

func (e *GojaEngine) RegisterChart(dom ChartDOM) error {
	if err := e.vm.Set("log", func(call goja.FunctionCall) goja.Value {
		msg := ""
		if len(call.Arguments) > 0 {
			msg = call.Arguments[0].String()
		}
		dom.Log(msg)
		return goja.Undefined()
	}); err != nil {
		return err
	}

	if err := e.vm.Set("axes", func(call goja.FunctionCall) goja.Value {
		proxies := dom.Axes()
		objs := make([]interface{}, 0, len(proxies))
		for _, p := range proxies {
			objs = append(objs, e.axisObject(p))
		}
		return e.vm.NewArray(objs...)
	}); err != nil {
		return err
	}

	return e.vm.Set("axis", func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) < 1 {
			return goja.Undefined()
		}
		p, err := dom.Axis(call.Arguments[0].String())
		if err != nil || p == nil {
			return goja.Null()
		}
		return e.axisObject(p)
	})
}

// axisObject builds a JS object whose accessor properties route to the
// proxy. A rejected assignment throws a TypeError carrying the Go error.
func (e *GojaEngine) axisObject(p AxisProxy) *goja.Object {
	obj := e.vm.NewObject()
	_ = obj.Set("kind", p.Kind())
	for _, name := range p.Properties() {
		name := name
		_ = obj.DefineAccessorProperty(name,
			e.vm.ToValue(func(call goja.FunctionCall) goja.Value {
				v, err := p.GetProperty(name)
				if err != nil {
					panic(e.vm.NewGoError(err))
				}
				return e.vm.ToValue(v)
			}),
			e.vm.ToValue(func(call goja.FunctionCall) goja.Value {
				var v interface{}
				if len(call.Arguments) > 0 {
					v = call.Arguments[0].Export()
				}
				if err := p.SetProperty(name, v); err != nil {
					panic(e.vm.NewTypeError(err.Error()))
				}
				return goja.Undefined()
			}),
			goja.FLAG_FALSE, // Configurable
			goja.FLAG_TRUE,  // Enumerable
		)
	}
	return obj
}
