package scripting

import (
	"context"
)

// Engine represents a scripting engine (e.g., JavaScript).
type Engine interface {
	// Execute executes a script against the registered chart.
	Execute(ctx context.Context, script string) (interface{}, error)

	// RegisterChart exposes a chart to subsequent scripts.
	RegisterChart(dom ChartDOM) error
}

// ChartDOM exposes the chart structure to the scripting engine.
type ChartDOM interface {
	// Axes returns every axis of the plot area in document order.
	Axes() []AxisProxy

	// Axis returns the axis of the given kind ("category", "value",
	// "date", "series").
	Axis(kind string) (AxisProxy, error)

	// Log records a message from the script.
	Log(message string)
}

// AxisProxy represents an axis exposed to scripts. Property names are the
// snake_case names accepted by chart.Axis.Set.
type AxisProxy interface {
	Kind() string
	Properties() []string
	GetProperty(name string) (interface{}, error)
	SetProperty(name string, value interface{}) error
}
