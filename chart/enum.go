package chart

import (
	"fmt"

	"github.com/wudi/chartkit/oxml"
)

// TickMark is the style of major or minor tick marks on an axis.
type TickMark int

const (
	TickMarkCross TickMark = iota
	TickMarkInside
	TickMarkNone
	TickMarkOutside
)

var tickMarkValues = [...]string{
	TickMarkCross:   "cross",
	TickMarkInside:  "in",
	TickMarkNone:    "none",
	TickMarkOutside: "out",
}

// Valid reports whether m is one of the ST_TickMark values.
func (m TickMark) Valid() bool {
	return m >= 0 && int(m) < len(tickMarkValues)
}

// String returns the XML value, e.g. "out" for TickMarkOutside.
func (m TickMark) String() string {
	if !m.Valid() {
		return fmt.Sprintf("TickMark(%d)", int(m))
	}
	return tickMarkValues[m]
}

// ParseTickMark maps an ST_TickMark value to its TickMark.
func ParseTickMark(s string) (TickMark, error) {
	for i, v := range tickMarkValues {
		if v == s {
			return TickMark(i), nil
		}
	}
	return TickMarkCross, fmt.Errorf("tick mark %q: %w", s, oxml.ErrInvalidArgument)
}

// TickLabelPosition places tick labels relative to the axis.
type TickLabelPosition int

const (
	TickLabelNextTo TickLabelPosition = iota
	TickLabelHigh
	TickLabelLow
	TickLabelNone
)

var tickLabelPositionValues = [...]string{
	TickLabelNextTo: "nextTo",
	TickLabelHigh:   "high",
	TickLabelLow:    "low",
	TickLabelNone:   "none",
}

// Valid reports whether p is one of the ST_TickLblPos values.
func (p TickLabelPosition) Valid() bool {
	return p >= 0 && int(p) < len(tickLabelPositionValues)
}

func (p TickLabelPosition) String() string {
	if !p.Valid() {
		return fmt.Sprintf("TickLabelPosition(%d)", int(p))
	}
	return tickLabelPositionValues[p]
}

// ParseTickLabelPosition maps an ST_TickLblPos value to its TickLabelPosition.
func ParseTickLabelPosition(s string) (TickLabelPosition, error) {
	for i, v := range tickLabelPositionValues {
		if v == s {
			return TickLabelPosition(i), nil
		}
	}
	return TickLabelNextTo, fmt.Errorf("tick label position %q: %w", s, oxml.ErrInvalidArgument)
}

// AxisKind distinguishes the four axis elements.
type AxisKind string

const (
	AxisCategory AxisKind = "category"
	AxisValue    AxisKind = "value"
	AxisDate     AxisKind = "date"
	AxisSeries   AxisKind = "series"
)

var axisTags = map[string]AxisKind{
	"c:catAx":  AxisCategory,
	"c:valAx":  AxisValue,
	"c:dateAx": AxisDate,
	"c:serAx":  AxisSeries,
}

// HasLabelOffset reports whether axes of kind k carry c:lblOffset.
func (k AxisKind) HasLabelOffset() bool {
	return k == AxisCategory || k == AxisDate
}

// ParseAxisKind accepts the kind names used by presets and scripts.
func ParseAxisKind(s string) (AxisKind, error) {
	switch k := AxisKind(s); k {
	case AxisCategory, AxisValue, AxisDate, AxisSeries:
		return k, nil
	}
	return "", fmt.Errorf("axis kind %q: %w", s, oxml.ErrInvalidArgument)
}
