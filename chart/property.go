package chart

import (
	"fmt"
	"math"

	"github.com/wudi/chartkit/oxml"
)

// Property names accepted by Axis.Get and Axis.Set.
const (
	PropVisible              = "visible"
	PropMaximumScale         = "maximum_scale"
	PropMinimumScale         = "minimum_scale"
	PropMajorTickMark        = "major_tick_mark"
	PropMinorTickMark        = "minor_tick_mark"
	PropHasMajorGridlines    = "has_major_gridlines"
	PropHasMinorGridlines    = "has_minor_gridlines"
	PropReverseOrder         = "reverse_order"
	PropTickLabelPosition    = "tick_label_position"
	PropNumberFormat         = "number_format"
	PropNumberFormatIsLinked = "number_format_is_linked"
	PropTickLabelOffset      = "tick_label_offset"
)

// Properties lists every dynamic property in presentation order.
var Properties = []string{
	PropVisible, PropMaximumScale, PropMinimumScale, PropMajorTickMark,
	PropMinorTickMark, PropHasMajorGridlines, PropHasMinorGridlines,
	PropReverseOrder, PropTickLabelPosition, PropNumberFormat,
	PropNumberFormatIsLinked, PropTickLabelOffset,
}

// Get reads a property by name. Enumerations are returned as their XML
// string values and unset scale bounds as nil, so results map directly onto
// script and YAML values.
func (a *Axis) Get(prop string) (interface{}, error) {
	switch prop {
	case PropVisible:
		return a.Visible(), nil
	case PropMaximumScale:
		return optionalFloat(a.MaximumScale()), nil
	case PropMinimumScale:
		return optionalFloat(a.MinimumScale()), nil
	case PropMajorTickMark:
		return a.MajorTickMark().String(), nil
	case PropMinorTickMark:
		return a.MinorTickMark().String(), nil
	case PropHasMajorGridlines:
		return a.HasMajorGridlines(), nil
	case PropHasMinorGridlines:
		return a.HasMinorGridlines(), nil
	case PropReverseOrder:
		return a.ReverseOrder(), nil
	case PropTickLabelPosition:
		return a.TickLabelPosition().String(), nil
	case PropNumberFormat:
		return a.TickLabels().NumberFormat(), nil
	case PropNumberFormatIsLinked:
		return a.TickLabels().NumberFormatIsLinked(), nil
	case PropTickLabelOffset:
		return a.TickLabels().Offset(), nil
	}
	return nil, fmt.Errorf("get %q: %w", prop, oxml.ErrUnknownProperty)
}

// Set assigns a property by name from a dynamically typed value. Boolean
// properties accept only bool; scale bounds accept any number or nil (which
// clears the bound); enumerations accept their typed value or XML string.
// A value of the wrong type or outside the property's range fails with
// oxml.ErrInvalidArgument and leaves the tree untouched.
func (a *Axis) Set(prop string, value interface{}) error {
	switch prop {
	case PropVisible, PropHasMajorGridlines, PropHasMinorGridlines, PropReverseOrder, PropNumberFormatIsLinked:
		b, ok := value.(bool)
		if !ok {
			return invalid(prop, value)
		}
		switch prop {
		case PropVisible:
			a.SetVisible(b)
		case PropHasMajorGridlines:
			a.SetHasMajorGridlines(b)
		case PropHasMinorGridlines:
			a.SetHasMinorGridlines(b)
		case PropReverseOrder:
			a.SetReverseOrder(b)
		case PropNumberFormatIsLinked:
			a.TickLabels().SetNumberFormatIsLinked(b)
		}
		return nil

	case PropMaximumScale, PropMinimumScale:
		if value == nil {
			if prop == PropMaximumScale {
				a.ClearMaximumScale()
			} else {
				a.ClearMinimumScale()
			}
			return nil
		}
		f, ok := toFloat(value)
		if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
			return invalid(prop, value)
		}
		if prop == PropMaximumScale {
			a.SetMaximumScale(f)
		} else {
			a.SetMinimumScale(f)
		}
		return nil

	case PropMajorTickMark, PropMinorTickMark:
		m, err := toTickMark(value)
		if err != nil {
			return fmt.Errorf("set %s: %w", prop, err)
		}
		if prop == PropMajorTickMark {
			a.SetMajorTickMark(m)
		} else {
			a.SetMinorTickMark(m)
		}
		return nil

	case PropTickLabelPosition:
		var p TickLabelPosition
		switch v := value.(type) {
		case TickLabelPosition:
			if !v.Valid() {
				return invalid(prop, value)
			}
			p = v
		case string:
			parsed, err := ParseTickLabelPosition(v)
			if err != nil {
				return fmt.Errorf("set %s: %w", prop, err)
			}
			p = parsed
		default:
			return invalid(prop, value)
		}
		a.SetTickLabelPosition(p)
		return nil

	case PropNumberFormat:
		s, ok := value.(string)
		if !ok {
			return invalid(prop, value)
		}
		a.TickLabels().SetNumberFormat(s)
		return nil

	case PropTickLabelOffset:
		f, ok := toFloat(value)
		if !ok || f != math.Trunc(f) {
			return invalid(prop, value)
		}
		if err := a.TickLabels().SetOffset(int(f)); err != nil {
			return fmt.Errorf("set %s: %w", prop, err)
		}
		return nil
	}
	return fmt.Errorf("set %q: %w", prop, oxml.ErrUnknownProperty)
}

// Check returns the error Set would return for the same arguments without
// modifying the axis.
func (a *Axis) Check(prop string, value interface{}) error {
	return NewAxis(a.el.Copy()).Set(prop, value)
}

func invalid(prop string, value interface{}) error {
	return fmt.Errorf("set %s to %v (%T): %w", prop, value, value, oxml.ErrInvalidArgument)
}

func optionalFloat(v float64, ok bool) interface{} {
	if !ok {
		return nil
	}
	return v
}

func toFloat(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	}
	return 0, false
}

func toTickMark(value interface{}) (TickMark, error) {
	switch v := value.(type) {
	case TickMark:
		if v.Valid() {
			return v, nil
		}
	case string:
		return ParseTickMark(v)
	}
	return TickMarkCross, fmt.Errorf("tick mark %v (%T): %w", value, value, oxml.ErrInvalidArgument)
}
