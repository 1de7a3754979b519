package chart

import (
	"github.com/beevik/etree"

	"github.com/wudi/chartkit/oxml"
)

// Axis wraps one of c:catAx, c:valAx, c:dateAx or c:serAx. It holds no state
// beyond the element; every getter reads the tree and every setter edits it
// in place.
type Axis struct {
	el *etree.Element
}

// NewAxis binds an Axis to an axis element.
func NewAxis(el *etree.Element) *Axis {
	return &Axis{el: el}
}

func (a *Axis) Element() *etree.Element { return a.el }

// Kind reports which axis element this is.
func (a *Axis) Kind() AxisKind {
	return axisTags[a.el.FullTag()]
}

func (a *Axis) order() []string {
	return orderFor(a.el.FullTag())
}

// Visible reports whether the axis is displayed. The axis is hidden when
// c:delete is absent or true; only an explicit false (0) makes it visible.
func (a *Axis) Visible() bool {
	del := oxml.FirstChild(a.el, "c:delete")
	if del == nil {
		return false
	}
	return !oxml.AttrBool(del, "val", true)
}

// SetVisible shows or hides the axis. Showing writes c:delete{val=0};
// hiding leaves a bare c:delete, whose val defaults to true.
func (a *Axis) SetVisible(visible bool) {
	del := oxml.GetOrAdd(a.el, "c:delete", a.order())
	if visible {
		oxml.SetAttr(del, "val", "0")
		return
	}
	oxml.RemoveAttr(del, "val")
}

// MaximumScale returns the fixed upper bound of the axis, if set.
func (a *Axis) MaximumScale() (float64, bool) {
	return a.scaleBound("c:max")
}

// SetMaximumScale fixes the upper bound of the axis.
func (a *Axis) SetMaximumScale(v float64) {
	a.setScaleBound("c:max", v)
}

// ClearMaximumScale removes the upper bound, letting the application choose.
func (a *Axis) ClearMaximumScale() {
	a.clearScaleBound("c:max")
}

// MinimumScale returns the fixed lower bound of the axis, if set.
func (a *Axis) MinimumScale() (float64, bool) {
	return a.scaleBound("c:min")
}

// SetMinimumScale fixes the lower bound of the axis.
func (a *Axis) SetMinimumScale(v float64) {
	a.setScaleBound("c:min", v)
}

// ClearMinimumScale removes the lower bound.
func (a *Axis) ClearMinimumScale() {
	a.clearScaleBound("c:min")
}

func (a *Axis) scaleBound(tag string) (float64, bool) {
	scaling := oxml.FirstChild(a.el, "c:scaling")
	return oxml.AttrFloat(oxml.FirstChild(scaling, tag), "val")
}

func (a *Axis) setScaleBound(tag string, v float64) {
	scaling := oxml.GetOrAdd(a.el, "c:scaling", a.order())
	oxml.SetFloatAttr(oxml.GetOrAdd(scaling, tag, scalingOrder), "val", v)
}

func (a *Axis) clearScaleBound(tag string) {
	if scaling := oxml.FirstChild(a.el, "c:scaling"); scaling != nil {
		oxml.RemoveAll(scaling, tag)
	}
}

// ReverseOrder reports whether the axis runs from maximum to minimum.
func (a *Axis) ReverseOrder() bool {
	scaling := oxml.FirstChild(a.el, "c:scaling")
	orientation := oxml.FirstChild(scaling, "c:orientation")
	return oxml.AttrString(orientation, "val", "minMax") == "maxMin"
}

// SetReverseOrder writes c:orientation{val=maxMin}, or removes the
// orientation (defaulting to minMax) when reverse is false.
func (a *Axis) SetReverseOrder(reverse bool) {
	if !reverse {
		if scaling := oxml.FirstChild(a.el, "c:scaling"); scaling != nil {
			oxml.RemoveAll(scaling, "c:orientation")
		}
		return
	}
	scaling := oxml.GetOrAdd(a.el, "c:scaling", a.order())
	oxml.SetAttr(oxml.GetOrAdd(scaling, "c:orientation", scalingOrder), "val", "maxMin")
}

// MajorTickMark returns the major tick style, TickMarkCross when unset.
func (a *Axis) MajorTickMark() TickMark {
	return a.tickMark("c:majorTickMark")
}

// SetMajorTickMark sets the major tick style. TickMarkCross, the default,
// removes c:majorTickMark. Values outside ST_TickMark are ignored.
func (a *Axis) SetMajorTickMark(m TickMark) {
	a.setTickMark("c:majorTickMark", m)
}

// MinorTickMark returns the minor tick style, TickMarkCross when unset.
func (a *Axis) MinorTickMark() TickMark {
	return a.tickMark("c:minorTickMark")
}

// SetMinorTickMark sets the minor tick style. TickMarkCross removes
// c:minorTickMark. Values outside ST_TickMark are ignored.
func (a *Axis) SetMinorTickMark(m TickMark) {
	a.setTickMark("c:minorTickMark", m)
}

func (a *Axis) tickMark(tag string) TickMark {
	el := oxml.FirstChild(a.el, tag)
	m, err := ParseTickMark(oxml.AttrString(el, "val", TickMarkCross.String()))
	if err != nil {
		return TickMarkCross
	}
	return m
}

func (a *Axis) setTickMark(tag string, m TickMark) {
	if !m.Valid() {
		return
	}
	if m == TickMarkCross {
		oxml.RemoveAll(a.el, tag)
		return
	}
	oxml.SetAttr(oxml.GetOrAdd(a.el, tag, a.order()), "val", m.String())
}

// HasMajorGridlines reports whether c:majorGridlines is present.
func (a *Axis) HasMajorGridlines() bool {
	return oxml.FirstChild(a.el, "c:majorGridlines") != nil
}

// SetHasMajorGridlines adds or removes c:majorGridlines.
func (a *Axis) SetHasMajorGridlines(on bool) {
	a.setPresence("c:majorGridlines", on)
}

// HasMinorGridlines reports whether c:minorGridlines is present.
func (a *Axis) HasMinorGridlines() bool {
	return oxml.FirstChild(a.el, "c:minorGridlines") != nil
}

// SetHasMinorGridlines adds or removes c:minorGridlines.
func (a *Axis) SetHasMinorGridlines(on bool) {
	a.setPresence("c:minorGridlines", on)
}

func (a *Axis) setPresence(tag string, on bool) {
	if !on {
		oxml.RemoveAll(a.el, tag)
		return
	}
	oxml.GetOrAdd(a.el, tag, a.order())
}

// TickLabelPosition returns where tick labels are drawn, TickLabelNextTo
// when unset.
func (a *Axis) TickLabelPosition() TickLabelPosition {
	el := oxml.FirstChild(a.el, "c:tickLblPos")
	p, err := ParseTickLabelPosition(oxml.AttrString(el, "val", TickLabelNextTo.String()))
	if err != nil {
		return TickLabelNextTo
	}
	return p
}

// SetTickLabelPosition sets the label position; TickLabelNextTo removes
// c:tickLblPos. Values outside ST_TickLblPos are ignored.
func (a *Axis) SetTickLabelPosition(p TickLabelPosition) {
	if !p.Valid() {
		return
	}
	if p == TickLabelNextTo {
		oxml.RemoveAll(a.el, "c:tickLblPos")
		return
	}
	oxml.SetAttr(oxml.GetOrAdd(a.el, "c:tickLblPos", a.order()), "val", p.String())
}

// TickLabels returns the tick label accessor for this axis.
func (a *Axis) TickLabels() *TickLabels {
	return NewTickLabels(a.el)
}
