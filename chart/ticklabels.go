package chart

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/wudi/chartkit/oxml"
)

// DefaultNumberFormat is reported when an axis has no c:numFmt.
const DefaultNumberFormat = "General"

const defaultLabelOffset = 100

// MaxLabelOffset is the upper bound of ST_LblOffsetPercent.
const MaxLabelOffset = 1000

// TickLabels exposes the tick label settings stored on an axis element.
type TickLabels struct {
	el *etree.Element
}

// NewTickLabels binds TickLabels to an axis element.
func NewTickLabels(axis *etree.Element) *TickLabels {
	return &TickLabels{el: axis}
}

func (t *TickLabels) Element() *etree.Element { return t.el }

// NumberFormat returns c:numFmt@formatCode, "General" when unset.
func (t *TickLabels) NumberFormat() string {
	return oxml.AttrString(oxml.FirstChild(t.el, "c:numFmt"), "formatCode", DefaultNumberFormat)
}

// SetNumberFormat writes the format code, adding c:numFmt if needed.
func (t *TickLabels) SetNumberFormat(format string) {
	oxml.SetAttr(t.numFmt(), "formatCode", format)
}

// NumberFormatIsLinked reports whether labels take their format from the
// source data (c:numFmt@sourceLinked).
func (t *TickLabels) NumberFormatIsLinked() bool {
	return oxml.AttrBool(oxml.FirstChild(t.el, "c:numFmt"), "sourceLinked", false)
}

// SetNumberFormatIsLinked writes c:numFmt@sourceLinked. A c:numFmt created
// for this gets formatCode "General", which the schema requires.
func (t *TickLabels) SetNumberFormatIsLinked(linked bool) {
	numFmt := t.numFmt()
	if !oxml.HasAttr(numFmt, "formatCode") {
		oxml.SetAttr(numFmt, "formatCode", DefaultNumberFormat)
	}
	oxml.SetAttr(numFmt, "sourceLinked", oxml.FormatXsdBool(linked))
}

func (t *TickLabels) numFmt() *etree.Element {
	return oxml.GetOrAdd(t.el, "c:numFmt", orderFor(t.el.FullTag()))
}

// Offset returns the label distance from the axis in percent of the default
// (c:lblOffset, 100 when unset). Only category and date axes carry it.
func (t *TickLabels) Offset() int {
	return oxml.AttrInt(oxml.FirstChild(t.el, "c:lblOffset"), "val", defaultLabelOffset)
}

// SetOffset writes c:lblOffset. The value must be within 0-1000; 100 removes
// the element. Value and series axes reject the call.
func (t *TickLabels) SetOffset(offset int) error {
	tag := t.el.FullTag()
	if !axisTags[tag].HasLabelOffset() {
		return fmt.Errorf("label offset on %s: %w", tag, oxml.ErrInvalidArgument)
	}
	if offset < 0 || offset > MaxLabelOffset {
		return fmt.Errorf("label offset %d out of range 0-%d: %w", offset, MaxLabelOffset, oxml.ErrInvalidArgument)
	}
	if offset == defaultLabelOffset {
		oxml.RemoveAll(t.el, "c:lblOffset")
		return nil
	}
	oxml.SetAttr(oxml.GetOrAdd(t.el, "c:lblOffset", orderFor(tag)), "val", fmt.Sprint(offset))
	return nil
}
