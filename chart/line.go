package chart

import (
	"github.com/wudi/chartkit/dml"
	"github.com/wudi/chartkit/oxml"
)

var spPrOrder = []string{
	"a:xfrm", "a:custGeom", "a:prstGeom", "a:noFill", "a:solidFill", "a:gradFill",
	"a:blipFill", "a:pattFill", "a:grpFill", "a:ln", "a:effectLst", "a:effectDag",
	"a:scene3d", "a:sp3d", "a:extLst",
}

var lnFills = []string{"a:noFill", "a:solidFill", "a:gradFill", "a:pattFill"}

var lnOrder = []string{
	"a:noFill", "a:solidFill", "a:gradFill", "a:pattFill", "a:prstDash",
	"a:custDash", "a:round", "a:bevel", "a:miter", "a:headEnd", "a:tailEnd",
	"a:extLst",
}

// LineFill returns the solid fill of the axis line
// (c:spPr/a:ln/a:solidFill), or nil when the line has no solid fill.
func (a *Axis) LineFill() *dml.SolidFill {
	ln := oxml.FirstChild(oxml.FirstChild(a.el, "c:spPr"), "a:ln")
	if el := oxml.FirstChild(ln, "a:solidFill"); el != nil {
		return dml.NewSolidFill(el)
	}
	return nil
}

// GetOrAddLineFill returns the solid fill of the axis line, creating
// c:spPr/a:ln as needed and replacing any other line fill.
func (a *Axis) GetOrAddLineFill() *dml.SolidFill {
	spPr := oxml.GetOrAdd(a.el, "c:spPr", a.order())
	ln := oxml.GetOrAdd(spPr, "a:ln", spPrOrder)
	return dml.NewSolidFill(oxml.ChangeChoice(ln, "a:solidFill", lnFills, lnOrder))
}
