package dml

import (
	"github.com/beevik/etree"

	"github.com/wudi/chartkit/oxml"
)

// colorChoices are the mutually exclusive color children of a:solidFill, in
// schema order.
var colorChoices = []string{
	"a:scrgbClr", "a:srgbClr", "a:hslClr", "a:sysClr", "a:schemeClr", "a:prstClr",
}

// SolidFill wraps a:solidFill, which holds at most one color choice.
type SolidFill struct {
	el *etree.Element
}

func NewSolidFill(el *etree.Element) *SolidFill {
	return &SolidFill{el: el}
}

func (f *SolidFill) Element() *etree.Element { return f.el }

// SchemeClr returns the a:schemeClr child, or nil.
func (f *SolidFill) SchemeClr() *SchemeColor {
	if el := oxml.FirstChild(f.el, "a:schemeClr"); el != nil {
		return NewSchemeColor(el)
	}
	return nil
}

// SRGBClr returns the a:srgbClr child, or nil.
func (f *SolidFill) SRGBClr() *SRGBColor {
	if el := oxml.FirstChild(f.el, "a:srgbClr"); el != nil {
		return NewSRGBColor(el)
	}
	return nil
}

// PrstClr returns the a:prstClr child, or nil.
func (f *SolidFill) PrstClr() *PresetColor {
	if el := oxml.FirstChild(f.el, "a:prstClr"); el != nil {
		return NewPresetColor(el)
	}
	return nil
}

// Color returns the color choice present, or nil when the fill is empty or
// holds a:scrgbClr or a:hslClr, which have no val attribute.
func (f *SolidFill) Color() Color {
	el := oxml.FirstChild(f.el, colorChoices...)
	if el == nil {
		return nil
	}
	c, _ := oxml.Wrap(el).(Color)
	return c
}

// GetOrChangeToSRGBClr returns the a:srgbClr child. Any other color choice is
// removed and replaced with an empty a:srgbClr first.
func (f *SolidFill) GetOrChangeToSRGBClr() *SRGBColor {
	return NewSRGBColor(oxml.ChangeChoice(f.el, "a:srgbClr", colorChoices, colorChoices))
}

// GetOrChangeToSchemeClr returns the a:schemeClr child. Any other color
// choice is removed and replaced with an empty a:schemeClr first.
func (f *SolidFill) GetOrChangeToSchemeClr() *SchemeColor {
	return NewSchemeColor(oxml.ChangeChoice(f.el, "a:schemeClr", colorChoices, colorChoices))
}
