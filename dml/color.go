package dml

import (
	"github.com/beevik/etree"

	"github.com/wudi/chartkit/oxml"
)

// Color is implemented by the color choice elements of a:solidFill that carry
// a val attribute and luminance modifiers.
type Color interface {
	oxml.Node
	Val() string
	LumMod() *Percentage
	LumOff() *Percentage
}

var lumOrder = []string{"a:lumMod", "a:lumOff"}

type colorElement struct {
	el *etree.Element
}

func (c colorElement) Element() *etree.Element { return c.el }

// Val returns the val attribute, "" when absent.
func (c colorElement) Val() string {
	return oxml.AttrString(c.el, "val", "")
}

// LumMod returns the a:lumMod child, or nil if there is none.
func (c colorElement) LumMod() *Percentage {
	return percentageOrNil(oxml.FirstChild(c.el, "a:lumMod"))
}

// LumOff returns the a:lumOff child, or nil if there is none.
func (c colorElement) LumOff() *Percentage {
	return percentageOrNil(oxml.FirstChild(c.el, "a:lumOff"))
}

// GetOrAddLumMod returns the a:lumMod child, adding an empty one if needed.
func (c colorElement) GetOrAddLumMod() *Percentage {
	return NewPercentage(oxml.GetOrAdd(c.el, "a:lumMod", lumOrder))
}

// GetOrAddLumOff returns the a:lumOff child, adding an empty one if needed.
func (c colorElement) GetOrAddLumOff() *Percentage {
	return NewPercentage(oxml.GetOrAdd(c.el, "a:lumOff", lumOrder))
}

// ClearLumModifiers removes every a:lumMod and a:lumOff child.
func (c colorElement) ClearLumModifiers() {
	oxml.RemoveAll(c.el, lumOrder...)
}

func percentageOrNil(el *etree.Element) *Percentage {
	if el == nil {
		return nil
	}
	return NewPercentage(el)
}

// SchemeColor wraps a:schemeClr, a reference to a theme color.
type SchemeColor struct {
	colorElement
}

func NewSchemeColor(el *etree.Element) *SchemeColor {
	return &SchemeColor{colorElement{el: el}}
}

// SetVal sets the theme color name, e.g. "accent1".
func (c *SchemeColor) SetVal(val string) {
	oxml.SetAttr(c.el, "val", val)
}

// ThemeColor returns the typed theme color, ThemeColorNone if unrecognized.
func (c *SchemeColor) ThemeColor() ThemeColor {
	tc, _ := ThemeColorFromString(c.Val())
	return tc
}

// SRGBColor wraps a:srgbClr, an explicit six-digit hex RGB color.
type SRGBColor struct {
	colorElement
}

func NewSRGBColor(el *etree.Element) *SRGBColor {
	return &SRGBColor{colorElement{el: el}}
}

// SetVal sets the hex RGB string, e.g. "3C7AB0".
func (c *SRGBColor) SetVal(val string) {
	oxml.SetAttr(c.el, "val", val)
}

// PresetColor wraps a:prstClr, a named preset color such as "dkBlue".
type PresetColor struct {
	colorElement
}

func NewPresetColor(el *etree.Element) *PresetColor {
	return &PresetColor{colorElement{el: el}}
}

// SystemColor wraps a:sysClr. LastColor is the hex RGB the producer last
// computed for the system color.
type SystemColor struct {
	colorElement
}

func NewSystemColor(el *etree.Element) *SystemColor {
	return &SystemColor{colorElement{el: el}}
}

func (c *SystemColor) LastColor() string {
	return oxml.AttrString(c.el, "lastClr", "")
}
