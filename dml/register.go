package dml

import (
	"github.com/beevik/etree"

	"github.com/wudi/chartkit/oxml"
)

var percentageTags = []string{"a:lumMod", "a:lumOff", "a:tint", "a:shade", "a:alpha"}

func init() {
	for _, tag := range percentageTags {
		oxml.Register(tag, func(el *etree.Element) oxml.Node { return NewPercentage(el) })
	}
	oxml.Register("a:schemeClr", func(el *etree.Element) oxml.Node { return NewSchemeColor(el) })
	oxml.Register("a:srgbClr", func(el *etree.Element) oxml.Node { return NewSRGBColor(el) })
	oxml.Register("a:prstClr", func(el *etree.Element) oxml.Node { return NewPresetColor(el) })
	oxml.Register("a:sysClr", func(el *etree.Element) oxml.Node { return NewSystemColor(el) })
	oxml.Register("a:solidFill", func(el *etree.Element) oxml.Node { return NewSolidFill(el) })
}
