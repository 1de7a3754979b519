package dml

import (
	"math"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/wudi/chartkit/oxml"
)

// Percentage wraps an ST_Percentage valued element such as a:lumMod or a:lumOff.
type Percentage struct {
	el *etree.Element
}

// NewPercentage binds a Percentage to el.
func NewPercentage(el *etree.Element) *Percentage {
	return &Percentage{el: el}
}

func (p *Percentage) Element() *etree.Element { return p.el }

// Val returns the raw val attribute, e.g. "75000" for 75%.
func (p *Percentage) Val() string {
	return oxml.AttrString(p.el, "val", "")
}

// SetVal replaces the raw val attribute.
func (p *Percentage) SetVal(val string) {
	oxml.SetAttr(p.el, "val", val)
}

// Fraction returns val as a fraction of one: "75000" and "75%" both give 0.75.
// The second result is false when val is absent, malformed or not finite.
func (p *Percentage) Fraction() (float64, bool) {
	raw := strings.TrimSpace(p.Val())
	if raw == "" {
		return 0, false
	}
	scale := 100000.0
	if pct, ok := strings.CutSuffix(raw, "%"); ok {
		raw, scale = pct, 100
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v / scale, true
}

// SetFraction writes f in thousandths of a percent (0.75 becomes "75000").
func (p *Percentage) SetFraction(f float64) {
	p.SetVal(strconv.Itoa(int(math.Round(f * 100000))))
}
