package dml

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/wudi/chartkit/cmm"
)

// ErrUnresolvedColor is returned when a color element cannot be mapped to RGB.
var ErrUnresolvedColor = errors.New("unresolved color")

// Resolve computes the effective RGB of c: the base color from its val
// (hex, theme slot, preset name or system last color) with any lumMod and
// lumOff applied in HSL space. A nil theme uses DefaultTheme.
func Resolve(c Color, theme Theme) (cmm.RGB, error) {
	if theme == nil {
		theme = DefaultTheme
	}
	base, err := baseColor(c, theme)
	if err != nil {
		return cmm.RGB{}, err
	}
	t := cmm.LuminanceTransform{Mod: 1}
	if p := c.LumMod(); p != nil {
		if f, ok := p.Fraction(); ok {
			t.Mod = f
		}
	}
	if p := c.LumOff(); p != nil {
		if f, ok := p.Fraction(); ok {
			t.Off = f
		}
	}
	return base.Apply(t)
}

func baseColor(c Color, theme Theme) (cmm.RGB, error) {
	switch v := c.(type) {
	case *SRGBColor:
		rgb, err := cmm.ParseHex(v.Val())
		if err != nil {
			return cmm.RGB{}, fmt.Errorf("%w: %v", ErrUnresolvedColor, err)
		}
		return rgb, nil
	case *SchemeColor:
		tc, ok := ThemeColorFromString(v.Val())
		if !ok {
			return cmm.RGB{}, fmt.Errorf("%w: unknown theme color %q", ErrUnresolvedColor, v.Val())
		}
		rgb, ok := theme.Lookup(tc)
		if !ok {
			return cmm.RGB{}, fmt.Errorf("%w: theme has no %s", ErrUnresolvedColor, tc)
		}
		return rgb, nil
	case *PresetColor:
		rgb, ok := PresetRGB(v.Val())
		if !ok {
			return cmm.RGB{}, fmt.Errorf("%w: unknown preset color %q", ErrUnresolvedColor, v.Val())
		}
		return rgb, nil
	case *SystemColor:
		rgb, err := cmm.ParseHex(v.LastColor())
		if err != nil {
			return cmm.RGB{}, fmt.Errorf("%w: sysClr %s: %v", ErrUnresolvedColor, v.Val(), err)
		}
		return rgb, nil
	}
	return cmm.RGB{}, fmt.Errorf("%w: unsupported color %T", ErrUnresolvedColor, c)
}

// presetAbbrev expands the DrawingML abbreviations used in ST_PresetColorVal.
var presetAbbrev = []struct{ short, long string }{
	{"dk", "dark"},
	{"lt", "light"},
	{"med", "medium"},
}

// PresetRGB maps an ST_PresetColorVal name such as "dkSlateGray" to its RGB
// value using the SVG 1.1 named colors.
func PresetRGB(name string) (cmm.RGB, bool) {
	key := strings.ToLower(name)
	if c, ok := colornames.Map[key]; ok {
		return cmm.RGB{R: c.R, G: c.G, B: c.B}, true
	}
	for _, ab := range presetAbbrev {
		if rest, ok := strings.CutPrefix(key, ab.short); ok {
			if c, ok := colornames.Map[ab.long+rest]; ok {
				return cmm.RGB{R: c.R, G: c.G, B: c.B}, true
			}
		}
	}
	return cmm.RGB{}, false
}
