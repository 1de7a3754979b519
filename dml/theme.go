package dml

import "github.com/wudi/chartkit/cmm"

// ThemeColor identifies a color slot of the document theme, as referenced by
// a:schemeClr@val.
type ThemeColor int

const (
	ThemeColorNone ThemeColor = iota
	ThemeColorAccent1
	ThemeColorAccent2
	ThemeColorAccent3
	ThemeColorAccent4
	ThemeColorAccent5
	ThemeColorAccent6
	ThemeColorBackground1
	ThemeColorBackground2
	ThemeColorDark1
	ThemeColorDark2
	ThemeColorFollowedHyperlink
	ThemeColorHyperlink
	ThemeColorLight1
	ThemeColorLight2
	ThemeColorText1
	ThemeColorText2
	ThemeColorPlaceholder
)

var themeColorNames = map[ThemeColor]string{
	ThemeColorAccent1:           "accent1",
	ThemeColorAccent2:           "accent2",
	ThemeColorAccent3:           "accent3",
	ThemeColorAccent4:           "accent4",
	ThemeColorAccent5:           "accent5",
	ThemeColorAccent6:           "accent6",
	ThemeColorBackground1:       "bg1",
	ThemeColorBackground2:       "bg2",
	ThemeColorDark1:             "dk1",
	ThemeColorDark2:             "dk2",
	ThemeColorFollowedHyperlink: "folHlink",
	ThemeColorHyperlink:         "hlink",
	ThemeColorLight1:            "lt1",
	ThemeColorLight2:            "lt2",
	ThemeColorText1:             "tx1",
	ThemeColorText2:             "tx2",
	ThemeColorPlaceholder:       "phClr",
}

var themeColorsByName = func() map[string]ThemeColor {
	m := make(map[string]ThemeColor, len(themeColorNames))
	for tc, name := range themeColorNames {
		m[name] = tc
	}
	return m
}()

// String returns the XML value of the theme color, "" for ThemeColorNone.
func (tc ThemeColor) String() string {
	return themeColorNames[tc]
}

// ThemeColorFromString maps an a:schemeClr@val value to its ThemeColor.
func ThemeColorFromString(s string) (ThemeColor, bool) {
	tc, ok := themeColorsByName[s]
	return tc, ok
}

// slot maps the background/text aliases onto the theme slots they use under
// the default color map.
func (tc ThemeColor) slot() ThemeColor {
	switch tc {
	case ThemeColorBackground1:
		return ThemeColorLight1
	case ThemeColorBackground2:
		return ThemeColorLight2
	case ThemeColorText1:
		return ThemeColorDark1
	case ThemeColorText2:
		return ThemeColorDark2
	}
	return tc
}

// Theme maps theme color slots to concrete colors.
type Theme map[ThemeColor]cmm.RGB

// DefaultTheme is the Office 2013-2022 theme palette.
var DefaultTheme = Theme{
	ThemeColorDark1:             {R: 0x00, G: 0x00, B: 0x00},
	ThemeColorLight1:            {R: 0xFF, G: 0xFF, B: 0xFF},
	ThemeColorDark2:             {R: 0x44, G: 0x54, B: 0x6A},
	ThemeColorLight2:            {R: 0xE7, G: 0xE6, B: 0xE6},
	ThemeColorAccent1:           {R: 0x44, G: 0x72, B: 0xC4},
	ThemeColorAccent2:           {R: 0xED, G: 0x7D, B: 0x31},
	ThemeColorAccent3:           {R: 0xA5, G: 0xA5, B: 0xA5},
	ThemeColorAccent4:           {R: 0xFF, G: 0xC0, B: 0x00},
	ThemeColorAccent5:           {R: 0x5B, G: 0x9B, B: 0xD5},
	ThemeColorAccent6:           {R: 0x70, G: 0xAD, B: 0x47},
	ThemeColorHyperlink:         {R: 0x05, G: 0x63, B: 0xC1},
	ThemeColorFollowedHyperlink: {R: 0x95, G: 0x4F, B: 0x72},
}

// Lookup returns the color for tc, following the bg/tx aliases.
func (t Theme) Lookup(tc ThemeColor) (cmm.RGB, bool) {
	if rgb, ok := t[tc]; ok {
		return rgb, true
	}
	rgb, ok := t[tc.slot()]
	return rgb, ok
}
