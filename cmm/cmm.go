package cmm

import "math"

// Transform represents a color transformation over normalized components.
type Transform interface {
	// Convert transforms a color value. Components are in [0, 1].
	Convert(src []float64) ([]float64, error)
}

// RGB is an sRGB color with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// Components returns the color as normalized [r, g, b].
func (c RGB) Components() []float64 {
	return []float64{float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255}
}

// FromComponents builds an RGB from normalized components, clamping and
// rounding each channel.
func FromComponents(v []float64) RGB {
	ch := func(f float64) uint8 {
		return uint8(clamp01(f)*255 + 0.5)
	}
	return RGB{R: ch(v[0]), G: ch(v[1]), B: ch(v[2])}
}

// Hex returns the six-digit upper-case hex form used by a:srgbClr.
func (c RGB) Hex() string {
	return FormatHex(c)
}

// Apply runs c through t.
func (c RGB) Apply(t Transform) (RGB, error) {
	out, err := t.Convert(c.Components())
	if err != nil {
		return RGB{}, err
	}
	return FromComponents(out), nil
}

func clamp01(f float64) float64 {
	switch {
	case f < 0 || math.IsNaN(f):
		return 0
	case f > 1:
		return 1
	}
	return f
}
