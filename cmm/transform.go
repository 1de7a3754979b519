package cmm

import (
	"fmt"
	"math"
)

// RGBToHSL converts normalized RGB to hue (0-1 turn), saturation and luminance.
func RGBToHSL(r, g, b float64) (h, s, l float64) {
	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	l = (maxC + minC) / 2
	if maxC == minC {
		return 0, 0, l
	}
	d := maxC - minC
	if l > 0.5 {
		s = d / (2 - maxC - minC)
	} else {
		s = d / (maxC + minC)
	}
	switch maxC {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	return h / 6, s, l
}

// HSLToRGB converts hue (0-1 turn), saturation and luminance to normalized RGB.
func HSLToRGB(h, s, l float64) (r, g, b float64) {
	if s == 0 {
		return l, l, l
	}
	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q
	return hueToRGB(p, q, h+1.0/3), hueToRGB(p, q, h), hueToRGB(p, q, h-1.0/3)
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 0.5:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}

// LuminanceTransform applies DrawingML luminance modulation and offset:
// lum' = clamp(lum*Mod + Off) in HSL space. The zero value is not an identity;
// use Mod 1.
type LuminanceTransform struct {
	Mod float64
	Off float64
}

// Identity reports whether the transform leaves colors unchanged.
func (t LuminanceTransform) Identity() bool {
	return t.Mod == 1 && t.Off == 0
}

func (t LuminanceTransform) Convert(src []float64) ([]float64, error) {
	if len(src) != 3 {
		return nil, fmt.Errorf("input channels mismatch: expected 3, got %d", len(src))
	}
	if t.Identity() {
		out := make([]float64, 3)
		copy(out, src)
		return out, nil
	}
	h, s, l := RGBToHSL(src[0], src[1], src[2])
	l = clamp01(l*t.Mod + t.Off)
	r, g, b := HSLToRGB(h, s, l)
	return []float64{r, g, b}, nil
}
