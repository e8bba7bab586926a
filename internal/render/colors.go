package render

import (
	"fmt"
	"image/color"
	"math"
)

// ramp is a sequence of color stops interpolated linearly over [0, 1].
type ramp []color.NRGBA

// reds approximates the sequential "Reds" colormap used by the poster.
var reds = ramp{
	{R: 255, G: 245, B: 240, A: 255},
	{R: 252, G: 187, B: 161, A: 255},
	{R: 251, G: 106, B: 74, A: 255},
	{R: 203, G: 24, B: 29, A: 255},
	{R: 103, G: 0, B: 13, A: 255},
}

// ylOrRd approximates "YlOrRd", used by the web map fills.
var ylOrRd = ramp{
	{R: 255, G: 255, B: 204, A: 255},
	{R: 254, G: 217, B: 118, A: 255},
	{R: 253, G: 141, B: 60, A: 255},
	{R: 227, G: 26, B: 28, A: 255},
	{R: 128, G: 0, B: 38, A: 255},
}

// at returns the ramp color for t in [0, 1]; t is clamped.
func (r ramp) at(t float64) color.NRGBA {
	if t <= 0 || math.IsNaN(t) {
		return r[0]
	}
	if t >= 1 {
		return r[len(r)-1]
	}

	pos := t * float64(len(r)-1)
	i := int(pos)
	frac := pos - float64(i)
	a, b := r[i], r[i+1]
	return color.NRGBA{
		R: lerp(a.R, b.R, frac),
		G: lerp(a.G, b.G, frac),
		B: lerp(a.B, b.B, frac),
		A: 255,
	}
}

// hex returns the ramp color for t as a #rrggbb string for Leaflet styling.
func (r ramp) hex(t float64) string {
	c := r.at(t)
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

// normalize maps v onto [0, 1] over [min, max]. A degenerate range maps
// everything to the ramp midpoint.
func normalize(v, min, max float64) float64 {
	if max <= min {
		return 0.5
	}
	return (v - min) / (max - min)
}
