// seehuhn.de/go/enhancer - parameterised colour enhancement
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package enhancer

import "math"

// BT.709 luma weights and chroma ranges.
const (
	bt709Kr   = 0.2126
	bt709Kb   = 0.0722
	bt709Kg   = 1 - bt709Kr - bt709Kb
	bt709UMax = 0.436
	bt709VMax = 0.615
)

// linearToYUV maps linear RGB to Y'UV (BT.709).
// The rows compute Y, U and V respectively.
var linearToYUV = [3][3]float64{
	{bt709Kr, bt709Kg, bt709Kb},
	{-bt709UMax * bt709Kr / (1 - bt709Kb), -bt709UMax * bt709Kg / (1 - bt709Kb), bt709UMax},
	{bt709VMax, -bt709VMax * bt709Kg / (1 - bt709Kr), -bt709VMax * bt709Kb / (1 - bt709Kr)},
}

// yuvToLinear is the inverse of linearToYUV.
// Both matrices are evaluated from the same exact constants, so that
// they are inverse to each other up to float64 rounding.
var yuvToLinear = [3][3]float64{
	{1, 0, (1 - bt709Kr) / bt709VMax},
	{1, -bt709Kb * (1 - bt709Kb) / (bt709UMax * bt709Kg), -bt709Kr * (1 - bt709Kr) / (bt709VMax * bt709Kg)},
	{1, (1 - bt709Kb) / bt709UMax, 0},
}

// LinearToYUV converts linear RGB to Y'UV, using the BT.709 coefficients.
func LinearToYUV(c Color) Color {
	return applyMatrix3x3(&linearToYUV, c)
}

// YUVToLinear converts Y'UV (BT.709) to linear RGB.
// This is the inverse of [LinearToYUV].
func YUVToLinear(c Color) Color {
	return applyMatrix3x3(&yuvToLinear, c)
}

func applyMatrix3x3(m *[3][3]float64, c Color) Color {
	return Color{
		m[0][0]*c[0] + m[0][1]*c[1] + m[0][2]*c[2],
		m[1][0]*c[0] + m[1][1]*c[1] + m[1][2]*c[2],
		m[2][0]*c[0] + m[2][1]*c[1] + m[2][2]*c[2],
	}
}

// chromaEpsilon is the chroma below which a colour is treated as achromatic.
const chromaEpsilon = 1e-14

// Hue returns the hue of an RGB colour, as a fraction of a full turn in
// [0, 1).  Achromatic colours have hue 0.
//
// If two channels tie for the minimum, blue takes precedence over red, and
// red over green.
func Hue(c Color) float64 {
	r, g, b := c[0], c[1], c[2]
	M := max(r, g, b)
	m := min(r, g, b)

	var h float64
	switch {
	case M == m:
		return 0
	case m == b:
		h = 60*(g-r)/(M-m) + 60
	case m == r:
		h = 60*(b-g)/(M-m) + 180
	case m == g:
		h = 60*(r-b)/(M-m) + 300
	default: // NaN input
		return 0
	}
	h /= 360

	// a single wrap is enough for any value computed above
	if h < 0 {
		h++
	} else if h >= 1 {
		h--
	}
	return h
}

// SaturationHSV returns the HSV saturation (M-m)/M of an RGB colour.
// Colours with maximum channel below 1e-14 have saturation 0.
func SaturationHSV(c Color) float64 {
	M := max(c[0], c[1], c[2])
	m := min(c[0], c[1], c[2])
	if M < chromaEpsilon {
		return 0
	}
	return (M - m) / M
}

// SaturationHSL returns the HSL saturation of an RGB colour.
// Colours with chroma below 1e-14 have saturation 0.
func SaturationHSL(c Color) float64 {
	M := max(c[0], c[1], c[2])
	m := min(c[0], c[1], c[2])
	if M-m < chromaEpsilon {
		return 0
	}
	return (M - m) / (1 - math.Abs(M+m-1))
}

// Lightness returns the HSL lightness (M+m)/2 of an RGB colour.
func Lightness(c Color) float64 {
	M := max(c[0], c[1], c[2])
	m := min(c[0], c[1], c[2])
	return 0.5 * (M + m)
}

// RGBToHSV converts an RGB colour to hue, saturation and value.
// The value is the largest of the three channels.
func RGBToHSV(c Color) Color {
	return Color{Hue(c), SaturationHSV(c), max(c[0], c[1], c[2])}
}

// HSVToRGB converts hue, saturation and value to RGB.
// This is the inverse of [RGBToHSV].
func HSVToRGB(hsv Color) Color {
	h, s, v := hsv[0], hsv[1], hsv[2]
	if s < chromaEpsilon {
		return Color{v, v, v}
	}

	h6 := h * 6
	fl := math.Floor(h6)
	i := int(fl) % 6
	if i < 0 {
		i += 6
	}
	f := h6 - fl
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	switch i {
	case 0:
		return Color{v, t, p}
	case 1:
		return Color{q, v, p}
	case 2:
		return Color{p, v, t}
	case 3:
		return Color{p, q, v}
	case 4:
		return Color{t, p, v}
	default:
		return Color{v, p, q}
	}
}

// RGBToHSL converts an RGB colour to hue, saturation and lightness.
func RGBToHSL(c Color) Color {
	return Color{Hue(c), SaturationHSL(c), Lightness(c)}
}

// HSLToRGB converts hue, saturation and lightness to RGB.
// This is the inverse of [RGBToHSL].
func HSLToRGB(hsl Color) Color {
	h, s, l := hsl[0], hsl[1], hsl[2]
	if s == 0 {
		return Color{l, l, l}
	}

	var f2 float64
	if l < 0.5 {
		f2 = l * (1 + s)
	} else {
		f2 = l + s - s*l
	}
	f1 := 2*l - f2

	return Color{
		hueToChannel(f1, f2, h+1.0/3.0),
		hueToChannel(f1, f2, h),
		hueToChannel(f1, f2, h-1.0/3.0),
	}
}

// hueToChannel evaluates the piecewise linear HSL channel profile at the
// given hue.  The hue may be off by at most one turn.
func hueToChannel(f1, f2, h float64) float64 {
	if h < 0 {
		h++
	}
	if h > 1 {
		h--
	}

	switch {
	case 6*h < 1:
		return f1 + (f2-f1)*6*h
	case 2*h < 1:
		return f2
	case 3*h < 2:
		return f1 + (f2-f1)*(2.0/3.0-h)*6
	default:
		return f1
	}
}

// Clamp limits each channel of c to the range [0, 1].
// NaN channels map to 0.
func Clamp(c Color) Color {
	return Color{clamp(c[0]), clamp(c[1]), clamp(c[2])}
}

func clamp(x float64) float64 {
	if !(x > 0) {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
