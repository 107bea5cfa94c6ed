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

// ApplyLiftGammaGain applies a three-way colour grade to a linear RGB colour.
//
// Lift moves the black point, gain scales the white point and gamma bends
// the midtones.  The value 1 for all three leaves the colour unchanged.
func ApplyLiftGammaGain(linear, lift, gamma, gain Color) Color {
	var out Color
	for i := range 3 {
		lifted := max(0, (linear[i]-1)*(2-lift[i])+1)
		gained := lifted * gain[i]
		out[i] = gammaPow(gained, 1/max(gamma[i], 1e-6))
	}
	return out
}

// DefaultTemperatureScale is the default size of the YUV chroma shift
// applied by [ApplyTemperatureTint] for temperature or tint 0.5.
const DefaultTemperatureScale = 0.10

// ApplyTemperatureTint approximates a white balance change on a linear RGB
// colour, by shifting the chroma components in YUV space.
//
// Positive temperature moves towards red and away from blue, positive
// tint moves towards magenta.  The result is clamped to [0, 1].
func ApplyTemperatureTint(linear Color, temperature, tint, scale float64) Color {
	yuv := LinearToYUV(linear)
	yuv[1] += scale * (tint - temperature)
	yuv[2] += scale * (tint + temperature)
	return Clamp(YUVToLinear(yuv))
}

// ApplyBrightness brightens or darkens a linear RGB colour with a power
// curve.  The values 0 and 1 are fixed points for every brightness.
// Brightness is expected in [-0.5, 0.5].
func ApplyBrightness(linear Color, brightness float64) Color {
	const scale = 1.5

	e := 1 / (1 + scale*brightness)
	return Color{
		gammaPow(linear[0], e),
		gammaPow(linear[1], e),
		gammaPow(linear[2], e),
	}
}

// ApplyContrast stretches a linear RGB colour away from (or towards)
// display mid-gray.  The stretch is done in display space.
//
// The distance from mid-gray is multiplied by tan((contrast+1)·π/4), so
// contrast 0 is the identity, 0.5 gives a factor of about 2.41 and -0.5
// a factor of about 0.41.  Negative display values are clipped to 0.
func ApplyContrast(linear Color, contrast float64) Color {
	k := contrastCoefficient(contrast)
	display := LinearToRGB(linear)
	for i, x := range display {
		display[i] = max(0, k*(x-0.5)+0.5)
	}
	return RGBToLinear(display)
}

func contrastCoefficient(contrast float64) float64 {
	return math.Tan((contrast + 1) * math.Pi / 4)
}

// ApplySaturation scales the HSV saturation of a colour by 1+saturation.
// The input is clamped to [0, 1] first, and the resulting saturation is
// limited to [0, 1].
func ApplySaturation(c Color, saturation float64) Color {
	hsv := RGBToHSV(Clamp(c))
	hsv[1] = clamp(hsv[1] * (saturation + 1))
	return HSVToRGB(hsv)
}

// ApplyColorBalance shifts the midtones of a display RGB colour by the given
// per-channel amounts.  The lightness of the input colour is preserved.
func ApplyColorBalance(rgb, shift Color) Color {
	const (
		a     = 0.250
		b     = 0.333
		scale = 0.700
	)

	l := Lightness(rgb)
	w := clamp((l-b)/a+0.5) * clamp((l+b-1)/(-a)+0.5) * scale

	shifted := Clamp(Color{
		rgb[0] + w*shift[0],
		rgb[1] + w*shift[1],
		rgb[2] + w*shift[2],
	})
	hsl := RGBToHSL(shifted)
	return HSLToRGB(Color{hsl[0], hsl[1], l})
}
