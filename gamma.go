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

// DisplayGamma is the exponent of the transfer function between display RGB
// and linear RGB.  This is a plain power law, not the piecewise sRGB curve.
const DisplayGamma = 2.2

// RGBToLinear converts gamma encoded display RGB to linear RGB, by raising
// each channel to the power [DisplayGamma].
func RGBToLinear(c Color) Color {
	return Color{
		gammaPow(c[0], DisplayGamma),
		gammaPow(c[1], DisplayGamma),
		gammaPow(c[2], DisplayGamma),
	}
}

// LinearToRGB converts linear RGB to gamma encoded display RGB.
// This is the inverse of [RGBToLinear].
func LinearToRGB(c Color) Color {
	return Color{
		gammaPow(c[0], 1/DisplayGamma),
		gammaPow(c[1], 1/DisplayGamma),
		gammaPow(c[2], 1/DisplayGamma),
	}
}

// gammaPow computes x^g for x > 0.  Non-positive inputs map to 0,
// so that the result is never NaN.
func gammaPow(x, g float64) float64 {
	if x <= 0 {
		return 0
	}
	if g == 1 {
		return x
	}
	return math.Pow(x, g)
}
