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

// tetrahedralInterp performs tetrahedral interpolation in a 3D colour grid.
//
// The grid holds size^3 RGB triples, with the red index varying slowest and
// the blue index fastest.  The input channels are clamped to [0, 1].
func tetrahedralInterp(grid []float64, size int, c Color) Color {
	if size < 2 {
		return Color{grid[0], grid[1], grid[2]}
	}

	scale := float64(size - 1)
	var idx [3]int
	var frac [3]float64
	for k := range 3 {
		pos := clamp(c[k]) * scale
		i := min(int(pos), size-2)
		idx[k] = i
		frac[k] = pos - float64(i)
	}
	fr, fg, fb := frac[0], frac[1], frac[2]

	const stride = 3
	gStride := size * stride
	rStride := size * gStride

	base := idx[0]*rStride + idx[1]*gStride + idx[2]*stride

	c000 := base
	c001 := base + stride
	c010 := base + gStride
	c011 := base + gStride + stride
	c100 := base + rStride
	c101 := base + rStride + stride
	c110 := base + rStride + gStride
	c111 := base + rStride + gStride + stride

	// Each case selects the tetrahedron containing the point, based on the
	// ordering of the fractional parts, as corners plus barycentric weights.
	var corners [4]int
	var weights [4]float64
	switch {
	case fr > fg && fg > fb:
		corners = [4]int{c000, c100, c110, c111}
		weights = [4]float64{1 - fr, fr - fg, fg - fb, fb}
	case fr > fg && fr > fb:
		corners = [4]int{c000, c100, c101, c111}
		weights = [4]float64{1 - fr, fr - fb, fb - fg, fg}
	case fr > fg:
		corners = [4]int{c000, c001, c101, c111}
		weights = [4]float64{1 - fb, fb - fr, fr - fg, fg}
	case fr > fb:
		corners = [4]int{c000, c010, c110, c111}
		weights = [4]float64{1 - fg, fg - fr, fr - fb, fb}
	case fg > fb:
		corners = [4]int{c000, c010, c011, c111}
		weights = [4]float64{1 - fg, fg - fb, fb - fr, fr}
	default:
		corners = [4]int{c000, c001, c011, c111}
		weights = [4]float64{1 - fb, fb - fg, fg - fr, fr}
	}

	var out Color
	for j, corner := range corners {
		w := weights[j]
		out[0] += w * grid[corner]
		out[1] += w * grid[corner+1]
		out[2] += w * grid[corner+2]
	}
	return out
}
