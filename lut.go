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

// MaxLUTSize is the largest supported number of grid points per axis of a
// [LUT3D].
const MaxLUTSize = 256

// LUT3D is a sampled colour mapping on a regular grid over [0,1]^3.
//
// LUTs are used to hand a fixed enhancement to consumers which cannot run the
// effect pipeline themselves, for example GPU preview renderers or video
// tools reading .cube files.
type LUT3D struct {
	// Title is an optional description, stored in the TITLE line of .cube
	// files.
	Title string

	// Size is the number of grid points per axis.
	Size int

	// Data holds Size^3 output RGB triples.  The red input index varies
	// slowest and the blue input index fastest, so the output for grid point
	// (r, g, b) starts at index 3*((r*Size+g)*Size+b).
	Data []float64
}

// BakeLUT samples the mapping c ↦ e.Enhance(c, p) on a grid with size
// points per axis.
func BakeLUT(e *Enhancer, p []float64, size int) (*LUT3D, error) {
	if size < 2 || size > MaxLUTSize {
		return nil, errLUTSize
	}
	params, err := DecodeParams(e.variant, p)
	if err != nil {
		return nil, err
	}

	data := make([]float64, 0, 3*size*size*size)
	scale := float64(size - 1)
	for r := range size {
		for g := range size {
			for b := range size {
				c := Color{float64(r) / scale, float64(g) / scale, float64(b) / scale}
				out := e.apply(c, params)
				data = append(data, out[0], out[1], out[2])
			}
		}
	}

	return &LUT3D{Size: size, Data: data}, nil
}

// Apply maps the colour c through the LUT, using tetrahedral
// interpolation between grid points.  Input channels outside [0, 1] are
// clamped.
func (l *LUT3D) Apply(c Color) Color {
	return tetrahedralInterp(l.Data, l.Size, c)
}

// At returns the stored output colour for the grid point with the given
// indices.
func (l *LUT3D) At(r, g, b int) Color {
	i := 3 * ((r*l.Size+g)*l.Size + b)
	return Color{l.Data[i], l.Data[i+1], l.Data[i+2]}
}

func (l *LUT3D) set(r, g, b int, c Color) {
	i := 3 * ((r*l.Size+g)*l.Size + b)
	copy(l.Data[i:i+3], c[:])
}
