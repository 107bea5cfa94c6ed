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

import (
	"fmt"
	"strings"
)

// Params holds the decoded, range mapped values of a parameter vector.
//
// Brightness, Contrast, Saturation, Temperature and Tint are in
// [-0.5, 0.5], with 0 meaning "no change".
type Params struct {
	Brightness  float64
	Contrast    float64
	Saturation  float64
	Temperature float64
	Tint        float64

	// Lift, Gamma and Gain are only used by the LiftGammaGain variant.
	// Lift is in [0.5, 1.5]^3, Gamma and Gain are in [0, 2]^3.  The neutral
	// value is 1 for all three.
	Lift  Color
	Gamma Color
	Gain  Color

	// Balance is only used by the Legacy variant.  Each channel is in
	// [-0.5, 0.5].
	Balance Color
}

// DecodeParams maps a parameter vector to named effect parameters.
// The length of p must equal v.NumParameters(), otherwise an error
// matching [ErrInvalidArgument] is returned.
func DecodeParams(v Variant, p []float64) (*Params, error) {
	if err := checkLength(v, p); err != nil {
		return nil, err
	}

	res := &Params{
		Brightness: p[0] - 0.5,
		Contrast:   p[1] - 0.5,
		Saturation: p[2] - 0.5,
		Lift:       Color{1, 1, 1},
		Gamma:      Color{1, 1, 1},
		Gain:       Color{1, 1, 1},
	}

	switch v {
	case Basic, LiftGammaGain:
		res.Temperature = p[3] - 0.5
		res.Tint = p[4] - 0.5
	case Legacy:
		res.Balance = Color{p[3] - 0.5, p[4] - 0.5, p[5] - 0.5}
	}

	if v == LiftGammaGain {
		for i := range 3 {
			res.Lift[i] = 0.5 + p[5+i]
			res.Gamma[i] = 2 * p[8+i]
			res.Gain[i] = 2 * p[11+i]
		}
	}

	return res, nil
}

func (p *Params) String() string {
	return fmt.Sprintf("brightness=%.3f contrast=%.3f saturation=%.3f temperature=%.3f tint=%.3f lift=%s gamma=%s gain=%s balance=%s",
		p.Brightness, p.Contrast, p.Saturation, p.Temperature, p.Tint,
		p.Lift, p.Gamma, p.Gain, p.Balance)
}

// Neutral returns the neutral parameter vector of the variant.
// All entries are 0.5, and the resulting transform is the identity.
func Neutral(v Variant) []float64 {
	p := make([]float64, v.NumParameters())
	for i := range p {
		p[i] = 0.5
	}
	return p
}

// SweepVectors returns parameter vectors which vary one parameter at a time.
//
// For each parameter index dim and each step in 0, ..., steps-1, the vector
// at index dim*steps+step has entry dim set to step/(steps-1) and all other
// entries at 0.5.
func SweepVectors(v Variant, steps int) [][]float64 {
	n := v.NumParameters()
	if steps < 2 || n == 0 {
		return nil
	}

	res := make([][]float64, 0, n*steps)
	for dim := range n {
		for step := range steps {
			p := Neutral(v)
			p[dim] = float64(step) / float64(steps-1)
			res = append(res, p)
		}
	}
	return res
}

// ParamName returns a short string which identifies a parameter vector,
// suitable for use as a file name stem.  The vector {0.5, 0.25} gives
// "p_0.50_0.25".
func ParamName(p []float64) string {
	var b strings.Builder
	b.WriteString("p")
	for _, x := range p {
		fmt.Fprintf(&b, "_%.2f", x)
	}
	return b.String()
}
