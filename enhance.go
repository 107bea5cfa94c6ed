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

// Config selects the pipeline used by an [Enhancer].
// The zero value selects the [Basic] variant with the default
// temperature scale.
type Config struct {
	// Variant selects the effect pipeline.
	Variant Variant

	// TemperatureScale is the size of the chroma shift applied for
	// temperature or tint 0.5.  If this is zero, [DefaultTemperatureScale]
	// is used.  The Legacy variant ignores this field.
	TemperatureScale float64
}

// Enhancer maps display RGB colours to enhanced display RGB colours.
//
// Create an Enhancer using [New], then call [Enhancer.Enhance] once per
// pixel.  An Enhancer is immutable and safe for concurrent use.
type Enhancer struct {
	variant          Variant
	temperatureScale float64
}

// New creates an Enhancer for the given configuration.
// If cfg is nil, the default configuration is used.
func New(cfg *Config) (*Enhancer, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	if cfg.Variant.NumParameters() == 0 {
		return nil, errUnknownVariant
	}

	scale := cfg.TemperatureScale
	if scale == 0 {
		scale = DefaultTemperatureScale
	} else if !(scale > 0) {
		return nil, errTemperatureScale
	}

	e := &Enhancer{
		variant:          cfg.Variant,
		temperatureScale: scale,
	}
	return e, nil
}

// Variant returns the pipeline variant used by e.
func (e *Enhancer) Variant() Variant {
	return e.variant
}

// NumParameters returns the length of the parameter vectors accepted by e.
func (e *Enhancer) NumParameters() int {
	return e.variant.NumParameters()
}

// Enhance applies the effect pipeline to the display RGB colour c.
//
// The parameter vector p must have length e.NumParameters(), otherwise an
// error matching [ErrInvalidArgument] is returned.  The channels of the
// result are in [0, 1].
func (e *Enhancer) Enhance(c Color, p []float64) (Color, error) {
	params, err := DecodeParams(e.variant, p)
	if err != nil {
		return Color{}, err
	}
	return e.apply(c, params), nil
}

// apply runs the pipeline with already decoded parameters.
func (e *Enhancer) apply(c Color, p *Params) Color {
	if e.variant == Legacy {
		return applyLegacy(c, p)
	}

	linear := RGBToLinear(c)
	if e.variant == LiftGammaGain {
		linear = ApplyLiftGammaGain(linear, p.Lift, p.Gamma, p.Gain)
	}
	linear = ApplyTemperatureTint(linear, p.Temperature, p.Tint, e.temperatureScale)
	linear = ApplyBrightness(linear, p.Brightness)
	linear = ApplyContrast(linear, p.Contrast)
	linear = ApplySaturation(linear, p.Saturation)

	return Clamp(LinearToRGB(linear))
}

// applyLegacy is the older pipeline, which works directly on display RGB
// and uses a midtone colour balance instead of temperature and tint.
func applyLegacy(rgb Color, p *Params) Color {
	rgb = ApplyColorBalance(rgb, p.Balance)

	k := contrastCoefficient(p.Contrast)
	for i, x := range rgb {
		x *= 1 + p.Brightness
		rgb[i] = clamp(k*(x-0.5) + 0.5)
	}

	return Clamp(ApplySaturation(rgb, p.Saturation))
}

var defaultEnhancer = &Enhancer{
	variant:          Basic,
	temperatureScale: DefaultTemperatureScale,
}

// Enhance applies the [Basic] effect pipeline to the display RGB colour c.
// The parameter vector must have 5 entries: brightness, contrast,
// saturation, temperature and tint.
func Enhance(c Color, p []float64) (Color, error) {
	return defaultEnhancer.Enhance(c, p)
}
