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

// Package settings holds the configuration shared by the example programs.
package settings

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/enhancer"
)

// Settings describes an enhancement and how to render it.
type Settings struct {
	Variant          enhancer.Variant `yaml:"variant"`
	TemperatureScale float64          `yaml:"temperature_scale,omitempty"`

	// Parameters overrides individual knobs by name, for example
	// "brightness" or "gain.r".  Knobs which are not listed stay at 0.5.
	Parameters map[string]float64 `yaml:"parameters,omitempty"`

	Steps   int `yaml:"steps"`    // sweep steps per parameter
	Width   int `yaml:"width"`    // sweep image width in pixels
	Margin  int `yaml:"margin"`   // gap between images in sweep strips
	LUTSize int `yaml:"lut_size"` // grid points per axis of baked LUTs
}

// Default returns the settings used when no file is given.
func Default() *Settings {
	return &Settings{
		Variant: enhancer.Basic,
		Steps:   5,
		Width:   960,
		Margin:  20,
		LUTSize: 33,
	}
}

// Load reads settings from a YAML file.
// Fields missing from the file keep their default values.
func Load(path string) (*Settings, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s := Default()
	if err := yaml.Unmarshal(b, s); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := s.Check(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Save writes settings to a YAML file.
func Save(path string, s *Settings) error {
	b, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// Check verifies that the settings are usable.
func (s *Settings) Check() error {
	if s.Steps < 2 {
		return fmt.Errorf("steps must be at least 2, got %d", s.Steps)
	}
	if s.Width < 1 {
		return fmt.Errorf("width must be positive, got %d", s.Width)
	}
	if s.Margin < 0 {
		return fmt.Errorf("margin must not be negative, got %d", s.Margin)
	}
	if s.LUTSize < 2 || s.LUTSize > enhancer.MaxLUTSize {
		return fmt.Errorf("lut_size must be between 2 and %d, got %d", enhancer.MaxLUTSize, s.LUTSize)
	}
	_, err := s.Vector()
	return err
}

// Config returns the enhancer configuration described by s.
func (s *Settings) Config() *enhancer.Config {
	return &enhancer.Config{
		Variant:          s.Variant,
		TemperatureScale: s.TemperatureScale,
	}
}

// Vector returns the parameter vector described by s.
func (s *Settings) Vector() ([]float64, error) {
	names := s.Variant.ParameterNames()
	if names == nil {
		return nil, fmt.Errorf("unknown variant %s", s.Variant)
	}

	p := enhancer.Neutral(s.Variant)
	for name, val := range s.Parameters {
		i := slices.Index(names, name)
		if i < 0 {
			return nil, fmt.Errorf("unknown parameter %q for %s variant (valid: %s)",
				name, s.Variant, strings.Join(names, ", "))
		}
		p[i] = val
	}
	return p, nil
}
