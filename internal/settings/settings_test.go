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

package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/enhancer"
)

func TestLoadKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	data := "variant: lift-gamma-gain\nparameters:\n  brightness: 0.75\n  gain.b: 0.25\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	s, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, enhancer.LiftGammaGain, s.Variant)
	assert.Equal(t, 5, s.Steps)
	assert.Equal(t, 960, s.Width)
	assert.Equal(t, 20, s.Margin)
	assert.Equal(t, 33, s.LUTSize)

	p, err := s.Vector()
	require.NoError(t, err)
	require.Len(t, p, 14)
	assert.Equal(t, 0.75, p[0])
	assert.Equal(t, 0.25, p[13])
	for i := 1; i < 13; i++ {
		assert.Equal(t, 0.5, p[i], "parameter %d", i)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	s := Default()
	s.Variant = enhancer.Legacy
	s.TemperatureScale = 0.2
	s.Parameters = map[string]float64{"balance.r": 0.9}
	s.Steps = 3

	require.NoError(t, Save(path, s))
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown variant", "variant: fancy\n"},
		{"unknown parameter", "parameters:\n  gain.r: 0.3\n"},
		{"too few steps", "steps: 1\n"},
		{"bad lut size", "lut_size: 1000\n"},
		{"malformed", "steps: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "settings.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.data), 0o644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestConfig(t *testing.T) {
	s := Default()
	s.TemperatureScale = 0.2
	e, err := enhancer.New(s.Config())
	require.NoError(t, err)
	assert.Equal(t, enhancer.Basic, e.Variant())
	assert.Equal(t, 5, e.NumParameters())
}
