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
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestCubeRoundTrip(t *testing.T) {
	e := mustNew(t, &Config{Variant: LiftGammaGain})
	p := Neutral(LiftGammaGain)
	p[0] = 0.8
	p[6] = 0.3
	p[13] = 0.9
	lut, err := BakeLUT(e, p, 7)
	if err != nil {
		t.Fatal(err)
	}
	lut.Title = `warm "look" #2`

	buf := &bytes.Buffer{}
	if err := lut.Encode(buf); err != nil {
		t.Fatal(err)
	}
	back, err := DecodeCube(buf)
	if err != nil {
		t.Fatal(err)
	}

	if d := cmp.Diff(lut, back, cmpopts.EquateApprox(0, 5e-7)); d != "" {
		t.Errorf("round trip (-want +got):\n%s", d)
	}
}

func TestDecodeCubeOrder(t *testing.T) {
	body := "# written by hand\r\n" +
		"TITLE plain title\r\n" +
		"\r\n" +
		"LUT_3D_SIZE\t2\r\n" +
		"DOMAIN_MIN 0 0 0\r\n" +
		"DOMAIN_MAX 1 1 1\r\n"
	for n := range 8 {
		body += strings.Repeat(" ", n%2) + // leading white space is ignored
			[]string{"0 0 0", "1 0 0", "0 1 0", "1 1 0", "0 0 1", "1 0 1", "0 1 1", "1 1 1"}[n] + "\r\n"
	}

	lut, err := DecodeCube(strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	if lut.Title != "plain title" {
		t.Errorf("title %q", lut.Title)
	}
	for r := range 2 {
		for g := range 2 {
			for b := range 2 {
				want := Color{float64(r), float64(g), float64(b)}
				if got := lut.At(r, g, b); got != want {
					t.Errorf("At(%d, %d, %d) = %s, want %s", r, g, b, got, want)
				}
			}
		}
	}
}

func TestDecodeCubeErrors(t *testing.T) {
	eightLines := strings.Repeat("0.5 0.5 0.5\n", 8)
	tests := []struct {
		name string
		in   string
		line int
	}{
		{"empty", "", 0},
		{"data before size", "0 0 0\n", 1},
		{"size too small", "LUT_3D_SIZE 1\n", 1},
		{"size not a number", "# x\nLUT_3D_SIZE two\n", 2},
		{"duplicate size", "LUT_3D_SIZE 2\nLUT_3D_SIZE 2\n", 2},
		{"1D LUT", "LUT_1D_SIZE 16\n", 1},
		{"domain", "LUT_3D_SIZE 2\nDOMAIN_MAX 2 2 2\n", 2},
		{"malformed domain", "DOMAIN_MIN 0 0\n", 1},
		{"malformed data", "LUT_3D_SIZE 2\n0 0 x\n", 2},
		{"short data line", "LUT_3D_SIZE 2\n0 0\n", 2},
		{"too few lines", "LUT_3D_SIZE 2\n0 0 0\n", 2},
		{"too many lines", "LUT_3D_SIZE 2\n" + eightLines + "0 0 0\n", 10},
		{"title after data", "LUT_3D_SIZE 2\n0 0 0\nTITLE \"x\"\n", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeCube(strings.NewReader(tt.in))
			var cubeErr *InvalidCubeError
			if !errors.As(err, &cubeErr) {
				t.Fatalf("expected InvalidCubeError, got %v", err)
			}
			if cubeErr.Line != tt.line {
				t.Errorf("error reported for line %d, want %d (%s)", cubeErr.Line, tt.line, cubeErr.Reason)
			}
		})
	}
}

func TestEncodeInvalid(t *testing.T) {
	tests := []*LUT3D{
		{Size: 1, Data: make([]float64, 3)},
		{Size: 2, Data: make([]float64, 3)},
		{Size: MaxLUTSize + 1},
	}
	for _, lut := range tests {
		if err := lut.Encode(&bytes.Buffer{}); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("size %d with %d values: got %v", lut.Size, len(lut.Data), err)
		}
	}
}

func FuzzDecodeCube(f *testing.F) {
	lut, err := BakeLUT(defaultEnhancer, []float64{0.2, 0.7, 0.5, 0.9, 0.4}, 3)
	if err != nil {
		f.Fatal(err)
	}
	lut.Title = "seed"
	buf := &bytes.Buffer{}
	if err := lut.Encode(buf); err != nil {
		f.Fatal(err)
	}
	f.Add(buf.String())
	f.Add("LUT_3D_SIZE 2\n" + strings.Repeat("1e300 -0 NaN\n", 8))

	f.Fuzz(func(t *testing.T, body string) {
		l1, err := DecodeCube(strings.NewReader(body))
		if err != nil {
			return
		}

		buf1 := &bytes.Buffer{}
		if err := l1.Encode(buf1); err != nil {
			t.Fatal(err)
		}
		l2, err := DecodeCube(bytes.NewReader(buf1.Bytes()))
		if err != nil {
			t.Fatalf("cannot decode encoded LUT: %v\n%s", err, buf1)
		}
		buf2 := &bytes.Buffer{}
		if err := l2.Encode(buf2); err != nil {
			t.Fatal(err)
		}

		if d := cmp.Diff(buf1.String(), buf2.String()); d != "" {
			t.Errorf("encoding is not stable (-first +second):\n%s", d)
		}
	})
}
