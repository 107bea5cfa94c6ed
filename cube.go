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
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Encode writes the LUT in the .cube text format.
// In the output, the red index varies fastest.
func (l *LUT3D) Encode(w io.Writer) error {
	if l.Size < 2 || l.Size > MaxLUTSize || len(l.Data) != 3*l.Size*l.Size*l.Size {
		return errLUTSize
	}

	bw := bufio.NewWriter(w)
	if l.Title != "" {
		fmt.Fprintf(bw, "TITLE %s\n", strconv.Quote(l.Title))
	}
	fmt.Fprintf(bw, "LUT_3D_SIZE %d\n", l.Size)
	fmt.Fprintf(bw, "DOMAIN_MIN 0.0 0.0 0.0\n")
	fmt.Fprintf(bw, "DOMAIN_MAX 1.0 1.0 1.0\n")
	for b := range l.Size {
		for g := range l.Size {
			for r := range l.Size {
				c := l.At(r, g, b)
				fmt.Fprintf(bw, "%.6f %.6f %.6f\n", c[0], c[1], c[2])
			}
		}
	}
	return bw.Flush()
}

// DecodeCube reads a 3D LUT in the .cube text format.
//
// Only 3D LUTs over the default domain [0,1]^3 are supported.
func DecodeCube(r io.Reader) (*LUT3D, error) {
	l := &LUT3D{}
	var values []Color // data lines in file order, red index fastest

	s := bufio.NewScanner(r)
	lineNo := 0
	for s.Scan() {
		lineNo++
		line := strings.TrimSpace(s.Text())
		if line == "" || line[0] == '#' {
			continue
		}

		keyword := strings.Fields(line)[0]
		rest := strings.TrimSpace(line[len(keyword):])
		switch keyword {
		case "TITLE":
			if len(values) > 0 {
				return nil, invalidCube(lineNo, "TITLE after data")
			}
			l.Title = unquoteTitle(rest)
			continue
		case "LUT_3D_SIZE":
			if l.Size != 0 {
				return nil, invalidCube(lineNo, "duplicate LUT_3D_SIZE")
			}
			size, err := strconv.Atoi(rest)
			if err != nil || size < 2 || size > MaxLUTSize {
				return nil, invalidCube(lineNo, "invalid LUT_3D_SIZE")
			}
			l.Size = size
			continue
		case "LUT_1D_SIZE":
			return nil, invalidCube(lineNo, "1D LUTs are not supported")
		case "DOMAIN_MIN", "DOMAIN_MAX":
			want := 0.0
			if keyword == "DOMAIN_MAX" {
				want = 1.0
			}
			v, err := parseTriple(rest)
			if err != nil {
				return nil, invalidCube(lineNo, "malformed "+keyword)
			}
			if v[0] != want || v[1] != want || v[2] != want {
				return nil, invalidCube(lineNo, "unsupported "+keyword)
			}
			continue
		}

		if l.Size == 0 {
			return nil, invalidCube(lineNo, "data before LUT_3D_SIZE")
		}
		c, err := parseTriple(line)
		if err != nil {
			return nil, invalidCube(lineNo, "malformed data line")
		}
		if len(values) >= l.Size*l.Size*l.Size {
			return nil, invalidCube(lineNo, "too many data lines")
		}
		values = append(values, c)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}

	if l.Size == 0 {
		return nil, invalidCube(lineNo, "missing LUT_3D_SIZE")
	}
	total := l.Size * l.Size * l.Size
	if len(values) != total {
		return nil, invalidCube(lineNo, fmt.Sprintf("expected %d data lines, got %d", total, len(values)))
	}

	l.Data = make([]float64, 3*total)
	for n, c := range values {
		ri := n % l.Size
		gi := (n / l.Size) % l.Size
		bi := n / (l.Size * l.Size)
		l.set(ri, gi, bi, c)
	}
	return l, nil
}

func parseTriple(s string) (Color, error) {
	var c Color
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return c, errMalformedTriple
	}
	for i, f := range fields {
		x, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return c, err
		}
		c[i] = x
	}
	return c, nil
}

func unquoteTitle(s string) string {
	if t, err := strconv.Unquote(s); err == nil {
		return t
	}
	return strings.Trim(s, `"`)
}

// InvalidCubeError indicates that a .cube file is malformed or uses
// features which are not supported.
type InvalidCubeError struct {
	Line   int
	Reason string
}

func invalidCube(line int, reason string) error {
	return &InvalidCubeError{Line: line, Reason: reason}
}

func (e *InvalidCubeError) Error() string {
	return fmt.Sprintf("enhancer: invalid .cube file (line %d): %s", e.Line, e.Reason)
}
