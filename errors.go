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
	"errors"
	"fmt"
)

// ErrInvalidArgument is matched by all errors which report invalid arguments
// to the functions in this package.  Use [errors.Is] to test for it.
var ErrInvalidArgument = errors.New("enhancer: invalid argument")

// InvalidArgumentError indicates that a parameter vector does not have the
// length required by the pipeline variant.
type InvalidArgumentError struct {
	Variant Variant
	Want    int
	Got     int
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("enhancer: %s pipeline needs %d parameters, got %d",
		e.Variant, e.Want, e.Got)
}

// Is reports whether target is [ErrInvalidArgument].
func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

func checkLength(v Variant, params []float64) error {
	n := v.NumParameters()
	if n == 0 {
		return errUnknownVariant
	}
	if len(params) != n {
		return &InvalidArgumentError{Variant: v, Want: n, Got: len(params)}
	}
	return nil
}

var (
	errUnknownVariant   = fmt.Errorf("%w: unknown variant", ErrInvalidArgument)
	errTemperatureScale = fmt.Errorf("%w: temperature scale must be positive", ErrInvalidArgument)
	errLUTSize          = fmt.Errorf("%w: LUT size must be between 2 and 256", ErrInvalidArgument)

	errMalformedTriple = errors.New("expected three numbers")
)
