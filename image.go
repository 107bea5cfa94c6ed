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
	"context"
	"image"
	"image/color"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// EnhanceImage applies e to every pixel of img.
//
// Pixels are converted to non-premultiplied 8-bit RGB, enhanced, and
// written to a new image with the same bounds.  Alpha is copied unchanged.
// Rows are processed concurrently.  The parameter vector is checked once,
// before any pixel is processed.
func EnhanceImage(ctx context.Context, e *Enhancer, img image.Image, p []float64) (*image.NRGBA, error) {
	params, err := DecodeParams(e.variant, p)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	out := image.NewNRGBA(bounds)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				px := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
				c := Color{
					float64(px.R) / 255,
					float64(px.G) / 255,
					float64(px.B) / 255,
				}
				c = e.apply(c, params)
				out.SetNRGBA(x, y, color.NRGBA{
					R: to8Bit(c[0]),
					G: to8Bit(c[1]),
					B: to8Bit(c[2]),
					A: px.A,
				})
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// to8Bit converts a channel value in [0, 1] to the nearest 8-bit value.
func to8Bit(x float64) uint8 {
	return uint8(clamp(x)*255 + 0.5)
}
