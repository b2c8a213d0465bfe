// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package yuv420

import (
	"image"
	"image/color"

	"github.com/pkg/errors"
)

// FromYCbCr returns a Frame that shares img's sample buffers. img must use
// 4:2:0 subsampling and start on an even coordinate.
func FromYCbCr(img *image.YCbCr) (*Frame, error) {
	if img.SubsampleRatio != image.YCbCrSubsampleRatio420 {
		return nil, errors.Wrapf(ErrSubsampling, "%v", img.SubsampleRatio)
	}
	r := img.Rect
	if r.Min.X%2 != 0 || r.Min.Y%2 != 0 {
		return nil, errors.Wrapf(ErrDimensions, "rectangle %v does not start on a chroma sample", r)
	}
	if r.Empty() {
		return NewFrame(0, 0), nil
	}
	cw, ch := ChromaSize(r.Dx(), r.Dy())
	yi := img.YOffset(r.Min.X, r.Min.Y)
	ci := img.COffset(r.Min.X, r.Min.Y)
	return &Frame{
		Y: &Plane{data: img.Y[yi:], width: r.Dx(), height: r.Dy(), stride: img.YStride},
		U: &Plane{data: img.Cb[ci:], width: cw, height: ch, stride: img.CStride},
		V: &Plane{data: img.Cr[ci:], width: cw, height: ch, stride: img.CStride},
	}, nil
}

// YCbCr returns an image.YCbCr that shares f's sample buffers.
func (f *Frame) YCbCr() *image.YCbCr {
	return &image.YCbCr{
		Y:              f.Y.data,
		Cb:             f.U.data,
		Cr:             f.V.data,
		YStride:        f.Y.stride,
		CStride:        f.U.stride,
		SubsampleRatio: image.YCbCrSubsampleRatio420,
		Rect:           f.Bounds(),
	}
}

// RGBFromImage copies img into a new RGB image, dropping alpha. Colors are
// taken unpremultiplied, as color.NRGBAModel reports them, so translucent
// pixels keep their color rather than being darkened by their alpha.
func RGBFromImage(img image.Image) *RGB {
	b := img.Bounds()
	dst := NewRGB(b.Dx(), b.Dy())
	switch src := img.(type) {
	case *image.NRGBA:
		for y := range dst.height {
			s := src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):]
			d := dst.Row(y)
			for x := range dst.width {
				d[3*x], d[3*x+1], d[3*x+2] = s[4*x], s[4*x+1], s[4*x+2]
			}
		}
	case *image.RGBA:
		for y := range dst.height {
			s := src.Pix[src.PixOffset(b.Min.X, b.Min.Y+y):]
			d := dst.Row(y)
			for x := range dst.width {
				p := s[4*x : 4*x+4]
				if p[3] == 0xff {
					d[3*x], d[3*x+1], d[3*x+2] = p[0], p[1], p[2]
					continue
				}
				c := color.NRGBAModel.Convert(color.RGBA{R: p[0], G: p[1], B: p[2], A: p[3]}).(color.NRGBA)
				d[3*x], d[3*x+1], d[3*x+2] = c.R, c.G, c.B
			}
		}
	default:
		for y := range dst.height {
			for x := range dst.width {
				c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
				dst.Set(x, y, c.R, c.G, c.B)
			}
		}
	}
	return dst
}

// RGBA copies img into a new opaque image.RGBA.
func (img *RGB) RGBA() *image.RGBA {
	dst := image.NewRGBA(img.Bounds())
	for y := range img.height {
		s := img.Row(y)
		d := dst.Pix[y*dst.Stride:]
		for x := range img.width {
			d[4*x], d[4*x+1], d[4*x+2], d[4*x+3] = s[3*x], s[3*x+1], s[3*x+2], 0xff
		}
	}
	return dst
}
