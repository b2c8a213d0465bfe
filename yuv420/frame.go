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

	"github.com/pkg/errors"

	"github.com/TommyLee96/yuv2rgb/colorspace"
)

// frameAlign is the base and stride alignment of buffers allocated by
// NewPlane and NewRGB. It covers the widest vector target (AVX-512).
const frameAlign = 64

// Plane is a single-channel 8-bit image with padded rows.
type Plane struct {
	data   []byte
	width  int
	height int
	stride int
}

// NewPlane allocates a plane whose base and stride are aligned for the
// aligned vector kernels.
func NewPlane(width, height int) *Plane {
	if width <= 0 || height <= 0 {
		return &Plane{}
	}
	stride := roundUp(width, frameAlign)
	return &Plane{
		data:   alignedBytes(stride * height),
		width:  width,
		height: height,
		stride: stride,
	}
}

// Width returns the plane width in samples.
func (p *Plane) Width() int { return p.width }

// Height returns the plane height in samples.
func (p *Plane) Height() int { return p.height }

// Stride returns the number of bytes between row starts.
func (p *Plane) Stride() int { return p.stride }

// Pix returns the backing buffer, starting at sample (0, 0).
func (p *Plane) Pix() []byte { return p.data }

// Row returns row y including any padding bytes past the width.
func (p *Plane) Row(y int) []byte {
	if y < 0 || y >= p.height || p.data == nil {
		return nil
	}
	start := y * p.stride
	return p.data[start:min(start+p.stride, len(p.data))]
}

// RowSlice returns row y limited to the plane width.
func (p *Plane) RowSlice(y int) []byte {
	if y < 0 || y >= p.height || p.data == nil {
		return nil
	}
	start := y * p.stride
	return p.data[start : start+p.width]
}

// At returns the sample at (x, y), or 0 outside the plane.
func (p *Plane) At(x, y int) uint8 {
	if x < 0 || x >= p.width || y < 0 || y >= p.height || p.data == nil {
		return 0
	}
	return p.data[y*p.stride+x]
}

// Set sets the sample at (x, y). Out-of-range coordinates are ignored.
func (p *Plane) Set(x, y int, value uint8) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height || p.data == nil {
		return
	}
	p.data[y*p.stride+x] = value
}

// Fill sets every sample, padding included, to value.
func (p *Plane) Fill(value uint8) {
	for i := range p.data {
		p.data[i] = value
	}
}

// Bounds returns the plane rectangle, anchored at the origin.
func (p *Plane) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// RGB is an interleaved 8-bit RGB image with padded rows.
type RGB struct {
	data   []byte
	width  int
	height int
	stride int // bytes per row, at least 3*width
}

// NewRGB allocates an RGB image whose base and stride are aligned for the
// aligned vector kernels.
func NewRGB(width, height int) *RGB {
	if width <= 0 || height <= 0 {
		return &RGB{}
	}
	stride := roundUp(3*width, frameAlign)
	return &RGB{
		data:   alignedBytes(stride * height),
		width:  width,
		height: height,
		stride: stride,
	}
}

// Width returns the image width in pixels.
func (img *RGB) Width() int { return img.width }

// Height returns the image height in pixels.
func (img *RGB) Height() int { return img.height }

// Stride returns the number of bytes between row starts.
func (img *RGB) Stride() int { return img.stride }

// Pix returns the backing buffer, starting at pixel (0, 0).
func (img *RGB) Pix() []byte { return img.data }

// Row returns the 3*width bytes of row y.
func (img *RGB) Row(y int) []byte {
	if y < 0 || y >= img.height || img.data == nil {
		return nil
	}
	start := y * img.stride
	return img.data[start : start+3*img.width]
}

// At returns the pixel at (x, y), or black outside the image.
func (img *RGB) At(x, y int) (r, g, b uint8) {
	if x < 0 || x >= img.width || y < 0 || y >= img.height || img.data == nil {
		return 0, 0, 0
	}
	i := y*img.stride + 3*x
	return img.data[i], img.data[i+1], img.data[i+2]
}

// Set sets the pixel at (x, y). Out-of-range coordinates are ignored.
func (img *RGB) Set(x, y int, r, g, b uint8) {
	if x < 0 || x >= img.width || y < 0 || y >= img.height || img.data == nil {
		return
	}
	i := y*img.stride + 3*x
	img.data[i], img.data[i+1], img.data[i+2] = r, g, b
}

// Fill sets every pixel to (r, g, b).
func (img *RGB) Fill(r, g, b uint8) {
	for y := range img.height {
		row := img.Row(y)
		for i := 0; i < len(row); i += 3 {
			row[i], row[i+1], row[i+2] = r, g, b
		}
	}
}

// Clone returns a deep copy of img.
func (img *RGB) Clone() *RGB {
	c := NewRGB(img.width, img.height)
	for y := range img.height {
		copy(c.Row(y), img.Row(y))
	}
	return c
}

// Bounds returns the image rectangle, anchored at the origin.
func (img *RGB) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.width, img.height)
}

// Frame is a planar YCbCr 4:2:0 image. U and V hold ceil(w/2) x ceil(h/2)
// samples and share a stride.
type Frame struct {
	Y, U, V *Plane
}

// NewFrame allocates a frame whose planes are aligned for the aligned
// vector kernels.
func NewFrame(width, height int) *Frame {
	cw, ch := ChromaSize(width, height)
	return &Frame{
		Y: NewPlane(width, height),
		U: NewPlane(cw, ch),
		V: NewPlane(cw, ch),
	}
}

// ChromaSize returns the dimensions of a 4:2:0 chroma plane for a
// width x height image.
func ChromaSize(width, height int) (w, h int) {
	return (width + 1) / 2, (height + 1) / 2
}

// Width returns the luma width.
func (f *Frame) Width() int { return f.Y.width }

// Height returns the luma height.
func (f *Frame) Height() int { return f.Y.height }

// Bounds returns the luma rectangle, anchored at the origin.
func (f *Frame) Bounds() image.Rectangle { return f.Y.Bounds() }

// FromRGB converts src into f. Both images must have the same dimensions.
func (f *Frame) FromRGB(src *RGB, std colorspace.Standard) error {
	if err := f.checkPair(src, std); err != nil {
		return err
	}
	convert := RGBToYUV420
	if alignedLayout([]int{src.stride, f.Y.stride, f.U.stride}, src.data, f.Y.data, f.U.data, f.V.data) {
		convert = rgbToYUV420Aligned
	}
	convert(f.Width(), f.Height(), src.data, src.stride, f.Y.data, f.U.data, f.V.data, f.Y.stride, f.U.stride, std)
	return nil
}

// ToRGB converts f into dst. Both images must have the same dimensions.
func (f *Frame) ToRGB(dst *RGB, std colorspace.Standard) error {
	if err := f.checkPair(dst, std); err != nil {
		return err
	}
	convert := YUV420ToRGB
	if alignedLayout([]int{dst.stride, f.Y.stride, f.U.stride}, dst.data, f.Y.data, f.U.data, f.V.data) {
		convert = yuv420ToRGBAligned
	}
	convert(f.Width(), f.Height(), f.Y.data, f.U.data, f.V.data, f.Y.stride, f.U.stride, dst.data, dst.stride, std)
	return nil
}

func (f *Frame) checkPair(img *RGB, std colorspace.Standard) error {
	if !std.Valid() {
		return errors.Wrapf(ErrStandard, "standard %v", std)
	}
	if img.width != f.Width() || img.height != f.Height() {
		return errors.Wrapf(ErrDimensions, "frame is %dx%d, rgb image is %dx%d",
			f.Width(), f.Height(), img.width, img.height)
	}
	if f.U.stride != f.V.stride {
		return errors.Wrapf(ErrStride, "U stride %d differs from V stride %d", f.U.stride, f.V.stride)
	}
	return nil
}
