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
	"github.com/pkg/errors"

	"github.com/TommyLee96/yuv2rgb/colorspace"
)

// Errors reported by the Validate functions and the Frame helpers. Returned
// errors wrap these sentinels; test with errors.Is.
var (
	ErrDimensions     = errors.New("yuv420: invalid dimensions")
	ErrStride         = errors.New("yuv420: stride too small")
	ErrBufferTooSmall = errors.New("yuv420: buffer too small")
	ErrAlignment      = errors.New("yuv420: buffer not aligned")
	ErrStandard       = errors.New("yuv420: unknown standard")
	ErrSubsampling    = errors.New("yuv420: unsupported chroma subsampling")
)

// ValidateRGBToYUV420 reports whether the arguments describe buffers large
// enough for RGBToYUV420 and its variants.
func ValidateRGBToYUV420(width, height int, rgb []byte, rgbStride int, y, u, v []byte, yStride, uvStride int, std colorspace.Standard) error {
	return validate(width, height, rgb, rgbStride, y, u, v, yStride, uvStride, std)
}

// ValidateYUV420ToRGB reports whether the arguments describe buffers large
// enough for YUV420ToRGB and its variants.
func ValidateYUV420ToRGB(width, height int, y, u, v []byte, yStride, uvStride int, rgb []byte, rgbStride int, std colorspace.Standard) error {
	return validate(width, height, rgb, rgbStride, y, u, v, yStride, uvStride, std)
}

// ValidateAligned reports whether the buffers and strides satisfy the
// aligned vector kernels' contract.
func ValidateAligned(width int, rgb []byte, rgbStride int, y, u, v []byte, yStride, uvStride int) error {
	if width%blockPixels != 0 {
		return errors.Wrapf(ErrDimensions, "width %d is not a multiple of %d", width, blockPixels)
	}
	n := VectorAlignment()
	for _, s := range []struct {
		name   string
		stride int
	}{{"rgb", rgbStride}, {"y", yStride}, {"uv", uvStride}} {
		if s.stride%n != 0 {
			return errors.Wrapf(ErrAlignment, "%s stride %d is not a multiple of %d", s.name, s.stride, n)
		}
	}
	for _, b := range []struct {
		name string
		buf  []byte
	}{{"rgb", rgb}, {"y", y}, {"u", u}, {"v", v}} {
		if !IsAligned(b.buf, n) {
			return errors.Wrapf(ErrAlignment, "%s buffer is not %d-byte aligned", b.name, n)
		}
	}
	return nil
}

func validate(width, height int, rgb []byte, rgbStride int, y, u, v []byte, yStride, uvStride int, std colorspace.Standard) error {
	if !std.Valid() {
		return errors.Wrapf(ErrStandard, "standard %d", int(std))
	}
	if width <= 0 || height <= 0 {
		return errors.Wrapf(ErrDimensions, "%dx%d", width, height)
	}
	cw, ch := ChromaSize(width, height)
	if rgbStride < 3*width {
		return errors.Wrapf(ErrStride, "rgb stride %d < %d", rgbStride, 3*width)
	}
	if yStride < width {
		return errors.Wrapf(ErrStride, "y stride %d < %d", yStride, width)
	}
	if uvStride < cw {
		return errors.Wrapf(ErrStride, "uv stride %d < %d", uvStride, cw)
	}
	if err := checkLen("rgb", rgb, height, rgbStride, 3*width); err != nil {
		return err
	}
	if err := checkLen("y", y, height, yStride, width); err != nil {
		return err
	}
	if err := checkLen("u", u, ch, uvStride, cw); err != nil {
		return err
	}
	return checkLen("v", v, ch, uvStride, cw)
}

// checkLen verifies buf holds rows rows of rowBytes bytes, stride apart.
func checkLen(name string, buf []byte, rows, stride, rowBytes int) error {
	need := (rows-1)*stride + rowBytes
	if len(buf) < need {
		return errors.Wrapf(ErrBufferTooSmall, "%s buffer has %d bytes, need %d", name, len(buf), need)
	}
	return nil
}
