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
	"github.com/ajroetker/go-highway/hwy"

	"github.com/TommyLee96/yuv2rgb/colorspace"
)

// RGBToYUV420Vector converts an interleaved RGB image to planar 4:2:0 using
// lane-parallel arithmetic at the runtime vector width.
//
// Only the first width&^31 columns are converted; the rest are left
// untouched. Output is byte-identical to [RGBToYUV420Scalar].
func RGBToYUV420Vector(width, height int, rgb []byte, rgbStride int, y, u, v []byte, yStride, uvStride int, std colorspace.Standard) {
	baseRGBToYUV420[hwy.ScalableTag[uint8], unalignedAccess](width, height, rgb, rgbStride, y, u, v, yStride, uvStride, std)
}

// RGBToYUV420VectorAligned is [RGBToYUV420Vector] for buffers whose bases
// and strides are multiples of [VectorAlignment] and whose width is a
// multiple of 32.
func RGBToYUV420VectorAligned(width, height int, rgb []byte, rgbStride int, y, u, v []byte, yStride, uvStride int, std colorspace.Standard) {
	baseRGBToYUV420[hwy.ScalableTag[uint8], alignedAccess](width, height, rgb, rgbStride, y, u, v, yStride, uvStride, std)
}

// YUV420ToRGBVector converts a planar 4:2:0 image to interleaved RGB using
// lane-parallel arithmetic at the runtime vector width.
//
// Only the first width&^31 columns are converted; the rest are left
// untouched. Output is byte-identical to [YUV420ToRGBScalar].
func YUV420ToRGBVector(width, height int, y, u, v []byte, yStride, uvStride int, rgb []byte, rgbStride int, std colorspace.Standard) {
	baseYUV420ToRGB[hwy.ScalableTag[uint8], unalignedAccess](width, height, y, u, v, yStride, uvStride, rgb, rgbStride, std)
}

// YUV420ToRGBVectorAligned is [YUV420ToRGBVector] for buffers whose bases
// and strides are multiples of [VectorAlignment] and whose width is a
// multiple of 32.
func YUV420ToRGBVectorAligned(width, height int, y, u, v []byte, yStride, uvStride int, rgb []byte, rgbStride int, std colorspace.Standard) {
	baseYUV420ToRGB[hwy.ScalableTag[uint8], alignedAccess](width, height, y, u, v, yStride, uvStride, rgb, rgbStride, std)
}
