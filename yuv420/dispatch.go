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
	"os"

	"github.com/ajroetker/go-highway/hwy"
	"golang.org/x/sys/cpu"

	"github.com/TommyLee96/yuv2rgb/colorspace"
)

// RGBToYUV420 converts an interleaved RGB image of any even width to planar
// 4:2:0 with the selected kernel. It is the scalar kernel unless the
// vector kernels were requested through VectorEnv.
var RGBToYUV420 RGBToYUV420Func = RGBToYUV420Scalar

// YUV420ToRGB converts a planar 4:2:0 image of any even width to
// interleaved RGB with the selected kernel.
var YUV420ToRGB YUV420ToRGBFunc = YUV420ToRGBScalar

// Aligned counterparts, used by Frame when both sides satisfy alignedLayout.
var (
	rgbToYUV420Aligned RGBToYUV420Func = RGBToYUV420Scalar
	yuv420ToRGBAligned YUV420ToRGBFunc = YUV420ToRGBScalar
)

// VectorEnv names the environment variable that routes RGBToYUV420,
// YUV420ToRGB, Frame and the parallel converters to the hwy vector kernels
// when set to "1". Without generated per-target code those kernels run on
// slice-backed hwy.Vec values and allocate on every operation, so the
// scalar kernels stay the default.
const VectorEnv = "YUV420_VECTOR"

var implementation = "scalar"

func init() {
	selectKernels(os.Getenv(VectorEnv) == "1" && vectorCapable())
}

// vectorCapable reports whether hwy may run SIMD code on this CPU.
func vectorCapable() bool {
	if hwy.NoSimdEnv() {
		return false
	}
	return hasSIMDUnit() || hwy.CurrentLevel() != hwy.DispatchScalar
}

// selectKernels points the dispatch variables at the vector kernels, with
// a scalar tail, or back at the scalar kernels.
func selectKernels(vector bool) {
	if !vector {
		RGBToYUV420, YUV420ToRGB = RGBToYUV420Scalar, YUV420ToRGBScalar
		rgbToYUV420Aligned, yuv420ToRGBAligned = RGBToYUV420Scalar, YUV420ToRGBScalar
		implementation = "scalar"
		return
	}
	RGBToYUV420 = withScalarTail(RGBToYUV420Vector)
	YUV420ToRGB = withScalarTailInverse(YUV420ToRGBVector)
	rgbToYUV420Aligned = withScalarTail(RGBToYUV420VectorAligned)
	yuv420ToRGBAligned = withScalarTailInverse(YUV420ToRGBVectorAligned)
	implementation = "vector/" + hwy.CurrentName()
}

// hasSIMDUnit reports whether the CPU has a 128-bit integer SIMD unit.
func hasSIMDUnit() bool {
	return cpu.X86.HasSSE2 || cpu.ARM64.HasASIMD
}

// CurrentImplementation names the kernels behind RGBToYUV420 and
// YUV420ToRGB: "scalar", or "vector/" followed by the hwy target.
func CurrentImplementation() string {
	return implementation
}

// withScalarTail runs vec over the leading multiple of 32 columns and the
// scalar kernel over the remaining even columns.
func withScalarTail(vec RGBToYUV420Func) RGBToYUV420Func {
	return func(width, height int, rgb []byte, rgbStride int, y, u, v []byte, yStride, uvStride int, std colorspace.Standard) {
		vw := width &^ (blockPixels - 1)
		if vw > 0 {
			vec(vw, height, rgb, rgbStride, y, u, v, yStride, uvStride, std)
		}
		if vw < width {
			rgbToYUV420Scalar(vw, width, 0, height, rgb, rgbStride, y, u, v, yStride, uvStride, colorspace.ForwardFor(std))
		}
	}
}

func withScalarTailInverse(vec YUV420ToRGBFunc) YUV420ToRGBFunc {
	return func(width, height int, y, u, v []byte, yStride, uvStride int, rgb []byte, rgbStride int, std colorspace.Standard) {
		vw := width &^ (blockPixels - 1)
		if vw > 0 {
			vec(vw, height, y, u, v, yStride, uvStride, rgb, rgbStride, std)
		}
		if vw < width {
			yuv420ToRGBScalar(vw, width, 0, height, y, u, v, yStride, uvStride, rgb, rgbStride, colorspace.InverseFor(std))
		}
	}
}
