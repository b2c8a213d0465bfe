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
	"fmt"
	"math/rand/v2"

	"github.com/ajroetker/go-highway/hwy"

	"github.com/TommyLee96/yuv2rgb/colorspace"
)

// sentinel marks bytes a kernel must not write.
const sentinel = 0xA5

// testImage bundles RGB and YUV buffers of one size with their strides.
type testImage struct {
	width, height int
	rgb           []byte
	rgbStride     int
	y, u, v       []byte
	yStride       int
	uvStride      int
}

// newTestImage allocates buffers filled with sentinel. Aligned images use
// frameAlign bases and strides; unaligned images use odd strides and bases
// one byte past an allocation.
func newTestImage(width, height int, aligned bool) *testImage {
	cw, ch := ChromaSize(width, height)
	ti := &testImage{width: width, height: height}
	alloc := func(n int) []byte {
		if aligned {
			return alignedBytes(n)
		}
		return make([]byte, n+1)[1:]
	}
	if aligned {
		ti.rgbStride = roundUp(3*width, frameAlign)
		ti.yStride = roundUp(width, frameAlign)
		ti.uvStride = roundUp(cw, frameAlign)
	} else {
		ti.rgbStride = 3*width + 7
		ti.yStride = width + 5
		ti.uvStride = cw + 3
	}
	ti.rgb = alloc(ti.rgbStride * height)
	ti.y = alloc(ti.yStride * height)
	ti.u = alloc(ti.uvStride * ch)
	ti.v = alloc(ti.uvStride * ch)
	for _, b := range [][]byte{ti.rgb, ti.y, ti.u, ti.v} {
		for i := range b {
			b[i] = sentinel
		}
	}
	return ti
}

// newTightImage is newTestImage with every buffer cut to exactly
// (rows-1)*stride + rowBytes bytes and no spare capacity, the layout
// image.NewYCbCr produces. Unaligned images also use strides equal to the
// row size.
func newTightImage(width, height int, aligned bool) *testImage {
	ti := newTestImage(width, height, aligned)
	cw, ch := ChromaSize(width, height)
	if !aligned {
		ti.rgbStride, ti.yStride, ti.uvStride = 3*width, width, cw
	}
	ti.rgb = tightRows(ti.rgb, height, ti.rgbStride, 3*width)
	ti.y = tightRows(ti.y, height, ti.yStride, width)
	ti.u = tightRows(ti.u, ch, ti.uvStride, cw)
	ti.v = tightRows(ti.v, ch, ti.uvStride, cw)
	return ti
}

func tightRows(buf []byte, rows, stride, rowBytes int) []byte {
	if rows == 0 {
		return buf[:0:0]
	}
	n := (rows-1)*stride + rowBytes
	return buf[:n:n]
}

// copyRGBFrom copies the RGB pixels of src into ti.
func (ti *testImage) copyRGBFrom(src *testImage) {
	for row := range ti.height {
		copy(ti.rgb[row*ti.rgbStride:row*ti.rgbStride+3*ti.width], src.rgb[row*src.rgbStride:])
	}
}

// copyYUVFrom copies the Y, U and V samples of src into ti.
func (ti *testImage) copyYUVFrom(src *testImage) {
	cw, ch := ChromaSize(ti.width, ti.height)
	for row := range ti.height {
		copy(ti.y[row*ti.yStride:row*ti.yStride+ti.width], src.y[row*src.yStride:])
	}
	for row := range ch {
		copy(ti.u[row*ti.uvStride:row*ti.uvStride+cw], src.u[row*src.uvStride:])
		copy(ti.v[row*ti.uvStride:row*ti.uvStride+cw], src.v[row*src.uvStride:])
	}
}

func (ti *testImage) fillRandomRGB(seed uint64) {
	rng := rand.New(rand.NewPCG(seed, 0x9e3779b97f4a7c15))
	for row := range ti.height {
		for i := range 3 * ti.width {
			ti.rgb[row*ti.rgbStride+i] = uint8(rng.UintN(256))
		}
	}
}

func (ti *testImage) fillRandomYUV(seed uint64) {
	rng := rand.New(rand.NewPCG(seed, 0x2545f4914f6cdd1d))
	cw, ch := ChromaSize(ti.width, ti.height)
	for row := range ti.height {
		for x := range ti.width {
			ti.y[row*ti.yStride+x] = uint8(rng.UintN(256))
		}
	}
	for row := range ch {
		for x := range cw {
			ti.u[row*ti.uvStride+x] = uint8(rng.UintN(256))
			ti.v[row*ti.uvStride+x] = uint8(rng.UintN(256))
		}
	}
}

func (ti *testImage) setRGB(x, y int, r, g, b uint8) {
	i := y*ti.rgbStride + 3*x
	ti.rgb[i], ti.rgb[i+1], ti.rgb[i+2] = r, g, b
}

func (ti *testImage) rgbAt(x, y int) (r, g, b uint8) {
	i := y*ti.rgbStride + 3*x
	return ti.rgb[i], ti.rgb[i+1], ti.rgb[i+2]
}

func (ti *testImage) forward(fn RGBToYUV420Func, std colorspace.Standard) {
	fn(ti.width, ti.height, ti.rgb, ti.rgbStride, ti.y, ti.u, ti.v, ti.yStride, ti.uvStride, std)
}

func (ti *testImage) inverse(fn YUV420ToRGBFunc, std colorspace.Standard) {
	fn(ti.width, ti.height, ti.y, ti.u, ti.v, ti.yStride, ti.uvStride, ti.rgb, ti.rgbStride, std)
}

type forwardKernel struct {
	name    string
	fn      RGBToYUV420Func
	aligned bool
}

type inverseKernel struct {
	name    string
	fn      YUV420ToRGBFunc
	aligned bool
}

// Vector kernels under test: the public entry points plus every tag and
// access mode combination of the generic bodies.
var vectorForwardKernels = []forwardKernel{
	{"Vector", RGBToYUV420Vector, false},
	{"VectorAligned", RGBToYUV420VectorAligned, true},
	{"FixedTag128", baseRGBToYUV420[hwy.FixedTag128[uint8], unalignedAccess], false},
	{"FixedTag256", baseRGBToYUV420[hwy.FixedTag256[uint8], unalignedAccess], false},
	{"FixedTag512", baseRGBToYUV420[hwy.FixedTag512[uint8], unalignedAccess], false},
	{"FixedTag128Aligned", baseRGBToYUV420[hwy.FixedTag128[uint8], alignedAccess], true},
	{"FixedTag512Aligned", baseRGBToYUV420[hwy.FixedTag512[uint8], alignedAccess], true},
}

var vectorInverseKernels = []inverseKernel{
	{"Vector", YUV420ToRGBVector, false},
	{"VectorAligned", YUV420ToRGBVectorAligned, true},
	{"FixedTag128", baseYUV420ToRGB[hwy.FixedTag128[uint8], unalignedAccess], false},
	{"FixedTag256", baseYUV420ToRGB[hwy.FixedTag256[uint8], unalignedAccess], false},
	{"FixedTag512", baseYUV420ToRGB[hwy.FixedTag512[uint8], unalignedAccess], false},
	{"FixedTag128Aligned", baseYUV420ToRGB[hwy.FixedTag128[uint8], alignedAccess], true},
	{"FixedTag512Aligned", baseYUV420ToRGB[hwy.FixedTag512[uint8], alignedAccess], true},
}

func sizeName(width, height int) string {
	return fmt.Sprintf("%dx%d", width, height)
}
