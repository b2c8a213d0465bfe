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

import "github.com/TommyLee96/yuv2rgb/colorspace"

// RGBToYUV420Func is the signature shared by every RGB to 4:2:0 kernel.
type RGBToYUV420Func func(width, height int, rgb []byte, rgbStride int, y, u, v []byte, yStride, uvStride int, std colorspace.Standard)

// YUV420ToRGBFunc is the signature shared by every 4:2:0 to RGB kernel.
type YUV420ToRGBFunc func(width, height int, y, u, v []byte, yStride, uvStride int, rgb []byte, rgbStride int, std colorspace.Standard)

// RGBToYUV420Scalar converts an interleaved RGB image to planar 4:2:0.
//
// Each 2x2 block produces four luma samples and one Cb and one Cr sample,
// the truncated mean of the block's four per-pixel chroma values. No
// clamping is applied; the coefficients keep every result in range.
func RGBToYUV420Scalar(width, height int, rgb []byte, rgbStride int, y, u, v []byte, yStride, uvStride int, std colorspace.Standard) {
	assertKernelArgs(width, height)
	rgbToYUV420Scalar(0, width, 0, height, rgb, rgbStride, y, u, v, yStride, uvStride, colorspace.ForwardFor(std))
}

// YUV420ToRGBScalar converts a planar 4:2:0 image to interleaved RGB.
//
// The chroma sample of each 2x2 block is shared by its four pixels. Results
// saturate to [0,255].
func YUV420ToRGBScalar(width, height int, y, u, v []byte, yStride, uvStride int, rgb []byte, rgbStride int, std colorspace.Standard) {
	assertKernelArgs(width, height)
	yuv420ToRGBScalar(0, width, 0, height, y, u, v, yStride, uvStride, rgb, rgbStride, colorspace.InverseFor(std))
}

// rgbToYUV420Scalar converts the columns [x0,x1) of rows [y0,y1).
// x0 and y0 must be even.
func rgbToYUV420Scalar(x0, x1, y0, y1 int, rgb []byte, rgbStride int, y, u, v []byte, yStride, uvStride int, c *colorspace.Forward) {
	for row := y0; row+1 < y1; row += 2 {
		rgbTop := rgb[row*rgbStride:]
		rgbBot := rgb[(row+1)*rgbStride:]
		yTop := y[row*yStride:]
		yBot := y[(row+1)*yStride:]
		uRow := u[(row/2)*uvStride:]
		vRow := v[(row/2)*uvStride:]

		for x := x0; x+1 < x1; x += 2 {
			var uSum, vSum int32
			uSum, vSum = forwardPixel(rgbTop[3*x:3*x+3], &yTop[x], uSum, vSum, c)
			uSum, vSum = forwardPixel(rgbTop[3*x+3:3*x+6], &yTop[x+1], uSum, vSum, c)
			uSum, vSum = forwardPixel(rgbBot[3*x:3*x+3], &yBot[x], uSum, vSum, c)
			uSum, vSum = forwardPixel(rgbBot[3*x+3:3*x+6], &yBot[x+1], uSum, vSum, c)
			uRow[x/2] = uint8(uSum >> 2)
			vRow[x/2] = uint8(vSum >> 2)
		}
	}
}

// forwardPixel writes the luma of one pixel and adds its chroma terms to
// the running block sums.
func forwardPixel(p []byte, dst *byte, uSum, vSum int32, c *colorspace.Forward) (int32, int32) {
	r, g, b := int32(p[0]), int32(p[1]), int32(p[2])
	luma := (c.R*r + c.G*g + c.B*b) >> 8
	uSum += ((b-luma)*c.Cb)>>8 + 128
	vSum += ((r-luma)*c.Cr)>>8 + 128
	*dst = uint8((luma*c.YScale)>>7 + c.YOffset)
	return uSum, vSum
}

// yuv420ToRGBScalar converts the columns [x0,x1) of rows [y0,y1).
// x0 and y0 must be even.
func yuv420ToRGBScalar(x0, x1, y0, y1 int, y, u, v []byte, yStride, uvStride int, rgb []byte, rgbStride int, c *colorspace.Inverse) {
	for row := y0; row+1 < y1; row += 2 {
		yTop := y[row*yStride:]
		yBot := y[(row+1)*yStride:]
		uRow := u[(row/2)*uvStride:]
		vRow := v[(row/2)*uvStride:]
		rgbTop := rgb[row*rgbStride:]
		rgbBot := rgb[(row+1)*rgbStride:]

		for x := x0; x+1 < x1; x += 2 {
			cb := int32(uRow[x/2]) - 128
			cr := int32(vRow[x/2]) - 128
			bOff := (c.Cb * cb) >> 6
			rOff := (c.Cr * cr) >> 6
			gOff := (c.GCb*cb + c.GCr*cr) >> 7

			inversePixel(yTop[x], rgbTop[3*x:3*x+3], rOff, gOff, bOff, c)
			inversePixel(yTop[x+1], rgbTop[3*x+3:3*x+6], rOff, gOff, bOff, c)
			inversePixel(yBot[x], rgbBot[3*x:3*x+3], rOff, gOff, bOff, c)
			inversePixel(yBot[x+1], rgbBot[3*x+3:3*x+6], rOff, gOff, bOff, c)
		}
	}
}

func inversePixel(yv byte, dst []byte, rOff, gOff, bOff int32, c *colorspace.Inverse) {
	luma := (c.YScale * (int32(yv) - c.YOffset)) >> 7
	dst[0] = clampU8(luma + rOff)
	dst[1] = clampU8(luma - gOff)
	dst[2] = clampU8(luma + bOff)
}

// clampU8 saturates v to [0,255].
func clampU8(v int32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
