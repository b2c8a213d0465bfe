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
	"github.com/ajroetker/go-highway/hwy/contrib/workerpool"

	"github.com/TommyLee96/yuv2rgb/colorspace"
)

// Parallel tuning parameters for band-parallel conversions.
const (
	// MinParallelPixels is the minimum image area before a conversion is
	// split across workers. Smaller images run on the calling goroutine.
	MinParallelPixels = 256 * 256

	// BandBatch is the number of 2-row bands handed to a worker per grab
	// via ParallelForAtomicBatched.
	BandBatch = 8
)

// ParallelRGBToYUV420 is RGBToYUV420 split into 2-row bands across pool.
//
// Bands write disjoint rows of every output plane, so the result is
// identical to the sequential call. Falls back to sequential execution
// when pool is nil or the image is smaller than MinParallelPixels.
func ParallelRGBToYUV420(pool *workerpool.Pool, width, height int, rgb []byte, rgbStride int, y, u, v []byte, yStride, uvStride int, std colorspace.Standard) {
	if pool == nil || width*height < MinParallelPixels {
		RGBToYUV420(width, height, rgb, rgbStride, y, u, v, yStride, uvStride, std)
		return
	}

	pool.ParallelForAtomicBatched(height/2, BandBatch, func(start, end int) {
		r0 := 2 * start
		RGBToYUV420(width, 2*(end-start),
			rgb[r0*rgbStride:], rgbStride,
			y[r0*yStride:], u[start*uvStride:], v[start*uvStride:], yStride, uvStride, std)
	})
}

// ParallelYUV420ToRGB is YUV420ToRGB split into 2-row bands across pool.
//
// Falls back to sequential execution when pool is nil or the image is
// smaller than MinParallelPixels.
func ParallelYUV420ToRGB(pool *workerpool.Pool, width, height int, y, u, v []byte, yStride, uvStride int, rgb []byte, rgbStride int, std colorspace.Standard) {
	if pool == nil || width*height < MinParallelPixels {
		YUV420ToRGB(width, height, y, u, v, yStride, uvStride, rgb, rgbStride, std)
		return
	}

	pool.ParallelForAtomicBatched(height/2, BandBatch, func(start, end int) {
		r0 := 2 * start
		YUV420ToRGB(width, 2*(end-start),
			y[r0*yStride:], u[start*uvStride:], v[start*uvStride:], yStride, uvStride,
			rgb[r0*rgbStride:], rgbStride, std)
	})
}
