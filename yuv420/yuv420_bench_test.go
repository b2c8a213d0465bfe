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
	"runtime"
	"testing"

	"github.com/ajroetker/go-highway/hwy/contrib/workerpool"

	"github.com/TommyLee96/yuv2rgb/colorspace"
)

// Benchmark sizes for conversions
var convertBenchSizes = []struct {
	name   string
	width  int
	height int
}{
	{"64x64", 64, 64},
	{"256x256", 256, 256},
	{"1080p", 1920, 1080},
	{"4K", 3840, 2160},
}

var benchForward = []struct {
	name string
	fn   RGBToYUV420Func
}{
	{"Scalar", RGBToYUV420Scalar},
	{"Vector", RGBToYUV420Vector},
	{"VectorAligned", RGBToYUV420VectorAligned},
	{"Dispatch", func(width, height int, rgb []byte, rgbStride int, y, u, v []byte, yStride, uvStride int, std colorspace.Standard) {
		RGBToYUV420(width, height, rgb, rgbStride, y, u, v, yStride, uvStride, std)
	}},
}

var benchInverse = []struct {
	name string
	fn   YUV420ToRGBFunc
}{
	{"Scalar", YUV420ToRGBScalar},
	{"Vector", YUV420ToRGBVector},
	{"VectorAligned", YUV420ToRGBVectorAligned},
	{"Dispatch", func(width, height int, y, u, v []byte, yStride, uvStride int, rgb []byte, rgbStride int, std colorspace.Standard) {
		YUV420ToRGB(width, height, y, u, v, yStride, uvStride, rgb, rgbStride, std)
	}},
}

func BenchmarkRGBToYUV420(b *testing.B) {
	for _, size := range convertBenchSizes {
		ti := newTestImage(size.width, size.height, true)
		ti.fillRandomRGB(1)
		for _, k := range benchForward {
			b.Run(size.name+"/"+k.name, func(b *testing.B) {
				b.ResetTimer()
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					ti.forward(k.fn, colorspace.BT601)
				}
				// 3 bytes read, 1.5 bytes written per pixel
				b.SetBytes(int64(size.width * size.height * 9 / 2))
			})
		}
	}
}

func BenchmarkYUV420ToRGB(b *testing.B) {
	for _, size := range convertBenchSizes {
		ti := newTestImage(size.width, size.height, true)
		ti.fillRandomYUV(1)
		for _, k := range benchInverse {
			b.Run(size.name+"/"+k.name, func(b *testing.B) {
				b.ResetTimer()
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					ti.inverse(k.fn, colorspace.BT601)
				}
				b.SetBytes(int64(size.width * size.height * 9 / 2))
			})
		}
	}
}

func BenchmarkParallelRGBToYUV420(b *testing.B) {
	pool := workerpool.New(runtime.GOMAXPROCS(0))
	defer pool.Close()

	for _, size := range convertBenchSizes[2:] {
		ti := newTestImage(size.width, size.height, true)
		ti.fillRandomRGB(1)
		b.Run(size.name, func(b *testing.B) {
			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				ParallelRGBToYUV420(pool, size.width, size.height, ti.rgb, ti.rgbStride,
					ti.y, ti.u, ti.v, ti.yStride, ti.uvStride, colorspace.BT601)
			}
			b.SetBytes(int64(size.width * size.height * 9 / 2))
		})
	}
}
