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

// Package yuv420 converts between interleaved 8-bit RGB and planar YCbCr
// 4:2:0 (one luma byte per pixel, one Cb and one Cr byte per 2x2 block).
//
// Every conversion exists in three forms with identical signatures:
//
//   - Scalar: portable integer code, the reference implementation.
//   - Vector: lane-parallel code written against go-highway's hwy.Vec,
//     processing 32 pixels per iteration.
//   - VectorAligned: the same kernel body with the aligned memory-access
//     mode, for buffers that satisfy [IsAligned] at [VectorAlignment].
//
// All three produce byte-identical output. The vector forms only cover the
// widest multiple of 32 columns. The dispatching entry points
// [RGBToYUV420] and [YUV420ToRGB] run the scalar kernel unless [VectorEnv]
// selects the vector kernels, which then hand the remaining columns to the
// scalar kernel.
//
// Kernels do not validate their arguments and never allocate output:
// buffers and strides are the caller's responsibility. Images should have
// even width and height; a trailing odd row or column is skipped and left
// untouched. Use [ValidateRGBToYUV420] and [ValidateYUV420ToRGB] for a
// checked front door, or build with the yuvdebug tag to turn precondition
// violations into panics.
//
// Example usage:
//
//	f := yuv420.NewFrame(1920, 1080)
//	src := yuv420.NewRGB(1920, 1080)
//	// ... fill src ...
//	f.FromRGB(src, colorspace.BT709)
package yuv420
