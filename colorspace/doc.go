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

// Package colorspace derives the integer fixed-point coefficients used to
// convert between 8-bit RGB and YCbCr for the supported colorimetry
// standards.
//
// Each standard is described by its analog luma weights (Rf, Bf) and its
// digital range (YMin, YMax, chroma span). The coefficients are computed
// from that description once, at package initialization, and exposed
// through a read-only registry indexed by [Standard]:
//
//	fwd := colorspace.ForwardFor(colorspace.BT709)
//	y := (fwd.R*r + fwd.G*g + fwd.B*b) >> 8
//
// Fixed-point values use the rounding rule round(x * 2^N) = int(x*2^N + 0.5),
// with N = 8 for luma weights and forward chroma scales, N = 7 for luma
// re-range and inverse green terms, and N = 6 for inverse chroma scales.
// The precisions are chosen so every product formed by the conversion
// kernels fits in a signed 16-bit lane.
package colorspace
