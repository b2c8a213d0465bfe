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

package colorspace

// Forward holds the fixed-point coefficients for RGB to YCbCr.
//
//	Y' = (R*r + G*g + B*b) >> 8
//	Cb = (((b - Y') * Cb) >> 8) + 128
//	Cr = (((r - Y') * Cr) >> 8) + 128
//	Y  = ((Y' * YScale) >> 7) + YOffset
type Forward struct {
	R, G, B int32 // luma weights, 8-bit fraction, R+G+B == 256
	Cb, Cr  int32 // chroma scales, 8-bit fraction
	YScale  int32 // luma re-range, 7-bit fraction
	YOffset int32
}

// Inverse holds the fixed-point coefficients for YCbCr to RGB.
//
//	Y' = (YScale * (y - YOffset)) >> 7
//	R  = Y' + ((Cr * v') >> 6)
//	G  = Y' - ((GCb*u' + GCr*v') >> 7)
//	B  = Y' + ((Cb * u') >> 6)
//
// where u' and v' are the chroma samples minus 128.
type Inverse struct {
	Cb, Cr   int32 // chroma scales, 6-bit fraction
	GCb, GCr int32 // green correction, 7-bit fraction
	YScale   int32 // luma re-range, 7-bit fraction
	YOffset  int32
}

// fixedPoint returns round(x * 2^bits).
func fixedPoint(x float64, bits uint) int32 {
	return int32(x*float64(int(1)<<bits) + 0.5)
}

// DeriveForward computes the forward coefficients of s from its analog
// definition. It panics if s is not a valid standard.
func DeriveForward(s Standard) Forward {
	p := params[s]
	r := fixedPoint(p.Rf, 8)
	b := fixedPoint(p.Bf, 8)
	return Forward{
		R:       r,
		G:       256 - r - b,
		B:       b,
		Cb:      fixedPoint((p.ChromaSpan/255.0)/(2.0*(1-p.Bf)), 8),
		Cr:      fixedPoint((p.ChromaSpan/255.0)/(2.0*(1-p.Rf)), 8),
		YScale:  fixedPoint((p.YMax-p.YMin)/255.0, 7),
		YOffset: int32(p.YMin),
	}
}

// DeriveInverse computes the inverse coefficients of s from its analog
// definition. It panics if s is not a valid standard.
func DeriveInverse(s Standard) Inverse {
	p := params[s]
	cbNorm := 255.0 * (2.0 * (1 - p.Bf)) / p.ChromaSpan
	crNorm := 255.0 * (2.0 * (1 - p.Rf)) / p.ChromaSpan
	return Inverse{
		Cb:      fixedPoint(cbNorm, 6),
		Cr:      fixedPoint(crNorm, 6),
		GCb:     fixedPoint(p.Bf/(1.0-p.Bf-p.Rf)*cbNorm, 7),
		GCr:     fixedPoint(p.Rf/(1.0-p.Bf-p.Rf)*crNorm, 7),
		YScale:  fixedPoint(255.0/(p.YMax-p.YMin), 7),
		YOffset: int32(p.YMin),
	}
}

// Registry, filled once by init and read-only afterwards.
var (
	forwardTable [numStandards]Forward
	inverseTable [numStandards]Inverse
)

func init() {
	for _, s := range Standards {
		forwardTable[s] = DeriveForward(s)
		inverseTable[s] = DeriveInverse(s)
	}
}

// ForwardFor returns the precomputed forward coefficients of s.
// It panics if s is not a valid standard.
func ForwardFor(s Standard) *Forward {
	return &forwardTable[s]
}

// InverseFor returns the precomputed inverse coefficients of s.
// It panics if s is not a valid standard.
func InverseFor(s Standard) *Inverse {
	return &inverseTable[s]
}

// LumaBias splits the inverse luma term so it can be evaluated in unsigned
// 16-bit lanes without overflow:
//
//	(YScale*(y-YOffset)) >> 7 == ((YScale*y + bias) >> 7) - k
//
// for every y. k is ceil(YScale*YOffset / 128) and bias is
// 128*k - YScale*YOffset, so the shifted operand is never negative.
func (c *Inverse) LumaBias() (bias, k int32) {
	off := c.YScale * c.YOffset
	k = (off + 127) >> 7
	return k<<7 - off, k
}
