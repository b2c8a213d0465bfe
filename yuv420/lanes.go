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

// The vector kernels compute in uint16 lanes holding two's complement int16
// values. Add, Sub and Mul wrap, so they already agree with int16
// arithmetic. Shifts and clamps are rebuilt on offset binary (x ^ 0x8000),
// where signed order matches unsigned order.

const signBit = 0x8000

// sra is an arithmetic right shift of int16 values held in uint16 lanes.
// corr must hold signBit >> bits.
func sra(v, sign, corr hwy.Vec[uint16], bits int) hwy.Vec[uint16] {
	return hwy.Sub(hwy.ShiftRight(hwy.Xor(v, sign), bits), corr)
}

// chromaTerm returns ((v >> 8) + 128) with v taken as int16. Skipping the
// correction of sra leaves exactly the +128 chroma offset.
func chromaTerm(v, sign hwy.Vec[uint16]) hwy.Vec[uint16] {
	return hwy.ShiftRight(hwy.Xor(v, sign), 8)
}

// clampByte saturates int16 values held in uint16 lanes to [0,255].
// lo and hi must hold signBit and signBit+255.
func clampByte(v, sign, lo, hi hwy.Vec[uint16]) hwy.Vec[uint16] {
	return hwy.Xor(hwy.Clamp(hwy.Xor(v, sign), lo, hi), sign)
}

// forwardLanes holds the broadcast forward coefficients of one standard.
type forwardLanes struct {
	r, g, b hwy.Vec[uint16]
	cb, cr  hwy.Vec[uint16]
	yScale  hwy.Vec[uint16]
	yOffset hwy.Vec[uint16]
	sign    hwy.Vec[uint16]
}

func newForwardLanes(c *colorspace.Forward) *forwardLanes {
	return &forwardLanes{
		r:       hwy.Set(uint16(c.R)),
		g:       hwy.Set(uint16(c.G)),
		b:       hwy.Set(uint16(c.B)),
		cb:      hwy.Set(uint16(c.Cb)),
		cr:      hwy.Set(uint16(c.Cr)),
		yScale:  hwy.Set(uint16(c.YScale)),
		yOffset: hwy.Set(uint16(c.YOffset)),
		sign:    hwy.Set(uint16(signBit)),
	}
}

// inverseLanes holds the broadcast inverse coefficients of one standard.
type inverseLanes struct {
	cb, cr     hwy.Vec[uint16]
	gcb, gcr   hwy.Vec[uint16]
	yScale     hwy.Vec[uint16]
	yBias      hwy.Vec[uint16]
	yK         hwy.Vec[uint16]
	chromaZero hwy.Vec[uint16]
	sign       hwy.Vec[uint16]
	corr6      hwy.Vec[uint16]
	corr7      hwy.Vec[uint16]
	lo, hi     hwy.Vec[uint16]
}

func newInverseLanes(c *colorspace.Inverse) *inverseLanes {
	bias, k := c.LumaBias()
	return &inverseLanes{
		cb:         hwy.Set(uint16(c.Cb)),
		cr:         hwy.Set(uint16(c.Cr)),
		gcb:        hwy.Set(uint16(c.GCb)),
		gcr:        hwy.Set(uint16(c.GCr)),
		yScale:     hwy.Set(uint16(c.YScale)),
		yBias:      hwy.Set(uint16(bias)),
		yK:         hwy.Set(uint16(k)),
		chromaZero: hwy.Set(uint16(128)),
		sign:       hwy.Set(uint16(signBit)),
		corr6:      hwy.Set(uint16(signBit >> 6)),
		corr7:      hwy.Set(uint16(signBit >> 7)),
		lo:         hwy.Set(uint16(signBit)),
		hi:         hwy.Set(uint16(signBit + 255)),
	}
}
