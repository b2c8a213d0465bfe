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

//go:generate go tool hwygen -input vector_base.go -output . -targets avx2,avx512,neon,fallback -dispatch yuv420

const (
	// blockPixels is the number of columns a vector kernel converts per
	// iteration. Columns past the last full block are left untouched.
	blockPixels = 32

	// blockChroma is the number of chroma samples per block row.
	blockChroma = blockPixels / 2

	// maxLanes is the uint8 lane count of the widest target (AVX-512). hwy
	// loads and stores touch a full vector, so every one goes through
	// staging buffers of at least this many lanes.
	maxLanes = 64
)

// staging holds full-width buffers for the partial vectors a block
// processes. Kernel memory is copied in and out, so a chunk at the end of
// an exactly sized plane never reaches past it.
type staging struct {
	pixels [3 * maxLanes]byte
	bytes  [maxLanes]byte
	words  [maxLanes]uint16
	pairs  [2 * maxLanes]uint16
}

// load returns a vector whose first len(src) lanes hold src.
func (s *staging) load(src []byte) hwy.Vec[uint8] {
	copy(s.bytes[:], src)
	return hwy.Load(s.bytes[:])
}

// store writes the first len(dst) lanes of v to dst.
func (s *staging) store(v hwy.Vec[uint8], dst []byte) {
	hwy.Store(v, s.bytes[:])
	copy(dst, s.bytes[:])
}

// chunkWidth returns the number of uint16 lanes a kernel uses per
// operation with tag D: half the tag width in bytes, capped by the
// runtime vector width and by limit.
func chunkWidth[D hwy.Tag](limit int) int {
	var d D
	return min(min(d.Width(), hwy.CurrentWidth())/2, limit)
}

// baseRGBToYUV420 is the vector RGB to 4:2:0 kernel, generic over the lane
// width D and the memory access mode M.
//
// Each block is 32 columns by 2 rows. Luma is computed per pixel in uint16
// lanes. The per-pixel chroma terms of both rows are summed vertically into
// a scratch row, then LoadInterleaved2 splits even and odd columns for the
// horizontal sum, so the block mean truncates exactly like the scalar
// kernel.
func baseRGBToYUV420[D hwy.Tag, M accessMode](width, height int, rgb []byte, rgbStride int, y, u, v []byte, yStride, uvStride int, std colorspace.Standard) {
	assertKernelArgs(width, height)
	assertAccess[M](width, []int{rgbStride, yStride, uvStride}, rgb, y, u, v)

	k := newForwardLanes(colorspace.ForwardFor(std))
	ps := chunkWidth[D](blockPixels)
	cs := min(ps, blockChroma)

	var s staging
	var sumU, sumV [blockPixels]uint16

	for row := 0; row+1 < height; row += 2 {
		rgbTop := rgb[row*rgbStride:]
		rgbBot := rgb[(row+1)*rgbStride:]
		yTop := y[row*yStride:]
		yBot := y[(row+1)*yStride:]
		uRow := u[(row/2)*uvStride:]
		vRow := v[(row/2)*uvStride:]

		for x := 0; x+blockPixels <= width; x += blockPixels {
			for off := 0; off < blockPixels; off += ps {
				px := x + off
				ut, vt := forwardChunk(rgbTop[3*px:3*(px+ps)], yTop[px:px+ps], k, &s)
				ub, vb := forwardChunk(rgbBot[3*px:3*(px+ps)], yBot[px:px+ps], k, &s)
				hwy.Store(hwy.Add(ut, ub), s.words[:])
				copy(sumU[off:off+ps], s.words[:])
				hwy.Store(hwy.Add(vt, vb), s.words[:])
				copy(sumV[off:off+ps], s.words[:])
			}

			cx := x / 2
			for off := 0; off < blockChroma; off += cs {
				s.store(chromaMean(sumU[2*off:2*(off+cs)], &s), uRow[cx+off:cx+off+cs])
				s.store(chromaMean(sumV[2*off:2*(off+cs)], &s), vRow[cx+off:cx+off+cs])
			}
		}
	}
}

// forwardChunk converts len(yDst) pixels of one row, storing luma and
// returning the per-pixel Cb and Cr terms.
func forwardChunk(rgb, yDst []byte, k *forwardLanes, s *staging) (hwy.Vec[uint16], hwy.Vec[uint16]) {
	copy(s.pixels[:], rgb)
	r8, g8, b8 := hwy.LoadInterleaved3(s.pixels[:])
	r := hwy.PromoteLowerU8ToU16(r8)
	g := hwy.PromoteLowerU8ToU16(g8)
	b := hwy.PromoteLowerU8ToU16(b8)

	luma := hwy.Add(hwy.Add(hwy.Mul(r, k.r), hwy.Mul(g, k.g)), hwy.Mul(b, k.b))
	luma = hwy.ShiftRight(luma, 8)

	yv := hwy.Add(hwy.ShiftRight(hwy.Mul(luma, k.yScale), 7), k.yOffset)
	s.store(hwy.DemoteU16ToU8(yv), yDst)

	cb := chromaTerm(hwy.Mul(hwy.Sub(b, luma), k.cb), k.sign)
	cr := chromaTerm(hwy.Mul(hwy.Sub(r, luma), k.cr), k.sign)
	return cb, cr
}

// chromaMean reduces vertically summed column pairs to block means.
func chromaMean(sums []uint16, s *staging) hwy.Vec[uint8] {
	copy(s.pairs[:], sums)
	even, odd := hwy.LoadInterleaved2(s.pairs[:])
	return hwy.DemoteU16ToU8(hwy.ShiftRight(hwy.Add(even, odd), 2))
}

// baseYUV420ToRGB is the vector 4:2:0 to RGB kernel, generic over the lane
// width D and the memory access mode M.
//
// Chroma offsets are computed once per sample and duplicated to both
// columns of the block with InterleaveLower.
func baseYUV420ToRGB[D hwy.Tag, M accessMode](width, height int, y, u, v []byte, yStride, uvStride int, rgb []byte, rgbStride int, std colorspace.Standard) {
	assertKernelArgs(width, height)
	assertAccess[M](width, []int{rgbStride, yStride, uvStride}, rgb, y, u, v)

	k := newInverseLanes(colorspace.InverseFor(std))
	pw := chunkWidth[D](blockChroma)

	var s staging

	for row := 0; row+1 < height; row += 2 {
		yTop := y[row*yStride:]
		yBot := y[(row+1)*yStride:]
		uRow := u[(row/2)*uvStride:]
		vRow := v[(row/2)*uvStride:]
		rgbTop := rgb[row*rgbStride:]
		rgbBot := rgb[(row+1)*rgbStride:]

		for x := 0; x+blockPixels <= width; x += blockPixels {
			for off := 0; off < blockPixels; off += pw {
				px := x + off
				cx := px / 2
				cb := hwy.Sub(hwy.PromoteU8ToU16(s.load(uRow[cx:cx+pw/2])), k.chromaZero)
				cr := hwy.Sub(hwy.PromoteU8ToU16(s.load(vRow[cx:cx+pw/2])), k.chromaZero)

				bOff := sra(hwy.Mul(cb, k.cb), k.sign, k.corr6, 6)
				rOff := sra(hwy.Mul(cr, k.cr), k.sign, k.corr6, 6)
				gOff := sra(hwy.Add(hwy.Mul(cb, k.gcb), hwy.Mul(cr, k.gcr)), k.sign, k.corr7, 7)

				r2 := hwy.InterleaveLower(rOff, rOff)
				g2 := hwy.InterleaveLower(gOff, gOff)
				b2 := hwy.InterleaveLower(bOff, bOff)
				inverseChunk(yTop[px:px+pw], rgbTop[3*px:3*(px+pw)], r2, g2, b2, k, &s)
				inverseChunk(yBot[px:px+pw], rgbBot[3*px:3*(px+pw)], r2, g2, b2, k, &s)
			}
		}
	}
}

// inverseChunk converts len(ySrc) pixels of one row given the per-pixel
// chroma offsets.
func inverseChunk(ySrc, rgbDst []byte, rOff, gOff, bOff hwy.Vec[uint16], k *inverseLanes, s *staging) {
	yv := hwy.PromoteU8ToU16(s.load(ySrc))
	luma := hwy.Sub(hwy.ShiftRight(hwy.Add(hwy.Mul(yv, k.yScale), k.yBias), 7), k.yK)

	r := clampByte(hwy.Add(luma, rOff), k.sign, k.lo, k.hi)
	g := clampByte(hwy.Sub(luma, gOff), k.sign, k.lo, k.hi)
	b := clampByte(hwy.Add(luma, bOff), k.sign, k.lo, k.hi)
	hwy.StoreInterleaved3(hwy.DemoteU16ToU8(r), hwy.DemoteU16ToU8(g), hwy.DemoteU16ToU8(b), s.pixels[:])
	copy(rgbDst, s.pixels[:])
}
