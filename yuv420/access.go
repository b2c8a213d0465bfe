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
	"unsafe"

	"github.com/ajroetker/go-highway/hwy"
)

// accessMode selects how a vector kernel may touch caller memory.
//
// Go exposes no aligned or non-temporal load/store, so both modes issue
// the same hwy loads and stores. The aligned mode carries the stronger
// contract: every buffer base and stride is a multiple of
// VectorAlignment(), checked in yuvdebug builds.
type accessMode interface {
	aligned() bool
}

type alignedAccess struct{}

func (alignedAccess) aligned() bool { return true }

type unalignedAccess struct{}

func (unalignedAccess) aligned() bool { return false }

// VectorAlignment returns the alignment in bytes required by the aligned
// kernels: the current SIMD register width, at least 16.
func VectorAlignment() int {
	return max(hwy.CurrentWidth(), 16)
}

// IsAligned reports whether the first byte of buf sits on an n-byte
// boundary. An empty buffer is considered aligned.
func IsAligned(buf []byte, n int) bool {
	if len(buf) == 0 || n <= 1 {
		return true
	}
	return uintptr(unsafe.Pointer(unsafe.SliceData(buf)))%uintptr(n) == 0
}

// alignedLayout reports whether every buffer and stride satisfies the
// aligned kernels' contract.
func alignedLayout(strides []int, bufs ...[]byte) bool {
	n := VectorAlignment()
	for _, s := range strides {
		if s%n != 0 {
			return false
		}
	}
	for _, b := range bufs {
		if !IsAligned(b, n) {
			return false
		}
	}
	return true
}

// alignedBytes allocates n bytes starting on a frameAlign boundary.
func alignedBytes(n int) []byte {
	if n <= 0 {
		return nil
	}
	buf := make([]byte, n+frameAlign)
	off := int(-uintptr(unsafe.Pointer(unsafe.SliceData(buf))) & (frameAlign - 1))
	return buf[off : off+n : off+n]
}

func roundUp(n, m int) int {
	return (n + m - 1) / m * m
}

func assertKernelArgs(width, height int) {
	if debugAssertions {
		assertf(width >= 0 && height >= 0, "negative dimensions %dx%d", width, height)
		assertf(width%2 == 0 && height%2 == 0, "odd dimensions %dx%d", width, height)
	}
}

func assertAccess[M accessMode](width int, strides []int, bufs ...[]byte) {
	if debugAssertions {
		var m M
		if m.aligned() {
			assertf(width%blockPixels == 0, "width %d is not a multiple of %d", width, blockPixels)
			assertf(alignedLayout(strides, bufs...), "buffers or strides not aligned to %d bytes", VectorAlignment())
		}
	}
}
