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
	"testing"

	"github.com/pkg/errors"

	"github.com/TommyLee96/yuv2rgb/colorspace"
)

func TestValidate(t *testing.T) {
	good := func() *testImage { return newTestImage(10, 6, false) }
	tests := []struct {
		name   string
		mutate func(ti *testImage)
		std    colorspace.Standard
		want   error
	}{
		{"ok", func(ti *testImage) {}, colorspace.BT601, nil},
		{"odd-ok", func(ti *testImage) { ti.width, ti.height = 9, 5 }, colorspace.BT601, nil},
		{"standard", func(ti *testImage) {}, colorspace.Standard(7), ErrStandard},
		{"zero-width", func(ti *testImage) { ti.width = 0 }, colorspace.BT601, ErrDimensions},
		{"negative-height", func(ti *testImage) { ti.height = -2 }, colorspace.BT601, ErrDimensions},
		{"rgb-stride", func(ti *testImage) { ti.rgbStride = 29 }, colorspace.BT601, ErrStride},
		{"y-stride", func(ti *testImage) { ti.yStride = 9 }, colorspace.BT601, ErrStride},
		{"uv-stride", func(ti *testImage) { ti.uvStride = 4 }, colorspace.BT601, ErrStride},
		{"rgb-short", func(ti *testImage) { ti.rgb = ti.rgb[:len(ti.rgb)-ti.rgbStride] }, colorspace.BT601, ErrBufferTooSmall},
		{"y-short", func(ti *testImage) { ti.y = ti.y[:1] }, colorspace.BT601, ErrBufferTooSmall},
		{"v-short", func(ti *testImage) { ti.v = nil }, colorspace.BT601, ErrBufferTooSmall},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ti := good()
			tt.mutate(ti)
			errF := ValidateRGBToYUV420(ti.width, ti.height, ti.rgb, ti.rgbStride, ti.y, ti.u, ti.v, ti.yStride, ti.uvStride, tt.std)
			errI := ValidateYUV420ToRGB(ti.width, ti.height, ti.y, ti.u, ti.v, ti.yStride, ti.uvStride, ti.rgb, ti.rgbStride, tt.std)
			for _, err := range []error{errF, errI} {
				if tt.want == nil {
					if err != nil {
						t.Errorf("got %v, want nil", err)
					}
					continue
				}
				if !errors.Is(err, tt.want) {
					t.Errorf("got %v, want %v", err, tt.want)
				}
			}
		})
	}
}

func TestValidateAligned(t *testing.T) {
	ti := newTestImage(64, 4, true)
	if err := ValidateAligned(ti.width, ti.rgb, ti.rgbStride, ti.y, ti.u, ti.v, ti.yStride, ti.uvStride); err != nil {
		t.Fatalf("aligned image: %v", err)
	}
	if err := ValidateAligned(48, ti.rgb, ti.rgbStride, ti.y, ti.u, ti.v, ti.yStride, ti.uvStride); !errors.Is(err, ErrDimensions) {
		t.Errorf("width 48: got %v, want ErrDimensions", err)
	}
	if err := ValidateAligned(ti.width, ti.rgb[1:], ti.rgbStride, ti.y, ti.u, ti.v, ti.yStride, ti.uvStride); !errors.Is(err, ErrAlignment) {
		t.Errorf("offset rgb: got %v, want ErrAlignment", err)
	}
	if err := ValidateAligned(ti.width, ti.rgb, ti.rgbStride+3, ti.y, ti.u, ti.v, ti.yStride, ti.uvStride); !errors.Is(err, ErrAlignment) {
		t.Errorf("odd stride: got %v, want ErrAlignment", err)
	}
}

func TestIsAligned(t *testing.T) {
	buf := alignedBytes(256)
	if !IsAligned(buf, frameAlign) {
		t.Fatal("alignedBytes result is not aligned")
	}
	if IsAligned(buf[1:], 2) {
		t.Error("IsAligned(buf[1:], 2) = true")
	}
	if !IsAligned(nil, 64) {
		t.Error("IsAligned(nil) = false")
	}
	if got := VectorAlignment(); got < 16 || got&(got-1) != 0 {
		t.Errorf("VectorAlignment() = %d", got)
	}
}
